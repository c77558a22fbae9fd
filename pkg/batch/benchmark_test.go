package batch

import (
	"context"
	"fmt"
	"testing"
)

func benchmarkSeeds(n int) []string {
	letters := "abcd"
	seeds := make([]string, n)
	for i := range seeds {
		b := make([]byte, 7)
		for j := range b {
			b[j] = letters[(i+j)%len(letters)]
		}
		seeds[i] = string(b)
	}
	return seeds
}

func BenchmarkGenerate(b *testing.B) {
	bank := sampleBank()
	seeds := benchmarkSeeds(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Generate(context.Background(), bank, seeds, Options{Workers: 4, Seed: uint64(i)}); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

func BenchmarkGenerateConcurrencyScaling(b *testing.B) {
	// Single builds take microseconds, so pool overhead may dominate at high worker counts.
	counts := []int{1, 2, 4, 8}
	bank := sampleBank()
	seeds := benchmarkSeeds(1000)

	for _, workers := range counts {
		b.Run(fmt.Sprintf("Workers_%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Generate(context.Background(), bank, seeds, Options{Workers: workers}); err != nil {
					b.Fatalf("Generate failed: %v", err)
				}
			}
		})
	}
}

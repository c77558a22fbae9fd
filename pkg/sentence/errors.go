package sentence

import "fmt"

// ValidationError reports a seed word that cannot be used.
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid seed word %q: %s", e.Input, e.Reason)
}

// LookupError reports a lookup slot that could not be filled from the word bank.
type LookupError struct {
	Category string
	Letter   rune // 0 when the seed has no letter for Position
	Position int
	Reason   string
}

func (e *LookupError) Error() string {
	if e.Letter == 0 {
		return fmt.Sprintf("lookup %s at position %d: %s", e.Category, e.Position, e.Reason)
	}
	return fmt.Sprintf("lookup %s for %q at position %d: %s", e.Category, e.Letter, e.Position, e.Reason)
}

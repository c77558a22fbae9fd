package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/japaniel/sentencer/pkg/batch"
	"github.com/japaniel/sentencer/pkg/config"
	"github.com/japaniel/sentencer/pkg/harvest"
	"github.com/japaniel/sentencer/pkg/sentence"
	"github.com/japaniel/sentencer/pkg/wordbank"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	// Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app carries flag values and the state PersistentPreRunE builds from them.
type app struct {
	configPath string
	bankPath   string
	dbPath     string
	pageURL    string
	workers    int
	seed       uint64
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "sentencer [seed]",
		Short: "Build a sentence from a seven-letter seed word",
		Long: `sentencer turns a seven-letter seed word into a sentence.

A sentence template is picked at random. Each noun, verb, adjective and adverb
slot takes the next letter of the seed and looks up a matching word in the
word bank. Pronoun and article slots are drawn at random.

Run without a seed to be prompted for one.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runBuild,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultFile, "Path to settings file")
	pf.StringVar(&a.bankPath, "bank", "", "Word bank: JSON document or .db/.sqlite database")
	pf.Uint64Var(&a.seed, "seed", 0, "Fix the random seed for reproducible output")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	buildCmd := &cobra.Command{
		Use:   "build [seed]",
		Short: "Build one sentence (the default command)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runBuild,
	}

	batchCmd := &cobra.Command{
		Use:   "batch SEED...",
		Short: "Build one sentence per seed in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runBatch,
	}
	batchCmd.Flags().IntVar(&a.workers, "workers", 0, "Number of parallel builders (default from config)")

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the JSON word bank into a SQLite database",
		Args:  cobra.NoArgs,
		RunE:  a.runImport,
	}
	importCmd.Flags().StringVar(&a.dbPath, "db", "", "SQLite database to write (default from config)")

	seedsCmd := &cobra.Command{
		Use:   "seeds FILE.html",
		Short: "List playable seed words found in a saved HTML article",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runSeeds,
	}
	seedsCmd.Flags().StringVar(&a.pageURL, "url", "", "Original URL of the article, used to resolve relative links")

	root.AddCommand(buildCmd, batchCmd, importCmd, seedsCmd)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("bank") {
		cfg.Bank = a.bankPath
	}
	if flags.Changed("db") {
		cfg.DB = a.dbPath
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("seed") {
		s := a.seed
		cfg.Seed = &s
	}
	if flags.Changed("verbose") {
		cfg.Verbose = a.verbose
	}
	a.cfg = cfg

	zc := zap.NewProductionConfig()
	if cfg.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	a.logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func (a *app) baseSeed() uint64 {
	if a.cfg.Seed != nil {
		return *a.cfg.Seed
	}
	return rand.Uint64()
}

func (a *app) loadBank() (wordbank.Bank, error) {
	bank, err := wordbank.Open(a.cfg.Bank)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("word bank loaded", zap.String("path", a.cfg.Bank), zap.Int("categories", len(bank)))
	if err := bank.Validate(); err != nil {
		a.logger.Warn("word bank is incomplete", zap.Error(err))
	}
	return bank, nil
}

func (a *app) runBuild(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	bank, err := a.loadBank()
	if err != nil {
		return err
	}

	var seed sentence.SeedWord
	if len(args) == 1 {
		seed, err = sentence.GetSeedWord(args[0])
	} else {
		fmt.Fprint(out, "Enter a seven-letter word: ")
		seed, err = sentence.ReadSeedWord(cmd.InOrStdin())
		fmt.Fprintln(out)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Seed word: %s\n", seed)

	gen := sentence.NewGenerator(bank, sentence.NewRandPicker(a.baseSeed()))
	res, err := gen.GenerateSeed(seed)
	if err != nil {
		return fmt.Errorf("build sentence: %w", err)
	}
	a.logger.Debug("sentence built", zap.Stringer("structure", res.Structure), zap.Strings("words", res.Words))
	fmt.Fprintln(out, res.Sentence)
	return nil
}

func (a *app) runBatch(cmd *cobra.Command, args []string) error {
	bank, err := a.loadBank()
	if err != nil {
		return err
	}
	results, err := batch.Generate(cmd.Context(), bank, args, batch.Options{
		Workers: a.cfg.Workers,
		Seed:    a.baseSeed(),
		Logger:  a.logger,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(out, "%s\terror: %v\n", r.Input, r.Err)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", r.Seed, r.Sentence)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d seeds failed", failed, len(results))
	}
	return nil
}

func (a *app) runImport(cmd *cobra.Command, args []string) error {
	if wordbank.IsDatabase(a.cfg.Bank) {
		return fmt.Errorf("import reads a JSON word bank, got %s", a.cfg.Bank)
	}
	bank, err := wordbank.Load(a.cfg.Bank)
	if err != nil {
		return err
	}

	conn, err := sql.Open("sqlite3", a.cfg.DB)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer conn.Close()

	count, err := wordbank.Import(cmd.Context(), conn, bank, a.logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d words into %s\n", count, a.cfg.DB)
	return nil
}

func (a *app) runSeeds(cmd *cobra.Command, args []string) error {
	bank, err := a.loadBank()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	var pageURL *url.URL
	if a.pageURL != "" {
		if pageURL, err = url.Parse(a.pageURL); err != nil {
			return fmt.Errorf("parse --url: %w", err)
		}
	} else if abs, err := filepath.Abs(args[0]); err == nil {
		pageURL = &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	}

	candidates, err := harvest.Candidates(f, pageURL)
	if err != nil {
		return err
	}
	playable := harvest.Playable(candidates, bank)
	a.logger.Info("seeds harvested", zap.String("file", args[0]),
		zap.Int("candidates", len(candidates)), zap.Int("playable", len(playable)))

	for _, s := range playable {
		fmt.Fprintln(cmd.OutOrStdout(), s)
	}
	return nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"commerce-linker/core/config"
	"commerce-linker/core/generator"
	"commerce-linker/core/logger"
	"commerce-linker/feature/dataset"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sizeFlags are shared by the generate and match commands.
type sizeFlags struct {
	accounts int
	sessions int
	seed     int64
}

func (f *sizeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.accounts, "accounts", 0, "Number of customer accounts (default from config)")
	cmd.Flags().IntVar(&f.sessions, "sessions", 0, "Number of website sessions (default from config)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Random seed; 0 draws one from the clock")
}

// request builds a generation request, leaving unset sizes to the config.
func (f *sizeFlags) request(cmd *cobra.Command) dataset.GenerateRequest {
	req := dataset.GenerateRequest{Seed: f.seed}
	if cmd.Flags().Changed("accounts") {
		req.Accounts = &f.accounts
	}
	if cmd.Flags().Changed("sessions") {
		req.Sessions = &f.sessions
	}
	return req
}

// generateWithProgress runs a generation while drawing a progress bar on
// stderr.
func generateWithProgress(ctx context.Context, svc *dataset.Service, req dataset.GenerateRequest) (*dataset.GenerateResult, error) {
	if req.Seed < 0 {
		return nil, errors.New("seed must be greater than or equal to 0")
	}
	accounts, sessions := svc.Sizes(req)
	bar := progressbar.NewOptions(accounts+sessions,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("generating"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	defer bar.Finish()

	return svc.Generate(ctx, req, generator.WithProgress(func(n int) {
		_ = bar.Add(n)
	}))
}

var (
	generateSizes   sizeFlags
	generateOut     string
	generateUpload  bool
	generatePersist bool
)

// generateCmd builds a dataset and writes its CSV files.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate synthetic accounts and website sessions",
	Long: `Generates a customer account population and a website session population
that partly reuses the account identities, prints both summaries and writes
the CSV files.

Examples:
  # Default sizes into ./data
  generate

  # Reproducible run uploaded to the bucket
  generate --accounts 500 --sessions 5000 --seed 42 --upload

  # Store the rows in the database as well
  generate --persist`,
	RunE: runGenerate,
}

func init() {
	generateSizes.register(generateCmd)
	generateCmd.Flags().StringVar(&generateOut, "out", "data", "Directory for the CSV files (empty to skip)")
	generateCmd.Flags().BoolVar(&generateUpload, "upload", false, "Upload the CSV files to the storage bucket")
	generateCmd.Flags().BoolVar(&generatePersist, "persist", false, "Store accounts and sessions in the database")

	RootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	svc, _, err := newDatasetService(cfg, generatePersist, generateUpload, l)
	if err != nil {
		return err
	}

	req := generateSizes.request(cmd)
	req.Persist = generatePersist
	req.Export = generateUpload

	res, err := generateWithProgress(ctx, svc, req)
	if err != nil {
		return fmt.Errorf("failed to generate dataset: %w", err)
	}

	if err := dataset.WriteText(cmd.OutOrStdout(), res.Summary); err != nil {
		return err
	}

	if generateOut != "" {
		paths, err := dataset.ExportDir(generateOut, res.Dataset)
		if err != nil {
			return fmt.Errorf("failed to write CSV files: %w", err)
		}
		l.Info("CSV files written", zap.Strings("paths", paths))
	}
	if generateUpload {
		if len(res.Exported) == 0 {
			return fmt.Errorf("upload to bucket %s failed", cfg.Storage.Bucket)
		}
		l.Info("CSV files uploaded", zap.String("bucket", cfg.Storage.Bucket), zap.Strings("keys", res.Exported))
	}
	if generatePersist && !res.Persisted {
		return fmt.Errorf("dataset %s was not persisted", res.Dataset.ID)
	}

	l.Info("Dataset ready",
		zap.String("dataset_id", res.Dataset.ID),
		zap.Int64("seed", res.Dataset.Seed))
	return nil
}

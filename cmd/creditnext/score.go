package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"creditnext/internal/config"
	"creditnext/internal/dto"
	"creditnext/internal/models"
	"creditnext/internal/ocr"
	"creditnext/internal/scoring"
	"creditnext/internal/services"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <file>",
		Short: "Score a ledger file (OFX, CSV, JSON, PDF or statement image)",
		Long: `Reads a ledger, trains the model and prints the credit report.

OFX/QFX, CSV (date,description,amount,type) and JSON ledgers are parsed
directly. PDFs and images go through OCR and statement structuring.`,
		Args: cobra.ExactArgs(1),
		RunE: runScore,
	}

	cmd.Flags().Bool("json", false, "print the evaluation as JSON")
	cmd.Flags().String("bank", "", "bank hint for statement structuring (scb, kbank, ...)")
	cmd.Flags().String("password", "", "password for encrypted PDF statements")
	cmd.Flags().Int64("seed", 0, "training seed (default: MODEL_SEED)")

	_ = viper.BindPFlag("model.seed", cmd.Flags().Lookup("seed"))

	return cmd
}

func runScore(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	bank, _ := cmd.Flags().GetString("bank")
	password, _ := cmd.Flags().GetString("password")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	transactions, source, err := loadLedger(cmd.Context(), cfg, args[0], password, bank)
	if err != nil {
		return err
	}
	if i, err := models.ValidateTransactions(transactions); err != nil {
		return fmt.Errorf("transaction %d: %w", i, err)
	}

	artifact, err := trainWithProgress(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	eval := scoring.Evaluate(artifact, transactions)

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.NewAnalyzeResponse(eval, nil))
	}

	fmt.Fprint(out, renderReport(filepath.Base(args[0]), source, eval))
	return nil
}

// loadLedger reads path through the same extraction pipeline the API uses.
// The demo fallback is disabled so a file that yields nothing fails loudly.
func loadLedger(ctx context.Context, cfg *config.Config, path, password, bank string) ([]models.Transaction, ocr.Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read ledger: %w", err)
	}

	ocrCfg := cfg.OCR
	ocrCfg.MockFallback = false
	breaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig("llm"))
	pipeline, closePipeline := services.NewOCRPipeline(ctx, &ocrCfg, breaker, log())
	defer closePipeline()

	extraction, err := pipeline.Extract(ctx, ocr.Document{
		Filename: filepath.Base(path),
		Content:  content,
		Password: password,
	}, bank)
	if err != nil {
		return nil, "", fmt.Errorf("failed to extract %s: %w", filepath.Base(path), err)
	}
	return extraction.Transactions, extraction.Source, nil
}

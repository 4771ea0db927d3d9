package main

import (
	"fmt"
	"io"

	"creditnext/internal/config"
	"creditnext/internal/scoring"
	"creditnext/internal/services"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func trainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the default model and print holdout metrics",
		RunE:  runTrain,
	}

	cmd.Flags().Int64("seed", 0, "training seed (default: MODEL_SEED)")
	cmd.Flags().Int("samples", 0, "synthetic population size")
	cmd.Flags().Int("trees", 0, "boosting rounds")

	_ = viper.BindPFlag("model.seed", cmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("model.samples", cmd.Flags().Lookup("samples"))
	_ = viper.BindPFlag("model.trees", cmd.Flags().Lookup("trees"))

	return cmd
}

func runTrain(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	artifact, err := trainWithProgress(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderModel(artifact))
	return nil
}

// trainWithProgress trains on the configured seed, drawing a bar on w
func trainWithProgress(cfg *config.Config, w io.Writer) (*scoring.Artifact, error) {
	var bar *progressbar.ProgressBar
	progress := func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(w),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionShowElapsedTimeOnFinish(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]Training model...[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(w)
				}),
			)
		}
		_ = bar.Set(done)
	}

	opts := append(services.TrainOptions(&cfg.Model, log()), scoring.WithProgress(progress))
	artifact, err := scoring.Train(cfg.Model.Seed, opts...)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return nil, fmt.Errorf("training failed: %w", err)
	}
	return artifact, nil
}

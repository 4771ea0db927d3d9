package main

import (
	"context"
	"fmt"

	"creditnext/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  runServe,
	}

	cmd.Flags().String("host", "", "listen host")
	cmd.Flags().String("port", "", "listen port")
	cmd.Flags().String("db-driver", "", "database driver (sqlite, postgres)")
	cmd.Flags().Bool("train-at-startup", true, "train the default model before the first request")

	_ = viper.BindPFlag("server.host", cmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("database.driver", cmd.Flags().Lookup("db-driver"))
	_ = viper.BindPFlag("model.train_at_startup", cmd.Flags().Lookup("train-at-startup"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	srv, err := server.New(ctx, cfg, log())
	if err != nil {
		return err
	}
	if cfg.Model.TrainAtStartup {
		srv.WarmUp(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log().Error("Server shutdown error", zap.Error(err))
		return fmt.Errorf("shutdown: %w", err)
	}
	log().Info("Server stopped")
	return <-errCh
}

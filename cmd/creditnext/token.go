package main

import (
	"bufio"
	"fmt"
	"strings"

	"creditnext/internal/services"

	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print an operator bearer token",
		Long: `Signs an operator token with the configured JWT key. The token authorizes
POST /api/v1/model/retrain on a server sharing the same JWT_PRIVATE_KEY.`,
		RunE: runToken,
	}
	cmd.Flags().String("subject", "operator", "token subject")

	cmd.AddCommand(&cobra.Command{
		Use:   "hash-password",
		Short: "Read a password from stdin and print its bcrypt hash for OPERATOR_PASSWORD_HASH",
		Args:  cobra.NoArgs,
		RunE:  runHashPassword,
	})
	return cmd
}

func runToken(cmd *cobra.Command, _ []string) error {
	subject, _ := cmd.Flags().GetString("subject")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	token, expiresAt, err := services.NewTokenService(&cfg.JWT).GenerateOperatorToken(subject)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", expiresAt.Format("2006-01-02 15:04:05 MST"))
	return nil
}

func runHashPassword(cmd *cobra.Command, _ []string) error {
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("failed to read password: %w", err)
	}

	hash, err := services.HashOperatorPassword(strings.TrimRight(line, "\r\n"))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}

// Package cli implements the b24 command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/crmgate/bitrix24-go/internal/config"
	"github.com/crmgate/bitrix24-go/internal/logger"
	"github.com/crmgate/bitrix24-go/pkg/bitrix24"
)

var (
	cfg    *config.Config
	client *bitrix24.Client
)

var rootCmd = &cobra.Command{
	Use:   "b24",
	Short: "Bitrix24 CRM webhook client",
	Long: `b24 drives a Bitrix24 portal through an inbound webhook: create leads,
deals and contacts, look up duplicate contacts by phone or email, and
inspect entity field metadata.

Configuration comes from the environment (or configs/.env):
B24_BASE_URL, B24_USER_ID, B24_WEBHOOK_SECRET, and optionally
B24_TIMEOUT_SECONDS, B24_TLS_VERIFY, LOG_LEVEL.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if _, err = logger.Init(cfg); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		client, err = bitrix24.New(bitrix24.Options{
			BaseURL:            cfg.BaseURL,
			UserID:             cfg.UserID,
			Secret:             cfg.WebhookSecret,
			Timeout:            cfg.Timeout,
			InsecureSkipVerify: !cfg.TLSVerify,
			Logger:             logger.S,
		})
		if err != nil {
			return fmt.Errorf("init client: %w", err)
		}
		return nil
	},
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	defer logger.Close()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

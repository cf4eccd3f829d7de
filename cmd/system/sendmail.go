package system

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/optima_web/config"
	"github.com/Alijeyrad/optima_web/pkg/email"
	"github.com/Alijeyrad/optima_web/pkg/logs"
)

func NewSendTestMailCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send-test-mail",
		Short: "Send a test email through the configured provider",
		Long: `Send a short test message through the provider selected by email.provider.

The recipient defaults to email.sales_to. Use --to to send it elsewhere.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			to, err := cmd.Flags().GetString("to")
			if err != nil {
				return fmt.Errorf("failed to read to flag: %w", err)
			}
			if to == "" {
				to = cfg.Email.SalesTo
			}
			if to == "" {
				return fmt.Errorf("no recipient: pass --to or set email.sales_to")
			}

			sender, err := email.NewFromCentral(cmd.Context(), cfg.Email, logs.New(cfg))
			if err != nil {
				return fmt.Errorf("failed to create email sender: %w", err)
			}

			if err := sender.Send(cmd.Context(), email.BuildTestEmail(to, cfg.Site.Brand)); err != nil {
				return fmt.Errorf("failed to send test email: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Test email sent to %s via %s\n", to, cfg.Email.Provider)
			return nil
		},
	}

	cmd.Flags().String("to", "", "Recipient address (defaults to email.sales_to)")

	return cmd
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/Alijeyrad/optima_web/cmd/http"
	submitcmd "github.com/Alijeyrad/optima_web/cmd/submit"
	systemcmd "github.com/Alijeyrad/optima_web/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "optima",
	Short: "OPTIMA marketing site and lead form pipeline.",
	Long: `optima serves the OPTIMA marketing site: the landing page, the
"get a tailored plan" and "request a demo" forms, and the endpoints that
relay demo requests and contact messages to the sales inbox.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
	rootCmd.AddCommand(submitcmd.NewSubmitCommand())
}

package submit

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/optima_web/config"
	"github.com/Alijeyrad/optima_web/internal/leadform"
)

var errNotAccepted = errors.New("submission not accepted")

func NewSubmitCommand() *cobra.Command {
	var (
		values   = map[leadform.Field]*string{}
		endpoint string
		variant  string
		timeout  time.Duration
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a demo request to a running site",
		Long: `Run the lead form pipeline once from flags: validate locally, post the
record to the submission endpoint and print the resulting notification.

The endpoint defaults to submit.endpoint from the config file.`,
		Example: `  optima submit --name "Jordan Lee" --email jordan@example.com \
    --company "Acme Logistics" --industry steel --fleet-size 11-50`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if endpoint == "" || timeout == 0 {
				cfg, err := readConfig(cmd)
				if err != nil {
					return err
				}
				if endpoint == "" {
					endpoint = cfg.Submit.Endpoint
				}
				if timeout == 0 {
					timeout = time.Duration(cfg.Submit.TimeoutSeconds) * time.Second
				}
			}

			v := leadform.DemoVariant
			if variant == leadform.CTAVariant.Name {
				v = leadform.CTAVariant
			}

			draft := leadform.Draft{}
			for f, val := range values {
				draft[f] = *val
			}

			p := printer{out: cmd.OutOrStdout(), st: newStyles(noColor)}
			client := leadform.NewHTTPClient(endpoint,
				leadform.WithTimeout(timeout),
				leadform.WithUserAgent("optima-cli"),
			)
			ctrl := leadform.NewController(v, client,
				leadform.WithStore(leadform.StoreFrom(draft)),
				leadform.WithNotifier(p),
				leadform.WithoutAutoDismiss(),
			)

			out, err := ctrl.Submit(cmd.Context())
			if err != nil {
				return err
			}

			switch out.Kind {
			case leadform.OutcomeAccepted:
				return nil
			case leadform.OutcomeRejected:
				if out.Message != "" {
					fmt.Fprintln(p.out, "  "+p.st.muted.Render(out.Message))
				}
				p.fieldErrors(out.Errors)
			case leadform.OutcomeTransportFailure:
				fmt.Fprintln(p.out, "  "+p.st.muted.Render(out.Reason))
			}
			return errNotAccepted
		},
	}

	flags := cmd.Flags()
	for _, f := range []struct {
		field leadform.Field
		flag  string
		usage string
	}{
		{leadform.FieldName, "name", "Your full name"},
		{leadform.FieldEmail, "email", "Business email"},
		{leadform.FieldCompany, "company", "Company name"},
		{leadform.FieldIndustry, "industry", "Industry: cement, steel, fmcg, automotive, chemicals, textiles, other"},
		{leadform.FieldFleetSize, "fleet-size", "Fleet size: 1-10, 11-50, 51-100, 100+"},
		{leadform.FieldMessage, "message", "Additional requirements"},
	} {
		values[f.field] = flags.String(f.flag, "", f.usage)
	}
	flags.StringVar(&endpoint, "endpoint", "", "Submission endpoint URL (defaults to submit.endpoint)")
	flags.StringVar(&variant, "variant", leadform.DemoVariant.Name, "Form variant: demo or cta")
	flags.DurationVar(&timeout, "timeout", 0, "Request timeout (0 uses submit.timeout_seconds)")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

// readConfig loads the config named by the root --config flag. Without the
// flag the working directory is searched, and a missing file means defaults.
func readConfig(cmd *cobra.Command) (*config.Config, error) {
	dir := "."
	if f := cmd.Root().PersistentFlags().Lookup("config"); f != nil {
		dir = filepath.Dir(f.Value.String())
	}
	cfg, err := config.ReadConfig(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return cfg, nil
}

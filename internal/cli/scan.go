package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tracker-tv/commit-sentinel/internal/app"
	"github.com/tracker-tv/commit-sentinel/models"
)

var ErrSecretsFound = errors.New("credentials found")

func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <file>...",
		Short: "Run the detection rules against local files",
		Long: `Scan reports the first matching rule of each file, like the inspector
does for a pushed commit. It exits non-zero when anything was found.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matcher, err := app.Matcher(rootOpts.Rules)
			if err != nil {
				return err
			}

			var findings []models.Finding
			for _, path := range args {
				content, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				match, ok := matcher.Detect(string(content))
				if !ok {
					continue
				}
				findings = append(findings, models.Finding{File: path, RuleLabel: match.Rule.Label, Line: match.Line})
			}

			if rootOpts.Format == "json" {
				if findings == nil {
					findings = []models.Finding{}
				}
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(findings); err != nil {
					return err
				}
			} else {
				for _, f := range findings {
					fmt.Fprintf(cmd.OutOrStdout(), "%s:%d: %s\n", f.File, f.Line, f.RuleLabel)
				}
			}

			if len(findings) > 0 {
				return fmt.Errorf("%w in %d file(s)", ErrSecretsFound, len(findings))
			}
			return nil
		},
	}
}

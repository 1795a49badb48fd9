package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tracker-tv/commit-sentinel/models"
)

func NewRemediateCommand(rootOpts *RootOptions) *cobra.Command {
	var eventFile string

	cmd := &cobra.Command{
		Use:   "remediate",
		Short: "Dispatch saved security events to the remediation actions",
		Long: `Remediate reads security events (one JSON object per line, as written
by inspect) and runs the configured remediation actions for each.
Use "-" to read from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var in io.Reader = cmd.InOrStdin()
			if eventFile != "-" {
				f, err := os.Open(eventFile)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			dispatcher, err := rootOpts.newDispatcher(ctx, rootOpts.logger(cmd))
			if err != nil {
				return err
			}

			var errs []error
			dec := json.NewDecoder(in)
			for n := 1; ; n++ {
				var ev models.SecurityEvent
				if err := dec.Decode(&ev); err != nil {
					if errors.Is(err, io.EOF) {
						break
					}
					return fmt.Errorf("reading event %d: %w", n, err)
				}
				if err := dispatcher.Dispatch(ctx, ev); err != nil {
					errs = append(errs, fmt.Errorf("event %d: %w", n, err))
				}
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().StringVar(&eventFile, "event", "", "file holding the security events")
	_ = cmd.MarkFlagRequired("event")

	return cmd
}

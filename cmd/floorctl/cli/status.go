package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// statusReport is printed by floorctl status.
type statusReport struct {
	BaseURL string          `json:"baseUrl"`
	System  json.RawMessage `json:"system"`
	Devices json.RawMessage `json:"devices"`
}

func (r *runner) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Fetch system and device status from the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := r.consoleContext(cmd.Context())
			if err != nil {
				return err
			}
			api, err := c.Client()
			if err != nil {
				return err
			}

			report := statusReport{BaseURL: api.BaseURL()}
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				body, err := api.SystemStatus(ctx)
				if err != nil {
					return fmt.Errorf("system status: %w", err)
				}
				report.System = body
				return nil
			})
			g.Go(func() error {
				body, err := api.DeviceStatus(ctx)
				if err != nil {
					return fmt.Errorf("device status: %w", err)
				}
				report.Devices = body
				return nil
			})
			if err := g.Wait(); err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), report)
		},
	}
}

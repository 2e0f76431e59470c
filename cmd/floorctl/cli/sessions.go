package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odyssey-erp/floorconsole/internal/session"
)

type whoamiReport struct {
	Roles  []session.Snapshot `json:"roles"`
	Worker session.Worker     `json:"worker"`
}

func (r *runner) workerCommand() *cobra.Command {
	var (
		id, name, positionID, positionCode, positionUnit string
		subPositionID, subPositionCode                   string
	)
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Update the operator session; only the given flags change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := r.consoleContext(cmd.Context())
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			err = c.Sessions.Worker().Update(cmd.Context(), func(w *session.Worker) {
				if flags.Changed("id") {
					w.WorkerID = session.ParseID(id)
				}
				if flags.Changed("name") {
					w.WorkerName = name
				}
				if flags.Changed("position-id") {
					w.PositionID = session.ParseID(positionID)
				}
				if flags.Changed("position-code") {
					w.PositionCode = positionCode
				}
				if flags.Changed("position-unit") {
					w.PositionUnit = positionUnit
				}
				if flags.Changed("sub-position-id") {
					w.SubPositionID = session.ParseID(subPositionID)
				}
				if flags.Changed("sub-position-code") {
					w.SubPositionCode = subPositionCode
				}
			})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(c.Sessions.Worker().Get())
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "worker id")
	cmd.Flags().StringVar(&name, "name", "", "worker name")
	cmd.Flags().StringVar(&positionID, "position-id", "", "position id")
	cmd.Flags().StringVar(&positionCode, "position-code", "", "position code")
	cmd.Flags().StringVar(&positionUnit, "position-unit", "", "position unit")
	cmd.Flags().StringVar(&subPositionID, "sub-position-id", "", "sub-position id")
	cmd.Flags().StringVar(&subPositionCode, "sub-position-code", "", "sub-position code")
	return cmd
}

func (r *runner) sessionCommands() []*cobra.Command {
	return []*cobra.Command{
		r.workerCommand(),
		{
			Use:   "login <role> <id> <name>",
			Short: "Record the signed-in identity of a role",
			Args:  cobra.MinimumNArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				role, err := session.ParseRole(args[0])
				if err != nil {
					return &exitError{code: 2, err: err}
				}
				c, err := r.consoleContext(cmd.Context())
				if err != nil {
					return err
				}
				name := strings.Join(args[2:], " ")
				if err := c.Login(cmd.Context(), role, session.ParseID(args[1]), name); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s signed in as %s\n", role, name)
				return nil
			},
		},
		{
			Use:   "logout [role]",
			Short: "Sign one role out, or every role when none is given",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := r.consoleContext(cmd.Context())
				if err != nil {
					return err
				}
				if len(args) == 0 {
					if err := c.Reset(cmd.Context()); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), "all roles signed out")
					return nil
				}
				role, err := session.ParseRole(args[0])
				if err != nil {
					return &exitError{code: 2, err: err}
				}
				if err := c.Logout(cmd.Context(), role); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s signed out\n", role)
				return nil
			},
		},
		{
			Use:   "whoami",
			Short: "Print every role session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := r.consoleContext(cmd.Context())
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(whoamiReport{
					Roles:  c.Sessions.Snapshots(),
					Worker: c.Sessions.Worker().Get(),
				})
			},
		},
	}
}

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odyssey-erp/floorconsole/internal/apiclient"
	"github.com/odyssey-erp/floorconsole/internal/console"
)

var errInvalidJSON = errors.New("body is not valid JSON")

func (r *runner) resourceCommands() []*cobra.Command {
	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <resource> <id>",
		Short: "Delete a record after confirmation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, res, err := r.resource(cmd, args[0])
			if err != nil {
				return err
			}
			if !yes {
				presenter := console.NewTerminalPresenter(c.Modal, cmd.InOrStdin(), cmd.ErrOrStderr())
				ok, err := presenter.Confirm(cmd.Context(), fmt.Sprintf("Hapus %s %s?", res.Name(), args[1]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.ErrOrStderr(), "Dibatalkan.")
					return &exitError{code: 3, err: errors.New("delete not confirmed")}
				}
			}
			body, err := res.Delete(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), body)
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return []*cobra.Command{
		{
			Use:   "list <resource>",
			Short: "List a collection (" + strings.Join(apiclient.ResourceNames(), ", ") + ")",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, res, err := r.resource(cmd, args[0])
				if err != nil {
					return err
				}
				body, err := res.List(cmd.Context())
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), body)
			},
		},
		{
			Use:   "get <resource> <id>",
			Short: "Fetch one record",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, res, err := r.resource(cmd, args[0])
				if err != nil {
					return err
				}
				body, err := res.Get(cmd.Context(), args[1])
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), body)
			},
		},
		{
			Use:   "create <resource> <json|->",
			Short: "Create a record from a JSON body; - reads stdin",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				payload, err := readBody(cmd.InOrStdin(), args[1])
				if err != nil {
					return err
				}
				_, res, err := r.resource(cmd, args[0])
				if err != nil {
					return err
				}
				body, err := res.Create(cmd.Context(), payload)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), body)
			},
		},
		{
			Use:   "update <resource> <id> <json|->",
			Short: "Replace a record with a JSON body; - reads stdin",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				payload, err := readBody(cmd.InOrStdin(), args[2])
				if err != nil {
					return err
				}
				_, res, err := r.resource(cmd, args[0])
				if err != nil {
					return err
				}
				body, err := res.Update(cmd.Context(), args[1], payload)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), body)
			},
		},
		deleteCmd,
		{
			Use:   "bump-status <id>...",
			Short: "Advance the status of production logs",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ids := make([]int64, 0, len(args))
				for _, arg := range args {
					id, err := strconv.ParseInt(arg, 10, 64)
					if err != nil {
						return fmt.Errorf("invalid production log id %q", arg)
					}
					ids = append(ids, id)
				}
				c, err := r.consoleContext(cmd.Context())
				if err != nil {
					return err
				}
				api, err := c.Client()
				if err != nil {
					return err
				}
				body, err := api.ProductionLogs.BulkIncrementStatus(cmd.Context(), ids)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), body)
			},
		},
	}
}

func (r *runner) resource(cmd *cobra.Command, name string) (*console.Context, apiclient.Resource, error) {
	c, err := r.consoleContext(cmd.Context())
	if err != nil {
		return nil, apiclient.Resource{}, err
	}
	api, err := c.Client()
	if err != nil {
		return nil, apiclient.Resource{}, err
	}
	res, err := api.Resource(name)
	if err != nil {
		return nil, apiclient.Resource{}, &exitError{code: 2, err: err}
	}
	return c, res, nil
}

func readBody(stdin io.Reader, arg string) (json.RawMessage, error) {
	data := []byte(arg)
	if arg == "-" {
		var err error
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
	}
	data = bytes.TrimSpace(data)
	if !json.Valid(data) {
		return nil, errInvalidJSON
	}
	return json.RawMessage(data), nil
}

// writeJSON prints v indented. Raw backend bodies are re-indented untouched;
// an empty body prints nothing.
func writeJSON(out io.Writer, v any) error {
	if raw, ok := v.(json.RawMessage); ok {
		if len(raw) == 0 {
			return nil
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err := out.Write(buf.Bytes())
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

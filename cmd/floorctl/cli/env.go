package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/odyssey-erp/floorconsole/internal/envfile"
)

func (r *runner) envCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env [" + strings.Join(envfile.Names(), "|") + "]",
		Short: "Show or switch the backend environment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return r.showEnv(cmd.OutOrStdout())
			}
			return r.switchEnv(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0])
		},
	}
}

func envUsage() string {
	return "Usage: floorctl env [" + strings.Join(envfile.Names(), "|") + "]"
}

func (r *runner) showEnv(out io.Writer) error {
	fmt.Fprintln(out, envUsage())
	current, ok, err := envfile.Current(r.opts.EnvFile)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(out, "Current environment: not set (%s)\n", r.opts.EnvFile)
		return nil
	}
	fmt.Fprintf(out, "Current environment: %s\n", current)
	return nil
}

func (r *runner) switchEnv(out, errOut io.Writer, name string) error {
	profile, err := envfile.Lookup(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		fmt.Fprintln(errOut, envUsage())
		return &exitError{code: 1, err: err}
	}
	if err := envfile.Write(r.opts.EnvFile, profile); err != nil {
		return &exitError{code: 1, err: err}
	}
	fmt.Fprintf(out, "Environment switched to: %s\n", cases.Upper(language.Und).String(profile.Name))
	fmt.Fprintf(out, "API URL: %s\n", profile.APIURL)
	return nil
}

package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/odyssey-erp/floorconsole/internal/routes"
)

func (r *runner) routeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "route <path>",
		Short: "Show which console page a path opens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			match, ok := routes.Console.Match(args[0])
			if !ok {
				return &exitError{code: 2, err: fmt.Errorf("no page for %s", args[0])}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "page:    %s (%s)\n", match.Route.Page, match.Route.Page.Title())
			fmt.Fprintf(out, "pattern: %s\n", match.Route.Pattern)
			if match.Route.Legacy {
				fmt.Fprintln(out, "legacy:  true")
			}
			keys := make([]string, 0, len(match.Params))
			for key := range match.Params {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				fmt.Fprintf(out, "param:   %s=%s\n", key, match.Params[key])
			}
			return nil
		},
	}
}

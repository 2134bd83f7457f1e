package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func addCmd(c *cli) *cobra.Command {
	var (
		f        classFlags
		generate bool
	)
	cmd := &cobra.Command{
		Use:   "add <site> [password]",
		Short: "Store a password under a site",
		Long: "Store a password under a site. With -g, or when no password is given,\n" +
			"a password is generated, stored and printed.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if generate && len(args) == 2 {
				return errors.New("give either a password or --generate, not both")
			}
			site := strings.TrimSpace(args[0])
			var pw string
			if len(args) == 2 {
				pw = strings.TrimSpace(args[1])
			}

			generated := generate || len(args) == 1
			if generated {
				var err error
				if pw, err = f.generate(); err != nil {
					return err
				}
			}

			if err := c.wire.Store.Add(cmd.Context(), site, pw); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if generated {
				fmt.Fprintln(out, pw)
			}
			fmt.Fprintf(out, "Password saved for %s.\n", site)
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVarP(&generate, "generate", "g", false, "generate the password")
	return cmd
}

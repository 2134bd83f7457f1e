package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"passkeep/internal/mcptools"
)

func listCmd(c *cli) *cobra.Command {
	var (
		show bool
		site string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			n := 0
			for e := range c.wire.Store.List() {
				if site != "" && e.Site != site {
					continue
				}
				pw := mcptools.Mask
				if show {
					pw = e.Credential.Secret
				}
				fmt.Fprintf(out, "%s: %s\n", e.Site, pw)
				n++
			}
			if n == 0 {
				fmt.Fprintln(out, "No passwords stored.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "print passwords instead of masking them")
	cmd.Flags().StringVar(&site, "site", "", "only list this site")
	return cmd
}

func sitesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "sites",
		Short: "List site names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range c.wire.Store.Sites() {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

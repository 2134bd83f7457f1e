package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func removeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <site> <password>",
		Short: "Remove one stored password from a site",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			site := strings.TrimSpace(args[0])
			if err := c.wire.Store.Remove(cmd.Context(), site, strings.TrimSpace(args[1])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Password removed from %s.\n", site)
			return nil
		},
	}
}

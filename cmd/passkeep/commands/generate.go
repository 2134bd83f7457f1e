package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"passkeep/internal/generator"
)

// classFlags are the generator options shared by generate and add.
type classFlags struct {
	length  int
	classes generator.Classes
}

func (f *classFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.length, "length", "l", generator.DefaultLength, "password length")
	cmd.Flags().BoolVarP(&f.classes.Uppercase, "uppercase", "u", false, "include A-Z")
	cmd.Flags().BoolVarP(&f.classes.Digits, "numbers", "n", false, "include 0-9")
	cmd.Flags().BoolVarP(&f.classes.Symbols, "symbols", "s", false, "include punctuation")
}

func (f *classFlags) generate() (string, error) {
	if err := generator.ValidateLength(f.length); err != nil {
		return "", err
	}
	return generator.Generate(f.length, f.classes)
}

func generateCmd() *cobra.Command {
	var f classFlags
	cmd := &cobra.Command{
		Use:         "generate",
		Short:       "Print a random password",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipWire: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := f.generate()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pw)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

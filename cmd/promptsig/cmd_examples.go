package main

import (
	"fmt"

	"github.com/sant0-9/promptsig/internal/examples"
	"github.com/spf13/cobra"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List the built-in example prompts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for i, e := range examples.All() {
			fmt.Fprintf(out, "%2d  %-20s %-20s %s\n", i+1, e.Slug, e.Name, e.Description)
		}
		return nil
	},
}

var examplesShowCmd = &cobra.Command{
	Use:   "show <slug|name|number>",
	Short: "Print the body of an example prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, _, ok := examples.Find(args[0])
		if !ok {
			return fmt.Errorf("unknown example %q", args[0])
		}
		fmt.Fprint(cmd.OutOrStdout(), e.Body)
		return nil
	},
}

func init() {
	examplesCmd.AddCommand(examplesShowCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/arbor/internal/tree"
)

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Create a tree document holding a lone root folder",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		s := tree.New(name)
		if err := saveTree(s); err != nil {
			return err
		}
		fmt.Printf("Initialized %s with root %q.\n", treePath, s.Root().Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/arbor/internal/ingest"
)

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Build a tree document from a real directory layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := ingest.ScanDir(args[0])
		if err != nil {
			return err
		}
		if err := saveTree(s); err != nil {
			return err
		}
		fmt.Printf("Scanned %s into %s (%d nodes).\n", args[0], treePath, s.Len())
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed <layout.hcl>",
	Short: "Build a tree document from a declarative HCL layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := ingest.LoadSeed(args[0])
		if err != nil {
			return err
		}
		if err := saveTree(s); err != nil {
			return err
		}
		fmt.Printf("Seeded %s from %s (%d nodes).\n", treePath, args[0], s.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(seedCmd)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentic-research/arbor/internal/codec"
	"github.com/agentic-research/arbor/internal/tree"
)

var treePath string

var rootCmd = &cobra.Command{
	Use:          "arbor",
	Short:        "Arbor: model, reorganize and export project folder structures",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&treePath, "file", "f", "arbor.json", "Path to the tree document")
}

// loadTree reads the document named by --file: flat or nested JSON,
// auto-detected.
func loadTree() (*tree.Snapshot, error) {
	payload, err := os.ReadFile(treePath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", treePath, err)
	}
	s, err := codec.Import(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", treePath, err)
	}
	return s, nil
}

// saveTree writes the snapshot back to --file in the flat form, which
// round-trips exactly.
func saveTree(s *tree.Snapshot) error {
	payload, err := codec.EncodeFlat(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(treePath, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", treePath, err)
	}
	return nil
}

// resolveArg maps a name path argument ("src/index.js") to a node id.
func resolveArg(s *tree.Snapshot, path string) (string, error) {
	id, ok := s.ResolvePath(path)
	if !ok {
		return "", fmt.Errorf("no node at path %q", path)
	}
	return id, nil
}

// writeOut prints to stdout, or to path when non-empty.
func writeOut(path, content string) error {
	if path == "" {
		fmt.Print(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/arbor/internal/tree"
)

// errRejected reports that the mutation engine refused an operation; the
// document on disk is left as it was.
var errRejected = errors.New("operation rejected")

var addCmd = &cobra.Command{
	Use:   "add folder|file <name> [parent-path]",
	Short: "Add a node under a folder (default: the root)",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var kind tree.Kind
		switch args[0] {
		case "folder":
			kind = tree.KindFolder
		case "file":
			kind = tree.KindFile
		default:
			return fmt.Errorf("kind must be folder or file, got %q", args[0])
		}

		s, err := loadTree()
		if err != nil {
			return err
		}
		parentID := s.RootID()
		if len(args) == 3 {
			if parentID, err = resolveArg(s, args[2]); err != nil {
				return err
			}
		}

		next, id := s.AddNode(kind, args[1], parentID)
		if next == s {
			return fmt.Errorf("add %q: %w", args[1], errRejected)
		}
		if err := saveTree(next); err != nil {
			return err
		}
		fmt.Printf("Added %s %q (%s).\n", args[0], args[1], id)
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Remove a node and its entire subtree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadTree()
		if err != nil {
			return err
		}
		id, err := resolveArg(s, args[0])
		if err != nil {
			return err
		}
		next := s.RemoveSubtree(id)
		if next == s {
			return fmt.Errorf("rm %q: %w", args[0], errRejected)
		}
		if err := saveTree(next); err != nil {
			return err
		}
		fmt.Printf("Removed %q (%d nodes).\n", args[0], s.Len()-next.Len())
		return nil
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <path> <new-name>",
	Short: "Rename a node",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadTree()
		if err != nil {
			return err
		}
		id, err := resolveArg(s, args[0])
		if err != nil {
			return err
		}
		next := s.Rename(id, args[1])
		if next == s {
			return fmt.Errorf("rename %q: %w", args[0], errRejected)
		}
		return saveTree(next)
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <path>",
	Short: "Flip a folder's open state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadTree()
		if err != nil {
			return err
		}
		id, err := resolveArg(s, args[0])
		if err != nil {
			return err
		}
		next := s.ToggleOpen(id)
		if next == s {
			return fmt.Errorf("toggle %q: %w", args[0], errRejected)
		}
		return saveTree(next)
	},
}

var (
	mvBefore bool
	mvAfter  bool
)

var mvCmd = &cobra.Command{
	Use:   "mv <path> <target-path>",
	Short: "Move a node into a folder, or beside a sibling with --before/--after",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if mvBefore && mvAfter {
			return errors.New("--before and --after are mutually exclusive")
		}
		mode := tree.MoveInto
		if mvBefore {
			mode = tree.MoveBefore
		}
		if mvAfter {
			mode = tree.MoveAfter
		}

		s, err := loadTree()
		if err != nil {
			return err
		}
		activeID, err := resolveArg(s, args[0])
		if err != nil {
			return err
		}
		targetID, err := resolveArg(s, args[1])
		if err != nil {
			return err
		}

		next := s.Move(activeID, targetID, mode)
		if next == s {
			return fmt.Errorf("mv %q: %w", args[0], errRejected)
		}
		return saveTree(next)
	},
}

var reorderCmd = &cobra.Command{
	Use:   "reorder <parent-path> <child-name>...",
	Short: "Reorder a folder's children by listing their names in the new order",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadTree()
		if err != nil {
			return err
		}
		parentID, err := resolveArg(s, args[0])
		if err != nil {
			return err
		}
		parent, _ := s.Get(parentID)
		if parent == nil || !parent.IsFolder() {
			return fmt.Errorf("%q is not a folder", args[0])
		}

		byName := make(map[string]string, len(parent.Children))
		for _, cid := range parent.Children {
			if c, ok := s.Get(cid); ok {
				byName[c.Name] = cid
			}
		}
		order := make([]string, 0, len(args)-1)
		for _, name := range args[1:] {
			id, ok := byName[name]
			if !ok {
				return fmt.Errorf("%q has no child named %q", args[0], name)
			}
			order = append(order, id)
		}

		next := s.ReorderChildren(parentID, order)
		if next == s {
			return fmt.Errorf("reorder %q: %w (names must cover every child exactly once)", args[0], errRejected)
		}
		return saveTree(next)
	},
}

func init() {
	mvCmd.Flags().BoolVar(&mvBefore, "before", false, "Place before the target instead of inside it")
	mvCmd.Flags().BoolVar(&mvAfter, "after", false, "Place after the target instead of inside it")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(mvCmd)
	rootCmd.AddCommand(reorderCmd)
}

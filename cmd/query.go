package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/agentic-research/arbor/internal/codec"
	"github.com/agentic-research/arbor/internal/search"
)

var queryCmd = &cobra.Command{
	Use:   "query <jsonpath>",
	Short: "Run a JSONPath query against the nested form of the tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := jp.ParseString(args[0])
		if err != nil {
			return fmt.Errorf("invalid jsonpath %q: %w", args[0], err)
		}

		s, err := loadTree()
		if err != nil {
			return err
		}

		// Round through JSON so the query sees plain maps and slices.
		payload, err := json.Marshal(codec.ToNested(s))
		if err != nil {
			return err
		}
		data, err := oj.Parse(payload)
		if err != nil {
			return err
		}

		results := x.Get(data)
		fmt.Println(oj.JSON(results, 2))
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <substring>",
	Short: "List nodes whose name contains the substring (case-insensitive)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadTree()
		if err != nil {
			return err
		}

		ix := search.NewIndex(s)
		matches := ix.Match(s, args[0])
		for _, id := range ix.IDs(matches) {
			if path, ok := s.PathOf(id); ok {
				fmt.Println(path)
			}
		}
		if matches.IsEmpty() {
			fmt.Printf("No nodes match %q.\n", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(searchCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/arbor/internal/codec"
	"github.com/agentic-research/arbor/internal/render"
)

var (
	renderFormat string
	renderOut    string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the tree as text (connector tree, Markdown outline, Mermaid diagram, or the full bundle)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadTree()
		if err != nil {
			return err
		}

		var out string
		switch renderFormat {
		case "tree":
			out = render.ConnectorTree(s)
		case "markdown":
			out = render.MarkdownOutline(s)
		case "mermaid":
			out = render.MermaidDiagram(s)
		case "bundle":
			out = render.MarkdownBundle(s)
		default:
			return fmt.Errorf("unknown format %q (tree, markdown, mermaid, bundle)", renderFormat)
		}
		return writeOut(renderOut, out)
	},
}

var (
	convertTo  string
	convertOut string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the tree document between the flat and nested JSON forms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadTree()
		if err != nil {
			return err
		}

		var payload []byte
		switch convertTo {
		case "flat":
			payload, err = codec.EncodeFlat(s)
		case "nested":
			payload, err = codec.EncodeNested(s)
		default:
			return fmt.Errorf("unknown form %q (flat, nested)", convertTo)
		}
		if err != nil {
			return err
		}
		return writeOut(convertOut, string(payload))
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "t", "tree", "Output format: tree, markdown, mermaid or bundle")
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "", "Write to a file instead of stdout")

	convertCmd.Flags().StringVar(&convertTo, "to", "nested", "Target form: flat or nested")
	convertCmd.Flags().StringVarP(&convertOut, "output", "o", "", "Write to a file instead of stdout")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(convertCmd)
}

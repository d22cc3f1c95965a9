package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/usecase/yamljson"
)

func yaml2jsonCmd() *cobra.Command {
	var workspace, file, format string
	var noSave bool
	var indent int
	var compact bool

	c := &cobra.Command{
		Use:   "yaml2json [yaml]",
		Short: "Convert YAML documents to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			ws := openWorkspace(workspace)

			if indent == 0 {
				indent = ws.cfg.Defaults.JSONIndent
			}
			opts := yamljson.Options{Indent: indent, Compact: compact}

			res, id, err := ws.runner(noSave).Execute(cmd.Context(), domain.ToolYAMLToJSON, input,
				map[string]string{
					"indent":  strconv.Itoa(indent),
					"compact": strconv.FormatBool(compact),
				},
				func(in string) domain.ToolResult { return yamljson.ToJSON(in, opts) },
			)
			if err != nil {
				return err
			}
			return printResult(os.Stdout, res, id, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&file, "file", "f", "", "Read input from a file instead of the argument or stdin")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not record this run in workspace history")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().IntVar(&indent, "indent", 0, "JSON indent width (default from workspace config)")
	c.Flags().BoolVar(&compact, "compact", false, "Single-line JSON output")
	return c
}

func json2yamlCmd() *cobra.Command {
	var workspace, file, format string
	var noSave bool

	c := &cobra.Command{
		Use:   "json2yaml [json]",
		Short: "Convert JSON documents to YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			ws := openWorkspace(workspace)

			res, id, err := ws.runner(noSave).Execute(cmd.Context(), domain.ToolJSONToYAML, input,
				nil, yamljson.ToYAML,
			)
			if err != nil {
				return err
			}
			return printResult(os.Stdout, res, id, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&file, "file", "f", "", "Read input from a file instead of the argument or stdin")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not record this run in workspace history")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

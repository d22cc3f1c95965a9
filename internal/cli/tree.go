package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/usecase/jsontree"
)

func treeCmd() *cobra.Command {
	var workspace, file, format string
	var noSave bool
	var query string

	c := &cobra.Command{
		Use:   "tree [json]",
		Short: "Browse JSON as a tree, query with JSONPath",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			ws := openWorkspace(workspace)

			convert := jsontree.Convert
			options := map[string]string(nil)
			if query != "" {
				convert = func(in string) domain.ToolResult { return jsontree.Query(in, query) }
				options = map[string]string{"query": query}
			}

			res, id, err := ws.runner(noSave).Execute(cmd.Context(), domain.ToolJSONTree, input,
				options, convert,
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
	c.Flags().StringVarP(&query, "query", "q", "", "JSONPath expression, e.g. $.users[0].name")
	return c
}

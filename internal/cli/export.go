package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/usecase/report"
)

func exportCmd() *cobra.Command {
	var workspace, file string
	var toolFlag, out string
	var noSave, preview bool

	c := &cobra.Command{
		Use:   "export [input]",
		Short: "Run a tool and export the outcome as a Markdown report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := openWorkspace(workspace)

			tool := domain.ToolID(toolFlag)
			info, ok := domain.LookupTool(tool)
			if !ok {
				return fmt.Errorf("unknown tool %q", toolFlag)
			}
			convert, ok := defaultConvert(ws, tool)
			if !ok {
				return fmt.Errorf("tool %q cannot be exported", toolFlag)
			}

			input, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}

			res, _, err := ws.runner(noSave).Execute(cmd.Context(), tool, input,
				map[string]string{"export": "markdown"},
				convert,
			)
			if err != nil {
				return err
			}

			md := report.FromResult(info, input, res)

			if preview {
				rendered, perr := report.Preview(md)
				if perr != nil {
					return perr
				}
				fmt.Print(rendered)
				return nil
			}

			if out == "" {
				fmt.Print(md)
				return nil
			}

			path := resolveOutPath(ws, out)
			if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&file, "file", "f", "", "Read input from a file instead of the argument or stdin")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not record this run in workspace history")
	c.Flags().StringVarP(&toolFlag, "tool", "t", "", "Tool to run, e.g. json2ts (required)")
	c.Flags().StringVarP(&out, "out", "o", "", "Write the report to this file (relative paths land in exports/)")
	c.Flags().BoolVar(&preview, "preview", false, "Render the report to the terminal instead of raw Markdown")

	_ = c.MarkFlagRequired("tool")
	return c
}

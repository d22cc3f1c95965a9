package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/usecase/jsontype"
	"github.com/aalvaropc/toolbelt/internal/usecase/tabular"
)

func json2tsCmd() *cobra.Command {
	var workspace, file, format string
	var noSave bool
	var rootName string
	var export, inline, noSemicolons, optionalNull bool

	c := &cobra.Command{
		Use:   "json2ts [json]",
		Short: "Infer TypeScript declarations from a JSON sample",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			ws := openWorkspace(workspace)

			opts := jsontype.Options{
				RootName:     rootName,
				Export:       export,
				Inline:       inline,
				NoSemicolons: noSemicolons,
				OptionalNull: optionalNull,
			}

			res, id, err := ws.runner(noSave).Execute(cmd.Context(), domain.ToolJSONToTS, input,
				map[string]string{
					"root":   rootName,
					"export": strconv.FormatBool(export),
					"inline": strconv.FormatBool(inline),
				},
				func(in string) domain.ToolResult { return jsontype.Convert(in, opts) },
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
	c.Flags().StringVar(&rootName, "root", "", "Name of the root declaration (default Root)")
	c.Flags().BoolVar(&export, "export", false, "Prefix declarations with 'export'")
	c.Flags().BoolVar(&inline, "inline", false, "Emit object literals instead of named interfaces")
	c.Flags().BoolVar(&noSemicolons, "no-semicolons", false, "Drop trailing semicolons on members")
	c.Flags().BoolVar(&optionalNull, "optional-null", false, "Members whose sample value is null become optional")
	return c
}

func json2csvCmd() *cobra.Command {
	var workspace, file, format string
	var noSave bool
	var delimiter string
	var noHeader bool

	c := &cobra.Command{
		Use:   "json2csv [json]",
		Short: "Flatten a JSON array into delimited rows",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			ws := openWorkspace(workspace)

			if delimiter == "" {
				delimiter = ws.cfg.Defaults.CSVDelimiter
			}
			opts := tabular.Options{Delimiter: delimiter, NoHeader: noHeader}

			res, id, err := ws.runner(noSave).Execute(cmd.Context(), domain.ToolJSONToCSV, input,
				map[string]string{
					"delimiter": delimiter,
					"no_header": strconv.FormatBool(noHeader),
				},
				func(in string) domain.ToolResult { return tabular.ToCSV(in, opts) },
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
	c.Flags().StringVarP(&delimiter, "delimiter", "d", "", "Field delimiter (default from workspace config)")
	c.Flags().BoolVar(&noHeader, "no-header", false, "Omit the header row")
	return c
}

func json2xlsxCmd() *cobra.Command {
	var workspace, file, format string
	var noSave bool
	var sheet, out string

	c := &cobra.Command{
		Use:   "json2xlsx [json]",
		Short: "Flatten a JSON array into an Excel workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			ws := openWorkspace(workspace)

			opts := tabular.Options{SheetName: sheet}

			res, id, err := ws.runner(noSave).Execute(cmd.Context(), domain.ToolJSONToXLSX, input,
				map[string]string{"sheet": sheet},
				func(in string) domain.ToolResult { return tabular.ToXLSX(in, opts) },
			)
			if err != nil {
				return err
			}

			if out != "" {
				path := resolveOutPath(ws, out)
				if err := writeBinaryResult(res, path); err != nil {
					return err
				}
				fmt.Printf("Wrote %s\n", path)
				return nil
			}
			return printResult(os.Stdout, res, id, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&file, "file", "f", "", "Read input from a file instead of the argument or stdin")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not record this run in workspace history")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json (base64 workbook)")
	c.Flags().StringVar(&sheet, "sheet", "", "Worksheet name (default Sheet1)")
	c.Flags().StringVarP(&out, "out", "o", "", "Write the workbook to this file (relative paths land in exports/)")
	return c
}

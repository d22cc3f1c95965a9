package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/usecase/colorconv"
	"github.com/aalvaropc/toolbelt/internal/usecase/mockdata"
	"github.com/aalvaropc/toolbelt/internal/usecase/unitconv"
)

func colorCmd() *cobra.Command {
	var workspace, format string
	var noSave bool

	c := &cobra.Command{
		Use:   "color <value>",
		Short: "Convert a color between hex, rgb(), hsl() and HSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := openWorkspace(workspace)

			res, id, err := ws.runner(noSave).Execute(cmd.Context(), domain.ToolColor, args[0],
				nil, colorconv.Convert,
			)
			if err != nil {
				return err
			}
			return printResult(os.Stdout, res, id, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not record this run in workspace history")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func unitsCmd() *cobra.Command {
	var workspace, format string
	var noSave bool
	var from, to string
	var listCat string

	c := &cobra.Command{
		Use:   "units [value [from to]]",
		Short: "Convert length, mass, data size, duration or temperature",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listCat != "" {
				units, err := unitconv.Units(listCat)
				if err != nil {
					return err
				}
				fmt.Println(strings.Join(units, " "))
				return nil
			}
			if len(args) == 0 {
				fmt.Printf("Categories: %s\n", strings.Join(unitconv.Categories(), ", "))
				return nil
			}

			ws := openWorkspace(workspace)

			input := strings.Join(args, " ")
			opts := unitconv.Options{From: from, To: to}

			res, id, err := ws.runner(noSave).Execute(cmd.Context(), domain.ToolUnits, input,
				map[string]string{"from": from, "to": to},
				func(in string) domain.ToolResult { return unitconv.Convert(in, opts) },
			)
			if err != nil {
				return err
			}
			return printResult(os.Stdout, res, id, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not record this run in workspace history")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().StringVar(&from, "from", "", "Source unit (alternative to positional form)")
	c.Flags().StringVar(&to, "to", "", "Target unit (alternative to positional form)")
	c.Flags().StringVar(&listCat, "list", "", "List the units of a category and exit")
	return c
}

func mockCmd() *cobra.Command {
	var workspace, file, format string
	var noSave bool
	var count int
	var seed uint64
	var outFormat string

	c := &cobra.Command{
		Use:   "mock [schema]",
		Short: "Generate fake records from a field schema",
		Long: `Generate fake records from a JSON schema mapping field names to kinds,
e.g. {"id": "uuid", "name": "name", "mail": "email"}.

Kinds: ` + strings.Join(mockdata.Kinds(), ", "),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			ws := openWorkspace(workspace)

			opts := mockdata.Options{Count: count, Seed: seed, Format: outFormat}

			res, id, err := ws.runner(noSave).Execute(cmd.Context(), domain.ToolMock, input,
				map[string]string{
					"count":  strconv.Itoa(count),
					"seed":   strconv.FormatUint(seed, 10),
					"format": outFormat,
				},
				func(in string) domain.ToolResult { return mockdata.Generate(in, opts) },
			)
			if err != nil {
				return err
			}
			return printResult(os.Stdout, res, id, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&file, "file", "f", "", "Read the schema from a file instead of the argument or stdin")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not record this run in workspace history")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().IntVarP(&count, "count", "n", 10, "Number of records to generate")
	c.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 means non-deterministic)")
	c.Flags().StringVar(&outFormat, "as", "json", "Record format: json|csv")
	return c
}

package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/usecase/codegen"
)

func barcodeCmd() *cobra.Command {
	var workspace, file, format string
	var noSave bool
	var symbology, level, out string
	var size int

	c := &cobra.Command{
		Use:   "barcode [text]",
		Short: "Generate QR, Code128 or EAN-13 PNG images",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			ws := openWorkspace(workspace)

			if size == 0 {
				size = ws.cfg.Defaults.BarcodeSize
			}
			opts := codegen.Options{
				Format: codegen.Format(symbology),
				Size:   size,
				Level:  level,
			}

			res, id, err := ws.runner(noSave).Execute(cmd.Context(), domain.ToolBarcode, input,
				map[string]string{
					"symbology": symbology,
					"size":      strconv.Itoa(size),
				},
				func(in string) domain.ToolResult { return codegen.Generate(in, opts) },
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
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json (base64 PNG)")
	c.Flags().StringVar(&symbology, "symbology", "qr", "Barcode symbology: qr|code128|ean13")
	c.Flags().IntVar(&size, "size", 0, "Image width in pixels (default from workspace config)")
	c.Flags().StringVar(&level, "level", "", "QR error correction level: L|M|Q|H (default M)")
	c.Flags().StringVarP(&out, "out", "o", "", "Write the PNG to this file (relative paths land in exports/)")
	return c
}

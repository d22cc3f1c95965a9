package cli

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

func batchCmd() *cobra.Command {
	var workspace string
	var toolFlag, outDir string
	var noSave bool
	var parallel int

	c := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Run one tool over many input files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := openWorkspace(workspace)

			tool := domain.ToolID(toolFlag)
			if _, ok := domain.LookupTool(tool); !ok {
				return fmt.Errorf("unknown tool %q", toolFlag)
			}
			convert, ok := defaultConvert(ws, tool)
			if !ok {
				return fmt.Errorf("tool %q cannot run in batch mode", toolFlag)
			}

			if outDir == "" {
				outDir = "."
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			runner := ws.runner(noSave)
			ext := outputExt(tool)

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(parallel)

			for _, in := range args {
				g.Go(func() error {
					b, err := os.ReadFile(in)
					if err != nil {
						return fmt.Errorf("%s: %w", in, err)
					}

					res, _, err := runner.Execute(ctx, tool, string(b),
						map[string]string{"batch": "true", "source": in},
						convert,
					)
					if err != nil {
						return fmt.Errorf("%s: %w", in, err)
					}
					if !res.Success {
						return fmt.Errorf("%s: %s", in, res.Err)
					}

					out := filepath.Join(outDir, outputName(in, ext))
					payload := []byte(res.Output)
					if res.Metadata["encoding"] == "base64" {
						payload, err = base64.StdEncoding.DecodeString(res.Output)
						if err != nil {
							return fmt.Errorf("%s: decode payload: %w", in, err)
						}
					}
					if err := os.WriteFile(out, payload, 0o644); err != nil {
						return fmt.Errorf("%s: %w", in, err)
					}

					fmt.Printf("%s -> %s\n", in, out)
					return nil
				})
			}

			return g.Wait()
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&toolFlag, "tool", "t", "", "Tool to run, e.g. json2csv (required)")
	c.Flags().StringVarP(&outDir, "out-dir", "o", "", "Directory for output files (default current directory)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not record these runs in workspace history")
	c.Flags().IntVar(&parallel, "parallel", 4, "Maximum concurrent conversions")

	_ = c.MarkFlagRequired("tool")
	return c
}

func outputName(in, ext string) string {
	base := filepath.Base(in)
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base + ext
}

package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/usecase/certinfo"
)

func certCmd() *cobra.Command {
	var workspace, file, format string
	var noSave bool
	var host string

	c := &cobra.Command{
		Use:   "cert [pem-or-der]",
		Short: "Decode PEM/DER X.509 certificates or fetch a live chain",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := openWorkspace(workspace)

			if host != "" {
				certs, err := ws.fetcher.FetchPeerChain(cmd.Context(), host)
				if err != nil {
					return err
				}

				res, id, runErr := ws.runner(noSave).Execute(cmd.Context(), domain.ToolCert, host,
					map[string]string{"source": "handshake"},
					func(string) domain.ToolResult {
						return certinfo.Summarize(certs, time.Now())
					},
				)
				if runErr != nil {
					return runErr
				}
				return printResult(os.Stdout, res, id, format)
			}

			input, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}

			res, id, err := ws.runner(noSave).Execute(cmd.Context(), domain.ToolCert, input,
				map[string]string{"source": "input"},
				certinfo.Decode,
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
	c.Flags().StringVar(&host, "host", "", "Fetch the chain from host[:port] via TLS handshake instead of decoding input")
	return c
}

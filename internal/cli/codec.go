package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/usecase/basecodec"
)

func base64Cmd() *cobra.Command {
	return codecCmd("base64", domain.ToolBase64,
		"Encode/decode standard or URL-safe Base64",
		basecodec.AlphabetBase64, basecodec.AlphabetBase64URL)
}

func base32Cmd() *cobra.Command {
	return codecCmd("base32", domain.ToolBase32,
		"Encode/decode standard or hex Base32",
		basecodec.AlphabetBase32, basecodec.AlphabetBase32Hex)
}

func codecCmd(use string, tool domain.ToolID, short string, std, alt basecodec.Alphabet) *cobra.Command {
	var workspace, file, format string
	var noSave bool
	var decode, noPadding, altAlphabet bool

	c := &cobra.Command{
		Use:   use + " [text]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			ws := openWorkspace(workspace)

			alphabet := std
			if altAlphabet {
				alphabet = alt
			}
			opts := basecodec.Options{
				Alphabet:  alphabet,
				Decode:    decode,
				NoPadding: noPadding,
			}

			res, id, err := ws.runner(noSave).Execute(cmd.Context(), tool, input,
				map[string]string{
					"alphabet": string(alphabet),
					"decode":   strconv.FormatBool(decode),
				},
				func(in string) domain.ToolResult { return basecodec.Run(in, opts) },
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
	c.Flags().BoolVarP(&decode, "decode", "D", false, "Decode instead of encode")
	c.Flags().BoolVar(&noPadding, "no-padding", false, "Omit padding characters")
	c.Flags().BoolVar(&altAlphabet, "alt", false, "Use the alternate alphabet ("+string(alt)+")")
	return c
}

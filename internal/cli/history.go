package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

func historyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded tool runs",
	}

	c.AddCommand(historyListCmd())
	return c
}

func historyListCmd() *cobra.Command {
	var workspace, format string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			if ws.store == nil {
				fmt.Println("(history is disabled in this workspace)")
				return nil
			}

			recs, err := ws.store.ListRecords(limit)
			if err != nil {
				return err
			}

			return printHistory(os.Stdout, ws.root, recs, format)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum records to show (0 means all)")
	return cmd
}

func printHistory(w io.Writer, root string, recs []domain.HistoryRecord, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case "pretty", "":
		if len(recs) == 0 {
			fmt.Fprintln(w, "(no recorded runs)")
			return nil
		}
		fmt.Fprintf(w, "Workspace: %s\n\n", root)
		for _, r := range recs {
			status := "OK"
			if !r.Success {
				status = "FAIL"
			}
			fmt.Fprintf(w, "- [%s] %-10s %s  %s  (%d B in / %d B out)\n",
				status, r.Tool, r.StartedAt.Format(time.RFC3339), shortRecordID(r.ID),
				r.InputBytes, r.OutputBytes)
			if r.ErrorText != "" {
				fmt.Fprintf(w, "  error: %s\n", r.ErrorText)
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func shortRecordID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hayashik/onramp/internal/events"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the workspace LLM request ledger",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		root, err := resolveWorkspace(cmd)
		if err != nil {
			return err
		}
		ledger, err := events.Open(root)
		if err != nil {
			return fmt.Errorf("open event ledger: %w", err)
		}
		defer ledger.Close()

		evs, err := ledger.List(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list events: %w", err)
		}
		if len(evs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No LLM events recorded.")
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-5s  %-19s  %-12s  %-28s  %-7s  %-7s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "Chunks", "Chars", "Ms", "OK")
		fmt.Fprintln(out, strings.Repeat("─", 100))
		for _, e := range evs {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Fprintf(out, "%-5d  %-19s  %-12s  %-28s  %-7d  %-7d  %-7d  %s\n",
				e.ID, e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				e.Purpose, model, e.Chunks, e.OutputChars, e.LatencyMs, ok)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View one LLM request with its full request/response bodies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int64
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid event id %q", args[0])
		}

		root, err := resolveWorkspace(cmd)
		if err != nil {
			return err
		}
		ledger, err := events.Open(root)
		if err != nil {
			return fmt.Errorf("open event ledger: %w", err)
		}
		defer ledger.Close()

		ev, err := ledger.Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("load event: %w", err)
		}
		if ev == nil {
			return fmt.Errorf("no event with id %d", id)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Event %d — %s", ev.ID, ev.Purpose)))
		fmt.Fprintf(out, "Provider: %s  Model: %s\n", ev.Provider, ev.Model)
		fmt.Fprintf(out, "Chunks: %d  Output chars: %d  Latency: %dms  Success: %t\n",
			ev.Chunks, ev.OutputChars, ev.LatencyMs, ev.Success)
		if ev.ErrorMessage != "" {
			fmt.Fprintln(out, errorStyle.Render("Error: "+ev.ErrorMessage))
		}
		fmt.Fprintln(out, sectionStyle.Render("\nRequest"))
		fmt.Fprintln(out, ev.RequestBody)
		fmt.Fprintln(out, sectionStyle.Render("Response"))
		fmt.Fprintln(out, ev.ResponseBody)
		return nil
	},
}

func init() {
	llmListCmd.Flags().Int("limit", 20, "Maximum number of events to list")
	llmListCmd.Flags().String("purpose", "", "Filter by purpose (curriculum, quiz)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
}

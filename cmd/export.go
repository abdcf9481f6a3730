package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hayashik/onramp/internal/curriculum"
	"github.com/hayashik/onramp/internal/export"
	"github.com/hayashik/onramp/internal/stats"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the curriculum and progress as markdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveWorkspace(cmd)
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")

		doc, ok := curriculum.NewStore(root).Load()
		if !ok {
			return fmt.Errorf("no curriculum found: run `onramp generate` first")
		}
		// Statistics are optional in the export.
		s, _ := stats.NewEngine(root).Load()

		rendered := export.Markdown(doc, s)
		if output == "" {
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		}
		if err := os.WriteFile(output, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Exported to "+output))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
}

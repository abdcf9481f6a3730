package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hayashik/onramp/internal/curriculum"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a personalized curriculum for this workspace",
	Long: "Analyzes the workspace, detects its technology stack, and asks the\n" +
		"configured LLM provider for a curriculum tailored to your profile.\n" +
		"Regenerating replaces the previous curriculum and clears its statistics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveWorkspace(cmd)
		if err != nil {
			return err
		}
		client, cleanup, err := newLLMClient(cmd, root)
		if err != nil {
			return err
		}
		defer cleanup()

		gen := curriculum.NewGenerator(root, client)
		var doc *curriculum.Curriculum
		for ev := range gen.Generate(cmd.Context()) {
			switch ev.Phase {
			case curriculum.PhaseError:
				return ev.Err
			case curriculum.PhaseCompleted:
				doc = ev.Curriculum
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
					dimStyle.Render(fmt.Sprintf("[%3d%%]", ev.Percent)), ev.Message)
			}
		}
		if doc == nil {
			return fmt.Errorf("generation ended without a result")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, successStyle.Render("Curriculum ready."))
		fmt.Fprintf(out, "%s\n", titleStyle.Render(doc.Title))
		for _, ch := range doc.Chapters {
			fmt.Fprintf(out, "  %d. %s (%d tasks)\n", ch.Order+1, ch.Title, len(ch.Tasks))
		}
		fmt.Fprintln(out, dimStyle.Render("Run `onramp task list` to get started."))
		return nil
	},
}

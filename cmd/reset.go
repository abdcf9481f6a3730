package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hayashik/onramp/internal/curriculum"
	"github.com/hayashik/onramp/internal/quiz"
	"github.com/hayashik/onramp/internal/state"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete generated state for this workspace",
	Long: "Removes the curriculum, quiz, answers, result, and statistics.\n" +
		"With --all the profile and the LLM event ledger are removed too.",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveWorkspace(cmd)
		if err != nil {
			return err
		}
		all, _ := cmd.Flags().GetBool("all")

		if err := curriculum.NewStore(root).Delete(); err != nil {
			return fmt.Errorf("delete curriculum: %w", err)
		}
		if err := quiz.NewStore(root).Delete(); err != nil {
			return fmt.Errorf("delete quiz: %w", err)
		}
		if all {
			if err := state.Remove(state.Path(root, state.ProfileFile)); err != nil {
				return fmt.Errorf("delete profile: %w", err)
			}
			if err := state.Remove(state.Path(root, state.EventsDBFile)); err != nil {
				return fmt.Errorf("delete event ledger: %w", err)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Workspace state cleared."))
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Also delete the profile and LLM event ledger")
}

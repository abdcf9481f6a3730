package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/hayashik/onramp/internal/profile"
	"github.com/hayashik/onramp/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Diagnostic quiz: generate, answer, and score",
}

var quizGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a diagnostic quiz for the detected technologies",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveWorkspace(cmd)
		if err != nil {
			return err
		}
		techs, _ := cmd.Flags().GetStringSlice("tech")

		client, cleanup, err := newLLMClient(cmd, root)
		if err != nil {
			return err
		}
		defer cleanup()

		gen := quiz.NewGenerator(root, client)
		var doc *quiz.Quiz
		for ev := range gen.Generate(cmd.Context(), techs) {
			switch ev.Phase {
			case quiz.PhaseError:
				return ev.Err
			case quiz.PhaseCompleted:
				doc = ev.Quiz
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
					dimStyle.Render(fmt.Sprintf("[%3d%%]", ev.Percent)), ev.Message)
			}
		}
		if doc == nil {
			return fmt.Errorf("generation ended without a result")
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(
			fmt.Sprintf("Quiz ready: %d questions. Run `onramp quiz show`.", len(doc.Questions))))
		return nil
	},
}

var quizShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the quiz questions (answers hidden)",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveWorkspace(cmd)
		if err != nil {
			return err
		}
		doc, ok := quiz.NewStore(root).Load()
		if !ok {
			return fmt.Errorf("no quiz found: run `onramp quiz generate` first")
		}

		out := cmd.OutOrStdout()
		// Only the public projection is printed; it carries no
		// correctness flags.
		for _, q := range doc.Public() {
			fmt.Fprintf(out, "%s %s\n",
				sectionStyle.Render(fmt.Sprintf("Q%d.", q.QuestionNumber)),
				q.QuestionText)
			fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("    %s · %s · id %s", q.Technology, q.Difficulty, q.ID)))
			for _, c := range q.Choices {
				fmt.Fprintf(out, "    %s) %s\n", c.ID, c.Text)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

var quizAnswerCmd = &cobra.Command{
	Use:   "answer <question-id> <choice>",
	Short: "Record an answer (re-answering replaces the previous one)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveWorkspace(cmd)
		if err != nil {
			return err
		}
		seconds, _ := cmd.Flags().GetInt("seconds")

		a, err := quiz.NewStore(root).RecordAnswer(args[0], args[1], seconds)
		if err != nil {
			return fmt.Errorf("record answer: %w", err)
		}
		if a == nil {
			return fmt.Errorf("unknown question id %q: see `onramp quiz show`", args[0])
		}

		if a.IsCorrect {
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Correct."))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), errorStyle.Render("Incorrect."))
		}
		return nil
	},
}

var quizCheckCmd = &cobra.Command{
	Use:   "check <question-id> <choice>",
	Short: "Check a choice without recording it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveWorkspace(cmd)
		if err != nil {
			return err
		}
		check, err := quiz.NewStore(root).CheckAnswer(args[0], args[1])
		if err != nil {
			return fmt.Errorf("check answer: %w", err)
		}
		if check == nil {
			return fmt.Errorf("unknown question id %q: see `onramp quiz show`", args[0])
		}

		out := cmd.OutOrStdout()
		if check.Correct {
			fmt.Fprintln(out, successStyle.Render("Correct."))
		} else {
			fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("Incorrect — the answer is %s.", check.CorrectChoiceID)))
		}
		fmt.Fprintln(out, dimStyle.Render(check.Explanation))
		return nil
	},
}

var quizResultCmd = &cobra.Command{
	Use:   "result",
	Short: "Score recorded answers and derive proficiency levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveWorkspace(cmd)
		if err != nil {
			return err
		}
		applyProfile, _ := cmd.Flags().GetBool("apply-profile")

		store := quiz.NewStore(root)
		doc, ok := store.Load()
		if !ok {
			return fmt.Errorf("no quiz found: run `onramp quiz generate` first")
		}
		sheet, ok := store.LoadAnswers()
		if !ok || len(sheet.Answers) == 0 {
			return fmt.Errorf("no answers recorded: run `onramp quiz answer` first")
		}

		now := time.Now()
		result := quiz.Analyze(doc, sheet.Answers, now)
		if err := store.SaveResult(result); err != nil {
			return fmt.Errorf("save result: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Score: %.0f%% — %s", result.OverallScore*100, result.OverallLevel)))
		techs := make([]string, 0, len(result.ProficiencyLevels))
		for tech := range result.ProficiencyLevels {
			techs = append(techs, tech)
		}
		sort.Strings(techs)
		for _, tech := range techs {
			fmt.Fprintf(out, "  %-20s %s\n", tech, profile.LevelDescriptor(result.ProficiencyLevels[tech]))
		}

		suggested := quiz.SuggestedProfile(result, now)
		if applyProfile {
			if err := profile.NewStore(root).Save(suggested); err != nil {
				return fmt.Errorf("save profile: %w", err)
			}
			fmt.Fprintln(out, successStyle.Render("Profile updated from quiz result."))
		} else {
			fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf(
				"Suggested profile: %s, %s. Apply it with --apply-profile.",
				profile.ExperienceDescriptor(suggested.ExperienceLevel),
				profile.RoleDescriptor(suggested.PrimaryRole))))
		}
		return nil
	},
}

func init() {
	quizGenerateCmd.Flags().StringSlice("tech", nil, "Override detected technologies")
	quizAnswerCmd.Flags().Int("seconds", 0, "Time spent on the question")
	quizResultCmd.Flags().Bool("apply-profile", false, "Save the suggested profile derived from the result")

	quizCmd.AddCommand(quizGenerateCmd)
	quizCmd.AddCommand(quizShowCmd)
	quizCmd.AddCommand(quizAnswerCmd)
	quizCmd.AddCommand(quizCheckCmd)
	quizCmd.AddCommand(quizResultCmd)
}

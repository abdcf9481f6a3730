package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hayashik/onramp/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or set your proficiency profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveWorkspace(cmd)
		if err != nil {
			return err
		}
		prof, ok := profile.NewStore(root).Load()
		if !ok {
			return fmt.Errorf("no profile found: run `onramp profile init` or `onramp quiz result --apply-profile`")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("Profile"))
		fmt.Fprintf(out, "Experience: %s\n", profile.ExperienceDescriptor(prof.ExperienceLevel))
		fmt.Fprintf(out, "Role:       %s\n", profile.RoleDescriptor(prof.PrimaryRole))
		if prof.LearningGoal != "" {
			fmt.Fprintf(out, "Goal:       %s\n", prof.LearningGoal)
		}
		if d := profile.StyleDescriptor(prof.LearningStyle); d != "" {
			fmt.Fprintf(out, "Style:      %s\n", d)
		}
		if len(prof.Technologies) > 0 {
			fmt.Fprintln(out, sectionStyle.Render("Technologies"))
			techs := make([]string, 0, len(prof.Technologies))
			for tech := range prof.Technologies {
				techs = append(techs, tech)
			}
			sort.Strings(techs)
			for _, tech := range techs {
				fmt.Fprintf(out, "  %-20s %s\n", tech, profile.LevelDescriptor(prof.Technologies[tech]))
			}
		}
		fmt.Fprintln(out, dimStyle.Render("Updated "+prof.UpdatedAt.Format("2006-01-02 15:04")))
		return nil
	},
}

var profileInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or replace the profile",
	Example: `  onramp profile init --experience 1_to_3_years --role backend \
    --tech Go=practical --tech Docker=basic --goal "own the billing service"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveWorkspace(cmd)
		if err != nil {
			return err
		}
		experience, _ := cmd.Flags().GetString("experience")
		role, _ := cmd.Flags().GetString("role")
		goal, _ := cmd.Flags().GetString("goal")
		style, _ := cmd.Flags().GetString("style")
		techPairs, _ := cmd.Flags().GetStringSlice("tech")

		prof := &profile.Profile{
			ExperienceLevel: profile.ExperienceLevel(experience),
			PrimaryRole:     profile.Role(role),
			LearningGoal:    goal,
			LearningStyle:   profile.LearningStyle(style),
			Technologies:    map[string]profile.Level{},
		}
		for _, pair := range techPairs {
			name, level, ok := strings.Cut(pair, "=")
			if !ok {
				return fmt.Errorf("invalid --tech %q: expected Name=level", pair)
			}
			prof.Technologies[name] = profile.Level(level)
		}

		if err := profile.NewStore(root).Save(prof); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Profile saved."))
		return nil
	},
}

func init() {
	profileInitCmd.Flags().String("experience", string(profile.Experience1To3Years),
		"less_than_1_year | 1_to_3_years | 3_to_5_years | more_than_5_years")
	profileInitCmd.Flags().String("role", string(profile.RoleOther),
		"frontend | backend | fullstack | mobile | devops | other")
	profileInitCmd.Flags().String("goal", "", "Free-text learning goal")
	profileInitCmd.Flags().String("style", "",
		"hands_on | theory_first | example_driven")
	profileInitCmd.Flags().StringSlice("tech", nil,
		"Per-technology proficiency as Name=level (no_experience | basic | practical | expert)")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileInitCmd)
}

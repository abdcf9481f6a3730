// Package cmd wires the onramp CLI.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hayashik/onramp/internal/events"
	"github.com/hayashik/onramp/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:   "onramp",
	Short: "Personalized onboarding curricula for unfamiliar codebases",
	Long: "Onramp analyzes a project's structure and technology stack, combines it\n" +
		"with your proficiency profile, and generates a personalized learning\n" +
		"curriculum (plus a diagnostic quiz) with an LLM. Progress, time spent,\n" +
		"and streaks are tracked in a project-local .onramp/ directory.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("workspace", "w", ".", "Project workspace root")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveWorkspace returns the absolute workspace root from the
// persistent flag.
func resolveWorkspace(cmd *cobra.Command) (string, error) {
	root, _ := cmd.Flags().GetString("workspace")
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve workspace path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("workspace %q is not a directory", root)
	}
	return abs, nil
}

// newLLMClient resolves provider configuration and builds a client with
// the workspace event ledger attached. The returned cleanup closes the
// ledger and is safe to call when ledger setup failed.
func newLLMClient(cmd *cobra.Command, workspaceRoot string) (llm.Client, func(), error) {
	cfg, err := llm.ResolveConfig()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	var recorder llm.EventRecorder
	ledger, err := events.Open(workspaceRoot)
	if err == nil {
		recorder = ledger
		cleanup = func() { ledger.Close() }
	} else {
		// Generation still works without the audit ledger.
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: event ledger unavailable: %v\n", err)
	}

	client, err := llm.NewClient(cmd.Context(), cfg, recorder)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return client, cleanup, nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/adixit/intervue/internal/app"
	"github.com/adixit/intervue/internal/bank"
	"github.com/adixit/intervue/internal/coach"
	"github.com/adixit/intervue/internal/interview"
	"github.com/adixit/intervue/internal/llm"
	"github.com/adixit/intervue/internal/selfupdate"
	"github.com/adixit/intervue/internal/skills"
	"github.com/adixit/intervue/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		Bank:       bank.Default(),
		Config:     interview.DefaultConfig(),
		Vocabulary: skills.DefaultVocabulary(),
		EventRepo:  eventRepo,
		ReportRepo: st.ReportRepo(),
		Checker:    selfupdate.NewChecker(),
		Version:    version,
	}

	if opts.ResumeText, err = readFlagFile(cmd, "resume"); err != nil {
		return err
	}
	if opts.JDText, err = readFlagFile(cmd, "jd"); err != nil {
		return err
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Answer feedback will be unavailable.")
	} else {
		opts.Coach = coach.NewService(provider, coach.DefaultConfig())
		opts.LLMReady = true
	}

	return app.Run(opts)
}

// readFlagFile reads the contents of the file a flag points at, or returns
// an empty string when the flag is unset.
func readFlagFile(cmd *cobra.Command, name string) (string, error) {
	path, _ := cmd.Flags().GetString(name)
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read --%s file: %w", name, err)
	}
	return string(data), nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/role-recommender/internal/observability"
)

var (
	analyzeInput     string
	analyzeConfig    string
	analyzeRemoteURL string
	analyzeProvider  string
	analyzeJSON      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a work-history description",
	Long:  `Analyze a free-text work-history description (from a file or stdin) and print ranked role recommendations.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "Path to a text file with the experience description (default: stdin)")
	analyzeCmd.Flags().StringVar(&analyzeConfig, "config", "", "Path to a JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeRemoteURL, "remote-url", "", "Recommendation service URL (overrides config)")
	analyzeCmd.Flags().StringVar(&analyzeProvider, "provider", "", "Recommendation provider: http, gemini, or none")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the raw JSON result")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(analyzeConfig)
	if err != nil {
		return err
	}
	if analyzeRemoteURL != "" {
		cfg.RemoteURL = analyzeRemoteURL
	}
	if analyzeProvider != "" {
		cfg.Provider = analyzeProvider
	}

	text, err := readInput(analyzeInput)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	engine, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}

	result, notice := engine.Analyze(ctx, text)

	if analyzeJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	if notice != nil {
		printer.PrintNotice(notice.Message)
	}
	printer.PrintAnalysisResult(result)
	return nil
}

// readInput reads the experience description from a file or stdin.
func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

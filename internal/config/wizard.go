package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/reatler/internal/planner"
	"github.com/ziadkadry99/reatler/internal/project"
)

// RunWizard runs an interactive configuration wizard for the project at root
// and returns the resulting Config. It also saves the config to path.
func RunWizard(root, path string) (*Config, error) {
	fmt.Println("Welcome to reatler! Let's configure your project.")
	fmt.Println()

	cfg := DefaultConfig()

	// Detect project type.
	if plan, ok := planner.Auto(root, nil); ok {
		fmt.Printf("Detected project type(s): %s\n\n", project.Names(plan.Tags))
	}

	// 1. Output file.
	outputPrompt := promptui.Prompt{
		Label:   "Output file",
		Default: cfg.Output,
	}
	output, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output file: %w", err)
	}
	cfg.Output = strings.TrimSpace(output)

	// 2. Format.
	formats := []string{"text", "markdown", "html"}
	formatPrompt := promptui.Select{
		Label: "Select output format",
		Items: formats,
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("format selection: %w", err)
	}
	cfg.Format = formats[formatIdx]

	// 3. Include suffixes. Blank keeps detection on.
	includePrompt := promptui.Prompt{
		Label:   "Include suffixes (comma-separated, leave blank to detect)",
		Default: "",
	}
	includeStr, err := includePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("include patterns: %w", err)
	}
	cfg.Include = splitAndTrim(includeStr)

	// 4. Ignore patterns.
	ignorePrompt := promptui.Prompt{
		Label:   "Ignore patterns (comma-separated, e.g. target,node_modules)",
		Default: "",
	}
	ignoreStr, err := ignorePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("ignore patterns: %w", err)
	}
	cfg.Ignore = splitAndTrim(ignoreStr)

	// 5. Clipboard.
	clipboardPrompt := promptui.Select{
		Label: "Copy the result to the clipboard",
		Items: []string{"yes", "no"},
	}
	clipIdx, _, err := clipboardPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("clipboard selection: %w", err)
	}
	cfg.Clipboard = clipIdx == 0

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}

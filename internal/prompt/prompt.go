// Package prompt asks the user for a scan rule when it cannot be inferred,
// and for a directory when a lookup returns several.
package prompt

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// Rule runs the manual prompts and returns the include and ignore patterns
// typed by the user.
func Rule() (include, ignore []string, err error) {
	types, err := askOptional("Which file types to include? (example: rs toml)")
	if err != nil {
		return nil, nil, fmt.Errorf("include prompt: %w", err)
	}
	skip, err := askOptional("Which files/directories to ignore? (example: target dist .d.ts)")
	if err != nil {
		return nil, nil, fmt.Errorf("ignore prompt: %w", err)
	}
	return ParseTypes(types), ParseIgnore(skip), nil
}

// ParseTypes splits a space or comma separated answer into suffix patterns,
// adding the leading dot where it was left out: "rs .toml" -> [".rs" ".toml"].
func ParseTypes(input string) []string {
	var types []string
	for _, field := range splitFields(input) {
		if !strings.HasPrefix(field, ".") {
			field = "." + field
		}
		types = append(types, field)
	}
	return types
}

// ParseIgnore splits a space or comma separated answer into ignore patterns.
func ParseIgnore(input string) []string {
	return splitFields(input)
}

func splitFields(input string) []string {
	return strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// ChooseDirectory lets the user pick one of dirs. A single candidate is
// returned without asking.
func ChooseDirectory(dirs []string) (string, error) {
	switch len(dirs) {
	case 0:
		return "", fmt.Errorf("no directories to choose from")
	case 1:
		return dirs[0], nil
	}

	sel := promptui.Select{
		Label: fmt.Sprintf("Found %d matching directories", len(dirs)),
		Items: dirs,
		Size:  15,
	}
	_, choice, err := sel.Run()
	if err != nil {
		return "", fmt.Errorf("directory selection: %w", err)
	}
	return choice, nil
}

// askOptional displays a prompt and returns the user's input. An empty string
// is returned if the user presses Enter without typing anything.
func askOptional(label string) (string, error) {
	p := promptui.Prompt{
		Label:     label,
		Default:   "",
		AllowEdit: true,
	}
	return p.Run()
}

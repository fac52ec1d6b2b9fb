package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/reatler/internal/assemble"
	"github.com/ziadkadry99/reatler/internal/config"
	"github.com/ziadkadry99/reatler/internal/planner"
	"github.com/ziadkadry99/reatler/internal/progress"
	"github.com/ziadkadry99/reatler/internal/project"
	"github.com/ziadkadry99/reatler/internal/prompt"
)

func runSelect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	smart, _ := cmd.Flags().GetString("smart")
	manual, _ := cmd.Flags().GetBool("manual")
	includeFlag, _ := cmd.Flags().GetStringSlice("include")
	ignoreFlag, _ := cmd.Flags().GetStringSlice("ignore")
	typeFlag, _ := cmd.Flags().GetStringSlice("type")
	noClipboard, _ := cmd.Flags().GetBool("no-clipboard")

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.Output = output
	}
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		cfg.Format = f
	}
	format, err := assemble.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	tags, err := project.ParseTags(typeFlag)
	if err != nil {
		return err
	}

	root := rootArg(args)
	if smart != "" {
		root, err = pickDirectory(cfg, root, smart)
		if err != nil {
			return err
		}
	}

	ignore := append(baselineIgnore(cfg, root), ignoreFlag...)
	include := append(append([]string{}, cfg.Include...), includeFlag...)

	var plan planner.Plan
	if manual {
		plan, err = manualPlan(manualInclude(tags, include), ignore)
	} else {
		var ok bool
		plan, ok = planner.Build(root, planner.Request{Tags: tags, Include: include, Ignore: ignore})
		if !ok {
			fmt.Println("Auto-detection failed, falling back to manual.")
			plan, err = manualPlan(include, ignore)
		}
	}
	if err != nil {
		return err
	}
	if len(plan.Tags) > 0 {
		cyan.Printf("Detected project type(s): %s\n", project.Names(plan.Tags))
	}
	logf("Include: %v", plan.Rule.Include)
	logf("Ignore: %v", plan.Rule.Ignore)

	sel, err := planner.Select(root, plan)
	if err != nil {
		return fmt.Errorf("scanning files: %w", err)
	}
	sel.Files = withoutFile(sel.Files, cfg.Output)
	for _, f := range sel.Files {
		green.Printf("+%s\n", f)
	}
	if len(sel.Files) == 0 {
		fmt.Println("No files matched.")
		return nil
	}

	asm := assemble.New(format, progress.NewReporter())
	if abs, err := filepath.Abs(root); err == nil {
		asm.Title = filepath.Base(abs)
	}
	res, err := asm.WriteFile(cfg.Output, sel.Files)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	for _, f := range res.Skipped {
		logf("Skipped binary file %s", f)
	}
	fmt.Printf("Wrote %d file(s), %d bytes, to %s\n", len(res.Written), res.Bytes, cfg.Output)

	if cfg.Clipboard && !noClipboard {
		copyToClipboard(cfg.Output)
	}
	return nil
}

// pickDirectory resolves --smart: it looks up directories under root whose
// name contains query and lets the user choose one.
func pickDirectory(cfg *config.Config, root, query string) (string, error) {
	dirs, err := newFinder(cfg).FindDirectories(root, query, baselineIgnore(cfg, root))
	if err != nil {
		return "", err
	}
	if len(dirs) == 0 {
		return "", fmt.Errorf("no directories matching %q found under %s", query, root)
	}

	choice, err := prompt.ChooseDirectory(dirs)
	if err != nil {
		return "", err
	}
	fmt.Printf("\n→ Assembling files under: %s\n\n", choice)
	return choice, nil
}

// manualPlan asks for the rule and merges the answers with the patterns
// already known from flags, config and the ignore file.
func manualPlan(include, ignore []string) (planner.Plan, error) {
	types, skip, err := prompt.Rule()
	if err != nil {
		return planner.Plan{}, err
	}
	return planner.Manual(append(include, types...), append(skip, ignore...)), nil
}

func copyToClipboard(path string) {
	err := assemble.CopyFile(path)
	switch {
	case errors.Is(err, assemble.ErrNoClipboard):
		warnf("can't reach clipboard")
	case err != nil:
		warnf("%v", err)
	default:
		fmt.Println("Copied to clipboard")
	}
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/reatler/internal/planner"
	"github.com/ziadkadry99/reatler/internal/project"
)

var detectCmd = &cobra.Command{
	Use:   "detect [dir]",
	Short: "Show the detected project types and the files they include",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		root := rootArg(args)
		plan, ok := planner.Auto(root, baselineIgnore(cfg, root))
		if !ok {
			fmt.Printf("No project type detected in %s.\n", root)
			return nil
		}

		cyan.Printf("Detected project type(s): %s\n", project.Names(plan.Tags))
		for _, tag := range plan.Tags {
			fmt.Printf("  %-12s %s\n", tag.Name(), strings.Join(tag.Files(), " "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

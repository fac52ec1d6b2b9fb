package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <query> [dir]",
	Short: "List directories whose name contains query",
	Long:  `Looks up directories by (part of) their name, case-insensitively. fd is used when installed; otherwise the tree is walked.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		root := rootArg(args[1:])
		dirs, err := newFinder(cfg).FindDirectories(root, args[0], baselineIgnore(cfg, root))
		if err != nil {
			return err
		}
		if len(dirs) == 0 {
			return fmt.Errorf("no directories matching %q found under %s", args[0], root)
		}
		for _, d := range dirs {
			fmt.Println(d)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}

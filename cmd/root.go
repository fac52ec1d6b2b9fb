package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/reatler/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "reatler [dir]",
	Short: "Gather a project's source files into one document",
	Long: `reatler detects the kind of project in a directory from its marker files,
selects the files that belong to it and concatenates them into a single
document, each file preceded by its path. The result is written to a file
and copied to the clipboard, ready to paste into a chat with an AI model.

When no project type is recognised reatler asks which file types to
include and which paths to ignore.`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runSelect,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.FileName, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().String("smart", "", "pick the directory to assemble by (part of) its name")
	rootCmd.Flags().BoolP("manual", "m", false, "skip detection and ask for file types and ignores")
	rootCmd.Flags().StringSlice("include", nil, "file name suffixes to include (repeatable, comma-separated)")
	rootCmd.Flags().StringSlice("ignore", nil, "path substrings to skip (repeatable, comma-separated)")
	rootCmd.Flags().StringSlice("type", nil, "project types to include, e.g. go,python")
	rootCmd.Flags().StringP("output", "o", "", "output file (overrides config)")
	rootCmd.Flags().String("format", "", "output format: text, markdown or html (overrides config)")
	rootCmd.Flags().Bool("no-clipboard", false, "do not copy the result to the clipboard")
}

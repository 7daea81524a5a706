package main

import (
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive planning session",
	Long: `Start an interactive session with readline editing, history, and tab
completion. Select ports, build a draft configuration, apply it, and step
back and forth with undo/redo. State is saved on exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return NewShell(sess).Run()
	},
}

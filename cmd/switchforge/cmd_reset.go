package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the factory state",
	Long: `Remove every port configuration, declared VLAN and device-wide setting,
returning the plan to its out-of-the-box defaults. Undo history is cleared
as well; a reset cannot be undone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes && !confirm("Reset ALL configuration to factory defaults?") {
			fmt.Println("Aborted.")
			return nil
		}
		sess.Reset()
		fmt.Println("Configuration reset to factory defaults.")
		return nil
	},
}

// confirm prompts the user with a yes/no question, defaulting to no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
}

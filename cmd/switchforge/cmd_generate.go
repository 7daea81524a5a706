package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var generateOutput string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Emit the full configuration text",
	Long: `Render the complete configuration: global settings followed by grouped
interface blocks, wrapped in enable/configure-terminal/end framing. Ports
with identical settings share one "interface range" block.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := sess.GenerateText()
		if text == "" {
			return fmt.Errorf("nothing to generate: no ports or global settings configured")
		}
		if generateOutput == "" {
			fmt.Print(text)
			return nil
		}
		if err := os.WriteFile(generateOutput, []byte(text), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", generateOutput, err)
		}
		fmt.Printf("Wrote configuration to %s.\n", generateOutput)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write to a file instead of stdout")
}

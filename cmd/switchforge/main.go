// Switchforge - Cisco IOS switch configuration planner
//
// A CLI tool for planning switch port and global configuration offline:
//   - Per-port access/trunk configuration with VLAN validation
//   - Multi-port selection and interface-range compression
//   - Reusable port templates (built-in and user-defined)
//   - Snapshot-based undo/redo
//   - Device-wide settings: hostname, secrets, VLANs, SVI, gateway
//   - JSON persistence between runs
//
// The tool never talks to a device. It emits IOS-style command text to
// paste into a console session, grouping identically configured ports into
// "interface range" blocks.
//
// Examples:
//
//	switchforge shell                           # interactive planning session
//	switchforge show ports                      # configured ports as a table
//	switchforge port set 1-4 --mode access --data-vlan 10
//	switchforge generate                        # full config to stdout
//	switchforge generate -o switch.cfg          # ... or to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/switchforge/switchforge/pkg/cli"
	"github.com/switchforge/switchforge/pkg/persist"
	"github.com/switchforge/switchforge/pkg/profile"
	"github.com/switchforge/switchforge/pkg/session"
	"github.com/switchforge/switchforge/pkg/util"
	"github.com/switchforge/switchforge/pkg/version"
)

var (
	// Global option flags
	dataDir     string
	profilePath string
	verbose     bool
	jsonOutput  bool

	// Global state
	sess *session.Session
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "switchforge",
	Short:             "Cisco IOS switch configuration planner",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Switchforge plans switch configuration offline and emits IOS-style
command text. Select ports, assign access or trunk settings (directly or
from templates), set the device-wide basics, then generate the full
configuration to paste into a console session.

State persists as JSON in the data directory, so a plan survives between
runs and the shell picks up where you left off.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if isVersionOrHelp(cmd) {
			return nil
		}

		if verbose {
			if err := util.SetLogLevel("debug"); err != nil {
				return err
			}
		}

		prof := profile.Default()
		if profilePath != "" {
			var err error
			prof, err = profile.Load(profilePath)
			if err != nil {
				return err
			}
		}

		var err error
		sess, err = session.New(prof, persist.NewAdapter(dataDir))
		if err != nil {
			return fmt.Errorf("loading state from %s: %w", dataDir, err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "D", ".", "Directory for persisted state")
	rootCmd.PersistentFlags().StringVarP(&profilePath, "profile", "p", "", "Switch profile YAML file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Output flags are local to the commands that produce structured output.
	for _, cmd := range []*cobra.Command{showPortsCmd, showVlansCmd, showTemplatesCmd, templateShowCmd} {
		cmd.Flags().BoolVar(&jsonOutput, "json", false, "JSON output")
	}

	rootCmd.AddGroup(
		&cobra.Group{ID: "plan", Title: "Planning:"},
		&cobra.Group{ID: "emit", Title: "Output:"},
		&cobra.Group{ID: "meta", Title: "Meta:"},
	)

	for _, cmd := range []*cobra.Command{shellCmd, portCmd, templateCmd, vlanCmd, globalCmd, resetCmd} {
		cmd.GroupID = "plan"
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{showCmd, generateCmd} {
		cmd.GroupID = "emit"
		rootCmd.AddCommand(cmd)
	}
	versionCmd.GroupID = "meta"
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if version.Version == "dev" {
			fmt.Println("switchforge dev build (use 'make build' for version info)")
		} else {
			fmt.Printf("switchforge %s (%s)\n", version.Version, version.GitCommit)
		}
	},
}

// isVersionOrHelp checks whether cmd (or any ancestor) is a help or version
// command, which run without loading state.
func isVersionOrHelp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "version":
			return true
		}
	}
	return false
}

// Color helpers — delegate to pkg/cli
func green(s string) string  { return cli.Green(s) }
func yellow(s string) string { return cli.Yellow(s) }
func red(s string) string    { return cli.Red(s) }
func bold(s string) string   { return cli.Bold(s) }

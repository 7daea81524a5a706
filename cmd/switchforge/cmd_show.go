package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/switchforge/switchforge/pkg/cli"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current plan",
}

var showPortsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List configured ports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return printJSON(sess.Store.Snapshot())
		}
		if sess.Store.Len() == 0 {
			fmt.Println("No ports configured.")
			return nil
		}
		cli.PortTable(os.Stdout, sess.Store, sess.Profile.InterfaceName)
		return nil
	},
}

var showVlansCmd = &cobra.Command{
	Use:   "vlans",
	Short: "List declared and referenced VLANs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return printJSON(sess.Registry.Map())
		}
		if sess.Registry.Len() == 0 {
			fmt.Println("No VLANs declared.")
			return nil
		}
		cli.VLANTable(os.Stdout, sess.Registry)
		return nil
	},
}

var showTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List port templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return printJSON(sess.Templates.All())
		}
		cli.TemplateTable(os.Stdout, sess.Templates)
		return nil
	},
}

var showGridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Draw the port map",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%s (%d ports)  A=access T=trunk .=unconfigured\n",
			bold(sess.Profile.Prefix()), sess.Profile.TotalPorts)
		cli.PortGrid(os.Stdout, sess.Store, sess.Selection)
		return nil
	},
}

var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Render per-port command blocks for inspection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := sess.ShowText()
		if text == "" {
			fmt.Println("No ports configured.")
			return nil
		}
		fmt.Print(text)
		return nil
	},
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	showCmd.AddCommand(showPortsCmd, showVlansCmd, showTemplatesCmd, showGridCmd, showConfigCmd)
}

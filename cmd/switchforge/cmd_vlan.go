package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/switchforge/switchforge/pkg/cli"
	"github.com/switchforge/switchforge/pkg/vlan"
)

var vlanCmd = &cobra.Command{
	Use:   "vlan",
	Short: "Manage declared VLANs",
}

var vlanListCmd = &cobra.Command{
	Use:   "list",
	Short: "List declared VLANs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sess.Registry.Len() == 0 {
			fmt.Println("No VLANs declared.")
			return nil
		}
		cli.VLANTable(os.Stdout, sess.Registry)
		return nil
	},
}

var vlanDeclareCmd = &cobra.Command{
	Use:     "declare <id> [name]",
	Short:   "Declare a VLAN with an optional name",
	Example: `  switchforge vlan declare 100 VOICE`,
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := vlan.ParseID(args[0])
		if err != nil {
			return err
		}
		name := ""
		if len(args) == 2 {
			name = args[1]
		}
		if err := sess.DeclareVLAN(id, name); err != nil {
			return err
		}
		fmt.Printf("Declared %s.\n", sess.Registry.Label(id))
		return nil
	},
}

func init() {
	vlanCmd.AddCommand(vlanListCmd, vlanDeclareCmd)
}

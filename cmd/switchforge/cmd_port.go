package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/switchforge/switchforge/pkg/portcfg"
	"github.com/switchforge/switchforge/pkg/util"
)

var (
	portMode        string
	portDescription string
	portDataVLAN    int
	portVoiceVLAN   int
	portNativeVLAN  int
	portAllowed     string
	portFast        bool
	portQoS         bool
)

var portCmd = &cobra.Command{
	Use:   "port",
	Short: "Configure ports by range expression",
}

var portSetCmd = &cobra.Command{
	Use:   "set <ports>",
	Short: "Apply a configuration to a port range",
	Long: `Apply an access or trunk configuration to every port in a range
expression like "1-4,7". The whole record is validated before any port
changes; a rejected record leaves the plan untouched.`,
	Example: `  switchforge port set 1-8 --mode access --data-vlan 10 --portfast
  switchforge port set 24 --mode trunk --native-vlan 10 --allowed-vlans 10,20-30`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sess.SelectRange(args[0]); err != nil {
			return err
		}

		cfg := portcfg.PortConfig{
			Mode:        portcfg.Mode(portMode),
			Description: portDescription,
			PortFast:    portFast,
			QoSTrust:    portQoS,
			Access: portcfg.AccessFields{
				DataVLAN:  portDataVLAN,
				VoiceVLAN: portVoiceVLAN,
			},
			Trunk: portcfg.TrunkFields{
				NativeVLAN:   portNativeVLAN,
				AllowedVLANs: portAllowed,
			},
		}
		if err := sess.ApplyToSelection(cfg); err != nil {
			return err
		}
		fmt.Printf("Configured port(s) %s.\n", util.JoinInts(sess.Selection.Selected()))
		return nil
	},
}

var portTemplateCmd = &cobra.Command{
	Use:   "template <ports> <name>",
	Short: "Apply a template to a port range",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sess.SelectRange(args[0]); err != nil {
			return err
		}
		missing, err := sess.ApplyTemplate(args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Applied %q to port(s) %s.\n", args[1], util.JoinInts(sess.Selection.Selected()))
		if len(missing) > 0 {
			ids := make([]int, len(missing))
			for i, m := range missing {
				ids[i] = m.ID
			}
			fmt.Println(yellow(fmt.Sprintf(
				"VLAN(s) %s are referenced but not declared. Declare them with 'switchforge vlan declare'.",
				util.JoinInts(ids))))
		}
		return nil
	},
}

var portNativeCmd = &cobra.Command{
	Use:   "native <ports> <vlan>",
	Short: "Set the native VLAN on trunk ports in a range",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sess.SelectRange(args[0]); err != nil {
			return err
		}
		id, err := parsePortArg(args[1])
		if err != nil {
			return err
		}
		updated, err := sess.SetNativeVLAN(id)
		if err != nil {
			return err
		}
		reportTrunkUpdate("native VLAN", updated)
		return nil
	},
}

var portAllowedCmd = &cobra.Command{
	Use:   "allowed <ports> <vlan-list>",
	Short: "Set the allowed-VLAN list on trunk ports in a range",
	Example: `  switchforge port allowed 23-24 10,20-30
  switchforge port allowed 24 all`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sess.SelectRange(args[0]); err != nil {
			return err
		}
		updated, err := sess.SetAllowedVLANs(args[1])
		if err != nil {
			return err
		}
		reportTrunkUpdate("allowed VLANs", updated)
		return nil
	},
}

var portClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every port configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n := sess.Store.Len()
		sess.ClearPorts()
		fmt.Printf("Cleared %d port configuration(s).\n", n)
		return nil
	},
}

var portResizeCmd = &cobra.Command{
	Use:   "resize <total>",
	Short: "Change the total port count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parsePortArg(args[0])
		if err != nil {
			return err
		}
		removed, err := sess.SetTotalPorts(n)
		if err != nil {
			return err
		}
		fmt.Printf("Switch now has %d ports.\n", n)
		if len(removed) > 0 {
			fmt.Println(yellow(fmt.Sprintf("Dropped configuration for port(s) %s.", util.JoinInts(removed))))
		}
		return nil
	},
}

func reportTrunkUpdate(what string, updated []int) {
	if len(updated) == 0 {
		fmt.Println(yellow("No trunk ports in the given range; nothing changed."))
		return
	}
	fmt.Printf("Updated %s on port(s) %s.\n", what, util.JoinInts(updated))
}

func parsePortArg(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return n, nil
}

func init() {
	flags := portSetCmd.Flags()
	flags.StringVar(&portMode, "mode", "access", "Port mode: access or trunk")
	flags.StringVar(&portDescription, "description", "", "Port description")
	flags.IntVar(&portDataVLAN, "data-vlan", 0, "Data VLAN (access mode)")
	flags.IntVar(&portVoiceVLAN, "voice-vlan", 0, "Voice VLAN (access mode, optional)")
	flags.IntVar(&portNativeVLAN, "native-vlan", 0, "Native VLAN (trunk mode, default 1)")
	flags.StringVar(&portAllowed, "allowed-vlans", "", `Allowed VLANs (trunk mode, default "ALL")`)
	flags.BoolVar(&portFast, "portfast", false, "Enable spanning-tree portfast")
	flags.BoolVar(&portQoS, "qos", false, "Trust CoS markings (mls qos trust cos)")

	portCmd.AddCommand(portSetCmd, portTemplateCmd, portNativeCmd, portAllowedCmd, portClearCmd, portResizeCmd)
}

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/switchforge/switchforge/pkg/cli"
	"github.com/switchforge/switchforge/pkg/portcfg"
	"github.com/switchforge/switchforge/pkg/util"
)

var (
	tplMode        string
	tplDescription string
	tplDataVLAN    int
	tplVoiceVLAN   int
	tplNativeVLAN  int
	tplAllowed     string
	tplPortFast    bool
	tplQoS         bool
	tplOverwrite   bool
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage port templates",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cli.TemplateTable(os.Stdout, sess.Templates)
		return nil
	},
}

var templateAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add or overwrite a template",
	Example: `  switchforge template add "Camera Port" --mode access --data-vlan 30 --portfast
  switchforge template add "Uplink" --mode trunk --native-vlan 10 --allowed-vlans all`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		cfg := portcfg.PortConfig{
			Mode:        portcfg.Mode(tplMode),
			Description: tplDescription,
			PortFast:    tplPortFast,
			QoSTrust:    tplQoS,
			Access: portcfg.AccessFields{
				DataVLAN:  tplDataVLAN,
				VoiceVLAN: tplVoiceVLAN,
			},
			Trunk: portcfg.TrunkFields{
				NativeVLAN:   tplNativeVLAN,
				AllowedVLANs: tplAllowed,
			},
		}

		var err error
		if _, exists := sess.Templates.Get(name); exists && tplOverwrite {
			err = sess.Templates.Update(name, cfg)
		} else {
			err = sess.Templates.Add(name, cfg)
		}
		if err != nil {
			return err
		}
		sess.SaveAll()
		fmt.Printf("Saved template %q.\n", name)
		return nil
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one template in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok := sess.Templates.Get(args[0])
		if !ok {
			return fmt.Errorf("template %q: %w", args[0], util.ErrNotFound)
		}
		if jsonOutput {
			return printJSON(cfg)
		}

		cfg = cfg.Normalized()
		line := func(label, value string) {
			fmt.Printf("%s %s\n", cli.DotPad(label, 16), value)
		}
		line("Template", args[0])
		line("Mode", util.CapitalizeFirst(string(cfg.Mode)))
		switch cfg.Mode {
		case portcfg.ModeAccess:
			line("Data VLAN", strconv.Itoa(cfg.Access.DataVLAN))
			if cfg.Access.VoiceVLAN != 0 {
				line("Voice VLAN", strconv.Itoa(cfg.Access.VoiceVLAN))
			}
		case portcfg.ModeTrunk:
			line("Native VLAN", strconv.Itoa(cfg.Trunk.NativeVLAN))
			line("Allowed VLANs", cfg.Trunk.AllowedVLANs)
		}
		line("Portfast", cli.YesNo(cfg.PortFast))
		line("QoS trust", cli.YesNo(cfg.QoSTrust))
		if cfg.Description != "" {
			line("Description", cfg.Description)
		}
		return nil
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sess.Templates.Delete(args[0]); err != nil {
			return err
		}
		sess.SaveAll()
		fmt.Printf("Deleted template %q.\n", args[0])
		return nil
	},
}

func init() {
	flags := templateAddCmd.Flags()
	flags.StringVar(&tplMode, "mode", "access", "Port mode: access or trunk")
	flags.StringVar(&tplDescription, "description", "", "Port description")
	flags.IntVar(&tplDataVLAN, "data-vlan", 0, "Data VLAN (access mode)")
	flags.IntVar(&tplVoiceVLAN, "voice-vlan", 0, "Voice VLAN (access mode, optional)")
	flags.IntVar(&tplNativeVLAN, "native-vlan", 0, "Native VLAN (trunk mode, default 1)")
	flags.StringVar(&tplAllowed, "allowed-vlans", "", `Allowed VLANs (trunk mode, default "ALL")`)
	flags.BoolVar(&tplPortFast, "portfast", false, "Enable spanning-tree portfast")
	flags.BoolVar(&tplQoS, "qos", false, "Trust CoS markings")
	flags.BoolVar(&tplOverwrite, "overwrite", false, "Replace the template if it exists")

	templateCmd.AddCommand(templateListCmd, templateShowCmd, templateAddCmd, templateDeleteCmd)
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/switchforge/switchforge/pkg/cli"
)

var (
	sviInterface   string
	sviDescription string
	vtySSH         bool
	vtyTelnet      bool
)

var globalCmd = &cobra.Command{
	Use:   "global",
	Short: "Manage device-wide settings",
}

var globalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the device-wide settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g := sess.Global
		t := cli.NewTable(os.Stdout, "SETTING", "VALUE")
		t.Row("hostname", orUnset(g.Hostname))
		t.Row("enable secret", maskSecret(g.EnableSecret))
		t.Row("line password", maskSecret(g.LinePassword))
		t.Row("vty transport", transportSummary(g.VTYSSH, g.VTYTelnet))
		t.Row("password encryption", cli.YesNo(g.PasswordEncryption))
		t.Row("no ip domain-lookup", cli.YesNo(g.NoDomainLookup))
		if g.HasSVI() {
			t.Row("svi", fmt.Sprintf("%s %s %s", g.SVIInterface, g.SVIIP, g.SVIMask))
		} else {
			t.Row("svi", orUnset(""))
		}
		t.Row("default gateway", orUnset(g.GatewayIP))
		t.Flush()
		return nil
	},
}

var globalHostnameCmd = &cobra.Command{
	Use:   "hostname <name>",
	Short: "Set the device hostname",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g := sess.Global
		if err := g.SetHostname(args[0]); err != nil {
			return err
		}
		sess.SetGlobal(g)
		fmt.Printf("Hostname set to %s.\n", bold(args[0]))
		return nil
	},
}

var globalSecretsCmd = &cobra.Command{
	Use:   "secrets",
	Short: "Set the enable secret and line password",
	Long: `Prompt for the enable secret and the console/vty line password.
Input is not echoed. Press Enter on an empty prompt to keep the current
value; enter a single "-" to clear it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g := sess.Global

		secret, err := promptSecret("Enable secret")
		if err != nil {
			return err
		}
		linePass, err := promptSecret("Line password")
		if err != nil {
			return err
		}

		switch secret {
		case "":
		case "-":
			g.EnableSecret = ""
		default:
			g.EnableSecret = secret
		}
		switch linePass {
		case "":
		case "-":
			g.LinePassword = ""
		default:
			g.LinePassword = linePass
		}

		sess.SetGlobal(g)
		fmt.Println("Secrets updated.")
		return nil
	},
}

var globalTransportCmd = &cobra.Command{
	Use:   "transport",
	Short: "Set the vty transport protocols",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g := sess.Global
		g.VTYSSH = vtySSH
		g.VTYTelnet = vtyTelnet
		sess.SetGlobal(g)
		fmt.Printf("vty transport set to %s.\n", transportSummary(vtySSH, vtyTelnet))
		return nil
	},
}

var globalSVICmd = &cobra.Command{
	Use:     "svi <ip> <mask>",
	Short:   "Set the management interface address",
	Example: `  switchforge global svi 192.168.1.2 255.255.255.0 --interface Vlan1`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g := sess.Global
		intf := sviInterface
		if intf == "" {
			intf = g.SVIInterface
		}
		if err := g.SetSVI(intf, args[0], args[1], sviDescription); err != nil {
			return err
		}
		sess.SetGlobal(g)
		fmt.Printf("Management address set on %s.\n", bold(intf))
		return nil
	},
}

var globalGatewayCmd = &cobra.Command{
	Use:   "gateway <ip>",
	Short: "Set the default gateway",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g := sess.Global
		if err := g.SetGateway(args[0]); err != nil {
			return err
		}
		sess.SetGlobal(g)
		fmt.Printf("Default gateway set to %s.\n", bold(args[0]))
		return nil
	},
}

// promptSecret reads a value without echoing. Falls back to plain line input
// when stdin is not a terminal (piped input, tests).
func promptSecret(label string) (string, error) {
	fmt.Printf("%s: ", label)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func maskSecret(s string) string {
	if s == "" {
		return orUnset("")
	}
	return strings.Repeat("*", 8)
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}

func transportSummary(ssh, telnet bool) string {
	switch {
	case ssh && telnet:
		return "ssh telnet"
	case ssh:
		return "ssh"
	case telnet:
		return "telnet"
	default:
		return "none"
	}
}

func init() {
	globalSVICmd.Flags().StringVar(&sviInterface, "interface", "", `SVI interface (default "Vlan1")`)
	globalSVICmd.Flags().StringVar(&sviDescription, "description", "", "SVI description")
	globalTransportCmd.Flags().BoolVar(&vtySSH, "ssh", true, "Allow ssh")
	globalTransportCmd.Flags().BoolVar(&vtyTelnet, "telnet", false, "Allow telnet")

	globalCmd.AddCommand(globalShowCmd, globalHostnameCmd, globalSecretsCmd,
		globalTransportCmd, globalSVICmd, globalGatewayCmd)
}

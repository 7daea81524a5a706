package generate

import (
	"strings"

	"github.com/switchforge/switchforge/pkg/globalcfg"
	"github.com/switchforge/switchforge/pkg/portcfg"
)

// FullConfig assembles the complete configuration text: global blocks, then
// grouped interface blocks for every configured port, wrapped in
// enable/configure-terminal/end framing with a reminder to persist the
// running config. Returns "" when there is nothing to emit.
func FullConfig(global globalcfg.Config, cfgs map[int]portcfg.PortConfig, prefix string) string {
	globalLines := GlobalCommands(global)

	ports := make([]int, 0, len(cfgs))
	for port := range cfgs {
		ports = append(ports, port)
	}
	portLines := PortSection(cfgs, ports, prefix)

	if len(globalLines) == 0 && len(portLines) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("!\n! --- Generated Configuration ---\n!\n")
	b.WriteString("enable\nconfigure terminal\n!\n")

	if len(globalLines) > 0 {
		b.WriteString(strings.Join(globalLines, "\n"))
		b.WriteString("\n")
	}
	if len(portLines) > 0 {
		if len(globalLines) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Join(portLines, "\n"))
		b.WriteString("\n")
	}

	b.WriteString("!\nend\n")
	b.WriteString("!\n! Choose ONE save command:\n")
	b.WriteString("! copy running-config startup-config\n")
	b.WriteString("! write memory\n!\n")
	return b.String()
}

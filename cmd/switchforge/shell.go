package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/switchforge/switchforge/pkg/cli"
	"github.com/switchforge/switchforge/pkg/portcfg"
	"github.com/switchforge/switchforge/pkg/selection"
	"github.com/switchforge/switchforge/pkg/session"
	"github.com/switchforge/switchforge/pkg/util"
	"github.com/switchforge/switchforge/pkg/vlan"
)

// Shell is the interactive planning REPL. Ports are selected with
// click-style commands, a draft configuration is built field by field, and
// "apply" commits the draft to the selection as one undoable step.
type Shell struct {
	sess     *session.Session
	rl       *readline.Instance
	draft    portcfg.PortConfig
	commands map[string]func(args []string)
	done     bool
}

// NewShell creates a shell over the given session.
func NewShell(sess *session.Session) *Shell {
	s := &Shell{
		sess: sess,
		draft: portcfg.PortConfig{
			Mode: portcfg.ModeAccess,
		},
	}
	s.commands = map[string]func(args []string){
		"select":   s.cmdSelect,
		"click":    s.cmdClick(selection.ModNone),
		"ctrl":     s.cmdClick(selection.ModCtrl),
		"shift":    s.cmdClick(selection.ModShift),
		"clear":    func([]string) { s.sess.Selection.Clear(); s.cmdGrid(nil) },
		"grid":     s.cmdGrid,
		"mode":     s.cmdMode,
		"data":     s.cmdData,
		"voice":    s.cmdVoice,
		"native":   s.cmdNative,
		"allowed":  s.cmdAllowed,
		"desc":     s.cmdDesc,
		"portfast": s.cmdFlag("portfast"),
		"qos":      s.cmdFlag("qos"),
		"draft":    func([]string) { s.printDraft() },
		"apply":    func([]string) { s.cmdApply() },
		"template": s.cmdTemplate,
		"undo":     func([]string) { s.cmdUndo() },
		"redo":     func([]string) { s.cmdRedo() },
		"show":     s.cmdShow,
		"vlan":     s.cmdVlan,
		"generate": s.cmdGenerate,
		"wipe":     func([]string) { s.cmdWipe() },
		"reset":    func([]string) { s.cmdReset() },
		"resize":   s.cmdResize,
		"help":     func([]string) { s.cmdHelp() },
		"?":        func([]string) { s.cmdHelp() },
	}
	return s
}

// Run starts the REPL and blocks until quit or EOF.
func (s *Shell) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.prompt(),
		HistoryFile:     historyFile(),
		AutoComplete:    s.completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return fmt.Errorf("initializing shell: %w", err)
	}
	s.rl = rl
	defer rl.Close()

	fmt.Printf("Planning for %s (%d ports). Type 'help' for commands.\n",
		bold(s.sess.Profile.Prefix()), s.sess.Profile.TotalPorts)

	for !s.done {
		rl.SetPrompt(s.prompt())
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if err == io.EOF {
				break
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		args := strings.Fields(line)
		cmd := args[0]
		switch cmd {
		case "quit", "exit", "q":
			s.done = true
		default:
			if fn, ok := s.commands[cmd]; ok {
				fn(args[1:])
			} else {
				fmt.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
			}
		}
	}

	s.sess.SaveAll()
	fmt.Println("State saved.")
	return nil
}

// prompt shows the current selection as a compact range.
func (s *Shell) prompt() string {
	if s.sess.Selection.Count() == 0 {
		return "switchforge> "
	}
	return fmt.Sprintf("switchforge [%s]> ", util.CompactRange(s.sess.Selection.Selected()))
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".switchforge_history"
	}
	return filepath.Join(home, ".switchforge_history")
}

func (s *Shell) completer() readline.AutoCompleter {
	templates := func(string) []string { return s.sess.Templates.Names() }
	return readline.NewPrefixCompleter(
		readline.PcItem("select"),
		readline.PcItem("click"),
		readline.PcItem("ctrl"),
		readline.PcItem("shift"),
		readline.PcItem("clear"),
		readline.PcItem("grid"),
		readline.PcItem("mode",
			readline.PcItem("access"),
			readline.PcItem("trunk"),
		),
		readline.PcItem("data"),
		readline.PcItem("voice"),
		readline.PcItem("native"),
		readline.PcItem("allowed"),
		readline.PcItem("desc"),
		readline.PcItem("portfast", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem("qos", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem("draft"),
		readline.PcItem("apply"),
		readline.PcItem("template", readline.PcItemDynamic(templates)),
		readline.PcItem("undo"),
		readline.PcItem("redo"),
		readline.PcItem("show",
			readline.PcItem("ports"),
			readline.PcItem("config"),
			readline.PcItem("vlans"),
			readline.PcItem("templates"),
			readline.PcItem("global"),
		),
		readline.PcItem("vlan",
			readline.PcItem("declare"),
			readline.PcItem("list"),
		),
		readline.PcItem("generate"),
		readline.PcItem("wipe"),
		readline.PcItem("reset"),
		readline.PcItem("resize"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

func (s *Shell) fail(err error) {
	fmt.Println(red("Error: " + err.Error()))
}

// ---------------------------------------------------------------------------
// Selection commands

func (s *Shell) cmdSelect(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: select <ports>   e.g. select 1-4,7  (+N toggles, ..N extends)")
		return
	}
	if err := s.sess.SelectRange(strings.Join(args, "")); err != nil {
		s.fail(err)
		return
	}
	s.cmdGrid(nil)
}

func (s *Shell) cmdClick(mod selection.Modifier) func(args []string) {
	return func(args []string) {
		if len(args) != 1 {
			fmt.Println("Usage: click|ctrl|shift <port>")
			return
		}
		port, err := strconv.Atoi(args[0])
		if err != nil {
			s.fail(fmt.Errorf("%q is not a port number", args[0]))
			return
		}
		s.sess.Selection.Click(port, mod)
		s.cmdGrid(nil)
	}
}

func (s *Shell) cmdGrid([]string) {
	cli.PortGrid(os.Stdout, s.sess.Store, s.sess.Selection)
}

// ---------------------------------------------------------------------------
// Draft commands

func (s *Shell) cmdMode(args []string) {
	if len(args) != 1 || (args[0] != "access" && args[0] != "trunk") {
		fmt.Println("Usage: mode access|trunk")
		return
	}
	s.draft.Mode = portcfg.Mode(args[0])
	s.printDraft()
}

func (s *Shell) parseVLANArg(args []string, allowZero bool) (int, bool) {
	if len(args) != 1 {
		return 0, false
	}
	if allowZero && args[0] == "none" {
		return 0, true
	}
	id, err := vlan.ParseID(args[0])
	if err != nil {
		s.fail(err)
		return 0, false
	}
	return id, true
}

func (s *Shell) cmdData(args []string) {
	id, ok := s.parseVLANArg(args, false)
	if !ok {
		fmt.Println("Usage: data <vlan>")
		return
	}
	s.draft.Access.DataVLAN = id
	s.printDraft()
}

func (s *Shell) cmdVoice(args []string) {
	id, ok := s.parseVLANArg(args, true)
	if !ok {
		fmt.Println("Usage: voice <vlan>|none")
		return
	}
	s.draft.Access.VoiceVLAN = id
	s.printDraft()
}

// cmdNative edits the draft when the selection has no trunks yet; otherwise
// it updates the selected trunk ports in place.
func (s *Shell) cmdNative(args []string) {
	id, ok := s.parseVLANArg(args, false)
	if !ok {
		fmt.Println("Usage: native <vlan>")
		return
	}
	if s.hasSelectedTrunks() {
		updated, err := s.sess.SetNativeVLAN(id)
		if err != nil {
			s.fail(err)
			return
		}
		fmt.Printf("Updated native VLAN on port(s) %s.\n", util.JoinInts(updated))
		return
	}
	s.draft.Trunk.NativeVLAN = id
	s.printDraft()
}

func (s *Shell) cmdAllowed(args []string) {
	if len(args) == 0 {
		fmt.Println(`Usage: allowed <list>   e.g. allowed 10,20-30  or  allowed all`)
		return
	}
	list := strings.Join(args, "")
	if s.hasSelectedTrunks() {
		updated, err := s.sess.SetAllowedVLANs(list)
		if err != nil {
			s.fail(err)
			return
		}
		fmt.Printf("Updated allowed VLANs on port(s) %s.\n", util.JoinInts(updated))
		return
	}
	normalized, err := vlan.NormalizeRange(list)
	if err != nil {
		if vlan.IsPartialRange(list) {
			fmt.Println(yellow("Incomplete VLAN list; finish the range, e.g. 10-20."))
			return
		}
		s.fail(err)
		return
	}
	s.draft.Trunk.AllowedVLANs = normalized
	s.printDraft()
}

func (s *Shell) hasSelectedTrunks() bool {
	for _, port := range s.sess.Selection.Selected() {
		if cfg, ok := s.sess.Store.Get(port); ok && cfg.Mode == portcfg.ModeTrunk {
			return true
		}
	}
	return false
}

func (s *Shell) cmdDesc(args []string) {
	s.draft.Description = strings.Join(args, " ")
	s.printDraft()
}

func (s *Shell) cmdFlag(name string) func(args []string) {
	return func(args []string) {
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			fmt.Printf("Usage: %s on|off\n", name)
			return
		}
		on := args[0] == "on"
		if name == "portfast" {
			s.draft.PortFast = on
		} else {
			s.draft.QoSTrust = on
		}
		s.printDraft()
	}
}

func (s *Shell) printDraft() {
	d := s.draft.Normalized()
	fmt.Printf("Draft: mode=%s", d.Mode)
	switch d.Mode {
	case portcfg.ModeAccess:
		fmt.Printf(" data=%s voice=%s", vlanOrDash(d.Access.DataVLAN), vlanOrDash(d.Access.VoiceVLAN))
	case portcfg.ModeTrunk:
		fmt.Printf(" native=%d allowed=%s", d.Trunk.NativeVLAN, d.Trunk.AllowedVLANs)
	}
	fmt.Printf(" portfast=%s qos=%s", cli.YesNo(d.PortFast), cli.YesNo(d.QoSTrust))
	if d.Description != "" {
		fmt.Printf(" desc=%q", d.Description)
	}
	fmt.Println()
}

func vlanOrDash(id int) string {
	if id == 0 {
		return "-"
	}
	return strconv.Itoa(id)
}

// ---------------------------------------------------------------------------
// Mutation commands

func (s *Shell) cmdApply() {
	if err := s.sess.ApplyToSelection(s.draft); err != nil {
		s.fail(err)
		return
	}
	fmt.Println(green(fmt.Sprintf("Configured port(s) %s.", util.JoinInts(s.sess.Selection.Selected()))))
}

func (s *Shell) cmdTemplate(args []string) {
	if len(args) == 0 {
		cli.TemplateTable(os.Stdout, s.sess.Templates)
		return
	}
	name := strings.Join(args, " ")
	missing, err := s.sess.ApplyTemplate(name)
	if err != nil {
		s.fail(err)
		return
	}
	fmt.Println(green(fmt.Sprintf("Applied %q to port(s) %s.", name, util.JoinInts(s.sess.Selection.Selected()))))
	for _, m := range missing {
		if s.promptYesNo(fmt.Sprintf("VLAN %d is not declared. Declare it now?", m.ID)) {
			if err := s.sess.DeclareVLAN(m.ID, m.Name); err != nil {
				s.fail(err)
				continue
			}
			fmt.Printf("Declared %s.\n", s.sess.Registry.Label(m.ID))
		}
	}
}

func (s *Shell) promptYesNo(question string) bool {
	s.rl.SetPrompt(question + " [y/N] ")
	defer s.rl.SetPrompt(s.prompt())
	line, err := s.rl.Readline()
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (s *Shell) cmdUndo() {
	if err := s.sess.Undo(); err != nil {
		fmt.Println(yellow(err.Error()))
		return
	}
	fmt.Println("Undone.")
	s.cmdGrid(nil)
}

func (s *Shell) cmdRedo() {
	if err := s.sess.Redo(); err != nil {
		fmt.Println(yellow(err.Error()))
		return
	}
	fmt.Println("Redone.")
	s.cmdGrid(nil)
}

func (s *Shell) cmdWipe() {
	if !s.promptYesNo(fmt.Sprintf("Remove all %d port configuration(s)?", s.sess.Store.Len())) {
		return
	}
	s.sess.ClearPorts()
	fmt.Println("All port configurations removed (undo to restore).")
}

func (s *Shell) cmdReset() {
	if !s.promptYesNo("Reset ALL configuration to factory defaults? This cannot be undone.") {
		return
	}
	s.sess.Reset()
	fmt.Println("Configuration reset to factory defaults.")
}

func (s *Shell) cmdResize(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: resize <total-ports>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		s.fail(fmt.Errorf("%q is not a number", args[0]))
		return
	}
	removed, err := s.sess.SetTotalPorts(n)
	if err != nil {
		s.fail(err)
		return
	}
	if len(removed) > 0 {
		fmt.Println(yellow(fmt.Sprintf("Dropped configuration for port(s) %s.", util.JoinInts(removed))))
	}
	s.cmdGrid(nil)
}

func (s *Shell) cmdVlan(args []string) {
	if len(args) == 0 || args[0] == "list" {
		cli.VLANTable(os.Stdout, s.sess.Registry)
		return
	}
	if args[0] != "declare" || len(args) < 2 {
		fmt.Println("Usage: vlan list | vlan declare <id> [name]")
		return
	}
	id, err := vlan.ParseID(args[1])
	if err != nil {
		s.fail(err)
		return
	}
	name := ""
	if len(args) > 2 {
		name = args[2]
	}
	if err := s.sess.DeclareVLAN(id, name); err != nil {
		s.fail(err)
		return
	}
	fmt.Printf("Declared %s.\n", s.sess.Registry.Label(id))
}

// ---------------------------------------------------------------------------
// Output commands

func (s *Shell) cmdShow(args []string) {
	what := "ports"
	if len(args) > 0 {
		what = args[0]
	}
	switch what {
	case "ports":
		cli.PortTable(os.Stdout, s.sess.Store, s.sess.Profile.InterfaceName)
	case "config":
		fmt.Print(s.sess.ShowText())
	case "vlans":
		cli.VLANTable(os.Stdout, s.sess.Registry)
	case "templates":
		cli.TemplateTable(os.Stdout, s.sess.Templates)
	case "global":
		if err := globalShowCmd.RunE(globalShowCmd, nil); err != nil {
			s.fail(err)
		}
	default:
		fmt.Println("Usage: show [ports|config|vlans|templates|global]")
	}
}

func (s *Shell) cmdGenerate(args []string) {
	text := s.sess.GenerateText()
	if text == "" {
		fmt.Println(yellow("Nothing to generate: no ports or global settings configured."))
		return
	}
	if len(args) == 0 {
		fmt.Print(text)
		return
	}
	if err := os.WriteFile(args[0], []byte(text), 0644); err != nil {
		s.fail(err)
		return
	}
	fmt.Printf("Wrote configuration to %s.\n", args[0])
}

func (s *Shell) cmdHelp() {
	fmt.Print(`Selection:
  select <ports>        select a range expression, e.g. select 1-4,7
                        shorthand: select +N toggles, select ..N extends
  click <port>          select exactly one port
  ctrl <port>           toggle a port in the selection
  shift <port>          extend the selection from the anchor
  clear                 empty the selection
  grid                  draw the port map

Draft (applied to the selection with 'apply'):
  mode access|trunk     set the draft mode
  data <vlan>           access data VLAN
  voice <vlan>|none     access voice VLAN
  native <vlan>         trunk native VLAN (updates selected trunks in place)
  allowed <list>|all    trunk allowed VLANs (updates selected trunks in place)
  desc <text>           description
  portfast on|off       spanning-tree portfast
  qos on|off            trust CoS markings
  draft                 show the draft
  apply                 apply the draft to the selection

Other:
  template [name]       list templates, or apply one to the selection
  undo / redo           step through configuration history
  show [what]           ports | config | vlans | templates | global
  vlan declare <id> [n] declare a VLAN
  generate [file]       emit the full configuration
  wipe                  remove all port configurations
  reset                 restore factory defaults (ports, VLANs, global)
  resize <n>            change the total port count
  quit                  save state and leave
`)
}

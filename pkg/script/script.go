// Package script renders workspace layout scripts from window rules.
// Render is a pure function: no state, no I/O, byte-identical output for
// identical input. The generated text follows a fixed template that the
// workspace store's number extraction understands.
package script

import (
	"fmt"
	"strings"
)

// WindowRule describes how one application window should be placed when
// the layout script runs. Sizes and positions are Hyprland percentage
// strings (e.g. "50%", "25%").
type WindowRule struct {
	Width  string
	Height string
	X      string
	Y      string
	// Command is the shell command launched inside the rule
	Command string
}

// ruleExecHelper is emitted into every script, even when no rules were
// added, so hand-edited scripts can keep using it.
const ruleExecHelper = `rule_exec() {
  local rules="$1"
  shift
  hyprctl dispatch exec "[$rules] $*"
}

`

// Render produces the script text for the given workspace number and
// rules, in input order:
//
//	#!/bin/bash
//	hyprctl dispatch workspace <number>
//	rule_exec() { ... }
//	rule_exec "workspace <number> silent; float; size <w> <h>; move <x> <y>" \
//	  <command>
func Render(number int, rules []WindowRule) string {
	var b strings.Builder

	b.WriteString("#!/bin/bash\n\n")
	fmt.Fprintf(&b, "hyprctl dispatch workspace %d\n\n", number)
	b.WriteString(ruleExecHelper)

	for _, r := range rules {
		fmt.Fprintf(&b,
			"rule_exec \"workspace %d silent; float; size %s %s; move %s %s\" \\\n  %s\n\n",
			number, r.Width, r.Height, r.X, r.Y, r.Command)
	}

	return b.String()
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvim-tech/hyprspace/pkg/script"
	"github.com/lvim-tech/hyprspace/pkg/workspace"
)

// wizardStage is one prompt of the creation flow. The flow is strictly
// sequential: number, name, then a rule-collection loop (ask, five
// fields), and finally the preview/save confirmation.
type wizardStage int

const (
	stageNumber wizardStage = iota
	stageName
	stageAskRule
	stageRuleWidth
	stageRuleHeight
	stageRuleX
	stageRuleY
	stageRuleCommand
	stageConfirm
)

// wizardState accumulates the creation input. It only lives while the
// wizard is open; abort throws the whole value away, so no partial
// script can ever reach the store.
type wizardState struct {
	stage   wizardStage
	input   textinput.Model
	number  int
	name    string
	rules   []script.WindowRule
	current script.WindowRule
	errMsg  string
}

func newWizard() wizardState {
	ti := textinput.New()
	ti.Placeholder = "1"
	ti.Focus()
	return wizardState{stage: stageNumber, input: ti}
}

// updateWizard routes wizard keys: Esc aborts from any stage, Enter
// submits the current prompt, y/n answer the two yes-no prompts, and
// everything else is text input.
func (m Model) updateWizard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Abort):
		return m.wizardAbort("")

	case key.Matches(msg, m.keys.Confirm):
		return m.wizardSubmit()
	}

	if m.wizard.stage == stageAskRule || m.wizard.stage == stageConfirm {
		switch msg.String() {
		case "y", "Y":
			return m.wizardYes()
		case "n", "N":
			return m.wizardNo()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.wizard.input, cmd = m.wizard.input.Update(msg)
	return m, cmd
}

// wizardAbort discards all collected input and returns to the selector.
func (m Model) wizardAbort(status string) (tea.Model, tea.Cmd) {
	m.mode = modeSelector
	m.wizard = wizardState{}
	m.status = status
	m.reload()
	return m, nil
}

// wizardSubmit handles Enter. Invalid input re-prompts in place: the
// stage does not advance and the error shows under the input.
func (m Model) wizardSubmit() (tea.Model, tea.Cmd) {
	w := &m.wizard
	value := strings.TrimSpace(w.input.Value())

	switch w.stage {
	case stageNumber:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			w.errMsg = "Invalid workspace number, please enter a positive integer."
			return m, nil
		}
		w.number = n
		m.advance(stageName, "backend")

	case stageName:
		if !workspace.ValidName(value) {
			w.errMsg = "Name must be non-empty, without spaces or slashes."
			return m, nil
		}
		if workspace.Exists(m.dir, value) {
			w.errMsg = fmt.Sprintf("Name %q is already taken.", value)
			return m, nil
		}
		w.name = value
		m.advance(stageAskRule, "")

	case stageAskRule:
		// Enter takes the default answer: No.
		return m.wizardNo()

	case stageRuleWidth:
		if value == "" {
			w.errMsg = "Value cannot be empty, try again."
			return m, nil
		}
		w.current.Width = value
		m.advance(stageRuleHeight, "15%")

	case stageRuleHeight:
		if value == "" {
			w.errMsg = "Value cannot be empty, try again."
			return m, nil
		}
		w.current.Height = value
		m.advance(stageRuleX, "1%")

	case stageRuleX:
		if value == "" {
			w.errMsg = "Value cannot be empty, try again."
			return m, nil
		}
		w.current.X = value
		m.advance(stageRuleY, "8%")

	case stageRuleY:
		if value == "" {
			w.errMsg = "Value cannot be empty, try again."
			return m, nil
		}
		w.current.Y = value
		m.advance(stageRuleCommand, "kitty --hold zsh -c \"cava\"")

	case stageRuleCommand:
		if value == "" {
			w.errMsg = "Value cannot be empty, try again."
			return m, nil
		}
		w.current.Command = value
		w.rules = append(w.rules, w.current)
		w.current = script.WindowRule{}
		m.advance(stageAskRule, "")

	case stageConfirm:
		// Enter takes the default answer: Yes.
		return m.wizardYes()
	}

	return m, nil
}

func (m Model) wizardYes() (tea.Model, tea.Cmd) {
	switch m.wizard.stage {
	case stageAskRule:
		m.advance(stageRuleWidth, "10%")
		return m, nil
	case stageConfirm:
		return m.wizardSave()
	}
	return m, nil
}

func (m Model) wizardNo() (tea.Model, tea.Cmd) {
	switch m.wizard.stage {
	case stageAskRule:
		m.advance(stageConfirm, "")
		return m, nil
	case stageConfirm:
		return m.wizardAbort("Aborted, script was not created.")
	}
	return m, nil
}

// wizardSave renders the script and persists it through the store.
// A name collision sends the user back to the name prompt; any other
// write failure surfaces in the selector status line.
func (m Model) wizardSave() (tea.Model, tea.Cmd) {
	w := &m.wizard
	content := script.Render(w.number, w.rules)

	if err := workspace.Save(m.dir, w.name, content); err != nil {
		if workspace.IsAlreadyExists(err) {
			m.advance(stageName, "backend")
			w.input.SetValue(w.name)
			w.errMsg = fmt.Sprintf("Name %q is already taken.", w.name)
			return m, nil
		}
		return m.wizardAbort(err.Error())
	}

	fileName := "workspace-" + w.name + ".sh"
	return m.wizardAbort("Created " + fileName)
}

// advance moves to the next stage with a fresh input.
func (m *Model) advance(next wizardStage, placeholder string) {
	m.wizard.stage = next
	m.wizard.errMsg = ""
	m.wizard.input.Reset()
	m.wizard.input.Placeholder = placeholder
}

func (m Model) viewWizard() string {
	w := m.wizard
	var b strings.Builder

	b.WriteString(m.theme.title.Render("Hyprspace · New workspace script"))
	b.WriteString("\n\n")
	b.WriteString("Destination directory: " + m.dir + "\n\n")

	switch w.stage {
	case stageNumber:
		b.WriteString(m.theme.stepTitle.Render("Step 1/3 · Workspace target") + "\n")
		b.WriteString("Enter workspace number (e.g. 1, 2, 3):\n")
		b.WriteString(w.input.View() + "\n")

	case stageName:
		b.WriteString(m.theme.stepTitle.Render("Step 2/3 · Script identity") + "\n")
		b.WriteString(fmt.Sprintf("Will dispatch to workspace %d\n\n", w.number))
		b.WriteString("Enter script short name (e.g. 'backend', 'music', 'dashboard'):\n")
		b.WriteString(w.input.View() + "\n")

	case stageAskRule:
		b.WriteString(m.theme.stepTitle.Render("Step 3/3 · Windows layout") + "\n")
		b.WriteString(fmt.Sprintf("Script file will be: %s\n", workspace.ResolvePath(m.dir, w.name)))
		b.WriteString(fmt.Sprintf("Windows added so far: %d\n\n", len(w.rules)))
		b.WriteString("Add a window rule_exec? [y/N]\n")

	case stageRuleWidth, stageRuleHeight, stageRuleX, stageRuleY, stageRuleCommand:
		b.WriteString(m.theme.stepTitle.Render(fmt.Sprintf("Window #%d · layout & command", len(w.rules)+1)) + "\n")
		b.WriteString(ruleFieldLabel(w.stage) + "\n")
		b.WriteString(w.input.View() + "\n")

	case stageConfirm:
		b.WriteString(m.theme.stepTitle.Render("Preview of the generated script") + "\n")
		if len(w.rules) == 0 {
			b.WriteString("No windows were added. The script will only switch workspace.\n")
		}
		b.WriteString(m.theme.preview.Render(strings.TrimRight(script.Render(w.number, w.rules), "\n")))
		b.WriteString("\n\nSave this script? [Y/n]\n")
	}

	if w.errMsg != "" {
		b.WriteString("\n" + m.theme.errText.Render(w.errMsg) + "\n")
	}

	b.WriteString("\n" + m.theme.help.Render("Enter confirm • Esc cancel"))
	return b.String()
}

func ruleFieldLabel(stage wizardStage) string {
	switch stage {
	case stageRuleWidth:
		return "• width (e.g. 10%):"
	case stageRuleHeight:
		return "• height (e.g. 15%):"
	case stageRuleX:
		return "• position X (e.g. 1%):"
	case stageRuleY:
		return "• position Y (e.g. 8%):"
	default:
		return "• command (e.g. kitty --hold zsh -c \"cava\" or firefox --new-window github.com):"
	}
}

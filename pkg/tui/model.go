// Package tui implements the hyprspace terminal interface: a selector
// over the saved workspace scripts plus a synthetic "create new" entry,
// and the creation wizard it leads into. The model is single-threaded
// and synchronous; the scripts directory is re-read after every wizard
// exit so the list always reflects the store.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvim-tech/hyprspace/pkg/config"
	"github.com/lvim-tech/hyprspace/pkg/workspace"
)

// mode identifies which screen is active.
type mode int

const (
	// modeSelector shows the script list.
	modeSelector mode = iota
	// modeWizard shows the creation prompt sequence.
	modeWizard
)

// Action is what the user chose when the interface exited.
type Action int

const (
	// ActionQuit means the user quit without selecting anything.
	ActionQuit Action = iota
	// ActionLaunch means the user picked a script to execute.
	ActionLaunch
)

// Result carries the exit action and, for ActionLaunch, the chosen entry.
type Result struct {
	Action Action
	Entry  workspace.Entry
}

// createLabel is the synthetic entry appended after the scripts.
const createLabel = "➕ Create new workspace script…"

// Model is the bubbletea model for the whole interface.
type Model struct {
	cfg   *config.Config
	dir   string
	keys  KeyMap
	theme theme

	entries []workspace.Entry
	cursor  int
	mode    mode
	wizard  wizardState

	// status is the one-line message under the list (last error or
	// confirmation). Cleared on the next wizard entry.
	status string

	result Result
	width  int
	height int
}

// NewModel builds the selector over the given listing. status seeds the
// status line (used for a launch failure from the previous round).
func NewModel(cfg *config.Config, dir string, entries []workspace.Entry, status string) Model {
	return Model{
		cfg:     cfg,
		dir:     dir,
		keys:    DefaultKeyMap,
		theme:   newTheme(cfg.UI.Highlight),
		entries: entries,
		status:  status,
	}
}

// Run shows the interface and blocks until the user quits or picks a
// script to launch.
func Run(cfg *config.Config, dir string, entries []workspace.Entry, status string) (Result, error) {
	p := tea.NewProgram(NewModel(cfg, dir, entries, status), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("unexpected model type %T", final)
	}
	return m.result, nil
}

// Result returns what the user chose. Only meaningful after the program
// has finished.
func (m Model) Result() Result {
	return m.result
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeWizard {
			return m.updateWizard(msg)
		}
		return m.updateSelector(msg)
	}

	// Non-key messages (cursor blink) go to the focused input.
	if m.mode == modeWizard {
		var cmd tea.Cmd
		m.wizard.input, cmd = m.wizard.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateSelector handles list navigation. Movement clamps at both ends
// rather than wrapping, so holding a key parks the cursor on the first
// or last row.
func (m Model) updateSelector(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.result = Result{Action: ActionQuit}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		// len(m.entries) is the synthetic create row.
		if m.cursor < len(m.entries) {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Confirm):
		if m.cursor < len(m.entries) {
			m.result = Result{Action: ActionLaunch, Entry: m.entries[m.cursor]}
			return m, tea.Quit
		}
		m.mode = modeWizard
		m.wizard = newWizard()
		m.status = ""
		return m, textinput.Blink
	}

	return m, nil
}

// reload re-reads the scripts directory. On failure the previous
// listing stays visible and the error lands in the status line.
func (m *Model) reload() {
	entries, err := workspace.List(m.dir)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.entries = entries
	if m.cursor > len(m.entries) {
		m.cursor = len(m.entries)
	}
}

func (m Model) View() string {
	if m.mode == modeWizard {
		return m.viewWizard()
	}
	return m.viewSelector()
}

func (m Model) viewSelector() string {
	var b strings.Builder

	title := fmt.Sprintf("Hyprspace • %d configuration(s) found", len(m.entries))
	b.WriteString(m.theme.title.Render(title))
	b.WriteString("\n\n")

	for i, e := range m.entries {
		line := fmt.Sprintf("%d. ", i+1)
		if m.cfg.UI.ShowNumbers {
			line += fmt.Sprintf("[ws %s] ", e.Label())
		}
		line += fmt.Sprintf("%s %s", e.Name, m.theme.dim.Render("("+e.FileName+")"))
		b.WriteString(m.renderRow(line, i == m.cursor))
	}
	b.WriteString(m.renderRow(createLabel, m.cursor == len(m.entries)))

	if m.status != "" {
		b.WriteString("\n" + m.theme.status.Render(m.status) + "\n")
	}

	b.WriteString("\n" + m.theme.help.Render(m.helpLine()))
	return b.String()
}

func (m Model) renderRow(line string, selected bool) string {
	if selected {
		return m.theme.selected.Render("➤ "+line) + "\n"
	}
	return "  " + line + "\n"
}

func (m Model) helpLine() string {
	parts := []string{
		m.keys.Up.Help().Key + " " + m.keys.Up.Help().Desc,
		m.keys.Down.Help().Key + " " + m.keys.Down.Help().Desc,
		m.keys.Confirm.Help().Key + " " + m.keys.Confirm.Help().Desc,
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
	}
	return strings.Join(parts, " • ")
}

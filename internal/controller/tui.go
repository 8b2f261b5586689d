package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "pyunit.dev/pkg/pyunit/internal/model"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Faint(true)
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	passStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	commandStyle  = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI for interactive terminals: styled output and a Bubble Tea
// confirmation prompt.
type TUI struct {
	cmd *cobra.Command
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd}
}

// Confirm runs a one-keystroke yes/no prompt.
func (t *TUI) Confirm(ctx context.Context, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	program := tea.NewProgram(
		newConfirmModel(message),
		tea.WithContext(ctx),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(t.cmd.ErrOrStderr()),
	)

	final, err := program.Run()
	if err != nil {
		return false, err
	}

	answer, ok := final.(confirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected prompt model %T", final)
	}

	return answer.confirmed, nil
}

// DisplayMessage prints an informational message to stderr.
func (t *TUI) DisplayMessage(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintln(t.cmd.ErrOrStderr(), hintStyle.Render(message))
}

// DisplayPath prints path on stdout.
func (t *TUI) DisplayPath(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.printf("%s\n", pathStyle.Render(string(path)))
}

// DisplayResolution prints how a file maps onto its counterparts.
func (t *TUI) DisplayResolution(ctx context.Context, resolution m.Resolution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.printf("%s", renderResolutionTable(resolution))

	return nil
}

// DisplayRunStart announces the command about to run.
func (t *TUI) DisplayRunStart(ctx context.Context, command string, workDir m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.printf("%s\n", commandStyle.Render(fmt.Sprintf("$ %s  (in %s)", command, workDir)))
}

// DisplayOutputLine echoes one line of runner output.
func (t *TUI) DisplayOutputLine(ctx context.Context, line string) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.printf("%s\n", line)
}

// DisplayRunResult prints a colored summary and the reported locations.
func (t *TUI) DisplayRunResult(ctx context.Context, result m.RunResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	style := passStyle
	if !result.Passed() {
		style = failStyle
	}

	t.printf("%s\n", style.Render(runSummary(result)))

	if len(result.Locations) == 0 {
		return nil
	}

	t.printf("\n%s", renderLocationTable(result.Locations))
	t.printf("%s\n", failStyle.Render(locationSummary(result)))

	return nil
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.cmd.OutOrStdout(), format, args...)
}

type confirmKeyMap struct {
	Yes key.Binding
	No  key.Binding
}

func newConfirmKeyMap() confirmKeyMap {
	return confirmKeyMap{
		Yes: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:  key.NewBinding(key.WithKeys("n", "N", "enter", "esc", "q", "ctrl+c"), key.WithHelp("n", "no")),
	}
}

// confirmModel is the Bubble Tea model behind TUI.Confirm.
type confirmModel struct {
	message   string
	keys      confirmKeyMap
	confirmed bool
	done      bool
}

func newConfirmModel(message string) confirmModel {
	return confirmModel{
		message: message,
		keys:    newConfirmKeyMap(),
	}
}

func (cm confirmModel) Init() tea.Cmd {
	return nil
}

func (cm confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return cm, nil
	}

	switch {
	case key.Matches(keyMsg, cm.keys.Yes):
		cm.confirmed = true
		cm.done = true

		return cm, tea.Quit
	case key.Matches(keyMsg, cm.keys.No):
		cm.done = true
		return cm, tea.Quit
	}

	return cm, nil
}

func (cm confirmModel) View() string {
	var b strings.Builder

	b.WriteString(questionStyle.Render(cm.message))

	if cm.done {
		answer := "no"
		if cm.confirmed {
			answer = "yes"
		}

		fmt.Fprintf(&b, " %s\n", answer)

		return b.String()
	}

	help := fmt.Sprintf("[%s/%s]", cm.keys.Yes.Help().Key, strings.ToUpper(cm.keys.No.Help().Key))
	fmt.Fprintf(&b, " %s ", hintStyle.Render(help))

	return b.String()
}

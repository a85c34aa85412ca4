package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/flow-launcher/helloworld-go/internal/application/services"
	"github.com/flow-launcher/helloworld-go/internal/core/domain"
	"github.com/flow-launcher/helloworld-go/internal/core/ports"
	"github.com/flow-launcher/helloworld-go/internal/jsonrpc"
)

// NewPreviewCommand creates the preview command
func NewPreviewCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Try the plugin in a terminal launcher window",
		Long: `Open an interactive terminal window that behaves like the launcher.

Type to query the plugin. Use [↑↓] to select a result, [Tab] to open its
context menu, [Esc] to go back and [Ctrl+C] to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newPreviewModel(cmd.Context(), container.Host, container.Plugin)
			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))

			if _, err := program.Run(); err != nil {
				return errors.Wrap(err, "preview failed")
			}
			return nil
		},
	}
}

var (
	previewTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86"))
	previewBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	previewSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("240")).
				Bold(true)
	previewSubtleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))
	previewErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))
)

// previewModel holds the state for the Bubble Tea preview
type previewModel struct {
	ctx               context.Context
	host              *services.PluginHost
	pluginName        string
	pluginDescription string

	input    textinput.Model
	results  []domain.Result
	selected int

	// non-nil while a context menu is open
	menu       []domain.Result
	menuParent string
	menuIndex  int

	status string
	err    error
	width  int
}

func newPreviewModel(ctx context.Context, host *services.PluginHost, plugin ports.Plugin) previewModel {
	input := textinput.New()
	input.Placeholder = "Type a query"
	input.Prompt = "› "
	input.Focus()

	m := previewModel{
		ctx:               ctx,
		host:              host,
		pluginName:        plugin.Name(),
		pluginDescription: plugin.Description(),
		input:             input,
	}
	m.runQuery()
	return m
}

// Init implements the Bubble Tea init method
func (m previewModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements the Bubble Tea update method
func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEsc:
			if m.menu != nil {
				m.closeMenu()
				return m, nil
			}
			return m, tea.Quit

		case tea.KeyUp:
			m.move(-1)
			return m, nil

		case tea.KeyDown:
			m.move(1)
			return m, nil

		case tea.KeyTab:
			m.openMenu()
			return m, nil

		case tea.KeyEnter:
			if r, ok := m.current(); ok {
				m.status = describeSelection(r)
			}
			return m, nil
		}
	}

	if m.menu != nil {
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.runQuery()
	}
	return m, cmd
}

// describeSelection reports what the launcher would do when r is picked
func describeSelection(r domain.Result) string {
	status := fmt.Sprintf("Selected %q", r.Title)
	switch {
	case r.JsonRPCAction == nil:
		return status
	case r.JsonRPCAction.IsHostAPI():
		return fmt.Sprintf("%s, launcher runs %s", status, strings.TrimPrefix(r.JsonRPCAction.Method, domain.HostAPIPrefix))
	default:
		return fmt.Sprintf("%s, plugin runs %s", status, r.JsonRPCAction.Method)
	}
}

func (m *previewModel) runQuery() {
	m.results, m.err = m.dispatch(jsonrpc.MethodQuery, m.input.Value())
	m.selected = 0
	m.status = ""
}

func (m *previewModel) openMenu() {
	r, ok := m.current()
	if !ok || m.menu != nil {
		return
	}
	if !r.HasContextMenu() {
		m.status = "No context menu for this result"
		return
	}

	menu, err := m.dispatch(jsonrpc.MethodContextMenu, r.ContextData)
	if err != nil {
		m.err = err
		return
	}
	m.menu = menu
	m.menuParent = r.Title
	m.menuIndex = 0
	m.status = ""
}

func (m *previewModel) closeMenu() {
	m.menu = nil
	m.menuParent = ""
	m.menuIndex = 0
	m.status = ""
}

func (m *previewModel) move(delta int) {
	if m.menu != nil {
		m.menuIndex = lo.Clamp(m.menuIndex+delta, 0, max(len(m.menu)-1, 0))
		return
	}
	m.selected = lo.Clamp(m.selected+delta, 0, max(len(m.results)-1, 0))
}

func (m previewModel) current() (domain.Result, bool) {
	if m.menu != nil {
		if m.menuIndex < len(m.menu) {
			return m.menu[m.menuIndex], true
		}
		return domain.Result{}, false
	}
	if m.selected < len(m.results) {
		return m.results[m.selected], true
	}
	return domain.Result{}, false
}

func (m previewModel) dispatch(method string, param any) ([]domain.Result, error) {
	req, err := jsonrpc.NewRequest(method, param)
	if err != nil {
		return []domain.Result{}, err
	}
	return m.host.Dispatch(m.ctx, req)
}

// View implements the Bubble Tea view method
func (m previewModel) View() string {
	header := previewTitleStyle.Render(m.pluginName)

	var body string
	if m.menu != nil {
		body = lipgloss.JoinVertical(lipgloss.Left,
			previewSubtleStyle.Render("Context menu: "+m.menuParent),
			m.renderResults(m.menu, m.menuIndex))
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.input.View(),
			m.renderResults(m.results, m.selected))
	}

	parts := []string{header}
	if m.pluginDescription != "" {
		parts = append(parts, previewSubtleStyle.Render(m.pluginDescription))
	}
	parts = append(parts, previewBoxStyle.Render(body))
	if m.err != nil {
		parts = append(parts, previewErrorStyle.Render("Error: "+m.err.Error()))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	parts = append(parts, previewSubtleStyle.Render("[↑↓] Select | [Tab] Context menu | [Esc] Back | [Ctrl+C] Quit"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m previewModel) renderResults(results []domain.Result, selected int) string {
	if len(results) == 0 {
		return previewSubtleStyle.Render("No results")
	}

	rows := lo.Map(results, func(r domain.Result, i int) string {
		row := r.Title + "\n" + previewSubtleStyle.Render("  "+r.SubTitle)
		if r.HasContextMenu() {
			row = strings.Replace(row, r.Title, r.Title+" ⋯", 1)
		}
		if i == selected {
			return previewSelectedStyle.Render(row)
		}
		return row
	})
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/usecase/jsontree"
)

type screen int

const (
	screenHome screen = iota
	screenTool
	screenTree
	screenHistory
)

const (
	itemHistory = "History"
	itemInit    = "Init Workspace"
	itemQuit    = "Quit"
)

type menuItem struct {
	title string
	desc  string
	tool  domain.ToolID
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	active  domain.ToolInfo
	input   textarea.Model
	output  viewport.Model
	result  domain.ToolResult
	ranOnce bool
	running bool
	toast   string

	workspaceFound bool
	workspaceRoot  string

	treeRows  []treeRow
	cursor    int
	collapsed map[string]bool

	records []domain.HistoryRecord

	width  int
	height int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := make([]list.Item, 0, len(domain.Tools())+3)
	for _, info := range domain.Tools() {
		if info.ID == domain.ToolReport {
			// Reports are produced from the CLI export command.
			continue
		}
		items = append(items, menuItem{title: info.Name, desc: info.Summary, tool: info.ID})
	}
	items = append(items,
		menuItem{title: itemHistory, desc: "Recorded tool runs in this workspace"},
		menuItem{title: itemInit, desc: "Create toolbelt.yaml, history/ and exports/ here"},
		menuItem{title: itemQuit, desc: "Exit Toolbelt"},
	)

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Toolbelt"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	in := textarea.New()
	in.Placeholder = "Paste input here"
	in.CharLimit = 0

	m := model{
		theme:     t,
		deps:      deps,
		scr:       screenHome,
		menu:      l,
		input:     in,
		output:    viewport.New(0, 0),
		collapsed: map[string]bool{},
	}

	wd, err := os.Getwd()
	if err == nil && deps.WorkspaceLocator != nil {
		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr == nil {
			m.workspaceFound = true
			m.workspaceRoot = root
		}
	}

	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		m.input.SetWidth(msg.Width - 8)
		m.input.SetHeight(max(4, (msg.Height-14)/2))
		m.output.Width = msg.Width - 8
		m.output.Height = max(4, (msg.Height-14)/2)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		if msg.err != nil && !msg.found {
			m.toast = "No workspace found"
		}
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace initialized at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case toolDoneMsg:
		m.running = false
		m.ranOnce = true
		m.result = msg.res
		if msg.err != nil {
			m.toast = userMessage(msg.err)
		} else {
			m.toast = ""
		}
		if m.active.ID == domain.ToolJSONTree && msg.res.Success {
			return m.enterTreeScreen()
		}
		m.output.SetContent(renderResult(m.theme, msg.res, msg.id))
		m.output.GotoTop()
		return m, nil

	case historyLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.scr = screenHome
			return m, nil
		}
		m.records = msg.recs
		m.output.SetContent(renderHistory(m.theme, msg.recs))
		m.output.GotoTop()
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q":
		if m.scr == screenHome && !m.menu.SettingFilter() {
			return m, tea.Quit
		}

	case "esc":
		switch m.scr {
		case screenTree:
			m.scr = screenTool
			return m, nil
		case screenTool, screenHistory:
			m.scr = screenHome
			m.toast = ""
			return m, nil
		}

	case "enter":
		if m.scr == screenHome && !m.menu.SettingFilter() {
			it, ok := m.menu.SelectedItem().(menuItem)
			if !ok {
				return m, nil
			}
			return m.openItem(it)
		}
		if m.scr == screenTree {
			return m.toggleNode()
		}

	case " ":
		if m.scr == screenTree {
			return m.toggleNode()
		}

	case "up", "k":
		if m.scr == screenTree {
			if m.cursor > 0 {
				m.cursor--
			}
			m.syncTreeView()
			return m, nil
		}

	case "down", "j":
		if m.scr == screenTree {
			if m.cursor < len(m.treeRows)-1 {
				m.cursor++
			}
			m.syncTreeView()
			return m, nil
		}

	case "ctrl+r":
		if m.scr == screenTool && !m.running {
			return m.runActiveTool()
		}

	case "ctrl+f":
		// Certificate lookup treats the input as host[:port].
		if m.scr == screenTool && m.active.ID == domain.ToolCert && !m.running {
			host := strings.TrimSpace(m.input.Value())
			if host == "" {
				m.toast = "Enter a host to fetch"
				return m, nil
			}
			m.running = true
			m.toast = "Fetching chain from " + host + "..."
			return m, cmdFetchChain(m.deps, m.workspaceRoot, host)
		}

	case "tab":
		if m.scr == screenTool {
			if m.input.Focused() {
				m.input.Blur()
			} else {
				return m, m.input.Focus()
			}
			return m, nil
		}
	}

	return m.updateFocused(msg)
}

func (m model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.scr {
	case screenHome:
		m.menu, cmd = m.menu.Update(msg)
	case screenTool:
		if m.input.Focused() {
			m.input, cmd = m.input.Update(msg)
		} else {
			m.output, cmd = m.output.Update(msg)
		}
	case screenHistory:
		m.output, cmd = m.output.Update(msg)
	}
	return m, cmd
}

func (m model) openItem(it menuItem) (tea.Model, tea.Cmd) {
	switch it.title {
	case itemQuit:
		return m, tea.Quit

	case itemInit:
		wd, err := os.Getwd()
		if err != nil {
			m.toast = "Cannot resolve working directory"
			return m, nil
		}
		m.toast = "Initializing workspace..."
		return m, cmdInitWorkspaceHere(m.deps, wd)

	case itemHistory:
		m.scr = screenHistory
		m.output.SetContent("Loading...")
		return m, cmdLoadHistory(m.workspaceRoot)
	}

	info, ok := domain.LookupTool(it.tool)
	if !ok {
		return m, nil
	}
	m.active = info
	m.scr = screenTool
	m.result = domain.ToolResult{}
	m.ranOnce = false
	m.toast = ""
	m.input.Reset()
	m.output.SetContent("")
	return m, m.input.Focus()
}

func (m model) runActiveTool() (tea.Model, tea.Cmd) {
	input := m.input.Value()
	if strings.TrimSpace(input) == "" {
		m.toast = "Input is empty"
		return m, nil
	}
	m.running = true
	m.toast = "Running..."
	return m, cmdRunTool(m.deps, m.workspaceRoot, m.active.ID, input)
}

func (m model) enterTreeScreen() (tea.Model, tea.Cmd) {
	root, err := jsontree.Parse(m.input.Value())
	if err != nil {
		m.toast = "Invalid JSON"
		m.output.SetContent(renderResult(m.theme, domain.Failf("%v", err), ""))
		return m, nil
	}
	m.collapsed = map[string]bool{}
	m.treeRows = flattenTree(root, m.collapsed)
	m.cursor = 0
	m.scr = screenTree
	m.syncTreeView()
	return m, nil
}

func (m *model) toggleNode() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.treeRows) {
		return *m, nil
	}
	node := m.treeRows[m.cursor].node
	if len(node.Children) == 0 {
		return *m, nil
	}
	m.collapsed[node.Path] = !m.collapsed[node.Path]

	rows := m.treeRows
	m.treeRows = flattenTree(rows[0].node, m.collapsed)
	if m.cursor >= len(m.treeRows) {
		m.cursor = len(m.treeRows) - 1
	}
	m.syncTreeView()
	return *m, nil
}

func (m *model) syncTreeView() {
	m.output.SetContent(renderTreeRows(m.theme, m.treeRows, m.cursor, m.collapsed))
	// Keep the cursor line inside the viewport.
	if m.output.Height > 0 {
		top := m.output.YOffset
		if m.cursor < top {
			m.output.SetYOffset(m.cursor)
		} else if m.cursor >= top+m.output.Height {
			m.output.SetYOffset(m.cursor - m.output.Height + 1)
		}
	}
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Toolbelt") + "\n" +
		m.theme.Subtitle.Render("Developer conversion toolbox") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Card.Render(
			"⚠ No workspace found.\n\nRuns will not be recorded. Use Init Workspace to create one.",
		)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenTool:
		return wrap.Render(header + "\n" + m.viewTool())

	case screenTree:
		help := m.theme.Help.Render("↑/↓ move • enter/space fold • esc back")
		card := m.theme.Card.Render(
			m.theme.Title.Render("JSON explorer") + "\n\n" + m.output.View(),
		)
		return wrap.Render(header + "\n" + card + "\n" + help)

	case screenHistory:
		help := m.theme.Help.Render("↑/↓ scroll • esc back")
		card := m.theme.Card.Render(
			m.theme.Title.Render("History") + "\n\n" + m.output.View(),
		)
		return wrap.Render(header + "\n" + card + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) viewTool() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.active.Name))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(m.active.Summary))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.running:
		b.WriteString(m.theme.Subtitle.Render("Running..."))
	case m.ranOnce:
		b.WriteString(m.output.View())
	default:
		b.WriteString(m.theme.Help.Render("(no result yet)"))
	}

	if m.toast != "" {
		b.WriteString("\n\n")
		b.WriteString(m.theme.Error.Render(m.toast))
	}

	help := "ctrl+r run • tab focus • esc back"
	if m.active.ID == domain.ToolCert {
		help = "ctrl+r decode • ctrl+f fetch host • tab focus • esc back"
	}
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render(help))

	return m.theme.Card.Render(b.String())
}

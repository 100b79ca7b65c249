package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"workwise/internal/engine"
	"workwise/internal/storage"
)

type dashModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	profile  *storage.Profile
	dayKey   string
	day      storage.TrackerDay
	orders   []storage.Order
	wishlist []string
	price    string

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	profile  *storage.Profile
	dayKey   string
	day      storage.TrackerDay
	orders   []storage.Order
	wishlist []string
	price    string
	err      error
}

type toggledMsg struct {
	id      string
	flipped bool
	err     error
}

func newDashModel(ctx context.Context, svc *engine.Service) dashModel {
	return dashModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dashModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Profile(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		dayKey, day, err := m.svc.Today(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		orders, err := m.svc.Orders(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		wishlist, err := m.svc.Wishlist(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		price, err := m.svc.Price(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{profile: p, dayKey: dayKey, day: day, orders: orders, wishlist: wishlist, price: price}
	}
}

func (m dashModel) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		flipped, err := m.svc.ToggleTask(m.ctx, m.dayKey, id)
		return toggledMsg{id: id, flipped: flipped, err: err}
	}
}

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		m.dayKey = msg.dayKey
		m.day = msg.day
		m.orders = msg.orders
		m.wishlist = msg.wishlist
		m.price = msg.price
		if m.selected >= len(m.day.Tasks) {
			m.selected = len(m.day.Tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Toggle failed: " + msg.err.Error()
			return m, nil
		}
		if !msg.flipped {
			m.lastLog = "Task vanished; refreshing."
		} else {
			m.lastLog = "Toggled."
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.day.Tasks)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			if m.selected < 0 || m.selected >= len(m.day.Tasks) {
				return m, nil
			}
			task := m.day.Tasks[m.selected]
			m.lastLog = fmt.Sprintf("Toggling %q…", task.Title)
			return m, m.toggleCmd(task.ID)
		}
	}
	return m, nil
}

func (m dashModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := "\n" + m.lastLog

	// Simple 2-column layout.
	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m dashModel) renderHeader() string {
	if m.loading && m.price == "" {
		return "WorkWise — loading…"
	}
	name := m.profile.DisplayName()
	return fmt.Sprintf("WorkWise | %s | Mini Guide %s | %s", name, m.price, m.dayKey)
}

func (m dashModel) renderSidebar() string {
	lines := []string{"Profile"}
	if m.profile == nil {
		lines = append(lines, "- guest (ww signin)")
	} else {
		lines = append(lines, "- "+m.profile.DisplayName())
		if m.profile.Country != "" {
			lines = append(lines, "- "+m.profile.Country)
		}
		lines = append(lines, fmt.Sprintf("- bookings: %d", m.profile.Bookings))
		for i, act := range m.profile.Activities {
			if i == 3 {
				break
			}
			lines = append(lines, "  · "+act)
		}
	}
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Wishlist (%d)", len(m.wishlist)))
	for _, id := range m.wishlist {
		lines = append(lines, "- "+id)
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- enter/space: toggle task")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m dashModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Today's Tasks")
	if len(m.day.Tasks) == 0 {
		out = append(out, "(nothing yet — ww track add)")
	}
	for i, task := range m.day.Tasks {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		box := "[ ]"
		if task.Done {
			box = "[x]"
		}
		out = append(out, fmt.Sprintf("%s%s %s", cursor, box, task.Title))
	}
	if m.day.Notes != "" {
		out = append(out, "", "Notes: "+m.day.Notes)
	}

	out = append(out, "", "Recent Orders")
	if len(m.orders) == 0 {
		out = append(out, "(none)")
	}
	for i, o := range m.orders {
		if i == 5 {
			break
		}
		out = append(out, fmt.Sprintf("- %s %s via %s (%s)", o.CreatedAt.Format("2006-01-02"), o.AmountDisplay, o.Provider, o.Status))
	}
	return strings.Join(out, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

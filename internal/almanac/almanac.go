// Package almanac renders an interactive month calendar of sun and moon
// events as a Bubble Tea program. One row per day carries sunrise, transit,
// sunset and daylight duration; days with a principal lunar phase are
// annotated. The place catalog can be swapped at runtime through
// CatalogReloadedMsg, which the command wires to a file watcher.
package almanac

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	meeussunmoon "github.com/zyo00ody/MeeusSunMoon"
	"github.com/zyo00ody/MeeusSunMoon/internal/places"
)

// Styles for the calendar
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	todayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	phaseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// CatalogReloadedMsg carries a freshly loaded place catalog. It is sent
// through Program.Send by whoever watches the catalog file.
type CatalogReloadedMsg struct {
	Catalog *places.Catalog
}

type dayRow struct {
	day      time.Time
	rise     meeussunmoon.SunEvent
	noon     time.Time
	set      meeussunmoon.SunEvent
	daylight string
	phase    string
}

// Model is the almanac's Bubble Tea model.
type Model struct {
	width  int
	height int

	catalog  *places.Catalog
	placeIdx int
	month    time.Time // first day of the displayed month, in the place's zone
	cfg      meeussunmoon.Config

	rows   []dayRow
	status string
	err    error
}

// New creates the almanac model showing the given month. An unknown or
// empty placeName selects the catalog's first place.
func New(catalog *places.Catalog, placeName string, month time.Time, cfg meeussunmoon.Config) Model {
	m := Model{
		catalog: catalog,
		cfg:     cfg,
		month:   month,
	}
	for i, p := range catalog.Places {
		if strings.EqualFold(p.Name, placeName) {
			m.placeIdx = i
			break
		}
	}
	return m.recompute()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "left", "h":
			m.month = m.month.AddDate(0, -1, 0)
			return m.recompute(), nil

		case "right", "l":
			m.month = m.month.AddDate(0, 1, 0)
			return m.recompute(), nil

		case "up", "k":
			if n := len(m.catalog.Places); n > 0 {
				m.placeIdx = (m.placeIdx + n - 1) % n
			}
			return m.recompute(), nil

		case "down", "j":
			if n := len(m.catalog.Places); n > 0 {
				m.placeIdx = (m.placeIdx + 1) % n
			}
			return m.recompute(), nil

		case "t":
			m.month = time.Now()
			return m.recompute(), nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case CatalogReloadedMsg:
		m = m.setCatalog(msg.Catalog)
		m.status = fmt.Sprintf("catalog reloaded %s", time.Now().Format("15:04:05"))
		return m.recompute(), nil
	}

	return m, nil
}

// setCatalog swaps the catalog, following the current place by name when it
// still exists and clamping the index when it does not.
func (m Model) setCatalog(c *places.Catalog) Model {
	current := ""
	if m.placeIdx < len(m.catalog.Places) {
		current = m.catalog.Places[m.placeIdx].Name
	}

	m.catalog = c
	m.placeIdx = 0
	for i, p := range c.Places {
		if strings.EqualFold(p.Name, current) {
			m.placeIdx = i
			break
		}
	}
	return m
}

// recompute rebuilds the day rows for the current place and month.
func (m Model) recompute() Model {
	m.rows = nil
	m.err = nil

	if len(m.catalog.Places) == 0 {
		m.err = fmt.Errorf("the place catalog is empty")
		return m
	}
	if m.placeIdx >= len(m.catalog.Places) {
		m.placeIdx = 0
	}
	place := m.catalog.Places[m.placeIdx]

	zone, err := place.Location()
	if err != nil {
		m.err = err
		return m
	}
	where := meeussunmoon.Coordinates{Lat: place.Lat, Lon: place.Lon}

	first := time.Date(m.month.Year(), m.month.Month(), 1, 0, 0, 0, 0, zone)
	m.month = first
	days := first.AddDate(0, 1, -1).Day()

	phases, err := m.phaseAnnotations(first.Year(), zone)
	if err != nil {
		m.err = err
		return m
	}

	for d := 1; d <= days; d++ {
		day := time.Date(first.Year(), first.Month(), d, 12, 0, 0, 0, zone)

		rise, err := meeussunmoon.Sunrise(day, where, m.cfg)
		if err != nil {
			m.err = err
			return m
		}
		set, err := meeussunmoon.Sunset(day, where, m.cfg)
		if err != nil {
			m.err = err
			return m
		}
		noon, err := meeussunmoon.SolarNoon(day, where.Lon, m.cfg)
		if err != nil {
			m.err = err
			return m
		}

		daylight := "     —"
		if hours, err := meeussunmoon.DaylightHours(day, where); err == nil {
			daylight = fmt.Sprintf("%5.1fh", hours)
		}

		m.rows = append(m.rows, dayRow{
			day:      day,
			rise:     rise,
			noon:     noon,
			set:      set,
			daylight: daylight,
			phase:    phases[d],
		})
	}
	return m
}

// phaseAnnotations maps days of the displayed month to a phase glyph and
// name, from the year's merged phase sequence.
func (m Model) phaseAnnotations(year int, zone *time.Location) (map[int]string, error) {
	events, err := meeussunmoon.AllMoonPhases(year, zone, m.cfg)
	if err != nil {
		return nil, err
	}

	glyphs := map[meeussunmoon.MoonPhase]string{
		meeussunmoon.NewMoon:      "●",
		meeussunmoon.FirstQuarter: "◐",
		meeussunmoon.FullMoon:     "○",
		meeussunmoon.LastQuarter:  "◑",
	}

	out := make(map[int]string)
	for _, ev := range events {
		if ev.Time.Month() != m.month.Month() {
			continue
		}
		out[ev.Time.Day()] = fmt.Sprintf("%s %s %s",
			glyphs[ev.Phase], ev.Phase, ev.Time.Format("15:04"))
	}
	return out, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(m.footer())
		return b.String()
	}

	place := m.catalog.Places[m.placeIdx]
	title := fmt.Sprintf("%s (%.4f, %.4f) — %s", place.Name, place.Lat, place.Lon,
		m.month.Format("January 2006"))
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("zone " + m.month.Location().String()))
	b.WriteString("\n\n")

	header := fmt.Sprintf("%-10s %-8s %-8s %-8s %-7s %s",
		"Day", "Rise", "Noon", "Set", "Light", "Moon")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	maxRows := len(m.rows)
	if m.height > 0 && m.height-8 < maxRows {
		maxRows = m.height - 8
		if maxRows < 5 {
			maxRows = 5
		}
	}
	if maxRows > len(m.rows) {
		maxRows = len(m.rows)
	}

	now := time.Now().In(m.month.Location())
	for i := 0; i < maxRows; i++ {
		r := m.rows[i]
		row := fmt.Sprintf("%-10s %-8s %-8s %-8s %-7s",
			r.day.Format("Mon 02"),
			r.rise.Format("15:04", m.cfg),
			r.noon.Format("15:04"),
			r.set.Format("15:04", m.cfg),
			r.daylight)

		style := rowStyle
		if sameDay(r.day, now) {
			style = todayStyle
		}
		b.WriteString(style.Render(row))
		if r.phase != "" {
			b.WriteString(" " + phaseStyle.Render(r.phase))
		}
		b.WriteString("\n")
	}
	if maxRows < len(m.rows) {
		b.WriteString(footerStyle.Render(
			fmt.Sprintf("  showing 1-%d of %d days", maxRows, len(m.rows))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) footer() string {
	keys := "←/→ month · ↑/↓ place · t today · q quit"
	if m.status != "" {
		keys += " · " + m.status
	}
	return footerStyle.Render(keys)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

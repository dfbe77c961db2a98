package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lvbauer/retrovault/library"
	"github.com/lvbauer/retrovault/videos"
)

const (
	scrollMargin = 3 // Number of lines to keep as margin at top and bottom
)

type BrowserModel struct {
	lib             *library.Library
	mode            library.ViewMode
	category        string
	categoryIndex   int
	search          textinput.Model
	visible         []videos.VideoRecord
	cursor          int
	selectedID      string
	uploadRequested bool
	viewport        viewport.Model
	ready           bool
	styles          struct {
		title    lipgloss.Style
		subtitle lipgloss.Style
		stats    lipgloss.Style
		category lipgloss.Style
		active   lipgloss.Style
		record   lipgloss.Style
		cursor   lipgloss.Style
		metadata lipgloss.Style
		favorite lipgloss.Style
		help     lipgloss.Style
	}
}

func NewBrowserModel(lib *library.Library) BrowserModel {
	m := BrowserModel{
		lib:      lib,
		mode:     library.ViewHome,
		category: videos.CategoryAll,
		search:   textinput.New(),
	}
	m.search.Placeholder = "search the archive"

	m.styles.title = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		MarginBottom(1)
	m.styles.subtitle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	m.styles.stats = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	m.styles.category = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	m.styles.active = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	m.styles.record = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	m.styles.cursor = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	m.styles.metadata = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	m.styles.favorite = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	m.styles.help = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	m.refresh()
	return m
}

// refresh recomputes the visible sequence from the current collection and
// filter state. The filtered view is always derived, never cached across
// changes.
func (m *BrowserModel) refresh() {
	m.visible = library.Visible(m.lib.Snapshot(), library.Filter{
		Mode:     m.mode,
		Query:    m.search.Value(),
		Category: m.category,
	})
	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
}

func (m *BrowserModel) Update(msg tea.Msg) (BrowserModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 8 // Title, stats, categories, search and spacing
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}

	case tea.KeyMsg:
		if m.search.Focused() {
			switch msg.String() {
			case "esc":
				m.search.SetValue("")
				m.search.Blur()
				m.refresh()
				return *m, nil
			case "enter":
				m.search.Blur()
				return *m, nil
			default:
				m.search, cmd = m.search.Update(msg)
				m.refresh()
				return *m, cmd
			}
		}

		switch msg.String() {
		case "q":
			return *m, tea.Quit
		case "/":
			m.search.Focus()
			return *m, textinput.Blink
		case "up":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.viewport.YOffset+scrollMargin {
					m.viewport.YOffset = max(0, m.cursor-scrollMargin)
				}
			}
		case "down":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
				if m.cursor >= m.viewport.YOffset+m.viewport.Height-scrollMargin {
					maxOffset := max(0, len(m.visible)-m.viewport.Height+scrollMargin)
					m.viewport.YOffset = min(
						m.cursor-m.viewport.Height+1+scrollMargin,
						maxOffset,
					)
				}
			}
		case "left":
			m.categoryIndex = (m.categoryIndex + len(library.Categories) - 1) % len(library.Categories)
			m.category = library.Categories[m.categoryIndex]
			m.viewport.YOffset = 0
			m.refresh()
		case "right":
			m.categoryIndex = (m.categoryIndex + 1) % len(library.Categories)
			m.category = library.Categories[m.categoryIndex]
			m.viewport.YOffset = 0
			m.refresh()
		case "tab":
			switch m.mode {
			case library.ViewHome:
				m.mode = library.ViewAll
			case library.ViewAll:
				m.mode = library.ViewFavorites
			default:
				m.mode = library.ViewHome
			}
			m.viewport.YOffset = 0
			m.refresh()
		case "f":
			if len(m.visible) > 0 && m.cursor < len(m.visible) {
				m.lib.ToggleFavorite(m.visible[m.cursor].ID)
				m.refresh()
			}
		case "u":
			m.uploadRequested = true
		case "enter":
			if len(m.visible) > 0 && m.cursor < len(m.visible) {
				m.selectedID = m.visible[m.cursor].ID
			}
		}
	}

	m.refresh()
	return *m, cmd
}

func (m BrowserModel) viewTitle() string {
	switch m.mode {
	case library.ViewFavorites:
		return "FAVORITE VIDEOS"
	case library.ViewAll:
		return "ALL VIDEOS"
	default:
		return "RECENT UPLOADS"
	}
}

func (m BrowserModel) viewSubtitle() string {
	switch m.mode {
	case library.ViewFavorites:
		return fmt.Sprintf("%d videos marked as favorites", len(m.visible))
	case library.ViewAll:
		return fmt.Sprintf("%d videos in archive", len(m.visible))
	default:
		return fmt.Sprintf("%d files located", len(m.visible))
	}
}

func (m BrowserModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	var header strings.Builder
	header.WriteString(m.styles.title.Render(m.viewTitle()) + "\n")
	header.WriteString(m.styles.subtitle.Render(m.viewSubtitle()) + "\n")

	if m.mode == library.ViewHome {
		stats := library.Stats(m.lib.Snapshot())
		header.WriteString(m.styles.stats.Render(fmt.Sprintf(
			"%d videos  •  %d categories  •  %s  •  %s",
			stats.TotalVideos, stats.TotalCategories, stats.TotalSize, stats.TotalDuration,
		)) + "\n")
	}

	var categories []string
	for _, c := range library.Categories {
		if c == m.category {
			categories = append(categories, m.styles.active.Render(c))
		} else {
			categories = append(categories, m.styles.category.Render(c))
		}
	}
	header.WriteString(strings.Join(categories, "  ") + "\n")
	header.WriteString(m.search.View() + "\n\n")

	var list strings.Builder
	for i, record := range m.visible {
		cursor := " "
		if i == m.cursor {
			cursor = m.styles.cursor.Render(">")
		}

		favorite := " "
		if record.IsFavorite {
			favorite = m.styles.favorite.Render("*")
		}

		title := m.styles.record.Render(record.Title)
		metadata := m.styles.metadata.Render(fmt.Sprintf(
			" - %s  %s  %s  %d views",
			record.Category, record.Duration, record.Size, record.Views,
		))
		list.WriteString(fmt.Sprintf("%s %s%s%s\n", cursor, favorite, title, metadata))
	}
	if len(m.visible) == 0 {
		list.WriteString("No videos match the current filters.")
	}

	m.viewport.SetContent(list.String())

	help := m.styles.help.Render(
		"enter: play • f: favorite • /: search • tab: view • left/right: category • u: upload • q: quit",
	)

	return header.String() + m.viewport.View() + "\n" + help
}

// SelectedRecord reports a pending playback selection.
func (m *BrowserModel) SelectedRecord() (string, bool) {
	return m.selectedID, m.selectedID != ""
}

func (m *BrowserModel) ClearSelection() {
	m.selectedID = ""
}

// UploadRequested reports that the user asked for the upload screen.
func (m *BrowserModel) UploadRequested() bool {
	return m.uploadRequested
}

func (m *BrowserModel) ClearUploadRequest() {
	m.uploadRequested = false
}

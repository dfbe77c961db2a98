package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lvbauer/retrovault/library"
	"github.com/lvbauer/retrovault/thumbs"
	"github.com/lvbauer/retrovault/videos"
)

// PlayerModel presents the record being played. It shows the snapshot taken
// at play time, so the view count on screen is the one the user clicked on.
type PlayerModel struct {
	lib          *library.Library
	provider     *thumbs.Provider
	record       videos.VideoRecord
	thumbnailURL string
	err          error
	viewport     viewport.Model
	ready        bool
	styles       struct {
		title    lipgloss.Style
		metadata lipgloss.Style
		err      lipgloss.Style
		help     lipgloss.Style
	}
}

type thumbnailReadyMsg struct {
	recordID string
	url      string
}

type thumbnailErrorMsg struct {
	recordID string
	err      error
}

func NewPlayerModel(lib *library.Library, provider *thumbs.Provider) PlayerModel {
	m := PlayerModel{
		lib:      lib,
		provider: provider,
	}

	m.styles.title = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		MarginBottom(1)
	m.styles.metadata = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	m.styles.err = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	m.styles.help = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	return m
}

// Show switches the player to the given snapshot and starts deriving its
// thumbnail if the record does not carry one yet.
func (m *PlayerModel) Show(record videos.VideoRecord) tea.Cmd {
	m.record = record
	m.thumbnailURL = record.ThumbnailURL
	m.err = nil

	if m.thumbnailURL != "" || m.provider == nil {
		return nil
	}

	provider := m.provider
	return func() tea.Msg {
		url, err := provider.Ensure(context.Background(), record)
		if err != nil {
			return thumbnailErrorMsg{recordID: record.ID, err: err}
		}
		return thumbnailReadyMsg{recordID: record.ID, url: url}
	}
}

func (m *PlayerModel) Update(msg tea.Msg) (PlayerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height)
			m.viewport.Style = lipgloss.NewStyle().Align(lipgloss.Center)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height
		}

	case thumbnailReadyMsg:
		if msg.recordID == m.record.ID {
			m.thumbnailURL = msg.url
			m.lib.SetThumbnailURL(msg.recordID, msg.url)
		}

	case thumbnailErrorMsg:
		if msg.recordID == m.record.ID {
			m.err = msg.err
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "f":
			m.lib.ToggleFavorite(m.record.ID)
			m.record.IsFavorite = !m.record.IsFavorite
		}
	}

	return *m, nil
}

func (m PlayerModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	var content strings.Builder
	content.WriteString(m.styles.title.Render("NOW PLAYING") + "\n\n")

	favorite := ""
	if m.record.IsFavorite {
		favorite = " *"
	}
	content.WriteString(m.styles.metadata.Render(m.record.Title+favorite) + "\n")
	content.WriteString(m.record.Description + "\n\n")

	content.WriteString(fmt.Sprintf("Category:  %s\n", m.record.Category))
	content.WriteString(fmt.Sprintf("Duration:  %s\n", m.record.Duration))
	if m.record.Size != "" {
		content.WriteString(fmt.Sprintf("Size:      %s\n", m.record.Size))
	}
	content.WriteString(fmt.Sprintf("Views:     %d\n", m.record.Views))
	content.WriteString(fmt.Sprintf("Uploaded:  %s\n", m.record.UploadDate))
	content.WriteString(fmt.Sprintf("Source:    %s\n", m.record.VideoURL))

	if m.thumbnailURL != "" {
		content.WriteString(fmt.Sprintf("Thumbnail: %s\n", m.thumbnailURL))
	} else if m.err != nil {
		content.WriteString(m.styles.err.Render(fmt.Sprintf("Thumbnail unavailable: %v", m.err)) + "\n")
	} else {
		content.WriteString("Thumbnail: deriving...\n")
	}

	content.WriteString("\n" + m.styles.help.Render(strings.Join([]string{
		"f: Toggle favorite",
		"Esc: Back to browser",
		"q: Quit",
	}, "\n")))

	m.viewport.SetContent(content.String())
	return m.viewport.View()
}

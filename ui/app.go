package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvbauer/retrovault/library"
	"github.com/lvbauer/retrovault/logging"
	"github.com/lvbauer/retrovault/thumbs"
	"github.com/lvbauer/retrovault/uploading"
)

type Screen int

const (
	BrowserScreen Screen = iota
	PlayerScreen
	UploadScreen
)

type Model struct {
	currentScreen Screen
	browser       BrowserModel
	player        PlayerModel
	upload        UploadModel
	lib           *library.Library
	logger        logging.Logger
}

func NewModel(lib *library.Library, queue uploading.Queue, provider *thumbs.Provider, logger logging.Logger) Model {
	if logger == nil {
		logger = logging.NopLogger
	}

	return Model{
		currentScreen: BrowserScreen,
		browser:       NewBrowserModel(lib),
		player:        NewPlayerModel(lib, provider),
		upload:        NewUploadModel(queue),
		lib:           lib,
		logger:        logger,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		// Update all models with window size
		m.browser, _ = m.browser.Update(msg)
		m.player, _ = m.player.Update(msg)
		m.upload, _ = m.upload.Update(msg)
	}

	switch m.currentScreen {
	case BrowserScreen:
		return m.updateBrowser(msg)
	case PlayerScreen:
		return m.updatePlayer(msg)
	case UploadScreen:
		return m.updateUpload(msg)
	}
	return m, nil
}

func (m Model) updateBrowser(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.browser, cmd = m.browser.Update(msg)

	// A record was selected for playback. Record the play immediately and
	// show the pre-play snapshot, so the player never displays the bumped
	// view count of its own play.
	if id, ok := m.browser.SelectedRecord(); ok {
		m.browser.ClearSelection()

		if snapshot, found := m.lib.RecordPlay(id); found {
			m.logger.Info("Playing record", "id", id, "title", snapshot.Title)
			m.currentScreen = PlayerScreen
			return m, tea.Batch(cmd, m.player.Show(snapshot))
		}
		return m, cmd
	}

	if m.browser.UploadRequested() {
		m.browser.ClearUploadRequest()
		m.currentScreen = UploadScreen
		return m, tea.Batch(cmd, m.upload.Open())
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	return m, cmd
}

func (m Model) updatePlayer(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.currentScreen = BrowserScreen
			return m, nil
		case "ctrl+c", "q":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.player, cmd = m.player.Update(msg)
	return m, cmd
}

func (m Model) updateUpload(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.currentScreen = BrowserScreen
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.upload, cmd = m.upload.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	switch m.currentScreen {
	case BrowserScreen:
		return m.browser.View()
	case PlayerScreen:
		return m.player.View()
	case UploadScreen:
		return m.upload.View()
	default:
		return "Unknown screen"
	}
}

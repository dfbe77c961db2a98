package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lvbauer/retrovault/uploading"
)

// UploadModel is the upload screen: a path prompt plus live progress for the
// files currently being ingested.
type UploadModel struct {
	queue      uploading.Queue
	pathsInput textinput.Model
	progress   progress.Model
	notices    []string
	viewport   viewport.Model
	ready      bool
	polling    bool
	styles     struct {
		title  lipgloss.Style
		label  lipgloss.Style
		notice lipgloss.Style
		help   lipgloss.Style
	}
}

type uploadTickMsg struct{}

func uploadTick() tea.Cmd {
	return tea.Tick(time.Second/10, func(time.Time) tea.Msg {
		return uploadTickMsg{}
	})
}

func NewUploadModel(queue uploading.Queue) UploadModel {
	m := UploadModel{
		queue:      queue,
		pathsInput: textinput.New(),
		progress: progress.New(
			progress.WithScaledGradient("#FF7CCB", "#FDFF8C"),
		),
	}

	m.pathsInput.Placeholder = "/path/to/video.mp4;/another/clip.webm"

	m.styles.title = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		MarginBottom(1)
	m.styles.label = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	m.styles.notice = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	m.styles.help = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	return m
}

// Open prepares the screen for a new visit.
func (m *UploadModel) Open() tea.Cmd {
	m.notices = nil
	m.pathsInput.SetValue("")
	m.pathsInput.Focus()
	return textinput.Blink
}

// submit queues every listed file. Files that do not exist or are not videos
// produce a notice and are skipped; the rest of the batch proceeds.
func (m *UploadModel) submit() {
	for _, path := range strings.Split(m.pathsInput.Value(), ";") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			m.notices = append(m.notices, fmt.Sprintf("Cannot read %s: %v", path, err))
			continue
		}

		job := &uploading.Job{
			Path:     path,
			Name:     filepath.Base(path),
			ByteSize: info.Size(),
		}
		if !m.queue.Queue(job) {
			m.notices = append(m.notices, fmt.Sprintf("Skipped %s (not a video file or queue full)", job.Name))
		}
	}
	m.pathsInput.SetValue("")
}

func (m *UploadModel) Update(msg tea.Msg) (UploadModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height)
			m.progress.Width = msg.Width - 20
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height
			m.progress.Width = msg.Width - 20
		}

	case uploadTickMsg:
		if len(m.queue.Progress()) > 0 {
			return *m, uploadTick()
		}
		m.polling = false

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "ctrl+s":
			m.submit()
			if !m.polling && len(m.queue.Progress()) > 0 {
				m.polling = true
				return *m, uploadTick()
			}
			return *m, nil
		}
	}

	newInput, cmd := m.pathsInput.Update(msg)
	m.pathsInput = newInput
	cmds = append(cmds, cmd)

	return *m, tea.Batch(cmds...)
}

func (m UploadModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	var content strings.Builder
	content.WriteString(m.styles.title.Render("UPLOAD VIDEOS") + "\n\n")
	content.WriteString("Add new videos to your personal archive. Supported: MP4, WebM, AVI, MOV, MKV.\n\n")

	content.WriteString(m.styles.label.Render("Files (semicolon-separated):") + "\n")
	content.WriteString(m.pathsInput.View() + "\n\n")

	inFlight := m.queue.Progress()
	if len(inFlight) > 0 {
		content.WriteString(m.styles.label.Render("Upload Progress") + "\n")
		for _, f := range inFlight {
			content.WriteString(fmt.Sprintf("%s (%s)\n", f.Name, f.State))
			content.WriteString(m.progress.ViewAs(float64(f.Percent)/100) + "\n")
		}
		content.WriteString("\n")
	}

	for _, notice := range m.notices {
		content.WriteString(m.styles.notice.Render(notice) + "\n")
	}

	content.WriteString("\n" + m.styles.help.Render(
		"enter: queue files • esc: back to browser • ctrl+c: quit",
	))

	m.viewport.SetContent(content.String())
	return m.viewport.View()
}

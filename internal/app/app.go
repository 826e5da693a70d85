// Package app contains the root application model.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glintlabs/glint/internal/log"
	"github.com/glintlabs/glint/internal/mode"
	"github.com/glintlabs/glint/internal/mode/preview"
	"github.com/glintlabs/glint/internal/pubsub"
	"github.com/glintlabs/glint/internal/watcher"
)

// Config holds the inputs for building the root model.
type Config struct {
	Services mode.Services

	// File is the path to preview. Empty opens the built-in gallery.
	File string

	// Language forces a rule table for the previewed file.
	Language string
}

// Model is the root application state. It owns the file watcher and its
// pubsub subscription so the preview mode can stay a plain value type.
type Model struct {
	preview  mode.Controller
	services mode.Services
	filePath string

	width  int
	height int

	watcherHandle *watcher.Watcher
	watcherCancel context.CancelFunc
	listener      *pubsub.ContinuousListener[string]
}

// New creates the application model. The watcher starts immediately when a
// file is given and watching is enabled; watcher failures are not fatal,
// the preview just runs without live reload.
func New(cfg Config) Model {
	m := Model{
		services: cfg.Services,
		filePath: cfg.File,
	}

	if cfg.File != "" && cfg.Services.Config.Watch.Enabled {
		m.startWatcher()
	}

	m.preview = preview.New(preview.Config{
		Services: cfg.Services,
		File:     cfg.File,
		Language: cfg.Language,
		Watching: m.watcherHandle != nil,
	})
	return m
}

// startWatcher creates and starts a watcher on the previewed file. A
// stopped watcher cannot restart, so toggling builds a fresh one.
func (m *Model) startWatcher() {
	w, err := watcher.New(watcher.Config{
		Path:     m.filePath,
		Debounce: m.services.Config.Watch.Debounce,
	})
	if err != nil {
		log.ErrorErr(log.CatWatch, "Failed to create file watcher", err, "path", m.filePath)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	listener := pubsub.NewContinuousListener(ctx, w.Broker())

	if err := w.Start(); err != nil {
		log.ErrorErr(log.CatWatch, "Failed to start file watcher", err, "path", m.filePath)
		cancel()
		_ = w.Stop()
		return
	}

	m.watcherHandle = w
	m.watcherCancel = cancel
	m.listener = listener
}

// stopWatcher tears down the watcher and its subscription.
func (m *Model) stopWatcher() {
	if m.watcherCancel != nil {
		m.watcherCancel()
		m.watcherCancel = nil
	}
	if m.watcherHandle != nil {
		if err := m.watcherHandle.Stop(); err != nil {
			log.ErrorErr(log.CatWatch, "Failed to stop file watcher", err)
		}
		m.watcherHandle = nil
	}
	m.listener = nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.preview.Init()}
	if m.listener != nil {
		cmds = append(cmds, m.listener.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.preview = m.preview.SetSize(msg.Width, msg.Height)
		return m, nil

	case pubsub.Event[string]:
		var inner tea.Msg
		switch msg.Type {
		case pubsub.DeletedEvent:
			inner = preview.FileDeletedMsg{Path: msg.Payload}
		default:
			inner = preview.FileChangedMsg{Path: msg.Payload}
		}

		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(inner)
		if m.listener != nil {
			return m, tea.Batch(cmd, m.listener.Listen())
		}
		return m, cmd

	case preview.ToggleWatchMsg:
		if msg.Enable {
			m.startWatcher()
		} else {
			m.stopWatcher()
		}

		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(preview.WatchStatusMsg{Watching: m.watcherHandle != nil})
		if msg.Enable && m.listener != nil {
			return m, tea.Batch(cmd, m.listener.Listen())
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return m.preview.View()
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	m.stopWatcher()
	return nil
}

// Package mode defines the mode controller interface and shared services.
package mode

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/trace"

	"github.com/glintlabs/glint/internal/config"
	"github.com/glintlabs/glint/internal/history"
	"github.com/glintlabs/glint/internal/scancache"
)

// Controller defines the interface all modes must implement.
type Controller interface {
	// Init returns initial commands for the mode.
	Init() tea.Cmd

	// Update handles messages and returns updated model and commands.
	Update(msg tea.Msg) (Controller, tea.Cmd)

	// View renders the mode's UI.
	View() string

	// SetSize handles terminal resize events.
	SetSize(width, height int) Controller
}

// Services contains shared dependencies injected into mode controllers.
// History and Tracer may be nil when the feature is disabled by config.
type Services struct {
	Config     config.Config
	ConfigPath string
	Cache      *scancache.ScanCache
	History    *history.Store
	Tracer     trace.Tracer
}

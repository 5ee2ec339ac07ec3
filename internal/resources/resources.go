package resources

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MIMEType marks an HTML resource as an MCP App view
const MIMEType = "text/html;profile=mcp-app"

//go:embed ui/*.html
var embedded embed.FS

// App describes a UI resource served under the ui:// scheme
type App struct {
	Name        string
	Title       string
	Description string
}

// URI returns the ui:// address hosts use to fetch the app
func (a App) URI() string {
	return "ui://" + a.Name + "/mcp-app.html"
}

// File returns the HTML file name of the app
func (a App) File() string {
	return a.Name + ".html"
}

var (
	ColorPicker = App{
		Name:        "color-picker",
		Title:       "Color Picker",
		Description: "Interactive color picker showing HEX, RGB and HSL values",
	}
	WoodyEstimator = App{
		Name:        "woody-estimator",
		Title:       "Woody's Wild Guess",
		Description: "LIRR project browser with Woody's cost estimates",
	}
)

// Apps lists every UI resource the server registers
var Apps = []App{ColorPicker, WoodyEstimator}

// Loader reads app HTML, preferring an on-disk build directory when one is configured
type Loader struct {
	uiDir string
}

// NewLoader creates a loader. An empty uiDir serves only the embedded HTML.
func NewLoader(uiDir string) *Loader {
	return &Loader{uiDir: uiDir}
}

// Load returns the HTML of an app.
// Files in the UI directory are re-read on every call; a missing file falls back to the embedded copy.
func (l *Loader) Load(app App) (string, error) {
	if l.uiDir != "" {
		path := filepath.Join(l.uiDir, app.File())
		data, err := os.ReadFile(path)
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		slog.Debug("UI file not found on disk, using embedded copy", "app", app.Name, "path", path)
	}

	data, err := embedded.ReadFile("ui/" + app.File())
	if err != nil {
		return "", fmt.Errorf("failed to read embedded UI for %s: %w", app.Name, err)
	}
	return string(data), nil
}

// Resource returns the MCP resource definition of an app
func (l *Loader) Resource(app App) mcp.Resource {
	return mcp.NewResource(app.URI(), app.Title,
		mcp.WithResourceDescription(app.Description),
		mcp.WithMIMEType(MIMEType),
	)
}

// Handler returns the resources/read handler of an app
func (l *Loader) Handler(app App) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		html, err := l.Load(app)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      app.URI(),
				MIMEType: MIMEType,
				Text:     html,
			},
		}, nil
	}
}

package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/omni-select/internal/config"
	"github.com/hy4ri/omni-select/internal/logging"
	"github.com/hy4ri/omni-select/internal/tui/components"
	"github.com/hy4ri/omni-select/internal/tui/styles"
	"github.com/hy4ri/omni-select/pkg/dropdown"
)

// appTitle is used for the window title and notifications.
const appTitle = "Omni Select"

// App is the main Bubble Tea model for the demo application.
type App struct {
	// Dependencies
	config *config.Config

	// Screens
	screens []*components.Screen
	current int

	// UI state
	statusMsg string
	statusErr bool
	showHelp  bool
	width     int
	height    int

	// lastFrame is the frame rendered by the previous View, without
	// overlays. Dropdown measurers locate their triggers in it.
	lastFrame string
	// screenTop is the frame row of the screen viewport's first line.
	screenTop int

	// Components
	keymap   Keymap
	ddKeys   dropdown.KeyMap
	helpComp *components.HelpModel
	footer   help.Model
	viewport viewport.Model

	// Side effects, replaced in tests
	copyText func(string) error
	notify   func(title, message string) error
}

// NewApp creates a new App instance. initialScreen is one of ScreenNames;
// empty or unknown names start on the first screen.
func NewApp(cfg *config.Config, initialScreen string) *App {
	styles.ApplyTheme(cfg.Theme)
	s := newSettings(cfg)

	app := &App{
		config:   cfg,
		screens:  buildScreens(s),
		keymap:   DefaultKeymap(),
		ddKeys:   s.keys,
		footer:   help.New(),
		viewport: viewport.New(0, 0),
		copyText: clipboard.WriteAll,
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}

	frame := func() string { return app.lastFrame }
	for _, scr := range app.screens {
		for _, sec := range scr.Sections() {
			row := func() int { return app.screenTop + sec.Line() - app.viewport.YOffset }
			sec.Field.SetMeasurer(dropdown.Chain(
				dropdown.LocateRow(frame, sec.Field.TriggerView, row),
				dropdown.Locate(frame, sec.Field.TriggerView),
			))
		}
	}

	app.helpComp = components.NewHelp(
		[]components.HelpSection{
			{Title: "Navigation", Bindings: []key.Binding{app.keymap.NextField, app.keymap.PrevField, app.keymap.NextScreen, app.keymap.PrevScreen, app.keymap.Screen}},
			{Title: "General", Bindings: []key.Binding{app.keymap.Yank, app.keymap.Clear, app.keymap.Help, app.keymap.Quit}},
		},
		[]components.HelpSection{
			{Title: "Dropdown", Bindings: []key.Binding{s.keys.Open, s.keys.Select, s.keys.Toggle, s.keys.Close}},
			{Title: "List", Bindings: []key.Binding{s.keys.Up, s.keys.Down, s.keys.VimUp, s.keys.VimDown, s.keys.PageUp, s.keys.PageDown, s.keys.Home, s.keys.End}},
		},
	)

	for i, name := range ScreenNames {
		if name == initialScreen {
			app.current = i
		}
	}
	app.screen().Focus()

	logging.Debugf("app started on %s screen, placement %s", ScreenNames[app.current], s.placement)
	return app
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle(appTitle)
}

// screen returns the active screen.
func (a *App) screen() *components.Screen {
	return a.screens[a.current]
}

// switchScreen activates screen i, wrapping around at both ends.
func (a *App) switchScreen(i int) {
	n := len(a.screens)
	i = ((i % n) + n) % n
	if i == a.current {
		return
	}
	a.screen().Blur()
	a.current = i
	a.screen().Focus()
	a.viewport.SetYOffset(0)
	a.statusMsg = ""
	logging.Debugf("switched to %s screen", ScreenNames[i])
}

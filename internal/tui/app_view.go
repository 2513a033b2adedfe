package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/omni-select/internal/tui/styles"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	var content string
	if a.showHelp {
		content = a.helpComp.View()
	} else {
		content = a.renderScreen()
	}

	tabBar := a.renderTabBar()
	a.screenTop = styles.App.GetPaddingTop() + lipgloss.Height(tabBar)

	body := lipgloss.JoinVertical(lipgloss.Left,
		tabBar,
		content,
		a.renderStatusBar(),
	)
	a.lastFrame = clipLines(styles.App.Render(body), a.height)

	if a.showHelp {
		return a.lastFrame
	}
	return clipLines(a.screen().Overlay(a.lastFrame), a.height)
}

// innerWidth is the width inside the App padding.
func (a *App) innerWidth() int {
	w := a.width - styles.App.GetHorizontalPadding()
	if w < 1 {
		w = 1
	}
	return w
}

// renderScreen renders the active screen in a viewport that keeps the
// focused dropdown visible.
func (a *App) renderScreen() string {
	scr := a.screen()
	content := scr.View()

	// Tab bar (2 lines), status bar (1 line) and the App padding.
	height := a.height - 3 - styles.App.GetVerticalPadding()
	if height < 1 {
		height = 1
	}
	a.viewport.Width = a.innerWidth()
	a.viewport.Height = height
	a.viewport.SetContent(content)

	top := scr.FocusLine()
	bottom := top
	if cur := scr.Current(); cur != nil {
		bottom += lipgloss.Height(cur.Field.View())
	}
	switch {
	case top < a.viewport.YOffset:
		a.viewport.SetYOffset(top)
	case bottom > a.viewport.YOffset+height:
		a.viewport.SetYOffset(bottom - height)
	}

	return a.viewport.View()
}

// renderTabBar renders the top tab bar.
func (a *App) renderTabBar() string {
	useShortLabels := a.width < 50
	title := cases.Title(language.English)

	var tabStrs []string
	for i, scr := range a.screens {
		label := fmt.Sprintf("[%d]", i+1)
		if !useShortLabels {
			label += " " + title.String(ScreenNames[i])
		}
		if scr == a.screen() {
			tabStrs = append(tabStrs, styles.TabActive.Render(label))
		} else {
			tabStrs = append(tabStrs, styles.Tab.Render(label))
		}
	}

	tabLine := strings.Join(tabStrs, " ")

	maxWidth := a.innerWidth() - styles.TabBar.GetHorizontalPadding()
	if lipgloss.Width(tabLine) > maxWidth && maxWidth > 0 {
		tabLine = lipgloss.NewStyle().MaxWidth(maxWidth).Render(tabLine)
	}

	return styles.TabBar.Width(a.innerWidth()).Render(tabLine)
}

// renderStatusBar renders the status line: the last status message and the
// short help of whatever owns the keyboard.
func (a *App) renderStatusBar() string {
	var status string
	switch {
	case a.statusMsg != "" && a.statusErr:
		status = styles.StatusBarError.Render(a.statusMsg)
	case a.statusMsg != "":
		status = styles.StatusBarSuccess.Render(a.statusMsg)
	}

	var keys help.KeyMap = a.keymap
	if a.screen().AnyOpen() {
		keys = a.ddKeys
	}
	hints := a.footer.View(keys)

	line := hints
	if status != "" {
		line = status + "  " + hints
	}
	return styles.StatusBar.Width(a.innerWidth()).MaxHeight(1).Render(line)
}

// clipLines keeps at most n lines of s. n <= 0 keeps everything.
func clipLines(s string, n int) string {
	if n <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}

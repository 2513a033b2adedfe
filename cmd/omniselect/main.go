// Package main is the entry point for the omni-select demo.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/omni-select/internal/config"
	"github.com/hy4ri/omni-select/internal/logging"
	"github.com/hy4ri/omni-select/internal/tui"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

const longHelp = `omniselect runs the example screens of the omni-select dropdown.

SCREENS:
    basic       string array and {label, value} records
    multi       multi-select, with and without search
    custom      records with custom fields and rendering
    showcase    every feature on one screen

KEYBINDINGS:
    Tab/Shift+Tab   Next/previous dropdown
    [ / ]           Previous/next screen
    1-4             Jump to screen
    Enter/Space     Open the focused dropdown
    y               Copy the selection to the clipboard
    x               Clear the selection
    ?               Show help
    q               Quit

CONFIGURATION:
    Config file: ~/.config/omni-select/config.yaml
    Run 'omniselect --init' to create a template.`

const configTemplate = `# Omni Select Configuration
# Location: ~/.config/omni-select/config.yaml

ui:
  # j/k move the cursor in lists without a search box (default: true)
  vim_mode: true

  # Where open lists are drawn: "overlay" on top of the screen, or
  # "inline" pushing the layout down (default: overlay)
  placement: overlay

  # Rows shown before a list scrolls (default: 8)
  max_visible: 8

  # Trigger width in cells (default: 36)
  width: 36

  # Desktop notification on every selection (default: false)
  notify_on_select: false

theme:
  # Accent color for focused triggers and selected items
  # highlight: "#4DA3FF"
  # subtle: "#999999"

log:
  # Write a debug log (also enabled by OMNISELECT_DEBUG=1)
  debug: false
  # file: ~/.config/omni-select/debug.log
`

type options struct {
	screen     string
	inline     bool
	noVim      bool
	debug      bool
	initConfig bool
	configPath string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "omniselect",
		Short:         "Terminal demo of the omni-select dropdown",
		Long:          longHelp,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.initConfig {
				return createConfigTemplate(cmd.InOrStdin(), cmd.OutOrStdout(), opts.configPath)
			}
			if opts.screen != "" && !slices.Contains(tui.ScreenNames, opts.screen) {
				return fmt.Errorf("unknown screen %q: want one of %s", opts.screen, strings.Join(tui.ScreenNames, ", "))
			}

			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return runApp(cfg, opts.screen)
		},
	}

	cmd.Flags().StringVarP(&opts.screen, "screen", "s", "", "start on a screen ("+strings.Join(tui.ScreenNames, ", ")+")")
	cmd.Flags().BoolVar(&opts.inline, "inline", false, "draw open lists inline instead of as overlays")
	cmd.Flags().BoolVar(&opts.noVim, "no-vim", false, "disable j/k in lists")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "write a debug log")
	cmd.Flags().BoolVar(&opts.initConfig, "init", false, "create a template config file")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default ~/.config/omni-select/config.yaml)")

	return cmd
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.inline {
		cfg.UI.Placement = "inline"
	}
	if opts.noVim {
		cfg.UI.VimMode = false
	}
	if opts.debug || logging.Enabled() {
		cfg.Log.Debug = true
	}
	return cfg, nil
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate(in io.Reader, out io.Writer, path string) error {
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(out, "Config file already exists: %s\n", path)
		fmt.Fprint(out, "Overwrite? [y/N]: ")

		response, _ := bufio.NewReader(in).ReadString('\n')
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "Config file created: %s\n", path)
	return nil
}

// runApp starts the demo TUI.
func runApp(cfg *config.Config, screen string) error {
	if cfg.Log.Debug {
		path, err := cfg.LogPath()
		if err != nil {
			return fmt.Errorf("failed to resolve log path: %w", err)
		}
		if err := logging.Init(path); err != nil {
			return err
		}
		defer logging.Close()
	}

	app := tui.NewApp(cfg, screen)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

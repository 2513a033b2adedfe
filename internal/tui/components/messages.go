package components

// CloseHelpMsg is emitted when the help view asks to be dismissed.
type CloseHelpMsg struct{}

// StatusMsg carries a line for the status bar.
type StatusMsg struct {
	Text  string
	Error bool
}


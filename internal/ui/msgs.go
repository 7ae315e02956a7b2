package ui

import tea "github.com/charmbracelet/bubbletea"

// ErrorMsg is emitted by any child view when a backend call fails.
// The root model surfaces it in the status bar.
type ErrorMsg struct {
	Err error
}

// StatusMsg is a transient informational line for the status bar.
type StatusMsg string

// ConfirmRequestMsg asks the root model to show the confirmation modal.
// Action is delivered back to the requesting view only if the user
// confirms; on decline it is discarded.
type ConfirmRequestMsg struct {
	Prompt string
	Action tea.Msg
}

package ui

import (
	"github.com/pterm/pterm"
)

// ConfirmProjectAction shows one project's action summary and asks for
// approval. defaultYes controls the answer chosen when the caller just
// presses enter, disable runs pass false so hammering enter changes nothing.
func ConfirmProjectAction(summary string, defaultYes bool) (bool, error) {
	pterm.Println()
	confirmed, err := pterm.DefaultInteractiveConfirm.WithDefaultText(summary).WithDefaultValue(defaultYes).Show()
	if err != nil {
		return false, err
	}

	return confirmed, nil
}

package tui

import (
	"slices"

	"github.com/charmbracelet/huh"
)

// Picker lets the user narrow down a list of workspace names.
type Picker interface {
	Pick(title string, names []string) ([]string, error)
}

// FormPicker implements Picker with a huh multi-select form.
type FormPicker struct{}

// NewPicker creates a new FormPicker.
func NewPicker() Picker {
	return &FormPicker{}
}

// Pick shows every distinct name pre-selected and returns the chosen ones in
// their original order.
func (p *FormPicker) Pick(title string, names []string) ([]string, error) {
	var selected []string

	field := huh.NewMultiSelect[string]().
		Title(title).
		Description("space to toggle, enter to confirm").
		Options(pickerOptions(names)...).
		Value(&selected)

	form := huh.NewForm(huh.NewGroup(field)).WithTheme(currentThemeOrDefault())
	if err := form.Run(); err != nil {
		return nil, err
	}

	return keepSelected(names, selected), nil
}

func pickerOptions(names []string) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		options = append(options, huh.NewOption(name, name).Selected(true))
	}
	return options
}

// keepSelected filters names down to the selected ones, preserving order
// and duplicates.
func keepSelected(names, selected []string) []string {
	kept := make([]string, 0, len(selected))
	for _, name := range names {
		if slices.Contains(selected, name) {
			kept = append(kept, name)
		}
	}
	return kept
}

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Footer renders context-sensitive keybinding hints.
type Footer struct {
	Width    int
	Bindings []key.Binding
}

// View renders the footer as a single line of keybinding hints.
// In compact mode (narrow terminals), shows only key hints without descriptions.
func (f Footer) View() string {
	compact := f.Width < CompactWidth

	var parts []string
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		part := styleFooterKey.Render(help.Key)
		if !compact {
			part += styleFooterSep.Render(":") + styleFooterDesc.Render(help.Desc)
		}
		parts = append(parts, part)
	}
	sep := styleFooterSep.Render("  ")
	if compact {
		sep = styleFooterSep.Render(" ")
	}
	return styleFooter.Width(f.Width).Render(strings.Join(parts, sep))
}

// PageFooterBindings returns footer bindings for the destination list.
func PageFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Enter, km.NextTab, km.Quit}
}

// FormFooterBindings returns footer bindings for the booking and contact
// forms.
func FormFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Left, km.Right, km.Enter, km.NextTab, km.Quit}
}

// CalendarFooterBindings returns footer bindings while the date picker is open.
func CalendarFooterBindings(km KeyMap) []key.Binding {
	move := key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("arrows", "day"))
	return []key.Binding{move, km.PrevMonth, km.NextMonth, km.Enter, km.Clear, km.Back}
}

// ModalFooterBindings returns footer bindings for the destination detail view.
func ModalFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Book, km.Back}
}

// Package toast holds the short user-facing notifications raised by the
// site and admin flows.
package toast

import "fmt"

type Variant string

const (
	Default     Variant = "default"
	Destructive Variant = "destructive"
)

type Toast struct {
	Title       string
	Description string
	Variant     Variant
}

func Info(title, description string) Toast {
	return Toast{Title: title, Description: description, Variant: Default}
}

func Error(title, description string) Toast {
	return Toast{Title: title, Description: description, Variant: Destructive}
}

func (t Toast) IsError() bool {
	return t.Variant == Destructive
}

func (t Toast) String() string {
	if t.Description == "" {
		return t.Title
	}
	return fmt.Sprintf("%s: %s", t.Title, t.Description)
}

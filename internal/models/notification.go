// Package models provides the data structures used throughout the application.
package models

import (
	"strings"
)

// NotificationInput is the unit of work for the parsing engine: one system
// notification posted by a payment application, as delivered by the platform's
// notification listener. Any of the text fields may be empty.
type NotificationInput struct {
	SourceAppID  string
	Title        string
	Body         string
	ExpandedBody string
}

// FullText returns the normalized text the extractors operate on: the
// concatenation of the non-empty text fields in title, body, expanded-body
// order, single-spaced. The expanded body is omitted when it merely repeats
// the body, which is how most launchers populate it.
func (n NotificationInput) FullText() string {
	parts := make([]string, 0, 3)
	if s := strings.TrimSpace(n.Title); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(n.Body); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(n.ExpandedBody); s != "" && s != strings.TrimSpace(n.Body) {
		parts = append(parts, s)
	}

	// strings.Fields collapses any run of whitespace inside the fields
	// so the extractors always see single-spaced text.
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// Package web holds the board page templates.
package web

import (
	"embed"
	"html/template"

	"github.com/sabique2003/Tasklite/internal/core/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var priorityBadges = map[domain.TaskPriority]string{
	domain.TaskPriorityLow:    "success",
	domain.TaskPriorityMedium: "warning",
	domain.TaskPriorityHigh:   "danger",
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"priorityBadge": func(p domain.TaskPriority) string {
			if badge, ok := priorityBadges[p]; ok {
				return badge
			}
			return "secondary"
		},
	}).ParseFS(templateFS, "templates/*.tmpl")
}

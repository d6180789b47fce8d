// Package render projects the portfolio collections into HTML: the summary
// card grids, the empty-state placeholders and the shared overlay in its
// four modes. All interpolation goes through html/template, so stored
// entity text is escaped and can never be interpreted as markup.
package render

import (
	"embed"
	"html/template"

	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/domain"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// cardDescriptionLimit is the hard character cutoff on card descriptions.
const cardDescriptionLimit = 100

// Truncate cuts s to at most limit characters and appends an ellipsis
// marker. Not word-boundary aware. Strings at or under the limit come back
// untouched.
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

// OverlayMode selects what the shared overlay region shows. Exactly one
// mode is rendered at a time.
type OverlayMode string

const (
	ProjectDetail    OverlayMode = "project-detail"
	ProjectAdd       OverlayMode = "project-add"
	ProjectEdit      OverlayMode = "project-edit"
	ProjectDelete    OverlayMode = "project-delete"
	ExperienceDetail OverlayMode = "experience-detail"
	ExperienceAdd    OverlayMode = "experience-add"
	ExperienceEdit   OverlayMode = "experience-edit"
	ExperienceDelete OverlayMode = "experience-delete"
)

// Overlay carries the data for the active overlay mode. Form holds the
// submitted values when an invalid submission is re-rendered with the
// user's input intact.
type Overlay struct {
	Mode       OverlayMode
	Project    *domain.Project
	Experience *domain.Experience
	Form       map[string]string
}

// Page is everything the portfolio page template needs for one render.
type Page struct {
	Projects    []domain.Project
	Experiences []domain.Experience
	Overlay     *Overlay
	Notice      string
	Version     string
}

// Templates parses the embedded template set. Handed to gin as the HTML
// renderer.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"truncate": func(s string) string { return Truncate(s, cardDescriptionLimit) },
	}
	return template.Must(template.New("portfolio").Funcs(funcs).ParseFS(templateFS, "templates/*.html.tmpl"))
}

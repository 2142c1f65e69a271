package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"math/rand/v2"
	"strings"

	"github.com/jonathan/cvgen/internal/types"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl"))

// Layout is a page arrangement with its palette and fonts.
// Colours and fonts are trusted constants, hence template.CSS.
type Layout struct {
	Name        string
	Primary     template.CSS
	Secondary   template.CSS
	Accent      template.CSS
	HeadingFont template.CSS
	BodyFont    template.CSS
}

// Layouts lists the available layouts; the first is the default.
var Layouts = []Layout{
	{
		Name:        "sidebar-left",
		Primary:     "#2563eb",
		Secondary:   "#eff6ff",
		Accent:      "#60a5fa",
		HeadingFont: "'Segoe UI', Tahoma, Geneva, Verdana, sans-serif",
		BodyFont:    "'Segoe UI', Tahoma, Geneva, Verdana, sans-serif",
	},
	{
		Name:        "sidebar-right",
		Primary:     "#7c3aed",
		Secondary:   "#f5f3ff",
		Accent:      "#a78bfa",
		HeadingFont: "Georgia, 'Times New Roman', serif",
		BodyFont:    "'Helvetica Neue', Arial, sans-serif",
	},
	{
		Name:        "header-top",
		Primary:     "#1f2937",
		Secondary:   "#f9fafb",
		Accent:      "#059669",
		HeadingFont: "'Helvetica Neue', Arial, sans-serif",
		BodyFont:    "'Helvetica Neue', Arial, sans-serif",
	},
}

// LayoutRandom asks for one layout per record, drawn at random.
const LayoutRandom = "random"

// layoutAliases maps legacy design names onto the layouts that render them.
var layoutAliases = map[string]string{
	"two-column":  "sidebar-left",
	"grid-layout": "sidebar-left",
	"technical":   "sidebar-left",
	"asymmetric":  "sidebar-right",
	"magazine":    "sidebar-right",
	"traditional": "header-top",
	"timeline":    "header-top",
}

// LayoutByName resolves a layout name or alias.
func LayoutByName(name string) (Layout, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if alias, ok := layoutAliases[name]; ok {
		name = alias
	}
	for _, l := range Layouts {
		if l.Name == name {
			return l, nil
		}
	}
	return Layout{}, &TemplateError{Message: fmt.Sprintf("unknown layout %q", name)}
}

// RandomLayout draws a layout from rng.
func RandomLayout(rng *rand.Rand) Layout {
	return Layouts[rng.IntN(len(Layouts))]
}

// templateData represents the data passed to the layout templates
type templateData struct {
	Record   *types.CVRecord
	Layout   Layout
	Initials string
}

// RenderHTML renders record as a standalone HTML page using layout.
func RenderHTML(record *types.CVRecord, layout Layout) (string, error) {
	if record == nil {
		return "", &RenderError{Message: "record is nil"}
	}
	if templates.Lookup(layout.Name) == nil {
		return "", &TemplateError{Message: fmt.Sprintf("no template for layout %q", layout.Name)}
	}

	data := templateData{
		Record:   record,
		Layout:   layout,
		Initials: Initials(record.Name),
	}

	var result strings.Builder
	if err := templates.ExecuteTemplate(&result, layout.Name, data); err != nil {
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to execute layout %s", layout.Name),
			Cause:   err,
		}
	}
	return result.String(), nil
}

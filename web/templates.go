package web

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/sirius-scholar/scholar/app"
	"github.com/sirius-scholar/scholar/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

type cardData struct {
	Lang i18n.Language
	Card app.ArticleCard
}

// LoadTemplates parses the embedded page templates. In templates, t looks
// up a translation: {{t .Lang "key"}}.
func LoadTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"t": i18n.Lookup,
		"card": func(lang i18n.Language, c app.ArticleCard) cardData {
			return cardData{Lang: lang, Card: c}
		},
		"statuses": func() []app.StatusOption {
			return app.AcademicStatuses
		},
	}).ParseFS(templateFS, "templates/*.html")
}

type layoutData struct {
	app.Page
	Content template.HTML
}

func contentTemplate(v app.View) string {
	switch v {
	case app.ViewHome:
		return "home"
	case app.ViewLogin:
		return "login"
	case app.ViewRegister:
		return "register"
	case app.ViewSearch:
		return "search"
	case app.ViewProfile:
		return "profile"
	}
	return "home"
}

// renderContent renders the template of the page's view, to be placed in
// the layout.
func renderContent(tmpl *template.Template, page app.Page) (layoutData, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, contentTemplate(page.View), page); err != nil {
		return layoutData{}, err
	}

	return layoutData{
		Page:    page,
		Content: template.HTML(buf.String()),
	}, nil
}

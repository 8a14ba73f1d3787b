package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"resume-builder/resume/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	documentTemplate = "resume.html.tmpl"
	defaultTitle     = "Resume"
	dateSeparator    = " — "
)

var documentTmpl = template.Must(template.ParseFS(templateFS, "templates/"+documentTemplate))

// HTMLRenderer renders the self-contained résumé document.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer returns a renderer backed by the embedded document template.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{tmpl: documentTmpl}
}

func (r *HTMLRenderer) Name() string {
	return "html"
}

func (r *HTMLRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the document for data. The context is only checked for
// cancellation before rendering starts.
func (r *HTMLRenderer) Render(ctx context.Context, data model.ResumeData) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, documentTemplate, newDocumentView(data)); err != nil {
		return nil, fmt.Errorf("html renderer: execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// HTML renders data into a complete HTML5 document. It is a pure function of
// its input: equal records produce byte-identical output. It panics only if
// the embedded template is broken.
func HTML(data model.ResumeData) string {
	out, err := NewHTMLRenderer().Render(context.Background(), data)
	if err != nil {
		panic(err)
	}
	return string(out)
}

type documentView struct {
	DocumentTitle string
	Styles        template.CSS
	Name          string
	Title         string
	Contact       []string
	Summary       string
	Skills        []string
	Experiences   []experienceView
	Education     []educationView
}

type experienceView struct {
	Role    string
	Company string
	Dates   string
	Bullets []string
}

type educationView struct {
	School  string
	Degree  string
	Period  string
	Details string
}

func newDocumentView(data model.ResumeData) documentView {
	view := documentView{
		DocumentTitle: data.Name,
		Styles:        Stylesheet,
		Name:          data.Name,
		Title:         data.Title,
		Skills:        data.Skills,
	}
	if view.DocumentTitle == "" {
		view.DocumentTitle = defaultTitle
	}
	for _, line := range []string{data.Email, data.Phone, data.Location, data.Website} {
		if line != "" {
			view.Contact = append(view.Contact, line)
		}
	}
	if strings.TrimSpace(data.Summary) != "" {
		view.Summary = data.Summary
	}
	for _, exp := range data.Experiences {
		view.Experiences = append(view.Experiences, experienceView{
			Role:    exp.Role,
			Company: exp.Company,
			Dates:   dateRange(exp.Start, exp.End),
			Bullets: SplitBullets(exp.Details),
		})
	}
	for _, edu := range data.Education {
		view.Education = append(view.Education, educationView{
			School:  edu.School,
			Degree:  edu.Degree,
			Period:  edu.Period,
			Details: edu.Details,
		})
	}
	return view
}

func dateRange(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	return start + dateSeparator + end
}

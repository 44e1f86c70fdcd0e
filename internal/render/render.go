// Package render turns a classification result into one of two fixed HTML
// pages.
package render

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"debugfixture/internal/classify"
)

// ContentType is sent with every rendered page.
const ContentType = "text/html"

// Page is a rendered response.
type Page struct {
	Status      int
	ContentType string
	Body        []byte
}

var debugTemplate = template.Must(template.New("debug").Parse(debugPage))

// Renderer produces the normal and debug pages. It is safe for concurrent use.
type Renderer struct {
	normal []byte
}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{normal: []byte(normalPage)}
}

// Render picks the page for res. Only the matched params and headers are
// interpolated into the debug page; everything else is constant.
func (r *Renderer) Render(res classify.Result) Page {
	if !res.IsDebug() {
		return Page{
			Status:      http.StatusOK,
			ContentType: ContentType,
			Body:        r.normal,
		}
	}

	var buf bytes.Buffer
	err := debugTemplate.Execute(&buf, struct {
		Params      string
		Headers     string
		Environment []string
	}{
		Params:      joinOrNone(res.Params),
		Headers:     joinOrNone(res.Headers),
		Environment: debugEnvironment,
	})
	if err != nil {
		return Page{
			Status:      http.StatusInternalServerError,
			ContentType: "text/plain; charset=utf-8",
			Body:        []byte(http.StatusText(http.StatusInternalServerError) + "\n"),
		}
	}

	return Page{
		Status:      http.StatusOK,
		ContentType: ContentType,
		Body:        buf.Bytes(),
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

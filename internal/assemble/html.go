package assemble

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// pageTemplate wraps the rendered files in a standalone HTML page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; max-width: 1100px; margin: 2rem auto; padding: 0 1rem; }
    h2 { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; font-size: 1rem; border-bottom: 1px solid #d0d7de; padding-bottom: .3rem; margin-top: 2.5rem; }
    pre { padding: 1rem; overflow-x: auto; border-radius: 6px; font-size: .85rem; }
  </style>
</head>
<body>
{{.Content}}
</body>
</html>
`

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// newMarkdown configures goldmark with GFM and syntax highlighting. Raw HTML
// inside file content is escaped, never passed through.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
}

// renderHTML converts the markdown rendition of the selection to a page.
func renderHTML(w io.Writer, title string, markdown []byte) error {
	var body bytes.Buffer
	if err := newMarkdown().Convert(markdown, &body); err != nil {
		return fmt.Errorf("assemble: render markdown: %w", err)
	}

	data := struct {
		Title   string
		Content template.HTML
	}{
		Title:   title,
		Content: template.HTML(body.String()),
	}
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("assemble: render page: %w", err)
	}
	return nil
}

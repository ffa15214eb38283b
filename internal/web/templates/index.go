// Package templates renders the HTML pages of the lookup server.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/JonMunkholm/cclookup/internal/core"
)

// IndexData is the view model of the index page.
type IndexData struct {
	Title    string
	RunID    string
	Records  []core.OutputRecord
	Filtered bool
}

// Index renders the flag lookup table as a single HTML page.
func Index(data IndexData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\"><title>"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(data.Title)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</title>"+style+"</head><body><h1>"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(data.Title)); err != nil {
			return err
		}
		scope := "flags"
		if data.Filtered {
			scope = "matching flags"
		}
		if _, err := fmt.Fprintf(w, "</h1><p class=\"meta\">%d %s &middot; run %s</p>",
			len(data.Records), scope, templ.EscapeString(data.RunID)); err != nil {
			return err
		}
		if err := table(data.Records).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

// table renders the records as an HTML table. Null cells are left empty.
func table(records []core.OutputRecord) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<table><thead><tr>"+
			"<th>Flag</th><th>Name</th><th>Region</th><th>Sub-region</th>"+
			"<th>Alpha-2</th><th>Alpha-3</th><th>TLD</th>"+
			"</tr></thead><tbody>"); err != nil {
			return err
		}
		for _, rec := range records {
			if _, err := io.WriteString(w, "<tr>"); err != nil {
				return err
			}
			for _, v := range rec.Values() {
				if _, err := io.WriteString(w, "<td>"+templ.EscapeString(v)+"</td>"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</tr>"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody></table>")
		return err
	})
}

// ErrorPage renders a minimal error page.
func ErrorPage(msg core.UserMessage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			"<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\"><title>%s</title></head>"+
				"<body><h1>%s</h1><p>%s</p><p><code>%s</code></p></body></html>",
			templ.EscapeString(msg.Code),
			templ.EscapeString(msg.Message),
			templ.EscapeString(msg.Action),
			templ.EscapeString(msg.Code),
		)
		return err
	})
}

const style = `<style>
body { font-family: system-ui, sans-serif; margin: 2rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ddd; padding: 0.25rem 0.5rem; text-align: left; }
.meta { color: #666; }
</style>`

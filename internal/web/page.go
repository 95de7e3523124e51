package web

import (
	"embed"
	"html/template"
	"io"
	"strconv"

	"github.com/rshade/listctl/internal/listing"
	"github.com/rshade/listctl/internal/pagination"
)

//go:embed templates/page.html
var templateFS embed.FS

//nolint:gochecknoglobals // Parsed once at init.
var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

type headerCell struct {
	Title     string
	Indicator string
	Href      string
}

type controlLink struct {
	Label    string
	Href     string
	Active   bool
	Disabled bool
}

type sizeOption struct {
	Value    string
	Selected bool
}

type pageData struct {
	Title       string
	Searchable  bool
	Term        string
	Sort        string
	Dir         string
	Size        string
	Columns     []headerCell
	Rows        [][]string
	Placeholder string
	ColSpan     int
	Summary     string
	Controls    []controlLink
	SizeOptions []sizeOption
}

func newPageData(v listing.View, q Query) pageData {
	d := pageData{
		Title:       v.HostID,
		Searchable:  v.Searchable,
		Term:        v.Term,
		Size:        v.PageSize.String(),
		Placeholder: v.Placeholder,
		ColSpan:     max(1, len(v.Columns)),
		Summary:     v.Summary,
	}
	if q.Column != listing.NoColumn {
		d.Sort = strconv.Itoa(q.Column)
		d.Dir = DirAsc
		if q.Desc {
			d.Dir = DirDesc
		}
	}

	for _, col := range v.Columns {
		cell := headerCell{Title: col.Title, Indicator: col.Indicator}
		if col.Sortable {
			cell.Href = q.WithSort(col.Index).Href()
		}
		d.Columns = append(d.Columns, cell)
	}

	for _, e := range v.Rows {
		row := make([]string, len(v.Columns))
		for i := range row {
			row[i] = e.Field(i)
		}
		d.Rows = append(d.Rows, row)
	}

	for _, ctl := range v.Controls {
		link := controlLink{Label: ctl.Label, Active: ctl.Active, Disabled: !ctl.Clickable()}
		if ctl.Clickable() {
			link.Href = q.WithPage(ctl.Page).Href()
		}
		d.Controls = append(d.Controls, link)
	}

	for _, opt := range v.PageSizeOptions {
		d.SizeOptions = append(d.SizeOptions, sizeOption{
			Value:    opt.String(),
			Selected: opt == v.PageSize,
		})
	}
	if pagination.IndexOf(v.PageSizeOptions, v.PageSize) < 0 {
		d.SizeOptions = append(d.SizeOptions, sizeOption{Value: v.PageSize.String(), Selected: true})
	}
	return d
}

func renderPage(w io.Writer, d pageData) error {
	return pageTemplate.Execute(w, d)
}

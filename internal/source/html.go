package source

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/rshade/listctl/internal/listing"
)

// NoSortClass on a header cell marks its column unsortable.
const NoSortClass = "no-sort"

// LoadHTML parses an HTML document and captures the table whose id is hostID.
// An empty hostID selects the first table in the document.
//
// Header titles come from the first row of thead, or from a leading row made
// only of th cells. Rows come from the table's own tbody sections; nested
// tables are not descended into.
func LoadHTML(r io.Reader, hostID string) (*listing.Host, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	table := findTable(doc, hostID)
	if table == nil {
		if hostID == "" {
			return nil, fmt.Errorf("%w: no table in document", ErrHostNotFound)
		}
		return nil, fmt.Errorf("%w: #%s", ErrHostNotFound, hostID)
	}
	if table.DataAtom != atom.Table {
		return nil, fmt.Errorf("%w: #%s is a <%s>, not a <table>", ErrHostNotFound, hostID, table.Data)
	}

	id := hostID
	if id == "" {
		id = attr(table, "id")
	}

	var header *html.Node
	var bodyRows []*html.Node
	for section := table.FirstChild; section != nil; section = section.NextSibling {
		switch section.DataAtom {
		case atom.Thead:
			if header == nil {
				header = firstChild(section, atom.Tr)
			}
		case atom.Tbody:
			bodyRows = append(bodyRows, children(section, atom.Tr)...)
		case atom.Tr:
			bodyRows = append(bodyRows, section)
		}
	}
	if header == nil && len(bodyRows) > 0 && isHeaderRow(bodyRows[0]) {
		header = bodyRows[0]
		bodyRows = bodyRows[1:]
	}

	var columns []listing.Column
	if header != nil {
		for _, cell := range cells(header) {
			columns = append(columns, listing.Column{
				Title:    textContent(cell),
				Sortable: !hasClass(cell, NoSortClass),
			})
		}
	}

	rows := make([][]string, 0, len(bodyRows))
	for _, tr := range bodyRows {
		tds := cells(tr)
		row := make([]string, len(tds))
		for i, td := range tds {
			row[i] = textContent(td)
		}
		rows = append(rows, row)
	}

	return listing.NewHost(id, columns, rows), nil
}

func findTable(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		if id == "" && n.DataAtom == atom.Table {
			return n
		}
		if id != "" && attr(n, "id") == id {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findTable(c, id); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	return slices.Contains(strings.Fields(attr(n, "class")), class)
}

func firstChild(n *html.Node, a atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.DataAtom == a {
			return c
		}
	}
	return nil
}

func children(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.DataAtom == a {
			out = append(out, c)
		}
	}
	return out
}

func cells(tr *html.Node) []*html.Node {
	var out []*html.Node
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.DataAtom == atom.Td || c.DataAtom == atom.Th {
			out = append(out, c)
		}
	}
	return out
}

func isHeaderRow(tr *html.Node) bool {
	cs := cells(tr)
	if len(cs) == 0 {
		return false
	}
	for _, c := range cs {
		if c.DataAtom != atom.Th {
			return false
		}
	}
	return true
}

// textContent concatenates descendant text and collapses whitespace runs.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			b.WriteByte(' ')
		case html.ElementNode:
			if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

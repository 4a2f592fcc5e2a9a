package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TableClass is the class attribute of tables written by WriteHTML.
const TableClass = "integrate-summary"

// WriteHTML renders a summary as an HTML table, one row per field. The row of
// the message carries class "ok" or "failure", the table carries the kind of
// failure as attribute data-kind.
func WriteHTML(w io.Writer, s Summary) error {
	table := element(atom.Table,
		html.Attribute{Key: "class", Val: TableClass},
		html.Attribute{Key: "data-kind", Val: kindName(s.Kind)})
	tbody := element(atom.Tbody)
	table.AppendChild(tbody)
	for _, f := range s.fields() {
		tr := element(atom.Tr)
		if f.name == fieldMessage {
			class := "failure"
			if s.OK() {
				class = "ok"
			}
			tr.Attr = append(tr.Attr, html.Attribute{Key: "class", Val: class})
		}
		th := element(atom.Th)
		th.AppendChild(text(f.name))
		td := element(atom.Td)
		td.AppendChild(text(f.text))
		tr.AppendChild(th)
		tr.AppendChild(td)
		tbody.AppendChild(tr)
	}
	return html.Render(w, table)
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// ReadHTML reads back the first summary table from an HTML fragment, as
// written by WriteHTML.
func ReadHTML(input io.Reader) (Summary, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return Summary{}, err
	}
	var table *html.Node
	for _, n := range nodes {
		if table = findTable(n); table != nil {
			break
		}
	}
	if table == nil {
		return Summary{}, fmt.Errorf("report: no table of class %q found", TableClass)
	}
	var s Summary
	if s.Kind, err = kindFromName(attr(table, "data-kind")); err != nil {
		return Summary{}, err
	}
	rows := map[string]string{}
	collectRows(table, rows)
	tracer().Debugf("report: read %d rows from HTML", len(rows))
	if s.Value, err = strconv.ParseFloat(rows[fieldValue], 64); err != nil {
		return Summary{}, err
	}
	if s.AbsError, err = strconv.ParseFloat(rows[fieldAbsError], 64); err != nil {
		return Summary{}, err
	}
	if s.Subdivisions, err = strconv.Atoi(rows[fieldSubdivisions]); err != nil {
		return Summary{}, err
	}
	if s.Neval, err = strconv.Atoi(rows[fieldNeval]); err != nil {
		return Summary{}, err
	}
	s.Message = rows[fieldMessage]
	return s, nil
}

func findTable(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Table && hasClass(n, TableClass) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTable(c); t != nil {
			return t
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
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// collectRows maps the text of every th to the text of its sibling td.
func collectRows(n *html.Node, rows map[string]string) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
		var key, val string
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.DataAtom {
			case atom.Th:
				key = innerText(c)
			case atom.Td:
				val = innerText(c)
			}
		}
		if key != "" {
			rows[key] = val
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectRows(c, rows)
	}
}

// innerText concatenates the text of n and all its descendents.
func innerText(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return strings.TrimSpace(b.String())
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

package htmlparse

import (
	"strings"

	"golang.org/x/net/html"
)

// DOM helpers over x/net/html nodes. Forwarded vendor emails strip CSS
// classes and inline all styles, so everything here locates data by
// structure and text, with class lookups as an optimization only.

func parseDoc(src string) (*html.Node, error) {
	return html.Parse(strings.NewReader(src))
}

// walk visits n and its subtree depth-first; fn returning false prunes the
// subtree below the current node.
func walk(n *html.Node, fn func(*html.Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

// findAll collects element nodes matching pred, in document order.
func findAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if strings.EqualFold(c, class) {
			return true
		}
	}
	return false
}

func isElem(n *html.Node, names ...string) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	for _, name := range names {
		if strings.EqualFold(n.Data, name) {
			return true
		}
	}
	return false
}

// textContent concatenates all text under n with whitespace collapsed.
// &nbsp; comes through the tokenizer as   and is treated as a space.
func textContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			b.WriteString(" ")
		}
		return true
	})
	return collapseSpace(b.String())
}

func collapseSpace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}

// findByClass returns the first element with the given tag (any tag when
// empty) carrying the class. Class dialect only; callers must fall back to
// structural lookups when this returns nil.
func findByClass(root *html.Node, tag, class string) *html.Node {
	nodes := findAll(root, func(n *html.Node) bool {
		if tag != "" && !strings.EqualFold(n.Data, tag) {
			return false
		}
		return hasClass(n, class)
	})
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func findTables(root *html.Node) []*html.Node {
	return findAll(root, func(n *html.Node) bool { return isElem(n, "table") })
}

// tableRows returns the tr elements of a table, whether or not the markup
// uses thead/tbody (mail clients drop them freely).
func tableRows(table *html.Node) []*html.Node {
	return findAll(table, func(n *html.Node) bool { return isElem(n, "tr") })
}

func rowCells(tr *html.Node) []*html.Node {
	var cells []*html.Node
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if isElem(c, "td", "th") {
			cells = append(cells, c)
		}
	}
	return cells
}

func cellTexts(tr *html.Node) []string {
	cells := rowCells(tr)
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = textContent(c)
	}
	return out
}

// isSpacerRow reports whether every cell of the row is empty after
// whitespace/nbsp collapsing. The vendor template uses such rows as visual
// spacers between item groups.
func isSpacerRow(texts []string) bool {
	if len(texts) == 0 {
		return true
	}
	for _, t := range texts {
		if t != "" {
			return false
		}
	}
	return true
}

// precedingHeadingText walks backwards from a node and returns the text of
// the nearest preceding heading-like element (h1-h4, or a bold standalone
// block). Used to infer the brand section an items table belongs to.
func precedingHeadingText(n *html.Node) string {
	for cur := n; cur != nil; cur = cur.Parent {
		for sib := cur.PrevSibling; sib != nil; sib = sib.PrevSibling {
			if sib.Type != html.ElementNode {
				continue
			}
			if isElem(sib, "h1", "h2", "h3", "h4", "b", "strong") {
				if t := textContent(sib); t != "" {
					return t
				}
			}
			// Forwarded dialect often demotes headings to styled divs or
			// single-cell tables.
			if isElem(sib, "div", "p", "table") {
				if t := textContent(sib); t != "" && len(t) <= 40 && !strings.Contains(t, ":") {
					return t
				}
			}
		}
	}
	return ""
}

// labeledValue scans a table for a two-column row whose first cell matches
// the label (case-insensitive, ignoring trailing ':' and '#') and returns
// the second cell's text.
func labeledValue(table *html.Node, labels ...string) string {
	for _, tr := range tableRows(table) {
		texts := cellTexts(tr)
		if len(texts) < 2 {
			continue
		}
		key := normalizeLabel(texts[0])
		for _, l := range labels {
			if key == normalizeLabel(l) {
				return texts[1]
			}
		}
	}
	return ""
}

func normalizeLabel(s string) string {
	s = strings.ToLower(collapseSpace(s))
	s = strings.TrimRight(s, ":#")
	return strings.TrimSpace(s)
}

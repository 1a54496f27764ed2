// Package mdtext extracts plain text from Markdown sources so readability
// metrics measure prose, not markup.
package mdtext

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Strip parses source as Markdown and returns its plain text. Code blocks
// and raw HTML are dropped entirely: they are not prose and would skew
// word and sentence counts.
func Strip(source []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))
	return ExtractPlainText(doc, source)
}

// ExtractPlainText returns the visible text under a parsed Markdown node.
// Inline markup (emphasis, links, code spans, image alt text) keeps its
// text; soft line breaks become spaces; sibling blocks are separated by
// newlines.
func ExtractPlainText(node ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if isSeparableBlock(n) && n.NextSibling() != nil {
				sb.WriteByte('\n')
			}
			return ast.WalkContinue, nil
		}

		switch t := n.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.AutoLink:
			sb.Write(t.URL(source))
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

func isSeparableBlock(n ast.Node) bool {
	if _, ok := n.(*ast.Document); ok {
		return false
	}
	return n.Type() == ast.TypeBlock
}

// Package richtext renders the Markdown used in record paragraphs and list
// items.
package richtext

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// md leaves raw HTML escaped; content is trusted but markup should come from
// Markdown only.
var md = goldmark.New()

// Render converts src to block HTML. Every paragraph keeps its <p>, so the
// result may only be placed where flow content is allowed.
func Render(src string) (string, error) {
	out, _, err := render(src)
	return out, err
}

// RenderInline converts src for use inside an element that already forms a
// block, such as <li>. A single paragraph loses its <p>; anything longer is
// returned as blocks.
func RenderInline(src string) (string, error) {
	out, doc, err := render(src)
	if err != nil {
		return "", err
	}
	if isSingleParagraph(doc) {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out, nil
}

func render(src string) (string, ast.Node, error) {
	source := []byte(src)
	doc := md.Parser().Parse(text.NewReader(source))

	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, source, doc); err != nil {
		return "", nil, fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimSpace(buf.String()), doc, nil
}

func isSingleParagraph(doc ast.Node) bool {
	return doc.ChildCount() == 1 && doc.FirstChild().Kind() == ast.KindParagraph
}

// Block renders src as a templ component of block elements.
func Block(src string) templ.Component {
	return component(src, Render)
}

// Inline renders src as a templ component for a block parent.
func Inline(src string) templ.Component {
	return component(src, RenderInline)
}

func component(src string, render func(string) (string, error)) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		html, err := render(src)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, html)
		return err
	})
}

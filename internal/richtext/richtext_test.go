package richtext

import (
	"bytes"
	"context"
	"testing"
)

func TestRenderInline(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"plain", "Led a team of 5 developers", "Led a team of 5 developers"},
		{"emphasis", "Built with **Go** and *templ*", "Built with <strong>Go</strong> and <em>templ</em>"},
		{"link", "See [the repo](https://github.com)", `See <a href="https://github.com">the repo</a>`},
		{"escapes html", "a <script>alert(1)</script> b", "a <!-- raw HTML omitted -->alert(1)<!-- raw HTML omitted --> b"},
		{"ampersand", "R&D team", "R&amp;D team"},
		{"two paragraphs", "one\n\ntwo", "<p>one</p>\n<p>two</p>"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RenderInline(tc.src)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got != tc.want {
				t.Fatalf("RenderInline(%q) = %q, want %q", tc.src, got, tc.want)
			}
		})
	}
}

func TestRenderKeepsBlocks(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"single paragraph", "Built with **Go**", "<p>Built with <strong>Go</strong></p>"},
		{"two paragraphs", "one\n\ntwo", "<p>one</p>\n<p>two</p>"},
		{"list", "intro\n\n- a\n- b", "<p>intro</p>\n<ul>\n<li>a</li>\n<li>b</li>\n</ul>"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Render(tc.src)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Render(%q) = %q, want %q", tc.src, got, tc.want)
			}
		})
	}
}

func TestComponents(t *testing.T) {
	tests := []struct {
		name   string
		render func(*bytes.Buffer) error
		want   string
	}{
		{"inline", func(b *bytes.Buffer) error { return Inline("use `chi`").Render(context.Background(), b) }, "use <code>chi</code>"},
		{"block", func(b *bytes.Buffer) error { return Block("use `chi`").Render(context.Background(), b) }, "<p>use <code>chi</code></p>"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tc.render(&buf); err != nil {
				t.Fatalf("render component: %v", err)
			}
			if got := buf.String(); got != tc.want {
				t.Fatalf("component = %q, want %q", got, tc.want)
			}
		})
	}
}

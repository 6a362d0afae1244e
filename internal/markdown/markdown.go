// Package markdown renders user-written content to sanitized HTML for the
// optional html view of a thread.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
	)
	return &Renderer{md: md, policy: bluemonday.UGCPolicy()}
}

// RenderSafe converts markdown to HTML and strips anything the UGC policy
// does not allow. Raw HTML in the source never survives.
func (r *Renderer) RenderSafe(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

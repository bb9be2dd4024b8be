// Package render turns documentation content into terminal output:
// markdown rendering for long-form docs, and the fixed header, listing
// and taxonomy-tree layouts.
package render

import "github.com/arthur-debert/jlman/pkg/style"

// Renderer defines the interface for rendering long-form doc content
type Renderer interface {
	// Render takes raw markdown and returns formatted content for
	// terminal display
	Render(content string) string
}

// PlainRenderer returns content as-is, for piped output and tests
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string) string {
	return content
}

// New picks a renderer for the given style name. "plain" always yields
// the plain renderer, as does any style when stdout is not a terminal;
// otherwise content is rendered with glamour using a concrete style.
func New(styleName string, width int) Renderer {
	if styleName == "plain" || !style.IsTerminal() {
		return &PlainRenderer{}
	}
	return &GlamourRenderer{Style: resolveStyle(styleName), Width: width}
}

// resolveStyle maps the configured style name to a concrete glamour
// style, consulting the terminal background for "auto"
func resolveStyle(name string) string {
	if name != "auto" {
		return name
	}
	if style.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

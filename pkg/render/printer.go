package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/jlman/pkg/kind"
	"github.com/arthur-debert/jlman/pkg/listing"
	"github.com/arthur-debert/jlman/pkg/style"
)

// Rule characters for the two header levels
const (
	titleRule = "═"
	groupRule = "─"
)

// Header writes a title followed by a rule of repeated delimiter
// characters sized to the title's display width
func Header(w io.Writer, title string) error {
	rule := strings.Repeat(titleRule, lipgloss.Width(title))
	_, err := fmt.Fprintf(w, "%s\n%s\n", style.TitleStyle.Render(title), style.MutedStyle.Render(rule))
	return err
}

// PrintListing writes one listing: its name as a header, then every
// group and its member names in authoring order. Nothing is sorted,
// wrapped or filtered here.
func PrintListing(w io.Writer, l listing.Listing) error {
	if err := Header(w, l.Name); err != nil {
		return err
	}

	for _, g := range l.Groups {
		if err := printGroup(w, g); err != nil {
			return err
		}
	}
	return nil
}

func printGroup(w io.Writer, g listing.Group) error {
	rule := strings.Repeat(groupRule, lipgloss.Width(g.Name))
	if _, err := fmt.Fprintf(w, "\n%s\n%s\n", style.GroupStyle.Render(g.Name), style.MutedStyle.Render(rule)); err != nil {
		return err
	}

	if len(g.Names) > 0 {
		if _, err := fmt.Fprintf(w, "%s\n", style.Indent(strings.Join(g.Names, "  "), 1)); err != nil {
			return err
		}
	}

	for _, sub := range g.Groups {
		label := style.SubGroupStyle.Render(sub.Name + ":")
		if _, err := fmt.Fprintf(w, "%s\n", style.Indent(label, 1)); err != nil {
			return err
		}
		if len(sub.Names) > 0 {
			if _, err := fmt.Fprintf(w, "%s\n", style.Indent(strings.Join(sub.Names, "  "), 2)); err != nil {
				return err
			}
		}
	}
	return nil
}

// PrintListings writes several listings separated by a blank line
func PrintListings(w io.Writer, listings []listing.Listing) error {
	for i, l := range listings {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := PrintListing(w, l); err != nil {
			return err
		}
	}
	return nil
}

// PrintTree writes an indented tree of the taxonomy rooted at n
func PrintTree(w io.Writer, n *kind.Node) error {
	return printTree(w, n, 0)
}

func printTree(w io.Writer, n *kind.Node, depth int) error {
	name := n.Name
	if n.Category == "" && len(n.Children) > 0 {
		// abstract node
		name = style.MutedStyle.Render(name)
	} else {
		name = style.NormalStyle.Render(name)
	}

	if _, err := fmt.Fprintf(w, "%s\n", style.Indent(name, depth)); err != nil {
		return err
	}

	for _, c := range n.Children {
		if err := printTree(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

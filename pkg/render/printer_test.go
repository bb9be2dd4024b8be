package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/jlman/pkg/kind"
	"github.com/arthur-debert/jlman/pkg/listing"
	"github.com/arthur-debert/jlman/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Header(&buf, "Integers"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Integers")
	// Rule is sized to the header length
	assert.Contains(t, lines[1], strings.Repeat("═", len("Integers")))
}

func TestPrintListingOrder(t *testing.T) {
	l := listing.Listing{
		Name: "Dicts",
		Groups: []listing.Group{
			{Name: "Constants", Names: []string{"Base.ImmutableDict"}},
			{Name: "Macros", Names: []string{"@timev"}},
			{Name: "Methods", Groups: []listing.Group{
				{Name: "In-Place", Names: []string{"empty!", "push!"}},
				{Name: "Search & Find", Names: []string{"get", "findall"}},
			}},
			{Name: "Types", Names: []string{"Dict"}},
			{Name: "Operators", Names: []string{"∈", "∉"}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, PrintListing(&buf, l))
	out := buf.String()

	// Groups appear in authoring order, never resorted
	wantOrder := []string{"Dicts", "Constants", "Macros", "Methods", "In-Place", "Search & Find", "Types", "Operators"}
	last := -1
	for _, name := range wantOrder {
		idx := strings.Index(out, name)
		require.GreaterOrEqual(t, idx, 0, "missing %q in output", name)
		assert.Greater(t, idx, last, "%q out of order", name)
		last = idx
	}

	assert.Contains(t, out, "empty!  push!")
}

func TestPrintListings(t *testing.T) {
	listings := []listing.Listing{
		{Name: "Core", Groups: []listing.Group{{Name: "Methods", Names: []string{"length"}}}},
		{Name: "Stdlib", Groups: []listing.Group{{Name: "Printf", Names: []string{"@printf"}}}},
	}

	var buf bytes.Buffer
	require.NoError(t, PrintListings(&buf, listings))

	out := buf.String()
	assert.Less(t, strings.Index(out, "Core"), strings.Index(out, "Stdlib"))
}

func TestPrintListingsIdempotent(t *testing.T) {
	l := []listing.Listing{{Name: "Core", Groups: []listing.Group{{Name: "Methods", Names: []string{"length"}}}}}

	var first, second bytes.Buffer
	require.NoError(t, PrintListings(&first, l))
	require.NoError(t, PrintListings(&second, l))

	assert.Equal(t, first.String(), second.String())
}

func TestPrintTree(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, PrintTree(&buf, kind.Taxonomy()))
	out := buf.String()

	assert.Contains(t, out, "Any")
	assert.Contains(t, out, "Number")
	assert.Contains(t, out, "Rational")

	// Children are indented deeper than their parent
	lines := strings.Split(out, "\n")
	var anyIndent, numberIndent int
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		switch trimmed {
		case "Any":
			anyIndent = len(line) - len(trimmed)
		case "Number":
			numberIndent = len(line) - len(trimmed)
		}
	}
	assert.Greater(t, numberIndent, anyIndent)
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}

	assert.Equal(t, "# Heading\n", r.Render("# Heading\n"))
}

func TestNewPicksPlain(t *testing.T) {
	// Tests never run on a terminal, so any style resolves to plain
	r := New("auto", 80)

	_, ok := r.(*PlainRenderer)
	assert.True(t, ok)
}

func TestResolveStyle(t *testing.T) {
	t.Run("concrete styles pass through", func(t *testing.T) {
		assert.Equal(t, "dark", resolveStyle("dark"))
		assert.Equal(t, "light", resolveStyle("light"))
	})

	t.Run("auto follows the detected background", func(t *testing.T) {
		want := "light"
		if style.HasDarkBackground() {
			want = "dark"
		}
		assert.Equal(t, want, resolveStyle("auto"))
	})
}

func TestGlamourRendererFallback(t *testing.T) {
	r := &GlamourRenderer{Style: "/nonexistent/style.json"}

	// Unrenderable configuration falls back to the raw content
	assert.Equal(t, "*text*", r.Render("*text*"))
}

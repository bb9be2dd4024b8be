package kind

import (
	"bytes"
	"math/big"
	"math/rand"
	"os"
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/arthur-debert/jlman/pkg/errors"
	"github.com/arthur-debert/jlman/pkg/topic"
	"github.com/arthur-debert/jlman/pkg/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want Category
	}{
		{"int", 42, Integer},
		{"int8", int8(7), Integer},
		{"uint64", uint64(1 << 40), Integer},
		{"big int", big.NewInt(1), Integer},
		{"float64", 3.14, Float},
		{"float32", float32(2.5), Float},
		{"big float", big.NewFloat(1.5), Float},
		{"complex", complex(1, 2), Complex},
		{"rational", big.NewRat(3, 4), Rational},
		{"irrational", value.Pi, Irrational},
		{"bool", true, Boolean},
		{"char", value.Char('x'), Character},
		{"string", "hello", String},
		{"symbol", value.Symbol("name"), Symbol},
		{"range", value.Range{Start: 1, Step: 1, Stop: 10}, Range},
		{"slice", []int{1, 2, 3}, Array},
		{"array", [3]string{}, Array},
		{"struct as tuple", struct{ A, B int }{1, 2}, Tuple},
		{"dict", map[string]int{"a": 1}, Dict},
		{"set", map[string]struct{}{"a": {}}, Set},
		{"reflect type", reflect.TypeOf(0), Type},
		{"function", func() {}, Function},
		{"file", os.Stdout, File},
		{"buffer stream", &bytes.Buffer{}, File},
		{"module", value.Module{Name: "Base"}, Module},
		{"regex", regexp.MustCompile(`a+`), Regex},
		{"time", time.Now(), Datetime},
		{"duration", time.Second, Datetime},
		{"rng", rand.New(rand.NewSource(1)), Random},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.v)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Specificity ordering: carrier and library types whose underlying kind
// would also match a broader category must win over the broad category.
func TestResolveSpecificity(t *testing.T) {
	t.Run("duration is datetime not integer", func(t *testing.T) {
		got, err := Resolve(time.Hour)
		require.NoError(t, err)
		assert.Equal(t, Datetime, got)
	})

	t.Run("char is character not integer", func(t *testing.T) {
		got, err := Resolve(value.Char('j'))
		require.NoError(t, err)
		assert.Equal(t, Character, got)
	})

	t.Run("rune alone is integer", func(t *testing.T) {
		// rune aliases int32, so a bare rune cannot be told apart from
		// an integer; callers wanting character docs use value.Char
		got, err := Resolve('j')
		require.NoError(t, err)
		assert.Equal(t, Integer, got)
	})

	t.Run("symbol is not string", func(t *testing.T) {
		got, err := Resolve(value.Symbol("s"))
		require.NoError(t, err)
		assert.Equal(t, Symbol, got)
	})

	t.Run("irrational is not float", func(t *testing.T) {
		got, err := Resolve(value.E)
		require.NoError(t, err)
		assert.Equal(t, Irrational, got)
	})

	t.Run("empty struct set wins over dict", func(t *testing.T) {
		got, err := Resolve(map[int]struct{}{})
		require.NoError(t, err)
		assert.Equal(t, Set, got)
	})

	t.Run("range struct is not tuple", func(t *testing.T) {
		got, err := Resolve(value.Range{Start: 1, Step: 1, Stop: 5})
		require.NoError(t, err)
		assert.Equal(t, Range, got)
	})

	t.Run("time struct is not tuple", func(t *testing.T) {
		got, err := Resolve(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, Datetime, got)
	})
}

func TestResolveUnsupported(t *testing.T) {
	t.Run("channel", func(t *testing.T) {
		_, err := Resolve(make(chan int))

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedKind))
	})

	t.Run("nil", func(t *testing.T) {
		_, err := Resolve(nil)

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedKind))
	})

	t.Run("pointer to int", func(t *testing.T) {
		n := 5
		_, err := Resolve(&n)

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedKind))
	})
}

func TestCategoryTopic(t *testing.T) {
	assert.Equal(t, topic.Integers, Integer.Topic())
	assert.Equal(t, topic.Dicts, Dict.Topic())
	assert.Equal(t, topic.Files, File.Topic())

	for _, c := range Categories() {
		assert.True(t, c.Topic().Valid(), "category %q must map to a valid topic", c)
	}
}

func TestCategoriesAreDistinct(t *testing.T) {
	seen := make(map[Category]bool)
	for _, c := range Categories() {
		assert.False(t, seen[c], "category %q registered twice", c)
		seen[c] = true
	}
	assert.Len(t, seen, 21)
}

func TestTaxonomy(t *testing.T) {
	root := Taxonomy()

	require.NotNil(t, root)
	assert.Equal(t, "Any", root.Name)

	t.Run("every category appears in the tree", func(t *testing.T) {
		found := make(map[Category]bool)
		var walk func(n *Node)
		walk = func(n *Node) {
			if n.Category != "" {
				found[n.Category] = true
			}
			for _, c := range n.Children {
				walk(c)
			}
		}
		walk(root)

		for _, c := range Categories() {
			assert.True(t, found[c], "category %q missing from taxonomy", c)
		}
	})

	t.Run("find nested node", func(t *testing.T) {
		n := FindNode("Rational")
		require.NotNil(t, n)
		assert.Equal(t, Rational, n.Category)
	})

	t.Run("find ignores case", func(t *testing.T) {
		n := FindNode("real")
		require.NotNil(t, n)
		assert.Equal(t, "Real", n.Name)
	})

	t.Run("find missing node", func(t *testing.T) {
		assert.Nil(t, FindNode("Quaternion"))
	})
}

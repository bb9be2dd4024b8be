// Package resolve implements name-based topic resolution. A free-text
// topic name is matched case-insensitively against an ordered table of
// prefix patterns; the first matching entry wins. Unrecognized input
// resolves to no topic at all rather than an error: name lookup is a
// permissive convenience surface and absorbs misses silently.
package resolve

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/jlman/pkg/logging"
	"github.com/arthur-debert/jlman/pkg/topic"
)

// Binding associates one topic with its accepted prefix spellings
type Binding struct {
	Topic   topic.Topic
	Aliases []string

	pattern *regexp.Regexp
}

// bindings is the resolution table. Order is a semantic invariant:
// patterns are tried top to bottom and the first match wins, and the
// aliases are not disjoint. In particular "stream" must be tried before
// the "str" alias of strings, so files sits above strings in the table.
var bindings = []Binding{
	{Topic: topic.Integers, Aliases: []string{"integer", "int"}},
	{Topic: topic.Floats, Aliases: []string{"float", "floatingpoint", "double"}},
	{Topic: topic.Complexes, Aliases: []string{"complex", "imaginary"}},
	{Topic: topic.Rationals, Aliases: []string{"rational", "fraction"}},
	{Topic: topic.Irrationals, Aliases: []string{"irrational"}},
	{Topic: topic.Booleans, Aliases: []string{"boolean", "bool"}},
	{Topic: topic.Characters, Aliases: []string{"character", "char"}},
	{Topic: topic.Files, Aliases: []string{"file", "stream", "iostream", "io"}},
	{Topic: topic.Strings, Aliases: []string{"string", "str"}},
	{Topic: topic.Symbols, Aliases: []string{"symbol", "sym"}},
	{Topic: topic.Ranges, Aliases: []string{"range", "unitrange", "linrange"}},
	{Topic: topic.Arrays, Aliases: []string{"array", "vector", "matrix", "matrices", "list"}},
	{Topic: topic.Tuples, Aliases: []string{"namedtuple", "tuple"}},
	{Topic: topic.Dicts, Aliases: []string{"dict", "dictionary", "hash"}},
	{Topic: topic.Sets, Aliases: []string{"set", "bitset"}},
	{Topic: topic.Types, Aliases: []string{"type", "datatype", "abstract"}},
	{Topic: topic.Functions, Aliases: []string{"function", "func", "method", "procedure"}},
	{Topic: topic.Macros, Aliases: []string{"macro"}},
	{Topic: topic.Operators, Aliases: []string{"operator", "op"}},
	{Topic: topic.Modules, Aliases: []string{"module", "package", "namespace"}},
	{Topic: topic.Regexes, Aliases: []string{"regex", "regular", "regexp"}},
	{Topic: topic.Datetimes, Aliases: []string{"date", "datetime", "time", "calendar"}},
	{Topic: topic.Random, Aliases: []string{"random", "rand", "rng"}},
}

func init() {
	for i := range bindings {
		bindings[i].pattern = compile(bindings[i].Aliases)
	}
}

// compile builds the case-insensitive prefix pattern for a set of
// aliases. Patterns are anchored at the start only, so "INTEGER128"
// still matches the integers entry.
func compile(aliases []string) *regexp.Regexp {
	escaped := make([]string, len(aliases))
	for i, a := range aliases {
		escaped[i] = regexp.QuoteMeta(a)
	}
	return regexp.MustCompile(`(?i)^(?:` + strings.Join(escaped, "|") + `)`)
}

// Name resolves a free-text topic name. Any string is legal input; when
// nothing in the table matches, the second return is false and callers
// are expected to do nothing.
func Name(input string) (topic.Topic, bool) {
	for _, b := range bindings {
		if b.pattern.MatchString(input) {
			return b.Topic, true
		}
	}

	logger := logging.GetLogger("resolve")
	logger.Debug().Str("input", input).Msg("no topic matched input")
	return "", false
}

// Table returns the resolution table in matching order. The returned
// bindings share the package's alias slices; callers must not modify
// them.
func Table() []Binding {
	return bindings
}

// Aliases returns the accepted spellings for a topic, or nil if the
// topic has no name bindings.
func Aliases(t topic.Topic) []string {
	for _, b := range bindings {
		if b.Topic == t {
			return b.Aliases
		}
	}
	return nil
}

// Package topic defines the closed set of documentation subjects and the
// handler contract bound to each of them. Topics are fixed at build time;
// there is no runtime registration of new subjects.
package topic

import "io"

// Topic identifies one documentation subject
type Topic string

// All documentation topics, in authoring order. This order is also the
// display order used by listings of topics themselves.
const (
	Integers    Topic = "integers"
	Floats      Topic = "floats"
	Complexes   Topic = "complexes"
	Rationals   Topic = "rationals"
	Irrationals Topic = "irrationals"
	Booleans    Topic = "booleans"
	Characters  Topic = "characters"
	Strings     Topic = "strings"
	Symbols     Topic = "symbols"
	Ranges      Topic = "ranges"
	Arrays      Topic = "arrays"
	Tuples      Topic = "tuples"
	Dicts       Topic = "dicts"
	Sets        Topic = "sets"
	Types       Topic = "types"
	Functions   Topic = "functions"
	Macros      Topic = "macros"
	Operators   Topic = "operators"
	Modules     Topic = "modules"
	Files       Topic = "files"
	Regexes     Topic = "regexes"
	Datetimes   Topic = "datetimes"
	Random      Topic = "random"
)

// titles maps topics to their display headings
var titles = map[Topic]string{
	Integers:    "Integers",
	Floats:      "Floating-Point Numbers",
	Complexes:   "Complex Numbers",
	Rationals:   "Rational Numbers",
	Irrationals: "Irrational Constants",
	Booleans:    "Booleans",
	Characters:  "Characters",
	Strings:     "Strings",
	Symbols:     "Symbols",
	Ranges:      "Ranges",
	Arrays:      "Arrays",
	Tuples:      "Tuples",
	Dicts:       "Dictionaries",
	Sets:        "Sets",
	Types:       "Types",
	Functions:   "Functions",
	Macros:      "Macros",
	Operators:   "Operators",
	Modules:     "Modules",
	Files:       "Files & Streams",
	Regexes:     "Regular Expressions",
	Datetimes:   "Dates & Times",
	Random:      "Random Numbers",
}

// All returns every topic in authoring order
func All() []Topic {
	return []Topic{
		Integers, Floats, Complexes, Rationals, Irrationals,
		Booleans, Characters, Strings, Symbols, Ranges,
		Arrays, Tuples, Dicts, Sets, Types,
		Functions, Macros, Operators, Modules, Files,
		Regexes, Datetimes, Random,
	}
}

// Title returns the display heading for the topic
func (t Topic) Title() string {
	if title, ok := titles[t]; ok {
		return title
	}
	return string(t)
}

// Valid reports whether t is one of the defined topics
func (t Topic) Valid() bool {
	_, ok := titles[t]
	return ok
}

// Handler is the pair of behaviors bound to exactly one topic: Explain
// emits the topic's long-form documentation, List emits its categorized
// operation listings. Both write static data and are safe for
// concurrent use.
type Handler interface {
	// Topic returns the topic this handler is bound to
	Topic() Topic

	// Explain writes the topic's long-form documentation to w
	Explain(w io.Writer) error

	// List writes the topic's operation listings to w. When extended is
	// true, standard-library listings are included as well.
	List(w io.Writer, extended bool) error
}

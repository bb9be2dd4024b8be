// Package kind implements type-based topic resolution. A runtime value is
// classified into one of a fixed, closed set of categories, each bound to
// exactly one documentation topic. Classification runs an explicit ordered
// predicate table, most specific first, so specificity never depends on
// implicit overload rules.
package kind

import (
	"github.com/arthur-debert/jlman/pkg/topic"
)

// Category is one of the fixed built-in data categories
type Category string

// The closed category enumeration. Every category maps to exactly one
// topic; name-only topics (macros, operators, symbols used as labels)
// have no category.
const (
	Integer    Category = "integer"
	Float      Category = "float"
	Complex    Category = "complex"
	Rational   Category = "rational"
	Irrational Category = "irrational"
	Boolean    Category = "boolean"
	Character  Category = "character"
	String     Category = "string"
	Symbol     Category = "symbol"
	Range      Category = "range"
	Array      Category = "array"
	Tuple      Category = "tuple"
	Dict       Category = "dict"
	Set        Category = "set"
	Type       Category = "type"
	Function   Category = "function"
	File       Category = "file"
	Module     Category = "module"
	Regex      Category = "regex"
	Datetime   Category = "datetime"
	Random     Category = "random"
)

// categoryTopics binds every category to its topic
var categoryTopics = map[Category]topic.Topic{
	Integer:    topic.Integers,
	Float:      topic.Floats,
	Complex:    topic.Complexes,
	Rational:   topic.Rationals,
	Irrational: topic.Irrationals,
	Boolean:    topic.Booleans,
	Character:  topic.Characters,
	String:     topic.Strings,
	Symbol:     topic.Symbols,
	Range:      topic.Ranges,
	Array:      topic.Arrays,
	Tuple:      topic.Tuples,
	Dict:       topic.Dicts,
	Set:        topic.Sets,
	Type:       topic.Types,
	Function:   topic.Functions,
	File:       topic.Files,
	Module:     topic.Modules,
	Regex:      topic.Regexes,
	Datetime:   topic.Datetimes,
	Random:     topic.Random,
}

// Topic returns the documentation topic bound to the category
func (c Category) Topic() topic.Topic {
	return categoryTopics[c]
}

// Valid reports whether c is one of the registered categories
func (c Category) Valid() bool {
	_, ok := categoryTopics[c]
	return ok
}

// Categories returns every registered category. The slice order follows
// resolution specificity, not display order.
func Categories() []Category {
	cats := make([]Category, 0, len(predicates))
	for _, p := range predicates {
		cats = append(cats, p.category)
	}
	return cats
}

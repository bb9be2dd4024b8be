package kind

import (
	"io"
	"math/big"
	"math/rand"
	"os"
	"reflect"
	"regexp"
	"time"

	"github.com/arthur-debert/jlman/pkg/errors"
	"github.com/arthur-debert/jlman/pkg/logging"
	"github.com/arthur-debert/jlman/pkg/value"
)

// predicate tests whether a value belongs to one category
type predicate struct {
	category Category
	test     func(v any) bool
}

// predicates is the resolution table, ordered most specific first. The
// order is a semantic invariant: named carrier types and concrete
// library types must be tested before the generic reflect.Kind checks
// that their underlying kinds would also satisfy (time.Duration is an
// int64, value.Symbol is a string, value.Range is a struct).
var predicates = []predicate{
	{Rational, func(v any) bool { _, ok := v.(*big.Rat); return ok }},
	{Irrational, func(v any) bool { _, ok := v.(value.Irrational); return ok }},
	{Character, func(v any) bool { _, ok := v.(value.Char); return ok }},
	{Symbol, func(v any) bool { _, ok := v.(value.Symbol); return ok }},
	{Range, func(v any) bool { _, ok := v.(value.Range); return ok }},
	{Module, func(v any) bool { _, ok := v.(value.Module); return ok }},
	{Datetime, isDatetime},
	{Regex, func(v any) bool { _, ok := v.(*regexp.Regexp); return ok }},
	{Random, func(v any) bool { _, ok := v.(*rand.Rand); return ok }},
	{Type, func(v any) bool { _, ok := v.(reflect.Type); return ok }},
	{File, isStream},
	{Integer, isInteger},
	{Float, isFloat},
	{Complex, isKindOf(reflect.Complex64, reflect.Complex128)},
	{Boolean, isKindOf(reflect.Bool)},
	{String, isKindOf(reflect.String)},
	{Set, isSet},
	{Dict, isKindOf(reflect.Map)},
	{Array, isKindOf(reflect.Slice, reflect.Array)},
	{Tuple, isKindOf(reflect.Struct)},
	{Function, isKindOf(reflect.Func)},
}

// Resolve classifies a runtime value into its most specific category.
// Values outside every registered category are a caller error and fail
// with an unsupported-kind error; this path is expected to be total
// over reasonable inputs, unlike name resolution which absorbs misses.
func Resolve(v any) (Category, error) {
	if v == nil {
		return "", errors.New(errors.ErrUnsupportedKind, "cannot resolve a nil value")
	}

	for _, p := range predicates {
		if p.test(v) {
			logger := logging.GetLogger("kind")
			logger.Trace().Str("category", string(p.category)).Type("value", v).Msg("resolved value category")
			return p.category, nil
		}
	}

	return "", errors.Newf(errors.ErrUnsupportedKind, "no documentation category for value of type %T", v).
		WithDetail("go_type", reflect.TypeOf(v).String())
}

func isDatetime(v any) bool {
	switch v.(type) {
	case time.Time, time.Duration:
		return true
	}
	return false
}

// isStream matches open files and anything else readable or writable
func isStream(v any) bool {
	if _, ok := v.(*os.File); ok {
		return true
	}
	if _, ok := v.(io.Reader); ok {
		return true
	}
	_, ok := v.(io.Writer)
	return ok
}

func isInteger(v any) bool {
	if _, ok := v.(*big.Int); ok {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isFloat(v any) bool {
	if _, ok := v.(*big.Float); ok {
		return true
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

// isSet matches maps whose element type is the empty struct, the
// conventional Go spelling of a set
func isSet(v any) bool {
	rt := reflect.TypeOf(v)
	if rt.Kind() != reflect.Map {
		return false
	}
	elem := rt.Elem()
	return elem.Kind() == reflect.Struct && elem.NumField() == 0
}

func isKindOf(kinds ...reflect.Kind) func(v any) bool {
	return func(v any) bool {
		k := reflect.ValueOf(v).Kind()
		for _, want := range kinds {
			if k == want {
				return true
			}
		}
		return false
	}
}

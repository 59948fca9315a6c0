// Package naming derives schema names from user-supplied accessor names.
//
// All functions are pure: each output depends only on its inputs, with no
// package state. The package implements the naming conventions used by the
// veggies declarators:
//
//	naming.ForeignKeyColumn("order")                    // "order_id"
//	naming.RelatedTypeName("App::Result::", "stage_name") // "App::Result::StageName"
//	naming.Singularize("albums")                        // "album"
//	naming.BasePrefix("App::Result::Artist")            // "App::Result::", nil
//
// Inputs are expected to be well-formed snake_case identifiers. Behavior on
// malformed input (leading underscores, digit-led segments) follows directly
// from the transformation rules and is not otherwise defined.
package naming

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

const (
	// ForeignKeySuffix is appended to accessor names to form foreign-key
	// column names.
	ForeignKeySuffix = "_id"

	// Separator delimits the segments of a fully-qualified type name.
	Separator = "::"

	// Marker is the reserved segment that terminates the base namespace
	// prefix shared by all result types.
	Marker = "Result"
)

// ErrNoBasePrefix is returned by BasePrefix when a qualified name does not
// contain the reserved marker segment.
var ErrNoBasePrefix = errors.New("veggies/naming: qualified name has no result marker segment")

// ForeignKeyColumn returns the foreign-key column name for an accessor.
// The transformation is idempotent: names already carrying the suffix are
// returned unchanged.
func ForeignKeyColumn(name string) string {
	if strings.HasSuffix(name, ForeignKeySuffix) {
		return name
	}
	return name + ForeignKeySuffix
}

// Camelize converts a snake_case identifier to its CamelCase form. The first
// character is uppercased, and every underscore followed by a character is
// replaced by the uppercased character. A trailing underscore is preserved.
func Camelize(name string) string {
	rs := []rune(name)
	var b strings.Builder
	b.Grow(len(name))
	upper := true
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if !upper && r == '_' && i+1 < len(rs) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// RelatedTypeName builds a fully-qualified type name from a base namespace
// prefix and a snake_case accessor or its singular form.
func RelatedTypeName(basePrefix, name string) string {
	return basePrefix + Camelize(name)
}

// Singularize maps an English plural noun to its singular form. The heavy
// lifting (irregular plurals, "-ies", "-es" and "-s" rules) is delegated to
// the inflect library.
func Singularize(name string) string {
	return inflect.Singularize(name)
}

// BasePrefix returns the base namespace prefix of a fully-qualified type
// name: every segment up to and including the reserved marker segment, with
// a trailing separator. The marker must not be the final segment, since a
// type name always follows it.
//
//	BasePrefix("App::Result::Artist") // "App::Result::", nil
//
// A name without the marker is a usage error and yields ErrNoBasePrefix.
func BasePrefix(qualifiedName string) (string, error) {
	segs := strings.Split(qualifiedName, Separator)
	for i := 0; i < len(segs)-1; i++ {
		if segs[i] == Marker {
			return strings.Join(segs[:i+1], Separator) + Separator, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrNoBasePrefix, qualifiedName)
}

// LocalName returns the tail segment of a fully-qualified type name.
func LocalName(qualifiedName string) string {
	if i := strings.LastIndex(qualifiedName, Separator); i >= 0 {
		return qualifiedName[i+len(Separator):]
	}
	return qualifiedName
}

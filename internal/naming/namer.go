// Package naming derives the identifiers of generated functions.
package naming

import (
	"go/types"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Namer is responsible for generating names for the functions of one package.
type Namer struct {
	local *types.Package
}

var camelCaseRegexp = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// NewNamer creates a new Namer for code generated into local.
func NewNamer(local *types.Package) *Namer {
	return &Namer{local: local}
}

// toCamelCase converts a string to CamelCase.
// It handles cases like "user_custom" -> "UserCustom", "user-custom" -> "UserCustom".
func toCamelCase(s string) string {
	parts := strings.Fields(camelCaseRegexp.ReplaceAllString(s, " "))
	for i := range parts {
		parts[i] = title(parts[i])
	}
	return strings.Join(parts, "")
}

// title upper-cases the first letter of every word. A cases.Caser is stateful,
// so one is created per call.
func title(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// TypeIdent returns the identifier fragment naming t in a conversion
// function name. It reports false for types without one: function and struct
// literals, non-empty interface literals, unsafe and untyped types.
func (n *Namer) TypeIdent(t types.Type) (string, bool) {
	switch t := types.Unalias(t).(type) {
	case *types.Basic:
		if t.Kind() == types.Invalid || t.Kind() == types.UnsafePointer || t.Info()&types.IsUntyped != 0 {
			return "", false
		}
		return title(t.Name()), true
	case *types.Named:
		return n.namedIdent(t)
	case *types.Pointer:
		return n.suffixed(t.Elem(), "Ptr")
	case *types.Slice:
		elem, ok := n.TypeIdent(t.Elem())
		if !ok {
			return "", false
		}
		return inflect.Pluralize(elem), true
	case *types.Array:
		return n.suffixed(t.Elem(), "Array"+strconv.FormatInt(t.Len(), 10))
	case *types.Map:
		key, ok := n.TypeIdent(t.Key())
		if !ok {
			return "", false
		}
		return n.suffixed(t.Elem(), "Map", key, "To")
	case *types.Chan:
		return n.suffixed(t.Elem(), "Chan")
	case *types.Interface:
		if t.Empty() {
			return "Any", true
		}
	}
	return "", false
}

// suffixed names elem, prepends the prefix parts and appends suffix.
func (n *Namer) suffixed(elem types.Type, suffix string, prefix ...string) (string, bool) {
	ident, ok := n.TypeIdent(elem)
	if !ok {
		return "", false
	}
	return strings.Join(prefix, "") + ident + suffix, true
}

func (n *Namer) namedIdent(t *types.Named) (string, bool) {
	obj := t.Obj()
	name := title(obj.Name())
	if pkg := obj.Pkg(); pkg != nil && pkg != n.local && (n.local == nil || pkg.Path() != n.local.Path()) {
		name = toCamelCase(inflect.Camelize(pkg.Name())) + name
	}
	args := t.TypeArgs()
	for i := 0; i < args.Len(); i++ {
		arg, ok := n.TypeIdent(args.At(i))
		if !ok {
			return "", false
		}
		name += arg
	}
	return name, true
}

// Conversion names the wrap (verb "From") or unwrap (verb "To") function of
// an enum for the inner type identifier ident.
func (n *Namer) Conversion(enum string, exported bool, verb, ident string) string {
	return enumPrefix(enum, exported) + verb + ident
}

// Parse names the string parsing function of an enum.
func (n *Namer) Parse(enum string, exported bool) string {
	return verbPrefix("Parse", enum, exported)
}

// Format names the function returning the pattern of an enum value.
func (n *Namer) Format(enum string, exported bool) string {
	return verbPrefix("Format", enum, exported)
}

// Variant names the function returning the variant name held by an enum value.
func (n *Namer) Variant(enum string, exported bool) string {
	return enumPrefix(enum, exported) + "Variant"
}

func enumPrefix(enum string, exported bool) string {
	if exported {
		return enum
	}
	return lowerFirst(enum)
}

func verbPrefix(verb, enum string, exported bool) string {
	name := verb + title(enum)
	if exported {
		return name
	}
	return lowerFirst(name)
}

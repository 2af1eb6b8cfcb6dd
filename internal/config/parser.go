package config

import (
	"fmt"
	"go/ast"
	"strconv"
	"strings"

	"github.com/origadmin/enumfrom/internal/diag"
	"github.com/origadmin/enumfrom/internal/model"
)

// Directive keys.
const (
	KeyDerive   = "derive"
	KeyStr      = "str"
	KeyInner    = "inner"
	KeyStrInner = "str-inner"
)

// Parser turns enumfrom directive comments into model directives.
type Parser struct{}

// NewParser creates a new instance of a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses a single //go:enumfrom: comment. A malformed directive yields
// a *diag.InvalidDirectiveTargetError.
func (p *Parser) Parse(comment *ast.Comment) (*model.Directive, error) {
	text, ok := strings.CutPrefix(comment.Text, model.DirectivePrefix)
	if !ok {
		return nil, invalid("", fmt.Sprintf("comment does not start with %s", model.DirectivePrefix))
	}
	key, value, hasValue := strings.Cut(strings.TrimSpace(text), "=")
	key, value = strings.TrimSpace(key), strings.TrimSpace(value)

	d := &model.Directive{Key: key, Comment: comment}
	switch key {
	case KeyDerive:
		d.Kind = model.DirectiveDerive
		derives, err := p.parseDerive(value)
		if err != nil {
			return nil, err
		}
		d.Derives = derives
	case KeyStr:
		d.Kind = model.DirectiveStr
		pattern, err := p.parsePattern(value, hasValue)
		if err != nil {
			return nil, err
		}
		d.Pattern = pattern
	case KeyInner:
		d.Kind = model.DirectiveInner
		if hasValue {
			return nil, invalid(key, "takes no value")
		}
	case KeyStrInner:
		d.Kind = model.DirectiveStrInner
		policy := model.StrPolicy(value)
		if !policy.Valid() {
			return nil, invalid(key, fmt.Sprintf("policy must be %q or %q, got %q", model.StrParse, model.StrZero, value))
		}
		d.Policy = policy
	case "":
		return nil, invalid("", "missing directive key")
	default:
		return nil, invalid(key, "unknown directive")
	}
	return d, nil
}

func (p *Parser) parseDerive(value string) (model.Derive, error) {
	if value == "" {
		return 0, invalid(KeyDerive, "missing derivation list")
	}
	var derives model.Derive
	for _, name := range strings.Split(value, ",") {
		name = strings.TrimSpace(name)
		d, ok := model.LookupDerive(name)
		if !ok {
			return 0, invalid(KeyDerive, fmt.Sprintf("unknown derivation %q", name))
		}
		derives |= d
	}
	return derives, nil
}

func (p *Parser) parsePattern(value string, hasValue bool) (string, error) {
	if !hasValue || value == "" {
		return "", invalid(KeyStr, "missing pattern")
	}
	pattern, err := strconv.Unquote(value)
	if err != nil {
		return "", invalid(KeyStr, fmt.Sprintf("pattern must be a quoted Go string, got %s", value))
	}
	if pattern == "" {
		return "", invalid(KeyStr, "pattern must not be empty")
	}
	return pattern, nil
}

func invalid(key, reason string) error {
	directive := model.DirectivePrefix + key
	if key == "" {
		directive = model.DirectivePrefix
	}
	return &diag.InvalidDirectiveTargetError{Directive: directive, Reason: reason}
}

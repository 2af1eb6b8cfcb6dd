package config

import (
	"go/ast"
	"strings"

	"github.com/origadmin/enumfrom/internal/model"
)

// DirectiveScanner collects enumfrom directive comments from syntax trees.
type DirectiveScanner struct{}

// NewDirectiveScanner creates a new DirectiveScanner.
func NewDirectiveScanner() *DirectiveScanner {
	return &DirectiveScanner{}
}

// DiscoverDirectives returns every enumfrom directive comment in file,
// attached or not.
func (s *DirectiveScanner) DiscoverDirectives(file *ast.File) []*ast.Comment {
	var directives []*ast.Comment
	for _, group := range file.Comments {
		directives = append(directives, s.Directives(group)...)
	}
	return directives
}

// Directives returns the enumfrom directive comments of a comment group.
func (s *DirectiveScanner) Directives(group *ast.CommentGroup) []*ast.Comment {
	if group == nil {
		return nil
	}
	var directives []*ast.Comment
	for _, comment := range group.List {
		if IsDirective(comment) {
			directives = append(directives, comment)
		}
	}
	return directives
}

// TypeDoc returns the doc comment of a type spec. The doc of an unparenthesized
// declaration is attached to the declaration itself.
func (s *DirectiveScanner) TypeDoc(decl *ast.GenDecl, spec *ast.TypeSpec) *ast.CommentGroup {
	if spec.Doc != nil {
		return spec.Doc
	}
	if !decl.Lparen.IsValid() {
		return decl.Doc
	}
	return nil
}

// IsDirective reports whether comment is an enumfrom directive.
func IsDirective(comment *ast.Comment) bool {
	return strings.HasPrefix(comment.Text, model.DirectivePrefix)
}

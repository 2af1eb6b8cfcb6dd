// Package enumfromanalysis reports enumfrom diagnostics through the Go
// analysis protocol, so that go vet drivers and linters can surface them
// without generating code.
package enumfromanalysis

import (
	"errors"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/origadmin/enumfrom/internal/analyzer"
	"github.com/origadmin/enumfrom/internal/diag"
	"github.com/origadmin/enumfrom/internal/model"
)

// Analyzer validates enumfrom directives in the package.
var Analyzer = &analysis.Analyzer{
	Name: "enumfrom",
	Doc:  "linter for enumfrom directives",
	Run:  run,
}

var strInner = string(model.StrParse)

func init() {
	Analyzer.Flags.StringVar(&strInner, "str-inner", strInner, "how str patterns build single-inner variants (parse|zero)")
}

func run(pass *analysis.Pass) (any, error) {
	policy := model.StrPolicy(strInner)
	if !policy.Valid() {
		return nil, errors.New("enumfrom: -str-inner must be parse or zero")
	}

	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	_, err := analyzer.NewEnumAnalyzer(pkg, analyzer.Options{StrPolicy: policy}).Analyze()
	for _, err := range diag.Flatten(err) {
		var codeErr *diag.CodeError
		if !errors.As(err, &codeErr) || !codeErr.Pos().IsValid() {
			return nil, err
		}
		pass.Report(analysis.Diagnostic{
			Pos:     codeErr.Pos(),
			End:     codeErr.End(),
			Message: codeErr.Message(),
		})
	}
	return nil, nil
}

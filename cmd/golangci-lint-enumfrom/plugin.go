// Package golangcilintenumfrom provides a plugin for golangci-lint to
// integrate the enumfrom analyzer. To build a custom golangci-lint binary
// with this plugin, run the following command in this package's directory:
//
//	golangci-lint custom
package golangcilintenumfrom

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/origadmin/enumfrom/pkg/enumfromanalysis"
)

func init() {
	register.Plugin("enumfrom", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return EnumfromLinter{}, nil
}

type EnumfromLinter struct{}

func (EnumfromLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{enumfromanalysis.Analyzer}, nil
}

func (EnumfromLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}

// Package core drives a generator run: it loads the requested packages,
// derives every package concurrently and collects the rendered files.
package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"github.com/origadmin/enumfrom/internal/analyzer"
	"github.com/origadmin/enumfrom/internal/config"
	"github.com/origadmin/enumfrom/internal/diag"
	"github.com/origadmin/enumfrom/internal/generator"
	"github.com/origadmin/enumfrom/internal/model"
)

// Result maps output file paths to their contents.
type Result map[string][]byte

// Main is the main entry point of a generator run.
//
// ctx cancels package loading and the derivation of packages not yet
// started. wd is the working directory patterns are resolved against and
// output paths are made relative to. env is the environment handed to the go
// command.
//
// Packages are derived independently: the result holds the files of every
// package without diagnostics, and the error joins the diagnostics of all
// others sorted by position.
func Main(ctx context.Context, cfg *config.Config, wd string, env []string, patterns []string) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	pkgs, err := load(ctx, cfg, wd, env, patterns)
	if err != nil {
		return nil, err
	}

	var (
		mu   sync.Mutex
		outs = make(Result)
		errs error
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for _, pkg := range pkgs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			code, err := derive(pkg, cfg)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = errors.Join(errs, err)
				return nil
			}
			if code != nil {
				outs[outputPath(wd, pkg, cfg.Output)] = code
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outs, diag.Sort(errs)
}

// derive analyzes a single package and renders its derived functions. It
// returns nil code when the package derives nothing.
func derive(pkg *packages.Package, cfg *config.Config) ([]byte, error) {
	enums, err := analyzer.NewEnumAnalyzer(pkg, analyzer.Options{StrPolicy: cfg.StrInner}).Analyze()
	if err != nil {
		return nil, err
	}
	if len(enums) == 0 {
		slog.Debug("No enums derived", "package", pkg.PkgPath)
		return nil, nil
	}

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		for _, enum := range enums {
			slog.Debug("Derived enum", "package", pkg.PkgPath, "enum", enum.Name, "dump", spew.Sdump(summarize(enum)))
		}
	}

	code, err := generator.Generate(pkg.Types, enums)
	if err != nil {
		return nil, err
	}
	slog.Info("Derived package", "package", pkg.PkgPath, "enums", len(enums))
	return code, nil
}

// enumSummary is the debug view of an enum. The model itself references the
// whole type graph.
type enumSummary struct {
	Name      string
	Derives   string
	StrPolicy model.StrPolicy
	Variants  []variantSummary
}

type variantSummary struct {
	Name    string
	Shape   string
	Inner   string
	Field   string
	Pattern string
	Wrapped bool
}

func summarize(enum *model.EnumDeclaration) enumSummary {
	s := enumSummary{Name: enum.Name, Derives: enum.Derives.String(), StrPolicy: enum.StrPolicy}
	for _, v := range enum.Variants {
		vs := variantSummary{Name: v.Name, Shape: v.Shape.String(), Field: v.Field, Wrapped: v.HasInner()}
		if v.Inner != nil {
			vs.Inner = v.Inner.String()
		}
		vs.Pattern, _ = v.Pattern()
		s.Variants = append(s.Variants, vs)
	}
	return s
}

// outputPath places the output file next to the package sources.
func outputPath(wd string, pkg *packages.Package, name string) string {
	dir := filepath.Dir(pkg.GoFiles[0])
	if rel, err := filepath.Rel(wd, dir); err == nil {
		dir = rel
	}
	return filepath.Join(dir, name)
}

// load loads packages.
func load(ctx context.Context, cfg *config.Config, wd string, env []string, patterns []string) ([]*packages.Package, error) {
	tags := append([]string{config.BuildTag}, cfg.Tags...)
	loadCfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports | packages.NeedDeps |
			packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=" + strings.Join(tags, ",")},
	}

	pkgs, err := packages.Load(loadCfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	// Type errors are expected for calls to functions not generated yet.
	var errs error
	var loaded []*packages.Package
	for _, pkg := range pkgs {
		failed := false
		for _, err := range pkg.Errors {
			if err.Kind == packages.TypeError {
				slog.Warn("Package contains type errors", "pkg", pkg.PkgPath, "error", err.Msg, "pos", err.Pos)
				continue
			}
			failed = true
			errs = errors.Join(errs, relativeError(wd, err))
		}
		if failed || len(pkg.GoFiles) == 0 || pkg.Types == nil {
			continue
		}
		loaded = append(loaded, pkg)
	}
	if errs != nil {
		return nil, errs
	}
	return loaded, nil
}

func relativeError(wd string, err packages.Error) error {
	if err.Pos == "" {
		return errors.New(err.Msg)
	}
	path, rowcol, _ := strings.Cut(err.Pos, ":")
	if rel, relErr := filepath.Rel(wd, path); relErr == nil {
		err.Pos = rel + ":" + rowcol
	}
	return err
}

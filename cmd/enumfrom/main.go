package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	goversion "github.com/caarlos0/go-version"

	"github.com/origadmin/enumfrom/internal/config"
	"github.com/origadmin/enumfrom/internal/core"
	"github.com/origadmin/enumfrom/internal/model"
)

var (
	version   = "0.0.1"
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""

	debug       = flag.Bool("debug", false, "Enable debug logging")
	logFile     = flag.String("log-file", "", "Path to a file where logs should be written. If empty, logs go to stderr.")
	configFile  = flag.String("config", "", "Path to a YAML configuration file. Defaults to "+config.DefaultFile+" in the working directory when present.")
	output      = flag.String("output", config.DefaultOutput, "Output file name written into every package directory.")
	tags        = flag.String("tags", "", "Comma-separated build tags used while loading packages.")
	strInner    = flag.String("str-inner", string(model.StrParse), "How str patterns build single-inner variants (parse|zero).")
	workers     = flag.Int("workers", 0, "Packages derived concurrently. Defaults to GOMAXPROCS.")
	colorMode   = flag.String("c", config.ColorAuto, "Colorize diagnostics (auto|always|never).")
	showVersion = flag.Bool("version", false, "Print version information and exit.")
)

func main() {
	flag.Parse()

	// Configure log output
	logWriter := os.Stderr
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Error("Failed to open log file", "file", *logFile, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		logWriter = f
	}

	logLevel := slog.LevelWarn
	if *debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: logLevel,
	})))

	if *showVersion || len(flag.Args()) == 0 {
		v := buildVersion(version, commit, date, builtBy, treeState)
		fmt.Println(v.String())
		if !*showVersion {
			fmt.Println("Usage: enumfrom [options] <packages>")
			flag.PrintDefaults()
		}
		return
	}

	if err := run(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	cfg, err := loadConfig(wd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	slog.Debug("Loaded configuration", "output", cfg.Output, "tags", cfg.Tags, "str_inner", cfg.StrInner, "workers", cfg.Workers)

	outs, derr := core.Main(ctx, cfg, wd, os.Environ(), flag.Args())
	if derr != nil {
		message := derr.Error()
		if useColor(cfg.Color) {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
	}

	paths := make([]string, 0, len(outs))
	for out := range outs {
		paths = append(paths, out)
	}
	sort.Strings(paths)
	for _, out := range paths {
		if err := os.WriteFile(filepath.Join(wd, out), outs[out], 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		fmt.Println("Generated:", out)
	}
	slog.Info("enumfrom finished", "files", len(outs), "failed", derr != nil)
	return derr
}

// loadConfig layers the defaults, the YAML file and the flags set on the
// command line.
func loadConfig(wd string) (*config.Config, error) {
	cfg := config.NewDefaultConfig()

	path := *configFile
	if path == "" {
		path = filepath.Join(wd, config.DefaultFile)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}
	if path != "" {
		if err := config.LoadFile(path, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		slog.Debug("Read configuration file", "file", path)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.Output = *output
		case "tags":
			cfg.Tags = splitTags(*tags)
		case "str-inner":
			cfg.StrInner = model.StrPolicy(*strInner)
		case "workers":
			cfg.Workers = *workers
		case "c":
			cfg.Color = *colorMode
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func splitTags(s string) []string {
	var out []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func useColor(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isatty()
	}
}

var rePosition = regexp.MustCompile(`(?m)^([^\s:]+:\d+:\d+:)`)

// colorize highlights the position prefix of every diagnostic line.
func colorize(message string) string {
	const (
		bold  = "\033[1m"
		red   = "\033[31m"
		reset = "\033[0m"
	)
	return rePosition.ReplaceAllString(message, bold+red+"$1"+reset)
}

func buildVersion(version, commit, date, builtBy, treeState string) goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(config.Application, config.Description, config.WebSite),
		func(i *goversion.Info) {
			i.ASCIIName = config.UI
			if commit != "" {
				i.GitCommit = commit
			}
			if version != "" {
				i.GitVersion = version
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}

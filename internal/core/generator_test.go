package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/origadmin/enumfrom/internal/config"
	"github.com/origadmin/enumfrom/internal/diag"
)

func run(t *testing.T, patterns ...string) (Result, error) {
	t.Helper()
	wd, err := filepath.Abs("testdata")
	require.NoError(t, err)
	return Main(context.Background(), config.NewDefaultConfig(), wd, nil, patterns)
}

func TestMain_Derive(t *testing.T) {
	outs, err := run(t, "./animals", "./plain")
	require.NoError(t, err)
	require.Len(t, outs, 1, "packages without enums produce no file")

	code, ok := outs[filepath.Join("animals", config.DefaultOutput)]
	require.True(t, ok, "outputs: %v", outs)
	for _, want := range []string{
		"// Code generated by enumfrom. DO NOT EDIT.",
		"func ParseAnimal(s string) (Animal, error) {",
		`case "dog":`,
		"func AnimalFromString(v string) Animal {",
		"func AnimalVariant(v Animal) string {",
		"func AnimalToString(v Animal) (string, error) {",
	} {
		assert.Contains(t, string(code), want)
	}
	assert.NotContains(t, string(code), "is stale")
}

func TestMain_Diagnostics(t *testing.T) {
	outs, err := run(t, "./animals", "./broken")
	require.Error(t, err)
	assert.ErrorIs(t, err, diag.ErrDuplicateConversion)
	assert.ErrorContains(t, err, "broken.go:8:6: duplicate conversion of inner type float64 in Shape: claimed by Circle and Square")

	assert.Len(t, outs, 1, "clean packages are still derived")
	assert.Contains(t, outs, filepath.Join("animals", config.DefaultOutput))
}

func TestMain_InvalidConfig(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Workers = 0
	_, err := Main(context.Background(), cfg, ".", nil, []string{"./testdata/plain"})
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestMain_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Main(ctx, config.NewDefaultConfig(), ".", nil, []string{"./testdata/animals"})
	assert.Error(t, err)
}

// TestMain_ExamplesUpToDate regenerates the example packages and compares the
// result with the checked-in files.
func TestMain_ExamplesUpToDate(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	outs, err := Main(context.Background(), config.NewDefaultConfig(), root, nil, []string{"./example/..."})
	require.NoError(t, err)
	require.Len(t, outs, 2)

	for path, code := range outs {
		want, err := os.ReadFile(filepath.Join(root, path))
		require.NoError(t, err)
		assert.Equal(t, string(want), string(code), "%s is stale; run go generate ./example/...", path)
	}
}

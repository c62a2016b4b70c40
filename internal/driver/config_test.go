package driver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the-pinbo/ROBDD/internal/driver"
	"github.com/the-pinbo/ROBDD/internal/errs"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
schemaVersion: v1.2.0
inDir: ./in
outDir: ./out
commandFile: run.txt
`)
	cfg, err := driver.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0", cfg.SchemaVersion)
	assert.Equal(t, "./in", cfg.InDir)
	assert.Equal(t, "./out", cfg.OutDir)
	assert.Equal(t, "run.txt", cfg.CommandFile)
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"schemaVersion": "v1.0.0",
		"inDir": "in",
		"outDir": "out",
		"commandFile": "run.txt"
	}`)
	cfg, err := driver.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", cfg.SchemaVersion)
}

func TestLoadConfigRejectsMissingField(t *testing.T) {
	path := writeConfig(t, "config.json", `{"schemaVersion": "v1.0.0", "inDir": "in", "outDir": "out"}`)
	_, err := driver.LoadConfig(path)
	require.Error(t, err)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.KindBadConfig, e.Kind)
}

func TestLoadConfigRejectsOldSchemaVersion(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"schemaVersion": "v0.9.0",
		"inDir": "in",
		"outDir": "out",
		"commandFile": "run.txt"
	}`)
	_, err := driver.LoadConfig(path)
	require.Error(t, err)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.KindBadConfig, e.Kind)
}

func TestLoadConfigRejectsMalformedSchemaVersion(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"schemaVersion": "not-a-semver",
		"inDir": "in",
		"outDir": "out",
		"commandFile": "run.txt"
	}`)
	_, err := driver.LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := driver.LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.KindIOFailure, e.Kind)
}

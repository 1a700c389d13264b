package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	return &cfg
}

func TestValidateDeep_ValidConfig(t *testing.T) {
	cfg := validConfig(t)
	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_MissingConfigFileIsFine(t *testing.T) {
	cfg := validConfig(t)
	assert.NoError(t, cfg.ValidateDeep(filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestValidateDeep_ConfigPathIsDirectory(t *testing.T) {
	cfg := validConfig(t)
	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "is a directory")
}

func TestValidateDeep_ExistingConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: gruvbox\n"), 0o644))

	cfg := validConfig(t)
	assert.NoError(t, cfg.ValidateDeep(path))
}

func TestValidateDeep_InvalidGlobs(t *testing.T) {
	cfg := validConfig(t)
	cfg.Scan.Include = []string{"**/*.png", "[unclosed"}
	cfg.Scan.Exclude = []string{"{a,b"}

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
	assert.Equal(t, "scan.include[1]", fieldErrs[0].Field)
	assert.Equal(t, "scan.exclude[0]", fieldErrs[1].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "invalid glob")
}

func TestValidateDeep_ViewerKeyConflict(t *testing.T) {
	cfg := validConfig(t)
	cfg.Keys.Next = []string{"right", "esc"}

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "keys.next", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "keys.close")
}

func TestValidateDeep_ScopesAreIndependent(t *testing.T) {
	cfg := validConfig(t)
	// "q" closes the viewer and quits from the grid; the viewer shadows it.
	cfg.Keys.Close = []string{"esc", "q"}

	assert.NoError(t, cfg.ValidateDeep(""))
}

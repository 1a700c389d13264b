package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
)

// ValidateDeep performs comprehensive validation of the configuration
// including glob syntax, key binding conflicts and file accessibility. The
// configPath argument specifies the config file location to validate (empty
// string skips the config file check). This calls Validate() first for basic
// structural validation.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.validateGlobs(),
		c.validateKeys(),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// validateGlobs checks include and exclude patterns are valid doublestar globs.
func (c *Config) validateGlobs() error {
	var errs criterio.FieldErrorsBuilder

	for i, p := range c.Scan.Include {
		if !doublestar.ValidatePattern(p) {
			errs = errs.Append(fmt.Sprintf("scan.include[%d]", i), fmt.Errorf("invalid glob %q", p))
		}
	}
	for i, p := range c.Scan.Exclude {
		if !doublestar.ValidatePattern(p) {
			errs = errs.Append(fmt.Sprintf("scan.exclude[%d]", i), fmt.Errorf("invalid glob %q", p))
		}
	}

	return errs.ToError()
}

// validateKeys reports keys bound to more than one action within the same
// scope. Viewer keys shadow grid keys while the viewer is open, so the two
// scopes are checked separately.
func (c *Config) validateKeys() error {
	var errs criterio.FieldErrorsBuilder

	viewerScope := []namedKeys{
		{"keys.close", c.Keys.Close},
		{"keys.next", c.Keys.Next},
		{"keys.prev", c.Keys.Prev},
		{"keys.copy", c.Keys.Copy},
	}
	gridScope := []namedKeys{
		{"keys.open", c.Keys.Open},
		{"keys.help", c.Keys.Help},
		{"keys.quit", c.Keys.Quit},
	}

	for _, scope := range [][]namedKeys{viewerScope, gridScope} {
		seen := make(map[string]string)
		for _, nk := range scope {
			for _, k := range nk.keys {
				if prev, ok := seen[k]; ok {
					errs = errs.Append(nk.field, fmt.Errorf("key %q already bound by %s", k, prev))
					continue
				}
				seen[k] = nk.field
			}
		}
	}

	return errs.ToError()
}

type namedKeys struct {
	field string
	keys  []string
}

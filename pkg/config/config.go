package config

import (
	"github.com/arthur-debert/roster/pkg/directory"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/output"
)

// Config is the fully resolved roster configuration
type Config struct {
	Shell  ShellConfig                `koanf:"shell"`
	Usage  UsageConfig                `koanf:"usage"`
	Output OutputConfig               `koanf:"output"`
	Seed   []directory.SeedDepartment `koanf:"seed"`
}

// ShellConfig controls the interactive loop
type ShellConfig struct {
	Prompt       string `koanf:"prompt"`
	HelpCommand  string `koanf:"help_command"`
	QuitCommand  string `koanf:"quit_command"`
	UsageOnError bool   `koanf:"usage_on_error"`
}

// UsageConfig controls the usage text
type UsageConfig struct {
	Header string `koanf:"header"`
}

// OutputConfig selects how results are rendered
type OutputConfig struct {
	Format string `koanf:"format"`
}

// Validate checks the values no layer is allowed to leave unusable
func (c *Config) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return errors.Newf(errors.ErrConfigValid, format, args...)
	}

	switch {
	case c.Shell.Prompt == "":
		return invalid("shell.prompt must not be empty")
	case c.Shell.HelpCommand == "":
		return invalid("shell.help_command must not be empty")
	case c.Shell.QuitCommand == "":
		return invalid("shell.quit_command must not be empty")
	case c.Shell.HelpCommand == c.Shell.QuitCommand:
		return invalid("shell.help_command and shell.quit_command are both %q", c.Shell.HelpCommand)
	}

	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid output.format %q", c.Output.Format)
	}

	for i, seed := range c.Seed {
		if seed.Department == "" {
			return invalid("seed entry %d has no department", i+1)
		}
	}
	return nil
}

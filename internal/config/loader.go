package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the base name searched for when no file is given
	ConfigFileName = "todo"
	// ConfigFileEnv names an explicit config file
	ConfigFileEnv = "TODO_CONFIG"
	// DefaultEnvFile is the dotenv file read from the working directory
	DefaultEnvFile = ".env"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	configFile string
	envFile    string
	usedFile   string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config:  NewConfig(),
		envFile: DefaultEnvFile,
	}
}

// WithConfigFile sets an explicit YAML config file. A missing explicit file is an error.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// WithEnvFile sets the dotenv file to read. An empty path disables dotenv loading.
func (l *Loader) WithEnvFile(path string) *Loader {
	l.envFile = path
	return l
}

// ConfigFileUsed returns the YAML file that was read, if any
func (l *Loader) ConfigFileUsed() string {
	return l.usedFile
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file
// 3. Load .env into the process environment (real env wins)
// 4. Override with environment variables
// 5. Validate
func (l *Loader) Load() (*Config, error) {
	if err := l.load(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
// before validating, so a flag can correct a bad file or environment value.
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if err := l.load(); err != nil {
		return nil, err
	}

	// Apply command line overrides
	if overrides != nil {
		l.applyOverrides(l.config, overrides)
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

func (l *Loader) load() error {
	if l.configFile == "" {
		l.configFile = os.Getenv(ConfigFileEnv)
	}

	if err := l.loadFile(); err != nil {
		return err
	}

	if err := l.loadEnvFile(); err != nil {
		return err
	}

	return l.config.LoadFromEnvironment()
}

// loadFile reads todo.yaml with viper. Only keys present in the file override defaults.
func (l *Loader) loadFile() error {
	v := viper.New()
	v.SetConfigType("yaml")
	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "todo"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && l.configFile == "" {
			return nil
		}
		return &ConfigError{Field: "config_file", Message: err.Error()}
	}
	l.usedFile = v.ConfigFileUsed()

	c := l.config

	// Database configuration
	if v.IsSet("database.dir") {
		c.Database.Dir = v.GetString("database.dir")
	}
	if v.IsSet("database.filename") {
		c.Database.Filename = v.GetString("database.filename")
	}
	if v.IsSet("database.driver") {
		c.Database.Driver = v.GetString("database.driver")
	}
	if v.IsSet("database.query_timeout") {
		c.Database.QueryTimeout = v.GetDuration("database.query_timeout")
	}
	if v.IsSet("database.write_timeout") {
		c.Database.WriteTimeout = v.GetDuration("database.write_timeout")
	}
	if v.IsSet("database.dir_permissions") {
		// YAML decodes 0750 as an integer already; quoted values are octal strings
		switch perms := v.Get("database.dir_permissions").(type) {
		case int:
			c.Database.DirPermissions = uint32(perms)
		case int64:
			c.Database.DirPermissions = uint32(perms)
		default:
			c.Database.DirPermissions = ParseUint32WithFallback(v.GetString("database.dir_permissions"), 8, c.Database.DirPermissions)
		}
	}

	// Validation configuration
	if v.IsSet("validation.task_name_min_length") {
		c.Validation.TaskNameMinLength = v.GetInt("validation.task_name_min_length")
	}
	if v.IsSet("validation.task_name_max_length") {
		c.Validation.TaskNameMaxLength = v.GetInt("validation.task_name_max_length")
	}

	// Display configuration
	if v.IsSet("display.strikethrough") {
		c.Display.Strikethrough = v.GetBool("display.strikethrough")
	}
	if v.IsSet("display.completed_marker") {
		c.Display.CompletedMarker = v.GetString("display.completed_marker")
	}
	if v.IsSet("display.open_marker") {
		c.Display.OpenMarker = v.GetString("display.open_marker")
	}

	// Shell configuration
	if v.IsSet("shell.alt_screen") {
		c.Shell.AltScreen = v.GetBool("shell.alt_screen")
	}

	// Application configuration
	if v.IsSet("application.timeout") {
		c.Application.Timeout = v.GetDuration("application.timeout")
	}
	if v.IsSet("application.verbose") {
		c.Application.Verbose = v.GetBool("application.verbose")
	}
	if v.IsSet("application.log_file") {
		c.Application.LogFile = v.GetString("application.log_file")
	}

	return nil
}

// loadEnvFile reads a dotenv file without overriding variables already set
func (l *Loader) loadEnvFile() error {
	if l.envFile == "" {
		return nil
	}
	if err := godotenv.Load(l.envFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &ConfigError{Field: "env_file", Message: err.Error()}
	}
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Database overrides
	DBDir          *string
	DBFilename     *string
	DBDriver       *string
	DBQueryTimeout *time.Duration
	DBWriteTimeout *time.Duration

	// Validation overrides
	TaskNameMaxLength *int

	// Shell overrides
	AltScreen *bool

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// Database overrides
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.DBDriver != nil {
		config.Database.Driver = *overrides.DBDriver
	}
	if overrides.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *overrides.DBQueryTimeout
	}
	if overrides.DBWriteTimeout != nil {
		config.Database.WriteTimeout = *overrides.DBWriteTimeout
	}

	// Validation overrides
	if overrides.TaskNameMaxLength != nil {
		config.Validation.TaskNameMaxLength = *overrides.TaskNameMaxLength
	}

	// Shell overrides
	if overrides.AltScreen != nil {
		config.Shell.AltScreen = *overrides.AltScreen
	}

	// Application overrides
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}

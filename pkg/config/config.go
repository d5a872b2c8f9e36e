/*
Package config manages the TOML config for wordfit services.

Config files are optional. A missing file is created with defaults. When a
value has the wrong type, the file is decoded again into a loose map and every
key that still has the right type is kept. A file that is not valid TOML at all
falls back to the builtin defaults. Config problems are logged and never stop
startup.

	[server]
	max_input_len = 64
	max_limit = 64
	default_limit = 10

	[dict]
	path = ""

	[cli]
	show_timing = true
	default_limit = 10
*/
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/bastiangx/wordfit/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxInputLen  int `toml:"max_input_len"`
	MaxLimit     int `toml:"max_limit"`
	DefaultLimit int `toml:"default_limit"`
}

// DictConfig holds word list options.
type DictConfig struct {
	Path string `toml:"path"` // empty selects the bundled list
}

// CliConfig holds cli interface options.
type CliConfig struct {
	ShowTiming   bool `toml:"show_timing"`
	DefaultLimit int  `toml:"default_limit"`
}

// GetConfigDir returns the first writable config directory out of:
// the platform dir (XDG_CONFIG_HOME, APPDATA or ~/.config), then
// ~/Library/Application Support on macOS, then the executable dir.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}

	candidates := []string{utils.PlatformConfigDir(homeDir)}
	if runtime.GOOS == "darwin" {
		candidates = append(candidates, filepath.Join(homeDir, "Library", "Application Support", "wordfit"))
	}
	for _, dir := range candidates {
		if utils.CheckDirStatus(dir).Writable {
			return dir, nil
		}
		log.Debugf("Config dir not writable: %s", dir)
	}

	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from the -config flag
// 2. Default path: [UserConfigDir]/wordfit/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxInputLen:  64,
			MaxLimit:     64,
			DefaultLimit: 10,
		},
		Dict: DictConfig{
			Path: "",
		},
		CLI: CliConfig{
			ShowTiming:   true,
			DefaultLimit: 10,
		},
	}
}

// InitConfig loads configPath, writing the defaults there first when the file
// does not exist yet. Any failure is logged and answered with the defaults.
func InitConfig(configPath string) (*Config, error) {
	if utils.FileExists(configPath) {
		return LoadConfig(configPath)
	}

	config := DefaultConfig()
	if err := SaveConfig(config, configPath); err != nil {
		log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
	} else {
		log.Debugf("Created default config file at: %s", configPath)
	}
	return config, nil
}

// LoadConfig decodes configPath over the defaults. When the strict decode
// fails the file is read again as a loose map and the keys of the right type
// are kept.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		config = recoverConfig(configPath)
	}
	config.normalize()
	return config, nil
}

// recoverConfig salvages typed keys from a file the struct decode rejected.
// Syntax errors leave nothing to salvage.
func recoverConfig(configPath string) *Config {
	config := DefaultConfig()

	loose, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config
	}

	sections := map[string]func(map[string]any){
		"server": config.Server.extract,
		"dict":   config.Dict.extract,
		"cli":    config.CLI.extract,
	}
	for name, extract := range sections {
		if section, ok := utils.ExtractSection(loose, name); ok {
			extract(section)
		}
	}
	return config
}

func (s *ServerConfig) extract(data map[string]any) {
	if val, ok := utils.ExtractInt64(data, "max_input_len"); ok {
		s.MaxInputLen = val
	}
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		s.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		s.DefaultLimit = val
	}
}

func (d *DictConfig) extract(data map[string]any) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		d.Path = val
	}
}

func (c *CliConfig) extract(data map[string]any) {
	if val, ok := utils.ExtractBool(data, "show_timing"); ok {
		c.ShowTiming = val
	}
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		c.DefaultLimit = val
	}
}

// normalize replaces out of range values with their defaults
func (c *Config) normalize() {
	defaults := DefaultConfig()
	if c.Server.MaxInputLen < 0 {
		c.Server.MaxInputLen = defaults.Server.MaxInputLen
	}
	if c.Server.MaxLimit < 1 {
		c.Server.MaxLimit = defaults.Server.MaxLimit
	}
	if c.Server.DefaultLimit < 1 || c.Server.DefaultLimit > c.Server.MaxLimit {
		c.Server.DefaultLimit = min(defaults.Server.DefaultLimit, c.Server.MaxLimit)
	}
	if c.CLI.DefaultLimit < 1 {
		c.CLI.DefaultLimit = defaults.CLI.DefaultLimit
	}
}

// RebuildConfigFile overwrites the default config.toml with builtin values
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	return SaveConfig(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of the loaded config file,
// or of the default location when configPath is empty
func GetActiveConfigPath(configPath string) string {
	if configPath != "" {
		return utils.GetAbsolutePath(configPath)
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return "unknown"
	}
	return defaultPath
}

// SaveConfig writes config to configPath, creating parent directories
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update sets the given server values, clamps them like a loaded file and
// saves the result to configPath. Nil arguments leave a value unchanged.
func (c *Config) Update(configPath string, maxInputLen, maxLimit, defaultLimit *int) error {
	if maxInputLen != nil {
		c.Server.MaxInputLen = *maxInputLen
	}
	if maxLimit != nil {
		c.Server.MaxLimit = *maxLimit
	}
	if defaultLimit != nil {
		c.Server.DefaultLimit = *defaultLimit
	}
	c.normalize()
	return SaveConfig(c, configPath)
}

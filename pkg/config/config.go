/*
Package config manages the TOML config for wordpick.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordpick/internal/utils"
	"github.com/bastiangx/wordpick/pkg/pick"
	"github.com/bastiangx/wordpick/pkg/score"
	"github.com/charmbracelet/log"
)

const appDir = "wordpick"

// Config holds the entire config structure
type Config struct {
	Pick  PickConfig  `toml:"pick"`
	Score ScoreConfig `toml:"score"`
	Dict  DictConfig  `toml:"dict"`
	CLI   CliConfig   `toml:"cli"`
}

// PickConfig has matcher options.
type PickConfig struct {
	SkipDuplicateLetters bool `toml:"skip_duplicate_letters"`
	Trace                bool `toml:"trace"`
	WordLength           int  `toml:"word_length"`
}

// ScoreConfig selects and tunes the scoring stages.
type ScoreConfig struct {
	Baseline       int64 `toml:"baseline"`
	FrequencyBonus bool  `toml:"frequency_bonus"`
	UsagePenalty   bool  `toml:"usage_penalty"`
}

// DictConfig holds word list and usage table options.
type DictConfig struct {
	WordsPath string `toml:"words_path"`
	UsagePath string `toml:"usage_path"`
	MaxWords  int    `toml:"max_words"`
	Lowercase bool   `toml:"lowercase"`

	// LettersOnly drops word list entries holding anything but letters.
	LettersOnly bool `toml:"letters_only"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int `toml:"default_limit"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Pick: PickConfig{
			SkipDuplicateLetters: true,
			Trace:                false,
			WordLength:           5,
		},
		Score: ScoreConfig{
			Baseline:       score.DefaultBaseline,
			FrequencyBonus: true,
			UsagePenalty:   true,
		},
		Dict: DictConfig{
			WordsPath:   "words.txt",
			UsagePath:   "",
			MaxWords:    0,
			Lowercase:   true,
			LettersOnly: false,
		},
		CLI: CliConfig{
			DefaultLimit: 20,
		},
	}
}

// PickOptions converts the pick section into matcher options.
func (c *Config) PickOptions() pick.Options {
	return pick.Options{
		SkipDuplicates: c.Pick.SkipDuplicateLetters,
		Trace:          c.Pick.Trace,
		WordLength:     c.Pick.WordLength,
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", appDir)
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", appDir)
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
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
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordpick/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
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

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file, keeping every value it can parse
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse recovers the sections of a TOML file that still decode
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "pick"); ok {
		extractPickConfig(section, &config.Pick)
	}
	if section, ok := utils.ExtractSection(tempConfig, "score"); ok {
		extractScoreConfig(section, &config.Score)
	}
	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractPickConfig(data map[string]any, p *PickConfig) {
	if val, ok := utils.ExtractBool(data, "skip_duplicate_letters"); ok {
		p.SkipDuplicateLetters = val
	}
	if val, ok := utils.ExtractBool(data, "trace"); ok {
		p.Trace = val
	}
	if val, ok := utils.ExtractInt64(data, "word_length"); ok {
		p.WordLength = val
	}
}

func extractScoreConfig(data map[string]any, s *ScoreConfig) {
	if val, ok := utils.ExtractInt64(data, "baseline"); ok {
		s.Baseline = int64(val)
	}
	if val, ok := utils.ExtractBool(data, "frequency_bonus"); ok {
		s.FrequencyBonus = val
	}
	if val, ok := utils.ExtractBool(data, "usage_penalty"); ok {
		s.UsagePenalty = val
	}
}

func extractDictConfig(data map[string]any, d *DictConfig) {
	if val, ok := utils.ExtractString(data, "words_path"); ok {
		d.WordsPath = val
	}
	if val, ok := utils.ExtractString(data, "usage_path"); ok {
		d.UsagePath = val
	}
	if val, ok := utils.ExtractInt64(data, "max_words"); ok {
		d.MaxWords = val
	}
	if val, ok := utils.ExtractBool(data, "lowercase"); ok {
		d.Lowercase = val
	}
	if val, ok := utils.ExtractBool(data, "letters_only"); ok {
		d.LettersOnly = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

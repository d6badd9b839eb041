// Package cli builds the wordpick commands.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/bastiangx/wordpick/internal/logger"
	"github.com/bastiangx/wordpick/internal/utils"
	"github.com/bastiangx/wordpick/pkg/config"
	"github.com/bastiangx/wordpick/pkg/dictionary"
	"github.com/bastiangx/wordpick/pkg/engine"
	"github.com/bastiangx/wordpick/pkg/usage"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const (
	Version = "0.3.0"
	AppName = "wordpick"
	gh      = "https://github.com/bastiangx/wordpick"
)

// app is the state shared by every command after flags are parsed.
type app struct {
	debug      bool
	configPath string

	cfg     *config.Config
	cfgPath string
}

// NewRootCmd returns the wordpick command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: "Picks candidate words from letter placement clues",
		Long: `wordpick filters a word list against per-letter placement clues
and ranks the candidates by how common their letters are among the
words examined and how often they were already used as answers.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Toggle debug mode")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a config file (default ~/.config/wordpick/config.toml)")

	rootCmd.AddCommand(newPickCommand(a))
	rootCmd.AddCommand(newReplCommand(a))
	rootCmd.AddCommand(newServeCommand(a))
	rootCmd.AddCommand(newUsageCommand(a))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func (a *app) setup() error {
	logger.Setup(a.debug)

	cfg, path, err := config.LoadConfigWithPriority(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.cfgPath = path
	log.Debugf("Using config: %s", config.GetActiveConfigPath(path))
	return nil
}

// resolver looks data files up next to the config file as well as the usual places.
func (a *app) resolver() *utils.PathResolver {
	dir := ""
	if a.cfgPath != "" {
		dir = filepath.Dir(a.cfgPath)
	}
	return utils.NewPathResolver(dir)
}

// loadEngine reads the word list and the optional usage table. Empty paths
// fall back to the config.
func (a *app) loadEngine(wordsPath, usagePath string) (*engine.Engine, error) {
	if wordsPath == "" {
		wordsPath = a.cfg.Dict.WordsPath
	}
	if usagePath == "" {
		usagePath = a.cfg.Dict.UsagePath
	}
	pr := a.resolver()

	resolved, err := pr.ResolveFile(wordsPath)
	if err != nil {
		return nil, fmt.Errorf("word list %s not found: %w", wordsPath, err)
	}
	list, err := dictionary.Load(resolved, dictionary.LoadOptions{
		MaxWords:    a.cfg.Dict.MaxWords,
		Lowercase:   a.cfg.Dict.Lowercase,
		LettersOnly: a.cfg.Dict.LettersOnly,
	})
	if err != nil {
		return nil, err
	}

	var used *usage.Table
	if usagePath != "" {
		resolved, err := pr.ResolveFile(usagePath)
		if err != nil {
			return nil, fmt.Errorf("usage table %s not found: %w", usagePath, err)
		}
		if used, err = usage.Load(resolved); err != nil {
			return nil, err
		}
	}

	log.Debug("Engine ready", "words", len(list.Words), "usage", used.Len())
	return engine.New(list.Words, used, a.cfg), nil
}

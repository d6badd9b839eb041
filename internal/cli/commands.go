package cli

import (
	"os"

	"github.com/bastiangx/wordpick/internal/logger"
	"github.com/bastiangx/wordpick/pkg/server"
	"github.com/bastiangx/wordpick/pkg/usage"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newServeCommand(a *app) *cobra.Command {
	var words, usagePath string
	var shards int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Answers msgpack pick requests on stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.loadEngine(words, usagePath)
			if err != nil {
				return err
			}
			e.SetShards(shards)

			showStartupInfo(e.Stats())
			return server.NewServer(e, cmd.InOrStdin(), cmd.OutOrStdout()).Start()
		},
	}

	cmd.Flags().StringVar(&words, "words", "", "Word list file (default from config)")
	cmd.Flags().StringVar(&usagePath, "usage", "", "Usage table CSV (default from config)")
	cmd.Flags().IntVar(&shards, "shards", 1, "Number of concurrent scans over the word list")
	return cmd
}

// showStartupInfo displays some basic info about the loaded data on stderr.
func showStartupInfo(stats map[string]int) {
	l := logger.New("")
	l.SetLevel(log.InfoLevel)

	l.Infof("Version: %s", Version)
	l.Infof("Process ID: [ %d ]", os.Getpid())
	l.Infof("words: %d, used words: %d", stats["totalWords"], stats["usedWords"])
	l.Info("status: ready")
}

func newUsageCommand(a *app) *cobra.Command {
	var usagePath string

	cmd := &cobra.Command{
		Use:   "usage [prefix]",
		Short: "Lists used words and their counts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if usagePath == "" {
				usagePath = a.cfg.Dict.UsagePath
			}
			table := usage.NewTable()
			if usagePath != "" {
				resolved, err := a.resolver().ResolveFile(usagePath)
				if err != nil {
					return err
				}
				if table, err = usage.Load(resolved); err != nil {
					return err
				}
			}

			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			NewRenderer(cmd.OutOrStdout()).Usage(table.WithPrefix(prefix), table.Max())
			return nil
		},
	}

	cmd.Flags().StringVar(&usagePath, "usage", "", "Usage table CSV (default from config)")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Shows the current version",
		Run: func(cmd *cobra.Command, args []string) {
			l := log.NewWithOptions(cmd.OutOrStdout(), log.Options{
				ReportCaller:    false,
				ReportTimestamp: false,
				Prefix:          "",
			})

			styles := log.DefaultStyles()
			styles.Values["version"] = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
			styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
			l.SetStyles(styles)

			l.Print("[ wordpick ] Picks words from letter clues")
			l.Print("", "version", Version)
			l.Print("Github Repo", "gh", gh)
		},
	}
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/flemzord/tgmcp/internal/config"
	"github.com/spf13/cobra"
)

// tokenRef is written instead of a literal token when the user leaves the
// token prompt empty.
const tokenRef = "${TELEGRAM_BOT_TOKEN}"

// initAnswers are the values collected by the init form.
type initAnswers struct {
	Token     string
	APIURL    string
	LogLevel  string
	LogFormat string
	Overwrite bool
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("path")
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}

			_, statErr := os.Stat(path)
			exists := statErr == nil

			answers := defaultAnswers()
			form := initForm(&answers, exists).
				WithInput(cmd.InOrStdin()).
				WithOutput(cmd.OutOrStdout())
			if accessible, _ := cmd.Flags().GetBool("accessible"); accessible {
				form = form.WithAccessible(true)
			}
			if err := form.RunWithContext(cmd.Context()); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return fmt.Errorf("init: %w", err)
			}
			if exists && !answers.Overwrite {
				fmt.Fprintf(cmd.OutOrStdout(), "Kept existing %s\n", path)
				return nil
			}

			cfg := answers.config()
			if err := config.Validate(cfg); err != nil {
				return err
			}
			if err := writeConfig(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().String("path", "", "Destination file (default $XDG_CONFIG_HOME/tgmcp/tgmcp.yaml)")
	cmd.Flags().Bool("accessible", false, "Use plain prompts instead of the interactive form")
	return cmd
}

func defaultAnswers() initAnswers {
	d := config.Default()
	return initAnswers{
		APIURL:    d.Telegram.APIURL,
		LogLevel:  d.Log.Level,
		LogFormat: d.Log.Format,
	}
}

func initForm(a *initAnswers, exists bool) *huh.Form {
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title("Bot token").
				Description("Leave empty to read " + tokenRef + " at runtime.").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					return config.ValidateToken(s)
				}).
				Value(&a.Token),
			huh.NewInput().
				Title("Bot API URL").
				Value(&a.APIURL),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&a.LogLevel),
			huh.NewSelect[string]().
				Title("Log format").
				Options(huh.NewOptions("text", "json")...).
				Value(&a.LogFormat),
		),
	}
	if exists {
		groups = append(groups, huh.NewGroup(
			huh.NewConfirm().
				Title("A configuration file already exists. Overwrite it?").
				Value(&a.Overwrite),
		))
	}
	return huh.NewForm(groups...)
}

// config converts the answers to a configuration.
func (a initAnswers) config() *config.Config {
	cfg := config.Default()
	cfg.Telegram.Token = a.Token
	if cfg.Telegram.Token == "" {
		cfg.Telegram.Token = tokenRef
	}
	cfg.Telegram.APIURL = a.APIURL
	cfg.Log.Level = a.LogLevel
	cfg.Log.Format = a.LogFormat
	return cfg
}

func writeConfig(path string, cfg *config.Config) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("init: creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("init: writing %s: %w", path, err)
	}
	return nil
}

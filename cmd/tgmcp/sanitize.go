package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/flemzord/tgmcp/internal/sanitize"
	"github.com/spf13/cobra"
)

func sanitizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize [text]",
		Short: "Strip citation markers from text (reads stdin without an argument)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			s, err := sanitize.New(e.cfg.Sanitizer.Delimiters())
			if err != nil {
				return err
			}

			var text string
			if len(args) == 1 {
				text = args[0]
			} else {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				text = strings.TrimSuffix(string(raw), "\n")
			}

			fmt.Fprintln(cmd.OutOrStdout(), s.Strip(text))
			return nil
		},
	}
}

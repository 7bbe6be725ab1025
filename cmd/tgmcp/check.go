package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate configuration and call getMe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			tel, shutdown, err := e.setupTelemetry(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown()

			client, err := e.newClient(tel)
			if err != nil {
				return err
			}
			me, err := client.GetMe(cmd.Context())
			if err != nil {
				return fmt.Errorf("getMe: %w", err)
			}

			out := cmd.OutOrStdout()
			source := e.cfgPath
			if source == "" {
				source = "defaults"
			}
			fmt.Fprintf(out, "Configuration OK (%s)\n", source)
			fmt.Fprintf(out, "  bot: @%s (id %d)\n", me.Username, me.ID)
			fmt.Fprintf(out, "  api: %s\n", e.cfg.Telegram.APIURL)
			return nil
		},
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/flemzord/tgmcp/internal/botapi"
	"github.com/flemzord/tgmcp/internal/catalog"
	"github.com/flemzord/tgmcp/internal/dispatch"
	"github.com/flemzord/tgmcp/internal/sanitize"
	"github.com/spf13/cobra"
)

func callCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call <tool>",
		Short: "Dispatch a tool to the Bot API and print the result envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			rawArgs, _ := cmd.Flags().GetString("args")
			toolArgs, err := parseArgs(cmd, rawArgs)
			if err != nil {
				return err
			}

			cat, err := catalog.New()
			if err != nil {
				return err
			}
			if _, ok := cat.Lookup(name); !ok {
				e.logger.Warn("tool is not in the catalog, forwarding anyway", "tool", name)
			}

			if strict, _ := cmd.Flags().GetBool("strict"); strict {
				if _, err := botapi.Decode(name, toolArgs); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			tel, shutdown, err := e.setupTelemetry(ctx)
			if err != nil {
				return err
			}
			defer shutdown()

			client, err := e.newClient(tel)
			if err != nil {
				return err
			}
			s, err := sanitize.New(e.cfg.Sanitizer.Delimiters())
			if err != nil {
				return err
			}

			d := dispatch.New(client, dispatch.WithSanitizer(s), dispatch.WithLogger(e.logger))
			res, err := d.Dispatch(ctx, name, toolArgs)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), dispatch.ResultText(res))
			return nil
		},
	}
	cmd.Flags().String("args", "{}", `Tool arguments as a JSON object ("-" reads stdin)`)
	cmd.Flags().Bool("strict", false, "Reject arguments that do not match the typed request")
	return cmd
}

// parseArgs decodes a JSON object, keeping numbers exact so large chat ids
// survive the round trip.
func parseArgs(cmd *cobra.Command, raw string) (map[string]any, error) {
	data := []byte(raw)
	if raw == "-" {
		var err error
		if data, err = io.ReadAll(cmd.InOrStdin()); err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var args map[string]any
	if err := dec.Decode(&args); err != nil {
		return nil, fmt.Errorf("--args must be a JSON object: %w", err)
	}
	return args, nil
}

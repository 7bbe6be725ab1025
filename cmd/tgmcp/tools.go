package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/flemzord/tgmcp/internal/catalog"
	"github.com/spf13/cobra"
)

func toolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Inspect the tool catalog",
	}
	cmd.AddCommand(toolsListCmd(), toolsShowCmd())
	return cmd
}

func toolsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tool names and descriptions in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.New()
			if err != nil {
				return err
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				return writeJSON(cmd, cat.Tools())
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, d := range cat.Descriptors() {
				fmt.Fprintf(w, "%s\t%s\n", d.Name, firstSentence(d.Description))
			}
			return w.Flush()
		},
	}
	cmd.Flags().Bool("json", false, "Print the MCP tool descriptors as JSON")
	return cmd
}

func toolsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print the MCP descriptor of one tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.New()
			if err != nil {
				return err
			}
			tool, err := cat.Tool(args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, tool)
		},
	}
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// firstSentence shortens a description to its first sentence for tabular output.
func firstSentence(s string) string {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '.' && s[i+1] == ' ' {
			return s[:i+1]
		}
	}
	return s
}

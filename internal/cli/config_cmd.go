package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timepaisa/internal/cli/formatter"
	"github.com/alexanderramin/timepaisa/internal/config"
)

func newConfigCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or inspect the config file",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd(a))
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		path   string
		apiKey string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				p, err := config.DefaultFile()
				if err != nil {
					return err
				}
				path = p
			}
			cfg := config.Default()
			cfg.LLM.APIKey = apiKey
			if err := config.WriteFile(path, cfg, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", formatter.StyleGreen.Render("✔"), path)
			if apiKey == "" {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Set llm.api_key there or export GEMINI_API_KEY before running analyze."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Where to write the file (default $XDG_CONFIG_HOME/timepaisa/config.toml)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Gemini API key to store in the file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func newConfigShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Encode(a.Config.Masked())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Dim("# file: "+formatter.OrDash(a.Config.File)))
			fmt.Fprint(out, string(data))
			return nil
		},
	}
}

package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/morlowski/lumicon/internal/config"
	"github.com/morlowski/lumicon/internal/icon"
	"github.com/morlowski/lumicon/internal/watch"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the icon set",
	Long:  "Generate renders every configured icon size and writes the PNG files to the output directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		watchMode, _ := cmd.Flags().GetBool("watch")

		run := func() error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg.WithOverrides(flagOverrides(cmd))
			if err := cfg.Validate(); err != nil {
				return err
			}
			return generate(cmd, cfg)
		}

		if err := run(); err != nil {
			return err
		}
		if !watchMode {
			return nil
		}

		// Watch the config file and the font file; regenerate on change.
		configPath, _ := cmd.Root().PersistentFlags().GetString("config")
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg.WithOverrides(flagOverrides(cmd))
		watcher := watch.NewWatcher(
			[]string{configPath, cfg.Font},
			300*time.Millisecond,
			func() {
				log.Println("Change detected, regenerating...")
				if err := run(); err != nil {
					log.Printf("Regeneration failed: %v", err)
				}
			},
		)

		errCh := make(chan error, 1)
		go func() { errCh <- watcher.Start() }()

		fmt.Fprintln(cmd.OutOrStdout(), "Watching for changes (Ctrl+C to stop)...")

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case <-sig:
			watcher.Stop()
			return nil
		case err := <-errCh:
			return err
		}
	},
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "override output directory")
	generateCmd.Flags().String("font", "", "override font file path")
	generateCmd.Flags().String("glyph", "", "override icon glyph")
	generateCmd.Flags().Bool("watch", false, "regenerate when the config or font file changes")

	rootCmd.AddCommand(generateCmd)

	// Running lumicon with no arguments generates the icon set.
	rootCmd.RunE = generateCmd.RunE
}

// generate runs one batch and reports per-icon status plus a summary.
func generate(cmd *cobra.Command, cfg *config.Config) error {
	verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")

	renderer, err := icon.NewRenderer(cfg)
	if err != nil {
		return err
	}

	summary, err := renderer.Generate(icon.SpecsFromConfig(cfg.Icons))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, res := range summary.Results {
		if res.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", res.Err)
			continue
		}
		fmt.Fprintf(out, "Created %s\n", res.Spec.Filename)
		if verbose && res.Source == icon.FontBuiltin {
			fmt.Fprintf(out, "  (builtin font: %v)\n", res.FontErr)
		}
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d icons failed", summary.Failed, len(summary.Results))
	}
	fmt.Fprintln(out, "All icons created successfully!")
	return nil
}

// loadConfig resolves the configuration for a command invocation. A
// missing file at the default location falls back to built-in
// defaults; an explicitly flagged path must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Root().PersistentFlags().GetString("config")
	if _, err := os.Stat(configPath); err != nil {
		if cmd.Root().PersistentFlags().Changed("config") {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return config.Default(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// flagOverrides collects the generate flags the user actually set.
func flagOverrides(cmd *cobra.Command) map[string]any {
	overrides := map[string]any{}
	for _, name := range []string{"output", "font", "glyph"} {
		if cmd.Flags().Changed(name) {
			val, _ := cmd.Flags().GetString(name)
			overrides[name] = val
		}
	}
	return overrides
}

package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vanderheijden86/weavetour/pkg/config"
	"github.com/vanderheijden86/weavetour/pkg/debug"
	"github.com/vanderheijden86/weavetour/pkg/tutorial"
	"github.com/vanderheijden86/weavetour/pkg/ui"
	"github.com/vanderheijden86/weavetour/pkg/watcher"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	cfgFile string
	section string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "weavetour",
		Short: "Interactive Weave Evaluations tutorial",
		Long: `weavetour walks through building evaluations with W&B Weave, using the
OpenUI project as the running example. Run it without arguments for the
terminal tour, or use "weavetour serve" to follow along in a browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				debug.SetEnabled(true)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file path (default $XDG_CONFIG_HOME/weavetour/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging to stderr")
	cmd.Flags().StringVarP(&opts.section, "section", "s", "", "start at the section with this id")

	cmd.AddCommand(
		newServeCmd(opts),
		newConfigCmd(opts),
		newExportCmd(opts),
		newSectionsCmd(),
		newSnippetCmd(),
		newOpenCmd(),
		newVersionCmd(),
	)
	return cmd
}

// configPath is the file the flags point at, or the XDG default.
func (o *rootOptions) configPath() string {
	if o.cfgFile != "" {
		return o.cfgFile
	}
	return config.ConfigPath()
}

func (o *rootOptions) loadConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if o.cfgFile != "" {
		cfg, err = config.LoadFrom(o.cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runTUI(opts *rootOptions) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	if opts.section != "" {
		if _, ok := tutorial.DefaultStore().IndexOf(opts.section); !ok {
			return fmt.Errorf("unknown section %q (see \"weavetour sections\")", opts.section)
		}
		cfg.UI.StartSection = opts.section
	}

	uiOpts := ui.Options{
		Config:     cfg,
		ConfigPath: opts.configPath(),
	}
	if path := uiOpts.ConfigPath; path != "" {
		w, err := watcher.NewWatcher(path,
			watcher.WithOnError(func(err error) { debug.Log("config watcher: %v", err) }),
		)
		if err == nil {
			err = w.Start()
		}
		if err != nil {
			debug.Log("config hot reload disabled: %v", err)
		} else {
			defer w.Stop()
			uiOpts.Watcher = w
		}
	}

	return runTUIProgram(ui.NewModel(uiOpts))
}

func runTUIProgram(m ui.Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	// Optional auto-quit for automated runs: set WEAVETOUR_TUI_AUTOCLOSE_MS.
	if v := os.Getenv("WEAVETOUR_TUI_AUTOCLOSE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			go func() {
				timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
				defer timer.Stop()

				select {
				case <-runDone:
				case <-timer.C:
					p.Quit()
				}
			}()
		}
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running tutorial: %w", err)
	}
	return nil
}

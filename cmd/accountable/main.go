package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pvu/accountable/internal/api"
	"github.com/pvu/accountable/internal/app"
	"github.com/pvu/accountable/internal/live"
	"github.com/pvu/accountable/internal/model"
	"github.com/pvu/accountable/internal/notify"
	"github.com/pvu/accountable/internal/store"
	appsync "github.com/pvu/accountable/internal/sync"
	"github.com/pvu/accountable/internal/theme"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	serverURL  string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "accountable",
		Short:        "Terminal client for the personal accountability tracker",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	cmd.PersistentFlags().StringVar(
		&opts.configPath, "config", model.DefaultConfigPath(),
		"Path to the configuration file",
	)
	cmd.PersistentFlags().StringVar(
		&opts.serverURL, "server", "",
		"Backend base URL (overrides the configured one)",
	)

	cmd.AddCommand(newExportCmd(opts))
	cmd.AddCommand(newImportCmd(opts))

	return cmd
}

// loadClient resolves config and builds the API client shared by the
// TUI and the scriptable subcommands.
func loadClient(opts *options) (*model.AppConfig, *api.Client, error) {
	cfg, err := model.LoadConfig(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	if opts.serverURL != "" {
		cfg.Server.BaseURL = opts.serverURL
	}
	return cfg, api.NewClient(cfg.Server.BaseURL), nil
}

func runTUI(opts *options) error {
	cfg, client, err := loadClient(opts)
	if err != nil {
		return err
	}

	theme.Apply(cfg.Display.Theme)

	dbPath, err := store.DefaultDBPath()
	if err != nil {
		return err
	}
	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	gate := notify.NewGate(notify.NewDesktop(), cfg.Notifications.Paused)

	interval := time.Duration(cfg.Server.PollIntervalSec) * time.Second
	refresher := appsync.New(interval)
	listener := live.New(cfg.Server.BaseURL)

	m := app.New(cfg, opts.configPath, client, s, gate, refresher, listener)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newExportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Download a full backup to a JSON file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := loadClient(opts)
			if err != nil {
				return err
			}

			path := "accountability_export_" + time.Now().Format("2006-01-02") + ".json"
			if len(args) == 1 {
				path = args[0]
			}

			if err := client.ExportToFile(context.Background(), path); err != nil {
				return err
			}
			fmt.Println("Exported to", path)
			return nil
		},
	}
}

func newImportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore a previously exported JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := loadClient(opts)
			if err != nil {
				return err
			}

			result, err := client.ImportFromFile(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(result.Message)
			return nil
		},
	}
}

package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pinwin/pinwin/internal/config"
	"github.com/pinwin/pinwin/internal/pin"
	"github.com/pinwin/pinwin/internal/platform"
	"github.com/pinwin/pinwin/internal/tray"
)

var trayCmd = &cobra.Command{
	Use:   "tray",
	Short: "Run the tray icon with menu and global hotkey",
	Long: `Run pinwin as a notification-area icon. The menu lists pinnable
windows with a checkmark per pinned one, and the global hotkey toggles
the focused window. Windows pinned from the tray are released on exit.`,
	RunE: runTray,
}

func init() {
	rootCmd.AddCommand(trayCmd)
	trayCmd.Flags().String("config", "", "Config file path (default: "+config.DefaultPath()+")")
}

func runTray(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	return tray.Run(tray.Options{
		Config:     cfg,
		ConfigPath: path,
		Controller: pin.NewController(provider.Reader, provider.ZOrderer),
		Reader:     provider.Reader,
		Logger:     slog.Default(),
	})
}

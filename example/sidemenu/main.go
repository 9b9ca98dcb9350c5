// SPDX-License-Identifier: Unlicense OR MIT

// Command sidemenu demonstrates the side menu. Settings are read from
// a YAML file and applied again whenever the file changes.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/spf13/cobra"
)

var (
	BuildVersion = "devel"
	cfgFile      string
	rootCmd      = &cobra.Command{
		Use:   "sidemenu",
		Short: "Side menu demo",
		Long:  "sidemenu - A slide-out drawer revealed by swiping from the screen edge",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run:   version,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file path (default $XDG_CONFIG_HOME/sidemenu/config.yaml)")
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("sidemenu %s (%s)\n", BuildVersion, runtime.Version())
}

func run(_ *cobra.Command, _ []string) error {
	file := cfgFile
	if file == "" {
		p, err := configPath()
		if err != nil {
			return errors.Join(err, errApp)
		}
		file = p
	}
	changes := make(chan Settings)
	loader := NewLoader(file, changes)
	settings, err := loader.Read()
	if err != nil {
		return errors.Join(err, errApp)
	}
	initLogger(settings.Debug)

	w := new(app.Window)
	w.Option(app.Title("Side menu"), app.Size(unit.Dp(400), unit.Dp(800)))
	ui, err := NewUI(settings, 400)
	if err != nil {
		return errors.Join(err, errApp)
	}
	slog.Info("Starting sidemenu", slog.String("version", BuildVersion),
		slog.String("config", file))

	reloads := make(chan Settings, 1)
	go forwardReloads(w, changes, reloads)
	loader.Watch()

	go func() {
		if err := ui.Run(w, reloads); err != nil {
			slog.Error("Window closed with error", slog.String("error", err.Error()))
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

// forwardReloads passes the latest settings to the window and wakes it
// up. Settings not yet picked up are replaced.
func forwardReloads(w *app.Window, changes <-chan Settings, reloads chan Settings) {
	for s := range changes {
		select {
		case <-reloads:
		default:
		}
		reloads <- s
		w.Invalidate()
	}
}

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

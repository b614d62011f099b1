// hyprspace is a terminal launcher for Hyprland workspace layout
// scripts. Running it without arguments opens the selector; picking a
// script executes it, picking the create entry starts the wizard.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lvim-tech/hyprspace/pkg/config"
	"github.com/lvim-tech/hyprspace/pkg/launch"
	"github.com/lvim-tech/hyprspace/pkg/tui"
	"github.com/lvim-tech/hyprspace/pkg/utils"
	"github.com/lvim-tech/hyprspace/pkg/workspace"
)

const version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hyprspace",
		Short: "Terminal launcher for Hyprland workspace layout scripts",
		Long: "hyprspace lists the workspace layout scripts saved in your scripts\n" +
			"directory, lets you pick one and execute it, or walks you through\n" +
			"creating a new one from window rules.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelector()
		},
	}

	root.AddCommand(initCmd(), listCmd(), versionCmd())
	return root
}

// runSelector drives the main loop: list scripts, show the selector,
// launch the chosen script, and come back to the selector when the
// child exits. Only an inaccessible scripts directory is fatal.
func runSelector() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dir := cfg.ScriptsDirExpanded()
	if err := utils.EnsureDir(dir); err != nil {
		return fmt.Errorf("cannot access scripts directory %s: %w", dir, err)
	}

	status := ""
	for {
		entries, err := workspace.List(dir)
		if err != nil {
			// Degraded listing: show the error, keep the interface alive.
			status = err.Error()
			entries = nil
		}

		res, err := tui.Run(cfg, dir, entries, status)
		if err != nil {
			return fmt.Errorf("terminal interface failed: %w", err)
		}
		status = ""

		if res.Action != tui.ActionLaunch {
			return nil
		}

		// The alt screen is restored at this point, the child owns
		// the terminal until it exits.
		fmt.Printf("Launching: %s\n", res.Entry.FileName)
		fmt.Printf("Path: %s\n\n", res.Entry.Path)

		if err := launch.Run(res.Entry.Path); err != nil {
			utils.ShowErrorNotificationWithConfig(&cfg.Notifications, "Hyprspace", err.Error())
			status = err.Error()
		}
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize user config (~/.config/hyprspace/config.toml)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitUserConfig(); err != nil {
				return err
			}

			fmt.Printf("Config initialized at: %s\n", config.GetUserConfigPath())
			fmt.Println("\nYou can now edit the config file to customize hyprspace.")
			fmt.Println("Run 'hyprspace' to start using it!")
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print saved workspace scripts without opening the selector",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			dir := cfg.ScriptsDirExpanded()
			entries, err := workspace.List(dir)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Printf("No workspace scripts found in %s\n", dir)
				return nil
			}

			for _, e := range entries {
				fmt.Printf("%s\tws %s\t%s\n", e.Name, e.Label(), e.Path)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("hyprspace version %s\n", version)
		},
	}
}

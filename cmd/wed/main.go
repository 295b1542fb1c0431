package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/fx"

	"github.com/matheus3301/wed/internal/app"
	"github.com/matheus3301/wed/internal/paths"
)

func main() {
	configFlag := flag.String("config", "", "config file (default ~/.wed/config.toml)")
	menuFlag := flag.String("menu", "", "menu definition file (overrides config menu_file)")
	levelFlag := flag.String("log-level", "", "log level: debug, info, warn, error (overrides config)")
	flag.Parse()

	if err := paths.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	editor := fx.New(
		app.Module(app.Params{
			ConfigPath: *configFlag,
			MenuFile:   *menuFlag,
			LogLevel:   *levelFlag,
		}),
	)
	if err := editor.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	editor.Run()
}

// Command lintconfig resolves the effective configuration for one or more
// source files, the way a linting host would just before checking them,
// and prints each result as JSON.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	di "github.com/0xalexb/lintconfig"
	"github.com/0xalexb/lintconfig/config"
	"github.com/0xalexb/lintconfig/configfactory"
	"github.com/0xalexb/lintconfig/configfactory/fsresolve"

	"go.uber.org/fx"
)

// settingsFileName is the conventional bootstrap-settings file a project
// may place at its root; its absence just means the CLI runs on defaults.
const settingsFileName = ".lintconfig.yaml"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: lintconfig <file> [file...]")
		os.Exit(2)
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lintconfig: %v\n", err)
		os.Exit(1)
	}

	settings, err := loadSettings(filepath.Join(cwd, settingsFileName))
	if err != nil {
		fmt.Fprintf(os.Stderr, "lintconfig: %v\n", err)
		os.Exit(1)
	}

	if settings.CWD != "." {
		cwd = settings.CWD
	}

	var exitCode int

	resolveModule := fx.Module("resolve",
		fx.Invoke(func(factory *configfactory.Factory, logger *slog.Logger) {
			exitCode = resolveAll(factory, logger, os.Args[1:])
		}),
	)

	app := di.NewApp(
		di.WithLogLevel(settings.LogLevel),
		di.WithConfigFactory(
			configfactory.WithCWD(cwd),
			configfactory.WithResolver(fsresolve.New(cwd)),
			configfactory.WithMaxProbeDirs(settings.MaxProbeDirs),
		),
		di.WithModules(resolveModule),
	)

	if err := app.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "lintconfig: %v\n", err)
		os.Exit(1)
	}

	defer func() { _ = app.Stop() }()

	os.Exit(exitCode)
}

// loadSettings reads the CLI's bootstrap settings from path, falling back
// to config.Default() when the file simply isn't there.
func loadSettings(path string) (*config.Settings, error) {
	settings, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.Default(), nil
		}

		return nil, err
	}

	return settings, nil
}

func resolveAll(factory *configfactory.Factory, logger *slog.Logger, paths []string) int {
	exitCode := 0

	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			logger.Error("resolving absolute path", slog.String("path", path), slog.Any("error", err))

			exitCode = 1

			continue
		}

		array, err := factory.Resolve(abs)
		if err != nil {
			logger.Error("resolving configuration", slog.String("path", abs), slog.Any("error", err))

			exitCode = 1

			continue
		}

		if array == nil {
			logger.Warn("no configuration found", slog.String("path", abs))

			continue
		}

		extracted, err := array.ExtractConfig(abs)
		if err != nil {
			logger.Error("extracting configuration", slog.String("path", abs), slog.Any("error", err))

			exitCode = 1

			continue
		}

		encoded, err := json.MarshalIndent(extracted, "", "  ")
		if err != nil {
			logger.Error("encoding configuration", slog.String("path", abs), slog.Any("error", err))

			exitCode = 1

			continue
		}

		fmt.Printf("%s:\n%s\n", abs, encoded)
	}

	return exitCode
}

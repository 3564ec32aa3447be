// SPDX-FileCopyrightText: 2026 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/linuxdeepin/dde-xbanish/common/modmask"
	xbanish "github.com/linuxdeepin/dde-xbanish/xbanish1"
	"github.com/linuxdeepin/go-lib/log"
	"github.com/linuxdeepin/go-lib/utils"
	"github.com/spf13/cobra"
)

// Version is set during build
var Version = "0.1.0-dev"

var logger = log.NewLogger("dde-xbanish")

type options struct {
	ignoreMods []string
	logLevel   string
	verbose    bool
	configFile string
	dbus       bool
}

var _options options

var rootCmd = &cobra.Command{
	Use:   "dde-xbanish",
	Short: "Hide the mouse pointer while typing",
	Long: `dde-xbanish hides the X11 mouse pointer as soon as a key is released and
shows it again when the mouse moves or a button is pressed.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		_, err := modmask.ParseAll(_options.ignoreMods)
		if err != nil {
			return fmt.Errorf("invalid --ignore-mod: %w", err)
		}
		_, err = toLogLevel(_options.logLevel)
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(_options.configFile)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		opts, logLevel, err := mergeOptions(&_options, cfg,
			flags.Changed("ignore-mod"), flags.Changed("loglevel"))
		if err != nil {
			return err
		}

		if _options.logLevel == "" && !_options.verbose &&
			(utils.IsEnvExists(log.DebugLevelEnv) || utils.IsEnvExists(log.DebugMatchEnv)) {
			logger.Info("Log level is none and debug env exists, so do not call SetLogLevel")
		} else {
			logger.SetLogLevel(logLevel)
			xbanish.SetLogLevel(logLevel)
		}

		return xbanish.Run(opts)
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	flags := rootCmd.Flags()
	flags.StringArrayVarP(&_options.ignoreMods, "ignore-mod", "i", nil,
		"Keep the pointer visible when this modifier is held, one of "+
			strings.Join(modmask.Names(), "/")+". May be repeated.")
	flags.StringVarP(&_options.logLevel, "loglevel", "l", "",
		"Set log level, possible value is error/warn/info/debug/no, info is default")
	flags.BoolVarP(&_options.verbose, "verbose", "v", false,
		"Show much more message, shorthand for --loglevel debug.")
	flags.StringVarP(&_options.configFile, "config", "c", "",
		"Config file, default is "+xbanish.DefaultConfigFile())
	flags.BoolVar(&_options.dbus, "dbus", false,
		"Export the pointer state on the session bus.")
}

func toLogLevel(name string) (log.Priority, error) {
	name = strings.ToLower(name)
	logLevel := log.LevelInfo
	var err error
	switch name {
	case "":
		logLevel = log.LevelInfo
	case "error":
		logLevel = log.LevelError
	case "warn":
		logLevel = log.LevelWarning
	case "info":
		logLevel = log.LevelInfo
	case "debug":
		logLevel = log.LevelDebug
	case "no":
		logLevel = log.LevelDisable
	default:
		err = fmt.Errorf("%s is not support", name)
	}

	return logLevel, err
}

// loadConfig reads filename, or the default config file when it is empty.
// Only the default file may be missing.
func loadConfig(filename string) (*xbanish.Config, error) {
	if filename == "" {
		return xbanish.LoadConfig(xbanish.DefaultConfigFile(), true)
	}
	return xbanish.LoadConfig(filename, false)
}

// mergeOptions applies the command line on top of cfg. Repeated -i flags
// replace the modifiers of the config file, they are not added to them.
func mergeOptions(opts *options, cfg *xbanish.Config, ignoreSet, logLevelSet bool) (xbanish.Options, log.Priority, error) {
	var result xbanish.Options

	mods := cfg.IgnoreMods
	if ignoreSet {
		mods = opts.ignoreMods
	}
	mask, err := modmask.ParseAll(mods)
	if err != nil {
		return result, log.LevelInfo, err
	}
	result.Ignored = mask
	result.DBus = cfg.DBus || opts.dbus

	levelName := cfg.LogLevel
	if logLevelSet {
		levelName = opts.logLevel
	}
	if opts.verbose {
		levelName = "debug"
	}
	logLevel, err := toLogLevel(levelName)
	if err != nil {
		return result, log.LevelInfo, fmt.Errorf("failed to parse loglevel: %w", err)
	}
	return result, logLevel, nil
}

func main() {
	logger.SetLogLevel(log.LevelInfo)
	err := rootCmd.Execute()
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

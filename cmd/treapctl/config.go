// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The treapkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/treapkit/treap/internal/log"
	"github.com/treapkit/treap/internal/version"
)

const (
	defaultLogLevel    = "info"
	defaultLogFilename = "treapctl.log"
	defaultWorkers     = 4
	defaultDump        = dumpTree
)

// Supported values of the dump option.
const (
	dumpTree = "tree"
	dumpSpew = "spew"
	dumpNone = "none"
)

// config defines the configuration options for treapctl.
//
// See loadConfig for details on the configuration load process.
type config struct {
	InFile      string `short:"i" long:"infile" description:"File containing one integer per line to load into the treap"`
	Add         []int  `short:"a" long:"add" description:"Integer to add after loading -- may be repeated"`
	Remove      []int  `short:"r" long:"remove" description:"Integer to remove after loading and adding -- may be repeated"`
	Random      int    `long:"random" description:"Number of random integers to add"`
	Seed        int64  `long:"seed" description:"Seed for the random integers -- Use 0 to seed from the current time"`
	Workers     int    `short:"w" long:"workers" description:"Number of goroutines used to walk the treap in parallel -- Use 0 to skip the parallel walk"`
	Dump        string `long:"dump" description:"How to print the treap structure" choice:"tree" choice:"spew" choice:"none"`
	LogDir      string `long:"logdir" description:"Directory to write a rotated log file to in addition to stdout"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// loadConfig initializes and parses the config using command line options.
// Remaining positional arguments are returned so they can be added as values.
func loadConfig() (*config, []string, error) {
	// Default config.
	cfg := config{
		Workers:    defaultWorkers,
		Dump:       defaultDump,
		DebugLevel: defaultLogLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] [value ...]"
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version.String())
		os.Exit(0)
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", log.SupportedSubsystems())
		os.Exit(0)
	}

	funcName := "loadConfig"
	if err := log.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("%s: %v", funcName, err.Error())
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	if cfg.InFile != "" && !fileExists(cfg.InFile) {
		str := "%s: the specified input file [%v] does not exist"
		err := fmt.Errorf(str, funcName, cfg.InFile)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	if cfg.Random < 0 {
		str := "%s: the number of random values may not be negative " +
			"-- parsed [%d]"
		err := fmt.Errorf(str, funcName, cfg.Random)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	if cfg.Workers < 0 {
		str := "%s: the number of workers may not be negative " +
			"-- parsed [%d]"
		err := fmt.Errorf(str, funcName, cfg.Workers)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	if cfg.LogDir != "" {
		cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := log.InitLogRotator(logFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return nil, nil, err
		}
	}

	return &cfg, remainingArgs, nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			path = strings.Replace(path, "~", homeDir, 1)
		}
	}

	return filepath.Clean(os.ExpandEnv(path))
}

// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The treapkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/treapkit/treap"
	"github.com/treapkit/treap/internal/log"
)

// readValues parses one integer per line from r.  Blank lines and lines
// starting with # are skipped.
func readValues(r io.Reader) ([]int, error) {
	var values []int
	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// parseArgs parses the positional arguments as integers.
func parseArgs(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", arg, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// buildTreap creates the treap described by the configuration: the input
// file, positional values, random values and explicit additions are added in
// that order, then the explicit removals are applied.
func buildTreap(cfg *config, args []string) (*treap.Treap[int], error) {
	t := treap.New[int]()

	if cfg.InFile != "" {
		fi, err := os.Open(cfg.InFile)
		if err != nil {
			return nil, err
		}
		values, err := readValues(fi)
		fi.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.InFile, err)
		}
		t.AddAll(values...)
		log.CtlLog.Infof("Loaded %d values from %s", len(values),
			cfg.InFile)
	}

	values, err := parseArgs(args)
	if err != nil {
		return nil, err
	}
	t.AddAll(values...)

	if cfg.Random > 0 {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		for i := 0; i < cfg.Random; i++ {
			t.Add(rng.Int())
		}
		log.CtlLog.Debugf("Added %d random values with seed %d",
			cfg.Random, seed)
	}

	for _, v := range cfg.Add {
		if added, _ := t.Add(v); !added {
			log.CtlLog.Warnf("Value %d is already present", v)
		}
	}
	for _, v := range cfg.Remove {
		if removed, _ := t.Remove(v); !removed {
			log.CtlLog.Warnf("Value %d is not present", v)
		}
	}

	return t, nil
}

// report writes the treap statistics and, depending on the dump mode, its
// structure to w.
func report(w io.Writer, t *treap.Treap[int], dump string) error {
	_, err := fmt.Fprintf(w, "items: %d\nmax depth: %d\nmin depth: %d\n",
		t.Len(), t.MaxDepth(), t.MinDepth())
	if err != nil {
		return err
	}

	switch dump {
	case dumpTree:
		return t.Dump(w)

	case dumpSpew:
		spew.Fdump(w, t.ToSlice())
	}
	return nil
}

// walk sums the values of the treap on the configured number of goroutines
// and logs the result.
func walk(ctx context.Context, t *treap.Treap[int], workers int) (int64, error) {
	var sum, count atomic.Int64
	start := time.Now()
	err := t.ParallelForEach(ctx, workers, func(v int) error {
		sum.Add(int64(v))
		count.Add(1)
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.CtlLog.Infof("Walked %d values on %d workers in %v", count.Load(),
		workers, time.Since(start))
	return sum.Load(), nil
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	// Load configuration and parse command line.
	cfg, args, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() {
		if log.LogRotator != nil {
			log.LogRotator.Close()
		}
	}()

	t, err := buildTreap(cfg, args)
	if err != nil {
		log.CtlLog.Errorf("Failed to build treap: %v", err)
		return err
	}

	if err := report(os.Stdout, t, cfg.Dump); err != nil {
		return err
	}

	if cfg.Workers > 0 {
		sum, err := walk(context.Background(), t, cfg.Workers)
		if err != nil {
			log.CtlLog.Errorf("Parallel walk failed: %v", err)
			return err
		}
		fmt.Printf("sum: %d\n", sum)
	}
	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}

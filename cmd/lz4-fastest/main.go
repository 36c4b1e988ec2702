// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

// lz4-fastest prints the LZ4 backend tier the current process would use.
//
// By default it runs the same resolution as lz4.Fastest and prints the tier
// name (native, unsafe or safe) on stdout. With --all every tier is resolved
// and certified separately, one "tier: ok" or "tier: error" line each.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/pflag"

	"github.com/woozymasta/lz4"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

// usageError is a command-line mistake. It exits with status 2.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }
func (e *usageError) ExitCode() int { return 2 }

func usage(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

type config struct {
	noNative bool
	all      bool
	verbose  bool
}

func run(args []string, stdout, stderr io.Writer) error {
	var cfg config

	flagSet := pflag.NewFlagSet("lz4-fastest", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.BoolVar(&cfg.noNative, "no-native", false, "do not load the native engine")
	flagSet.BoolVar(&cfg.all, "all", false, "certify every tier and print one line per tier")
	flagSet.BoolVarP(&cfg.verbose, "verbose", "v", false, "log resolution steps and describe the CPU on stderr")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stdout, flagSet)
			return nil
		}
		return usage("%w", err)
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)
		return nil
	}

	if rest := flagSet.Args(); len(rest) > 0 {
		return usage("unexpected argument: %s", rest[0])
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cfg.verbose {
		describeCPU(logger)
	}

	if cfg.all {
		return certifyAll(stdout, logger, cfg)
	}

	factory, err := lz4.FastestWithOptions(&lz4.ResolveOptions{
		AllowNativeLoad: !cfg.noNative,
		Logger:          logger,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, factory.Tier())
	return nil
}

// certifyAll resolves each tier on its own. It fails only if the safe tier fails.
func certifyAll(stdout io.Writer, logger *slog.Logger, cfg config) error {
	registry := lz4.DefaultRegistry()

	var safeErr error
	for _, tier := range lz4.Tiers() {
		if tier == lz4.TierNative && cfg.noNative {
			fmt.Fprintf(stdout, "%s: skipped\n", tier)
			continue
		}

		_, err := registry.Resolve(tier)
		if err != nil {
			logger.Debug("lz4 backend rejected", "tier", tier, "error", err)
			fmt.Fprintf(stdout, "%s: error\n", tier)
			if tier == lz4.TierSafe {
				safeErr = err
			}
			continue
		}

		fmt.Fprintf(stdout, "%s: ok\n", tier)
	}

	return safeErr
}

func describeCPU(logger *slog.Logger) {
	logger.Debug("cpu",
		"arch", runtime.GOARCH,
		"brand", strings.TrimSpace(cpuid.CPU.BrandName),
		"vendor", cpuid.CPU.VendorString,
		"logical_cores", cpuid.CPU.LogicalCores,
		"features", strings.Join(cpuid.CPU.FeatureSet(), ","),
	)
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `lz4-fastest reports which LZ4 backend tier this machine uses.

Tiers are tried in the order native, unsafe, safe. The first tier that
loads and passes its self-test is printed.

Environment:
  %s=1   make the native tier unavailable
  %s=1   make the unsafe tier unavailable

Usage:
  lz4-fastest [flags]

Flags:
`, lz4.DisableNativeEnvVar, lz4.DisableUnsafeEnvVar)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}

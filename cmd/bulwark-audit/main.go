// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bulwark-project/bulwark/lib/audit"
	"github.com/bulwark-project/bulwark/lib/codec"
	"github.com/bulwark-project/bulwark/lib/fileguard"
	"github.com/bulwark-project/bulwark/lib/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Handle --version before anything else.
	for _, argument := range os.Args[1:] {
		if argument == "--version" {
			fmt.Printf("bulwark-audit %s\n", version.Info())
			return 0
		}
	}

	if len(os.Args) < 2 {
		printUsage()
		return 2
	}

	switch os.Args[1] {
	case "verify":
		return runVerify(os.Args[2:])
	case "dump":
		return runDump(os.Args[2:])
	case "-h", "--help", "help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		printUsage()
		return 2
	}
}

// trailFlags are the acquisition flags shared by both subcommands.
type trailFlags struct {
	policy   string
	policies string
	verbose  bool
}

func (f *trailFlags) register(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.policy, "policy", "default", "named acquisition policy for opening the trail")
	flagSet.StringVar(&f.policies, "policies", "", "extra policy file to load before resolving --policy")
	flagSet.BoolVarP(&f.verbose, "verbose", "v", false, "log acquisition steps")
}

// newLogger creates the command logger. A terminal gets text output;
// a pipe gets JSON records.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}

// openTrail resolves the acquisition policy and opens the trail
// read-only under it.
func openTrail(path string, flags trailFlags, logger *slog.Logger) (*fileguard.File, error) {
	loader := fileguard.NewPolicyLoader()
	if flags.verbose {
		loader.SetLogger(logger)
	}
	if err := loader.LoadDefaults(); err != nil {
		return nil, err
	}
	if flags.policies != "" {
		if err := loader.LoadFile(flags.policies); err != nil {
			return nil, err
		}
	}
	options, err := loader.Resolve(flags.policy)
	if err != nil {
		return nil, err
	}
	logger.Debug("acquisition policy resolved", "policy", flags.policy,
		"follow_symlinks", options.FollowSymlinks, "require_regular_file", options.RequireRegularFile)

	return fileguard.Open(path, os.O_RDONLY, &options)
}

func runVerify(args []string) int {
	var flags trailFlags
	var jsonOutput bool
	var quiet bool

	flagSet := pflag.NewFlagSet("bulwark-audit verify", pflag.ContinueOnError)
	flags.register(flagSet)
	flagSet.BoolVar(&jsonOutput, "json", false, "output the result as JSON")
	flagSet.BoolVarP(&quiet, "quiet", "q", false, "suppress output; the exit code carries the result")
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if flagSet.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "error: verify takes exactly one trail path\n")
		printUsage()
		return 2
	}
	path := flagSet.Arg(0)
	logger := newLogger(flags.verbose)

	file, err := openTrail(path, flags, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	defer file.Close()

	count, verifyErr := audit.Verify(file)

	if jsonOutput {
		result := struct {
			Trail   string `json:"trail"`
			Records int    `json:"records"`
			Intact  bool   `json:"intact"`
			Error   string `json:"error,omitempty"`
		}{Trail: path, Records: count, Intact: verifyErr == nil}
		if verifyErr != nil {
			result.Error = verifyErr.Error()
		}
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
		fmt.Println(string(encoded))
	} else if !quiet {
		if verifyErr == nil {
			fmt.Printf("trail intact: %d records\n", count)
		} else {
			fmt.Fprintf(os.Stderr, "trail broken after %d intact records: %v\n", count, verifyErr)
		}
	}

	if verifyErr != nil {
		return 1
	}
	return 0
}

func runDump(args []string) int {
	var flags trailFlags
	var jsonOutput bool
	var diagnostic bool

	flagSet := pflag.NewFlagSet("bulwark-audit dump", pflag.ContinueOnError)
	flags.register(flagSet)
	flagSet.BoolVar(&jsonOutput, "json", false, "one JSON object per record")
	flagSet.BoolVar(&diagnostic, "diag", false, "CBOR diagnostic notation per record")
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if flagSet.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "error: dump takes exactly one trail path\n")
		printUsage()
		return 2
	}
	if jsonOutput && diagnostic {
		fmt.Fprintf(os.Stderr, "error: --json and --diag are mutually exclusive\n")
		return 2
	}
	path := flagSet.Arg(0)
	logger := newLogger(flags.verbose)

	file, err := openTrail(path, flags, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	defer file.Close()

	switch {
	case jsonOutput:
		err = dumpJSON(file, os.Stdout)
	case diagnostic:
		err = dumpDiagnostic(file, os.Stdout)
	default:
		_, err = audit.Dump(file, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	return 0
}

// jsonRecord is the dump --json rendering of one trail record.
type jsonRecord struct {
	Seq     uint64 `json:"seq"`
	Time    string `json:"time"`
	Code    string `json:"code"`
	Site    string `json:"site,omitempty"`
	Message string `json:"message"`
	Prev    string `json:"prev"`
}

func dumpJSON(source io.Reader, destination io.Writer) error {
	reader := audit.NewReader(source)
	encoder := json.NewEncoder(destination)
	for {
		record, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		rendered := jsonRecord{
			Seq:     record.Seq,
			Time:    time.Unix(0, record.Time).UTC().Format(time.RFC3339Nano),
			Code:    record.Code.String(),
			Site:    record.Site,
			Message: record.Message,
			Prev:    hex.EncodeToString(record.Prev),
		}
		if err := encoder.Encode(rendered); err != nil {
			return err
		}
	}
}

func dumpDiagnostic(source io.Reader, destination io.Writer) error {
	reader := audit.NewReader(source)
	for {
		_, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		notation, err := codec.Diagnose(reader.Frame())
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(destination, notation); err != nil {
			return err
		}
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "\nusage: bulwark-audit <command> [flags] TRAIL\n")
	fmt.Fprintf(os.Stderr, "\ncommands:\n")
	fmt.Fprintf(os.Stderr, "  verify   check the trail's digest chain and sequence numbering\n")
	fmt.Fprintf(os.Stderr, "  dump     render the trail's records, one per line\n")
	fmt.Fprintf(os.Stderr, "\ncommon flags:\n")
	fmt.Fprintf(os.Stderr, "  --policy NAME     acquisition policy for opening the trail (default \"default\")\n")
	fmt.Fprintf(os.Stderr, "  --policies FILE   extra policy file to load\n")
	fmt.Fprintf(os.Stderr, "  -v, --verbose     log acquisition steps\n")
	fmt.Fprintf(os.Stderr, "\nverify flags:\n")
	fmt.Fprintf(os.Stderr, "  --json            output the result as JSON\n")
	fmt.Fprintf(os.Stderr, "  -q, --quiet       suppress output; the exit code carries the result\n")
	fmt.Fprintf(os.Stderr, "\ndump flags:\n")
	fmt.Fprintf(os.Stderr, "  --json            one JSON object per record\n")
	fmt.Fprintf(os.Stderr, "  --diag            CBOR diagnostic notation per record\n")
}

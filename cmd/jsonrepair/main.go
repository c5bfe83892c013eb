// Copyright (c) 2023 Tailscale Inc & AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command jsonrepair repairs malformed or LLM-produced JSON-like text read
// from a file or stdin into strictly valid, canonically re-serialized
// JSON.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/repairjson/jsonrepair"
)

var (
	flagInline         bool
	flagOutput         string
	flagEnsureASCII    bool
	flagIndent         int
	flagSkipValidation bool
	flagVerbose        bool
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: jsonrepair [flags] [filename]\n\n")
	pflag.PrintDefaults()
}

func main() {
	pflag.BoolVarP(&flagInline, "inline", "i", false, "write the repaired output back to filename instead of stdout")
	pflag.StringVarP(&flagOutput, "output", "o", "", "write the repaired output to this path instead of stdout")
	pflag.BoolVar(&flagEnsureASCII, "ensure-ascii", false, "escape all non-ASCII characters in string literals")
	pflag.IntVar(&flagIndent, "indent", 2, "number of spaces to indent the output; 0 for compact output")
	pflag.BoolVar(&flagSkipValidation, "skip-validation", false, "skip the final strict validation of the repaired output")
	pflag.BoolVarP(&flagVerbose, "verbose", "v", false, "log repair steps to stderr")
	pflag.Usage = usage
	pflag.Parse()

	if err := mainE(); err != nil {
		fmt.Fprintln(os.Stderr, "jsonrepair:", err)
		os.Exit(1)
	}
}

func mainE() error {
	logLevel := slog.LevelWarn
	if flagVerbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	if flagInline && flagOutput != "" {
		return fmt.Errorf("%w: --inline and --output are mutually exclusive", jsonrepair.ErrInvalidConfiguration)
	}

	filename := pflag.Arg(0)
	if flagInline && filename == "" {
		return fmt.Errorf("%w: --inline requires a filename argument", jsonrepair.ErrInvalidConfiguration)
	}

	input, err := readInput(filename)
	if err != nil {
		return err
	}
	logger.Debug("read input", "filename", filename, "bytes", len(input))

	opts := jsonrepair.Options{
		SkipValidation: flagSkipValidation,
		EnsureASCII:    flagEnsureASCII,
		Indent:         flagIndent,
	}
	repaired, err := jsonrepair.Repair(string(input), opts)
	if err != nil {
		return err
	}
	logger.Debug("repaired input", "bytes", len(repaired))

	output := []byte(repaired)
	if flagIndent > 0 {
		var buf bytes.Buffer
		indentStr := ""
		for i := 0; i < flagIndent; i++ {
			indentStr += " "
		}
		if err := json.Indent(&buf, output, "", indentStr); err != nil {
			return fmt.Errorf("%w: %s", jsonrepair.ErrUnrepairable, err)
		}
		output = buf.Bytes()
	}
	output = append(output, '\n')

	switch {
	case flagInline:
		return os.WriteFile(filename, output, 0o644)
	case flagOutput != "":
		return os.WriteFile(flagOutput, output, 0o644)
	default:
		_, err := os.Stdout.Write(output)
		return err
	}
}

func readInput(filename string) ([]byte, error) {
	if filename == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", jsonrepair.ErrIO, err)
		}
		return data, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", jsonrepair.ErrIO, err)
	}
	return data, nil
}

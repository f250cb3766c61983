package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	minami "github.com/edwellbrook/minami"
)

// Sentinel errors for the CLI surface.
var (
	ErrNoDump    = errors.New("no doclet dump specified (use --dump)")
	ErrReadDump  = errors.New("failed to read doclet dump")
	ErrParseDump = errors.New("failed to parse doclet dump")
	ErrReadme    = errors.New("failed to read readme")
)

// run loads inputs and drives one publish pass.
func run(flags *cliFlags, logger *slog.Logger) error {
	opts, err := resolveOptions(flags)
	if err != nil {
		return err
	}

	doclets, err := readDump(flags.dump)
	if err != nil {
		return err
	}

	tutorials, err := loadTutorials(flags.tutorials)
	if err != nil {
		return err
	}

	pub, err := minami.New(opts, minami.WithLogger(logger))
	if err != nil {
		return err
	}
	return pub.Publish(context.Background(), minami.NewCollection(doclets), tutorials)
}

// resolveOptions merges the conf file with flag overrides. Flags win.
func resolveOptions(flags *cliFlags) (minami.Options, error) {
	var opts minami.Options
	if flags.conf != "" {
		conf, err := minami.LoadConf(flags.conf)
		if err != nil {
			return opts, err
		}
		opts = conf.Options()
	}

	if flags.dest != "" {
		opts.Destination = flags.dest
	}

	readmePath := flags.readme
	if readmePath == "" {
		readmePath = opts.Readme
		opts.Readme = ""
	}
	if readmePath != "" {
		content, err := os.ReadFile(readmePath) // #nosec G304 -- operator-supplied path
		if err != nil {
			return opts, fmt.Errorf("%w: %v", ErrReadme, err)
		}
		opts.Readme = string(content)
	}

	return opts, nil
}

// readDump decodes the host's doclet dump: a JSON array of records.
// "-" reads from stdin.
func readDump(path string) ([]*minami.Doclet, error) {
	if path == "" {
		return nil, ErrNoDump
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path) // #nosec G304 -- operator-supplied path
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadDump, err)
	}

	var doclets []*minami.Doclet
	if err := json.Unmarshal(data, &doclets); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseDump, err)
	}
	return doclets, nil
}

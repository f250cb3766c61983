package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every command-line option.
type cliFlags struct {
	conf      string
	dump      string
	dest      string
	readme    string
	tutorials string
	verbose   bool
	version   bool
}

// parseFlags parses args (including the program name at args[0]).
func parseFlags(args []string) (*cliFlags, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.StringVarP(&flags.conf, "conf", "c", "", "YAML configuration file")
	fs.StringVarP(&flags.dump, "dump", "i", "", "doclet dump file (JSON array), or - for stdin")
	fs.StringVarP(&flags.dest, "dest", "d", "", "output directory (overrides conf)")
	fs.StringVar(&flags.readme, "readme", "", "Markdown readme rendered on the home page")
	fs.StringVarP(&flags.tutorials, "tutorials", "u", "", "directory of tutorial files")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	if args := fs.Args(); len(args) > 0 {
		return nil, fmt.Errorf("unexpected argument: %q", args[0])
	}
	return flags, nil
}

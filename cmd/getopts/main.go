package main

import (
	"encoding/json"
	"os"
	"strings"

	getopts "github.com/mah0x211/go-getopts"
	"github.com/mah0x211/go-getopts/log"
	"github.com/mah0x211/go-getopts/util"
)

var exit = util.Exit

func usage(code int) {
	log.Print(`
Scan command-line arguments with a getopt grammar.

Usage:
    getopts help
    getopts <shortopts> [--long=<longopts>] [--verbose] [--] <arg>...

Arguments:
    help                display help message.
    <shortopts>         short option characters; a character followed by
                        ":" takes a value. (e.g. "vo:")
    <arg>               argument vector to scan.

Options:
    --long=<longopts>   comma-separated long option declarations; a name
                        followed by ":" takes a value, and "=<c>" declares
                        a single-character alias. (e.g. "verbose=v,file:")
    --verbose           display each scan step.

Environment Variables:
    GETOPTS_LONG        used as the default <longopts> declaration.
`)
	exit(code)
}

type result struct {
	Opts map[string]interface{} `json:"opts"`
	Args []string               `json:"args"`
}

func run(args []string) {
	if len(args) == 0 || args[0] == "help" {
		usage(0)
	}
	shorts := args[0]
	args = args[1:]

	longspec := ""
	if v, found := util.Getenv("GETOPTS_LONG"); found {
		longspec = v
	}
	for len(args) > 0 {
		if args[0] == "--verbose" {
			log.Verbose = true
		} else if strings.HasPrefix(args[0], "--long=") {
			longspec = args[0][len("--long="):]
		} else {
			break
		}
		args = args[1:]
	}
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}

	s := getopts.New(shorts, getopts.ParseLongSpec(longspec),
		append([]string{"getopts"}, args...))
	opts := map[string]interface{}{}
	for {
		name, ok := s.Next()
		if !ok {
			break
		} else if name == "" {
			log.Debugf("skip unrecognized token (optind=%d)", s.OptInd())
			continue
		}
		log.Debugf("option %q = %v (optind=%d)", name, s.OptArg(), s.OptInd())
		opts[name] = s.OptArg()
	}

	rest := []string{}
	if s.OptInd() < len(s.Args()) {
		rest = s.Args()[s.OptInd():]
	}

	b, err := json.MarshalIndent(&result{Opts: opts, Args: rest}, "", "  ")
	if err != nil {
		log.Fatalf("failed to stringify the scan result: %v", err)
	}
	log.Print(string(b))
}

func main() {
	done := make(chan struct{})
	go func() {
		defer close(done)
		run(os.Args[1:])
	}()
	<-done
	os.Exit(util.ExitCode)
}

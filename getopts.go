// Package getopts scans a command-line argument vector into short
// options, long options and their values in the manner of the POSIX
// getopt and getopt_long functions.
package getopts

import (
	"strings"
)

// Scanner scans an argument vector one option at a time. args[0] is
// treated as the program name and scanning starts at index 1. A Scanner
// must not be shared across goroutines; use one instance per parse.
type Scanner struct {
	shorts string
	longs  []LongOption
	args   []string
	optind int
	chpos  int
	optarg interface{}
}

// New creates a Scanner for args with the short option characters in
// shorts (a character followed by ':' takes a value) and the long
// option declarations in longs.
func New(shorts string, longs []LongOption, args []string) *Scanner {
	return &Scanner{
		shorts: shorts,
		longs:  longs,
		args:   args,
		optind: 1,
	}
}

// ProgName returns args[0], or an empty string if args is empty.
func (s *Scanner) ProgName() string {
	if len(s.args) > 0 {
		return s.args[0]
	}
	return ""
}

// OptInd returns the index of the next argument to examine. After Next
// has reported the end of options, args[OptInd():] are the positional
// arguments.
func (s *Scanner) OptInd() int {
	return s.optind
}

// OptArg returns the value resolved for the most recently matched
// option: true for a flag, a string for a supplied value, false for a
// required value that was missing, or nil if the last call to Next
// matched nothing.
func (s *Scanner) OptArg() interface{} {
	return s.optarg
}

// Args returns the argument vector being scanned.
func (s *Scanner) Args() []string {
	return s.args
}

// Reset rewinds the scanner to the beginning of args.
func (s *Scanner) Reset(args []string) {
	s.args = args
	s.optind = 1
	s.chpos = 0
	s.optarg = nil
}

// Next advances the scanner to the next option and returns its
// identifier: a short option character, a long option name, or the
// long option's alias if one is declared. ok is false when no options
// remain; the identifier is empty when the current token was not
// recognized as any declared option and has been skipped.
//
// Every call either advances the argument cursor or consumes a
// character of the current grouped cluster, so repeated calls always
// terminate.
func (s *Scanner) Next() (string, bool) {
	s.optarg = nil
	if s.optind >= len(s.args) {
		return "", false
	}

	arg := s.args[s.optind]
	if s.chpos > 0 {
		// still inside a grouped cluster
		return s.nextGrouped(arg), true
	}

	if strings.HasPrefix(arg, "--") {
		return s.nextLong(arg), true
	}
	if len(arg) > 1 && arg[0] == '-' {
		return s.nextShort(arg), true
	}

	// neither long nor short option syntax: the remainder of args is
	// positional and scanning stops here
	return "", false
}

func (s *Scanner) nextLong(arg string) string {
	key := arg[2:]
	val := ""
	inline := false
	if kv := strings.SplitN(key, "=", 2); len(kv) == 2 {
		key, val, inline = kv[0], kv[1], true
	}

	var opt *LongOption
	for i := range s.longs {
		if s.longs[i].Name == key {
			// the last matching declaration wins
			opt = &s.longs[i]
		}
	}
	if opt == nil {
		s.optind++
		return ""
	}

	name := opt.Name
	if opt.Alias != "" {
		name = opt.Alias
	}

	if !opt.HasArg {
		s.optarg = true
		s.optind++
		return name
	}
	if inline {
		s.optarg = val
		s.optind++
		return name
	}
	s.resolveValue()
	return name
}

func (s *Scanner) nextShort(arg string) string {
	if strings.Contains(arg, "=") {
		// -o=value is not supported; skip the whole token
		s.optind++
		return ""
	}
	if len(arg) == 2 {
		return s.nextSingle(arg[1])
	}
	s.chpos = 1
	return s.nextGrouped(arg)
}

func (s *Scanner) nextSingle(c byte) string {
	hasArg, found := s.lookupShort(c)
	if !found {
		s.optind++
		return ""
	}
	if !hasArg {
		s.optarg = true
		s.optind++
		return string(c)
	}
	s.resolveValue()
	return string(c)
}

func (s *Scanner) nextGrouped(arg string) string {
	for i := s.chpos; i < len(arg); i++ {
		hasArg, found := s.lookupShort(arg[i])
		if !found {
			continue
		}
		name := string(arg[i])
		last := i == len(arg)-1

		if !hasArg {
			s.optarg = true
			if last {
				s.optind++
				s.chpos = 0
			} else {
				s.chpos = i + 1
			}
			return name
		}

		if !last {
			// a value-taking flag must trail the group
			s.optarg = false
			s.chpos = i + 1
			return name
		}

		s.chpos = 0
		s.resolveValue()
		return name
	}

	// no character in the remainder matches the spec
	s.optind++
	s.chpos = 0
	return ""
}

// resolveValue consumes the following token as the option value unless
// it is itself option syntax or does not exist; in that case the value
// is resolved to false.
func (s *Scanner) resolveValue() {
	if next := s.optind + 1; next < len(s.args) && !isOption(s.args[next]) {
		s.optarg = s.args[next]
		s.optind += 2
		return
	}
	s.optarg = false
	s.optind++
}

func (s *Scanner) lookupShort(c byte) (hasArg bool, found bool) {
	if c == ':' {
		return false, false
	}
	i := strings.IndexByte(s.shorts, c)
	if i == -1 {
		return false, false
	}
	return i+1 < len(s.shorts) && s.shorts[i+1] == ':', true
}

// isOption reports whether arg is long or short option syntax.
func isOption(arg string) bool {
	if strings.HasPrefix(arg, "--") {
		return true
	}
	return len(arg) > 1 && arg[0] == '-'
}

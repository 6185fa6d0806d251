package getopts

import (
	"strings"
)

// LongOption declares a long option. If Alias is not empty, the
// scanner reports a match under the alias instead of the name; it is
// expected to be a single character.
type LongOption struct {
	Name   string
	HasArg bool
	Alias  string
}

// ParseLongSpec parses a comma-separated long option declaration list
// into LongOptions. Each item is a name, followed by ':' if the option
// takes a value, followed by "=<c>" to declare a single-character
// alias:
//
//	verbose=v,file:=f,output:
//
// Empty items are ignored. The declarations are not validated for
// duplicates or conflicts.
func ParseLongSpec(spec string) []LongOption {
	var longs []LongOption
	for _, item := range strings.Split(spec, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		opt := LongOption{Name: item}
		if kv := strings.SplitN(item, "=", 2); len(kv) == 2 {
			opt.Name = kv[0]
			opt.Alias = kv[1]
		}
		if strings.HasSuffix(opt.Name, ":") {
			opt.Name = strings.TrimSuffix(opt.Name, ":")
			opt.HasArg = true
		}
		longs = append(longs, opt)
	}

	return longs
}

package getopts

// Parse scans args against the given grammar and collects every
// resolved option into a mapping from identifier to value: true for a
// flag, a string for a supplied value, or false for a required value
// that was missing. When the same identifier is resolved more than
// once the last value wins. The second return value is the positional
// tail of args, or nil if no positional arguments remain.
func Parse(shorts string, longs []LongOption, args []string) (map[string]interface{}, []string) {
	s := New(shorts, longs, args)
	opts := map[string]interface{}{}
	for {
		name, ok := s.Next()
		if !ok {
			break
		}
		if name != "" {
			opts[name] = s.OptArg()
		}
	}

	if i := s.OptInd(); i < len(args) {
		return opts, args[i:]
	}
	return opts, nil
}

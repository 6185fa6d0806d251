package getopts

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	longs := []LongOption{
		{Name: "verbose"},
		{Name: "file", HasArg: true, Alias: "f"},
		{Name: "tag", HasArg: true},
	}

	// test that a mixed argument vector is collected into the result
	// mapping and the positional tail
	opts, rest := Parse("qo:", longs, []string{
		"cmd", "-q", "--file=a.txt", "--tag", "v1.0.0", "-o",
		"--verbose", "arg1", "--not-scanned", "arg2",
	})
	if diff := cmp.Diff(map[string]interface{}{
		"q":       true,
		"f":       "a.txt",
		"tag":     "v1.0.0",
		"o":       false,
		"verbose": true,
	}, opts); diff != "" {
		t.Errorf("unexpected opts (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"arg1", "--not-scanned", "arg2"}, rest); diff != "" {
		t.Errorf("unexpected args (-want +got):\n%s", diff)
	}
}

func TestParse_LastWriteWins(t *testing.T) {
	// test that a later resolution overwrites an earlier one with the
	// same identifier
	opts, rest := Parse("o:", nil, []string{"cmd", "-o", "first", "-o", "second"})
	assert.Equal(t, map[string]interface{}{"o": "second"}, opts)
	assert.Nil(t, rest)

	// test that the long alias and the short character share a key
	longs := []LongOption{{Name: "output", HasArg: true, Alias: "o"}}
	opts, _ = Parse("o:", longs, []string{"cmd", "-o", "short", "--output", "long"})
	assert.Equal(t, map[string]interface{}{"o": "long"}, opts)
}

func TestParse_NoOptions(t *testing.T) {
	// test that an option-free vector yields an empty mapping and the
	// whole tail
	opts, rest := Parse("v", nil, []string{"cmd", "a", "-v", "b"})
	assert.Empty(t, opts)
	assert.Equal(t, []string{"a", "-v", "b"}, rest)

	// test that skipped unrecognized tokens produce no entries
	opts, rest = Parse("v", nil, []string{"cmd", "-x", "--none", "-v"})
	assert.Equal(t, map[string]interface{}{"v": true}, opts)
	assert.Nil(t, rest)

	// test that an empty vector is handled
	opts, rest = Parse("v", nil, nil)
	assert.Empty(t, opts)
	assert.Nil(t, rest)
}

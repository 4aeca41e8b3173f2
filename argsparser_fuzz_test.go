package argsparser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/napalu/argsparser/parse"
	"github.com/stretchr/testify/assert"
)

func FuzzParse(f *testing.F) {
	// Seed corpus with edge cases
	f.Add("-a2こんにちは")
	f.Add("--long")            // Missing value
	f.Add("-vxffile")          // Bundled flags with attached value
	f.Add("-- value")          // Empty long name
	f.Add("   --spaces ok   ") // Leading/trailing spaces
	f.Add("-漢字=こんにちは こんにち")    // Unicode
	f.Add("0")
	f.Add("-")
	f.Add("-a \\'-xtra\\'")
	f.Add("-a -xtra 000000")
	f.Add("-a -xtra -123.45")
	f.Add("-c9223372036854775808")
	f.Add("--ratio=1e309 pos1 pos2 pos3")
	f.Add("-vx --help")
	f.Fuzz(func(t *testing.T, rawArgs string) {
		args, err := parse.Split(rawArgs)
		if err != nil {
			return
		}

		var out bytes.Buffer
		p, err := NewParserWith(WithProgramName("fuzz"), WithOutput(&out))
		if err != nil {
			t.Fatal(err)
		}
		Add(p, "a", "a", "", false, "")
		Add(p, "xtra", "x", "", false, false)
		Add(p, "verbose", "v", "", false, false)
		Add(p, "file", "f", "", false, "")
		Add(p, "count", "c", "", false, int64(0))
		Add(p, "ratio", "r", "", false, float32(0))
		Add(p, "long", "", "xxxxx", false, uint8(0))
		Add(p, "漢字", "漢", "", false, "")
		AddPositional(p, "first", "", false, "")
		AddPositional(p, "second", "", false, 0)

		result := p.Parse(args)

		// Invariant 1: the result is one of the closed set and matches the error channel
		switch result {
		case Success:
			assert.Empty(t, p.LastError())
			assert.NoError(t, p.Err())
		case HelpRequested:
			assert.Empty(t, p.LastError())
			assert.ErrorIs(t, p.Err(), ErrHelpRequested)
		case UnknownOption, MissingValue, InvalidValue:
			assert.NotEmpty(t, p.LastError())
			assert.Error(t, p.Err())
		default:
			t.Fatalf("unexpected result %v", result)
		}

		// Invariant 2: help is detected before anything else
		for _, arg := range args {
			if arg == "--help" || arg == "-h" {
				assert.Equal(t, HelpRequested, result)
			}
		}

		// Invariant 3: every call starts from the declared defaults, so parsing is repeatable
		lastError := p.LastError()
		assert.Equal(t, result, p.Parse(args))
		assert.Equal(t, lastError, p.LastError())

		// Invariant 4: help text remains valid
		p.PrintHelp(nil)
		assert.NotContains(t, out.String(), "%!")
		assert.True(t, strings.HasPrefix(out.String(), "Usage: fuzz [OPTIONS] [<first>] [<second>]\n"))
	})
}

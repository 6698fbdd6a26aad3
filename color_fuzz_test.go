package textdebug

import "testing"

// FuzzParseHex checks that any accepted input round-trips through Hex and
// that no input panics the parser.
func FuzzParseHex(f *testing.F) {
	for _, seed := range []string{"#f00", "#336699", "#33669980", "", "#", "zzz", "#FFFFFF", "#-12345"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		c, err := ParseHex(s)
		if err != nil {
			return
		}
		again, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("Hex() output %q did not parse back: %v", c.Hex(), err)
		}
		if again != c {
			t.Fatalf("round trip mismatch: %v != %v (input %q)", again, c, s)
		}
	})
}

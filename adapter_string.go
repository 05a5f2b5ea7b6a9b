package tween

import (
	"math"
	"math/rand/v2"
	"strings"
)

// ScrambleMode selects the characters shown in place of runes that have not
// been revealed yet.
type ScrambleMode uint8

const (
	ScrambleNone      ScrambleMode = iota // show the remaining runes of From
	ScrambleUppercase                     // A-Z
	ScrambleLowercase                     // a-z
	ScrambleNumerals                      // 0-9
	ScrambleAll                           // printable ASCII
	ScrambleCustom                        // runes of StringOptions.CustomChars
)

// StringOptions configures StringAdapter.
type StringOptions struct {
	Scramble    ScrambleMode
	CustomChars string
	// Seed feeds the scramble generator. The same seed and parameter always
	// produce the same text.
	Seed uint64
}

// StringAdapter reveals To over From rune by rune.
type StringAdapter struct{}

func (StringAdapter) Evaluate(from, to string, opts StringOptions, t float32) string {
	fr := []rune(from)
	tr := []rune(to)
	n := max(len(fr), len(tr))
	k := int(math.Round(float64(n) * float64(t)))
	k = min(max(k, 0), n)

	var b strings.Builder
	b.Grow(len(to) + len(from))
	for i := 0; i < k && i < len(tr); i++ {
		b.WriteRune(tr[i])
	}

	if opts.Scramble == ScrambleNone {
		for i := k; i < len(fr); i++ {
			b.WriteRune(fr[i])
		}
		return b.String()
	}

	custom := []rune(opts.CustomChars)
	rng := rand.New(rand.NewPCG(opts.Seed, uint64(k)))
	for i := k; i < n; i++ {
		if r, ok := scrambleRune(opts.Scramble, rng, custom); ok {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func scrambleRune(mode ScrambleMode, rng *rand.Rand, custom []rune) (rune, bool) {
	switch mode {
	case ScrambleUppercase:
		return 'A' + rune(rng.IntN(26)), true
	case ScrambleLowercase:
		return 'a' + rune(rng.IntN(26)), true
	case ScrambleNumerals:
		return '0' + rune(rng.IntN(10)), true
	case ScrambleAll:
		return rune(33 + rng.IntN(94)), true
	case ScrambleCustom:
		if len(custom) == 0 {
			return 0, false
		}
		return custom[rng.IntN(len(custom))], true
	}
	return 0, false
}

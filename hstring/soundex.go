package hstring

import (
	"strings"
	"unicode"
)

// soundexDigit maps a lowercase consonant to its Soundex class digit, or
// 0 (meaning "skip") for vowels, h/w, and anything else.
func soundexDigit(c byte) byte {
	switch c {
	case 'b', 'f', 'p', 'v':
		return '1'
	case 'c', 'g', 'j', 'k', 'q', 's', 'x', 'z':
		return '2'
	case 'd', 't':
		return '3'
	case 'l':
		return '4'
	case 'm', 'n':
		return '5'
	case 'r':
		return '6'
	default:
		return 0
	}
}

// soundexOne computes the 4-character Soundex code for a single maximal
// run of alphabetic bytes: first letter uppercased, followed by up to
// three digits, zero-padded, collapsing consecutive equal digits.
func soundexOne(run []byte) string {
	// out holds 5 slots, mirroring the original's char[5]: index 0 is the
	// literal first letter (written last, overwriting whatever the scan
	// below put there), 1-3 are digits, 4 is scratch that never survives.
	var out [5]byte

	// start at index 0 for a consonant first letter: it is scanned as
	// part of the digit run (seeding prev so an immediately following
	// letter of the same class is suppressed, e.g. "Pfister" -> P236),
	// even though out[0] itself is overwritten by the literal letter
	// afterward. A vowel/h/w first letter is excluded from the scan.
	i := 0
	j := 0
	switch run[0] | 0x20 { // lowercase
	case 'a', 'e', 'i', 'o', 'u', 'y', 'h', 'w':
		i = 1
		j = 1
	}

	prev := byte('*') // sentinel distinct from '0' and every digit
	for ; i < len(run) && j <= 4; i++ {
		lc := run[i] | 0x20
		d := soundexDigit(lc)
		if d != 0 && d != prev {
			out[j] = d
			prev = d
			j++
		}
	}
	for k := j; k < 4; k++ {
		out[k] = '0'
	}

	out[0] = byte(unicode.ToUpper(rune(run[0])))
	return string(out[:4])
}

// Soundex replaces each maximal run of alphabetic bytes in a Byte string
// with its Soundex code, separating codes with single spaces. Must be
// called before the granularity transform.
func (s *S) Soundex() {
	if s.Granularity != Byte {
		panic("hstring: Soundex requires a Byte string")
	}

	var codes []string
	start := -1
	for i := 0; i <= s.Len; i++ {
		alpha := i < s.Len && isAlpha(s.Bytes[i])
		if alpha {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			codes = append(codes, soundexOne(s.Bytes[start:i]))
			start = -1
		}
	}

	out := []byte(strings.Join(codes, " "))
	s.Bytes = out
	s.Len = len(out)
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

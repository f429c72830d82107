package urlblocks

import "strings"

// asciiSet is a 32-byte value, where each bit represents the presence of a
// given ASCII character in the set. The 128-bits of the lower 16 bytes,
// starting with the least-significant bit of the lowest word to the
// most-significant bit of the highest word, map to the full range of all
// 128 ASCII characters. The 128-bits of the upper 16 bytes will be zeroed,
// ensuring that any non-ASCII character will be reported as not in the set.
// This allocates a total of 32 bytes even though the upper half
// is unused to avoid bounds checks in asciiSet.contains.
type asciiSet [8]uint32

// makeASCIISet creates a set of ASCII characters.
//
// Similar to strings.makeASCIISet but skips input validation.
func makeASCIISet(chars string) (as asciiSet) {
	// all characters in chars are expected to be valid ASCII characters
	for _, c := range chars {
		as[c/32] |= 1 << (c % 32)
	}
	return as
}

// contains reports whether c is inside the set.
//
// same as strings.contains.
func (as *asciiSet) contains(c byte) bool {
	return (as[c/32] & (1 << (c % 32))) != 0
}

// indexAnyASCII returns the index of the first instance of any character
// from asciiSet in s, or -1 if no character from asciiSet is present in s.
//
// Similar to strings.IndexAny but takes in an asciiSet instead of a string
// and skips input validation.
func indexAnyASCII(s string, as asciiSet) int {
	for i, b := range []byte(s) {
		if as.contains(b) {
			return i
		}
	}
	return -1
}

const upperhex string = "0123456789ABCDEF"

const alphabets string = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
const numbers string = "0123456789"

// Unreserved characters, as per IETF RFC 3986 Section 2.3.
var unreservedSet asciiSet = makeASCIISet(alphabets + numbers + "_.-~")

// escape percent-encodes every byte of s that is neither an unreserved
// character nor in safe, as an uppercase %XX triple.
//
// escape operates on raw bytes, so a multi-byte UTF-8 character produces
// one %XX triple per byte.
func escape(s string, safe string) string {
	safeSet := makeASCIISet(safe)
	var unsafeCount int
	for i := 0; i < len(s); i++ {
		if c := s[i]; !unreservedSet.contains(c) && !safeSet.contains(c) {
			unsafeCount++
		}
	}
	if unsafeCount == 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 2*unsafeCount)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreservedSet.contains(c) || safeSet.contains(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&0xF])
	}
	return sb.String()
}

// unescape decodes %XX triples in s. It never fails: a '%' that is not
// followed by two hexadecimal digits is passed through unchanged.
func unescape(s string) string {
	if strings.IndexByte(s, '%') == -1 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			sb.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 3
			continue
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String()
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

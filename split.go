package urlblocks

import "strings"

// splitResult holds the 5 generic URI components of IETF RFC 3986
// Section 3: scheme, netloc (authority), path, query and fragment.
type splitResult struct {
	scheme, netloc, path, query, fragment string
}

// For detecting the URL scheme.
var schemeFirstCharSet asciiSet = makeASCIISet(alphabets)
var schemeRemainingCharSet asciiSet = makeASCIISet(alphabets + numbers + "+-.")

// Characters that terminate the netloc component.
var endOfNetlocSet asciiSet = makeASCIISet(`/?#`)

// splitURL splits rawURL into its 5 generic components without decoding
// or reformatting them. The scheme component is lowercased; every other
// component is returned verbatim.
//
// A netloc is only recognised after a "//". The fragment is everything
// after the first "#", and the query everything after the first "?"
// before the fragment.
func splitURL(rawURL string) splitResult {
	var split splitResult
	rest := rawURL
	if i := strings.IndexByte(rest, ':'); i > 0 && schemeFirstCharSet.contains(rest[0]) {
		isScheme := true
		for j := 1; j < i; j++ {
			if !schemeRemainingCharSet.contains(rest[j]) {
				isScheme = false
				break
			}
		}
		if isScheme {
			split.scheme = strings.ToLower(rest[:i])
			rest = rest[i+1:]
		}
	}
	if strings.HasPrefix(rest, "//") {
		end := len(rest)
		if i := indexAnyASCII(rest[2:], endOfNetlocSet); i != -1 {
			end = i + 2
		}
		split.netloc = rest[2:end]
		rest = rest[end:]
	}
	if i := strings.IndexByte(rest, '#'); i != -1 {
		split.fragment = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '?'); i != -1 {
		split.query = rest[i+1:]
		rest = rest[:i]
	}
	split.path = rest
	return split
}

// joinURL is the inverse of splitURL. A "/" is inserted between the netloc
// and a rootless path, so that the path cannot be mistaken for part of the
// authority when the result is split again.
func joinURL(split splitResult) string {
	rawURL := split.path
	if split.netloc != "" || strings.HasPrefix(rawURL, "//") {
		if rawURL != "" && !strings.HasPrefix(rawURL, "/") {
			rawURL = "/" + rawURL
		}
		rawURL = "//" + split.netloc + rawURL
	}
	if split.scheme != "" {
		rawURL = split.scheme + ":" + rawURL
	}
	if split.query != "" {
		rawURL = rawURL + "?" + split.query
	}
	if split.fragment != "" {
		rawURL = rawURL + "#" + split.fragment
	}
	return rawURL
}

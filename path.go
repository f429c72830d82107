package urlblocks

import "strings"

// Path is the path component of a URL. A non-empty Path starts with "/"
// when absolute; a Path ending in "/" denotes a directory rather than a
// leaf. Paths are stored verbatim: "." and ".." segments are only
// collapsed by Relative.
type Path string

func (p Path) String() string {
	return string(p)
}

// IsLeaf reports whether p names a leaf ("file") rather than a directory:
// non-empty and not ending in "/".
func (p Path) IsLeaf() bool {
	return p != "" && !strings.HasSuffix(string(p), "/")
}

// Parent returns the path one level up: the enclosing directory of a
// leaf, or the directory above a non-leaf. The parent of the root path
// is the root path itself.
func (p Path) Parent() Path {
	if p.IsLeaf() {
		return p.Relative(".")
	}
	return p.Relative("..")
}

// Segments returns the decoded labels of p, without the leading empty
// label of an absolute path. A trailing "/" contributes a final empty
// segment.
func (p Path) Segments() []string {
	if p == "" {
		return []string{}
	}
	labels := strings.Split(string(p), "/")
	if labels[0] == "" {
		labels = labels[1:]
	}
	segments := make([]string, len(labels))
	for i, label := range labels {
		segments[i] = unescape(label)
	}
	return segments
}

// AddSegment appends one segment to p, inserting a "/" separator unless p
// already ends in one. An empty p adopts the segment as-is.
func (p Path) AddSegment(segment string) Path {
	if p == "" {
		return Path(segment)
	}
	if strings.HasSuffix(string(p), "/") {
		return p + Path(segment)
	}
	return p + "/" + Path(segment)
}

// Add appends a partial path to p, which unlike AddSegment may itself
// contain multiple "/"-separated segments.
func (p Path) Add(partial string) Path {
	return p.AddSegment(partial)
}

// Relative resolves other against p following the merge algorithm of
// IETF RFC 3986 Section 5.3:
//
// An absolute other wins verbatim. Otherwise other is appended to the
// directory prefix of p (everything up to and including its last "/"),
// and "." and ".." segments are collapsed left to right. Each ".."
// removes the segment before it; a ".." with nothing before it is
// dropped. A trailing "/" is kept when the last merged segment is ".",
// ".." or empty.
func (p Path) Relative(other Path) Path {
	if other == "" {
		return p
	}
	if strings.HasPrefix(string(other), "/") {
		return other
	}
	merged := string(other)
	if i := strings.LastIndexByte(string(p), '/'); i != -1 {
		merged = string(p)[:i+1] + merged
	}
	absolute := strings.HasPrefix(merged, "/")
	segments := strings.Split(strings.TrimPrefix(merged, "/"), "/")
	collapsed := make([]string, 0, len(segments))
	for _, segment := range segments {
		switch segment {
		case ".":
		case "..":
			if len(collapsed) > 0 {
				collapsed = collapsed[:len(collapsed)-1]
			}
		default:
			collapsed = append(collapsed, segment)
		}
	}
	switch segments[len(segments)-1] {
	case ".", "..":
		collapsed = append(collapsed, "")
	}
	resolved := strings.Join(collapsed, "/")
	if absolute {
		resolved = "/" + resolved
	}
	return Path(resolved)
}

package urlblocks

import (
	"strconv"
	"strings"
)

// Domain levels count labels from the right-hand side of the hostname,
// so "www.google.com" has "com" at DomainLevelTop and "google" at
// DomainLevelSecond.
const (
	DomainLevelTop int = iota
	DomainLevelSecond
)

// Netloc is the network-location (authority) component of a URL, of the
// form "username:password@hostname:port". Every part other than the
// hostname is optional.
//
// Netloc performs no validation; any string is an acceptable Netloc.
// All derivation methods return a new value.
type Netloc string

// netlocParts is the decomposed form of a Netloc. The has* flags
// distinguish an empty part from an absent one, so that rebuilding a
// Netloc from its parts reproduces the original string.
type netlocParts struct {
	username, password string
	host               string
	port               int
	hasUsername        bool
	hasPassword        bool
	hasPort            bool
}

// parts decomposes n. Userinfo is split off at the last "@" and divided
// at its first ":", since a password may itself contain ":". The port is
// split off at the last ":" that is not inside an IPv6 bracket pair; if
// what follows that ":" is not an integer, it is kept as part of the host.
func (n Netloc) parts() netlocParts {
	var parts netlocParts
	rest := string(n)
	if i := strings.LastIndexByte(rest, '@'); i != -1 {
		userinfo := rest[:i]
		rest = rest[i+1:]
		parts.hasUsername = true
		if j := strings.IndexByte(userinfo, ':'); j != -1 {
			parts.username = userinfo[:j]
			parts.password = userinfo[j+1:]
			parts.hasPassword = true
		} else {
			parts.username = userinfo
		}
	}
	parts.host = rest
	if i := strings.LastIndexByte(rest, ':'); i != -1 && strings.IndexByte(rest[i:], ']') == -1 {
		if port, err := strconv.Atoi(rest[i+1:]); err == nil {
			parts.host = rest[:i]
			parts.port = port
			parts.hasPort = true
		}
	}
	return parts
}

// join is the inverse of parts. A password without a username is not
// representable in the netloc grammar and is dropped.
func (parts netlocParts) join() Netloc {
	var sb strings.Builder
	if parts.hasUsername {
		sb.WriteString(parts.username)
		if parts.hasPassword {
			sb.WriteByte(':')
			sb.WriteString(parts.password)
		}
		sb.WriteByte('@')
	}
	sb.WriteString(parts.host)
	if parts.hasPort {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(parts.port))
	}
	return Netloc(sb.String())
}

func (n Netloc) String() string {
	return string(n)
}

// Username returns the username, or "" if there is none.
func (n Netloc) Username() string {
	return n.parts().username
}

// Password returns the password, or "" if there is none.
func (n Netloc) Password() string {
	return n.parts().password
}

// Auth returns the username and password together.
func (n Netloc) Auth() (username, password string) {
	parts := n.parts()
	return parts.username, parts.password
}

// Hostname returns the host part of n, without userinfo or port.
func (n Netloc) Hostname() string {
	return n.parts().host
}

// Port returns the port number and whether one is present.
func (n Netloc) Port() (int, bool) {
	parts := n.parts()
	return parts.port, parts.hasPort
}

// WithUsername replaces the username, leaving all other parts untouched.
func (n Netloc) WithUsername(username string) Netloc {
	parts := n.parts()
	parts.username = username
	parts.hasUsername = true
	return parts.join()
}

// WithoutUsername removes the username. The password is removed with it,
// since a password cannot exist without a username.
func (n Netloc) WithoutUsername() Netloc {
	parts := n.parts()
	parts.username = ""
	parts.hasUsername = false
	parts.password = ""
	parts.hasPassword = false
	return parts.join()
}

// WithPassword replaces the password, leaving all other parts untouched.
// Without a username the password cannot be represented and the result
// omits it.
func (n Netloc) WithPassword(password string) Netloc {
	parts := n.parts()
	parts.password = password
	parts.hasPassword = true
	return parts.join()
}

// WithoutPassword removes the password.
func (n Netloc) WithoutPassword() Netloc {
	parts := n.parts()
	parts.password = ""
	parts.hasPassword = false
	return parts.join()
}

// WithAuth replaces the username and password. With a single argument it
// replaces the username and removes any password. With two arguments it
// replaces both. Arguments beyond the second are ignored, and with no
// arguments n is returned unchanged.
func (n Netloc) WithAuth(auth ...string) Netloc {
	parts := n.parts()
	switch {
	case len(auth) == 1:
		parts.username = auth[0]
		parts.hasUsername = true
		parts.password = ""
		parts.hasPassword = false
	case len(auth) >= 2:
		parts.username = auth[0]
		parts.hasUsername = true
		parts.password = auth[1]
		parts.hasPassword = true
	default:
		return n
	}
	return parts.join()
}

// WithoutAuth removes the username and password.
func (n Netloc) WithoutAuth() Netloc {
	return n.WithoutUsername()
}

// WithHostname replaces the host part, keeping userinfo and port.
func (n Netloc) WithHostname(hostname string) Netloc {
	parts := n.parts()
	parts.host = hostname
	return parts.join()
}

// WithPort replaces the port, leaving all other parts untouched.
func (n Netloc) WithPort(port int) Netloc {
	parts := n.parts()
	parts.port = port
	parts.hasPort = true
	return parts.join()
}

// WithoutPort removes the port.
func (n Netloc) WithoutPort() Netloc {
	parts := n.parts()
	parts.port = 0
	parts.hasPort = false
	return parts.join()
}

// Domains returns the dot-separated labels of the hostname, most-specific
// first. An empty hostname yields an empty slice.
func (n Netloc) Domains() []string {
	host := n.Hostname()
	if host == "" {
		return []string{}
	}
	return strings.Split(host, ".")
}

// Subdomain returns the first label of the hostname, if the hostname has
// at least 3 labels, otherwise "".
func (n Netloc) Subdomain() string {
	domains := n.Domains()
	if len(domains) < 3 {
		return ""
	}
	return domains[0]
}

// GetDomain returns the label at the given domain level, or "" if the
// hostname has fewer labels than the level requires.
func (n Netloc) GetDomain(level int) string {
	domains := n.Domains()
	if level < 0 || level >= len(domains) {
		return ""
	}
	return domains[len(domains)-1-level]
}

// WithDomain replaces the label at the given domain level. If the
// hostname has fewer labels than the level requires, n is returned
// unchanged.
func (n Netloc) WithDomain(domain string, level int) Netloc {
	domains := n.Domains()
	if level < 0 || level >= len(domains) {
		return n
	}
	domains[len(domains)-1-level] = domain
	return n.WithHostname(strings.Join(domains, "."))
}

// AddSubdomain prepends a new first label to the hostname.
func (n Netloc) AddSubdomain(subdomain string) Netloc {
	host := n.Hostname()
	if host == "" {
		return n.WithHostname(subdomain)
	}
	return n.WithHostname(subdomain + "." + host)
}

// RemoveSubdomain drops the first label of the hostname. A hostname is
// never reduced below 2 labels, so a bare second-level domain like
// "google.com" is returned unchanged.
func (n Netloc) RemoveSubdomain() Netloc {
	domains := n.Domains()
	if len(domains) <= 2 {
		return n
	}
	return n.WithHostname(strings.Join(domains[1:], "."))
}

// Package urlblocks provides an immutable URL value type with structured,
// component-wise access and reconstruction.
//
// A URL exposes its scheme, netloc, username, password, hostname, port,
// path, query and fragment, each with With*/Without* derivation methods
// that return a new URL rather than mutating in place. The query string
// and path have additional methods for fine-grained manipulation, and
// hostnames can be inspected and rewritten label by label.
package urlblocks

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

// Construction errors. Validation happens only when a URL value is built;
// the Netloc, Path and QueryString component types accept any string.
var (
	// ErrEmptyURL is returned when constructing a URL from an empty string.
	ErrEmptyURL = errors.New("urlblocks: URL is empty")
	// ErrMissingScheme is returned when constructing a URL without a scheme.
	ErrMissingScheme = errors.New("urlblocks: URL has no scheme")
	// ErrInvalidHostname is returned when constructing a URL whose hostname
	// is absent or has fewer than 2 dotted labels.
	ErrInvalidHostname = errors.New("urlblocks: URL needs a hostname with at least a second-level and a top-level domain")
	// ErrEncoding is returned by ParseIRI when the hostname cannot be
	// encoded with IDNA.
	ErrEncoding = errors.New("urlblocks: cannot encode IRI")
)

var idnaProfile *idna.Profile = idna.New(idna.MapForLookup(), idna.Transitional(true), idna.BidiRule())

// URL is an immutable, validated URL value. The zero URL is empty and
// unusable; construct values with Parse, MustParse or ParseIRI.
//
// Every URL has a non-empty scheme and a hostname of at least 2 dotted
// labels. String returns the exact string the URL was built from, so a
// parsed URL round-trips byte for byte. Derivation methods build a new
// URL; the ones that can break the construction invariants return an
// error alongside it.
type URL struct {
	url string
}

// Parse validates rawURL and wraps it in a URL value.
func Parse(rawURL string) (URL, error) {
	if rawURL == "" {
		return URL{}, ErrEmptyURL
	}
	split := splitURL(rawURL)
	if split.scheme == "" {
		return URL{}, fmt.Errorf("%w: %q", ErrMissingScheme, rawURL)
	}
	netloc := Netloc(split.netloc)
	if netloc.Hostname() == "" || len(netloc.Domains()) < 2 {
		return URL{}, fmt.Errorf("%w: %q", ErrInvalidHostname, rawURL)
	}
	return URL{url: rawURL}, nil
}

// MustParse is like Parse but panics on invalid input. Intended for
// URL literals known to be valid.
func MustParse(rawURL string) URL {
	u, err := Parse(rawURL)
	if err != nil {
		panic(err)
	}
	return u
}

// ParseIRI constructs a URL from an IRI, which may contain non-ASCII
// text, as per IETF RFC 3987 Section 3.1. A non-ASCII hostname is
// encoded with IDNA, and the path, query and fragment are UTF-8
// percent-encoded. "%" is kept literal so that input that is already
// percent-encoded is not encoded twice.
func ParseIRI(iri string) (URL, error) {
	split := splitURL(iri)
	netloc := Netloc(split.netloc)
	if host := netloc.Hostname(); !isASCII(host) {
		encoded, err := idnaProfile.ToASCII(host)
		if err != nil {
			return URL{}, fmt.Errorf("%w: %v", ErrEncoding, err)
		}
		split.netloc = string(netloc.WithHostname(encoded))
	}
	split.path = escape(split.path, "/%;")
	split.query = escape(split.query, "=&%")
	split.fragment = escape(split.fragment, "%")
	return Parse(joinURL(split))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// String returns the URL in its original serialized form.
func (u URL) String() string {
	return u.url
}

// MarshalText implements encoding.TextMarshaler.
func (u URL) MarshalText() ([]byte, error) {
	return []byte(u.url), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, validating the
// input the same way Parse does.
func (u *URL) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

func (u URL) split() splitResult {
	return splitURL(u.url)
}

// rejoin builds a derived URL whose components are known to still satisfy
// the construction invariants, skipping re-validation.
func rejoin(split splitResult) URL {
	return URL{url: joinURL(split)}
}

// Scheme returns the URL's scheme, lowercased.
func (u URL) Scheme() string {
	return u.split().scheme
}

// WithScheme replaces the scheme.
func (u URL) WithScheme(scheme string) (URL, error) {
	split := u.split()
	split.scheme = scheme
	return Parse(joinURL(split))
}

// Netloc returns the network-location component, which incorporates the
// username, password, hostname and port.
func (u URL) Netloc() Netloc {
	return Netloc(u.split().netloc)
}

// WithNetloc replaces the entire network-location component.
func (u URL) WithNetloc(netloc Netloc) (URL, error) {
	split := u.split()
	split.netloc = string(netloc)
	return Parse(joinURL(split))
}

// replaceNetloc swaps in a netloc derived from the current one in a way
// that cannot invalidate the URL (hostname untouched).
func (u URL) replaceNetloc(netloc Netloc) URL {
	split := u.split()
	split.netloc = string(netloc)
	return rejoin(split)
}

// Username returns the username, or "" if there is none.
func (u URL) Username() string {
	return u.Netloc().Username()
}

// WithUsername replaces the username.
func (u URL) WithUsername(username string) URL {
	return u.replaceNetloc(u.Netloc().WithUsername(username))
}

// WithoutUsername removes the username along with any password.
func (u URL) WithoutUsername() URL {
	return u.replaceNetloc(u.Netloc().WithoutUsername())
}

// Password returns the password, or "" if there is none.
func (u URL) Password() string {
	return u.Netloc().Password()
}

// WithPassword replaces the password. A URL without a username cannot
// carry a password and is returned without one.
func (u URL) WithPassword(password string) URL {
	return u.replaceNetloc(u.Netloc().WithPassword(password))
}

// WithoutPassword removes the password.
func (u URL) WithoutPassword() URL {
	return u.replaceNetloc(u.Netloc().WithoutPassword())
}

// Auth returns the username and password together.
func (u URL) Auth() (username, password string) {
	return u.Netloc().Auth()
}

// WithAuth replaces the username and password. With a single argument it
// replaces the username and removes any password; with two it replaces
// both.
func (u URL) WithAuth(auth ...string) URL {
	return u.replaceNetloc(u.Netloc().WithAuth(auth...))
}

// WithoutAuth removes the username and password.
func (u URL) WithoutAuth() URL {
	return u.replaceNetloc(u.Netloc().WithoutAuth())
}

// Hostname returns the hostname, without userinfo or port.
func (u URL) Hostname() string {
	return u.Netloc().Hostname()
}

// WithHostname replaces the hostname, keeping userinfo and port.
func (u URL) WithHostname(hostname string) (URL, error) {
	return u.WithNetloc(u.Netloc().WithHostname(hostname))
}

// Port returns the explicit port number and whether one is present.
func (u URL) Port() (int, bool) {
	return u.Netloc().Port()
}

// WithPort replaces the port.
func (u URL) WithPort(port int) URL {
	return u.replaceNetloc(u.Netloc().WithPort(port))
}

// WithoutPort removes the port.
func (u URL) WithoutPort() URL {
	return u.replaceNetloc(u.Netloc().WithoutPort())
}

// DefaultPort returns the explicit port if present, otherwise the
// default port for the URL's scheme if one is known.
func (u URL) DefaultPort() (int, bool) {
	if port, ok := u.Port(); ok {
		return port, true
	}
	return defaultPorts.Get(u.Scheme())
}

// Domains returns the dot-separated labels of the hostname,
// most-specific first.
func (u URL) Domains() []string {
	return u.Netloc().Domains()
}

// Subdomain returns the first hostname label, if the hostname has at
// least 3 labels.
func (u URL) Subdomain() string {
	return u.Netloc().Subdomain()
}

// GetDomain returns the hostname label at the given domain level,
// counted from the top-level domain: DomainLevelTop is the last label,
// DomainLevelSecond the one before it.
func (u URL) GetDomain(level int) string {
	return u.Netloc().GetDomain(level)
}

// WithDomain replaces the hostname label at the given domain level.
func (u URL) WithDomain(domain string, level int) (URL, error) {
	return u.WithNetloc(u.Netloc().WithDomain(domain, level))
}

// AddSubdomain prepends a new first label to the hostname.
func (u URL) AddSubdomain(subdomain string) URL {
	return u.replaceNetloc(u.Netloc().AddSubdomain(subdomain))
}

// RemoveSubdomain drops the first hostname label, unless doing so would
// leave fewer than 2 labels.
func (u URL) RemoveSubdomain() URL {
	return u.replaceNetloc(u.Netloc().RemoveSubdomain())
}

// Path returns the path component.
func (u URL) Path() Path {
	return Path(u.split().path)
}

// WithPath replaces the path component.
func (u URL) WithPath(path Path) URL {
	split := u.split()
	split.path = string(path)
	return rejoin(split)
}

// Root returns the URL with its path replaced by "/".
func (u URL) Root() URL {
	return u.WithPath("/")
}

// Parent returns the URL of the node one path level up.
func (u URL) Parent() URL {
	return u.WithPath(u.Path().Parent())
}

// IsLeaf reports whether the URL's path is a leaf, i.e. non-empty and
// without a trailing slash.
func (u URL) IsLeaf() bool {
	return u.Path().IsLeaf()
}

// AddPathSegment appends one segment to the path.
func (u URL) AddPathSegment(segment string) URL {
	return u.WithPath(u.Path().AddSegment(segment))
}

// AddPath appends a partial path, which may contain multiple segments.
func (u URL) AddPath(partial string) URL {
	return u.WithPath(u.Path().Add(partial))
}

// WithTrailingSlash adds a single "/" to the end of the path, leaving
// query and fragment in place. Idempotent.
func (u URL) WithTrailingSlash() URL {
	split := u.split()
	if strings.HasSuffix(split.path, "/") {
		return u
	}
	split.path += "/"
	return rejoin(split)
}

// WithoutTrailingSlash removes a single "/" from the end of the path,
// leaving query and fragment in place. Idempotent.
func (u URL) WithoutTrailingSlash() URL {
	split := u.split()
	if !strings.HasSuffix(split.path, "/") {
		return u
	}
	split.path = split.path[:len(split.path)-1]
	return rejoin(split)
}

// Query returns the query component.
func (u URL) Query() QueryString {
	return QueryString(u.split().query)
}

// WithQuery replaces the query component.
func (u URL) WithQuery(query QueryString) URL {
	split := u.split()
	split.query = string(query)
	return rejoin(split)
}

// WithoutQuery removes the query component.
func (u URL) WithoutQuery() URL {
	return u.WithQuery("")
}

// QueryList returns the query as decoded name/value pairs in order.
func (u URL) QueryList() []Param {
	return u.Query().List()
}

// QueryDict returns the query as a map, keeping the last value of any
// repeated name.
func (u URL) QueryDict() map[string]string {
	return u.Query().Dict()
}

// QueryMultiDict returns the query as a map of all values per name.
func (u URL) QueryMultiDict() map[string][]string {
	return u.Query().MultiDict()
}

// AddQueryParam appends a single query parameter. A name may be added
// several times.
func (u URL) AddQueryParam(name, value string) URL {
	return u.WithQuery(u.Query().AddParam(name, value))
}

// AddQueryParams appends each given pair in order.
func (u URL) AddQueryParams(params ...Param) URL {
	return u.WithQuery(u.Query().AddParams(params...))
}

// AddQueryParamsMap appends one pair per map entry, in sorted key order.
func (u URL) AddQueryParamsMap(params map[string]string) URL {
	return u.WithQuery(u.Query().AddParamsMap(params))
}

// SetQueryParam replaces every parameter named name with a single pair
// appended at the end of the query string.
func (u URL) SetQueryParam(name, value string) URL {
	return u.WithQuery(u.Query().SetParam(name, value))
}

// SetQueryParams applies SetQueryParam for each given pair in order.
func (u URL) SetQueryParams(params ...Param) URL {
	return u.WithQuery(u.Query().SetParams(params...))
}

// SetQueryParamsMap applies SetQueryParam per map entry, in sorted key
// order.
func (u URL) SetQueryParamsMap(params map[string]string) URL {
	return u.WithQuery(u.Query().SetParamsMap(params))
}

// DelQueryParam removes every query parameter with the given name.
func (u URL) DelQueryParam(name string) URL {
	return u.WithQuery(u.Query().DelParam(name))
}

// DelQueryParams removes every query parameter matching any given name.
func (u URL) DelQueryParams(names ...string) URL {
	return u.WithQuery(u.Query().DelParams(names...))
}

// Fragment returns the fragment, percent-decoded.
func (u URL) Fragment() string {
	return unescape(u.split().fragment)
}

// WithFragment replaces the fragment, percent-encoding it.
func (u URL) WithFragment(fragment string) URL {
	split := u.split()
	split.fragment = escape(fragment, "/")
	return rejoin(split)
}

// WithoutFragment removes the fragment.
func (u URL) WithoutFragment() URL {
	split := u.split()
	split.fragment = ""
	return rejoin(split)
}

// Relative resolves another URL reference against u, the way a browser
// pointed at u would resolve a link to other. The first present component
// of other decides the outcome: an absolute reference is returned as-is;
// a netloc takes u's scheme; a path is merged with u's path following
// IETF RFC 3986 Section 5.3; a bare query keeps u's path; a bare fragment
// keeps u's path and query; an empty reference means u without its
// fragment. The result is validated like any constructed URL.
func (u URL) Relative(other string) (URL, error) {
	ref := splitURL(other)
	base := u.split()
	switch {
	case ref.scheme != "":
	case ref.netloc != "":
		ref.scheme = base.scheme
	case ref.path != "":
		ref.scheme = base.scheme
		ref.netloc = base.netloc
		ref.path = string(Path(base.path).Relative(Path(ref.path)))
	case ref.query != "":
		ref.scheme = base.scheme
		ref.netloc = base.netloc
		ref.path = base.path
	case ref.fragment != "":
		ref.scheme = base.scheme
		ref.netloc = base.netloc
		ref.path = base.path
		ref.query = base.query
	default:
		// An empty reference means the current location; it only drops
		// the fragment.
		return u.WithoutFragment(), nil
	}
	return Parse(joinURL(ref))
}

package urlblocks

import "testing"

type escapeTest struct {
	original string
	safe     string
	expected string
}

var escapeTests = []escapeTest{
	{"hello", "", "hello"},
	{"", "", ""},
	{"a b", "", "a%20b"},
	{"AZaz09_.-~", "", "AZaz09_.-~"},
	{"=&%", "=&%", "=&%"},
	{"=&%", "", "%3D%26%25"},
	{"/a/b;c", "/%;", "/a/b;c"},
	{"på th", "/%;", "p%C3%A5%20th"},
	{"/a b/c", "/", "/a%20b/c"},
	{"50%", "%", "50%"},
	{"世", "", "%E4%B8%96"},
}

func TestEscape(t *testing.T) {
	for _, test := range escapeTests {
		if escaped := escape(test.original, test.safe); escaped != test.expected {
			t.Errorf("Output %q not equal to expected %q", escaped, test.expected)
		}
	}
}

type unescapeTest struct {
	original string
	expected string
}

var unescapeTests = []unescapeTest{
	{"hello", "hello"},
	{"", ""},
	{"a%20b", "a b"},
	{"%C3%A5", "å"},
	{"%c3%a5", "å"},
	{"%E4%B8%96", "世"},
	{"a+b", "a+b"},
	// Malformed sequences pass through unchanged.
	{"%", "%"},
	{"%2", "%2"},
	{"%zz", "%zz"},
	{"100%", "100%"},
	{"%%41", "%A"},
}

func TestUnescape(t *testing.T) {
	for _, test := range unescapeTests {
		if unescaped := unescape(test.original); unescaped != test.expected {
			t.Errorf("Output %q not equal to expected %q", unescaped, test.expected)
		}
	}
}

func TestEscapeUnescapeInverse(t *testing.T) {
	for _, original := range []string{"hello world", "å世", "a=b&c=d", "a/b;c?d#e"} {
		if unescaped := unescape(escape(original, "")); unescaped != original {
			t.Errorf("Output %q not equal to expected %q", unescaped, original)
		}
	}
}

package urlblocks

import (
	"reflect"
	"testing"
)

type isLeafTest struct {
	path     Path
	expected bool
}

var isLeafTests = []isLeafTest{
	{"/a/b/c", true},
	{"/a/", false},
	{"/", false},
	{"", false},
	{"a", true},
}

func TestIsLeaf(t *testing.T) {
	for _, test := range isLeafTests {
		if leaf := test.path.IsLeaf(); leaf != test.expected {
			t.Errorf("Output %t not equal to expected %t", leaf, test.expected)
		}
	}
}

type parentTest struct {
	path     Path
	expected Path
}

var parentTests = []parentTest{
	{"/a/b/c", "/a/b/"},
	{"/a/b/", "/a/"},
	{"/a", "/"},
	{"/a/", "/"},
	{"/", "/"},
	{"", ""},
}

func TestParent(t *testing.T) {
	for _, test := range parentTests {
		if parent := test.path.Parent(); parent != test.expected {
			t.Errorf("Output %q not equal to expected %q", parent, test.expected)
		}
	}
}

type segmentsTest struct {
	path     Path
	expected []string
}

var segmentsTests = []segmentsTest{
	{"", []string{}},
	{"/", []string{""}},
	{"/a/b/c", []string{"a", "b", "c"}},
	{"/a/b/", []string{"a", "b", ""}},
	{"/a/b%20c", []string{"a", "b c"}},
	{"a/b", []string{"a", "b"}},
}

func TestSegments(t *testing.T) {
	for _, test := range segmentsTests {
		if segments := test.path.Segments(); !reflect.DeepEqual(segments, test.expected) {
			t.Errorf("Output %q not equal to expected %q", segments, test.expected)
		}
	}
}

type addSegmentTest struct {
	path     Path
	segment  string
	expected Path
}

var addSegmentTests = []addSegmentTest{
	{"", "a", "a"},
	{"/a", "b", "/a/b"},
	{"/a/", "b", "/a/b"},
	{"/", "a", "/a"},
}

func TestAddSegment(t *testing.T) {
	for _, test := range addSegmentTests {
		if added := test.path.AddSegment(test.segment); added != test.expected {
			t.Errorf("Output %q not equal to expected %q", added, test.expected)
		}
	}
}

type addTest struct {
	path     Path
	partial  string
	expected Path
}

var addTests = []addTest{
	{"", "a/b/c", "a/b/c"},
	{"/a", "b/c", "/a/b/c"},
	{"/a/", "b/c", "/a/b/c"},
}

func TestAdd(t *testing.T) {
	for _, test := range addTests {
		if added := test.path.Add(test.partial); added != test.expected {
			t.Errorf("Output %q not equal to expected %q", added, test.expected)
		}
	}
}

type relativePathTest struct {
	base     Path
	other    Path
	expected Path
}

var relativePathTests = []relativePathTest{
	{"/a/b/c/", "../d/e/f", "/a/b/d/e/f"},
	{"/a/b/c", "d", "/a/b/d"},
	{"/a/b/c", "./d", "/a/b/d"},
	{"/a/b/c", "..", "/a/"},
	{"/a/b/c", ".", "/a/b/"},
	{"/a/b/c", "/x", "/x"},
	{"/a/b/c", "g/", "/a/b/g/"},
	{"/a/b/c", "../../../g", "/g"},
	{"/a/b/c", "../..", "/"},
	{"a", "b", "b"},
	{"a/b", "c", "a/c"},
	{"/a/b/c", "", "/a/b/c"},
	{"", "d", "d"},
}

func TestRelativePath(t *testing.T) {
	for _, test := range relativePathTests {
		if resolved := test.base.Relative(test.other); resolved != test.expected {
			t.Errorf("Output %q not equal to expected %q", resolved, test.expected)
		}
	}
}

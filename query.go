package urlblocks

import (
	"sort"
	"strings"
)

// Param is a single name/value pair of a query string.
type Param struct {
	Name, Value string
}

// QueryString is the query component of a URL: an ordered sequence of
// "&"-separated name/value pairs. Insertion order is preserved and names
// may repeat.
//
// QueryString performs no validation; any string is an acceptable
// QueryString. All derivation methods return a new value.
type QueryString string

func (q QueryString) String() string {
	return string(q)
}

// List returns the decoded name/value pairs of q in order. A pair without
// "=" yields an empty value; empty pairs between separators are skipped.
func (q QueryString) List() []Param {
	if q == "" {
		return []Param{}
	}
	pairs := strings.Split(string(q), "&")
	params := make([]Param, 0, len(pairs))
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		params = append(params, Param{Name: unescape(name), Value: unescape(value)})
	}
	return params
}

// Dict returns the parameters as a map. A repeated name keeps only its
// last value; MultiDict keeps them all.
func (q QueryString) Dict() map[string]string {
	params := q.List()
	dict := make(map[string]string, len(params))
	for _, param := range params {
		dict[param.Name] = param.Value
	}
	return dict
}

// MultiDict returns the parameters as a map of all values per name, each
// slice ordered by occurrence.
func (q QueryString) MultiDict() map[string][]string {
	params := q.List()
	dict := make(map[string][]string, len(params))
	for _, param := range params {
		dict[param.Name] = append(dict[param.Name], param.Value)
	}
	return dict
}

// qsEscape percent-encodes a query parameter name or value. Nothing
// beyond the unreserved characters is kept literal, so "=" and "&" only
// ever appear as separators.
func qsEscape(s string) string {
	return escape(s, "")
}

// AddParam appends one name/value pair, keeping all existing pairs
// including those with the same name.
func (q QueryString) AddParam(name, value string) QueryString {
	pair := QueryString(qsEscape(name) + "=" + qsEscape(value))
	if q == "" {
		return pair
	}
	return q + "&" + pair
}

// AddParams appends each given pair in order.
func (q QueryString) AddParams(params ...Param) QueryString {
	for _, param := range params {
		q = q.AddParam(param.Name, param.Value)
	}
	return q
}

// AddParamsMap appends one pair per map entry, in sorted key order so
// that the result is deterministic.
func (q QueryString) AddParamsMap(params map[string]string) QueryString {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		q = q.AddParam(name, params[name])
	}
	return q
}

// SetParam removes every pair named name and appends a single pair with
// the new value, which therefore moves to the end of the query string.
func (q QueryString) SetParam(name, value string) QueryString {
	return q.DelParam(name).AddParam(name, value)
}

// SetParams applies SetParam for each given pair in order.
func (q QueryString) SetParams(params ...Param) QueryString {
	for _, param := range params {
		q = q.SetParam(param.Name, param.Value)
	}
	return q
}

// SetParamsMap applies SetParam per map entry, in sorted key order so
// that the result is deterministic.
func (q QueryString) SetParamsMap(params map[string]string) QueryString {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		q = q.SetParam(name, params[name])
	}
	return q
}

// DelParam removes every pair named name, preserving the relative order
// of the remaining pairs. Deleting an absent name is a no-op.
func (q QueryString) DelParam(name string) QueryString {
	return q.DelParams(name)
}

// DelParams removes every pair matching any of the given names.
func (q QueryString) DelParams(names ...string) QueryString {
	deleted := make(map[string]bool, len(names))
	for _, name := range names {
		deleted[name] = true
	}
	var kept QueryString
	for _, param := range q.List() {
		if !deleted[param.Name] {
			kept = kept.AddParam(param.Name, param.Value)
		}
	}
	return kept
}

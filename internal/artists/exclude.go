package artists

import (
	"strings"

	"golang.org/x/text/cases"
)

// Exclusions is a set of artist names that are never looked up.
type Exclusions map[string]struct{}

// NewExclusions builds an exclusion set from names. Blank names are ignored.
func NewExclusions(names []string) Exclusions {
	set := make(Exclusions, len(names))
	for _, name := range names {
		key := foldName(name)
		if key == "" {
			continue
		}
		set[key] = struct{}{}
	}
	return set
}

// Excludes reports whether name is in the set, ignoring case and
// surrounding whitespace.
func (e Exclusions) Excludes(name string) bool {
	if len(e) == 0 {
		return false
	}
	_, ok := e[foldName(name)]
	return ok
}

// Filter returns the artists not excluded by e, keeping their order.
func (e Exclusions) Filter(in []Artist) []Artist {
	out := make([]Artist, 0, len(in))
	for _, a := range in {
		if e.Excludes(a.Name) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// foldName is the comparison key for artist names.
// A Caser keeps state, so one is made per call.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

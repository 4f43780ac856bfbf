package colormap

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// anyName resolves to Any but is not listed by Names.
const anyName = "ANY"

// Entry pairs a palette name with its identifier.
type Entry struct {
	Name string
	ID   ID
}

func (id ID) String() string {
	if id == Any {
		return anyName
	}
	for _, e := range catalog {
		if e.id == id {
			return e.name
		}
	}
	if id == NotSpecified {
		return ""
	}
	return "ID(" + strconv.Itoa(int(id)) + ")"
}

// Names lists the built-in palettes in catalog order.
func Names() []Entry {
	out := make([]Entry, len(catalog))
	for i, e := range catalog {
		out[i] = Entry{Name: e.name, ID: e.id}
	}
	return out
}

// Resolve maps a name to a palette. Matching ignores case: the first catalog
// name (in catalog order) that prefixes s is used, so "jet_x" resolves to
// Jet. A shorter name listed earlier shadows its longer variants, e.g.
// "RainbowWide" resolves to Rainbow. Unmatched names return def.
func Resolve(s string, def ID) ID {
	fold := cases.Fold()
	in := fold.String(strings.TrimSpace(s))
	if in == "" {
		return def
	}
	for _, e := range catalog {
		if strings.HasPrefix(in, fold.String(e.name)) {
			return e.id
		}
	}
	if strings.HasPrefix(in, fold.String(anyName)) {
		return Any
	}
	return def
}

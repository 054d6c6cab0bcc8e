package listing

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func stripThe(name string) string {
	if len(name) >= 4 && strings.EqualFold(name[:4], "the ") {
		return name[4:]
	}
	return name
}

// SortByName orders a directory alphabetically the way the site lists
// places: case-insensitive and ignoring a leading "The ". A fresh
// collator per call keeps this safe from concurrent handlers.
func SortByName[T any](items []T, name func(T) string) {
	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(stripThe(name(items[i])), stripThe(name(items[j]))) < 0
	})
}

package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/malippew/xivchar"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	q := xivchar.SearchQuery{
		Name:       strings.TrimSpace(c.Name),
		Server:     xivchar.CanonicalName(c.Server),
		DataCenter: xivchar.CanonicalName(c.DC),
	}

	chars, err := deps.Characters.SearchCharacters(deps.Ctx, q)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xivchar.ErrorMessage(err))
		return err
	}

	if c.Sort {
		sortByName(chars)
	}

	if c.JSON {
		return writeJSON(deps.Stdout, chars)
	}

	if len(chars) == 0 {
		fmt.Fprintf(deps.Stdout, "No characters found for %q.\n", q.Name)
		return nil
	}

	for _, ch := range chars {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", ch.ID, ch.Name, worldLabel(ch.Server, ch.DataCenter))
	}

	return nil
}

// sortByName orders characters by name using locale-independent collation,
// so accented names sort next to their unaccented forms.
func sortByName(chars []*xivchar.CharacterSummary) {
	col := collate.New(language.Und)
	slices.SortStableFunc(chars, func(a, b *xivchar.CharacterSummary) int {
		return col.CompareString(a.Name, b.Name)
	})
}

func worldLabel(server, dataCenter string) string {
	switch {
	case server == "":
		return "(unknown world)"
	case dataCenter == "":
		return server
	default:
		return server + " [" + dataCenter + "]"
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/malippew/xivchar"
)

// Run executes the worlds command.
func (c *WorldsCmd) Run(deps *Dependencies) error {
	areas := xivchar.Areas()
	if c.Live {
		var err error
		if areas, err = deps.Characters.FindWorlds(deps.Ctx); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", xivchar.ErrorMessage(err))
			return err
		}
	}

	if c.DC != "" {
		name := xivchar.CanonicalName(c.DC)
		areas = filterAreas(areas, name)
		if len(areas) == 0 {
			fmt.Fprintf(deps.Stderr, "error: data center %q not found. Use 'xivchar worlds' to list data centers.\n", name)
			return xivchar.Errorf(xivchar.ENOTFOUND, "data center %q not found", name)
		}
	}

	if c.JSON {
		return writeJSON(deps.Stdout, areas)
	}

	for _, a := range areas {
		fmt.Fprintln(deps.Stdout, a.Name)
		for _, dc := range a.DataCenters {
			fmt.Fprintf(deps.Stdout, "  %s: %s\n", dc.Name, strings.Join(dc.Worlds, ", "))
		}
	}
	return nil
}

// filterAreas keeps only the named data center, dropping areas left empty.
func filterAreas(areas []xivchar.Area, dataCenter string) []xivchar.Area {
	filtered := make([]xivchar.Area, 0, 1)
	for _, a := range areas {
		for _, dc := range a.DataCenters {
			if dc.Name == dataCenter {
				filtered = append(filtered, xivchar.Area{Name: a.Name, DataCenters: []xivchar.DataCenter{dc}})
			}
		}
	}
	return filtered
}

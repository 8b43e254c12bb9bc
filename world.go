package xivchar

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Area groups the data centers of one part of the world (e.g., "Europe").
type Area struct {
	Name        string       `json:"name"`
	DataCenters []DataCenter `json:"dataCenters"`
}

// DataCenter groups the worlds characters can be created on.
type DataCenter struct {
	Name   string   `json:"name"`
	Worlds []string `json:"worlds"`
}

//go:embed worlds.json
var worldsJSON []byte

// worlds is decoded once at startup and never mutated.
var worlds = mustLoadWorlds(worldsJSON)

type worldTable struct {
	areas []Area

	// data center -> set of worlds
	members map[string]map[string]struct{}

	// world -> data centers listing it, in table order
	dataCenters map[string][]string
}

func mustLoadWorlds(data []byte) *worldTable {
	t, err := loadWorlds(data)
	if err != nil {
		panic(fmt.Sprintf("xivchar: invalid embedded world table: %v", err))
	}
	return t
}

func loadWorlds(data []byte) (*worldTable, error) {
	var areas []Area
	if err := json.Unmarshal(data, &areas); err != nil {
		return nil, err
	}

	t := &worldTable{
		areas:       areas,
		members:     make(map[string]map[string]struct{}),
		dataCenters: make(map[string][]string),
	}
	for _, area := range areas {
		for _, dc := range area.DataCenters {
			if _, ok := t.members[dc.Name]; ok {
				return nil, fmt.Errorf("duplicate data center %q", dc.Name)
			}
			set := make(map[string]struct{}, len(dc.Worlds))
			for _, w := range dc.Worlds {
				if _, ok := set[w]; ok {
					return nil, fmt.Errorf("duplicate world %q in data center %q", w, dc.Name)
				}
				set[w] = struct{}{}
				t.dataCenters[w] = append(t.dataCenters[w], dc.Name)
			}
			t.members[dc.Name] = set
		}
	}
	return t, nil
}

// IsMember reports whether world is listed under dataCenter.
// Matching is exact and case-sensitive; unknown names return false.
func IsMember(world, dataCenter string) bool {
	set, ok := worlds.members[dataCenter]
	if !ok {
		return false
	}
	_, ok = set[world]
	return ok
}

// IsDataCenter reports whether name is a known data center.
func IsDataCenter(name string) bool {
	_, ok := worlds.members[name]
	return ok
}

// IsWorld reports whether name is a known world in any data center.
func IsWorld(name string) bool {
	_, ok := worlds.dataCenters[name]
	return ok
}

// DataCentersOf returns the data centers listing world.
// Most worlds belong to exactly one data center.
func DataCentersOf(world string) []string {
	return append([]string(nil), worlds.dataCenters[world]...)
}

// DataCenterNames returns all data center names in table order.
func DataCenterNames() []string {
	var names []string
	for _, area := range worlds.areas {
		for _, dc := range area.DataCenters {
			names = append(names, dc.Name)
		}
	}
	return names
}

// Areas returns a copy of the world table.
func Areas() []Area {
	areas := make([]Area, len(worlds.areas))
	for i, area := range worlds.areas {
		dcs := make([]DataCenter, len(area.DataCenters))
		for j, dc := range area.DataCenters {
			dcs[j] = DataCenter{
				Name:   dc.Name,
				Worlds: append([]string(nil), dc.Worlds...),
			}
		}
		areas[i] = Area{Name: area.Name, DataCenters: dcs}
	}
	return areas
}

// CanonicalName capitalizes user input the way world and data center names
// are written ("light" -> "Light", "ZODIARK" -> "Zodiark").
func CanonicalName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Title(language.Und).String(s)
}

package xivchar

import (
	"net/url"
	"strconv"
	"strings"
)

// ExtractSearch reads the character entries of a Lodestone search listing.
//
// Entries keep document order. An entry without a usable profile link is
// skipped; any other missing field degrades to an empty string. When q names
// a data center but no server, only entries on that data center are kept.
// When q names a server the listing is trusted as already scoped.
func ExtractSearch(doc Node, origin string, q SearchQuery, onMalformed MalformedFunc) []*CharacterSummary {
	characters := make([]*CharacterSummary, 0)

	for i, entry := range doc.Find(".entry__link") {
		href, _ := entry.Attr("href")
		href = strings.TrimSpace(href)
		id := lastPathSegment(href)
		if id == "" {
			malformed(onMalformed, "search entry %d: missing profile link", i)
			continue
		}

		character := &CharacterSummary{
			ID:         id,
			ProfileURL: resolveURL(origin, href),
		}
		character.Name, _ = textOf(entry, ".entry__name")
		if character.Name == "" {
			malformed(onMalformed, "search entry %d (%s): missing name", i, id)
		}

		label, _ := textOf(entry, ".entry__world")
		if server, dataCenter, ok := splitWorldLabel(label); ok {
			character.Server = server
			character.DataCenter = dataCenter
		} else {
			malformed(onMalformed, "search entry %d (%s): unrecognized world label %q", i, id, label)
		}

		character.Lang, _ = textOf(entry, ".entry__chara__lang")
		character.Avatar, _ = attrOf(entry, ".entry__chara__face img", "src")

		characters = append(characters, character)
	}

	return FilterByDataCenter(characters, q)
}

// FilterByDataCenter applies the data center filter of a search query.
// It keeps characters whose data center matches, or whose server belongs to
// the data center in the world table. Queries naming a server, or naming no
// data center, return characters unchanged.
func FilterByDataCenter(characters []*CharacterSummary, q SearchQuery) []*CharacterSummary {
	if q.DataCenter == "" || q.Server != "" {
		return characters
	}

	filtered := make([]*CharacterSummary, 0, len(characters))
	for _, c := range characters {
		if c.DataCenter == q.DataCenter || IsMember(c.Server, q.DataCenter) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// ExtractDetail reads a Lodestone character profile page.
//
// The character name is the only mandatory field: without it the page is not
// a profile and ENOTFOUND is returned. Job rows whose name normalizes to
// empty are dropped; unreadable levels are recorded as 0.
func ExtractDetail(doc Node, origin, id string, onMalformed MalformedFunc) (*CharacterDetail, error) {
	name, _ := textOf(doc, ".frame__chara__name")
	if name == "" {
		return nil, Errorf(ENOTFOUND, "character %q not found", id)
	}

	detail := &CharacterDetail{
		ID:         id,
		Name:       name,
		ProfileURL: CharacterURL(origin, id),
		Jobs:       make([]Job, 0),
	}
	detail.Title, _ = textOf(doc, ".frame__chara__title")
	detail.Avatar, _ = attrOf(doc, ".frame__chara__face img", "src")
	detail.Portrait, _ = attrOf(doc, ".character__detail__image img", "src")

	if label, ok := textOf(doc, ".frame__chara__world"); ok {
		detail.Server, detail.DataCenter, _ = splitWorldLabel(label)
	}

	for i, row := range doc.Find(".character__level__list li") {
		tooltip, _ := attrOf(row, "img", "data-tooltip")
		jobName := NormalizeJobName(tooltip)
		if jobName == "" {
			malformed(onMalformed, "character %s: job row %d has no job name", id, i)
			continue
		}

		levelText := strings.TrimSpace(row.Text())
		level, ok := parseLevel(levelText)
		if !ok {
			malformed(onMalformed, "character %s: job %s has unreadable level %q", id, jobName, levelText)
		}

		image, _ := attrOf(row, "img", "src")
		detail.Jobs = append(detail.Jobs, Job{
			Name:  jobName,
			Level: level,
			Image: image,
		})
	}

	if link, ok := first(doc, ".character__freecompany__name a"); ok {
		href, _ := link.Attr("href")
		href = strings.TrimSpace(href)
		fc := &FreeCompany{
			ID:   lastPathSegment(href),
			Name: strings.TrimSpace(link.Text()),
			URL:  resolveURL(origin, href),
		}
		if fc.ID == "" {
			malformed(onMalformed, "character %s: free company link has no ID", id)
		}
		detail.FreeCompany = fc
	}

	return detail, nil
}

// ExtractWorlds reads the areas, data centers and worlds listed on the
// Lodestone world status page. Areas come from the region tabs; each tab's
// data-region attribute selects the data center groups shown under it.
func ExtractWorlds(doc Node) []Area {
	areas := make([]Area, 0)

	for _, tab := range doc.Find(".world__tab li") {
		name, _ := textOf(tab, "span")
		area := Area{Name: name, DataCenters: make([]DataCenter, 0)}

		region, _ := tab.Attr("data-region")
		if region != "" && !strings.ContainsAny(region, `"\`) {
			selector := `[data-region="` + region + `"] ul.world-dcgroup > li`
			for _, group := range doc.Find(selector) {
				dcName, _ := textOf(group, "h2")
				dc := DataCenter{Name: dcName, Worlds: make([]string, 0)}
				for _, w := range group.Find(".world-list__world_name p") {
					if world := strings.TrimSpace(w.Text()); world != "" {
						dc.Worlds = append(dc.Worlds, world)
					}
				}
				area.DataCenters = append(area.DataCenters, dc)
			}
		}

		areas = append(areas, area)
	}

	return areas
}

// splitWorldLabel splits a "World [DataCenter]" label.
// ok is false when the label does not have exactly that shape. server then
// holds the text before " [", or the whole trimmed label when there is none.
func splitWorldLabel(label string) (server, dataCenter string, ok bool) {
	label = strings.TrimSpace(label)
	server, rest, found := strings.Cut(label, " [")
	if !found {
		return label, "", false
	}
	server = strings.TrimSpace(server)
	rest = strings.TrimSpace(rest)
	inner, closed := strings.CutSuffix(rest, "]")
	if !closed || strings.ContainsAny(inner, "[]") {
		return server, "", false
	}
	dataCenter = strings.TrimSpace(inner)
	return server, dataCenter, server != "" && dataCenter != ""
}

// parseLevel parses a job level. Anything but a non-negative integer
// yields (0, false); unlike a prefix parse, "90 (max)" is rejected whole.
func parseLevel(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// lastPathSegment returns the final non-empty segment of a link's path,
// e.g. "21274737" for "/lodestone/character/21274737/".
func lastPathSegment(href string) string {
	path := href
	if u, err := url.Parse(href); err == nil {
		path = u.Path
	}
	parts := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// resolveURL resolves a link against the Lodestone origin.
// Absolute links are returned unchanged.
func resolveURL(origin, href string) string {
	base, err := url.Parse(origin)
	if err != nil {
		return origin + href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return origin + href
	}
	return base.ResolveReference(ref).String()
}

// first returns the first descendant matching selector.
func first(n Node, selector string) (Node, bool) {
	nodes := n.Find(selector)
	if len(nodes) == 0 {
		return nil, false
	}
	return nodes[0], true
}

// textOf returns the trimmed text of the first descendant matching selector.
func textOf(n Node, selector string) (string, bool) {
	match, ok := first(n, selector)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(match.Text()), true
}

// attrOf returns an attribute of the first descendant matching selector.
func attrOf(n Node, selector, name string) (string, bool) {
	match, ok := first(n, selector)
	if !ok {
		return "", false
	}
	return match.Attr(name)
}

func malformed(fn MalformedFunc, format string, args ...any) {
	if fn != nil {
		fn(Errorf(EMALFORMED, format, args...))
	}
}

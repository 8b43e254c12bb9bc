package xivchar_test

import (
	"encoding/json"
	"testing"

	"github.com/malippew/xivchar"
	"github.com/malippew/xivchar/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lightSearchHTML is a Lodestone listing with three characters on the Light
// data center.
const lightSearchHTML = `
<div class="entry"><a href="/lodestone/character/21274737/" class="entry__link"><div class="entry__chara__face"><img src="https://img2.finalfantasyxiv.com/f/f714bf5b77bf7f7ee6f7888b77e8fac1_644311b63b607133c989d7c1188467dafc0.jpg?1741898335" alt="Pippo Malippo"></div><div class="entry__box entry__box--world"><p class="entry__name">Pippo Malippo</p><p class="entry__world"><i class="xiv-lds xiv-lds-home-world js__tooltip" data-tooltip="Home World"></i>Odin [Light]</p><ul class="entry__chara_info"><li><i class="list__ic__class"><img src="https://lds-img.finalfantasyxiv.com/h/e/VYP1LKTDpt8uJVvUT7OKrXNL9E.png" width="20" height="20" alt=""></i><span>4</span></li></ul></div><div class="entry__chara__lang">EN</div></a></div>
<div class="entry"><a href="/lodestone/character/19051514/" class="entry__link"><div class="entry__chara__face"><img src="https://img2.finalfantasyxiv.com/f/d5cee8780cf3e58d3d5947591ff062c0_7206469080400ed57a5373d0a9c55c59fc0.jpg?1741900096" alt="Atrialns Bamalippp"></div><div class="entry__box entry__box--world"><p class="entry__name">Atrialns Bamalippp</p><p class="entry__world"><i class="xiv-lds xiv-lds-home-world js__tooltip" data-tooltip="Home World"></i>Lich [Light]</p><ul class="entry__chara_info"><li><i class="list__ic__class"><img src="https://lds-img.finalfantasyxiv.com/h/e/VYP1LKTDpt8uJVvUT7OKrXNL9E.png" width="20" height="20" alt=""></i><span>1</span></li></ul></div><div class="entry__chara__lang">EN</div></a></div>
<div class="entry"><a href="/lodestone/character/10164834/" class="entry__link"><div class="entry__chara__face"><img src="https://img2.finalfantasyxiv.com/f/f396b85d7ef3b58c38c3f625c2816145_c274370774c6bc3483cc8740805f41bcfc0.jpg?1741897358" alt="Malippe Wilerck"></div><div class="entry__box entry__box--world"><p class="entry__name">Malippe Wilerck</p><p class="entry__world"><i class="xiv-lds xiv-lds-home-world js__tooltip" data-tooltip="Home World"></i>Zodiark [Light]</p><ul class="entry__chara_info"><li><i class="list__ic__class"><img src="https://lds-img.finalfantasyxiv.com/h/b/ACAcQe3hWFxbWRVPqxKj_MzDiY.png" width="20" height="20" alt=""></i><span>100</span></li><li class="js__tooltip" data-tooltip="Maelstrom / Captain"><img src="https://lds-img.finalfantasyxiv.com/h/e/9oKHHz0kfyA88mREoJobcRFT7w.png" width="20" height="20" alt=""></li></ul></div><div class="entry__chara__lang">EN/FR</div></a></div>
`

// mixedSearchHTML lists characters from two data centers, one of them with a
// world label that carries no data center.
const mixedSearchHTML = `
<a href="/lodestone/character/1/" class="entry__link"><p class="entry__name">Alpha One</p><p class="entry__world">Odin [Light]</p></a>
<a href="/lodestone/character/2/" class="entry__link"><p class="entry__name">Chaos Two</p><p class="entry__world">Omega [Chaos]</p></a>
<a href="/lodestone/character/3/" class="entry__link"><p class="entry__name">Bare Three</p><p class="entry__world">Shiva</p></a>
`

const profileHTML = `
<div class="frame__chara">
	<div class="frame__chara__face"><img src="https://img2.finalfantasyxiv.com/f/face.jpg" alt=""></div>
	<div class="frame__chara__box">
		<p class="frame__chara__title">Warrior of Light</p>
		<p class="frame__chara__name">Pippo Malippo</p>
		<p class="frame__chara__world"><i class="xiv-lds xiv-lds-home-world js__tooltip" data-tooltip="Home World"></i>Odin [Light]</p>
	</div>
</div>
<div class="character__detail__image"><img src="https://img2.finalfantasyxiv.com/f/portrait.jpg" alt=""></div>
<div class="character__freecompany__name"><h4><a href="/lodestone/freecompany/9234631035923213559/">Les Malippos</a></h4></div>
<div class="character__level__list">
	<ul>
		<li><img src="https://lds-img.finalfantasyxiv.com/h/pld.png" data-tooltip="Paladin (Gladiator)" alt="">90</li>
		<li><img src="https://lds-img.finalfantasyxiv.com/h/drk.png" data-tooltip="Dark Knight" alt="">-</li>
		<li><img src="https://lds-img.finalfantasyxiv.com/h/fsh.png" data-tooltip="Fisher/Angler" alt="">—</li>
		<li><img src="https://lds-img.finalfantasyxiv.com/h/unknown.png" data-tooltip="(Unknown)" alt="">50</li>
	</ul>
</div>
`

func mustParse(t *testing.T, html string) xivchar.Node {
	t.Helper()

	doc, err := goquery.Parse(html)
	require.NoError(t, err)
	return doc
}

func TestExtractSearch(t *testing.T) {
	t.Parallel()

	t.Run("returns characters filtered by data center", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, lightSearchHTML)

		characters := xivchar.ExtractSearch(doc, testOrigin, xivchar.SearchQuery{Name: "Malipp", DataCenter: "Light"}, nil)

		require.Len(t, characters, 3)
		assert.Equal(t, &xivchar.CharacterSummary{
			ID:         "21274737",
			Name:       "Pippo Malippo",
			Server:     "Odin",
			Lang:       "EN",
			Avatar:     "https://img2.finalfantasyxiv.com/f/f714bf5b77bf7f7ee6f7888b77e8fac1_644311b63b607133c989d7c1188467dafc0.jpg?1741898335",
			ProfileURL: testOrigin + "/lodestone/character/21274737/",
			DataCenter: "Light",
		}, characters[0])
		assert.Equal(t, "19051514", characters[1].ID)
		assert.Equal(t, "Lich", characters[1].Server)
		assert.Equal(t, "Light", characters[1].DataCenter)
		assert.Equal(t, "10164834", characters[2].ID)
		assert.Equal(t, "Zodiark", characters[2].Server)
		assert.Equal(t, "EN/FR", characters[2].Lang)
	})

	t.Run("passes results through when a server is given", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, lightSearchHTML)

		characters := xivchar.ExtractSearch(doc, testOrigin, xivchar.SearchQuery{Name: "Malipp", Server: "Odin"}, nil)

		assert.Len(t, characters, 3)
	})

	t.Run("does not filter when server and data center are both given", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, mixedSearchHTML)

		characters := xivchar.ExtractSearch(doc, testOrigin, xivchar.SearchQuery{Name: "x", Server: "Odin", DataCenter: "Light"}, nil)

		assert.Len(t, characters, 3)
	})

	t.Run("keeps document order", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, mixedSearchHTML)

		characters := xivchar.ExtractSearch(doc, testOrigin, xivchar.SearchQuery{Name: "x"}, nil)

		require.Len(t, characters, 3)
		assert.Equal(t, "1", characters[0].ID)
		assert.Equal(t, "2", characters[1].ID)
		assert.Equal(t, "3", characters[2].ID)
	})

	t.Run("filters out other data centers", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, mixedSearchHTML)

		characters := xivchar.ExtractSearch(doc, testOrigin, xivchar.SearchQuery{Name: "x", DataCenter: "Light"}, nil)

		require.Len(t, characters, 1)
		assert.Equal(t, "1", characters[0].ID)
	})

	t.Run("keeps entry with unrecognized world label with empty fields", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, mixedSearchHTML)
		var issues []error

		characters := xivchar.ExtractSearch(doc, testOrigin, xivchar.SearchQuery{Name: "x"}, func(err error) {
			issues = append(issues, err)
		})

		require.Len(t, characters, 3)
		assert.Equal(t, "Bare Three", characters[2].Name)
		assert.Empty(t, characters[2].Server)
		assert.Empty(t, characters[2].DataCenter)
		require.Len(t, issues, 1)
		assert.Equal(t, xivchar.EMALFORMED, xivchar.ErrorCode(issues[0]))
		assert.Contains(t, xivchar.ErrorMessage(issues[0]), "Shiva")
	})

	t.Run("rejects world label with trailing text", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `
<a href="/lodestone/character/8/" class="entry__link"><p class="entry__name">Trailing Text</p><p class="entry__world">Odin [Light] x</p></a>
<a href="/lodestone/character/9/" class="entry__link"><p class="entry__name">Nested Bracket</p><p class="entry__world">Odin [Li[ght]</p></a>
<a href="/lodestone/character/10/" class="entry__link"><p class="entry__name">Unclosed</p><p class="entry__world">Odin [Light</p></a>
`)
		var issues []error

		characters := xivchar.ExtractSearch(doc, testOrigin, xivchar.SearchQuery{Name: "x"}, func(err error) {
			issues = append(issues, err)
		})

		require.Len(t, characters, 3)
		for _, c := range characters {
			assert.Empty(t, c.Server, c.Name)
			assert.Empty(t, c.DataCenter, c.Name)
		}
		require.Len(t, issues, 3)
		for _, issue := range issues {
			assert.Equal(t, xivchar.EMALFORMED, xivchar.ErrorCode(issue))
		}
	})

	t.Run("keeps linked entry without a name and reports it", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<a href="/lodestone/character/7/" class="entry__link"><p class="entry__world">Odin [Light]</p></a>`)
		var issues []error

		characters := xivchar.ExtractSearch(doc, testOrigin, xivchar.SearchQuery{Name: "x"}, func(err error) {
			issues = append(issues, err)
		})

		require.Len(t, characters, 1)
		assert.Equal(t, "7", characters[0].ID)
		assert.Empty(t, characters[0].Name)
		assert.Equal(t, "Odin", characters[0].Server)
		assert.Equal(t, "Light", characters[0].DataCenter)
		require.Len(t, issues, 1)
		assert.Equal(t, xivchar.EMALFORMED, xivchar.ErrorCode(issues[0]))
		assert.Contains(t, xivchar.ErrorMessage(issues[0]), "missing name")
	})

	t.Run("skips entries without a profile link", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `
<a class="entry__link"><p class="entry__name">No Link</p></a>
<a href="" class="entry__link"><p class="entry__name">Empty Link</p></a>
<a href="/" class="entry__link"><p class="entry__name">Root Link</p></a>
<a href="/lodestone/character/42/" class="entry__link"><p class="entry__name">Kept</p><p class="entry__world">Odin [Light]</p></a>
`)
		var issues []error

		characters := xivchar.ExtractSearch(doc, testOrigin, xivchar.SearchQuery{Name: "x"}, func(err error) {
			issues = append(issues, err)
		})

		require.Len(t, characters, 1)
		assert.Equal(t, "42", characters[0].ID)
		assert.Equal(t, "Kept", characters[0].Name)
		assert.Len(t, issues, 3)
	})

	t.Run("returns empty slice when no entries match", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<p class="parts__zero">No results found.</p>`)

		characters := xivchar.ExtractSearch(doc, testOrigin, xivchar.SearchQuery{Name: "Nobody", DataCenter: "Light"}, nil)

		require.NotNil(t, characters)
		assert.Empty(t, characters)
	})

	t.Run("handles unrelated markup", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<div>Incomplete HTML with no character entries`)

		characters := xivchar.ExtractSearch(doc, testOrigin, xivchar.SearchQuery{Name: "Malipp"}, nil)

		assert.Empty(t, characters)
	})

	t.Run("keeps absolute profile links", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<a href="https://na.finalfantasyxiv.com/lodestone/character/7/" class="entry__link"><p class="entry__name">Far Away</p></a>`)

		characters := xivchar.ExtractSearch(doc, testOrigin, xivchar.SearchQuery{Name: "x"}, nil)

		require.Len(t, characters, 1)
		assert.Equal(t, "7", characters[0].ID)
		assert.Equal(t, "https://na.finalfantasyxiv.com/lodestone/character/7/", characters[0].ProfileURL)
	})
}

func TestFilterByDataCenter(t *testing.T) {
	t.Parallel()

	characters := []*xivchar.CharacterSummary{
		{ID: "1", Server: "Odin", DataCenter: "Light"},
		{ID: "2", Server: "Omega", DataCenter: "Chaos"},
		{ID: "3", Server: "Lich"},
		{ID: "4", Server: "Nowhere", DataCenter: "Light"},
	}

	t.Run("keeps matching data center or member world", func(t *testing.T) {
		t.Parallel()

		got := xivchar.FilterByDataCenter(characters, xivchar.SearchQuery{DataCenter: "Light"})

		require.Len(t, got, 3)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
		assert.Equal(t, "4", got[2].ID)
	})

	t.Run("no data center returns input", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, xivchar.FilterByDataCenter(characters, xivchar.SearchQuery{}), 4)
	})

	t.Run("server given returns input", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, xivchar.FilterByDataCenter(characters, xivchar.SearchQuery{Server: "Odin", DataCenter: "Chaos"}), 4)
	})
}

func TestExtractDetail(t *testing.T) {
	t.Parallel()

	t.Run("extracts full profile", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, profileHTML)

		detail, err := xivchar.ExtractDetail(doc, testOrigin, "21274737", nil)

		require.NoError(t, err)
		assert.Equal(t, "21274737", detail.ID)
		assert.Equal(t, "Pippo Malippo", detail.Name)
		assert.Equal(t, "Warrior of Light", detail.Title)
		assert.Equal(t, "Odin", detail.Server)
		assert.Equal(t, "Light", detail.DataCenter)
		assert.Equal(t, "https://img2.finalfantasyxiv.com/f/face.jpg", detail.Avatar)
		assert.Equal(t, "https://img2.finalfantasyxiv.com/f/portrait.jpg", detail.Portrait)
		assert.Equal(t, testOrigin+"/lodestone/character/21274737/", detail.ProfileURL)
	})

	t.Run("normalizes job names and defaults unreadable levels", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, profileHTML)
		var issues []error

		detail, err := xivchar.ExtractDetail(doc, testOrigin, "21274737", func(err error) {
			issues = append(issues, err)
		})

		require.NoError(t, err)
		assert.Equal(t, []xivchar.Job{
			{Name: "Paladin", Level: 90, Image: "https://lds-img.finalfantasyxiv.com/h/pld.png"},
			{Name: "Dark Knight", Level: 0, Image: "https://lds-img.finalfantasyxiv.com/h/drk.png"},
			{Name: "Fisher", Level: 0, Image: "https://lds-img.finalfantasyxiv.com/h/fsh.png"},
		}, detail.Jobs)
		assert.Len(t, issues, 3)
		for _, issue := range issues {
			assert.Equal(t, xivchar.EMALFORMED, xivchar.ErrorCode(issue))
		}
	})

	t.Run("extracts free company", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, profileHTML)

		detail, err := xivchar.ExtractDetail(doc, testOrigin, "21274737", nil)

		require.NoError(t, err)
		require.NotNil(t, detail.FreeCompany)
		assert.Equal(t, xivchar.FreeCompany{
			ID:   "9234631035923213559",
			Name: "Les Malippos",
			URL:  testOrigin + "/lodestone/freecompany/9234631035923213559/",
		}, *detail.FreeCompany)
	})

	t.Run("free company is nil when not linked", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<p class="frame__chara__name">Lone Wolf</p>`)

		detail, err := xivchar.ExtractDetail(doc, testOrigin, "1", nil)

		require.NoError(t, err)
		assert.Nil(t, detail.FreeCompany)
	})

	t.Run("optional fields default to empty", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<p class="frame__chara__name">Lone Wolf</p>`)

		detail, err := xivchar.ExtractDetail(doc, testOrigin, "1", nil)

		require.NoError(t, err)
		assert.Empty(t, detail.Title)
		assert.Empty(t, detail.Portrait)
		assert.Empty(t, detail.Avatar)
		assert.Empty(t, detail.Server)
		assert.Empty(t, detail.DataCenter)
		require.NotNil(t, detail.Jobs)
		assert.Empty(t, detail.Jobs)
	})

	t.Run("world label without data center keeps the world", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<p class="frame__chara__name">Lone Wolf</p><p class="frame__chara__world">Odin</p>`)

		detail, err := xivchar.ExtractDetail(doc, testOrigin, "1", nil)

		require.NoError(t, err)
		assert.Equal(t, "Odin", detail.Server)
		assert.Empty(t, detail.DataCenter)
	})

	t.Run("keeps job row without level text at level 0", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<p class="frame__chara__name">Lone Wolf</p>
<ul class="character__level__list"><li><img src="a.png" data-tooltip="Dark Knight"></li></ul>`)
		var issues []error

		detail, err := xivchar.ExtractDetail(doc, testOrigin, "1", func(err error) {
			issues = append(issues, err)
		})

		require.NoError(t, err)
		assert.Equal(t, []xivchar.Job{{Name: "Dark Knight", Level: 0, Image: "a.png"}}, detail.Jobs)
		require.Len(t, issues, 1)
		assert.Equal(t, xivchar.EMALFORMED, xivchar.ErrorCode(issues[0]))
	})

	t.Run("world label with trailing text keeps only the world", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<p class="frame__chara__name">Lone Wolf</p><p class="frame__chara__world">Odin [Light] x</p>`)

		detail, err := xivchar.ExtractDetail(doc, testOrigin, "1", nil)

		require.NoError(t, err)
		assert.Equal(t, "Odin", detail.Server)
		assert.Empty(t, detail.DataCenter)
	})

	t.Run("returns not found without a name", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<div class="error__heading">The page you are searching for cannot be found.</div>`)

		detail, err := xivchar.ExtractDetail(doc, testOrigin, "404", nil)

		assert.Nil(t, detail)
		assert.Equal(t, xivchar.ENOTFOUND, xivchar.ErrorCode(err))
	})

	t.Run("returns not found for blank name", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<p class="frame__chara__name">   </p>`)

		_, err := xivchar.ExtractDetail(doc, testOrigin, "1", nil)

		assert.Equal(t, xivchar.ENOTFOUND, xivchar.ErrorCode(err))
	})
}

func TestExtractWorlds(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `
<ul class="world__tab">
	<li data-region="2"><span>North America</span></li>
	<li data-region="3"><span>Europe</span></li>
	<li><span>Coming Soon</span></li>
</ul>
<div class="js--tab-content" data-region="2">
	<div>
		<ul class="world-dcgroup">
			<li>
				<h2 class="world-dcgroup__header">Dynamis</h2>
				<ul>
					<li class="item-list"><div class="world-list__world_name"><p>Halicarnassus</p></div></li>
					<li class="item-list"><div class="world-list__world_name"><p>Maduin</p></div></li>
				</ul>
			</li>
		</ul>
	</div>
</div>
<div class="js--tab-content" data-region="3">
	<div>
		<ul class="world-dcgroup">
			<li>
				<h2 class="world-dcgroup__header">Chaos</h2>
				<ul><li class="item-list"><div class="world-list__world_name"><p>Cerberus</p></div></li></ul>
			</li>
			<li>
				<h2 class="world-dcgroup__header">Light</h2>
				<ul><li class="item-list"><div class="world-list__world_name"><p>Alpha</p></div></li></ul>
			</li>
		</ul>
	</div>
</div>
`)

	areas := xivchar.ExtractWorlds(doc)

	require.Len(t, areas, 3)
	assert.Equal(t, xivchar.Area{
		Name: "North America",
		DataCenters: []xivchar.DataCenter{
			{Name: "Dynamis", Worlds: []string{"Halicarnassus", "Maduin"}},
		},
	}, areas[0])
	assert.Equal(t, xivchar.Area{
		Name: "Europe",
		DataCenters: []xivchar.DataCenter{
			{Name: "Chaos", Worlds: []string{"Cerberus"}},
			{Name: "Light", Worlds: []string{"Alpha"}},
		},
	}, areas[1])
	assert.Equal(t, "Coming Soon", areas[2].Name)
	assert.Empty(t, areas[2].DataCenters)
}

func TestCharacterJSON(t *testing.T) {
	t.Parallel()

	t.Run("summary uses documented field names", func(t *testing.T) {
		t.Parallel()

		summary := xivchar.CharacterSummary{ID: "1", Name: "A", Server: "Odin", Lang: "EN", Avatar: "a.jpg", ProfileURL: "p", DataCenter: "Light"}

		data, err := json.Marshal(summary)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"1","name":"A","server":"Odin","lang":"EN","avatar":"a.jpg","profileUrl":"p","dataCenter":"Light"}`, string(data))

		var decoded xivchar.CharacterSummary
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, summary, decoded)
	})

	t.Run("detail without free company serializes null", func(t *testing.T) {
		t.Parallel()

		detail := xivchar.CharacterDetail{ID: "1", Name: "A", Jobs: []xivchar.Job{{Name: "Paladin", Level: 90, Image: "pld.png"}}}

		data, err := json.Marshal(detail)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"1","name":"A","title":"","server":"","dataCenter":"","avatar":"","portrait":"","profileUrl":"","jobs":[{"name":"Paladin","level":90,"image":"pld.png"}],"freeCompany":null}`, string(data))

		var decoded xivchar.CharacterDetail
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, detail, decoded)
	})

	t.Run("detail with free company round trips", func(t *testing.T) {
		t.Parallel()

		detail := xivchar.CharacterDetail{
			ID:          "1",
			Name:        "A",
			Jobs:        []xivchar.Job{},
			FreeCompany: &xivchar.FreeCompany{ID: "9", Name: "FC", URL: "u"},
		}

		data, err := json.Marshal(detail)
		require.NoError(t, err)

		var decoded xivchar.CharacterDetail
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, detail, decoded)
	})
}

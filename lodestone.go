package xivchar

import (
	"net/url"
	"slices"
	"strings"
)

// DefaultLang is the Lodestone edition used when none is configured.
const DefaultLang = "eu"

// Langs lists the Lodestone editions, each served from its own host.
var Langs = []string{"na", "eu", "fr", "de", "jp"}

// Origin returns the scheme and host of a Lodestone edition,
// e.g. "https://eu.finalfantasyxiv.com".
// Returns EINVALID for an unknown edition.
func Origin(lang string) (string, error) {
	if !slices.Contains(Langs, lang) {
		return "", Errorf(EINVALID, "unknown Lodestone language %q (expected one of %s)", lang, strings.Join(Langs, ", "))
	}
	return "https://" + lang + ".finalfantasyxiv.com", nil
}

// SearchURL returns the Lodestone character search URL for the query.
func SearchURL(origin string, q SearchQuery) string {
	var b strings.Builder
	b.WriteString(origin)
	b.WriteString("/lodestone/character/?q=")
	b.WriteString(url.QueryEscape(q.Name))
	if q.Server != "" {
		b.WriteString("&worldname=")
		b.WriteString(url.QueryEscape(q.Server))
	}
	if q.DataCenter != "" {
		b.WriteString("&dataCenter=")
		b.WriteString(url.QueryEscape(q.DataCenter))
	}
	return b.String()
}

// CharacterURL returns the Lodestone profile URL of a character.
func CharacterURL(origin, id string) string {
	return origin + "/lodestone/character/" + url.PathEscape(id) + "/"
}

// WorldStatusURL returns the Lodestone world status page URL.
func WorldStatusURL(origin string) string {
	return origin + "/lodestone/worldstatus/"
}

package xivchar

import "context"

// CharacterSummary is the lightweight character representation listed by a
// Lodestone search.
type CharacterSummary struct {
	ID string `json:"id"`

	// Name may be empty when the listing entry has a profile link but no
	// readable name. Such entries are reported as EMALFORMED.
	Name string `json:"name"`

	Server     string `json:"server"`
	Lang       string `json:"lang"`
	Avatar     string `json:"avatar"`
	ProfileURL string `json:"profileUrl"`
	DataCenter string `json:"dataCenter"`
}

// CharacterDetail is the full character representation read from a
// Lodestone profile page.
type CharacterDetail struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Server      string       `json:"server"`
	DataCenter  string       `json:"dataCenter"`
	Avatar      string       `json:"avatar"`
	Portrait    string       `json:"portrait"`
	ProfileURL  string       `json:"profileUrl"`
	Jobs        []Job        `json:"jobs"`
	FreeCompany *FreeCompany `json:"freeCompany"`
}

// Job is one entry of a character's job roster.
type Job struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Image string `json:"image"`
}

// FreeCompany is the guild a character belongs to.
type FreeCompany struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SearchQuery describes a character search.
type SearchQuery struct {
	Name string `json:"name"`

	// Server restricts the search to one world. When set, results are
	// trusted as already scoped and are not filtered again.
	Server string `json:"server"`

	// DataCenter restricts results to one data center when Server is empty.
	DataCenter string `json:"dataCenter"`
}

// Validate returns an error if the query cannot be sent to the Lodestone.
func (q SearchQuery) Validate() error {
	if q.Name == "" {
		return Errorf(EINVALID, "character name required")
	}
	if q.Server != "" && !IsWorld(q.Server) {
		return Errorf(EINVALID, "server %q does not exist", q.Server)
	}
	if q.DataCenter != "" && !IsDataCenter(q.DataCenter) {
		return Errorf(EINVALID, "data center %q does not exist", q.DataCenter)
	}
	return nil
}

// CharacterService looks up characters on the Lodestone.
type CharacterService interface {
	// SearchCharacters returns the characters listed for the query, in the
	// order the Lodestone lists them. No match is an empty slice, not an error.
	SearchCharacters(ctx context.Context, q SearchQuery) ([]*CharacterSummary, error)

	// FindCharacterByID retrieves a character profile.
	// Returns ENOTFOUND if the page does not describe a character and
	// EUPSTREAM if the page could not be fetched.
	FindCharacterByID(ctx context.Context, id string) (*CharacterDetail, error)

	// FindWorlds reads the current areas, data centers and worlds from the
	// Lodestone world status page.
	FindWorlds(ctx context.Context) ([]Area, error)
}

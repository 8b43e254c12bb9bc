package xivchar

// Extractor turns raw Lodestone HTML into typed records.
// Implementations perform no I/O and are safe for concurrent use.
type Extractor interface {
	// ExtractSearch reads a search listing. Results keep document order and
	// are filtered by data center when the query names only a data center.
	// A page without entries yields an empty slice.
	ExtractSearch(html string, q SearchQuery) ([]*CharacterSummary, error)

	// ExtractDetail reads a character profile page.
	// Returns ENOTFOUND if the page carries no character name.
	ExtractDetail(html string, id string) (*CharacterDetail, error)

	// ExtractWorlds reads the world status page.
	ExtractWorlds(html string) ([]Area, error)
}

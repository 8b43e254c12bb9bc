// Package xivchar looks up Final Fantasy XIV characters on the Lodestone.
// It turns Lodestone search listings and character profile pages into
// typed records, and carries the static table of areas, data centers and
// worlds used to filter search results.
//
// This package contains domain types, interfaces and the extraction
// algorithms, following Ben Johnson's Standard Package Layout. Extraction
// works against the Node interface; implementations live in subdirectories
// named after their primary dependency (e.g., goquery/, http/, slog/).
package xivchar

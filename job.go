package xivchar

import "strings"

// NormalizeJobName reduces a job tooltip such as "Paladin (Gladiator)" or
// "Fisher/Angler" to the canonical job name ("Paladin", "Fisher").
// Labels without '/', '(' or ')' are returned trimmed.
func NormalizeJobName(raw string) string {
	if i := strings.IndexAny(raw, "/()"); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(raw)
}

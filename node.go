package xivchar

// Node is a parsed markup node that extraction reads from.
type Node interface {
	// Find returns the descendants matching a CSS selector, in document order.
	// An unknown or invalid selector matches nothing.
	Find(selector string) []Node

	// Text returns the combined text of the node and its descendants.
	Text() string

	// Attr returns the value of the named attribute and whether it is present.
	Attr(name string) (string, bool)
}

// MalformedFunc is called for every entry, job row or link that could only be
// partially extracted. The err has code EMALFORMED.
type MalformedFunc func(err error)

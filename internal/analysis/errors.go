package analysis

import "fmt"

// FormatError reports an entry name which does not follow the
// 'Title (Year) {key-value}...' naming scheme.
type FormatError struct {
	// Name is the entry name being parsed
	Name string

	// Key is the unrecognized metadata key, when that is what failed
	Key string
}

func (e *FormatError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("invalid metadata key %q in name %q", e.Key, e.Name)
	}
	return fmt.Sprintf("invalid name %q", e.Name)
}

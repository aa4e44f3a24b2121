package labeltool

// Record is one row of merge data, mapping field names to values.
type Record map[string]string

// Value returns the value for the given field, or "" if there is none.
// It is safe to call on a nil Record.
func (r Record) Value(key string) string {
	if r == nil {
		return ""
	}
	return r[key]
}

// NoMerge is the type id for "no merge source".
const NoMerge = "None"

// MergeSource describes where merge records come from.
type MergeSource struct {
	// Type is the source type id, e.g. "Text/Comma".
	Type string
	// Source is a path or locator for the data.
	Source string
}

// IsNone tells if this describes "no merge".
// A nil MergeSource is treated the same.
func (m *MergeSource) IsNone() bool {
	return m == nil || m.Type == "" || m.Type == NoMerge
}

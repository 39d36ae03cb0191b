package votable

const defaultIndent = 2

// WriteOptions configures document serialization. The zero value selects
// the defaults; use the With methods to derive adjusted copies.
type WriteOptions struct {
	indent    int
	indentSet bool
}

// NewWriteOptions returns the default write options (two-space indent).
func NewWriteOptions() WriteOptions {
	return WriteOptions{}
}

// WithIndent sets the number of spaces used per nesting level.
func (o WriteOptions) WithIndent(spaces int) WriteOptions {
	o.indent = spaces
	o.indentSet = true
	return o
}

func (o WriteOptions) indentOrDefault() int {
	if !o.indentSet {
		return defaultIndent
	}
	return o.indent
}

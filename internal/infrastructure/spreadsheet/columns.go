package spreadsheet

// Field declares one logical column of a source table: the header name it is
// expected under and the fixed position to use when headers have drifted.
type Field struct {
	Name   string
	Header string
	Index  int
}

// Binding maps logical field names to resolved column indexes for one snapshot.
type Binding struct {
	indexes    map[string]int
	positional bool
}

// Resolve binds fields against a snapshot's header row. Header names are
// matched case-sensitively. If any expected header is missing the whole table
// falls back to the declared fixed positions; a drifted schema degrades, it
// never fails.
func Resolve(headers []string, fields []Field) *Binding {
	byName := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, seen := byName[h]; !seen {
			byName[h] = i
		}
	}

	indexes := make(map[string]int, len(fields))
	for _, f := range fields {
		idx, ok := byName[f.Header]
		if !ok {
			return resolvePositional(fields)
		}
		indexes[f.Name] = idx
	}

	return &Binding{indexes: indexes}
}

func resolvePositional(fields []Field) *Binding {
	indexes := make(map[string]int, len(fields))
	for _, f := range fields {
		indexes[f.Name] = f.Index
	}
	return &Binding{indexes: indexes, positional: true}
}

// Positional reports whether the fallback column layout is in use.
func (b *Binding) Positional() bool {
	return b.positional
}

// Column returns the resolved index for a logical field, or -1 when unknown.
func (b *Binding) Column(field string) int {
	idx, ok := b.indexes[field]
	if !ok {
		return -1
	}
	return idx
}

// Value reads the cell for a logical field out of a data row, returning ""
// for unknown fields or rows shorter than the resolved column.
func (b *Binding) Value(row []string, field string) string {
	idx := b.Column(field)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

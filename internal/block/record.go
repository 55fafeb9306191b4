package block

import "github.com/alboratech/bitcraft/internal/bits"

// Record is the product value spec.md §3 describes: one field per
// declared segment plus a trailing Leftover holding whatever the
// decode left unconsumed. Fields are looked up by segment name rather
// than as Go struct fields because the segment set is only known at
// block-construction time, not at compile time.
type Record struct {
	fields   map[string]interface{}
	Leftover bits.String
}

// NewRecord returns an empty record ready to have fields Set on it
// before being passed to Block.Encode.
func NewRecord() *Record {
	return &Record{fields: make(map[string]interface{})}
}

// Set assigns the value of a named field.
func (r *Record) Set(name string, value interface{}) *Record {
	if r.fields == nil {
		r.fields = make(map[string]interface{})
	}
	r.fields[name] = value
	return r
}

// Get returns a named field's value and whether it was present.
func (r *Record) Get(name string) (interface{}, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// RecordView is the read-only snapshot of a partially-decoded record a
// Resolver sees: the already-decoded fields plus Leftover, but no
// ability to mutate them (spec.md §4.4's "record_view").
type RecordView struct {
	record *Record
}

// Get looks up an already-decoded field by name.
func (v RecordView) Get(name string) (interface{}, bool) {
	return v.record.Get(name)
}

// Leftover returns the unconsumed bits the resolver is choosing a size
// against.
func (v RecordView) Leftover() bits.String {
	return v.record.Leftover
}

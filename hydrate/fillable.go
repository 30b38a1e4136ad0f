package hydrate

// Host is implemented by structs embedding Fillable.
type Host interface {
	fillable() *Fillable
}

// Fillable carries the hydration state of a host: its query filter, its
// overflow buckets and the fields created by dynamic fills. Embed it by
// value; its own fields are never treated as host fields.
type Fillable struct {
	query    Query
	overflow map[string]*Map
	dynamic  *Map
}

func (f *Fillable) fillable() *Fillable {
	return f
}

// Query returns the host's pending filter.
func (f *Fillable) Query() *Query {
	return &f.query
}

// Overflow returns the bucket with the given name, or nil if nothing was
// ever relocated there.
func (f *Fillable) Overflow(name string) *Map {
	return f.overflow[name]
}

// Dynamic returns the fields accepted by fills with dynamic fields enabled.
// Nil until the first one is stored.
func (f *Fillable) Dynamic() *Map {
	return f.dynamic
}

func (f *Fillable) bucket(name string) *Map {
	if f.overflow == nil {
		f.overflow = make(map[string]*Map)
	}

	b, ok := f.overflow[name]
	if !ok {
		b = NewMap()
		f.overflow[name] = b
	}

	return b
}

func (f *Fillable) dynamicFields() *Map {
	if f.dynamic == nil {
		f.dynamic = NewMap()
	}

	return f.dynamic
}

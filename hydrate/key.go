package hydrate

import "strconv"

// Key is a source key: either a string name or an integer list index.
// Name("0") and Index(0) are different keys.
type Key struct {
	name    string
	index   int
	isIndex bool
}

// Name returns a string key.
func Name(name string) Key {
	return Key{name: name}
}

// Index returns an integer key.
func Index(i int) Key {
	return Key{index: i, isIndex: true}
}

func (k Key) IsIndex() bool {
	return k.isIndex
}

// Index returns the list index and true for integer keys.
func (k Key) Index() (int, bool) {
	return k.index, k.isIndex
}

// String returns the name, or the decimal form of an index.
// This is the form the query filter compares against.
func (k Key) String() string {
	if k.isIndex {
		return strconv.Itoa(k.index)
	}

	return k.name
}

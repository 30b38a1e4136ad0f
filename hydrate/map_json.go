package hydrate

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// ParseJSON decodes a JSON object or array into an ordered Map.
// Object members keep document order, array elements become indexes.
// Nested objects decode to *Map and nested arrays to []any.
func ParseJSON(data []byte) (*Map, error) {
	it := jsoniter.ConfigFastest.BorrowIterator(data)
	defer func() {
		it.Error = nil
		jsoniter.ConfigFastest.ReturnIterator(it)
	}()

	m := NewMap()

	switch next := it.WhatIsNext(); next {
	case jsoniter.ObjectValue, jsoniter.ArrayValue:
		readJSONInto(it, m, next)
	default:
		return nil, fmt.Errorf("%w: JSON source must be an object or an array", ErrInvalidArgument)
	}

	if it.Error != nil {
		return nil, fmt.Errorf("failed to parse JSON source: %w", it.Error)
	}

	// Only whitespace may follow; reaching the end sets io.EOF.
	if it.WhatIsNext(); !errors.Is(it.Error, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the JSON source", ErrInvalidArgument)
	}

	return m, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Map) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}

	*m = *parsed

	return nil
}

// MarshalJSON writes the map in insertion order. A map whose keys are
// exactly 0..n-1 is written as an array. An index and a name with the same
// text, such as Index(0) and Name("0"), would share one object member, so
// such a map fails with ErrInvalidArgument.
func (m *Map) MarshalJSON() ([]byte, error) {
	stream := jsoniter.ConfigFastest.BorrowStream(nil)
	defer func() {
		stream.Error = nil
		jsoniter.ConfigFastest.ReturnStream(stream)
	}()

	writeJSON(stream, m)

	if stream.Error != nil {
		return nil, fmt.Errorf("failed to encode map: %w", stream.Error)
	}

	return append([]byte(nil), stream.Buffer()...), nil
}

func readJSONInto(it *jsoniter.Iterator, m *Map, kind jsoniter.ValueType) {
	if kind == jsoniter.ArrayValue {
		it.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			m.Append(readJSONValue(it))
			return it.Error == nil
		})

		return
	}

	it.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		m.Set(field, readJSONValue(it))
		return it.Error == nil
	})
}

func readJSONValue(it *jsoniter.Iterator) any {
	switch it.WhatIsNext() {
	case jsoniter.ObjectValue:
		nested := NewMap()
		readJSONInto(it, nested, jsoniter.ObjectValue)

		return nested

	case jsoniter.ArrayValue:
		list := []any{}

		it.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			list = append(list, readJSONValue(it))
			return it.Error == nil
		})

		return list

	case jsoniter.NumberValue:
		n := it.ReadNumber()
		if i, err := n.Int64(); err == nil {
			return int(i)
		}

		f, err := n.Float64()
		if err != nil {
			it.ReportError("readJSONValue", err.Error())
		}

		return f

	case jsoniter.StringValue:
		return it.ReadString()

	case jsoniter.BoolValue:
		return it.ReadBool()

	case jsoniter.NilValue:
		it.ReadNil()
		return nil

	default:
		it.Skip()
		return nil
	}
}

func writeJSON(stream *jsoniter.Stream, m *Map) {
	if m.Len() > 0 && m.isList() {
		stream.WriteArrayStart()

		for i, v := range m.Values() {
			if i > 0 {
				stream.WriteMore()
			}

			writeJSONValue(stream, v)
		}

		stream.WriteArrayEnd()

		return
	}

	stream.WriteObjectStart()

	seen := make(map[string]struct{}, m.Len())

	first := true
	for k, v := range m.All() {
		name := k.String()
		if _, dup := seen[name]; dup {
			if stream.Error == nil {
				stream.Error = fmt.Errorf("%w: index and name keys both encode as %q", ErrInvalidArgument, name)
			}

			return
		}

		seen[name] = struct{}{}

		if !first {
			stream.WriteMore()
		}

		first = false

		stream.WriteObjectField(name)
		writeJSONValue(stream, v)
	}

	stream.WriteObjectEnd()
}

func writeJSONValue(stream *jsoniter.Stream, v any) {
	if nested, ok := v.(*Map); ok && nested != nil {
		writeJSON(stream, nested)
		return
	}

	stream.WriteVal(v)
}

// Package record models one raw snapshot row as a tree of positional,
// type-tagged values. Every accessor is total: a wrong type, an index past
// the end of a row, a null cell or a missing group all collapse to a
// "not present" result instead of an error, so callers can probe brittle
// provider schemas field by field without ever crashing on malformed data.
package record

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInt64
	KindDouble
	KindBool
	KindGroup
	KindList
)

// Value is a single cell of a row: a scalar, a nested group of further
// values, or a repeated list. The zero Value is null.
type Value struct {
	kind Kind
	str  string
	i64  int64
	f64  float64
	b    bool
	grp  Row
	list []Value
}

// Row is an ordered sequence of values addressed by position.
type Row []Value

func Null() Value                 { return Value{kind: KindNull} }
func String(s string) Value       { return Value{kind: KindString, str: s} }
func Int64(v int64) Value         { return Value{kind: KindInt64, i64: v} }
func Double(v float64) Value      { return Value{kind: KindDouble, f64: v} }
func Bool(v bool) Value           { return Value{kind: KindBool, b: v} }
func Group(fields ...Value) Value { return Value{kind: KindGroup, grp: Row(fields)} }
func List(items ...Value) Value   { return Value{kind: KindList, list: items} }

func (v Value) Kind() Kind { return v.kind }

// at walks a positional path, descending through groups. The boolean is
// false when any step is out of range or lands on a non-group mid-path.
func (r Row) at(path ...int) (Value, bool) {
	if len(path) == 0 {
		return Value{}, false
	}
	cur := r
	for step, idx := range path {
		if idx < 0 || idx >= len(cur) {
			return Value{}, false
		}
		v := cur[idx]
		if step == len(path)-1 {
			return v, true
		}
		if v.kind != KindGroup {
			return Value{}, false
		}
		cur = v.grp
	}
	return Value{}, false
}

// StringAt returns the string scalar at path, if present.
func (r Row) StringAt(path ...int) (string, bool) {
	v, ok := r.at(path...)
	if !ok || v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Int64At returns the 64-bit integer scalar at path, if present.
func (r Row) Int64At(path ...int) (int64, bool) {
	v, ok := r.at(path...)
	if !ok || v.kind != KindInt64 {
		return 0, false
	}
	return v.i64, true
}

// DoubleAt returns the double scalar at path, if present.
func (r Row) DoubleAt(path ...int) (float64, bool) {
	v, ok := r.at(path...)
	if !ok || v.kind != KindDouble {
		return 0, false
	}
	return v.f64, true
}

// BoolAt returns the boolean scalar at path, if present.
func (r Row) BoolAt(path ...int) (bool, bool) {
	v, ok := r.at(path...)
	if !ok || v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// GroupAt returns the nested group at path, if present.
func (r Row) GroupAt(path ...int) (Row, bool) {
	v, ok := r.at(path...)
	if !ok || v.kind != KindGroup {
		return nil, false
	}
	return v.grp, true
}

// StringsAt flattens the repeated list at path into its string elements,
// in order. Non-string and null elements are dropped rather than failing
// the whole list.
func (r Row) StringsAt(path ...int) ([]string, bool) {
	v, ok := r.at(path...)
	if !ok || v.kind != KindList {
		return nil, false
	}
	out := make([]string, 0, len(v.list))
	for _, item := range v.list {
		if item.kind == KindString {
			out = append(out, item.str)
		}
	}
	return out, true
}

// Len reports the number of top-level columns in the row.
func (r Row) Len() int { return len(r) }

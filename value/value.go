// Package value implements the typed, JSON-compatible response value: the
// discriminated tree that is the lingua franca between the parser, the
// (external) resolver runtime, and the JSON codec in this package.
//
// A Value is a tagged union. Exactly one of its payload fields is
// meaningful at a time, selected by Kind(). The zero Value is Null.
package value

import "github.com/profusion/cppgraphqlgen/errors"

// Kind discriminates the variant a Value currently holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindEnumValue
	KindScalar
	KindList
	KindMap
	KindResult
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindEnumValue:
		return "EnumValue"
	case KindScalar:
		return "Scalar"
	case KindList:
		return "List"
	case KindMap:
		return "Map"
	case KindResult:
		return "Result"
	default:
		return "Unknown"
	}
}

// StructuredError is the {message, location?, path?} shape consumed by
// BuildErrorValues (spec.md §4.B) and produced at the top of the wire
// format (spec.md §6).
type StructuredError struct {
	Message   string
	Locations []errors.Location
	Path      []interface{}
}

// result is the payload of a KindResult Value: a {data, errors} pair
// that ToMap flattens per spec.md §4.A.
type result struct {
	data   Value
	errors []StructuredError
}

// Value is the discriminated response value described in spec.md §3.1.
// It is not safe for concurrent use from multiple goroutines; share it by
// Clone()ing or by handing off ownership, never by mutating a shared
// instance (spec.md §5).
type Value struct {
	kind Kind

	b        bool
	i        int32
	f        float64
	s        string
	fromJSON bool // only meaningful when kind == KindString

	scalar *Value
	list   []Value
	m      *orderedMap
	res    *result
}

// New creates a zero-valued Value of the given kind. List and Map start
// empty; Scalar wraps a fresh Null Value.
func New(kind Kind) Value {
	v := Value{kind: kind}
	switch kind {
	case KindMap:
		v.m = newOrderedMap(0)
	case KindList:
		v.list = nil
	case KindScalar:
		inner := Value{kind: KindNull}
		v.scalar = &inner
	case KindResult:
		v.res = &result{}
	}
	return v
}

// Kind returns the value's current discriminant. A moved-from Value
// reports KindNull.
func (v *Value) Kind() Kind {
	return v.kind
}

// Reserve pre-sizes the backing storage of a Map or List. On any other
// kind it fails with InvalidKind, matching §4.A.
func (v *Value) Reserve(n int) error {
	switch v.kind {
	case KindList:
		if cap(v.list)-len(v.list) < n {
			grown := make([]Value, len(v.list), len(v.list)+n)
			copy(grown, v.list)
			v.list = grown
		}
		return nil
	case KindMap:
		v.m.reserve(n)
		return nil
	default:
		return invalidKind("Reserve", KindMap, v.kind)
	}
}

// Size returns the number of elements for Map and List, or the number of
// top-level keys ("data" and optionally "errors") for Result.
func (v *Value) Size() (int, error) {
	switch v.kind {
	case KindList:
		return len(v.list), nil
	case KindMap:
		return v.m.size(), nil
	case KindResult:
		n := 1
		if len(v.res.errors) > 0 {
			n++
		}
		return n, nil
	default:
		return 0, invalidKind("Size", KindMap, v.kind)
	}
}

// EmplaceList appends v to the end of a List value.
func (l *Value) EmplaceList(v Value) error {
	if l.kind != KindList {
		return invalidKind("EmplaceList", KindList, l.kind)
	}
	l.list = append(l.list, v)
	return nil
}

// EmplaceMap inserts (key, v) into a Map value, preserving insertion
// order. Re-inserting an existing key fails with DuplicateKey — callers
// that want upsert semantics must Find and mutate in place.
func (m *Value) EmplaceMap(key string, v Value) error {
	if m.kind != KindMap {
		return invalidKind("EmplaceMap", KindMap, m.kind)
	}
	return m.m.emplace(key, v)
}

// Find looks up key in a Map, returning the stored Value and whether it
// was present.
func (m *Value) Find(key string) (*Value, bool) {
	if m.kind != KindMap {
		return nil, false
	}
	return m.m.find(key)
}

// Index returns the i'th element of a List.
func (l *Value) Index(i int) (*Value, bool) {
	if l.kind != KindList || i < 0 || i >= len(l.list) {
		return nil, false
	}
	return &l.list[i], true
}

// MapPairs exposes the Map's entries in insertion order, for callers
// (the JSON encoder, introspection) that need to walk every key.
func (m *Value) MapPairs() []MapEntry {
	if m.kind != KindMap {
		return nil
	}
	return m.m.ordered()
}

// List exposes a List's elements in order.
func (l *Value) List() []Value {
	if l.kind != KindList {
		return nil
	}
	return l.list
}

// FromJSON reports whether a String value arrived via JSON decoding and
// is therefore ambiguous between a GraphQL String and an Enum name.
func (v *Value) FromJSON() bool {
	return v.kind == KindString && v.fromJSON
}

// MarkFromJSON sets the from_json flag described in spec.md §3.1. It is a
// no-op on any kind other than String.
func (v *Value) MarkFromJSON() {
	if v.kind == KindString {
		v.fromJSON = true
	}
}

// MaybeEnum reports true for an EnumValue, or for a JSON-sourced String,
// per spec.md §8 item 5.
func (v *Value) MaybeEnum() bool {
	return v.kind == KindEnumValue || (v.kind == KindString && v.fromJSON)
}

// ReleaseScalar move-extracts the Scalar's inner Value, leaving the Scalar
// wrapping a Null Value.
func (v *Value) ReleaseScalar() (Value, error) {
	if v.kind != KindScalar {
		return Value{}, invalidKind("ReleaseScalar", KindScalar, v.kind)
	}
	inner := *v.scalar
	*v.scalar = Value{kind: KindNull}
	return inner, nil
}

// ToMap releases a Result's {data, errors} pair into a Map, per spec.md
// §4.A: "data" is always present; "errors" is present only when non-empty.
func (v *Value) ToMap() (Value, error) {
	if v.kind != KindResult {
		return Value{}, invalidKind("ToMap", KindResult, v.kind)
	}
	m := New(KindMap)
	if err := m.EmplaceMap("data", v.res.data); err != nil {
		return Value{}, err
	}
	if len(v.res.errors) > 0 {
		m.EmplaceMap("errors", BuildErrorValues(v.res.errors))
	}
	*v = Value{kind: KindNull}
	return m, nil
}

// SetResultData and AddResultError populate a Result's payload in place;
// the codec and the (external) resolver runtime build up a Result this
// way before flattening it with ToMap.
func (v *Value) SetResultData(data Value) error {
	if v.kind != KindResult {
		return invalidKind("SetResultData", KindResult, v.kind)
	}
	v.res.data = data
	return nil
}

func (v *Value) AddResultError(e StructuredError) error {
	if v.kind != KindResult {
		return invalidKind("AddResultError", KindResult, v.kind)
	}
	v.res.errors = append(v.res.errors, e)
	return nil
}

func invalidKind(op string, expected, got Kind) *errors.QueryError {
	return errors.Errorf("%s: invalid kind (expected %s, got %s)", op, expected, got).WithRule("InvalidKind")
}

// Clone deep-copies a Value, including nested Map/List/Scalar/Result
// payloads.
func (v Value) Clone() Value {
	out := v
	switch v.kind {
	case KindScalar:
		inner := v.scalar.Clone()
		out.scalar = &inner
	case KindList:
		out.list = make([]Value, len(v.list))
		for i, e := range v.list {
			out.list[i] = e.Clone()
		}
	case KindMap:
		out.m = v.m.clone()
	case KindResult:
		out.res = &result{data: v.res.data.Clone(), errors: append([]StructuredError(nil), v.res.errors...)}
	}
	return out
}

// Equal compares two Values structurally. from_json is not part of the
// comparison, only the variant and payload, per spec.md §3.1.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i == b.i
	case KindFloat:
		return a.f == b.f
	case KindString, KindEnumValue:
		return a.s == b.s
	case KindScalar:
		return Equal(*a.scalar, *b.scalar)
	case KindList:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return a.m.equal(b.m)
	case KindResult:
		if len(a.res.errors) != len(b.res.errors) {
			return false
		}
		return Equal(a.res.data, b.res.data)
	default:
		return false
	}
}

// --- kind-checked scalar accessors ---
//
// These cover the non-generic paths the spec calls out explicitly: Int
// read as Float coerces, Float set from an Int coerces, every other
// mismatch is InvalidKind.

func NewBool(b bool) Value     { return Value{kind: KindBool, b: b} }
func NewInt(i int32) Value     { return Value{kind: KindInt, i: i} }
func NewFloat(f float64) Value { return Value{kind: KindFloat, f: f} }
func NewString(s string) Value { return Value{kind: KindString, s: s} }
func NewEnum(s string) Value   { return Value{kind: KindEnumValue, s: s} }

func NewScalar(inner Value) Value {
	return Value{kind: KindScalar, scalar: &inner}
}

func (v *Value) GetBool() (bool, error) {
	if v.kind != KindBool {
		return false, invalidKind("GetBool", KindBool, v.kind)
	}
	return v.b, nil
}

func (v *Value) GetInt() (int32, error) {
	if v.kind != KindInt {
		return 0, invalidKind("GetInt", KindInt, v.kind)
	}
	return v.i, nil
}

// GetFloat reads a Float value, coercing an Int in place per spec.md §8
// item 4.
func (v *Value) GetFloat() (float64, error) {
	switch v.kind {
	case KindFloat:
		return v.f, nil
	case KindInt:
		return float64(v.i), nil
	default:
		return 0, invalidKind("GetFloat", KindFloat, v.kind)
	}
}

func (v *Value) GetString() (string, error) {
	if v.kind != KindString && v.kind != KindEnumValue {
		return "", invalidKind("GetString", KindString, v.kind)
	}
	return v.s, nil
}

// SetInt writes an Int into an Int slot, or coerces into a Float slot
// (the mirror image of GetFloat's Int→Float coercion), per spec.md §8
// item 4.
func (v *Value) SetInt(i int32) error {
	switch v.kind {
	case KindInt:
		v.i = i
		return nil
	case KindFloat:
		v.f = float64(i)
		return nil
	default:
		return invalidKind("SetInt", KindInt, v.kind)
	}
}

func (v *Value) SetFloat(f float64) error {
	if v.kind != KindFloat {
		return invalidKind("SetFloat", KindFloat, v.kind)
	}
	v.f = f
	return nil
}

func (v *Value) SetBool(b bool) error {
	if v.kind != KindBool {
		return invalidKind("SetBool", KindBool, v.kind)
	}
	v.b = b
	return nil
}

func (v *Value) SetString(s string) error {
	if v.kind != KindString {
		return invalidKind("SetString", KindString, v.kind)
	}
	v.s = s
	return nil
}

package value

import (
	"bytes"
	"encoding/json"
	"io"
	"math"

	"github.com/profusion/cppgraphqlgen/errors"
)

// Decode parses JSON from r into a Value tree, per spec.md §4.B. It is
// built on encoding/json.Decoder.Token(), which already hands out exactly
// the push/pop sequence (StartObject/Key/Value*/EndObject,
// StartArray/Value*/EndArray) the spec's SAX handler describes — no
// third-party streaming JSON library appears anywhere in the example
// corpus this module is grounded on, so there is no ecosystem idiom to
// follow instead of the standard library's own tokenizer here.
func Decode(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	d := &decoder{}
	return d.run(dec)
}

// DecodeString is a convenience wrapper around Decode for callers (tests,
// the resolver boundary) holding an already-materialized JSON string.
func DecodeString(s string) (Value, error) {
	return Decode(bytes.NewReader([]byte(s)))
}

// decoder maintains the value stack and key stack spec.md §4.B specifies.
// expectKey tracks, for each frame on the value stack, whether the next
// token belonging to that frame is an object key (true) or a value
// (false); it is only meaningful for Map frames.
type decoder struct {
	vals      []Value
	keys      []string
	expectKey []bool
}

func (d *decoder) run(dec *json.Decoder) (Value, error) {
	d.vals = []Value{{kind: KindNull}}
	d.expectKey = []bool{false}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Value{}, errors.Wrap(err, "value: decode")
		}
		if err := d.handle(tok); err != nil {
			return Value{}, err
		}
	}
	if len(d.vals) != 1 {
		return Value{}, errors.Errorf("value: unterminated container").WithRule("ParseError")
	}
	return d.vals[0], nil
}

func (d *decoder) top() *Value       { return &d.vals[len(d.vals)-1] }
func (d *decoder) topExpectsKey() bool { return d.expectKey[len(d.expectKey)-1] }

func (d *decoder) handle(tok json.Token) error {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			d.vals = append(d.vals, New(KindMap))
			d.expectKey = append(d.expectKey, true)
			return nil
		case '[':
			d.vals = append(d.vals, New(KindList))
			d.expectKey = append(d.expectKey, false)
			return nil
		case '}', ']':
			completed := d.vals[len(d.vals)-1]
			d.vals = d.vals[:len(d.vals)-1]
			d.expectKey = d.expectKey[:len(d.expectKey)-1]
			return d.setValue(completed)
		}
		return nil
	case nil:
		return d.setValue(Value{kind: KindNull})
	case bool:
		return d.setValue(NewBool(t))
	case string:
		if d.top().Kind() == KindMap && d.topExpectsKey() {
			d.keys = append(d.keys, t)
			d.expectKey[len(d.expectKey)-1] = false
			return nil
		}
		v := NewString(t)
		v.MarkFromJSON()
		return d.setValue(v)
	case json.Number:
		return d.setNumber(t)
	default:
		return errors.Errorf("value: unsupported JSON token %T", t).WithRule("ParseError")
	}
}

func (d *decoder) setNumber(n json.Number) error {
	if i, ierr := n.Int64(); ierr == nil {
		if i < math.MinInt32 || i > math.MaxInt32 {
			return errors.Errorf("value: integer %d overflows 32-bit signed range", i).WithRule("Overflow")
		}
		return d.setValue(NewInt(int32(i)))
	}
	if isIntegerLiteral(n.String()) {
		return errors.Errorf("value: integer %s overflows 32-bit signed range", n.String()).WithRule("Overflow")
	}
	f, ferr := n.Float64()
	if ferr != nil {
		return errors.Errorf("value: invalid number %q", n.String()).WithRule("ParseError")
	}
	return d.setValue(NewFloat(f))
}

// isIntegerLiteral reports whether s is JSON integer syntax (an optional
// sign followed only by digits, no '.', 'e' or 'E'). n.Int64() already
// failed by the time this is called, so a literal passing this check is
// an integer too large even for int64 — spec.md §4.B requires that to
// fail Overflow rather than silently widen to Float.
func isIntegerLiteral(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' || s[0] == '+' {
		i++
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// setValue implements the spec's `set_value`: Map consumes one pending
// key (and then awaits its next key again), List appends, and the bare
// root slot is simply replaced.
func (d *decoder) setValue(v Value) error {
	top := d.top()
	switch top.Kind() {
	case KindMap:
		if len(d.keys) == 0 {
			return errors.Errorf("value: object value with no pending key").WithRule("ParseError")
		}
		key := d.keys[len(d.keys)-1]
		d.keys = d.keys[:len(d.keys)-1]
		d.expectKey[len(d.expectKey)-1] = true
		return top.EmplaceMap(key, v)
	case KindList:
		return top.EmplaceList(v)
	default:
		*top = v
		return nil
	}
}

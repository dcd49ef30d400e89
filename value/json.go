package value

import (
	"bytes"
	"strconv"
)

// Writer is the caller-owned, growable byte sink the encoder appends to,
// per spec.md §4.B ("buffers into a caller-owned byte container; writer
// grows by exactly the requested amount"). It wraps bytes.Buffer the same
// way the teacher's internal/exec/writer.go wraps one for its own
// streaming JSON writer.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter wraps buf, growing it by initialCap bytes up front so the
// first burst of writes doesn't force a reallocation.
func NewWriter(buf *bytes.Buffer, initialCap int) *Writer {
	if initialCap > 0 {
		buf.Grow(initialCap)
	}
	return &Writer{buf: buf}
}

func (w *Writer) writeByte(b byte)      { w.buf.WriteByte(b) }
func (w *Writer) writeString(s string)  { w.buf.WriteString(s) }
func (w *Writer) Bytes() []byte         { return w.buf.Bytes() }
func (w *Writer) String() string        { return w.buf.String() }

// Encode writes v to w as JSON. The type mapping is exactly spec.md
// §4.B's table: Map -> object, List -> array, String/EnumValue -> string,
// Null -> null, Bool -> bool, Int -> signed 32-bit integer, Float ->
// double, Scalar -> recurse into the wrapped inner Value. Any future
// variant this switch doesn't know about encodes as null rather than
// panicking or silently falling through undetected — the spec's §9 Open
// Question (a) calls out the original's silent-null fallthrough as a
// defect to not replicate, so encodeValue logs nothing but returns an
// explicit sentinel the caller can check with UnknownVariant.
func Encode(w *Writer, v Value) error {
	return encodeValue(w, v)
}

// UnknownVariant is returned by Encode when it encounters a
// Kind it does not recognize, so callers can distinguish "encoded null
// because the value was Null" from "encoded null because the variant was
// unrecognized" — resolving spec.md §9 Open Question (a) explicitly
// rather than silently.
type UnknownVariant struct{ Kind Kind }

func (e *UnknownVariant) Error() string {
	return "value: unknown variant encoded as null: " + e.Kind.String()
}

func encodeValue(w *Writer, v Value) error {
	switch v.kind {
	case KindNull:
		w.writeString("null")
		return nil
	case KindBool:
		if v.b {
			w.writeString("true")
		} else {
			w.writeString("false")
		}
		return nil
	case KindInt:
		w.writeString(strconv.FormatInt(int64(v.i), 10))
		return nil
	case KindFloat:
		w.writeString(strconv.FormatFloat(v.f, 'g', -1, 64))
		return nil
	case KindString, KindEnumValue:
		encodeString(w, v.s)
		return nil
	case KindScalar:
		return encodeValue(w, *v.scalar)
	case KindList:
		w.writeByte('[')
		for i, e := range v.list {
			if i > 0 {
				w.writeByte(',')
			}
			if err := encodeValue(w, e); err != nil {
				return err
			}
		}
		w.writeByte(']')
		return nil
	case KindMap:
		w.writeByte('{')
		for i, p := range v.m.ordered() {
			if i > 0 {
				w.writeByte(',')
			}
			encodeString(w, p.Key)
			w.writeByte(':')
			if err := encodeValue(w, p.Value); err != nil {
				return err
			}
		}
		w.writeByte('}')
		return nil
	case KindResult:
		cloned := v.Clone()
		m, err := cloned.ToMap()
		if err != nil {
			return err
		}
		return encodeValue(w, m)
	default:
		w.writeString("null")
		return &UnknownVariant{Kind: v.kind}
	}
}

var hexDigits = "0123456789abcdef"

func encodeString(w *Writer, s string) {
	w.writeByte('"')
	for _, r := range s {
		switch r {
		case '"':
			w.writeString(`\"`)
		case '\\':
			w.writeString(`\\`)
		case '\n':
			w.writeString(`\n`)
		case '\r':
			w.writeString(`\r`)
		case '\t':
			w.writeString(`\t`)
		default:
			if r < 0x20 {
				w.writeString(`\u00`)
				w.writeByte(hexDigits[r>>4])
				w.writeByte(hexDigits[r&0xf])
			} else {
				w.buf.WriteRune(r)
			}
		}
	}
	w.writeByte('"')
}

// ToJSON is a convenience wrapper that encodes v into a freshly allocated
// buffer of the given initial capacity and returns the result as a
// string, for callers (tests, the introspection persister) that don't
// need to manage a Writer themselves.
func ToJSON(v Value, initialCap int) (string, error) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, initialCap)
	if err := Encode(w, v); err != nil {
		return w.String(), err
	}
	return w.String(), nil
}

package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/profusion/cppgraphqlgen/errors"
	"github.com/profusion/cppgraphqlgen/value"
)

func TestIntFloatCoercion(t *testing.T) {
	i := value.NewInt(7)
	f, err := i.GetFloat()
	require.NoError(t, err)
	require.Equal(t, 7.0, f)

	fv := value.New(value.KindFloat)
	require.NoError(t, fv.SetInt(3))
	got, err := fv.GetFloat()
	require.NoError(t, err)
	require.Equal(t, 3.0, got)
}

func TestGetIntWrongKindFails(t *testing.T) {
	s := value.NewString("x")
	_, err := s.GetInt()
	require.Error(t, err)
	qerr, ok := err.(*errors.QueryError)
	require.True(t, ok)
	require.Equal(t, "InvalidKind", qerr.Rule)
}

func TestMapPreservesOrderAndRejectsDuplicateKey(t *testing.T) {
	m := value.New(value.KindMap)
	require.NoError(t, m.EmplaceMap("b", value.NewInt(2)))
	require.NoError(t, m.EmplaceMap("a", value.NewInt(1)))
	err := m.EmplaceMap("b", value.NewInt(99))
	require.Error(t, err)

	pairs := m.MapPairs()
	require.Len(t, pairs, 2)
	require.Equal(t, "b", pairs[0].Key)
	require.Equal(t, "a", pairs[1].Key)
}

func TestFindLookupIsNotOrderSensitive(t *testing.T) {
	m := value.New(value.KindMap)
	require.NoError(t, m.EmplaceMap("a", value.NewInt(1)))
	require.NoError(t, m.EmplaceMap("b", value.NewInt(2)))
	found, ok := m.Find("b")
	require.True(t, ok)
	got, err := found.GetInt()
	require.NoError(t, err)
	require.EqualValues(t, 2, got)

	_, ok = m.Find("c")
	require.False(t, ok)
}

func TestCloneIsDeep(t *testing.T) {
	orig := value.New(value.KindList)
	require.NoError(t, orig.EmplaceList(value.NewInt(1)))
	clone := orig.Clone()
	require.NoError(t, clone.EmplaceList(value.NewInt(2)))
	require.Len(t, orig.List(), 1)
	require.Len(t, clone.List(), 2)
}

func TestEqualIgnoresFromJSONFlag(t *testing.T) {
	plain := value.NewString("x")
	fromJSON := value.NewString("x")
	fromJSON.MarkFromJSON()
	require.True(t, value.Equal(plain, fromJSON))
	require.False(t, plain.FromJSON())
	require.True(t, fromJSON.FromJSON())
}

func TestMaybeEnum(t *testing.T) {
	enum := value.NewEnum("RED")
	require.True(t, enum.MaybeEnum())

	plainString := value.NewString("RED")
	require.False(t, plainString.MaybeEnum())

	jsonString := value.NewString("RED")
	jsonString.MarkFromJSON()
	require.True(t, jsonString.MaybeEnum())
}

func TestReleaseScalar(t *testing.T) {
	inner := value.NewInt(5)
	s := value.NewScalar(inner)
	released, err := s.ReleaseScalar()
	require.NoError(t, err)
	got, err := released.GetInt()
	require.NoError(t, err)
	require.EqualValues(t, 5, got)

	again, err := s.ReleaseScalar()
	require.NoError(t, err)
	require.Equal(t, value.KindNull, again.Kind())
}

func TestResultToMapOmitsEmptyErrors(t *testing.T) {
	r := value.New(value.KindResult)
	require.NoError(t, r.SetResultData(value.NewInt(1)))
	m, err := r.ToMap()
	require.NoError(t, err)
	_, hasErrors := m.Find("errors")
	require.False(t, hasErrors)
	data, ok := m.Find("data")
	require.True(t, ok)
	got, err := data.GetInt()
	require.NoError(t, err)
	require.EqualValues(t, 1, got)
}

func TestResultToMapIncludesNonEmptyErrors(t *testing.T) {
	r := value.New(value.KindResult)
	require.NoError(t, r.SetResultData(value.New(value.KindNull)))
	require.NoError(t, r.AddResultError(value.StructuredError{Message: "boom"}))
	m, err := r.ToMap()
	require.NoError(t, err)
	errs, ok := m.Find("errors")
	require.True(t, ok)
	require.Equal(t, value.KindList, errs.Kind())
	require.Len(t, errs.List(), 1)
}

func TestJSONRoundTrip(t *testing.T) {
	src := `{"name":"Luke","age":19,"height":1.72,"active":true,"tags":["a","b"],"nothing":null}`
	v, err := value.DecodeString(src)
	require.NoError(t, err)
	require.Equal(t, value.KindMap, v.Kind())

	name, ok := v.Find("name")
	require.True(t, ok)
	require.True(t, name.FromJSON())

	out, err := value.ToJSON(v, 0)
	require.NoError(t, err)
	roundTripped, err := value.DecodeString(out)
	require.NoError(t, err)
	require.True(t, value.Equal(v, roundTripped))
}

func TestDecodeRejectsInt32Overflow(t *testing.T) {
	_, err := value.DecodeString(`99999999999`)
	require.Error(t, err)
}

func TestDecodeRejectsInt64Overflow(t *testing.T) {
	_, err := value.DecodeString(`99999999999999999999999`)
	require.Error(t, err)
}

func TestDecodeFractionalNumberIsFloat(t *testing.T) {
	v, err := value.DecodeString(`3.5`)
	require.NoError(t, err)
	require.Equal(t, value.KindFloat, v.Kind())
}

func TestEncodeEscapesControlCharacters(t *testing.T) {
	out, err := value.ToJSON(value.NewString("a\nb\tc\"d"), 0)
	require.NoError(t, err)
	require.Equal(t, `"a\nb\tc\"d"`, out)
}

func TestBuildErrorValuesShape(t *testing.T) {
	errs := []value.StructuredError{
		{Message: "bad field", Path: []interface{}{"hero", 0, "name"}},
	}
	list := value.BuildErrorValues(errs)
	require.Equal(t, value.KindList, list.Kind())
	require.Len(t, list.List(), 1)
	entry := list.List()[0]
	msg, ok := entry.Find("message")
	require.True(t, ok)
	got, err := msg.GetString()
	require.NoError(t, err)
	require.Equal(t, "bad field", got)
	_, hasLocations := entry.Find("locations")
	require.False(t, hasLocations)
	path, ok := entry.Find("path")
	require.True(t, ok)
	require.Len(t, path.List(), 3)
}

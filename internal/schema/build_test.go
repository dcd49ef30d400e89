package schema

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
)

func findObject(s *Schema, name string) *Object {
	for _, o := range s.Objects {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// requireFieldNamesEqual compares two field-name slices and, on mismatch,
// dumps both sides with go-spew and a unified diff via go-difflib so a
// failure on a large schema's field list is legible.
func requireFieldNamesEqual(t *testing.T, label string, want, got []string) {
	t.Helper()
	if cmp.Equal(want, got) {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(spew.Sdump(want)),
		B:        difflib.SplitLines(spew.Sdump(got)),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	t.Fatalf("%s: field names differ:\n%s", label, diff)
}

func mustBuild(t *testing.T, sdl string) *Schema {
	t.Helper()
	doc, err := Parse(sdl)
	require.Nil(t, err, "parse error: %v", err)
	s, buildErr := Build(doc)
	require.Nil(t, buildErr, "build error: %v", buildErr)
	return s
}

// S1: minimal schema.
func TestBuildMinimalSchema(t *testing.T) {
	s := mustBuild(t, `type Query { hello: String }`)
	q := s.Types["Query"].(*Object)
	require.Len(t, q.Fields, 1)
	hello := q.Fields.Get("hello")
	require.NotNil(t, hello)
	require.False(t, hello.Type.IsNonNull(), "hello should be nullable")
	require.Equal(t, "String", hello.Type.Named.TypeName())
	require.Equal(t, "Query", s.EntryPoints["query"].TypeName())
}

// S2: non-null & list.
func TestBuildNonNullList(t *testing.T) {
	s := mustBuild(t, `type Query { q: Q } type Q { xs: [Int!]! }`)
	q := s.Types["Q"].(*Object)
	xs := q.Fields.Get("xs")
	require.True(t, xs.Type.IsNonNull())
	require.True(t, xs.Type.IsList())
	require.Equal(t, []Modifier{ModList}, xs.Type.Modifiers)
	require.Equal(t, "[Int!]!", xs.Type.String())
}

// S3: interface satisfaction.
func TestBuildInterfaceSatisfaction(t *testing.T) {
	s := mustBuild(t, `
		type Query { n: N }
		interface N { id: ID! }
		type T implements N { id: ID! name: String }
	`)
	require.Nil(t, Validate(s))
	tType := s.Types["T"].(*Object)
	require.Len(t, tType.Interfaces, 1)
	require.Equal(t, "N", tType.Interfaces[0].Name)
	require.True(t, tType.Fields.Get("id").IsInterfaceField == false, "object's own field copy is not itself flagged interface-field")
}

// S4: interface mismatch.
func TestBuildInterfaceMismatch(t *testing.T) {
	s := mustBuild(t, `
		type Query { n: N }
		interface N { id: ID! }
		type T implements N { id: String! }
	`)
	err := Validate(s)
	require.NotNil(t, err)
	require.Equal(t, "InterfaceMismatch", err.Rule)
}

// S5: default value.
func TestBuildDefaultValue(t *testing.T) {
	s := mustBuild(t, `
		type Query { hello: String }
		input I { n: Int = 3 }
	`)
	require.Nil(t, Validate(s))
	i := s.Types["I"].(*InputObject)
	n := i.Values.Get("n")
	require.True(t, n.HasDefault)
	got, err := n.Default.GetInt()
	require.Nil(t, err)
	require.EqualValues(t, 3, got)
}

// S6: parse error pointing at the named production.
func TestBuildParseError(t *testing.T) {
	_, err := Parse(`type Q { x: }`)
	require.NotNil(t, err)
	require.Equal(t, "ParseError", err.Rule)
}

// Non-null widening is permitted, the reverse is not (spec.md §8 property 8).
func TestNonNullWideningPermittedNarrowingRejected(t *testing.T) {
	wide := mustBuild(t, `
		type Query { n: N }
		interface N { id: ID }
		type T implements N { id: ID! }
	`)
	require.Nil(t, Validate(wide))

	narrow := mustBuild(t, `
		type Query { n: N }
		interface N { id: ID! }
		type T implements N { id: ID }
	`)
	err := Validate(narrow)
	require.NotNil(t, err)
	require.Equal(t, "InterfaceMismatch", err.Rule)
}

// Schema-build idempotence (spec.md §8 property 6): parsing and building
// the same schema twice produces structurally identical models.
func TestBuildIdempotence(t *testing.T) {
	sdl := `
		type Query { hero(id: ID!): Character }
		interface Character { id: ID! name: String }
		type Human implements Character { id: ID! name: String homePlanet: String }
	`
	a := mustBuild(t, sdl)
	b := mustBuild(t, sdl)

	require.Equal(t, len(a.Objects), len(b.Objects))
	for i := range a.Objects {
		require.Equal(t, a.Objects[i].Name, b.Objects[i].Name)
		requireFieldNamesEqual(t, a.Objects[i].Name, a.Objects[i].Fields.Names(), b.Objects[i].Fields.Names())
	}

	humanA, humanB := findObject(a, "Human"), findObject(b, "Human")
	require.NotNil(t, humanA)
	require.NotNil(t, humanB)
	requireFieldNamesEqual(t, "Human", humanA.Fields.Names(), humanB.Fields.Names())
	idA := humanA.Fields.Get("id")
	idB := humanB.Fields.Get("id")
	require.True(t, idA.Type.Equal(idB.Type))
}

// Extension commutativity (spec.md §8 property 7).
func TestExtensionCommutativity(t *testing.T) {
	base := mustBuild(t, `type Query { hello: String }`)
	extended := mustBuild(t, `
		type Query { hello: String }
		extend type Query { goodbye: String }
	`)
	require.Equal(t, base.Types["Query"].(*Object).Fields.Names(), []string{"hello"})
	require.Equal(t, extended.Types["Query"].(*Object).Fields.Names(), []string{"hello", "goodbye"})
}

func TestExtensionWithoutBaseIsAnError(t *testing.T) {
	doc, err := Parse(`extend type Query { hello: String }`)
	require.Nil(t, err)
	_, buildErr := Build(doc)
	require.NotNil(t, buildErr)
}

func TestSchemaExtension(t *testing.T) {
	s := mustBuild(t, `
		type Query { hello: String }
		type Mutation { noop: Boolean }
		extend schema { mutation: Mutation }
	`)
	require.Equal(t, "Mutation", s.EntryPoints["mutation"].TypeName())
}

func TestDeprecatedNotLegalOnArgument(t *testing.T) {
	s := mustBuild(t, `
		type Query { hello(name: String @deprecated): String }
	`)
	err := Validate(s)
	require.NotNil(t, err)
}

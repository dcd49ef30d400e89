package introspection_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/profusion/cppgraphqlgen/introspection"
	"github.com/profusion/cppgraphqlgen/internal/schema"
)

func buildSchema(t *testing.T, sdl string) *schema.Schema {
	t.Helper()
	doc, err := schema.Parse(sdl)
	require.Nil(t, err)
	s, err := schema.Build(doc)
	require.Nil(t, err)
	return s
}

func TestBuildSchemaIncludesEveryDeclaredType(t *testing.T) {
	s := buildSchema(t, `
		type Droid {
			id: ID!
			name: String!
			friends: [Droid!]
		}
		type Query {
			droid(id: ID!): Droid
		}
	`)

	root := introspection.BuildSchema(s)
	typesVal, ok := root.Find("types")
	require.True(t, ok)

	names := map[string]bool{}
	for _, tv := range typesVal.List() {
		nv, ok := tv.Find("name")
		require.True(t, ok)
		n, err := nv.GetString()
		require.Nil(t, err)
		names[n] = true
	}
	require.True(t, names["Droid"])
	require.True(t, names["Query"])
	require.True(t, names["String"])
	require.True(t, names["ID"])

	queryType, ok := root.Find("queryType")
	require.True(t, ok)
	nameVal, ok := queryType.Find("name")
	require.True(t, ok)
	n, err := nameVal.GetString()
	require.Nil(t, err)
	require.Equal(t, "Query", n)
}

func TestBuildTypeNonNullListChain(t *testing.T) {
	s := buildSchema(t, `
		type Query {
			ids: [ID!]!
		}
	`)

	typeVal := introspection.BuildType(s, "Query")
	fieldsVal, ok := typeVal.Find("fields")
	require.True(t, ok)

	fields := fieldsVal.List()
	require.Len(t, fields, 1)

	fieldType, ok := fields[0].Find("type")
	require.True(t, ok)

	kind, ok := fieldType.Find("kind")
	require.True(t, ok)
	k, err := kind.GetString()
	require.Nil(t, err)
	require.Equal(t, "NON_NULL", k)

	ofType, ok := fieldType.Find("ofType")
	require.True(t, ok)
	kind, ok = ofType.Find("kind")
	require.True(t, ok)
	k, err = kind.GetString()
	require.Nil(t, err)
	require.Equal(t, "LIST", k)

	inner, ok := ofType.Find("ofType")
	require.True(t, ok)
	kind, ok = inner.Find("kind")
	require.True(t, ok)
	k, err = kind.GetString()
	require.Nil(t, err)
	require.Equal(t, "NON_NULL", k)

	innerName, ok := inner.Find("ofType")
	require.True(t, ok)
	nameVal, ok := innerName.Find("name")
	require.True(t, ok)
	n, err := nameVal.GetString()
	require.Nil(t, err)
	require.Equal(t, "ID", n)
}

func TestBuildTypeUnknownNameIsNull(t *testing.T) {
	s := buildSchema(t, `type Query { hello: String }`)
	v := introspection.BuildType(s, "DoesNotExist")
	require.Equal(t, "Null", v.Kind().String())
}

func TestBuildEnumValuesReportsDeprecation(t *testing.T) {
	s := buildSchema(t, `
		enum Status {
			ACTIVE
			RETIRED @deprecated(reason: "no longer produced")
		}
		type Query {
			status: Status
		}
	`)

	typeVal := introspection.BuildType(s, "Status")
	enumValues, ok := typeVal.Find("enumValues")
	require.True(t, ok)

	byName := map[string]bool{}
	for _, ev := range enumValues.List() {
		nameVal, _ := ev.Find("name")
		n, _ := nameVal.GetString()
		depVal, _ := ev.Find("isDeprecated")
		dep, _ := depVal.GetBool()
		byName[n] = dep
	}
	require.False(t, byName["ACTIVE"])
	require.True(t, byName["RETIRED"])
}

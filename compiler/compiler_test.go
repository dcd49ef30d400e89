package compiler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/profusion/cppgraphqlgen/compiler"
)

func TestCompileSchemaStampsBuildIDAndValidates(t *testing.T) {
	c := compiler.New(compiler.Options{})

	s, err := c.CompileSchema(context.Background(), `
		type Droid {
			id: ID!
			name: String!
		}
		type Query {
			droid(id: ID!): Droid
		}
	`)
	require.Nil(t, err)
	require.NotEmpty(t, s.BuildID)

	report := c.Report()
	require.EqualValues(t, 1, report.Parse.Calls)
	require.EqualValues(t, 1, report.Build.Calls)
	require.EqualValues(t, 1, report.Validate.Calls)
	require.EqualValues(t, 0, report.Validate.Errors)
}

func TestCompileSchemaReportsValidationFailure(t *testing.T) {
	c := compiler.New(compiler.Options{})

	_, err := c.CompileSchema(context.Background(), `
		type Query {
			broken: NoSuchType
		}
	`)
	require.NotNil(t, err)

	report := c.Report()
	require.EqualValues(t, 1, report.Build.Errors)
}

func TestCompileSchemaReportsParseFailure(t *testing.T) {
	c := compiler.New(compiler.Options{})

	_, err := c.CompileSchema(context.Background(), `type Query {`)
	require.NotNil(t, err)

	report := c.Report()
	require.EqualValues(t, 1, report.Parse.Errors)
}

func TestParseQueryStampsParseID(t *testing.T) {
	c := compiler.New(compiler.Options{})

	doc, err := c.ParseQuery(context.Background(), `{ hero { name } }`)
	require.Nil(t, err)
	require.NotEmpty(t, doc.ParseID)
	require.NotNil(t, doc.ExecutableDefinition)
}

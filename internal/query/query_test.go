package query

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAnonymousQuery(t *testing.T) {
	doc, err := Parse(`{ hero { name } }`)
	require.Nil(t, err)
	require.Len(t, doc.Operations, 1)
	op := doc.Operations[0]
	require.Equal(t, Query, op.Type)
	require.Len(t, op.Selections, 1)
}

func TestParseNamedOperationWithVariablesAndFragment(t *testing.T) {
	src := `
		query Hero($episode: Episode) {
			hero(episode: $episode) {
				name
				...Friends
			}
		}

		fragment Friends on Character {
			friends { name }
		}
	`
	doc, err := Parse(src)
	require.Nil(t, err)
	require.Len(t, doc.Operations, 1)
	op := doc.Operations[0]
	require.Equal(t, "Hero", op.Name.Name)
	require.Len(t, op.Vars, 1)
	require.Equal(t, "episode", op.Vars[0].Name.Name)
	require.Len(t, doc.Fragments, 1)
	require.Equal(t, "Friends", doc.Fragments[0].Name.Name)
}

func TestParseInlineFragmentAndAlias(t *testing.T) {
	src := `{
		hero {
			n: name
			... on Droid { primaryFunction }
			... @include(if: true) { id }
		}
	}`
	doc, err := Parse(src)
	require.Nil(t, err)
	op := doc.Operations[0]
	hero := op.Selections[0]
	field, ok := hero.(interface{ ResponseKey() string })
	require.True(t, ok, "expected *ast.Field")
	require.Equal(t, "hero", field.ResponseKey())
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse(`{ hero { `)
	require.NotNil(t, err)
	require.Equal(t, "ParseError", err.Rule)
}

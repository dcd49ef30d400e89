package schema

// directiveLocations is the full GraphQL June-2018 DirectiveLocation
// enumeration, resolving spec.md §9 Open Question (b) verbatim rather
// than approximating it.
var directiveLocations = map[string]bool{
	"QUERY":                  true,
	"MUTATION":                true,
	"SUBSCRIPTION":            true,
	"FIELD":                   true,
	"FRAGMENT_DEFINITION":     true,
	"FRAGMENT_SPREAD":         true,
	"INLINE_FRAGMENT":         true,
	"SCHEMA":                  true,
	"SCALAR":                  true,
	"OBJECT":                  true,
	"FIELD_DEFINITION":        true,
	"ARGUMENT_DEFINITION":     true,
	"INTERFACE":               true,
	"UNION":                   true,
	"ENUM":                    true,
	"ENUM_VALUE":              true,
	"INPUT_OBJECT":            true,
	"INPUT_FIELD_DEFINITION":  true,
}

func isValidDirectiveLocation(loc string) bool {
	return directiveLocations[loc]
}

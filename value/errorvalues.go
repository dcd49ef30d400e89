package value

// BuildErrorValues translates a list of structured errors into the List
// of Maps spec.md §4.B/§6 describes for the wire `errors` field: each Map
// always has `message`, and `locations`/`path` only when non-empty.
func BuildErrorValues(errs []StructuredError) Value {
	list := New(KindList)
	for _, e := range errs {
		m := New(KindMap)
		_ = m.EmplaceMap("message", NewString(e.Message))
		if len(e.Locations) > 0 {
			locs := New(KindList)
			for _, loc := range e.Locations {
				lm := New(KindMap)
				_ = lm.EmplaceMap("line", NewInt(int32(loc.Line)))
				_ = lm.EmplaceMap("column", NewInt(int32(loc.Column)))
				_ = locs.EmplaceList(lm)
			}
			_ = m.EmplaceMap("locations", locs)
		}
		if len(e.Path) > 0 {
			path := New(KindList)
			for _, seg := range e.Path {
				switch s := seg.(type) {
				case string:
					_ = path.EmplaceList(NewString(s))
				case int:
					_ = path.EmplaceList(NewInt(int32(s)))
				case int32:
					_ = path.EmplaceList(NewInt(s))
				}
			}
			_ = m.EmplaceMap("path", path)
		}
		_ = list.EmplaceList(m)
	}
	return list
}

package testcases

// All contains all scenes, grouped by category.
// Scene names are unique across all categories and are used as output
// file names.
var All = map[string][]Scene{
	"parametric": parametricCases,
	"implicit":   implicitCases,
	"region":     regionCases,
}

// Find returns the scene with the given name.
func Find(name string) (Scene, bool) {
	for _, cases := range All {
		for _, sc := range cases {
			if sc.Name == name {
				return sc, true
			}
		}
	}
	return Scene{}, false
}

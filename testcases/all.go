package testcases

import (
	"maps"
	"slices"
)

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]TestCase{
	"uniform": uniformCases,
	"curved":  curvedCases,
	"noise":   noiseCases,
	"depth":   depthCases,
}

// Lookup finds a test case by its full name, "category_name".
func Lookup(fullName string) (TestCase, bool) {
	for category, cases := range All {
		for _, tc := range cases {
			if category+"_"+tc.Name == fullName {
				return tc, true
			}
		}
	}
	return TestCase{}, false
}

// Names returns the full names of all test cases in sorted order.
func Names() []string {
	var res []string
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			res = append(res, category+"_"+tc.Name)
		}
	}
	return res
}

package check

import (
	"k8s.io/apimachinery/pkg/util/sets"
)

// Select returns the checks whose tags intersect include (all checks when
// include is empty), minus those whose tags intersect exclude. Exclusion
// wins over inclusion. Order is preserved and the input is not modified.
func Select(checks []Definition, include []string, exclude []string) []Definition {
	result := make([]Definition, 0, len(checks))

	for _, def := range checks {
		tags := sets.New(def.Tags...)

		if len(include) > 0 && !tags.HasAny(include...) {
			continue
		}

		if len(exclude) > 0 && tags.HasAny(exclude...) {
			continue
		}

		result = append(result, def)
	}

	return result
}

// ListTags returns the sorted union of the tags of checks.
func ListTags(checks []Definition) []string {
	tags := sets.New[string]()

	for _, def := range checks {
		tags.Insert(def.Tags...)
	}

	return sets.List(tags)
}

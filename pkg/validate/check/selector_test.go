package check_test

import (
	"testing"

	"github.com/datera/ddct/pkg/validate/check"

	. "github.com/onsi/gomega"
)

func ids(defs []check.Definition) []string {
	result := make([]string, len(defs))
	for i, d := range defs {
		result[i] = d.ID
	}

	return result
}

func TestSelect(t *testing.T) {
	a := newDefinition("A", check.CategoryOS, "basic")
	b := newDefinition("B", check.CategoryDriver, "driver")
	both := newDefinition("AB", check.CategoryDriver, "basic", "driver")
	conn := newDefinition("C", check.CategoryNetwork, "basic", "connection")

	tests := []struct {
		name    string
		checks  []check.Definition
		include []string
		exclude []string
		wantIDs []string
	}{
		{
			name:    "include single tag",
			checks:  []check.Definition{a, b},
			include: []string{"basic"},
			wantIDs: []string{"A"},
		},
		{
			name:    "exclude single tag",
			checks:  []check.Definition{a, b},
			exclude: []string{"driver"},
			wantIDs: []string{"A"},
		},
		{
			name:    "include is a logical or",
			checks:  []check.Definition{a, b},
			include: []string{"basic", "driver"},
			wantIDs: []string{"A", "B"},
		},
		{
			name:    "exclude wins over include",
			checks:  []check.Definition{both},
			include: []string{"basic"},
			exclude: []string{"driver"},
			wantIDs: []string{},
		},
		{
			name:    "no filters selects everything in order",
			checks:  []check.Definition{conn, b, a},
			wantIDs: []string{"C", "B", "A"},
		},
		{
			name:    "include and exclude compose",
			checks:  []check.Definition{a, b, both, conn},
			include: []string{"basic"},
			exclude: []string{"connection"},
			wantIDs: []string{"A", "AB"},
		},
		{
			name:    "unknown include tag selects nothing",
			checks:  []check.Definition{a, b},
			include: []string{"nonexistent"},
			wantIDs: []string{},
		},
		{
			name:    "unknown exclude tag drops nothing",
			checks:  []check.Definition{a, b},
			exclude: []string{"nonexistent"},
			wantIDs: []string{"A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			selected := check.Select(tt.checks, tt.include, tt.exclude)
			g.Expect(ids(selected)).To(Equal(tt.wantIDs))
		})
	}
}

func TestSelect_DoesNotModifyInput(t *testing.T) {
	g := NewWithT(t)

	checks := []check.Definition{
		newDefinition("A", check.CategoryOS, "basic"),
		newDefinition("B", check.CategoryDriver, "driver"),
	}

	_ = check.Select(checks, []string{"driver"}, nil)

	g.Expect(ids(checks)).To(Equal([]string{"A", "B"}))
}

func TestListTags(t *testing.T) {
	g := NewWithT(t)

	checks := []check.Definition{
		newDefinition("A", check.CategoryNetwork, "basic", "connection"),
		newDefinition("B", check.CategoryDriver, "driver"),
		newDefinition("C", check.CategoryNetwork, "connection", "basic"),
	}

	g.Expect(check.ListTags(checks)).To(Equal([]string{"basic", "connection", "driver"}))
}

func TestListTags_Empty(t *testing.T) {
	g := NewWithT(t)

	g.Expect(check.ListTags(nil)).To(BeEmpty())
}

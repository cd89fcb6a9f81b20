package profile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustCategory(t *testing.T, name string, shape Shape, items ...Item) *Category {
	t.Helper()
	c, err := NewCategory(name, shape, items...)
	require.NoError(t, err)
	return c
}

// davidProfile is the developer profile used across the tests.
func davidProfile(t *testing.T) *Profile {
	t.Helper()
	p, err := New(
		mustCategory(t, "frontEnd", Structured,
			Entry("HTML", 10), Entry("CSS", 8), Entry("JS", 8), Entry("React", 9)),
		mustCategory(t, "backEnd", Structured,
			Entry("Node", 7), Entry("GraphQL", 8)),
		mustCategory(t, "dataBase", Structured,
			Entry("MongoDB", 7.5)),
		mustCategory(t, "dataScience", Labels,
			Label("Python"), Label("R"), Label("D3.js")),
	)
	require.NoError(t, err)
	return p
}

func david(t *testing.T) Person {
	return Person{Name: "David", Age: 25, Skills: davidProfile(t)}
}

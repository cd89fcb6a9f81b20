package profile

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWith_AppendsStructuredEntry(t *testing.T) {
	p := davidProfile(t)

	got, err := p.With(Add("frontEnd", Entry("BootStrap", 8)))
	require.NoError(t, err)

	front, ok := got.Category("frontEnd")
	require.True(t, ok)
	require.Equal(t, 5, front.Len())
	assert.Equal(t, Entry("BootStrap", 8), front.At(4))
	assert.Equal(t, []string{"HTML", "CSS", "JS", "React", "BootStrap"}, front.Skills())

	orig, _ := p.Category("frontEnd")
	assert.Equal(t, 4, orig.Len())
	assert.Equal(t, []string{"HTML", "CSS", "JS", "React"}, orig.Skills())
}

func TestWith_AppendsLabel(t *testing.T) {
	p := davidProfile(t)

	got, err := p.With(Add("dataScience", Label("SQL")))
	require.NoError(t, err)

	ds, _ := got.Category("dataScience")
	assert.Equal(t, []string{"Python", "R", "D3.js", "SQL"}, ds.Skills())
	assert.Equal(t, Labels, ds.At(3).Shape())

	orig, _ := p.Category("dataScience")
	assert.Equal(t, []string{"Python", "R", "D3.js"}, orig.Skills())
}

func TestWith_SharesUntouchedCategories(t *testing.T) {
	p := davidProfile(t)

	got, err := p.With(Add("backEnd", Entry("Express", 9)))
	require.NoError(t, err)
	assert.NotSame(t, p, got)

	for _, name := range p.Names() {
		before, _ := p.Category(name)
		after, _ := got.Category(name)
		if name == "backEnd" {
			assert.NotSame(t, before, after)
			continue
		}
		assert.Same(t, before, after, "category %s should be shared", name)
		assert.True(t, before.Equal(after))
	}
	assert.Equal(t, p.Names(), got.Names())
}

func TestWith_AllExerciseAdditions(t *testing.T) {
	p := davidProfile(t)
	snapshot := davidProfile(t)

	got, err := p.With(
		Add("frontEnd", Entry("BootStrap", 8)),
		Add("backEnd", Entry("Express", 9)),
		Add("dataBase", Entry("SQL", 8)),
		Add("dataScience", Label("SQL")),
	)
	require.NoError(t, err)

	want := map[string][]Item{
		"frontEnd":    {Entry("HTML", 10), Entry("CSS", 8), Entry("JS", 8), Entry("React", 9), Entry("BootStrap", 8)},
		"backEnd":     {Entry("Node", 7), Entry("GraphQL", 8), Entry("Express", 9)},
		"dataBase":    {Entry("MongoDB", 7.5), Entry("SQL", 8)},
		"dataScience": {Label("Python"), Label("R"), Label("D3.js"), Label("SQL")},
	}
	for name, items := range want {
		c, ok := got.Category(name)
		require.True(t, ok)
		if diff := cmp.Diff(items, c.Items(), cmp.AllowUnexported(Item{})); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}

	assert.True(t, p.Equal(snapshot), "original profile changed")
}

func TestWith_SameCategoryTwice(t *testing.T) {
	p := davidProfile(t)

	got, err := p.With(
		Add("dataBase", Entry("SQL", 8)),
		Add("dataBase", Unleveled("Redis")),
	)
	require.NoError(t, err)

	db, _ := got.Category("dataBase")
	assert.Equal(t, []Item{Entry("MongoDB", 7.5), Entry("SQL", 8), Unleveled("Redis")}, db.Items())

	_, hasLevel := db.At(2).Level()
	assert.False(t, hasLevel)
}

func TestWith_ChainedUpdatesDoNotLeak(t *testing.T) {
	p := davidProfile(t)

	a, err := p.With(Add("backEnd", Entry("Express", 9)))
	require.NoError(t, err)
	b, err := a.With(Add("backEnd", Entry("Gin", 6)))
	require.NoError(t, err)
	c, err := a.With(Add("backEnd", Entry("Echo", 5)))
	require.NoError(t, err)

	skills := func(p *Profile) []string {
		be, _ := p.Category("backEnd")
		return be.Skills()
	}
	assert.Equal(t, []string{"Node", "GraphQL"}, skills(p))
	assert.Equal(t, []string{"Node", "GraphQL", "Express"}, skills(a))
	assert.Equal(t, []string{"Node", "GraphQL", "Express", "Gin"}, skills(b))
	assert.Equal(t, []string{"Node", "GraphQL", "Express", "Echo"}, skills(c))
}

func TestWith_NoAdditions(t *testing.T) {
	p := davidProfile(t)

	got, err := p.With()
	require.NoError(t, err)
	assert.True(t, p.Equal(got))
}

func TestWith_Errors(t *testing.T) {
	tests := []struct {
		name      string
		additions []Addition
		kind      error
		category  string
		index     int
	}{
		{
			name:      "unknown category",
			additions: []Addition{Add("unknownCategory", Entry("X", 1))},
			kind:      ErrUnknownCategory,
			category:  "unknownCategory",
		},
		{
			name:      "label into structured category",
			additions: []Addition{Add("frontEnd", Label("Vue"))},
			kind:      ErrShapeMismatch,
			category:  "frontEnd",
		},
		{
			name:      "entry into label category",
			additions: []Addition{Add("dataScience", Entry("SQL", 8))},
			kind:      ErrShapeMismatch,
			category:  "dataScience",
		},
		{
			name: "fails after valid additions",
			additions: []Addition{
				Add("frontEnd", Entry("BootStrap", 8)),
				Add("mobile", Entry("Swift", 3)),
			},
			kind:     ErrUnknownCategory,
			category: "mobile",
			index:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := davidProfile(t)

			got, err := p.With(tt.additions...)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, tt.kind))

			var upErr *UpdateError
			require.True(t, errors.As(err, &upErr))
			assert.Equal(t, tt.category, upErr.Category)
			assert.Equal(t, tt.index, upErr.Index)

			assert.True(t, p.Equal(davidProfile(t)), "original profile changed")
		})
	}
}

func TestWith_NilProfile(t *testing.T) {
	var p *Profile

	_, err := p.With(Add("frontEnd", Entry("HTML", 1)))
	assert.ErrorIs(t, err, ErrUnknownCategory)

	got, err := p.With()
	require.NoError(t, err)
	assert.Empty(t, got.Names())
}

func TestAddSkillEntries(t *testing.T) {
	p := davidProfile(t)

	got, err := AddSkillEntries(p, []Addition{Add("dataScience", Label("SQL"))})
	require.NoError(t, err)
	ds, _ := got.Category("dataScience")
	assert.Equal(t, 4, ds.Len())

	_, err = AddSkillEntries(p, []Addition{Add("unknownCategory", Entry("X", 1))})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestPerson_WithSkills(t *testing.T) {
	orig := david(t)

	updated, err := orig.WithSkills(Add("frontEnd", Entry("BootStrap", 8)))
	require.NoError(t, err)

	assert.Equal(t, "David", updated.Name)
	assert.Equal(t, 25, updated.Age)
	assert.NotSame(t, orig.Skills, updated.Skills)

	front, _ := orig.Skills.Category("frontEnd")
	assert.Equal(t, 4, front.Len())
	front, _ = updated.Skills.Category("frontEnd")
	assert.Equal(t, 5, front.Len())

	_, err = orig.WithSkills(Add("frontEnd", Label("Vue")))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestWith_ConcurrentCallers(t *testing.T) {
	p := davidProfile(t)

	var wg sync.WaitGroup
	results := make([]*Profile, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := p.With(Add("backEnd", Entry("Worker", float64(i))))
			if err == nil {
				results[i] = got
			}
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		require.NotNil(t, got)
		be, _ := got.Category("backEnd")
		require.Equal(t, 3, be.Len())
		level, _ := be.At(2).Level()
		assert.Equal(t, float64(i), level)
	}
	be, _ := p.Category("backEnd")
	assert.Equal(t, 2, be.Len())
}

package profile

import "maps"

// Addition appends Item to the end of the named category.
type Addition struct {
	Category string
	Item     Item
}

// Add is shorthand for an Addition literal.
func Add(category string, item Item) Addition {
	return Addition{Category: category, Item: item}
}

// With returns a new profile equal to p except that each addition's item is
// appended to its category, in order. Categories no addition names are shared
// with p by pointer. p itself is never modified.
//
// Every addition is checked before anything is built: an unknown category
// yields ErrUnknownCategory and an item whose shape differs from the
// category's yields ErrShapeMismatch, and no profile is returned.
func (p *Profile) With(additions ...Addition) (*Profile, error) {
	pending := make(map[string][]Item)
	for i, a := range additions {
		c, ok := p.Category(a.Category)
		if !ok {
			return nil, unknownCategory(a.Category, i)
		}
		if a.Item.shape != c.shape {
			return nil, shapeMismatch(a.Category, i, c.shape, a.Item.shape)
		}
		pending[a.Category] = append(pending[a.Category], a.Item)
	}

	var byName map[string]*Category
	if p != nil {
		byName = maps.Clone(p.byName)
	}
	for name, items := range pending {
		byName[name] = byName[name].appended(items...)
	}

	next := &Profile{byName: byName}
	if p != nil {
		// order is never written after New, so it is shared.
		next.order = p.order
	}
	return next, nil
}

// AddSkillEntries is the function form of p.With.
func AddSkillEntries(p *Profile, additions []Addition) (*Profile, error) {
	return p.With(additions...)
}

// Person wraps a skill profile with identifying fields.
type Person struct {
	Name   string   `yaml:"name" json:"name"`
	Age    int      `yaml:"age" json:"age"`
	Skills *Profile `yaml:"skills" json:"-"`
}

// WithSkills returns a copy of the person whose profile has the additions
// applied. The receiver keeps its original profile.
func (p Person) WithSkills(additions ...Addition) (Person, error) {
	skills, err := p.Skills.With(additions...)
	if err != nil {
		return Person{}, err
	}
	p.Skills = skills
	return p, nil
}

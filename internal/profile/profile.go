// Package profile models a person's skill profile as an immutable value.
//
// A Profile is an ordered set of named categories. Each category declares one
// Shape and every item in it has that shape. Nothing reachable from a Profile
// is ever written after construction, so a Profile can be shared freely and
// updates (see With) return a new Profile that reuses every category they do
// not touch.
package profile

import (
	"fmt"
	"slices"
)

// Category is a named, immutable list of items of a single shape.
type Category struct {
	name  string
	shape Shape
	items []Item
}

// NewCategory builds a category. Every item must match shape.
func NewCategory(name string, shape Shape, items ...Item) (*Category, error) {
	for i, it := range items {
		if it.shape != shape {
			return nil, shapeMismatch(name, i, shape, it.shape)
		}
	}
	return &Category{name: name, shape: shape, items: slices.Clone(items)}, nil
}

func (c *Category) Name() string { return c.name }
func (c *Category) Shape() Shape { return c.shape }
func (c *Category) Len() int     { return len(c.items) }

// At returns the i-th item.
func (c *Category) At(i int) Item { return c.items[i] }

// Items returns a copy of the category's items.
func (c *Category) Items() []Item { return slices.Clone(c.items) }

// Skills returns the skill names in order.
func (c *Category) Skills() []string {
	out := make([]string, len(c.items))
	for i, it := range c.items {
		out[i] = it.skill
	}
	return out
}

// Equal reports whether c and o have the same name, shape and items.
func (c *Category) Equal(o *Category) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return c.name == o.name && c.shape == o.shape && slices.Equal(c.items, o.items)
}

// appended returns a new category holding c's items followed by extra.
// The backing array is freshly allocated so c is never written through.
func (c *Category) appended(extra ...Item) *Category {
	items := make([]Item, 0, len(c.items)+len(extra))
	items = append(items, c.items...)
	items = append(items, extra...)
	return &Category{name: c.name, shape: c.shape, items: items}
}

// Profile is an ordered set of categories.
type Profile struct {
	order  []string
	byName map[string]*Category
}

// New builds a profile from categories in the given order.
func New(categories ...*Category) (*Profile, error) {
	p := &Profile{
		order:  make([]string, 0, len(categories)),
		byName: make(map[string]*Category, len(categories)),
	}
	for i, c := range categories {
		if c == nil {
			return nil, fmt.Errorf("profile: category %d is nil", i)
		}
		if _, dup := p.byName[c.name]; dup {
			return nil, &UpdateError{Kind: ErrDuplicateCategory, Category: c.name, Index: i}
		}
		p.order = append(p.order, c.name)
		p.byName[c.name] = c
	}
	return p, nil
}

// Category looks up a category by name. A nil profile has no categories.
func (p *Profile) Category(name string) (*Category, bool) {
	if p == nil {
		return nil, false
	}
	c, ok := p.byName[name]
	return c, ok
}

// Names returns the category names in profile order.
func (p *Profile) Names() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.order)
}

// Categories returns the categories in profile order.
func (p *Profile) Categories() []*Category {
	if p == nil {
		return nil
	}
	out := make([]*Category, len(p.order))
	for i, name := range p.order {
		out[i] = p.byName[name]
	}
	return out
}

// Equal reports whether both profiles hold equal categories in the same order.
func (p *Profile) Equal(o *Profile) bool {
	if p == o {
		return true
	}
	if !slices.Equal(p.Names(), o.Names()) {
		return false
	}
	for _, name := range p.Names() {
		a, _ := p.Category(name)
		b, _ := o.Category(name)
		if !a.Equal(b) {
			return false
		}
	}
	return true
}

// Field declares one category of a Schema.
type Field struct {
	Name  string
	Shape Shape
}

// Schema is an ordered list of category declarations.
type Schema []Field

// DefaultSchema is the layout of the developer skill profile: three
// structured categories and a label-only dataScience category.
func DefaultSchema() Schema {
	return Schema{
		{Name: "frontEnd", Shape: Structured},
		{Name: "backEnd", Shape: Structured},
		{Name: "dataBase", Shape: Structured},
		{Name: "dataScience", Shape: Labels},
	}
}

// Shape returns the declared shape of name.
func (s Schema) Shape(name string) (Shape, bool) {
	for _, f := range s {
		if f.Name == name {
			return f.Shape, true
		}
	}
	return 0, false
}

// Empty returns a profile with every declared category and no items.
func (s Schema) Empty() (*Profile, error) {
	cats := make([]*Category, len(s))
	for i, f := range s {
		cats[i] = &Category{name: f.Name, shape: f.Shape}
	}
	return New(cats...)
}

package profile

// Shape is the element kind a category holds.
type Shape int

const (
	// Structured items carry a skill name and an optional level.
	Structured Shape = iota
	// Labels items are bare skill names.
	Labels
)

func (s Shape) String() string {
	switch s {
	case Structured:
		return "structured entries"
	case Labels:
		return "plain labels"
	default:
		return "unknown shape"
	}
}

// Item is a single skill inside a category. The zero value is a structured
// entry with an empty name and no level.
type Item struct {
	shape    Shape
	skill    string
	level    float64
	hasLevel bool
}

// Entry returns a structured item with a level.
func Entry(skill string, level float64) Item {
	return Item{shape: Structured, skill: skill, level: level, hasLevel: true}
}

// Unleveled returns a structured item without a level.
func Unleveled(skill string) Item {
	return Item{shape: Structured, skill: skill}
}

// Label returns a plain label item.
func Label(skill string) Item {
	return Item{shape: Labels, skill: skill}
}

func (i Item) Shape() Shape  { return i.shape }
func (i Item) Skill() string { return i.skill }

// Level reports the item's level. ok is false for labels and unleveled entries.
func (i Item) Level() (level float64, ok bool) {
	return i.level, i.hasLevel
}

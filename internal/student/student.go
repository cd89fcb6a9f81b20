// Package student reshapes positional student rows into named records.
//
// A row is the triple [name, skills, scores] where skills[i] is scored by
// scores[i]. Rows usually come straight out of a YAML or JSON decoder, so the
// loosely typed forms ([]any holding strings, ints and floats) are accepted
// next to the typed ones.
package student

import (
	"fmt"
	"slices"
)

// Tuple is a positional row: name, skills, scores.
type Tuple []any

// Record is the named form of a Tuple.
type Record struct {
	Name   string    `yaml:"name" json:"name"`
	Skills []string  `yaml:"skills" json:"skills"`
	Scores []float64 `yaml:"scores" json:"scores"`
}

// FromTuples converts rows into records, one per row, in input order.
// The skills and scores lengths are carried over as given.
func FromTuples(rows []Tuple) ([]Record, error) {
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		rec, err := fromTuple(i, row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func fromTuple(row int, t Tuple) (Record, error) {
	if len(t) != 3 {
		return Record{}, shapef(row, "want 3 elements, got %d", len(t))
	}

	name, ok := t[0].(string)
	if !ok {
		return Record{}, shapef(row, "name must be text, got %T", t[0])
	}

	skills, err := toLabels(t[1])
	if err != nil {
		return Record{}, shapef(row, "skills: %v", err)
	}

	scores, err := toScores(t[2])
	if err != nil {
		return Record{}, shapef(row, "scores: %v", err)
	}

	return Record{Name: name, Skills: skills, Scores: scores}, nil
}

func toLabels(v any) ([]string, error) {
	switch s := v.(type) {
	case []string:
		return slices.Clone(s), nil
	case []any:
		out := make([]string, len(s))
		for i, e := range s {
			label, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("element %d must be text, got %T", i, e)
			}
			out[i] = label
		}
		return out, nil
	default:
		return nil, fmt.Errorf("want a sequence of text, got %T", v)
	}
}

func toScores(v any) ([]float64, error) {
	switch s := v.(type) {
	case []float64:
		return slices.Clone(s), nil
	case []int:
		out := make([]float64, len(s))
		for i, n := range s {
			out[i] = float64(n)
		}
		return out, nil
	case []any:
		out := make([]float64, len(s))
		for i, e := range s {
			n, ok := toNumber(e)
			if !ok {
				return nil, fmt.Errorf("element %d must be a number, got %T", i, e)
			}
			out[i] = n
		}
		return out, nil
	default:
		return nil, fmt.Errorf("want a sequence of numbers, got %T", v)
	}
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// Tuple rebuilds the positional row the record was made from. The row is
// equal to the original by value: skills come back as []string and scores as
// []float64 whatever element types the original row used.
func (r Record) Tuple() Tuple {
	return Tuple{r.Name, slices.Clone(r.Skills), slices.Clone(r.Scores)}
}

// Score returns the score paired with skill. ok is false when the skill is
// not listed or has no score at its position.
func (r Record) Score(skill string) (score float64, ok bool) {
	i := slices.Index(r.Skills, skill)
	if i < 0 || i >= len(r.Scores) {
		return 0, false
	}
	return r.Scores[i], true
}

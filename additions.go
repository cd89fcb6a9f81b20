package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blagoySimandov/skillshape/internal/profile"
)

// parseAddition reads one --add value:
//
//	category=label        plain label
//	category=skill:level  structured entry
//	category=skill:       structured entry without a level
func parseAddition(spec string) (profile.Addition, error) {
	category, value, ok := strings.Cut(spec, "=")
	category = strings.TrimSpace(category)
	if !ok || category == "" {
		return profile.Addition{}, fmt.Errorf("addition %q: want category=skill[:level]", spec)
	}

	idx := strings.LastIndex(value, ":")
	if idx < 0 {
		label := strings.TrimSpace(value)
		if label == "" {
			return profile.Addition{}, fmt.Errorf("addition %q: empty skill", spec)
		}
		return profile.Add(category, profile.Label(label)), nil
	}

	skill := strings.TrimSpace(value[:idx])
	if skill == "" {
		return profile.Addition{}, fmt.Errorf("addition %q: empty skill", spec)
	}
	levelText := strings.TrimSpace(value[idx+1:])
	if levelText == "" {
		return profile.Add(category, profile.Unleveled(skill)), nil
	}
	level, err := strconv.ParseFloat(levelText, 64)
	if err != nil {
		return profile.Addition{}, fmt.Errorf("addition %q: level %q is not a number", spec, levelText)
	}
	return profile.Add(category, profile.Entry(skill, level)), nil
}

func parseAdditions(specs []string) ([]profile.Addition, error) {
	out := make([]profile.Addition, 0, len(specs))
	for _, spec := range specs {
		a, err := parseAddition(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

package profile

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCategory   = errors.New("unknown category")
	ErrShapeMismatch     = errors.New("shape mismatch")
	ErrDuplicateCategory = errors.New("duplicate category")
	ErrInvalidItem       = errors.New("invalid skill item")
)

// UpdateError wraps a failed category lookup or item check.
// Index is the position of the offending addition or item.
type UpdateError struct {
	Kind     error
	Category string
	Index    int
	Msg      string
}

func (e *UpdateError) Error() string {
	if e == nil {
		return ""
	}
	base := fmt.Sprintf("%s %q", e.Kind.Error(), e.Category)
	if e.Msg == "" {
		return fmt.Sprintf("%s (index %d)", base, e.Index)
	}
	return fmt.Sprintf("%s (index %d): %s", base, e.Index, e.Msg)
}

func (e *UpdateError) Unwrap() error { return e.Kind }

func unknownCategory(category string, index int) error {
	return &UpdateError{Kind: ErrUnknownCategory, Category: category, Index: index}
}

func shapeMismatch(category string, index int, want, got Shape) error {
	return &UpdateError{
		Kind:     ErrShapeMismatch,
		Category: category,
		Index:    index,
		Msg:      fmt.Sprintf("category holds %s, got %s", want, got),
	}
}

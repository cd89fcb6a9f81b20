package student

import (
	"errors"
	"fmt"
)

var ErrInvalidShape = errors.New("invalid tuple shape")

// ShapeError reports which row of the input could not be reshaped.
type ShapeError struct {
	Row int
	Msg string
}

func (e *ShapeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return fmt.Sprintf("%s at row %d", ErrInvalidShape, e.Row)
	}
	return fmt.Sprintf("%s at row %d: %s", ErrInvalidShape, e.Row, e.Msg)
}

func (e *ShapeError) Unwrap() error { return ErrInvalidShape }

func shapef(row int, format string, args ...any) error {
	return &ShapeError{Row: row, Msg: fmt.Sprintf(format, args...)}
}

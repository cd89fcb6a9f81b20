package main

import "github.com/blagoySimandov/skillshape/internal/student"

// rosterDocument is the input of the records command: one positional row
// per student.
type rosterDocument struct {
	Students []student.Tuple `yaml:"students"`
}

// recordsDocument is the output of the records command.
type recordsDocument struct {
	Students []student.Record `yaml:"students"`
}

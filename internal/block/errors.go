package block

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// PositionOutOfBoundError is returned by positional access and mutation
// when the position exceeds the valid range.
type PositionOutOfBoundError struct {
	Position int
	Max      int

	// Names carries the block's column names for diagnostics; empty on
	// mutation paths.
	Names string
}

func (e PositionOutOfBoundError) Error() string {
	if e.Names != "" {
		return fmt.Sprintf("position %d is out of bound, max position = %d, there are columns: %s", e.Position, e.Max, e.Names)
	}
	return fmt.Sprintf("position %d is out of bound, max position = %d", e.Position, e.Max)
}

func IsPositionOutOfBoundError(err error) bool {
	return errors.HasType(err, PositionOutOfBoundError{})
}

// ColumnNotFoundError is returned by name-based access and erase when no
// column with that name is addressable.
type ColumnNotFoundError struct {
	Name  string
	Names string
}

func (e ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in block, there are only columns: %s", e.Name, e.Names)
}

func IsColumnNotFoundError(err error) bool {
	return errors.HasType(err, ColumnNotFoundError{})
}

// SizeMismatchError is returned by Rows when two populated columns report
// different element counts.
type SizeMismatchError struct {
	FirstName  string
	FirstRows  int
	SecondName string
	SecondRows int
}

func (e SizeMismatchError) Error() string {
	return fmt.Sprintf("sizes of columns don't match: %s: %d, %s: %d", e.FirstName, e.FirstRows, e.SecondName, e.SecondRows)
}

func IsSizeMismatchError(err error) bool {
	return errors.HasType(err, SizeMismatchError{})
}

package row

import (
	"github.com/cockroachdb/errors"

	"github.com/vexdb/vex/internal/types"
)

// A Row is an ordered view over the column values of a single record,
// before they are scattered into a block's columns.
type Row interface {
	// Iterate goes through all the columns of the row and calls the given function
	// by passing the column name and value.
	Iterate(fn func(column string, value types.Value) error) error

	// Get returns the value of the given column.
	// If the column does not exist, it returns types.ErrColumnNotFound.
	Get(name string) (types.Value, error)
}

// Length returns the number of columns of a row.
func Length(r Row) (int, error) {
	if cb, ok := r.(*ColumnBuffer); ok {
		return cb.Len(), nil
	}

	var n int
	err := r.Iterate(func(_ string, _ types.Value) error {
		n++
		return nil
	})
	return n, err
}

var _ Row = (*ColumnBuffer)(nil)

// A ColumnBuffer is an in-memory row that preserves the order in which
// columns were added.
type ColumnBuffer struct {
	columns []bufferColumn
}

type bufferColumn struct {
	name  string
	value types.Value
}

// NewColumnBuffer returns an empty row buffer.
func NewColumnBuffer() *ColumnBuffer {
	return &ColumnBuffer{}
}

// Add appends a column to the buffer. If the column already exists, its
// value is replaced in place.
func (cb *ColumnBuffer) Add(name string, v types.Value) *ColumnBuffer {
	for i := range cb.columns {
		if cb.columns[i].name == name {
			cb.columns[i].value = v
			return cb
		}
	}

	cb.columns = append(cb.columns, bufferColumn{name: name, value: v})
	return cb
}

func (cb *ColumnBuffer) Len() int {
	return len(cb.columns)
}

func (cb *ColumnBuffer) Iterate(fn func(column string, value types.Value) error) error {
	for _, c := range cb.columns {
		if err := fn(c.name, c.value); err != nil {
			return err
		}
	}

	return nil
}

func (cb *ColumnBuffer) Get(name string) (types.Value, error) {
	for _, c := range cb.columns {
		if c.name == name {
			return c.value, nil
		}
	}

	return nil, errors.Wrapf(types.ErrColumnNotFound, "column %q not found", name)
}

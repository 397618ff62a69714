package block

import (
	"github.com/cockroachdb/errors"

	"github.com/vexdb/vex/internal/column"
	"github.com/vexdb/vex/internal/row"
	"github.com/vexdb/vex/internal/types"
)

// AppendRow appends one value per named column of the row. Columns the
// row does not name are left untouched; a row naming an unknown column
// fails the whole append. Unset columns are materialized from their type
// descriptor on first append.
//
// AppendRow offers no atomicity: on error the block may hold a partially
// appended row, which a subsequent Rows call will report as a size
// mismatch.
func (b *Block) AppendRow(r row.Row) error {
	return r.Iterate(func(name string, v types.Value) error {
		e, err := b.GetByName(name)
		if err != nil {
			return err
		}

		if e.Column == nil {
			if e.Type == nil {
				return errors.Errorf("column %q has neither data nor type", name)
			}
			c, err := column.New(e.Type)
			if err != nil {
				return err
			}
			e.Column = c
		}

		return e.Column.Append(v)
	})
}

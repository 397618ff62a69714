package block

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Concat merges blocks with equal structure into a single block, in
// argument order. The result shares no column storage with the inputs.
func Concat(blocks ...*Block) (*Block, error) {
	if len(blocks) == 0 {
		return New(), nil
	}

	res := blocks[0].CloneEmpty()

	for _, b := range blocks {
		if !BlocksHaveEqualStructure(blocks[0], b) {
			return nil, errors.Errorf("cannot concatenate blocks with different structures: [%s] and [%s]",
				dumpStructure(blocks[0]), dumpStructure(b))
		}

		for i, e := range b.data {
			if e.Column == nil {
				continue
			}

			dst := res.data[i]
			if dst.Column == nil {
				dst.Column = e.Column.CloneEmpty()
			}
			if err := dst.Column.AppendColumn(e.Column); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}

func dumpStructure(b *Block) string {
	var sb strings.Builder
	for i, e := range b.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Name)
		sb.WriteRune(' ')
		if e.Type != nil {
			sb.WriteString(e.Type.Name())
		} else {
			sb.WriteString("<untyped>")
		}
	}

	return sb.String()
}

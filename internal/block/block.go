package block

import (
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"

	"github.com/vexdb/vex/internal/column"
	"github.com/vexdb/vex/internal/types"
)

// A ColumnEntry groups a column with its name and type descriptor. It is
// the unit stored in a block. Entries are copied by value; the column and
// type payloads they point to are shared, never duplicated.
type ColumnEntry struct {
	Name   string
	Column column.Column // nil until populated
	Type   types.TypeDescriptor
}

// CloneEmpty returns an entry with the same name and type and a
// zero-length column of the same type. An unset column stays unset.
func (e *ColumnEntry) CloneEmpty() ColumnEntry {
	res := ColumnEntry{Name: e.Name, Type: e.Type}
	if e.Column != nil {
		res.Column = e.Column.CloneEmpty()
	}
	return res
}

// A NameAndType describes one column of a block's structure.
type NameAndType struct {
	Name string
	Type types.TypeDescriptor
}

// A Block is an ordered, named, typed collection of columns representing a
// table fragment flowing between stages of the execution pipeline.
//
// The entry sequence is the single source of truth. Two derived indices
// provide fast lookup: a position index, rebuilt on every structural
// mutation, and a name index, maintained incrementally with
// last-write-wins semantics. Two same-named columns are permitted, but
// only the most recently inserted one is name-addressable.
//
// A Block must not be accessed concurrently from multiple goroutines.
type Block struct {
	data            []*ColumnEntry
	indexByPosition []*ColumnEntry
	indexByName     map[string]*ColumnEntry
}

// New returns an empty block.
func New() *Block {
	return &Block{
		indexByName: make(map[string]*ColumnEntry),
	}
}

// NewFromEntries returns a block holding the given entries in order.
func NewFromEntries(entries ...ColumnEntry) *Block {
	b := New()
	for i := range entries {
		b.Insert(entries[i])
	}
	return b
}

func (b *Block) rebuildIndexByPosition() {
	b.indexByPosition = slices.Clone(b.data)
}

func (b *Block) setNameIndex(entry *ColumnEntry) {
	if b.indexByName == nil {
		b.indexByName = make(map[string]*ColumnEntry)
	}
	b.indexByName[entry.Name] = entry
}

// Insert appends an entry to the end of the block. Duplicate names are
// permitted; the name index is overwritten to address the new entry.
func (b *Block) Insert(e ColumnEntry) {
	entry := &e
	b.data = append(b.data, entry)
	b.rebuildIndexByPosition()
	b.setNameIndex(entry)
}

// InsertAt splices an entry in before the entry currently at the given
// position, shifting subsequent entries. Inserting at Columns() is
// equivalent to Insert.
func (b *Block) InsertAt(position int, e ColumnEntry) error {
	if position < 0 || position > len(b.data) {
		return errors.WithStack(PositionOutOfBoundError{Position: position, Max: len(b.data)})
	}

	if position == len(b.data) {
		b.Insert(e)
		return nil
	}

	entry := &e
	b.data = slices.Insert(b.data, position, entry)
	b.rebuildIndexByPosition()
	b.setNameIndex(entry)
	return nil
}

// InsertUnique appends the entry only if no entry with that name is
// currently addressable. It does not deduplicate entries inserted through
// other paths.
func (b *Block) InsertUnique(e ColumnEntry) {
	if _, ok := b.indexByName[e.Name]; !ok {
		b.Insert(e)
	}
}

// EraseAt removes the entry at the given position.
//
// The name index slot for the removed entry's name is dropped even when,
// under duplicate names, it currently addresses a different entry. This
// mirrors the last-write-wins contract of the name index: erasing any
// same-named entry makes the name unaddressable.
func (b *Block) EraseAt(position int) error {
	if position < 0 || position >= len(b.data) {
		return errors.WithStack(PositionOutOfBoundError{Position: position, Max: len(b.data) - 1})
	}

	entry := b.indexByPosition[position]
	delete(b.indexByName, entry.Name)
	b.data = slices.Delete(b.data, position, position+1)
	b.rebuildIndexByPosition()
	return nil
}

// Erase removes the entry currently addressed by the given name.
func (b *Block) Erase(name string) error {
	entry, ok := b.indexByName[name]
	if !ok {
		return errors.WithStack(ColumnNotFoundError{Name: name, Names: b.DumpNames()})
	}

	delete(b.indexByName, name)
	i := b.offsetOf(entry)
	b.data = slices.Delete(b.data, i, i+1)
	b.rebuildIndexByPosition()
	return nil
}

// Get returns the entry at the given position. The returned pointer stays
// valid across subsequent mutations of the block.
func (b *Block) Get(position int) (*ColumnEntry, error) {
	if position < 0 || position >= len(b.indexByPosition) {
		return nil, errors.WithStack(PositionOutOfBoundError{
			Position: position,
			Max:      len(b.indexByPosition) - 1,
			Names:    b.DumpNames(),
		})
	}

	return b.indexByPosition[position], nil
}

// GetByName returns the entry currently addressed by the given name.
func (b *Block) GetByName(name string) (*ColumnEntry, error) {
	entry, ok := b.indexByName[name]
	if !ok {
		return nil, errors.WithStack(ColumnNotFoundError{Name: name, Names: b.DumpNames()})
	}

	return entry, nil
}

// Has reports whether a column with the given name is addressable.
func (b *Block) Has(name string) bool {
	_, ok := b.indexByName[name]
	return ok
}

// PositionOf returns the ordinal position of the entry currently addressed
// by the given name. The position is derived from the sequence on demand,
// never cached: positions shift on insert and erase.
func (b *Block) PositionOf(name string) (int, error) {
	entry, ok := b.indexByName[name]
	if !ok {
		return 0, errors.WithStack(ColumnNotFoundError{Name: name, Names: b.DumpNames()})
	}

	return b.offsetOf(entry), nil
}

func (b *Block) offsetOf(entry *ColumnEntry) int {
	return slices.Index(b.data, entry)
}

// Rows returns the number of rows in the block, checking that every
// populated column reports the same element count. Unset columns do not
// participate. An empty block has zero rows.
func (b *Block) Rows() (int, error) {
	rows := -1
	var ref string

	for _, e := range b.data {
		if e.Column == nil {
			continue
		}

		n := e.Column.Len()
		if rows == -1 {
			rows, ref = n, e.Name
			continue
		}
		if n != rows {
			return 0, errors.WithStack(SizeMismatchError{
				FirstName:  ref,
				FirstRows:  rows,
				SecondName: e.Name,
				SecondRows: n,
			})
		}
	}

	if rows == -1 {
		return 0, nil
	}
	return rows, nil
}

// RowsInFirstColumn returns the element count of the first column without
// cross-checking the others. Cheaper but weaker than Rows.
func (b *Block) RowsInFirstColumn() int {
	if len(b.data) == 0 || b.data[0].Column == nil {
		return 0
	}

	return b.data[0].Column.Len()
}

// Columns returns the number of columns in the block.
func (b *Block) Columns() int {
	return len(b.data)
}

// Bytes returns the cumulated byte footprint of the block's columns.
// Unset columns contribute nothing.
func (b *Block) Bytes() int {
	var total int
	for _, e := range b.indexByPosition {
		if e.Column != nil {
			total += e.Column.ByteSize()
		}
	}

	return total
}

// DumpNames renders the column names in sequence order, for diagnostics.
func (b *Block) DumpNames() string {
	var sb strings.Builder
	for i, e := range b.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Name)
	}

	return sb.String()
}

// CloneEmpty returns a block with the same sequence of names and types but
// every populated column replaced by a zero-length column of the same
// type.
func (b *Block) CloneEmpty() *Block {
	res := New()
	for _, e := range b.data {
		res.Insert(e.CloneEmpty())
	}

	return res
}

// Clone returns an independent copy of the block. Entries are copied by
// value, sharing the column and type payloads, and both indices are
// rebuilt against the copy's own entries: index handles taken from the
// source would address the source's storage, not the copy's.
func (b *Block) Clone() *Block {
	res := New()
	res.data = make([]*ColumnEntry, len(b.data))
	for i, e := range b.data {
		entry := *e
		res.data[i] = &entry
	}
	res.rebuildIndexByPosition()

	for name, entry := range b.indexByName {
		res.indexByName[name] = res.data[b.offsetOf(entry)]
	}

	return res
}

// GetColumns returns a copy of the block's entries in sequence order.
func (b *Block) GetColumns() []ColumnEntry {
	res := make([]ColumnEntry, len(b.data))
	for i, e := range b.data {
		res[i] = *e
	}

	return res
}

// ColumnsList returns the block's structure as (name, type) pairs in
// sequence order.
func (b *Block) ColumnsList() []NameAndType {
	res := make([]NameAndType, len(b.data))
	for i, e := range b.data {
		res[i] = NameAndType{Name: e.Name, Type: e.Type}
	}

	return res
}

// BlocksHaveEqualStructure reports whether two blocks have the same column
// count and, at every position, type descriptors with the same canonical
// name. Column names are intentionally not compared.
func BlocksHaveEqualStructure(lhs, rhs *Block) bool {
	n := lhs.Columns()
	if rhs.Columns() != n {
		return false
	}

	for i := 0; i < n; i++ {
		lt, rt := lhs.data[i].Type, rhs.data[i].Type
		if lt == nil || rt == nil {
			if lt != rt {
				return false
			}
			continue
		}
		if lt.Name() != rt.Name() {
			return false
		}
	}

	return true
}

package column

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/vexdb/vex/internal/types"
)

// A Column is a typed vector holding the values of one field across all
// rows of a block. Columns report their element count and byte footprint
// and can produce a zero-length copy of themselves with the same type.
type Column interface {
	// Type returns the descriptor of the column's logical type.
	Type() types.TypeDescriptor

	// Len returns the number of elements in the column.
	Len() int

	// ByteSize returns the approximate memory footprint of the column's
	// data, in bytes.
	ByteSize() int

	// CloneEmpty returns a new zero-length column of the same type.
	CloneEmpty() Column

	// Append appends a value to the column. It fails if the value's type
	// is not compatible with the column's type.
	Append(v types.Value) error

	// Get returns the value at index i.
	Get(i int) (types.Value, error)

	// AppendColumn appends all elements of other to the column. It fails
	// if other is a column of a different type.
	AppendColumn(other Column) error
}

// New returns an empty column for the given type descriptor.
func New(td types.TypeDescriptor) (Column, error) {
	switch td.Type() {
	case types.TypeBigint:
		return NewInt64Column(), nil
	case types.TypeDouble:
		return NewFloat64Column(), nil
	case types.TypeBoolean:
		return NewBooleanColumn(), nil
	case types.TypeTimestamp:
		return NewTimestampColumn(), nil
	case types.TypeText:
		return NewTextColumn(), nil
	}

	return nil, errors.Errorf("no column implementation for type %q", td.Name())
}

func outOfRange(i, n int) error {
	return errors.Errorf("index %d out of range, column has %d elements", i, n)
}

func typeMismatch(col types.TypeDescriptor, v types.Value) error {
	return errors.Errorf("cannot append %s value to %s column", v.Type(), col.Name())
}

var _ Column = (*Int64Column)(nil)

type Int64Column struct {
	// data is the underlying data for the column.
	data []int64
}

func NewInt64Column() *Int64Column {
	return &Int64Column{}
}

func (c *Int64Column) Type() types.TypeDescriptor {
	return types.BigintTypeDef{}
}

func (c *Int64Column) Len() int {
	return len(c.data)
}

func (c *Int64Column) ByteSize() int {
	return 8 * len(c.data)
}

func (c *Int64Column) CloneEmpty() Column {
	return NewInt64Column()
}

func (c *Int64Column) Append(v types.Value) error {
	if v.Type() != types.TypeBigint {
		return typeMismatch(c.Type(), v)
	}
	c.AppendInt64(types.As[int64](v))
	return nil
}

func (c *Int64Column) AppendInt64(v int64) {
	c.data = append(c.data, v)
}

func (c *Int64Column) Get(i int) (types.Value, error) {
	if i < 0 || i >= len(c.data) {
		return nil, outOfRange(i, len(c.data))
	}
	return types.NewBigintValue(c.data[i]), nil
}

func (c *Int64Column) AppendColumn(other Column) error {
	o, ok := other.(*Int64Column)
	if !ok {
		return errors.Errorf("cannot append %s column to %s column", other.Type().Name(), c.Type().Name())
	}
	c.data = append(c.data, o.data...)
	return nil
}

func (c *Int64Column) Data() []int64 {
	return c.data
}

func (c *Int64Column) AddScalarTo(dest *Int64Column, v int64) {
	dest.grow(len(c.data))
	AddConstant(dest.data, c.data, v)
}

func (c *Int64Column) SubScalarTo(dest *Int64Column, v int64) {
	dest.grow(len(c.data))
	SubConstant(dest.data, c.data, v)
}

func (c *Int64Column) MulScalarTo(dest *Int64Column, v int64) {
	dest.grow(len(c.data))
	MulConstant(dest.data, c.data, v)
}

func (c *Int64Column) DivScalarTo(dest *Int64Column, v int64) {
	dest.grow(len(c.data))
	DivConstant(dest.data, c.data, v)
}

func (c *Int64Column) ModScalarTo(dest *Int64Column, v int64) {
	dest.grow(len(c.data))
	ModConstant(dest.data, c.data, v)
}

func (c *Int64Column) grow(n int) {
	if cap(c.data) < n {
		c.data = make([]int64, n)
		return
	}
	c.data = c.data[:n]
}

var _ Column = (*Float64Column)(nil)

type Float64Column struct {
	data []float64
}

func NewFloat64Column() *Float64Column {
	return &Float64Column{}
}

func (c *Float64Column) Type() types.TypeDescriptor {
	return types.DoubleTypeDef{}
}

func (c *Float64Column) Len() int {
	return len(c.data)
}

func (c *Float64Column) ByteSize() int {
	return 8 * len(c.data)
}

func (c *Float64Column) CloneEmpty() Column {
	return NewFloat64Column()
}

func (c *Float64Column) Append(v types.Value) error {
	if v.Type() != types.TypeDouble {
		return typeMismatch(c.Type(), v)
	}
	c.AppendFloat64(types.As[float64](v))
	return nil
}

func (c *Float64Column) AppendFloat64(v float64) {
	c.data = append(c.data, v)
}

func (c *Float64Column) Get(i int) (types.Value, error) {
	if i < 0 || i >= len(c.data) {
		return nil, outOfRange(i, len(c.data))
	}
	return types.NewDoubleValue(c.data[i]), nil
}

func (c *Float64Column) AppendColumn(other Column) error {
	o, ok := other.(*Float64Column)
	if !ok {
		return errors.Errorf("cannot append %s column to %s column", other.Type().Name(), c.Type().Name())
	}
	c.data = append(c.data, o.data...)
	return nil
}

func (c *Float64Column) Data() []float64 {
	return c.data
}

func (c *Float64Column) AddScalarTo(dest *Float64Column, v float64) {
	dest.grow(len(c.data))
	AddConstant(dest.data, c.data, v)
}

func (c *Float64Column) SubScalarTo(dest *Float64Column, v float64) {
	dest.grow(len(c.data))
	SubConstant(dest.data, c.data, v)
}

func (c *Float64Column) MulScalarTo(dest *Float64Column, v float64) {
	dest.grow(len(c.data))
	MulConstant(dest.data, c.data, v)
}

func (c *Float64Column) DivScalarTo(dest *Float64Column, v float64) {
	dest.grow(len(c.data))
	DivConstant(dest.data, c.data, v)
}

func (c *Float64Column) grow(n int) {
	if cap(c.data) < n {
		c.data = make([]float64, n)
		return
	}
	c.data = c.data[:n]
}

var _ Column = (*BooleanColumn)(nil)

type BooleanColumn struct {
	data []bool
}

func NewBooleanColumn() *BooleanColumn {
	return &BooleanColumn{}
}

func (c *BooleanColumn) Type() types.TypeDescriptor {
	return types.BooleanTypeDef{}
}

func (c *BooleanColumn) Len() int {
	return len(c.data)
}

func (c *BooleanColumn) ByteSize() int {
	return len(c.data)
}

func (c *BooleanColumn) CloneEmpty() Column {
	return NewBooleanColumn()
}

func (c *BooleanColumn) Append(v types.Value) error {
	if v.Type() != types.TypeBoolean {
		return typeMismatch(c.Type(), v)
	}
	c.data = append(c.data, types.As[bool](v))
	return nil
}

func (c *BooleanColumn) Get(i int) (types.Value, error) {
	if i < 0 || i >= len(c.data) {
		return nil, outOfRange(i, len(c.data))
	}
	return types.NewBooleanValue(c.data[i]), nil
}

func (c *BooleanColumn) AppendColumn(other Column) error {
	o, ok := other.(*BooleanColumn)
	if !ok {
		return errors.Errorf("cannot append %s column to %s column", other.Type().Name(), c.Type().Name())
	}
	c.data = append(c.data, o.data...)
	return nil
}

var _ Column = (*TimestampColumn)(nil)

// TimestampColumn stores timestamps as microseconds since the Unix epoch.
type TimestampColumn struct {
	data []int64
}

func NewTimestampColumn() *TimestampColumn {
	return &TimestampColumn{}
}

func (c *TimestampColumn) Type() types.TypeDescriptor {
	return types.TimestampTypeDef{}
}

func (c *TimestampColumn) Len() int {
	return len(c.data)
}

func (c *TimestampColumn) ByteSize() int {
	return 8 * len(c.data)
}

func (c *TimestampColumn) CloneEmpty() Column {
	return NewTimestampColumn()
}

// Append accepts timestamp values directly and text values holding any
// reasonable textual representation of a timestamp.
func (c *TimestampColumn) Append(v types.Value) error {
	switch v.Type() {
	case types.TypeTimestamp:
		c.AppendTime(types.AsTime(v))
		return nil
	case types.TypeText:
		ts, err := types.ParseTimestamp(types.As[string](v))
		if err != nil {
			return err
		}
		c.AppendTime(ts)
		return nil
	}

	return typeMismatch(c.Type(), v)
}

func (c *TimestampColumn) AppendTime(t time.Time) {
	c.data = append(c.data, t.UnixMicro())
}

func (c *TimestampColumn) Get(i int) (types.Value, error) {
	if i < 0 || i >= len(c.data) {
		return nil, outOfRange(i, len(c.data))
	}
	return types.NewTimestampValue(time.UnixMicro(c.data[i])), nil
}

func (c *TimestampColumn) AppendColumn(other Column) error {
	o, ok := other.(*TimestampColumn)
	if !ok {
		return errors.Errorf("cannot append %s column to %s column", other.Type().Name(), c.Type().Name())
	}
	c.data = append(c.data, o.data...)
	return nil
}

var _ Column = (*TextColumn)(nil)

type TextColumn struct {
	data []string

	// bytes tracks the cumulated payload size so that ByteSize stays O(1).
	bytes int
}

func NewTextColumn() *TextColumn {
	return &TextColumn{}
}

func (c *TextColumn) Type() types.TypeDescriptor {
	return types.TextTypeDef{}
}

func (c *TextColumn) Len() int {
	return len(c.data)
}

func (c *TextColumn) ByteSize() int {
	// 16 bytes per element for the string header.
	return c.bytes + 16*len(c.data)
}

func (c *TextColumn) CloneEmpty() Column {
	return NewTextColumn()
}

func (c *TextColumn) Append(v types.Value) error {
	if v.Type() != types.TypeText {
		return typeMismatch(c.Type(), v)
	}
	c.AppendString(types.As[string](v))
	return nil
}

func (c *TextColumn) AppendString(s string) {
	c.data = append(c.data, s)
	c.bytes += len(s)
}

func (c *TextColumn) Get(i int) (types.Value, error) {
	if i < 0 || i >= len(c.data) {
		return nil, outOfRange(i, len(c.data))
	}
	return types.NewTextValue(c.data[i]), nil
}

func (c *TextColumn) AppendColumn(other Column) error {
	o, ok := other.(*TextColumn)
	if !ok {
		return errors.Errorf("cannot append %s column to %s column", other.Type().Name(), c.Type().Name())
	}
	c.data = append(c.data, o.data...)
	c.bytes += o.bytes
	return nil
}

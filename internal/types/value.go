package types

import (
	"strconv"
)

// A Value is an immutable scalar carried by columns and rows.
type Value interface {
	V() any
	Type() Type
	TypeDef() TypeDescriptor
	String() string
}

// As returns the underlying Go value of v, asserted to T.
func As[T any](v Value) T {
	return v.V().(T)
}

var _ Value = NewNullValue()

type NullValue struct{}

// NewNullValue returns a NULL value.
func NewNullValue() NullValue {
	return NullValue{}
}

func (v NullValue) V() any {
	return nil
}

func (v NullValue) Type() Type {
	return TypeNull
}

func (v NullValue) TypeDef() TypeDescriptor {
	return NullTypeDef{}
}

func (v NullValue) String() string {
	return "NULL"
}

var _ Value = NewBooleanValue(false)

type BooleanValue bool

// NewBooleanValue returns a BOOLEAN value.
func NewBooleanValue(x bool) BooleanValue {
	return BooleanValue(x)
}

func (v BooleanValue) V() any {
	return bool(v)
}

func (v BooleanValue) Type() Type {
	return TypeBoolean
}

func (v BooleanValue) TypeDef() TypeDescriptor {
	return BooleanTypeDef{}
}

func (v BooleanValue) String() string {
	return strconv.FormatBool(bool(v))
}

var _ Value = NewBigintValue(0)

type BigintValue int64

// NewBigintValue returns a BIGINT value.
func NewBigintValue(x int64) BigintValue {
	return BigintValue(x)
}

func (v BigintValue) V() any {
	return int64(v)
}

func (v BigintValue) Type() Type {
	return TypeBigint
}

func (v BigintValue) TypeDef() TypeDescriptor {
	return BigintTypeDef{}
}

func (v BigintValue) String() string {
	return strconv.FormatInt(int64(v), 10)
}

var _ Value = NewDoubleValue(0)

type DoubleValue float64

// NewDoubleValue returns a DOUBLE value.
func NewDoubleValue(x float64) DoubleValue {
	return DoubleValue(x)
}

func (v DoubleValue) V() any {
	return float64(v)
}

func (v DoubleValue) Type() Type {
	return TypeDouble
}

func (v DoubleValue) TypeDef() TypeDescriptor {
	return DoubleTypeDef{}
}

func (v DoubleValue) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

var _ Value = NewTextValue("")

type TextValue string

// NewTextValue returns a TEXT value.
func NewTextValue(x string) TextValue {
	return TextValue(x)
}

func (v TextValue) V() any {
	return string(v)
}

func (v TextValue) Type() Type {
	return TypeText
}

func (v TextValue) TypeDef() TypeDescriptor {
	return TextTypeDef{}
}

func (v TextValue) String() string {
	return strconv.Quote(string(v))
}

package types

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrColumnNotFound must be returned by row implementations, when calling the Get method and
	// the column doesn't exist.
	ErrColumnNotFound = errors.New("column not found")
)

// Type represents a logical column type supported by the engine.
type Type uint8

// List of supported types.
const (
	// TypeAny denotes the absence of type
	TypeAny Type = iota
	TypeNull
	TypeBoolean
	TypeBigint
	TypeDouble
	TypeTimestamp
	TypeText
)

func (t Type) Def() TypeDescriptor {
	switch t {
	case TypeNull:
		return NullTypeDef{}
	case TypeBoolean:
		return BooleanTypeDef{}
	case TypeBigint:
		return BigintTypeDef{}
	case TypeDouble:
		return DoubleTypeDef{}
	case TypeTimestamp:
		return TimestampTypeDef{}
	case TypeText:
		return TextTypeDef{}
	}

	return nil
}

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeBigint:
		return "bigint"
	case TypeDouble:
		return "double"
	case TypeTimestamp:
		return "timestamp"
	case TypeText:
		return "text"
	}

	panic(fmt.Sprintf("unsupported type %#v", t))
}

// IsNumber returns true if t is either an integer or a float.
func (t Type) IsNumber() bool {
	return t == TypeBigint || t == TypeDouble
}

// IsAny returns whether this is type is Any or a real type
func (t Type) IsAny() bool {
	return t == TypeAny
}

// A TypeDescriptor identifies a column's logical type. Name returns the
// canonical type name; structural comparisons rely on it being stable and
// never parse it.
type TypeDescriptor interface {
	Type() Type
	Name() string
}

var (
	_ TypeDescriptor = NullTypeDef{}
	_ TypeDescriptor = BooleanTypeDef{}
	_ TypeDescriptor = BigintTypeDef{}
	_ TypeDescriptor = DoubleTypeDef{}
	_ TypeDescriptor = TimestampTypeDef{}
	_ TypeDescriptor = TextTypeDef{}
)

type NullTypeDef struct{}

func (NullTypeDef) Type() Type   { return TypeNull }
func (NullTypeDef) Name() string { return "null" }

type BooleanTypeDef struct{}

func (BooleanTypeDef) Type() Type   { return TypeBoolean }
func (BooleanTypeDef) Name() string { return "boolean" }

type BigintTypeDef struct{}

func (BigintTypeDef) Type() Type   { return TypeBigint }
func (BigintTypeDef) Name() string { return "bigint" }

type DoubleTypeDef struct{}

func (DoubleTypeDef) Type() Type   { return TypeDouble }
func (DoubleTypeDef) Name() string { return "double" }

type TimestampTypeDef struct{}

func (TimestampTypeDef) Type() Type   { return TypeTimestamp }
func (TimestampTypeDef) Name() string { return "timestamp" }

type TextTypeDef struct{}

func (TextTypeDef) Type() Type   { return TypeText }
func (TextTypeDef) Name() string { return "text" }

package row

import (
	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"

	"github.com/vexdb/vex/internal/types"
)

func parseJSONValue(dataType jsonparser.ValueType, data []byte) (types.Value, error) {
	switch dataType {
	case jsonparser.Null:
		return types.NewNullValue(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, err
		}
		return types.NewBooleanValue(b), nil
	case jsonparser.Number:
		i, err := jsonparser.ParseInt(data)
		if err != nil {
			// if it's too big to fit in an int64, let's try parsing this as a floating point number
			f, err := jsonparser.ParseFloat(data)
			if err != nil {
				return nil, err
			}

			return types.NewDoubleValue(f), nil
		}

		return types.NewBigintValue(i), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return types.NewTextValue(s), nil
	default:
		return nil, errors.Errorf("unsupported JSON type: %v", dataType)
	}
}

// FromJSON builds a row from a flat JSON object, preserving the order of
// the object's keys. Nested objects and arrays are rejected.
func FromJSON(data []byte) (*ColumnBuffer, error) {
	var cb ColumnBuffer

	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, offset int) error {
		v, err := parseJSONValue(dataType, value)
		if err != nil {
			return err
		}

		cb.Add(string(key), v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &cb, nil
}

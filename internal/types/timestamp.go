package types

import (
	"math"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dromara/carbon/v2"
)

var (
	epoch   = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC).UnixMicro()
	maxTime = math.MaxInt64 - epoch
	minTime = math.MinInt64 + epoch
)

var _ Value = NewTimestampValue(time.Time{})

type TimestampValue time.Time

// NewTimestampValue returns a TIMESTAMP value, normalized to UTC.
func NewTimestampValue(x time.Time) TimestampValue {
	return TimestampValue(x.UTC())
}

func (v TimestampValue) V() any {
	return time.Time(v)
}

func (v TimestampValue) Type() Type {
	return TypeTimestamp
}

func (v TimestampValue) TypeDef() TypeDescriptor {
	return TimestampTypeDef{}
}

func (v TimestampValue) String() string {
	return strconv.Quote(time.Time(v).Format(time.RFC3339Nano))
}

// AsTime returns the underlying time of a timestamp value.
func AsTime(v Value) time.Time {
	return As[time.Time](v)
}

// ParseTimestamp parses any reasonable textual representation of a
// timestamp and returns it normalized to UTC.
func ParseTimestamp(s string) (time.Time, error) {
	c := carbon.Parse(s, "UTC")
	if c.Error != nil {
		return time.Time{}, errors.New("invalid timestamp")
	}

	ts := c.StdTime()
	m := ts.UnixMicro()
	if m > maxTime || m < minTime {
		return time.Time{}, errors.New("timestamp out of range")
	}

	return ts, nil
}

package crud

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"healthlock/pkg/types"
)

// Value is a typed field value. The concrete variants mirror the schema field
// types.
type Value interface {
	Type() types.FieldType
	String() string
	isValue()
}

type (
	Text     string
	LongText string
	Choice   string
	Number   float64
	Date     time.Time
)

func (Text) Type() types.FieldType     { return types.FieldText }
func (LongText) Type() types.FieldType { return types.FieldTextarea }
func (Choice) Type() types.FieldType   { return types.FieldSelect }
func (Number) Type() types.FieldType   { return types.FieldNumber }
func (Date) Type() types.FieldType     { return types.FieldDate }

func (v Text) String() string     { return string(v) }
func (v LongText) String() string { return string(v) }
func (v Choice) String() string   { return string(v) }
func (v Number) String() string   { return strconv.FormatFloat(float64(v), 'f', -1, 64) }
func (v Date) String() string     { return time.Time(v).Format(time.DateOnly) }

func (Text) isValue()     {}
func (LongText) isValue() {}
func (Choice) isValue()   {}
func (Number) isValue()   {}
func (Date) isValue()     {}

func (v Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// ParseValue converts a raw form string into the variant for field. An
// empty string yields a nil Value.
func ParseValue(field types.Field, raw string) (Value, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	switch field.Type {
	case types.FieldText:
		return Text(raw), nil
	case types.FieldTextarea:
		return LongText(raw), nil
	case types.FieldNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, fmt.Errorf("%s must be a number", field.Label)
		}
		return Number(n), nil
	case types.FieldDate:
		d, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return nil, fmt.Errorf("%s must be a date (YYYY-MM-DD)", field.Label)
		}
		return Date(d), nil
	case types.FieldSelect:
		for _, opt := range field.Options {
			if opt == raw {
				return Choice(raw), nil
			}
		}
		return nil, fmt.Errorf("%s must be one of %s", field.Label, strings.Join(field.Options, ", "))
	}

	return nil, fmt.Errorf("%s has unsupported type %q", field.Label, field.Type)
}

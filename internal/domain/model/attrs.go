package model

import (
	"encoding/json"
	"fmt"
)

// ValueKind enumerates the types an attribute value may carry.
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueNumber
	ValueBool
)

// Value is a tagged attribute value. Only the field matching Kind is
// meaningful.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
}

// StringValue builds a string attribute value.
func StringValue(s string) Value { return Value{Kind: ValueString, Str: s} }

// NumberValue builds a numeric attribute value.
func NumberValue(n float64) Value { return Value{Kind: ValueNumber, Num: n} }

// BoolValue builds a boolean attribute value.
func BoolValue(b bool) Value { return Value{Kind: ValueBool, Bool: b} }

// Attrs is a set of named variant properties (colour, size, material).
type Attrs map[string]Value

// MarshalJSON renders each value as its natural JSON type.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueString:
		return json.Marshal(v.Str)
	case ValueNumber:
		return json.Marshal(v.Num)
	case ValueBool:
		return json.Marshal(v.Bool)
	}
	return nil, fmt.Errorf("unknown value kind %d", v.Kind)
}

// UnmarshalJSON accepts string, number, or boolean JSON values.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case string:
		*v = StringValue(t)
	case float64:
		*v = NumberValue(t)
	case bool:
		*v = BoolValue(t)
	default:
		return fmt.Errorf("unsupported attribute value %T", raw)
	}
	return nil
}

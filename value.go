package jaksel

import "strconv"

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTNil  ValueTag = iota // hampa (no payload)
	VTBool                 // bool
	VTNum                  // float64
	VTStr                  // string
)

// Value is the tagged runtime carrier used by the interpreter. The tag
// determines which Go type Data holds: nil, bool, float64 or string.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Nil is the singleton hampa value.
var Nil = Value{Tag: VTNil}

func Bool(b bool) Value   { return Value{Tag: VTBool, Data: b} }
func Num(f float64) Value { return Value{Tag: VTNum, Data: f} }
func Str(s string) Value  { return Value{Tag: VTStr, Data: s} }

// Truthy maps a value to its boolean meaning in conditional contexts:
// hampa and impossible are falsy, everything else (including 0 and the
// empty string) is truthy.
func (v Value) Truthy() bool {
	switch v.Tag {
	case VTNil:
		return false
	case VTBool:
		return v.Data.(bool)
	default:
		return true
	}
}

// Equal implements ==/!= semantics: no coercion between kinds, hampa equals
// only hampa.
func (v Value) Equal(o Value) bool {
	if v.Tag != o.Tag {
		return false
	}
	switch v.Tag {
	case VTNil:
		return true
	case VTBool:
		return v.Data.(bool) == o.Data.(bool)
	case VTNum:
		return v.Data.(float64) == o.Data.(float64)
	case VTStr:
		return v.Data.(string) == o.Data.(string)
	}
	return false
}

// FormatValue renders the textual representation used by spill and the REPL
// echo. Numbers drop a trailing ".0" (10, not 10.0); booleans and hampa
// render as their source keywords.
func FormatValue(v Value) string {
	switch v.Tag {
	case VTNil:
		return "hampa"
	case VTBool:
		if v.Data.(bool) {
			return "ril"
		}
		return "impossible"
	case VTNum:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case VTStr:
		return v.Data.(string)
	}
	return "<unknown>"
}

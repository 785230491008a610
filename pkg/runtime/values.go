package runtime

import (
	"fmt"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindNil
	KindClosure
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "i32"
	case KindNil:
		return "nothing"
	case KindClosure:
		return "function"
	}
	return "unknown"
}

// Value is the uniform representation lowered code passes through the
// two-slot calling convention and stores in heterogeneous positions.
// Homogeneous collections use Seq[T] directly instead.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

// IntValue carries HiLow's i32.
type IntValue struct {
	Val int32
}

func (v IntValue) Kind() Kind { return KindInt }

// NilValue is HiLow's nothing. It also fills the padding slot of the uniform
// calling convention.
type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

// Display renders a value the way the output channel prints it.
func Display(v Value) string {
	switch val := v.(type) {
	case StringValue:
		return val.Val
	case BoolValue:
		if val.Val {
			return "true"
		}
		return "false"
	case IntValue:
		return strconv.FormatInt(int64(val.Val), 10)
	case NilValue:
		return "nothing"
	case *Closure:
		if val.Name != "" {
			return fmt.Sprintf("<function %s>", val.Name)
		}
		return "<function>"
	case nil:
		return "nothing"
	}
	return fmt.Sprintf("<%s>", v.Kind())
}

// Package programs holds HiLow example programs lowered onto the runtime
// support library. Each entry point is the call sequence the code-generation
// driver emits for the corresponding HiLow source, writing results to the
// single output channel. The exec fixtures under fixtures/exec pin their
// observable output.
package programs

import "hilow/runtime-go/pkg/runtime"

// Program is a lowered entry point.
type Program func(*runtime.Printer)

// Registry maps program names to their lowered entry points.
func Registry() map[string]Program {
	return map[string]Program{
		"closure-demo":     ClosureDemo,
		"defer-validation": DeferValidation,
		"string-showcase":  StringShowcase,
	}
}

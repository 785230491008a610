package programs

import "hilow/runtime-go/pkg/runtime"

// DeferValidation is the lowering of the defer validation program:
// registration order, block scoping, and return-path coverage. The original
// generated code duplicated deferred statements textually, leaving dead
// copies after return; here every deferred action runs through a DeferScope
// wrapped around the block, on every exit path.
func DeferValidation(p *runtime.Printer) {
	deferOrder(p)
	result := deferScopedBlock(p)
	p.Printf("test_defer_scope returned %d\n", result)
	p.Println("=== Defer with Normal Return ===")
	deferWithReturn(p, 5)
	p.Println("=== Defer with Early Return ===")
	deferWithReturn(p, -2)
	p.Println("Phase 7 defer validation complete!")
}

func deferOrder(p *runtime.Printer) {
	scope := runtime.NewDeferScope()
	defer scope.Exit()
	p.Println("=== Defer Execution Order ===")
	scope.Defer(func() { p.Println("deferred: registered first") })
	scope.Defer(func() { p.Println("deferred: registered last") })
	p.Println("Step 1: body statement")
}

func deferScopedBlock(p *runtime.Printer) int32 {
	p.Println("=== Defer Scope Test ===")
	var x int32
	{
		inner := runtime.NewDeferScope()
		p.Println("Inside inner block")
		inner.Defer(func() { x = x + 1 })
		x = x + 10
		inner.Exit()
	}
	p.Printf("After inner block: x=%d\n", x)
	scope := runtime.NewDeferScope()
	defer scope.Exit()
	// Runs after the return value is captured; the caller sees x as it was.
	scope.Defer(func() { x = x + 100 })
	return x
}

func deferWithReturn(p *runtime.Printer, val int32) int32 {
	scope := runtime.NewDeferScope()
	defer scope.Exit()
	scope.Defer(func() { p.Println("Defer executed") })
	if val < 0 {
		p.Println("Early return path")
		return -1
	}
	p.Println("Normal return path")
	return val
}

package programs

import "hilow/runtime-go/pkg/runtime"

// StringShowcase is the lowering of the feature showcase program: string
// helpers, split/join, the functional sequence operations, closures, and a
// deferred cleanup block.
func StringShowcase(p *runtime.Printer) {
	p.Println("========================================")
	p.Println("   HiLow Ultimate Feature Showcase")
	p.Println("========================================")

	p.Println("1. STRING METHODS")
	text := "  hello world  "
	clean := runtime.ToUpper(runtime.Trim(text))
	p.Printf("Transformed: '%s'\n", clean)
	words := runtime.Split(clean, " ")
	back := runtime.Join(words, "-")
	p.Printf("Split/Join: '%s'\n", back)

	p.Println("2. DYNAMIC ARRAYS")
	nums := runtime.NewSeq[int32]()
	nums.Push(10)
	nums.Push(20)
	nums.Push(30)
	p.Printf("Array length: %d\n", nums.Len())

	p.Println("3. FUNCTIONAL PROGRAMMING")
	squares := nums.Map(func(x int32) int32 { return x * x })
	p.Println("Squared values:")
	squares.ForEach(func(v int32) { p.Printf("  %d\n", v) })

	p.Println("4. CLOSURES WITH CAPTURE")
	env := runtime.NewEnvironment(nil)
	env.Define("multiplier", runtime.IntValue{Val: 3})
	scale := runtime.NewClosure("scale", func(env *runtime.Environment, arg, _ runtime.Value) runtime.Value {
		x := arg.(runtime.IntValue)
		m, _ := env.Get("multiplier")
		return runtime.IntValue{Val: x.Val * m.(runtime.IntValue).Val}
	}, env)
	scaled := scale.Invoke(runtime.IntValue{Val: 7}).(runtime.IntValue)
	p.Printf("scale(7) with multiplier=3: %d\n", scaled.Val)

	p.Println("5. DEFER STATEMENT")
	func() {
		scope := runtime.NewDeferScope()
		defer scope.Exit()
		scope.Defer(func() { p.Println("  Deferred cleanup executed!") })
		p.Println("  Inside block")
	}()

	p.Println("6. FILTER AND REDUCE")
	values := runtime.SeqOf[int32](-1, 2, -3, 4)
	positives := values.Filter(func(x int32) bool { return x > 0 })
	total := positives.Reduce(0, func(acc, x int32) int32 { return acc + x })
	p.Printf("Sum of positives: %d\n", total)

	p.Println("7. STACK OPERATIONS")
	stack := runtime.SeqOf[int32](1, 2, 3)
	stack.Reverse()
	if top, err := stack.Pop(); err == nil {
		p.Printf("Popped after reverse: %d\n", top)
	}
	p.Printf("Remaining length: %d\n", stack.Len())

	p.Println("========================================")
	p.Println("   All HiLow Features Demonstrated!")
	p.Println("========================================")
}

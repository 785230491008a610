package programs

import "hilow/runtime-go/pkg/runtime"

// ClosureDemo is the lowering of:
//
//	let multiplier: i32 = 10;
//	let scale: function = function(x: i32): i32 { return x * multiplier; };
//	print(f"Result: {scale(5)}");
//	multiplier = 3;
//	print(f"Result after rebind: {scale(5)}");
//
// scale captures multiplier by reference, so the second call observes the
// rebinding performed after the closure was created.
func ClosureDemo(p *runtime.Printer) {
	env := runtime.NewEnvironment(nil)
	env.Define("multiplier", runtime.IntValue{Val: 10})

	scale := runtime.NewClosure("scale", func(env *runtime.Environment, arg, _ runtime.Value) runtime.Value {
		x := arg.(runtime.IntValue)
		multiplier, _ := env.Get("multiplier")
		return runtime.IntValue{Val: x.Val * multiplier.(runtime.IntValue).Val}
	}, env)

	result := scale.Invoke(runtime.IntValue{Val: 5}).(runtime.IntValue)
	p.Printf("Result: %d\n", result.Val)

	env.Set("multiplier", runtime.IntValue{Val: 3})
	rebound := scale.Invoke(runtime.IntValue{Val: 5}).(runtime.IntValue)
	p.Printf("Result after rebind: %d\n", rebound.Val)
}

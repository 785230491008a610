package runtime

import "testing"

func TestClosureObservesCurrentCapturedValue(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("m", IntValue{Val: 3})

	read := NewClosure("read", func(env *Environment, _, _ Value) Value {
		v, ok := env.Get("m")
		if !ok {
			t.Fatal("captured variable not resolvable")
		}
		return v
	}, env)

	env.Set("m", IntValue{Val: 10})
	got := read.Invoke(NilValue{})
	if got.(IntValue).Val != 10 {
		t.Fatalf("expected closure to observe m == 10 at call time, got %d", got.(IntValue).Val)
	}
}

func TestClosureMutationVisibleToEnclosingScope(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("count", IntValue{Val: 0})

	bump := NewClosure("bump", func(env *Environment, _, _ Value) Value {
		current, _ := env.Get("count")
		next := IntValue{Val: current.(IntValue).Val + 1}
		env.Set("count", next)
		return next
	}, env)

	bump.Invoke(NilValue{})
	bump.Invoke(NilValue{})
	got, _ := env.Get("count")
	if got.(IntValue).Val != 2 {
		t.Fatalf("expected enclosing scope to observe count == 2, got %d", got.(IntValue).Val)
	}
}

func TestClosureUniformArity(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("multiplier", IntValue{Val: 10})

	scale := NewClosure("scale", func(env *Environment, arg, _ Value) Value {
		m, _ := env.Get("multiplier")
		return IntValue{Val: arg.(IntValue).Val * m.(IntValue).Val}
	}, env)

	if got := scale.Invoke(IntValue{Val: 5}); got.(IntValue).Val != 50 {
		t.Fatalf("expected 50, got %d", got.(IntValue).Val)
	}

	add := NewClosure("add", func(_ *Environment, a, b Value) Value {
		return IntValue{Val: a.(IntValue).Val + b.(IntValue).Val}
	}, env)
	if got := add.Invoke2(IntValue{Val: 2}, IntValue{Val: 3}); got.(IntValue).Val != 5 {
		t.Fatalf("expected 5, got %d", got.(IntValue).Val)
	}
}

func TestClosureOutlivesDefiningScope(t *testing.T) {
	makeCounter := func() *Closure {
		scope := NewEnvironment(nil)
		scope.Define("n", IntValue{Val: 0})
		return NewClosure("counter", func(env *Environment, _, _ Value) Value {
			current, _ := env.Get("n")
			next := IntValue{Val: current.(IntValue).Val + 1}
			env.Set("n", next)
			return next
		}, scope)
	}

	counter := makeCounter()
	counter.Invoke(NilValue{})
	counter.Invoke(NilValue{})
	got := counter.Invoke(NilValue{})
	if got.(IntValue).Val != 3 {
		t.Fatalf("expected escaped closure to keep its cell alive, got %d", got.(IntValue).Val)
	}
}

func TestEnvironmentBindSharesCell(t *testing.T) {
	outer := NewEnvironment(nil)
	cell := outer.Define("shared", StringValue{Val: "before"})

	capture := NewEnvironment(nil)
	capture.Bind("shared", cell)

	capture.Set("shared", StringValue{Val: "after"})
	got, _ := outer.Get("shared")
	if got.(StringValue).Val != "after" {
		t.Fatalf("expected bound cell write to be shared, got %q", got.(StringValue).Val)
	}
}

func TestEnvironmentResolutionOrder(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", IntValue{Val: 1})
	inner := outer.Child()
	inner.Define("x", IntValue{Val: 2})

	got, _ := inner.Get("x")
	if got.(IntValue).Val != 2 {
		t.Fatalf("expected innermost definition to shadow, got %d", got.(IntValue).Val)
	}
	if _, ok := inner.Get("missing"); ok {
		t.Fatal("expected unresolved name to report false")
	}
	if ok := inner.Set("missing", NilValue{}); ok {
		t.Fatal("expected Set on unresolved name to report false")
	}
}

package runtime

// DeferScope collects the cleanup actions a lexical block registers, in
// program order. The lowering allocates one scope per block that contains
// defer statements and pairs it with `defer scope.Exit()`, so the actions
// run on every path out of the block: fall-through, early return, and panic
// unwind alike. Actions whose registration point execution never reached are
// never registered and therefore never run.
type DeferScope struct {
	actions []func()
	exited  bool
}

func NewDeferScope() *DeferScope {
	return &DeferScope{}
}

// Defer registers action. Registered actions execute in reverse registration
// order when the scope exits.
func (s *DeferScope) Defer(action func()) {
	if action == nil {
		return
	}
	s.actions = append(s.actions, action)
}

// Exit runs the registered actions last-in-first-out, exactly once; later
// calls are no-ops. A panicking action does not stop the actions registered
// before it, and its panic resumes once they finish.
func (s *DeferScope) Exit() {
	if s.exited {
		return
	}
	s.exited = true
	actions := s.actions
	s.actions = nil
	runDeferred(actions)
}

func runDeferred(actions []func()) {
	if len(actions) == 0 {
		return
	}
	last := len(actions) - 1
	defer runDeferred(actions[:last])
	actions[last]()
}

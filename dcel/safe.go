package dcel

// Recover runs fn and, if fn panics with a TopologyError, returns it as an
// ordinary error instead of letting the panic propagate. Any other panic
// value is re-panicked unchanged: only topology contract violations are
// meant to be recoverable this way, per spec §7. Callers who'd rather not
// reason about panic/recover themselves can wrap a mutating call:
//
//	err := dcel.Recover(func() { d.AddEdge(0, 0, 1, 1) })
func Recover(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if te, ok := r.(TopologyError); ok {
				err = te
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

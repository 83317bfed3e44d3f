package engine

import "sync/atomic"

var crashHandler atomic.Pointer[func(any)]

// SetCrashHandler installs the handler invoked when a goroutine started by Go panics
// Hosts use it to restore the terminal before printing the stack; keeps engine independent of the UI
func SetCrashHandler(fn func(any)) {
	if fn == nil {
		crashHandler.Store(nil)
		return
	}
	crashHandler.Store(&fn)
}

// Go runs fn in a new goroutine with panic recovery
// Without a handler the panic is re-raised
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if h := crashHandler.Load(); h != nil {
					(*h)(r)
					return
				}
				panic(r)
			}
		}()
		fn()
	}()
}

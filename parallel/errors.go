package parallel

import "fmt"

// WorkerFault wraps a panic recovered from inside a worker goroutine. The
// engine makes no attempt to retry; Run returns the fault as soon as all
// workers for the current iteration have been joined.
type WorkerFault struct {
	Worker int
	Cause  any
}

func (f *WorkerFault) Error() string {
	return fmt.Sprintf("parallel: worker %d panicked: %v", f.Worker, f.Cause)
}

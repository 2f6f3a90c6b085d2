package command

import "context"

// PreExec is a function that may run before execution of a [Command].
type PreExec func(ctx context.Context, cmd *Command) error

// AddPreExec registers a function that will be executed right before any matched [Command] runs.
// If an error is returned from a [PreExec], then the [Command] will not be executed, and the error will be returned from Run instead.
// Note that no [PreExec] functions will be executed when help is shown.
//
// Passing a nil [PreExec] function to this method will panic.
func (r *Runner) AddPreExec(fn PreExec) {
	if fn == nil {
		panic("nil pre-exec function")
	}
	r.preExecMux.Lock()
	defer r.preExecMux.Unlock()
	r.preExec = append(r.preExec, fn)
}

func (r *Runner) runPreExec(ctx context.Context, cmd *Command) error {
	r.preExecMux.Lock()
	defer r.preExecMux.Unlock()
	for _, fn := range r.preExec {
		err := fn(ctx, cmd)
		if err != nil {
			return err
		}
	}
	return nil
}

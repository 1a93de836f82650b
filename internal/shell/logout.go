package shell

// LogoutFlow asks the user to confirm ending the session. Confirm calls
// resolve exactly once with the answer; it may do so before returning or
// later from the event loop. Any dismissal counts as false.
type LogoutFlow interface {
	Confirm(resolve func(accepted bool))
}

// ConfirmFunc adapts a synchronous yes/no question to LogoutFlow.
type ConfirmFunc func() bool

// Confirm asks f and resolves with its answer.
func (f ConfirmFunc) Confirm(resolve func(accepted bool)) {
	resolve(f())
}

// AlwaysConfirm accepts every logout without asking.
var AlwaysConfirm = ConfirmFunc(func() bool { return true })

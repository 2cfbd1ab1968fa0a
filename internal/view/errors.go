package view

import "errors"

var (
	ErrNotInView    = errors.New("row is not in this view")
	ErrBusy         = errors.New("another action is still in progress")
	ErrUnknownStore = errors.New("no tenant has that store name")
)

// mutate runs one store call against the row id with its modal open and
// the list and row claimed. The list is only patched after call succeeds; on
// failure the modal stays open and the rows are untouched.
func mutate[T any](l *List[T], id uint, call func() error, onSuccess func()) error {
	if !l.Select(id) {
		return ErrNotInView
	}
	release, ok := l.claim(id)
	if !ok {
		return ErrBusy
	}
	defer release()

	if err := call(); err != nil {
		return err
	}
	if onSuccess != nil {
		onSuccess()
	}
	l.Close()
	return nil
}

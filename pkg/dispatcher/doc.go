// Package dispatcher routes free-text commands to registered handlers.
//
// A Dispatcher owns a directory.Store and an ordered list of handlers. For
// each command it asks the handlers, in registration order, whether the text
// matches; the first match extracts its arguments and runs against the store.
// Text that matches nothing yields an ErrNoMatchingHandler error, which is
// distinct from a handler that matched but failed.
//
// Registration order is significant whenever two patterns can match the same
// text.
package dispatcher

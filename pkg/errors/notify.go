package errors

import (
	"fmt"
	"os"
	"sync"
)

// Notifier receives user-facing error notifications. Lookup failures are
// surfaced through the notifier before the error is returned, so that
// programmer-error-class failures are loud during development rather than
// silently swallowed by a forgotten error check.
type Notifier interface {
	// Notify presents a message to the user.
	Notify(message string)
}

var (
	// defaultNotifier is the global notification sink.
	// It defaults to LogNotifier.
	defaultNotifier Notifier = &LogNotifier{}

	notifierMu sync.RWMutex
)

// SetNotifier configures the global notification sink.
// Pass nil to restore the default LogNotifier.
func SetNotifier(n Notifier) {
	notifierMu.Lock()
	defer notifierMu.Unlock()
	if n == nil {
		defaultNotifier = &LogNotifier{}
	} else {
		defaultNotifier = n
	}
}

// getNotifier returns the current notification sink.
func getNotifier() Notifier {
	notifierMu.RLock()
	defer notifierMu.RUnlock()
	return defaultNotifier
}

// Notify sends a message to the global notification sink.
func Notify(message string) {
	if message == "" {
		return
	}
	if n := getNotifier(); n != nil {
		n.Notify(message)
	}
}

// NotifyError sends err's message to the global notification sink.
func NotifyError(err error) {
	if err == nil {
		return
	}
	Notify(err.Error())
}

// LogNotifier is a Notifier that writes messages to stderr.
type LogNotifier struct{}

// Notify writes the message to stderr.
func (*LogNotifier) Notify(message string) {
	fmt.Fprintf(os.Stderr, "[facet error] %s\n", message)
}

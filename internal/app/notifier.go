// internal/app/notifier.go
package app

// Notifier delivers one rendered status line to the subscriber chat.
// Implementations log transport causes themselves and surface an error
// whose text does not vary with the cause.
type Notifier interface {
	Send(message string) error
}

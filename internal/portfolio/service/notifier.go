package service

import "context"

// Notifier receives the success message published after every mutation.
// The web layer stores it as a flash notice; tests plug in a recorder.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// NopNotifier drops every message.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, string) {}

package admin

import (
	"log"
	"sync"
)

type Kind int

const (
	KindSuccess Kind = iota
	KindError
)

func (k Kind) String() string {
	if k == KindError {
		return "error"
	}
	return "success"
}

type Notification struct {
	Kind    Kind
	Message string
}

// Notifier surfaces user-facing messages, the terminal equivalent of a toast.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Recorder keeps notifications in memory for a status line to render.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Success(msg string) { r.add(KindSuccess, msg) }
func (r *Recorder) Error(msg string)   { r.add(KindError, msg) }

func (r *Recorder) add(kind Kind, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, Notification{Kind: kind, Message: msg})
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.items...)
}

type LogNotifier struct {
	Logger *log.Logger
}

func (n LogNotifier) Success(msg string) { n.logger().Printf("[success] %s", msg) }
func (n LogNotifier) Error(msg string)   { n.logger().Printf("[error] %s", msg) }

func (n LogNotifier) logger() *log.Logger {
	if n.Logger == nil {
		return log.Default()
	}
	return n.Logger
}

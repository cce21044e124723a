// Package notify is the fire-and-forget notification collaborator. The
// core never depends on delivery succeeding.
package notify

import "helpboard/pkg/logger"

// Kind classifies a notification for the presentation layer.
type Kind string

const (
	Info    Kind = "info"
	Success Kind = "success"
	Error   Kind = "error"
)

// Sink receives user-visible notifications.
type Sink interface {
	Notify(kind Kind, title, detail string)
}

// LogSink writes notifications to the application log. It stands in for
// a real toast mechanism when the core runs headless.
type LogSink struct{}

func (LogSink) Notify(kind Kind, title, detail string) {
	logger.Log.Info("notify", "kind", string(kind), "title", title, "detail", detail)
}

// Event is one recorded notification.
type Event struct {
	Kind   Kind
	Title  string
	Detail string
}

// Recorder captures notifications for tests.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Notify(kind Kind, title, detail string) {
	r.Events = append(r.Events, Event{Kind: kind, Title: title, Detail: detail})
}

// Last returns the most recent event, or a zero Event when none exist.
func (r *Recorder) Last() Event {
	if len(r.Events) == 0 {
		return Event{}
	}
	return r.Events[len(r.Events)-1]
}

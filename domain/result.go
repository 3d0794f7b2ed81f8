package domain

type ErrorKind string

const (
	KindValidation              ErrorKind = "validation"
	KindCollaboratorUnavailable ErrorKind = "collaborator_unavailable"
	KindUnexpectedFault         ErrorKind = "unexpected_fault"
)

// Result is the outcome of one handled client event.
// It is turned into a wire response at the dispatch boundary:
// a success with an Event is emitted as-is, a failure becomes a recall_error.
type Result struct {
	OK        bool
	SessionID string
	Event     string
	Payload   any
	Kind      ErrorKind
	Message   string
}

// Ack is a success with nothing to send back.
func Ack() Result {
	return Result{OK: true}
}

func Reply(sessionID, event string, payload any) Result {
	return Result{OK: true, SessionID: sessionID, Event: event, Payload: payload}
}

func Failure(kind ErrorKind, sessionID, message string) Result {
	return Result{Kind: kind, SessionID: sessionID, Message: message}
}

func (r Result) HasReply() bool {
	return r.OK && r.Event != ""
}

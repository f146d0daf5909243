package service

// ErrorCode classifies service failures for callers that branch on them.
type ErrorCode string

const (
	// ErrGateClosed means the eligibility/sector gates block the
	// questionnaire; the gate must be passed or explicitly acknowledged.
	ErrGateClosed ErrorCode = "GATE_CLOSED"
	// ErrUnknownConcept means the (dimension, concept) pair is not in the
	// question bank.
	ErrUnknownConcept ErrorCode = "UNKNOWN_CONCEPT"
	// ErrInvalidLevel means a level outside the 1-5 range was supplied.
	ErrInvalidLevel ErrorCode = "INVALID_LEVEL"
)

// Error is a typed service error.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

package leadform

// OutcomeKind tags which variant of Outcome is active.
type OutcomeKind int

const (
	OutcomeAccepted OutcomeKind = iota + 1
	OutcomeRejected
	OutcomeTransportFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	case OutcomeTransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// Outcome is the result of one submission attempt. Exactly one kind is set;
// Errors and Message are only meaningful for Rejected, Reason only for
// TransportFailure.
type Outcome struct {
	Kind    OutcomeKind
	Errors  FieldErrors
	Message string
	Reason  string
}

func Accepted() Outcome {
	return Outcome{Kind: OutcomeAccepted}
}

// Rejected builds a rejection carrying field errors, a message, or both.
func Rejected(msg string, errs FieldErrors) Outcome {
	return Outcome{Kind: OutcomeRejected, Message: msg, Errors: errs}
}

func TransportFailure(reason string) Outcome {
	return Outcome{Kind: OutcomeTransportFailure, Reason: reason}
}

func (o Outcome) IsAccepted() bool { return o.Kind == OutcomeAccepted }

package order

// Status represents the lifecycle state of an order
type Status string

const (
	StatusPending         Status = "pending"
	StatusOrdered         Status = "ordered"
	StatusDelivered       Status = "delivered"
	StatusRejected        Status = "rejected"
	StatusCancelled       Status = "cancelled"
	StatusReturnRequested Status = "return_requested"
	StatusReturned        Status = "returned"
)

// legalTransitions is the complete legality table. Transitions are monotonic;
// no state is ever revisited.
var legalTransitions = map[Status][]Status{
	StatusPending:         {StatusOrdered, StatusRejected},
	StatusOrdered:         {StatusDelivered, StatusCancelled},
	StatusDelivered:       {StatusReturnRequested},
	StatusReturnRequested: {StatusReturned},
	StatusRejected:        {},
	StatusCancelled:       {},
	StatusReturned:        {},
}

// IsValid checks if the status is a known Status
func (s Status) IsValid() bool {
	_, ok := legalTransitions[s]
	return ok
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range legalTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// LegalNextStatuses returns the statuses reachable from this one. Used to
// build actionable transition errors.
func (s Status) LegalNextStatuses() []Status {
	next := legalTransitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// IsTerminal reports whether the status has no outbound transitions
func (s Status) IsTerminal() bool {
	return len(legalTransitions[s]) == 0
}

// CountsAgainstBudget reports whether an order in this status is included in
// the employee's spend sum
func (s Status) CountsAgainstBudget() bool {
	return s == StatusPending || s == StatusOrdered || s == StatusDelivered
}

package loan

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusActive    Status = "active"
	StatusPaid      Status = "paid"
	StatusDefaulted Status = "defaulted"
)

var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved},
	StatusApproved: {StatusActive, StatusDefaulted},
	StatusActive:   {StatusPaid, StatusDefaulted},
}

func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusPending, StatusApproved, StatusActive, StatusPaid, StatusDefaulted:
		return st, true
	}
	return "", false
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Accruing reports whether interest accrues in this status.
func (s Status) Accruing() bool { return s == StatusApproved || s == StatusActive }

package submission

// Status represents the lifecycle stage of a submission.
type Status string

const (
	StatusReceived     Status = "received"
	StatusInProduction Status = "in-production"
	StatusDelivered    Status = "delivered"
)

var allStatuses = []Status{
	StatusReceived,
	StatusInProduction,
	StatusDelivered,
}

// Statuses returns the enumerated statuses in workflow order.
func Statuses() []Status {
	return allStatuses
}

// ValidStatus reports whether the value is one of the enumerated statuses.
func ValidStatus(status Status) bool {
	switch status {
	case StatusReceived, StatusInProduction, StatusDelivered:
		return true
	}
	return false
}

// nextStatus maps each status to the single legal successor. delivered is
// terminal and has no entry.
var nextStatus = map[Status]Status{
	StatusReceived:     StatusInProduction,
	StatusInProduction: StatusDelivered,
}

// ValidateTransition checks a requested status transition. Only adjacent
// forward moves along received → in-production → delivered are legal; skipping,
// reverting and re-entering a status are all rejected.
func ValidateTransition(from, to Status) error {
	if !ValidStatus(to) {
		return ErrInvalidStatus
	}
	if next, ok := nextStatus[from]; !ok || next != to {
		return ErrIllegalTransition
	}
	return nil
}

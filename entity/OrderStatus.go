package entity

// Order lifecycle: pending → preparing → ready → delivered,
// cancelled reachable from any non-terminal state.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

func OrderStatuses() []string {
	return []string{StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled}
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func TerminalStatus(s string) bool {
	return s == StatusDelivered || s == StatusCancelled
}

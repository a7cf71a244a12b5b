package models

// RequestStatus is the shared status vocabulary of both request state
// machines. Requests are created as pending; only accepted and rejected
// are settable targets afterwards.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusAccepted RequestStatus = "accepted"
	StatusRejected RequestStatus = "rejected"
)

// IsValid reports whether the status belongs to the closed status set.
func (s RequestStatus) IsValid() bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}

// IsSettable reports whether the status is a valid transition target.
// pending is only ever the initial value, never a target.
func (s RequestStatus) IsSettable() bool {
	return s == StatusAccepted || s == StatusRejected
}

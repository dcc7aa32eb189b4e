package store

const (
	ActivityStatusEnrolled  = "Enrolled"
	ActivityStatusCompleted = "Completed"
)

// ActivityStatus is one enroll/complete transition event. The store counts
// rows; it does not keep a single mutable current-state field, so an owner may
// accumulate multiple Enrolled and Completed rows over time.
type ActivityStatus struct {
	ID        int32
	OwnerID   int32
	Activity  string
	Status    string
	Day       string
	CreatedTs int64
}

type FindActivityStatus struct {
	OwnerID  *int32
	Activity *string
	Status   *string
}

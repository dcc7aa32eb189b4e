package store

// ReviewEvent is one submitted review. Only the per-owner count feeds the
// insights dashboard.
type ReviewEvent struct {
	ID        int32
	OwnerID   int32
	Comment   string
	CreatedTs int64
}

type FindReviewEvent struct {
	OwnerID *int32
}

package store

// WaterEntry is one logged water intake record. The intake volume is kept in
// its stored string representation; callers coerce it to an integer so that a
// malformed value surfaces as a data error instead of being silently zeroed.
type WaterEntry struct {
	ID      int32
	OwnerID int32
	// Intake is an integer-convertible string, in millilitres.
	Intake string
	// CreatedTs is the UTC unix timestamp of the record. The calendar day is
	// derived from it in UTC.
	CreatedTs int64
}

type FindWaterEntry struct {
	OwnerID      *int32
	CreatedTsGTE *int64
	CreatedTsLT  *int64
}

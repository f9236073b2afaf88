package l3periodic

// Run is a periodic subsequence of one shape's timestamps.
type Run struct {
	ShapeIndex int     // index of the originating shape; -1 when unknown
	Interval   int64   // step between consecutive timestamps
	Timestamps []int64 // strictly increasing, constant step
}

// First returns the earliest timestamp.
func (r Run) First() int64 { return r.Timestamps[0] }

// Last returns the latest timestamp.
func (r Run) Last() int64 { return r.Timestamps[len(r.Timestamps)-1] }

// Len returns the number of timestamps in the run.
func (r Run) Len() int { return len(r.Timestamps) }

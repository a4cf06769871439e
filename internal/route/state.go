package route

// SegmentState is the lifecycle of a single leg. Created as ESTIMATED,
// a segment moves forward only: truck assignment, departure, arrival.
type SegmentState string

const (
	SegmentStateEstimated  SegmentState = "ESTIMATED"
	SegmentStateAssigned   SegmentState = "ASSIGNED"
	SegmentStateInProgress SegmentState = "IN_PROGRESS"
	SegmentStateFinished   SegmentState = "FINISHED"
)

// ASSIGNED -> ASSIGNED covers truck re-assignment: the capacity check runs
// again and the previous truck is overwritten (last write wins).
var allowedTransitions = map[SegmentState][]SegmentState{
	SegmentStateEstimated:  {SegmentStateAssigned},
	SegmentStateAssigned:   {SegmentStateAssigned, SegmentStateInProgress},
	SegmentStateInProgress: {SegmentStateFinished},
	SegmentStateFinished:   {},
}

func CanTransition(from, to SegmentState) bool {
	allowed, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	for _, state := range allowed {
		if state == to {
			return true
		}
	}
	return false
}

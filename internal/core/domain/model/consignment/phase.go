package consignment

// Phase names the three hub stages a grouping document can hold a
// consignment in. A consignment is held by at most one document per phase.
type Phase int

const (
	PhaseArrival Phase = iota + 1
	PhaseManifest
	PhaseDelivery
)

func (p Phase) String() string {
	switch p {
	case PhaseArrival:
		return "arrival"
	case PhaseManifest:
		return "manifest"
	case PhaseDelivery:
		return "delivery"
	default:
		return "unknown"
	}
}

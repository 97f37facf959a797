package internal

// The ledger records which stage claimed each graph edge. It is created per
// run and handed from the circle stage to the polygon stage, so concurrent
// runs never share ownership state. A claim is final for the run.
type EdgeLedger struct {
	owners map[Segment]string
}

func NewEdgeLedger() *EdgeLedger {
	return &EdgeLedger{owners: make(map[Segment]string)}
}

func (l *EdgeLedger) Claimed(edge Segment) bool {
	_, ok := l.owners[edge]
	return ok
}

func (l *EdgeLedger) Owner(edge Segment) string {
	return l.owners[edge]
}

func (l *EdgeLedger) AnyClaimed(edges []Segment) bool {
	for _, edge := range edges {
		if l.Claimed(edge) {
			return true
		}
	}
	return false
}

// Claim every edge for owner. Claiming an edge twice is a bug in the caller.
func (l *EdgeLedger) Claim(edges []Segment, owner string) {
	for _, edge := range edges {
		if previous, ok := l.owners[edge]; ok {
			fatalf("edge %v claimed by %s is already owned by %s", edge, owner, previous)
		}
	}
	for _, edge := range edges {
		l.owners[edge] = owner
	}
}

func (l *EdgeLedger) Len() int {
	return len(l.owners)
}

package searcher

import "math"

// uct scores the children of one parent. ln(N) is shared by all siblings, so
// c^2*ln(N) is computed once per selection.
type uct struct {
	exploration float64
}

func newUCT(c float64, parentVisits int) uct {
	if parentVisits == 0 {
		panic("parent has no visits")
	}
	return uct{exploration: c * c * math.Log(float64(parentVisits))}
}

// score is wins/n + c*sqrt(ln(N)/n), written as wins/n + sqrt(c^2*ln(N)/n).
func (u uct) score(child *Node) float64 {
	if child.visits == 0 {
		panic("child has no visits")
	}
	n := float64(child.visits)
	return child.wins/n + math.Sqrt(u.exploration/n)
}

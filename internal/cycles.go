package internal

import (
	"sort"
	"strconv"
	"strings"
)

// Enumeration of the simple cycles of a segment graph. The search is a
// depth-first walk from every node with backtracking, which is exponential in
// the worst case but cheap on simplified drawings, where vertex degree is
// almost always 2 or 3.

type CycleResult struct {
	Cycles []Cycle
	// Edges that are not a consecutive pair of any retained cycle, in graph
	// edge order.
	OpenEdges []Segment
	// Set when enumeration stopped at the cycle limit.
	Truncated bool
}

type dfsFrame struct {
	node Point
	next int // index of the next neighbor to try
}

func DetectCycles(g *SegmentGraph, maxCycles int) *CycleResult {
	result := &CycleResult{}
	nodes := g.Nodes()
	rank := make(map[Point]int, len(nodes))
	for i, p := range nodes {
		rank[p] = i
	}

	seen := make(map[string]struct{})
	record := func(path PointStack) bool {
		cycle := append(Cycle(nil), path...)
		key := cycleKey(cycle)
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
		result.Cycles = append(result.Cycles, cycle)
		return len(result.Cycles) < maxCycles
	}

search:
	for startRank, start := range nodes {
		// Each cycle is found from its lowest ranked vertex, so the walk never
		// enters nodes ranked at or below the start. The exploration is an
		// explicit stack rather than recursion, so long paths cannot exhaust
		// the goroutine stack.
		path := PointStack{start}
		onPath := PointSet{start: {}}
		frames := []dfsFrame{{node: start}}

		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			neighbors := g.Neighbors(top.node)
			if top.next >= len(neighbors) {
				frames = frames[:len(frames)-1]
				node, _ := path.Pop()
				delete(onPath, node)
				continue
			}

			neighbor := neighbors[top.next]
			top.next++

			if neighbor == start {
				if len(path) > 2 && !record(path) {
					result.Truncated = true
					break search
				}
				continue
			}
			if rank[neighbor] <= startRank || onPath.Contains(neighbor) {
				continue
			}
			path.Push(neighbor)
			onPath.Add(neighbor)
			frames = append(frames, dfsFrame{node: neighbor})
		}
	}

	cycleEdges := make(SegmentSet)
	for _, cycle := range result.Cycles {
		for _, edge := range cycle.Edges() {
			cycleEdges.Add(edge)
		}
	}
	for _, edge := range g.Edges {
		if !cycleEdges.Contains(edge) {
			result.OpenEdges = append(result.OpenEdges, edge)
		}
	}
	return result
}

// Two cycles are duplicates when they visit the same set of vertices,
// regardless of order or direction.
func cycleKey(c Cycle) string {
	sorted := append([]Point(nil), c...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
	var b strings.Builder
	for _, p := range sorted {
		b.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
		b.WriteByte(';')
	}
	return b.String()
}

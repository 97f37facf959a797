package internal

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Undirected adjacency over reconciled segment endpoints. Parallel segments
// (several sources reconciled onto the same endpoints) collapse to a single
// edge; the inverse map still remembers every source.
type SegmentGraph struct {
	adjacency map[Point][]Point
	nodes     []Point
	// Distinct edges in the order they were first seen.
	Edges []Segment
}

func NewSegmentGraph(segments []SimplifiedSegment) *SegmentGraph {
	g := &SegmentGraph{adjacency: make(map[Point][]Point)}
	seen := make(SegmentSet)
	for _, s := range segments {
		edge := s.Segment
		if edge.IsDegenerate() || seen.Contains(edge) {
			continue
		}
		seen.Add(edge)
		g.Edges = append(g.Edges, edge)
		g.adjacency[edge.A] = append(g.adjacency[edge.A], edge.B)
		g.adjacency[edge.B] = append(g.adjacency[edge.B], edge.A)
	}

	for node, neighbors := range g.adjacency {
		sort.Slice(neighbors, func(i, j int) bool { return neighbors[i].Before(neighbors[j]) })
		g.nodes = append(g.nodes, node)
	}
	sort.Slice(g.nodes, func(i, j int) bool { return g.nodes[i].Before(g.nodes[j]) })
	return g
}

// Nodes in lexicographic order.
func (g *SegmentGraph) Nodes() []Point {
	return g.nodes
}

// Neighbors in lexicographic order.
func (g *SegmentGraph) Neighbors(p Point) []Point {
	return g.adjacency[p]
}

func (g *SegmentGraph) Degree(p Point) int {
	return len(g.adjacency[p])
}

// Connected components over nodes 0..n-1 joined by pairs. Every node is
// labeled with the lowest node of its component.
func components(n int, pairs [][2]int) []int {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for _, pair := range pairs {
		if pair[0] != pair[1] {
			g.SetEdge(simple.Edge{F: simple.Node(pair[0]), T: simple.Node(pair[1])})
		}
	}

	label := make([]int, n)
	for _, nodes := range topo.ConnectedComponents(g) {
		lowest := n
		for _, node := range nodes {
			if id := int(node.ID()); id < lowest {
				lowest = id
			}
		}
		for _, node := range nodes {
			label[node.ID()] = lowest
		}
	}
	return label
}

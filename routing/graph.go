package routing

// Node kinds and interior connection kinds.
const (
	KindBuilding     = "building"
	KindIntersection = "intersection"
	KindRoom         = "room"
	KindVertical     = "vertical_connection"

	ConnHallway  = "hallway"
	ConnStairs   = "stairs"
	ConnElevator = "elevator"
)

// Node is a vertex of either graph tier. Coordinates are [lat, lon] degrees
// for the outdoor tier and planar [x, y] floor units for the interior tier.
type Node struct {
	ID          string
	Name        string
	Kind        string
	Coordinates [2]float64
	Description string
	// Interior tier only.
	Floor    string
	RoomType string
}

type edge struct {
	to     string
	weight float64
	kind   string
}

// Graph is an undirected weighted graph over string node ids. A built graph
// is treated as immutable: mutations produce a fresh graph that is swapped in
// whole, so readers never observe a partial rebuild.
type Graph struct {
	nodes map[string]Node
	adj   map[string][]edge
}

func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]Node),
		adj:   make(map[string][]edge),
	}
}

func (g *Graph) AddNode(n Node) {
	g.nodes[n.ID] = n
}

// AddEdge links a and b with the given weight. It refuses edges whose
// endpoints are not present, mirroring the build-time policy of skipping
// dangling path entries.
func (g *Graph) AddEdge(a, b string, weight float64, kind string) bool {
	if !g.HasNode(a) || !g.HasNode(b) {
		return false
	}
	g.adj[a] = append(g.adj[a], edge{to: b, weight: weight, kind: kind})
	g.adj[b] = append(g.adj[b], edge{to: a, weight: weight, kind: kind})
	return true
}

func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Edge returns the weight and connection kind of the edge a-b, if present.
func (g *Graph) Edge(a, b string) (float64, string, bool) {
	for _, e := range g.adj[a] {
		if e.to == b {
			return e.weight, e.kind, true
		}
	}
	return 0, "", false
}

func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

func (g *Graph) EdgeCount() int {
	total := 0
	for _, edges := range g.adj {
		total += len(edges)
	}
	return total / 2
}

// Nodes returns all nodes in unspecified order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	return out
}

// Connected reports whether the graph forms a single component. An empty
// graph is not connected.
func (g *Graph) Connected() bool {
	if len(g.nodes) == 0 {
		return false
	}
	var start string
	for id := range g.nodes {
		start = id
		break
	}
	visited := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range g.adj[cur] {
			if !visited[e.to] {
				visited[e.to] = true
				queue = append(queue, e.to)
			}
		}
	}
	return len(visited) == len(g.nodes)
}

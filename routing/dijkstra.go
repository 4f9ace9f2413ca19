package routing

import "container/heap"

// ShortestPath runs Dijkstra's algorithm between two nodes and returns the
// node sequence, the total weight, and whether a path exists. Missing
// endpoints or a disconnected pair yield ok=false rather than an error: both
// are expected request-scoped outcomes.
//
// The queue uses lazy decrease-key: stale entries are pushed freely and
// skipped via the visited set when popped. The search exits as soon as the
// target itself is popped, at which point its distance is final.
func (g *Graph) ShortestPath(start, end string) ([]string, float64, bool) {
	if !g.HasNode(start) || !g.HasNode(end) {
		return nil, 0, false
	}
	if start == end {
		return []string{start}, 0, true
	}

	dist := map[string]float64{start: 0}
	prev := make(map[string]string)
	visited := make(map[string]bool)

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{node: start, priority: 0})

	found := false
	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		current := item.node
		if visited[current] {
			continue
		}
		visited[current] = true

		if current == end {
			found = true
			break
		}

		for _, e := range g.adj[current] {
			if visited[e.to] {
				continue
			}
			candidate := dist[current] + e.weight
			if old, ok := dist[e.to]; !ok || candidate < old {
				dist[e.to] = candidate
				prev[e.to] = current
				heap.Push(pq, &pqItem{node: e.to, priority: candidate})
			}
		}
	}

	if !found {
		return nil, 0, false
	}

	var path []string
	for cur := end; ; {
		path = append([]string{cur}, path...)
		p, ok := prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	return path, dist[end], true
}

type pqItem struct {
	node     string
	priority float64
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].priority < pq[j].priority }
func (pq priorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*pqItem))
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

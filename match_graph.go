package eigenrank

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// MatchComponents groups teams that are connected by at least one chain of matches. A schedule with more
// than one group yields a reducible rank matrix, so the percentages cannot compare teams across groups.
// Matches naming teams outside of teams are skipped. Groups are listed in team index order.
func MatchComponents(teams Teams, matches []*Match) [][]string {
	g := simple.NewUndirectedGraph()
	for i := range teams {
		g.AddNode(simple.Node(i))
	}

	for _, match := range matches {
		t1, t2 := teams.Index(match.Team1), teams.Index(match.Team2)
		if t1 == -1 || t2 == -1 || t1 == t2 {
			continue
		}
		if !g.HasEdgeBetween(int64(t1), int64(t2)) {
			g.SetEdge(simple.Edge{F: simple.Node(t1), T: simple.Node(t2)})
		}
	}

	var components [][]int
	for _, nodes := range topo.ConnectedComponents(g) {
		var indices []int
		for _, node := range nodes {
			indices = append(indices, int(node.ID()))
		}
		sort.Ints(indices)
		components = append(components, indices)
	}
	// ConnectedComponents iterates a map, so order by each group's first team.
	sort.Slice(components, func(i, j int) bool {
		return components[i][0] < components[j][0]
	})

	names := make([][]string, 0, len(components))
	for _, indices := range components {
		var group []string
		for _, index := range indices {
			group = append(group, teams[index])
		}
		names = append(names, group)
	}
	return names
}

package lattice

// Coordination returns the number of bonds touching each site in [0, sites).
// Aliased periodic images count once per copy, matching what the solver sees.
// Bonds with an endpoint outside [0, sites) are ignored.
// Complexity: O(sites + len(bonds)).
func Coordination(bonds []Bond, sites int) []int {
	deg := make([]int, sites)
	for _, b := range bonds {
		if b.A < 0 || b.A >= sites || b.B < 0 || b.B >= sites {
			continue
		}
		deg[b.A]++
		deg[b.B]++
	}

	return deg
}

// Components groups the sites in [0, sites) into connected clusters.
// Each component lists its sites in BFS order from its smallest index;
// components are ordered by their smallest site. Isolated sites form
// singleton components.
//
// Time:   O(sites + len(bonds)).
// Memory: O(sites + len(bonds)) for the adjacency lists and visited flags.
func Components(bonds []Bond, sites int) [][]int {
	adj := make([][]int, sites)
	for _, b := range bonds {
		if b.A < 0 || b.A >= sites || b.B < 0 || b.B >= sites {
			continue
		}
		adj[b.A] = append(adj[b.A], b.B)
		adj[b.B] = append(adj[b.B], b.A)
	}

	seen := make([]bool, sites)
	var comps [][]int
	for s0 := 0; s0 < sites; s0++ {
		if seen[s0] {
			continue
		}
		// BFS to collect component
		queue := []int{s0}
		seen[s0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range adj[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Coordination returns the per-site bond count of the result.
func (r *Result) Coordination() []int {
	return Coordination(r.Bonds, r.Supercell.Sites())
}

// Components returns the connected site clusters of the result.
func (r *Result) Components() [][]int {
	return Components(r.Bonds, r.Supercell.Sites())
}

package lattice

// Resolve turns raw candidates into the final bond list.
//
// Policy:
//   - Self-bonds (A == B) are dropped, counted in Report.SelfBonds, returned
//     in rejected and passed to the WithSelfBondHook observer.
//   - Everything else is kept in generation order with its multiplicity.
//     Bonds repeating an earlier (class, {A, B}) are periodic images that a
//     small supercell cannot separate; they are counted in Report.Aliased
//     but not removed.
//
// Complexity: O(len(cands)) time and memory.
func Resolve(cands []Candidate, opts ...Option) (bonds []Bond, rejected []Candidate, rep Report) {
	cfg := newConfig(opts...)

	rep = Report{Candidates: len(cands), PerClass: make(map[int]int)}
	bonds = make([]Bond, 0, len(cands))
	seen := make(map[pairKey]struct{}, len(cands))
	for _, cand := range cands {
		if cand.IsSelf() {
			rep.SelfBonds++
			rejected = append(rejected, cand)
			if cfg.onSelfBond != nil {
				cfg.onSelfBond(cand)
			}
			continue
		}
		k := cand.key()
		if _, dup := seen[k]; dup {
			rep.Aliased++
		} else {
			seen[k] = struct{}{}
		}
		rep.PerClass[cand.Class]++
		bonds = append(bonds, cand.Bond)
	}

	return bonds, rejected, rep
}

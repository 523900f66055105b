package vacuum

// CleanFloorEvaluator scores environments highly for having clean
// floors: one point per clean square per step, accumulated over the
// whole experiment.
type CleanFloorEvaluator struct {
	score int64
}

// Update awards one point for each location that is clear of dirt.
func (e *CleanFloorEvaluator) Update(s State) {
	for _, dirty := range s.Dirt {
		if !dirty {
			e.score++
		}
	}
}

// Score is the sum of the total number of time steps each location has
// been clear of dirt.
func (e *CleanFloorEvaluator) Score() int64 {
	return e.score
}

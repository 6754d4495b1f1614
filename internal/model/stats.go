package model

// RunStats summarizes one normalization pass. A fresh value is created per
// run and handed to the caller on completion; it is never shared across runs.
//
// NormalizedSeen == Written + DuplicatesSkipped holds for every completed run.
type RunStats struct {
	NormalizedSeen    int `json:"normalized_seen"`
	Written           int `json:"written"`
	DuplicatesSkipped int `json:"duplicates_skipped"`
	DiscardedCount    int `json:"discarded_count"`
}

package models

import "gorm.io/gorm"

// Candidate is one contest entrant. Votes is a monotonic counter mutated
// only by the vote-casting transaction.
type Candidate struct {
	gorm.Model
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Party         string `json:"party"`
	Qualification string `json:"qualification"`
	Votes         uint   `json:"votes"`
}

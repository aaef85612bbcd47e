package models

// Election phase values. Admins may set any of the three in any order;
// no transition ordering is enforced.
const (
	PhaseRegistration = "registration"
	PhaseVoting       = "voting"
	PhaseResults      = "results"
)

// ElectionPhase is a singleton row (ID 1) holding the current phase.
type ElectionPhase struct {
	ID    uint   `json:"-" gorm:"primaryKey"`
	Phase string `json:"phase" gorm:"size:16"`
}

// ValidPhase reports whether p is one of the three enumerated phases.
func ValidPhase(p string) bool {
	return p == PhaseRegistration || p == PhaseVoting || p == PhaseResults
}

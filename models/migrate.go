package models

import "gorm.io/gorm"

// AutoMigrate runs database migrations for all models and seeds the
// election phase singleton so reads and writes target the same row.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Voter{},
		&Candidate{},
		&VoteTransaction{},
		&ElectionPhase{},
		&AadharRecord{},
	); err != nil {
		return err
	}
	phase := ElectionPhase{ID: 1, Phase: PhaseRegistration}
	return db.Where("id = ?", 1).FirstOrCreate(&phase).Error
}

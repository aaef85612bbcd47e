package models

// AadharRecord is the national-ID reference table. This service only reads
// it, to gate registration on age >= 18.
type AadharRecord struct {
	AadharNumber string `json:"aadhar_number" gorm:"primaryKey;size:12"`
	Age          int    `json:"age"`
}

// TableName keeps the legacy table name used by the identity registry import.
func (AadharRecord) TableName() string {
	return "aadhar_data"
}

// Description: Defines the Voter model and its fields.
package models

import "gorm.io/gorm"

// Voter is one registration row per email. IsRegistered and AdminApproved
// are yes/no string flags; the admin approval is keyed on AccountAddress.
type Voter struct {
	gorm.Model             // Adds fields ID, CreatedAt, UpdatedAt, DeletedAt
	Email          string  `json:"email" gorm:"uniqueIndex"`
	Password       string  `json:"-"`
	IsRegistered   string  `json:"is_registered" gorm:"size:3;default:no"`
	AdminApproved  string  `json:"admin_approved" gorm:"size:3;default:no"`
	HasVoted       bool    `json:"has_voted"`
	AccountAddress *string `json:"account_address"`
	AadharNumber   *string `json:"aadhar_number"`
}

package models

import "gorm.io/gorm"

// VoteTransaction is an append-only audit record written best-effort
// alongside a vote. A failed write is logged and never blocks the vote.
// TransactionHash is the caller-supplied on-chain reference, if any;
// ReceiptID is generated server-side so every row has a unique handle.
type VoteTransaction struct {
	gorm.Model
	Email           string  `json:"email" gorm:"index"`
	CandidateID     uint    `json:"candidate_id"`
	TransactionHash *string `json:"transaction_hash"`
	ReceiptID       string  `json:"receipt_id" gorm:"uniqueIndex"`
}

package controllers

import (
	"evoting-backend/mailer"
	"evoting-backend/otp"

	"gorm.io/gorm"
)

// Handler carries the dependencies the request handlers need. The OTP store
// is owned here rather than living as package state so tests and the server
// wire their own instances.
type Handler struct {
	DB        *gorm.DB
	OTP       *otp.Store
	Mail      mailer.Sender
	JWTSecret []byte
}

func New(db *gorm.DB, otpStore *otp.Store, mail mailer.Sender, jwtSecret []byte) *Handler {
	return &Handler{
		DB:        db,
		OTP:       otpStore,
		Mail:      mail,
		JWTSecret: jwtSecret,
	}
}

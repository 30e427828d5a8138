package constants

import "time"

// Context keys
const (
	ContextTokenData = "token_data"
)

// Auth
const (
	AuthCookieName = "honeydew_token"
	TokenExpiry    = 7 * 24 * time.Hour
	BcryptCost     = 12
)

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist = "blacklist:token:"
)

// Invite codes
const (
	InviteCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	InviteCodeLength   = 6
)

// Asynq task types
const (
	TaskBadgeEvaluate = "badge:evaluate"
)

// Uploads
const (
	MaxUploadSize = 5 * 1024 * 1024 // 5MB
)

// Time bands for availability and meeting slots
const (
	TimeSlotMorning   = "Morning"
	TimeSlotAfternoon = "Afternoon"
	TimeSlotEvening   = "Evening"
)

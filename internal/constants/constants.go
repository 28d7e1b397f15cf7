package constants

import "time"

// Session and context keys
const (
	SessionCookieName = "notes_session"
	ContextKeyUserID  = "user_id"
	ContextKeyNote    = "note"
)

// Authentication
const (
	MinPasswordLength = 8
	PasswordResetTTL  = time.Hour
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Dictionary
const (
	MaxDefinitionsPerMeaning = 3
	DefaultDictionaryBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
)

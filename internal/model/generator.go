package model

import "time"

// GenerateRequest represents a password generation request.
// Pointer fields allow distinguishing between missing (nil -> configured default) and an explicit zero value.
type GenerateRequest struct {
	Length    *int  `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
	Hash      bool  `json:"hash"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Hash     string `json:"hash,omitempty"`
}

// GenerationEvent records the configuration of one generation. The password itself is never stored.
type GenerationEvent struct {
	ID        int64
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
	Hashed    bool
	CreatedAt time.Time
}

// GenerationStats aggregates recorded generation events.
type GenerationStats struct {
	Total           int64
	AverageLength   float64
	LastGeneratedAt *time.Time
}

// StatsResponse represents the stats endpoint payload.
type StatsResponse struct {
	Total           int64      `json:"total"`
	AverageLength   float64    `json:"average_length"`
	LastGeneratedAt *time.Time `json:"last_generated_at,omitempty"`
}

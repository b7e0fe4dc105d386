package testmodels

import "github.com/go-openapi/strfmt"

type GameScore struct {

	// Timestamp when the score was created.
	// Required: true
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"CreatedAt"`

	// Name of the player the score belongs to.
	// Required: true
	PlayerName *string `json:"PlayerName"`

	// Unique identifier for the score object.
	// Required: true
	ObjectID *string `json:"ObjectId"`

	// The recorded score.
	// Required: true
	Score *int64 `json:"Score"`

	// Whether the player cheated.
	CheatMode bool `json:"CheatMode,omitempty"`

	// Timestamp when the score was last updated.
	// Required: true
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"UpdatedAt"`
}

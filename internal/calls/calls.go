package calls

import (
	"context"
	"errors"
)

var ErrInvalidRequest = errors.New("invalid call request")

const (
	VoiceMale    = "ryan"
	VoiceDefault = "maya"
)

// VoiceFor picks the synthetic voice. Only "male" selects the male voice;
// everything else, including unknown values, gets the default.
func VoiceFor(gender string) string {
	if gender == "male" {
		return VoiceMale
	}
	return VoiceDefault
}

type CallRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Prompt      string `json:"prompt" validate:"required"`
	Gender      string `json:"gender"`
}

// Provider places a single outbound call and returns the provider's call id.
type Provider interface {
	Name() string
	PlaceCall(ctx context.Context, req CallRequest) (string, error)
}

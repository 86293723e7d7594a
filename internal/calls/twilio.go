package calls

import (
	"context"
	"fmt"

	twilio "github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"github.com/twilio/twilio-go/twiml"
)

const (
	TwilioVoiceMale    = "Polly.Matthew"
	TwilioVoiceDefault = "Polly.Joanna"
)

type callCreator interface {
	CreateCall(params *twilioApi.CreateCallParams) (*twilioApi.ApiV2010Call, error)
}

// TwilioProvider reads the script with Twilio's text to speech instead of
// handing it to a conversational agent.
type TwilioProvider struct {
	api  callCreator
	from string
}

func NewTwilioProvider(accountSID, authToken, from string) *TwilioProvider {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioProvider{api: client.Api, from: from}
}

func (p *TwilioProvider) Name() string { return "twilio" }

func (p *TwilioProvider) PlaceCall(ctx context.Context, call CallRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	script, err := callTwiml(call)
	if err != nil {
		return "", err
	}

	params := &twilioApi.CreateCallParams{}
	params.SetTo(call.PhoneNumber)
	params.SetFrom(p.from)
	params.SetTwiml(script)

	created, err := p.api.CreateCall(params)
	if err != nil {
		return "", fmt.Errorf("failed to create call: %w", err)
	}
	if created.Sid == nil {
		return "", nil
	}
	return *created.Sid, nil
}

func twilioVoiceFor(gender string) string {
	if VoiceFor(gender) == VoiceMale {
		return TwilioVoiceMale
	}
	return TwilioVoiceDefault
}

func callTwiml(call CallRequest) (string, error) {
	say := &twiml.VoiceSay{
		Message: call.Prompt,
		Voice:   twilioVoiceFor(call.Gender),
	}

	result, err := twiml.Voice([]twiml.Element{say})
	if err != nil {
		return "", fmt.Errorf("failed to render twiml: %w", err)
	}
	return result, nil
}

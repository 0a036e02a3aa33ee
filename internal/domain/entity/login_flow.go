package entity

import "time"

// LoginStep is a state of the phone/OTP login flow.
type LoginStep string

const (
	// StepPhoneEntry collects the phone number.
	StepPhoneEntry LoginStep = "PHONE_ENTRY"
	// StepOTPEntry collects the one-time code sent to the phone.
	StepOTPEntry LoginStep = "OTP_ENTRY"
	// StepAuthenticated is terminal: tokens have been stored.
	StepAuthenticated LoginStep = "AUTHENTICATED"
)

// LoginFlow is the per-browser state of the OTP login form.
type LoginFlow struct {
	Step     LoginStep `json:"step"`
	Phone    string    `json:"phone,omitempty"`
	ResendAt time.Time `json:"resendAt,omitzero"`
	DevCode  string    `json:"devCode,omitempty"`
}

// NewLoginFlow returns a flow waiting for a phone number.
func NewLoginFlow() *LoginFlow {
	return &LoginFlow{Step: StepPhoneEntry}
}

// CodeSent moves the flow to OTP entry and starts the resend cooldown.
// Used both for the first request and for a resend.
func (f *LoginFlow) CodeSent(phone string, challenge *OTPChallenge, now time.Time) {
	f.Step = StepOTPEntry
	f.Phone = phone
	f.ResendAt = now.Add(time.Duration(challenge.ResendAfter) * time.Second)
	f.DevCode = challenge.Code
}

// ResendIn returns the remaining cooldown, never negative.
func (f *LoginFlow) ResendIn(now time.Time) time.Duration {
	if f.ResendAt.IsZero() || !now.Before(f.ResendAt) {
		return 0
	}

	return f.ResendAt.Sub(now)
}

// CanResend reports whether a new code may be requested.
func (f *LoginFlow) CanResend(now time.Time) bool {
	return f.Step == StepOTPEntry && f.ResendIn(now) == 0
}

// Authenticated marks the flow as finished.
func (f *LoginFlow) Authenticated() {
	f.Step = StepAuthenticated
	f.DevCode = ""
}

// ChangePhone discards the OTP state and goes back to phone entry.
func (f *LoginFlow) ChangePhone() {
	*f = LoginFlow{Step: StepPhoneEntry}
}

package models

// TextSize is the ordinal display size scale.
type TextSize string

const (
	TextSmall      TextSize = "Small"
	TextMedium     TextSize = "Medium"
	TextLarge      TextSize = "Large"
	TextExtraLarge TextSize = "Extra Large"
	Text2XL        TextSize = "2XL"
)

// TextSizes returns the scale from smallest to largest.
func TextSizes() []TextSize {
	return []TextSize{TextSmall, TextMedium, TextLarge, TextExtraLarge, Text2XL}
}

func (t TextSize) Valid() bool {
	switch t {
	case TextSmall, TextMedium, TextLarge, TextExtraLarge, Text2XL:
		return true
	}
	return false
}

// Preferences holds the account settings. Only TextSize survives a
// reload; the toggles are session-only (see prefs.Store.Save).
type Preferences struct {
	TextSize            TextSize `json:"text_size"`
	TextToSpeech        bool     `json:"text_to_speech"`
	EmailNotification   bool     `json:"email_notification"`
	MessageNotification bool     `json:"message_notification"`
}

// Preference field names accepted by prefs.Store.SetField.
const (
	FieldTextSize            = "textSize"
	FieldTextToSpeech        = "textToSpeech"
	FieldEmailNotification   = "emailNotification"
	FieldMessageNotification = "messageNotification"
)

// DefaultPreferences returns the values used when nothing is persisted.
func DefaultPreferences() Preferences {
	return Preferences{
		TextSize:            TextLarge,
		TextToSpeech:        true,
		EmailNotification:   true,
		MessageNotification: true,
	}
}

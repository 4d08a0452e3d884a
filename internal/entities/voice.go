package entities

import (
	"strconv"
	"strings"
)

const (
	VoiceSettingsID = "voice_settings"

	// NumberPlaceholder is replaced by the current number when announcing.
	NumberPlaceholder = "{number}"
)

type VoiceType string

const (
	VoiceMale   VoiceType = "male"
	VoiceFemale VoiceType = "female"
)

func (v VoiceType) Valid() bool {
	return v == VoiceMale || v == VoiceFemale
}

// VoiceSettings holds text-to-speech parameters. Synthesis runs on the client.
type VoiceSettings struct {
	ID             string    `gorm:"column:id;primaryKey;size:64" json:"id" bson:"id"`
	Enabled        bool      `gorm:"column:enabled" json:"enabled" bson:"enabled"`
	VoiceType      VoiceType `gorm:"column:voice_type;size:20" json:"voice_type" bson:"voice_type"`
	Pitch          float64   `gorm:"column:pitch" json:"pitch" bson:"pitch"` // nominal 0.5 to 2.0
	Rate           float64   `gorm:"column:rate" json:"rate" bson:"rate"`    // nominal 0.5 to 2.0
	PhraseTemplate string    `gorm:"column:phrase_template;size:512" json:"phrase_template" bson:"phrase_template"`
	Language       string    `gorm:"column:language;size:35" json:"language" bson:"language"`
}

func (VoiceSettings) TableName() string {
	return "voice_settings"
}

func DefaultVoiceSettings() *VoiceSettings {
	return &VoiceSettings{
		ID:             VoiceSettingsID,
		Enabled:        true,
		VoiceType:      VoiceFemale,
		Pitch:          1.0,
		Rate:           1.0,
		PhraseTemplate: "Numero " + NumberPlaceholder,
		Language:       "it-IT",
	}
}

// Phrase renders the announcement text for number. Templates without the
// placeholder are returned unchanged.
func (v *VoiceSettings) Phrase(number int) string {
	return strings.ReplaceAll(v.PhraseTemplate, NumberPlaceholder, strconv.Itoa(number))
}

type VoiceSettingsUpdate struct {
	Enabled        *bool      `json:"enabled"`
	VoiceType      *VoiceType `json:"voice_type" binding:"omitempty,oneof=male female"`
	Pitch          *float64   `json:"pitch"`
	Rate           *float64   `json:"rate"`
	PhraseTemplate *string    `json:"phrase_template"`
	Language       *string    `json:"language" binding:"omitempty,bcp47_language_tag"`
}

func (u VoiceSettingsUpdate) Fields() Fields {
	f := Fields{}
	put(f, "enabled", u.Enabled)
	put(f, "voice_type", u.VoiceType)
	put(f, "pitch", u.Pitch)
	put(f, "rate", u.Rate)
	put(f, "phrase_template", u.PhraseTemplate)
	put(f, "language", u.Language)
	return f
}

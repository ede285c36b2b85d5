package core

import (
	"errors"
	"regexp"
	"strings"
)

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type (
	// Theme selects the display theme.
	Theme string

	// Notifications holds three independent notification toggles.
	Notifications struct {
		Email        bool `json:"email"`
		InApp        bool `json:"app"`
		StatusChange bool `json:"status"`
	}

	Profile struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	Settings struct {
		Theme         Theme         `json:"theme"`
		Notifications Notifications `json:"notifications"`
		Profile       Profile       `json:"profile"`
	}
)

var ErrInvalidEmail = errors.New("invalid email address")

// emailShape is a deliberately loose local@domain check. Validation only
// happens at the explicit save boundary.
var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// DefaultSettings are used when nothing is persisted yet or the stored
// value is malformed.
func DefaultSettings() Settings {
	return Settings{
		Theme: ThemeDark,
		Notifications: Notifications{
			Email:        true,
			InApp:        true,
			StatusChange: true,
		},
	}
}

func (t Theme) Validate() error {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return nil
	default:
		return errors.New("invalid theme")
	}
}

func (s Settings) Validate() error {
	if err := s.Theme.Validate(); err != nil {
		return err
	}
	if email := strings.TrimSpace(s.Profile.Email); email != "" && !emailShape.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

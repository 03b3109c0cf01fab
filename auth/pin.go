package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPin    = errors.New("incorrect PIN")
	ErrPinNotSet     = errors.New("login PIN is not configured")
	ErrInvalidFormat = errors.New("PIN must be 6 digits")
)

const PinLength = 6

// PinChecker guards the app behind a single shared PIN stored as a bcrypt hash.
type PinChecker struct {
	hash []byte
}

func NewPinChecker(hash string) *PinChecker {
	return &PinChecker{hash: []byte(hash)}
}

// HashPin produces the value to put in LOGIN_PIN_HASH.
func HashPin(pin string) (string, error) {
	if err := validatePin(pin); err != nil {
		return "", err
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (c *PinChecker) Check(pin string) error {
	if len(c.hash) == 0 {
		return ErrPinNotSet
	}
	if err := validatePin(pin); err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword(c.hash, []byte(pin)); err != nil {
		return ErrInvalidPin
	}
	return nil
}

func validatePin(pin string) error {
	if len(pin) != PinLength {
		return ErrInvalidFormat
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return ErrInvalidFormat
		}
	}
	return nil
}

package services

import (
	"errors"
	"fmt"

	"eventhub/internal/models"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultPinLength = 4
	DefaultPinCost   = bcrypt.DefaultCost
)

var (
	ErrPinEmpty   = errors.New("pin cannot be empty")
	ErrPinInvalid = errors.New("pin must be exactly 4 digits")
)

// PinService hashes and checks the short numeric PINs staff sign in with
type PinService struct {
	cost   int
	length int
}

// NewPinService creates a pin service. Non-positive values fall back to the defaults.
func NewPinService(cost, length int) PinServiceInterface {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultPinCost
	}
	if length <= 0 {
		length = DefaultPinLength
	}

	return &PinService{
		cost:   cost,
		length: length,
	}
}

// NormalizePin keeps only the digits, so "12-34" and " 1234 " both read as 1234
func (ps *PinService) NormalizePin(raw string) string {
	return models.DigitsOnly(raw)
}

func (ps *PinService) ValidatePin(pin string) error {
	if pin == "" {
		return ErrPinEmpty
	}

	if len(pin) != ps.length || models.DigitsOnly(pin) != pin {
		if ps.length == DefaultPinLength {
			return ErrPinInvalid
		}
		return fmt.Errorf("pin must be exactly %d digits", ps.length)
	}

	return nil
}

// HashPin validates and hashes a PIN using bcrypt
func (ps *PinService) HashPin(pin string) (string, error) {
	if err := ps.ValidatePin(pin); err != nil {
		return "", fmt.Errorf("pin validation failed: %w", err)
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(pin), ps.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash pin: %w", err)
	}

	return string(hashedBytes), nil
}

// ComparePin compares a plain PIN with a stored hash
func (ps *PinService) ComparePin(pin, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin))
	return err == nil
}

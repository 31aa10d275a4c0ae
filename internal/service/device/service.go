package device

import (
	"context"
	"errors"
	"fmt"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/device"
	"github.com/atlasfield/fieldops-agent-go/internal/pkg/kvstore"
	"github.com/atlasfield/fieldops-agent-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

const pinKey = "device_pin"

// PINUnlocker gates the device behind a bcrypt-hashed PIN stored in the
// local KV store.
type PINUnlocker struct {
	store kvstore.Store
}

func NewPINUnlocker(store kvstore.Store) *PINUnlocker {
	return &PINUnlocker{store: store}
}

// Enroll implements device.Unlocker.
func (u *PINUnlocker) Enroll(ctx context.Context, pin string) error {
	if !validator.IsValidPIN(pin) {
		return device.ErrInvalidPIN
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}
	if err := u.store.Set(ctx, pinKey, hash); err != nil {
		return fmt.Errorf("failed to store PIN: %w", err)
	}
	return nil
}

// Verify implements device.Unlocker.
func (u *PINUnlocker) Verify(ctx context.Context, pin string) error {
	hash, err := u.store.Get(ctx, pinKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return device.ErrPINNotEnrolled
		}
		return fmt.Errorf("failed to read PIN: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(pin)); err != nil {
		return device.ErrPINMismatch
	}
	return nil
}

// Enrolled implements device.Unlocker.
func (u *PINUnlocker) Enrolled(ctx context.Context) bool {
	_, err := u.store.Get(ctx, pinKey)
	return err == nil
}

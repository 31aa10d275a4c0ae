package device

import (
	"context"
	"testing"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/device"
	"github.com/atlasfield/fieldops-agent-go/internal/pkg/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollAndVerify(t *testing.T) {
	ctx := context.Background()
	unlocker := NewPINUnlocker(kvstore.NewMemStore())

	assert.False(t, unlocker.Enrolled(ctx))
	assert.ErrorIs(t, unlocker.Verify(ctx, "1234"), device.ErrPINNotEnrolled)

	require.NoError(t, unlocker.Enroll(ctx, "1234"))
	assert.True(t, unlocker.Enrolled(ctx))

	assert.NoError(t, unlocker.Verify(ctx, "1234"))
	assert.ErrorIs(t, unlocker.Verify(ctx, "9999"), device.ErrPINMismatch)
}

func TestEnrollRejectsBadPINs(t *testing.T) {
	ctx := context.Background()
	unlocker := NewPINUnlocker(kvstore.NewMemStore())

	for _, pin := range []string{"", "123", "123456789", "12ab"} {
		assert.ErrorIs(t, unlocker.Enroll(ctx, pin), device.ErrInvalidPIN)
	}
}

func TestReEnrollReplacesPIN(t *testing.T) {
	ctx := context.Background()
	unlocker := NewPINUnlocker(kvstore.NewMemStore())

	require.NoError(t, unlocker.Enroll(ctx, "1234"))
	require.NoError(t, unlocker.Enroll(ctx, "5678"))

	assert.ErrorIs(t, unlocker.Verify(ctx, "1234"), device.ErrPINMismatch)
	assert.NoError(t, unlocker.Verify(ctx, "5678"))
}

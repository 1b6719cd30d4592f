package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/mcarrasqub/itimer/internal/domain"
	portmocks "github.com/mcarrasqub/itimer/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, "itimer/cookies/sessionid").Return("sess-pass", nil).Once()

	value, err := store.Get(context.Background(), "itimer/cookies/sessionid")
	require.NoError(t, err)
	assert.Equal(t, "sess-pass", value)
}

func TestStoreGetFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, "itimer/cookies/sessionid").Return("", errors.New("pass unavailable")).Once()
	fallback.EXPECT().Get(mock.Anything, "itimer/cookies/sessionid").Return("sess-file", nil).Once()

	value, err := store.Get(context.Background(), "itimer/cookies/sessionid")
	require.NoError(t, err)
	assert.Equal(t, "sess-file", value)
}

func TestStoreGetReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, "itimer/cookies/sessionid").Return("", errors.New("pass failed")).Once()
	fallback.EXPECT().Get(mock.Anything, "itimer/cookies/sessionid").Return("", errors.New("file failed")).Once()

	_, err := store.Get(context.Background(), "itimer/cookies/sessionid")
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "fallback backend")
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorContains(t, err, "file failed")
}

func TestStorePutFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Put(mock.Anything, "itimer/cookies/sessionid", "secret").Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Put(mock.Anything, "itimer/cookies/sessionid", "secret").Return(nil).Once()

	err := store.Put(context.Background(), "itimer/cookies/sessionid", "secret")
	require.NoError(t, err)
}

func TestStorePutDoesNotCallFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Put(mock.Anything, "itimer/cookies/sessionid", "secret").Return(nil).Once()

	err := store.Put(context.Background(), "itimer/cookies/sessionid", "secret")
	require.NoError(t, err)
}

func TestStoreDeleteClearsBothBackends(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Delete(mock.Anything, "itimer/cookies/sessionid").Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, "itimer/cookies/sessionid").Return(nil).Once()

	err := store.Delete(context.Background(), "itimer/cookies/sessionid")
	require.NoError(t, err)
}

func TestStoreDeleteSucceedsWhenOnlyOneBackendFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Delete(mock.Anything, "itimer/cookies/sessionid").Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Delete(mock.Anything, "itimer/cookies/sessionid").Return(nil).Once()

	err := store.Delete(context.Background(), "itimer/cookies/sessionid")
	require.NoError(t, err)
}

func TestStoreDeleteReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Delete(mock.Anything, "itimer/cookies/sessionid").Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Delete(mock.Anything, "itimer/cookies/sessionid").Return(errors.New("disk full")).Once()

	err := store.Delete(context.Background(), "itimer/cookies/sessionid")
	require.Error(t, err)
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorContains(t, err, "disk full")
}

func TestStoreGetKeepsNotFoundWhenBothBackendsMiss(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, "itimer/cookies/sessionid").Return("", domain.ErrSecretNotFound).Once()
	fallback.EXPECT().Get(mock.Anything, "itimer/cookies/sessionid").Return("", domain.ErrSecretNotFound).Once()

	_, err := store.Get(context.Background(), "itimer/cookies/sessionid")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetDoesNotFallbackOnCanceledContextError(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, "itimer/cookies/sessionid").Return("", context.Canceled).Once()

	_, err := store.Get(context.Background(), "itimer/cookies/sessionid")
	require.ErrorIs(t, err, context.Canceled)
}

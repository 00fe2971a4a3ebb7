package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-otp-vault/internal/kdf"
	"github.com/MKhiriev/go-otp-vault/internal/mock"
	"github.com/MKhiriev/go-otp-vault/internal/race"
	"github.com/MKhiriev/go-otp-vault/internal/vaultkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSignature = vaultkey.Signature("testV1")

func newTestKeySvc(t *testing.T, ctrl *gomock.Controller, timeout time.Duration) (*keyService, *mock.MockKeyDeriver) {
	t.Helper()
	deriver := mock.NewMockKeyDeriver(ctrl)

	svc := NewKeyService(testSignature, timeout).(*keyService)
	svc.lookup = func(sig vaultkey.Signature) (vaultkey.VaultKeyDeriver, error) {
		if sig != testSignature {
			return vaultkey.VaultKeyDeriver{}, vaultkey.ErrUnknownSignature
		}
		return vaultkey.New(sig, deriver), nil
	}
	return svc, deriver
}

func TestKeyService_CreateEncryptionKey_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deriver := newTestKeySvc(t, ctrl, time.Second)
	key := []byte("0123456789abcdef0123456789abcdef")

	deriver.EXPECT().Derive(gomock.Any(), []byte("pass"), gomock.Len(vaultkey.SaltLength)).Return(key, nil)

	got, err := svc.CreateEncryptionKey(context.Background(), []byte("pass"))
	require.NoError(t, err)
	assert.Equal(t, key, got.Key)
	assert.Equal(t, testSignature, got.Signature)
	assert.Len(t, got.Salt, vaultkey.SaltLength)
}

func TestKeyService_RecreateEncryptionKey_UsesStoredSignatureAndSalt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deriver := newTestKeySvc(t, ctrl, time.Second)
	salt := []byte("stored-salt")

	deriver.EXPECT().Derive(gomock.Any(), []byte("pass"), salt).Return([]byte("key"), nil)

	got, err := svc.RecreateEncryptionKey(context.Background(), testSignature, []byte("pass"), salt)
	require.NoError(t, err)
	assert.Equal(t, []byte("key"), got.Key)
	assert.Equal(t, salt, got.Salt)
}

func TestKeyService_RecreateEncryptionKey_UnknownSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestKeySvc(t, ctrl, time.Second)

	_, err := svc.RecreateEncryptionKey(context.Background(), "otherV9", []byte("pass"), []byte("salt"))
	require.ErrorIs(t, err, vaultkey.ErrUnknownSignature)
}

func TestKeyService_DeriverError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deriver := newTestKeySvc(t, ctrl, time.Second)
	deriver.EXPECT().Derive(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, kdf.ErrDerivationFailed)

	_, err := svc.CreateEncryptionKey(context.Background(), []byte("pass"))
	require.ErrorIs(t, err, kdf.ErrDerivationFailed)
}

func TestKeyService_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deriver := newTestKeySvc(t, ctrl, 20*time.Millisecond)
	returned := make(chan struct{})

	deriver.EXPECT().Derive(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _, _ []byte) ([]byte, error) {
			defer close(returned)
			<-ctx.Done()
			return nil, ctx.Err()
		},
	)

	_, err := svc.CreateEncryptionKey(context.Background(), []byte("pass"))
	require.ErrorIs(t, err, race.ErrTimeout)

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("derivation was not cancelled after timeout")
	}
}

func TestKeyService_ParentCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deriver := newTestKeySvc(t, ctrl, time.Second)
	deriver.EXPECT().Derive(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _, _ []byte) ([]byte, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CreateEncryptionKey(ctx, []byte("pass"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, kdf.ErrDerivationCancelled))
	assert.True(t, errors.Is(err, context.Canceled))
}

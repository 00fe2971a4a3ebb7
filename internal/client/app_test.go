package client

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-otp-vault/internal/app"
	"github.com/MKhiriev/go-otp-vault/internal/backup"
	"github.com/MKhiriev/go-otp-vault/internal/mock"
	"github.com/MKhiriev/go-otp-vault/internal/service"
	"github.com/MKhiriev/go-otp-vault/internal/shard"
	"github.com/MKhiriev/go-otp-vault/internal/store"
	"github.com/MKhiriev/go-otp-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeClipboard struct {
	available bool
	copied    string
}

func (c *fakeClipboard) Available() bool { return c.available }

func (c *fakeClipboard) Copy(text string) error {
	c.copied = text
	return nil
}

type testApp struct {
	app       *App
	otp       *mock.MockOTPService
	backup    *mock.MockBackupService
	clipboard *fakeClipboard
	out       *bytes.Buffer
	prompt    *bytes.Buffer
}

func newTestApp(t *testing.T, ctrl *gomock.Controller, stdin string) testApp {
	t.Helper()
	ta := testApp{
		otp:       mock.NewMockOTPService(ctrl),
		backup:    mock.NewMockBackupService(ctrl),
		clipboard: &fakeClipboard{available: true},
		out:       &bytes.Buffer{},
		prompt:    &bytes.Buffer{},
	}

	services := &service.Services{OTPService: ta.otp, BackupService: ta.backup}
	a, err := NewApp(services, models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"),
		WithIO(strings.NewReader(stdin), ta.out, ta.prompt),
		WithClipboard(ta.clipboard),
	)
	require.NoError(t, err)
	ta.app = a
	return ta
}

func TestNewApp_RequiresServices(t *testing.T) {
	_, err := NewApp(nil, models.AppBuildInfo{})
	require.Error(t, err)
}

func TestApp_Run_NoCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, "")

	err := ta.app.Run(context.Background(), nil)
	require.ErrorIs(t, err, ErrNoCommand)
	assert.Contains(t, ta.out.String(), "usage: vaultctl")
}

func TestApp_Run_UnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, "")

	err := ta.app.Run(context.Background(), []string{"frobnicate"})
	require.ErrorIs(t, err, ErrUnknownCommand)
}

func TestApp_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, "")
	ctx := context.Background()

	uri := "otpauth://totp/Example:alice?secret=JBSWY3DPEHPK3PXP"
	ta.otp.EXPECT().AddFromURI(ctx, uri).Return(models.OTPCode{ID: "id-1", Issuer: "Example", AccountName: "alice"}, nil)

	require.NoError(t, ta.app.Run(ctx, []string{"add", uri}))
	assert.Equal(t, "added id-1 Example:alice\n", ta.out.String())

	err := ta.app.Run(ctx, []string{"add"})
	require.ErrorIs(t, err, ErrMissingArgument)
}

func TestApp_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, "")
	ctx := context.Background()

	ta.otp.EXPECT().List(ctx).Return(
		[]models.OTPCode{{ID: "id-1", Kind: models.KindTOTP, AccountName: "alice", Digits: 6}},
		[]models.OTPDecodeFailure{{ID: "id-2", Err: models.DecodeErrorInvalidDigits}},
		nil,
	)

	require.NoError(t, ta.app.Run(ctx, []string{"list"}))
	out := ta.out.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "id-1")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "skipped id-2: invalid digits count")
}

func TestApp_List_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, "")

	ta.otp.EXPECT().List(gomock.Any()).Return(nil, nil, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"list"}))
	assert.Equal(t, "no entries\n", ta.out.String())
}

func TestApp_Code_CopiesToClipboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, "")
	ctx := context.Background()

	ta.otp.EXPECT().Preview(ctx, "id-1").Return(models.OTPPreview{Code: "123456", ValidFor: 12 * time.Second}, nil)

	require.NoError(t, ta.app.Run(ctx, []string{"code", "-copy", "id-1"}))
	assert.Equal(t, "123456", ta.clipboard.copied)
	assert.Contains(t, ta.out.String(), "123456  valid for 12s")
	assert.Contains(t, ta.out.String(), "copied to clipboard")
}

func TestApp_Code_ClipboardUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, "")
	ta.clipboard.available = false

	ta.otp.EXPECT().Preview(gomock.Any(), "id-1").Return(models.OTPPreview{Code: "123456"}, nil)

	err := ta.app.Run(context.Background(), []string{"code", "-copy", "id-1"})
	require.Error(t, err)
	assert.Empty(t, ta.clipboard.copied)
}

func TestApp_Next(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, "")

	ta.otp.EXPECT().NextHOTPCode(gomock.Any(), "id-1").Return(models.OTPPreview{Code: "755224", Counter: 0}, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"next", "id-1"}))
	assert.Equal(t, "755224  counter 0\n", ta.out.String())
}

func TestApp_Next_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, "")

	ta.otp.EXPECT().NextHOTPCode(gomock.Any(), "id-1").Return(models.OTPPreview{}, service.ErrNotHOTP)

	err := ta.app.Run(context.Background(), []string{"next", "id-1"})
	require.ErrorIs(t, err, service.ErrNotHOTP)
}

func TestApp_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, "")

	ta.otp.EXPECT().Delete(gomock.Any(), "id-1").Return(store.ErrOTPCodeNotFound)

	err := ta.app.Run(context.Background(), []string{"delete", "id-1"})
	require.ErrorIs(t, err, store.ErrOTPCodeNotFound)
}

func TestApp_Watch_NothingToWatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, "")

	ta.otp.EXPECT().List(gomock.Any()).Return([]models.OTPCode{{ID: "h", Kind: models.KindHOTP}}, nil, nil)

	err := ta.app.Run(context.Background(), []string{"watch"})
	require.ErrorIs(t, err, ErrNothingToWatch)
}

func TestApp_Watch_PrintsUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, "")

	code := models.OTPCode{
		ID:          "t",
		Kind:        models.KindTOTP,
		AccountName: "alice",
		Secret:      models.OTPSecret{Data: []byte("12345678901234567890")},
		Algorithm:   models.AlgorithmSHA1,
		Digits:      6,
		Period:      30,
	}
	ta.otp.EXPECT().List(gomock.Any()).Return([]models.OTPCode{code}, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, ta.app.Run(ctx, []string{"watch"}))
	assert.Contains(t, ta.out.String(), "alice")
}

func TestApp_Export_WritesFrames(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, "s3cret\n")
	dir := filepath.Join(t.TempDir(), "frames")

	frames := []backup.Frame{
		{Index: 0, Payload: "frame-0", PNG: []byte("png-0")},
		{Index: 1, Payload: "frame-1"},
	}
	ta.backup.EXPECT().Export(gomock.Any(), []byte("s3cret")).Return(frames, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"export", "-out", dir}))

	txt, err := os.ReadFile(filepath.Join(dir, "shard-000.txt"))
	require.NoError(t, err)
	assert.Equal(t, "frame-0", string(txt))

	png, err := os.ReadFile(filepath.Join(dir, "shard-000.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-0", string(png))

	_, err = os.Stat(filepath.Join(dir, "shard-001.png"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, ta.out.String(), "wrote 2 frames")

	// stdout stays clean for piping
	assert.Equal(t, app.MsgEnterPassword, ta.prompt.String())
	assert.NotContains(t, ta.out.String(), app.MsgEnterPassword)
}

func writeFrames(t *testing.T, payload []byte, maxShardSize int) []string {
	t.Helper()
	shards, err := shard.NewBuilder().MakeShards(payload, maxShardSize)
	require.NoError(t, err)

	dir := t.TempDir()
	paths := make([]string, len(shards))
	for i, s := range shards {
		frame, err := shard.Encode(s)
		require.NoError(t, err)
		paths[i] = filepath.Join(dir, filepath.Base(t.Name())+"-"+string(rune('a'+i))+".txt")
		require.NoError(t, os.WriteFile(paths[i], append(frame, '\n'), 0o600))
	}
	return paths
}

func TestApp_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, "s3cret\n")
	ctx := context.Background()

	paths := writeFrames(t, []byte("an encrypted container"), 8)
	session := backup.NewImportSession(nil, nil)

	ta.backup.EXPECT().NewImportSession().Return(session)
	ta.backup.EXPECT().Import(ctx, session, []byte("s3cret")).Return(
		[]models.OTPCode{{ID: "r-1"}},
		[]models.OTPDecodeFailure{{ID: "bad", Err: models.DecodeErrorMissingPeriod}},
		nil,
	)

	require.NoError(t, ta.app.Run(ctx, append([]string{"import"}, paths...)))
	out := ta.out.String()
	assert.Contains(t, out, "restored 1 entries")
	assert.Contains(t, out, "skipped bad")
}

func TestApp_Import_Incomplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, "")

	paths := writeFrames(t, []byte("an encrypted container"), 8)
	ta.backup.EXPECT().NewImportSession().Return(backup.NewImportSession(nil, nil))

	err := ta.app.Run(context.Background(), []string{"import", paths[0]})
	require.ErrorIs(t, err, ErrBackupIncomplete)
	assert.Contains(t, ta.out.String(), "1/3")
}

func TestApp_Signatures(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, "")

	require.NoError(t, ta.app.Run(context.Background(), []string{"signatures"}))
	assert.Contains(t, ta.out.String(), "secureV1")
	assert.Contains(t, ta.out.String(), "PBKDF2<")
}

func TestApp_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, "")

	require.NoError(t, ta.app.Run(context.Background(), []string{"version"}))
	assert.Contains(t, ta.out.String(), "Build version: 1.2.3")
	assert.Contains(t, ta.out.String(), "Build commit: abc123")
}

func TestApp_ReadPassword_WithoutTrailingNewline(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, "no-newline")

	password, err := ta.app.readPassword()
	require.NoError(t, err)
	assert.Equal(t, []byte("no-newline"), password)

	_, err = ta.app.readPassword()
	require.Error(t, err)
}

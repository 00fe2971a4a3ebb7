package kdf

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestPBKDF2_KnownVectors(t *testing.T) {
	tests := []struct {
		iterations int
		want       string
	}{
		{1, "120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b"},
		{4096, "c5e478d59288c841aa530db6845c4c8d962893a001ce4e11a4963873aa98134a"},
	}

	for _, tt := range tests {
		d := PBKDF2{Length: KeyLength256, Iterations: tt.iterations, Variant: VariantSHA256}
		got, err := d.Derive(context.Background(), []byte("password"), []byte("salt"))
		require.NoError(t, err)
		assert.Equal(t, mustHex(t, tt.want), got)
	}
}

func TestPBKDF2_Deterministic(t *testing.T) {
	d := PBKDF2{Length: KeyLength256, Iterations: 1000, Variant: VariantSHA384}
	salt := bytes.Repeat([]byte{0xAB}, 48)

	k1, err := d.Derive(context.Background(), []byte("hunter2"), salt)
	require.NoError(t, err)
	k2, err := d.Derive(context.Background(), []byte("hunter2"), salt)
	require.NoError(t, err)

	assert.Len(t, k1, 32)
	assert.Equal(t, k1, k2)
}

func TestPBKDF2_DifferentParametersDifferentIdentifiersAndKeys(t *testing.T) {
	salt := []byte("some salt")
	a := PBKDF2{Length: KeyLength256, Iterations: 1000, Variant: VariantSHA384}
	b := PBKDF2{Length: KeyLength256, Iterations: 1001, Variant: VariantSHA384}
	c := PBKDF2{Length: KeyLength256, Iterations: 1000, Variant: VariantSHA512}

	assert.NotEqual(t, a.AlgorithmIdentifier(), b.AlgorithmIdentifier())
	assert.NotEqual(t, a.AlgorithmIdentifier(), c.AlgorithmIdentifier())

	ka, err := a.Derive(context.Background(), []byte("pw"), salt)
	require.NoError(t, err)
	kb, err := b.Derive(context.Background(), []byte("pw"), salt)
	require.NoError(t, err)
	kc, err := c.Derive(context.Background(), []byte("pw"), salt)
	require.NoError(t, err)

	assert.NotEqual(t, ka, kb)
	assert.NotEqual(t, ka, kc)
}

func TestPBKDF2_Errors(t *testing.T) {
	_, err := PBKDF2{Length: KeyLength256, Iterations: 10, Variant: VariantSHA384}.
		Derive(context.Background(), []byte("pw"), nil)
	assert.ErrorIs(t, err, ErrEmptySalt)

	_, err = PBKDF2{Length: KeyLength256, Iterations: 0, Variant: VariantSHA384}.
		Derive(context.Background(), []byte("pw"), []byte("salt"))
	assert.ErrorIs(t, err, ErrInvalidParameters)

	_, err = PBKDF2{Length: KeyLength256, Iterations: 10, Variant: "md5"}.
		Derive(context.Background(), []byte("pw"), []byte("salt"))
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestScrypt_RFC7914Vector(t *testing.T) {
	d := Scrypt{Length: 64, CostFactor: 1024, BlockSizeFactor: 8, ParallelizationFactor: 16}
	got, err := d.Derive(context.Background(), []byte("password"), []byte("NaCl"))
	require.NoError(t, err)

	want := "fdbabe1c9d3472007856e7190d01e9fe7c6ad7cbc8237830e77376634b373162" +
		"2eaf30d92e22a3886ff109279d9830dac727afb94a83ee6d8360cbdfa2cc0640"
	assert.Equal(t, mustHex(t, want), got)
}

func TestScrypt_InvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		d    Scrypt
	}{
		{"not power of two", Scrypt{Length: 32, CostFactor: 100, BlockSizeFactor: 1, ParallelizationFactor: 1}},
		{"cost factor one", Scrypt{Length: 32, CostFactor: 1, BlockSizeFactor: 1, ParallelizationFactor: 1}},
		{"zero block size", Scrypt{Length: 32, CostFactor: 16, BlockSizeFactor: 0, ParallelizationFactor: 1}},
		{"zero parallelization", Scrypt{Length: 32, CostFactor: 16, BlockSizeFactor: 1, ParallelizationFactor: 0}},
		{"memory limit", Scrypt{Length: 32, CostFactor: 1 << 22, BlockSizeFactor: 8, ParallelizationFactor: 1}},
		{"zero length", Scrypt{Length: 0, CostFactor: 16, BlockSizeFactor: 1, ParallelizationFactor: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.d.Derive(context.Background(), []byte("pw"), []byte("salt"))
			assert.ErrorIs(t, err, ErrInvalidParameters)
		})
	}
}

func TestScrypt_EmptySalt(t *testing.T) {
	d := Scrypt{Length: 32, CostFactor: 16, BlockSizeFactor: 1, ParallelizationFactor: 1}
	_, err := d.Derive(context.Background(), []byte("pw"), []byte{})
	assert.ErrorIs(t, err, ErrEmptySalt)
}

func TestHKDF_RFC5869NoSaltNoInfo(t *testing.T) {
	d := HKDF{Length: 42, Variant: VariantSHA256}
	ikm := bytes.Repeat([]byte{0x0b}, 22)

	got, err := d.Derive(context.Background(), ikm, nil)
	require.NoError(t, err)

	want := "8da4e775a563c18f715f802a063c5a31b8a11f5c5ee1879ec3454e5f3c738d2d9d201395faa4b61a96c8"
	assert.Equal(t, mustHex(t, want), got)
}

func TestHKDF_SHA3Variant(t *testing.T) {
	d := HKDF{Length: KeyLength256, Variant: VariantSHA3SHA512}

	k1, err := d.Derive(context.Background(), []byte("ikm"), []byte("salt"))
	require.NoError(t, err)
	k2, err := d.Derive(context.Background(), []byte("ikm"), []byte("other salt"))
	require.NoError(t, err)

	assert.Len(t, k1, 32)
	assert.NotEqual(t, k1, k2)
}

func TestAlgorithmIdentifiers(t *testing.T) {
	assert.Equal(t,
		"PBKDF2<keyLength=32;iterations=5452351;variant=sha384>",
		PBKDF2{Length: KeyLength256, Iterations: 5452351, Variant: VariantSHA384}.AlgorithmIdentifier())
	assert.Equal(t,
		"HKDF<keyLength=32;variant=sha3_sha512>",
		HKDF{Length: KeyLength256, Variant: VariantSHA3SHA512}.AlgorithmIdentifier())
	assert.Equal(t,
		"SCRYPT<keyLength=32;costFactor=64;blockSizeFactor=4;parallelizationFactor=1>",
		Scrypt{Length: KeyLength256, CostFactor: 64, BlockSizeFactor: 4, ParallelizationFactor: 1}.AlgorithmIdentifier())

	comb := NewCombination(
		PBKDF2{Length: KeyLength256, Iterations: 1, Variant: VariantSHA256},
		HKDF{Length: KeyLength256, Variant: VariantSHA256},
	)
	assert.Equal(t,
		"COMBINATION<PBKDF2<keyLength=32;iterations=1;variant=sha256>|HKDF<keyLength=32;variant=sha256>>",
		comb.AlgorithmIdentifier())
}

// recordingDeriver remembers its inputs and returns a fixed output.
type recordingDeriver struct {
	output   []byte
	password []byte
	salt     []byte
	calls    int
	onDerive func()
	err      error
}

func (r *recordingDeriver) Derive(_ context.Context, password, salt []byte) ([]byte, error) {
	r.calls++
	r.password = append([]byte(nil), password...)
	r.salt = append([]byte(nil), salt...)
	if r.onDerive != nil {
		r.onDerive()
	}
	if r.err != nil {
		return nil, r.err
	}
	return append([]byte(nil), r.output...), nil
}

func (r *recordingDeriver) AlgorithmIdentifier() string { return "RECORDING<>" }

func (r *recordingDeriver) OutputLength() KeyLength { return KeyLength(len(r.output)) }

func TestCombination_ChainsOutputsAndSharesSalt(t *testing.T) {
	s1 := &recordingDeriver{output: bytes.Repeat([]byte{1}, 4)}
	s2 := &recordingDeriver{output: bytes.Repeat([]byte{2}, 4)}
	s3 := &recordingDeriver{output: bytes.Repeat([]byte{3}, 4)}
	salt := []byte("shared-salt")

	key, err := NewCombination(s1, s2, s3).Derive(context.Background(), []byte("pass"), salt)
	require.NoError(t, err)

	assert.Equal(t, []byte("pass"), s1.password)
	assert.Equal(t, s1.output, s2.password)
	assert.Equal(t, s2.output, s3.password)
	for _, s := range []*recordingDeriver{s1, s2, s3} {
		assert.Equal(t, salt, s.salt)
	}
	assert.Equal(t, s3.output, key)
}

func TestCombination_DoesNotWipeCallerPassword(t *testing.T) {
	password := []byte("pass")
	s1 := &recordingDeriver{output: []byte{9, 9, 9, 9}}

	_, err := NewCombination(s1, &recordingDeriver{output: []byte{1, 1, 1, 1}}).
		Derive(context.Background(), password, []byte("salt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("pass"), password)
}

func TestCombination_EmptyChainFails(t *testing.T) {
	_, err := Combination{}.Derive(context.Background(), []byte("pw"), []byte("salt"))
	assert.ErrorIs(t, err, ErrEmptyCombination)

	_, err = NewCombination().Derive(context.Background(), []byte("pw"), []byte("salt"))
	assert.ErrorIs(t, err, ErrEmptyCombination)
}

func TestCombination_LengthMismatch(t *testing.T) {
	c := NewCombination(
		&recordingDeriver{output: make([]byte, 32)},
		&recordingDeriver{output: make([]byte, 16)},
	)
	_, err := c.Derive(context.Background(), []byte("pw"), []byte("salt"))
	assert.ErrorIs(t, err, ErrKeyLengthMismatch)
}

func TestCombination_CancelledBetweenStages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s1 := &recordingDeriver{output: []byte{1, 1}, onDerive: cancel}
	s2 := &recordingDeriver{output: []byte{2, 2}}
	s3 := &recordingDeriver{output: []byte{3, 3}}

	key, err := NewCombination(s1, s2, s3).Derive(ctx, []byte("pw"), []byte("salt"))
	require.Error(t, err)
	assert.Nil(t, key)
	assert.ErrorIs(t, err, ErrDerivationCancelled)
	assert.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, 1, s1.calls)
	assert.Zero(t, s2.calls, "no stage may run after cancellation")
	assert.Zero(t, s3.calls)
}

func TestCombination_AlreadyCancelledRunsNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s1 := &recordingDeriver{output: []byte{1}}
	_, err := NewCombination(s1).Derive(ctx, []byte("pw"), []byte("salt"))
	assert.ErrorIs(t, err, ErrDerivationCancelled)
	assert.Zero(t, s1.calls)
}

func TestCombination_StageErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	s1 := &recordingDeriver{output: []byte{1}}
	s2 := &recordingDeriver{output: []byte{2}, err: boom}
	s3 := &recordingDeriver{output: []byte{3}}

	_, err := NewCombination(s1, s2, s3).Derive(context.Background(), []byte("pw"), []byte("salt"))
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrDerivationCancelled)
	assert.Zero(t, s3.calls)
}

func TestCombination_RealChainDeterministic(t *testing.T) {
	c := NewCombination(
		PBKDF2{Length: KeyLength256, Iterations: 100, Variant: VariantSHA384},
		HKDF{Length: KeyLength256, Variant: VariantSHA3SHA512},
		Scrypt{Length: KeyLength256, CostFactor: 16, BlockSizeFactor: 1, ParallelizationFactor: 1},
	)
	salt := bytes.Repeat([]byte{7}, 48)

	k1, err := c.Derive(context.Background(), []byte("password"), salt)
	require.NoError(t, err)
	k2, err := c.Derive(context.Background(), []byte("password"), salt)
	require.NoError(t, err)

	assert.Len(t, k1, 32)
	assert.Equal(t, k1, k2)
	assert.Equal(t, KeyLength256, c.OutputLength())
}

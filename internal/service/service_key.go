// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-otp-vault/internal/kdf"
	"github.com/MKhiriev/go-otp-vault/internal/logger"
	"github.com/MKhiriev/go-otp-vault/internal/race"
	"github.com/MKhiriev/go-otp-vault/internal/vaultkey"
)

type keyService struct {
	signature vaultkey.Signature
	timeout   time.Duration
	lookup    func(vaultkey.Signature) (vaultkey.VaultKeyDeriver, error)
}

// NewKeyService returns a KeyService creating keys with signature. Every
// derivation is abandoned after timeout.
func NewKeyService(signature vaultkey.Signature, timeout time.Duration) KeyService {
	return &keyService{
		signature: signature,
		timeout:   timeout,
		lookup:    vaultkey.Lookup,
	}
}

func (s *keyService) CreateEncryptionKey(ctx context.Context, password []byte) (vaultkey.DerivedEncryptionKey, error) {
	deriver, err := s.lookup(s.signature)
	if err != nil {
		return vaultkey.DerivedEncryptionKey{}, err
	}

	return s.derive(ctx, "keyService.CreateEncryptionKey", func(ctx context.Context) (vaultkey.DerivedEncryptionKey, error) {
		return deriver.CreateEncryptionKey(ctx, password)
	})
}

func (s *keyService) RecreateEncryptionKey(ctx context.Context, signature vaultkey.Signature, password, salt []byte) (vaultkey.DerivedEncryptionKey, error) {
	deriver, err := s.lookup(signature)
	if err != nil {
		return vaultkey.DerivedEncryptionKey{}, err
	}

	return s.derive(ctx, "keyService.RecreateEncryptionKey", func(ctx context.Context) (vaultkey.DerivedEncryptionKey, error) {
		return deriver.RecreateEncryptionKey(ctx, password, salt)
	})
}

func (s *keyService) derive(ctx context.Context, funcName string, op race.Operation[vaultkey.DerivedEncryptionKey]) (vaultkey.DerivedEncryptionKey, error) {
	log := logger.FromContext(ctx)

	started := time.Now()
	key, err := race.WithTimeout(ctx, s.timeout, op)
	if err != nil {
		// the race may observe a cancelled ctx before the deriver does
		if isContextError(err) && !errors.Is(err, kdf.ErrDerivationCancelled) {
			err = fmt.Errorf("%w: %w", kdf.ErrDerivationCancelled, err)
		}
		log.Err(err).Str("func", funcName).Dur("elapsed", time.Since(started)).Msg("key derivation failed")
		return vaultkey.DerivedEncryptionKey{}, err
	}

	log.Debug().Str("func", funcName).
		Str("signature", key.Signature.String()).
		Dur("elapsed", time.Since(started)).
		Msg("key derived")
	return key, nil
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

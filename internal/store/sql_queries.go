// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-otp-vault/models"
)

const otpCodesTable = "otp_codes"

var otpCodeColumns = []string{
	"id",
	"kind",
	"issuer",
	"account_name",
	"secret",
	"secret_format",
	"algorithm",
	"digits",
	"period",
	"counter",
	"created_at",
	"updated_at",
}

// sqlite understands ? placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertOTPCodeQuery(r models.OTPRecord) (string, []any, error) {
	return psql.
		Insert(otpCodesTable).
		Columns(otpCodeColumns...).
		Values(
			r.ID,
			r.Kind,
			r.Issuer,
			r.AccountName,
			r.Secret,
			r.Format,
			r.Algorithm,
			r.Digits,
			r.Period,
			r.Counter,
			r.CreatedAt,
			r.UpdatedAt,
		).
		ToSql()
}

func buildSelectOTPCodeQuery(id string) (string, []any, error) {
	return psql.
		Select(otpCodeColumns...).
		From(otpCodesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectAllOTPCodesQuery() (string, []any, error) {
	return psql.
		Select(otpCodeColumns...).
		From(otpCodesTable).
		OrderBy("issuer", "account_name", "created_at").
		ToSql()
}

func buildUpdateCounterQuery(id string, current, next uint64, updatedAt time.Time) (string, []any, error) {
	return psql.
		Update(otpCodesTable).
		Set("counter", next).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"kind": string(models.KindHOTP)}).
		Where(sq.Eq{"counter": current}).
		ToSql()
}

func buildCountHOTPCodeQuery(id string) (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From(otpCodesTable).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"kind": string(models.KindHOTP)}).
		ToSql()
}

func buildDeleteOTPCodeQuery(id string) (string, []any, error) {
	return psql.
		Delete(otpCodesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

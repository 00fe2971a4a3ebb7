package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-otp-vault/internal/logger"
	"github.com/MKhiriev/go-otp-vault/internal/otp"
	"github.com/MKhiriev/go-otp-vault/models"
)

type otpCodeRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewOTPCodeRepository(db *DB, logger *logger.Logger) OTPCodeRepository {
	return &otpCodeRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOTPRecord(row rowScanner) (models.OTPRecord, error) {
	var (
		r       models.OTPRecord
		period  sql.Null[int64]
		counter sql.Null[int64]
	)

	err := row.Scan(
		&r.ID,
		&r.Kind,
		&r.Issuer,
		&r.AccountName,
		&r.Secret,
		&r.Format,
		&r.Algorithm,
		&r.Digits,
		&period,
		&counter,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return models.OTPRecord{}, err
	}

	if period.Valid {
		v := uint64(period.V)
		r.Period = &v
	}
	if counter.Valid {
		v := uint64(counter.V)
		r.Counter = &v
	}
	return r, nil
}

func (r *otpCodeRepository) Save(ctx context.Context, code models.OTPCode) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertOTPCodeQuery(otp.EncodeRecord(code))
	if err != nil {
		log.Err(err).Str("func", "otpCodeRepository.Save").Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "otpCodeRepository.Save").
			Str("id", code.ID).
			Msg("failed to insert otp code")
		return fmt.Errorf("%w (id=%s): %w", ErrExecutingStatement, code.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOTPCodeNotSaved
	}

	return nil
}

func (r *otpCodeRepository) Get(ctx context.Context, id string) (models.OTPCode, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOTPCodeQuery(id)
	if err != nil {
		return models.OTPCode{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanOTPRecord(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.OTPCode{}, fmt.Errorf("%w: %s", ErrOTPCodeNotFound, id)
	}
	if err != nil {
		log.Err(err).
			Str("func", "otpCodeRepository.Get").
			Str("id", id).
			Msg("failed to scan otp code row")
		return models.OTPCode{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	code, err := otp.DecodeRecord(record)
	if err != nil {
		log.Err(err).
			Str("func", "otpCodeRepository.Get").
			Str("id", id).
			Msg("stored otp code cannot be decoded")
		return models.OTPCode{}, fmt.Errorf("decode otp code %s: %w", id, err)
	}

	return code, nil
}

func (r *otpCodeRepository) List(ctx context.Context) ([]models.OTPCode, []models.OTPDecodeFailure, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllOTPCodesQuery()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "otpCodeRepository.List").Msg("failed to query otp codes")
		return nil, nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var (
		codes    []models.OTPCode
		failures []models.OTPDecodeFailure
	)
	for rows.Next() {
		record, err := scanOTPRecord(rows)
		if err != nil {
			log.Err(err).Str("func", "otpCodeRepository.List").Msg("failed to scan otp code row")
			return nil, nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		code, err := otp.DecodeRecord(record)
		if err != nil {
			var decodeErr models.OTPDecodeError
			if !errors.As(err, &decodeErr) {
				return nil, nil, fmt.Errorf("decode otp code %s: %w", record.ID, err)
			}
			log.Warn().
				Str("func", "otpCodeRepository.List").
				Str("id", record.ID).
				Str("reason", decodeErr.Error()).
				Msg("skipping otp code that cannot be decoded")
			failures = append(failures, models.OTPDecodeFailure{ID: record.ID, Err: decodeErr})
			continue
		}
		codes = append(codes, code)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "otpCodeRepository.List").Msg("error occurred during rows iteration")
		return nil, nil, fmt.Errorf("%w: %w", ErrExecutingQuery, rowsErr)
	}

	return codes, failures, nil
}

func (r *otpCodeRepository) UpdateCounter(ctx context.Context, id string, current, next uint64) error {
	query, args, err := buildUpdateCounterQuery(id, current, next, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.execAffectingOne(ctx, "otpCodeRepository.UpdateCounter", id, query, args)
	if !errors.Is(err, ErrOTPCodeNotFound) {
		return err
	}

	// nothing matched: either the entry is gone or someone advanced it first
	query, args, err = buildCountHOTPCodeQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	var count int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "otpCodeRepository.UpdateCounter").Str("id", id).Msg("failed to check hotp entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if count == 0 {
		return fmt.Errorf("%w: %s", ErrOTPCodeNotFound, id)
	}

	return fmt.Errorf("%w: %s", ErrCounterConflict, id)
}

func (r *otpCodeRepository) Delete(ctx context.Context, id string) error {
	query, args, err := buildDeleteOTPCodeQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.execAffectingOne(ctx, "otpCodeRepository.Delete", id, query, args)
}

func (r *otpCodeRepository) execAffectingOne(ctx context.Context, funcName, id, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("id", id).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrOTPCodeNotFound, id)
	}

	return nil
}

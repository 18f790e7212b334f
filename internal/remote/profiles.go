package remote

import (
	"context"
	"time"

	"github.com/lvalenti/liftlog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// Profile is one row of the profiles table, 1:1 with a user identity.
type Profile struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (s *Store) GetProfile(ctx context.Context, id string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.profiles.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("profile.id", id))

	return s.getProfile(ctx, `SELECT id, email, username, password_hash, created_at FROM profiles WHERE id = $1;`, id)
}

func (s *Store) GetProfileByEmail(ctx context.Context, email string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.profiles.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.getProfile(ctx, `SELECT id, email, username, password_hash, created_at FROM profiles WHERE email = $1;`, email)
}

func (s *Store) InsertProfile(ctx context.Context, profile Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.profiles.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("profile.id", profile.ID))

	_, err = s.db.Exec(
		ctx,
		`INSERT INTO profiles (id, email, username, password_hash, created_at)
			VALUES ($1, $2, $3, $4, $5);`,
		profile.ID, profile.Email, nullable(profile.Username), profile.PasswordHash, profile.CreatedAt,
	)
	return err
}

func (s *Store) getProfile(ctx context.Context, query string, arg interface{}) (*Profile, error) {
	rows, err := s.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrProfileNotFound
	}

	var p Profile
	var username *string
	if err := rows.Scan(&p.ID, &p.Email, &username, &p.PasswordHash, &p.CreatedAt); err != nil {
		return nil, err
	}
	if username != nil {
		p.Username = *username
	}
	return &p, nil
}

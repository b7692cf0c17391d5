package users

import (
	"context"
	"errors"

	"github.com/2beens/titanlift/internal/db"
	"github.com/2beens/titanlift/internal/telemetry/tracing"
	"github.com/2beens/titanlift/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db db.Conn
}

func NewRepo(conn db.Conn) *Repo {
	return &Repo{
		db: conn,
	}
}

func (r *Repo) Create(ctx context.Context, user NewUser) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	created := &User{}
	err = r.db.QueryRow(ctx, `
		INSERT INTO users (username, current_weight_kg)
		VALUES ($1, $2)
		RETURNING id, username, current_weight_kg, created_at
	`, user.Username, user.CurrentWeightKg).Scan(
		&created.ID, &created.Username, &created.CurrentWeightKg, &created.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUsernameTaken
		}
		if pkg.IsCheckViolationError(err) {
			return nil, ErrInvalidUser
		}
		return nil, pkg.StoreFailure("users.create", err)
	}

	return created, nil
}

func (r *Repo) Get(ctx context.Context, id uuid.UUID) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	u := &User{}
	err = r.db.QueryRow(ctx, `
		SELECT id, username, current_weight_kg, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Username, &u.CurrentWeightKg, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, pkg.StoreFailure("users.get", err)
	}

	return u, nil
}

// UpdateWeight sets the body weight the calorie estimate uses for the user's next completions.
func (r *Repo) UpdateWeight(ctx context.Context, id uuid.UUID, weightKg float64) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateweight")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user.id", id.String()))

	u := &User{}
	err = r.db.QueryRow(ctx, `
		UPDATE users
		SET current_weight_kg = $2
		WHERE id = $1
		RETURNING id, username, current_weight_kg, created_at
	`, id, weightKg).Scan(&u.ID, &u.Username, &u.CurrentWeightKg, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		if pkg.IsCheckViolationError(err) {
			return nil, ErrInvalidUser
		}
		return nil, pkg.StoreFailure("users.updateweight", err)
	}

	return u, nil
}

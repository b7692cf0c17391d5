package templates

import (
	"context"
	"errors"
	"fmt"

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

func (r *Repo) Create(ctx context.Context, t NewTemplate) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	created := &Template{}
	err = r.db.QueryRow(ctx, `
		INSERT INTO workout_templates (user_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, name, description, created_at
	`, t.UserID, t.Name, t.Description).Scan(
		&created.ID, &created.UserID, &created.Name, &created.Description, &created.CreatedAt,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("%w: unknown user", ErrInvalidTemplate)
		}
		return nil, pkg.StoreFailure("templates.create", err)
	}

	return created, nil
}

// List returns the templates of a user, or all templates when userID is nil.
func (r *Repo) List(ctx context.Context, userID *uuid.UUID) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, description, created_at
		FROM workout_templates
		WHERE $1::uuid IS NULL OR user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, pkg.StoreFailure("templates.list", err)
	}
	defer rows.Close()

	list := make([]Template, 0)
	for rows.Next() {
		var t Template
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Description, &t.CreatedAt); err != nil {
			return nil, pkg.StoreFailure("templates.list.scan", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, pkg.StoreFailure("templates.list", err)
	}

	span.SetAttributes(attribute.Int("templates", len(list)))
	return list, nil
}

func (r *Repo) Get(ctx context.Context, id uuid.UUID) (_ *TemplateWithExercises, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	t := &TemplateWithExercises{}
	err = r.db.QueryRow(ctx, `
		SELECT id, user_id, name, description, created_at
		FROM workout_templates
		WHERE id = $1
	`, id).Scan(&t.Template.ID, &t.Template.UserID, &t.Template.Name, &t.Template.Description, &t.Template.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, pkg.StoreFailure("templates.get", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT te.id, te.template_id, te.exercise_id, e.name, te.order_index, te.target_sets, te.target_reps, te.target_weight_kg
		FROM template_exercises te
		JOIN exercises e ON te.exercise_id = e.id
		WHERE te.template_id = $1
		ORDER BY te.order_index ASC
	`, id)
	if err != nil {
		return nil, pkg.StoreFailure("templates.get.exercises", err)
	}
	defer rows.Close()

	t.Exercises = make([]TemplateExercise, 0)
	for rows.Next() {
		var e TemplateExercise
		if err := rows.Scan(
			&e.ID, &e.TemplateID, &e.ExerciseID, &e.ExerciseName,
			&e.OrderIndex, &e.TargetSets, &e.TargetReps, &e.TargetWeightKg,
		); err != nil {
			return nil, pkg.StoreFailure("templates.get.exercises.scan", err)
		}
		t.Exercises = append(t.Exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, pkg.StoreFailure("templates.get.exercises", err)
	}

	return t, nil
}

func (r *Repo) AddExercise(ctx context.Context, templateID uuid.UUID, target ExerciseTarget) (_ *TemplateExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.addexercise")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := r.lockTemplate(ctx, templateID); err != nil {
		return nil, err
	}
	return r.insertExercise(ctx, templateID, target)
}

// ReplaceExercises swaps the whole exercise list of a template in one transaction,
// on any failure the previous list is kept.
func (r *Repo) ReplaceExercises(ctx context.Context, templateID uuid.UUID, targets []ExerciseTarget) (_ []TemplateExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.replaceexercises")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("exercises", len(targets)))

	replaced := make([]TemplateExercise, 0, len(targets))
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		txRepo := NewRepo(tx)
		if err := txRepo.lockTemplate(ctx, templateID); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM template_exercises WHERE template_id = $1`, templateID); err != nil {
			return pkg.StoreFailure("templates.replace.delete", err)
		}

		for _, target := range targets {
			inserted, err := txRepo.insertExercise(ctx, templateID, target)
			if err != nil {
				return err
			}
			replaced = append(replaced, *inserted)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, db.ErrTxFailed) && !errors.Is(err, pkg.ErrStoreUnavailable) {
			return nil, pkg.StoreFailure("templates.replace.tx", err)
		}
		return nil, err
	}

	return replaced, nil
}

// lockTemplate checks the template exists. The row lock only holds when r runs in a transaction.
func (r *Repo) lockTemplate(ctx context.Context, templateID uuid.UUID) error {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT id FROM workout_templates WHERE id = $1 FOR UPDATE`, templateID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTemplateNotFound
		}
		return pkg.StoreFailure("templates.lock", err)
	}
	return nil
}

func (r *Repo) insertExercise(ctx context.Context, templateID uuid.UUID, target ExerciseTarget) (*TemplateExercise, error) {
	inserted := &TemplateExercise{}
	err := r.db.QueryRow(ctx, `
		WITH inserted AS (
			INSERT INTO template_exercises (template_id, exercise_id, order_index, target_sets, target_reps, target_weight_kg)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, template_id, exercise_id, order_index, target_sets, target_reps, target_weight_kg
		)
		SELECT i.id, i.template_id, i.exercise_id, e.name, i.order_index, i.target_sets, i.target_reps, i.target_weight_kg
		FROM inserted i
		JOIN exercises e ON e.id = i.exercise_id
	`,
		templateID,
		target.ExerciseID,
		target.OrderIndex,
		target.TargetSets,
		target.TargetReps,
		target.TargetWeightKg,
	).Scan(
		&inserted.ID, &inserted.TemplateID, &inserted.ExerciseID, &inserted.ExerciseName,
		&inserted.OrderIndex, &inserted.TargetSets, &inserted.TargetReps, &inserted.TargetWeightKg,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("%w: unknown exercise %s", ErrInvalidTemplate, target.ExerciseID)
		}
		if pkg.IsCheckViolationError(err) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
		}
		return nil, pkg.StoreFailure("templates.insert.exercise", err)
	}
	return inserted, nil
}

package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/assessment"
	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
	"github.com/dna-hub/dna-coaching-hub/pkg/retry"
)

// ══════════════════════════════════════════════════════════════════════════════
// RESULT REPOSITORY IMPLEMENTATION
// Implements assessment.ResultStore. Saves are a single atomic insert and are
// never retried here; reads go through the store retrier because a transient
// read failure would otherwise fail the eligibility gate closed needlessly.
// ══════════════════════════════════════════════════════════════════════════════

// ResultRepository implements assessment.ResultStore for PostgreSQL.
type ResultRepository struct {
	conn    *Connection
	retrier *retry.Retrier
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(conn *Connection) *ResultRepository {
	return &ResultRepository{
		conn:    conn,
		retrier: retry.StoreRetrier(),
	}
}

// Save persists a result. Results are immutable; a duplicate ID is a caller
// bug and surfaces as an invalid-state error rather than an upsert.
func (r *ResultRepository) Save(ctx context.Context, result *assessment.Result) error {
	query := `
		INSERT INTO assessment_results (
			id, user_id, default_type, awareness_score, awareness_percentage,
			path_choice, subtype, subtype_completion, validation, answers, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	answersJSON, err := json.Marshal(result.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}
	validationJSON, err := json.Marshal(result.Validation)
	if err != nil {
		return fmt.Errorf("failed to marshal validation tags: %w", err)
	}

	_, err = r.conn.Exec(ctx, query,
		result.ID,
		result.UserID.String(),
		result.DefaultType.String(),
		result.AwarenessScore.Int(),
		result.AwarenessPercentage.Int(),
		result.PathChoice.String(),
		result.Subtype.String(),
		result.SubtypeCompletion.Int(),
		validationJSON,
		answersJSON,
		result.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return shared.WrapError("assessment", "Save", shared.ErrAlreadyExists, "result already persisted", err)
		}
		return shared.WrapError("assessment", "Save", shared.ErrServiceUnavailable, "failed to persist result", err)
	}

	return nil
}

// GetLatest returns the most recent result for a user.
func (r *ResultRepository) GetLatest(ctx context.Context, userID shared.UserID) (*assessment.Result, error) {
	query := `
		SELECT id, user_id, default_type, awareness_score, awareness_percentage,
			   path_choice, subtype, subtype_completion, validation, answers, created_at
		FROM assessment_results
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var result *assessment.Result
	err := r.retrier.Do(ctx, func(ctx context.Context) error {
		row := r.conn.QueryRow(ctx, query, userID.String())
		res, err := scanResult(row)
		if err != nil {
			if IsNoRows(err) {
				return retry.Permanent(assessment.ErrResultNotFound)
			}
			return retry.Retryable(err)
		}
		result = res
		return nil
	})
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, assessment.ErrResultNotFound
		}
		return nil, shared.WrapError("assessment", "GetLatest", shared.ErrServiceUnavailable, "failed to load latest result", err)
	}

	return result, nil
}

// GetHistory returns all results for a user, newest first.
func (r *ResultRepository) GetHistory(ctx context.Context, userID shared.UserID, limit int) ([]*assessment.Result, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT id, user_id, default_type, awareness_score, awareness_percentage,
			   path_choice, subtype, subtype_completion, validation, answers, created_at
		FROM assessment_results
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.conn.Query(ctx, query, userID.String(), limit)
	if err != nil {
		return nil, shared.WrapError("assessment", "GetHistory", shared.ErrServiceUnavailable, "failed to load result history", err)
	}
	defer rows.Close()

	results := make([]*assessment.Result, 0, limit)
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// rowScanner abstracts pgx.Row and pgx.Rows for scanning.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanResult maps a database row to a domain Result.
func scanResult(row rowScanner) (*assessment.Result, error) {
	var (
		res            assessment.Result
		id, userID     uuid.UUID
		defaultType    string
		awarenessScore int
		awarenessPct   int
		pathChoice     string
		subtype        string
		completion     int
		validationJSON []byte
		answersJSON    []byte
	)

	err := row.Scan(
		&id,
		&userID,
		&defaultType,
		&awarenessScore,
		&awarenessPct,
		&pathChoice,
		&subtype,
		&completion,
		&validationJSON,
		&answersJSON,
		&res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.ID = id
	res.UserID = shared.UserID(userID.String())
	res.DefaultType = assessment.DefaultType(defaultType)
	res.AwarenessScore = assessment.AwarenessScore(awarenessScore)
	res.AwarenessPercentage = shared.Percentage(awarenessPct)
	res.PathChoice = assessment.PathChoice(pathChoice)
	res.Subtype = assessment.Subtype(subtype)
	res.SubtypeCompletion = shared.Percentage(completion)

	if err := json.Unmarshal(validationJSON, &res.Validation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal validation tags: %w", err)
	}
	if err := json.Unmarshal(answersJSON, &res.Answers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
	}

	return &res, nil
}

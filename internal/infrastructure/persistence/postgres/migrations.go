package postgres

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATION SQL
// Embedded as constants so the binary carries its own schema. Results are
// append-only; there is no UPDATE path for assessment_results by design of
// the domain (results are superseded, never mutated).
// ══════════════════════════════════════════════════════════════════════════════

const migration001Up = `
CREATE TABLE IF NOT EXISTS assessment_results (
    id UUID PRIMARY KEY,
    user_id UUID NOT NULL,
    default_type TEXT NOT NULL,
    awareness_score SMALLINT NOT NULL CHECK (awareness_score BETWEEN 0 AND 6),
    awareness_percentage SMALLINT NOT NULL CHECK (awareness_percentage BETWEEN 0 AND 100),
    path_choice TEXT NOT NULL,
    subtype TEXT NOT NULL,
    subtype_completion SMALLINT NOT NULL CHECK (subtype_completion BETWEEN 0 AND 100),
    validation JSONB NOT NULL DEFAULT '[]'::jsonb,
    answers JSONB NOT NULL,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL
);

COMMENT ON TABLE assessment_results IS 'Immutable Entrepreneurial DNA assessment results, one row per completed run';
COMMENT ON COLUMN assessment_results.answers IS 'Full answer ledger of the run, ordered by question id';
`

const migration001Down = `
DROP TABLE IF EXISTS assessment_results;
`

const migration002Up = `
CREATE INDEX IF NOT EXISTS idx_assessment_results_user_created
    ON assessment_results (user_id, created_at DESC);

CREATE INDEX IF NOT EXISTS idx_assessment_results_subtype
    ON assessment_results (subtype);
`

const migration002Down = `
DROP INDEX IF EXISTS idx_assessment_results_subtype;
DROP INDEX IF EXISTS idx_assessment_results_user_created;
`

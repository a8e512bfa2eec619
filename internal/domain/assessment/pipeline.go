package assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// PIPELINE ORCHESTRATOR
// Strictly linear state machine over the five stages. A stage advances only
// after its classifier has produced a total result; re-entering an earlier
// stage by overwriting one of its answers invalidates every later stage,
// because the stage-4 bank selection depends on the stage-1 and stage-3
// outputs.
// ══════════════════════════════════════════════════════════════════════════════

// Pipeline is a single user's in-progress run. It is not safe for concurrent
// use; each run owns its own ledger and is driven by one caller.
type Pipeline struct {
	catalog *Catalog
	userID  shared.UserID
	ledger  *Ledger
	stage   Stage

	s1 *Stage1Result
	s2 *Stage2Result
	s3 *Stage3Result
	s4 *Stage4Result
	s5 *Stage5Result
}

// NewPipeline starts an empty run at stage 1.
func NewPipeline(catalog *Catalog, userID shared.UserID) *Pipeline {
	return &Pipeline{
		catalog: catalog,
		userID:  userID,
		ledger:  NewLedger(),
		stage:   StageDefaultType,
	}
}

// CurrentStage returns the stage the run is positioned at.
func (p *Pipeline) CurrentStage() Stage {
	return p.stage
}

// Ledger returns a copy of the run's answers so far.
func (p *Pipeline) Ledger() *Ledger {
	return p.ledger.Clone()
}

// Questions returns the question bank of the current stage. For stages 2, 4
// and 5 the bank depends on earlier stage outputs, which are guaranteed to
// exist once the run has advanced this far.
func (p *Pipeline) Questions() []Question {
	switch p.stage {
	case StageDefaultType:
		return p.catalog.Stage1Questions()
	case StageAwareness:
		return p.catalog.AwarenessQuestions(p.s1.DefaultType)
	case StagePath:
		return []Question{p.catalog.PathQuestion()}
	case StageSubtype:
		return p.catalog.SubtypeQuestions(p.s1.DefaultType, p.s3.PathChoice)
	case StageValidation:
		return p.catalog.ValidationQuestions(p.s1.DefaultType)
	default:
		return nil
	}
}

// RecordAnswer records an answer for the current stage or any earlier one.
// Answering a question of an already-completed stage rewinds the run to that
// stage and discards every later stage result, forcing recomputation.
// Questions of stages not yet reached are rejected.
func (p *Pipeline) RecordAnswer(q QuestionID, o OptionID) error {
	owner, ok := p.catalog.StageOf(q)
	if !ok {
		return ErrUnknownQuestion
	}
	if !o.IsValid() {
		return ErrUnknownOption
	}
	if owner > p.stage {
		return ErrStageNotReady
	}
	if owner < p.stage {
		p.rewindTo(owner)
	}
	p.ledger.Set(q, o)
	return nil
}

// rewindTo moves the run back to an earlier stage and drops the results of
// that stage and everything after it.
func (p *Pipeline) rewindTo(s Stage) {
	p.stage = s
	if s <= StageDefaultType {
		p.s1 = nil
	}
	if s <= StageAwareness {
		p.s2 = nil
	}
	if s <= StagePath {
		p.s3 = nil
	}
	if s <= StageSubtype {
		p.s4 = nil
	}
	if s <= StageValidation {
		p.s5 = nil
	}
}

// AdvanceStage runs the classifier of the current stage and, on success,
// moves the run forward. A stage with unanswered questions returns
// ErrIncompleteAnswers and the run stays put.
func (p *Pipeline) AdvanceStage() error {
	switch p.stage {
	case StageDefaultType:
		res, err := RunStage1(p.catalog, p.ledger)
		if err != nil {
			return err
		}
		p.s1 = &res
	case StageAwareness:
		res, err := RunStage2(p.catalog, p.ledger, p.s1.DefaultType)
		if err != nil {
			return err
		}
		p.s2 = &res
	case StagePath:
		res, err := RunStage3(p.catalog, p.ledger)
		if err != nil {
			return err
		}
		p.s3 = &res
	case StageSubtype:
		res, err := RunStage4(p.catalog, p.ledger, p.s1.DefaultType, p.s3.PathChoice)
		if err != nil {
			return err
		}
		p.s4 = &res
	case StageValidation:
		res, err := RunStage5(p.catalog, p.ledger, p.s1.DefaultType, p.s4.Subtype)
		if err != nil {
			return err
		}
		p.s5 = &res
	case StageComplete:
		return ErrRunNotComplete
	}
	p.stage = p.stage.Next()
	return nil
}

// Complete assembles the terminal Result. The run must have advanced through
// all five stages; the ledger is handed over to the Result and the caller
// should discard the pipeline afterwards.
func (p *Pipeline) Complete(id uuid.UUID, createdAt time.Time) (*Result, error) {
	if !p.stage.IsTerminal() {
		return nil, ErrRunNotComplete
	}
	return NewResult(p.catalog, id, p.userID, *p.s1, *p.s2, *p.s3, *p.s4, *p.s5, p.ledger, createdAt)
}

// CompletePipeline runs all five classifiers over a full ledger in one shot
// and assembles the Result. It is a pure function of its inputs: two calls
// with identical complete ledgers produce identical Results except for the
// ID and timestamp supplied by the caller.
func CompletePipeline(
	catalog *Catalog,
	userID shared.UserID,
	ledger *Ledger,
	id uuid.UUID,
	createdAt time.Time,
) (*Result, error) {
	s1, err := RunStage1(catalog, ledger)
	if err != nil {
		return nil, err
	}
	s2, err := RunStage2(catalog, ledger, s1.DefaultType)
	if err != nil {
		return nil, err
	}
	s3, err := RunStage3(catalog, ledger)
	if err != nil {
		return nil, err
	}
	s4, err := RunStage4(catalog, ledger, s1.DefaultType, s3.PathChoice)
	if err != nil {
		return nil, err
	}
	s5, err := RunStage5(catalog, ledger, s1.DefaultType, s4.Subtype)
	if err != nil {
		return nil, err
	}
	return NewResult(catalog, id, userID, s1, s2, s3, s4, s5, ledger, createdAt)
}

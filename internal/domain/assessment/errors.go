package assessment

import (
	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
)

// Assessment domain errors. All of them carry a shared base kind so callers
// can match with errors.Is against either the concrete error or the kind.
var (
	// ErrIncompleteAnswers - a stage was invoked before all of its required
	// questions were answered. Recovered by the caller re-prompting; the
	// engine never silently defaults a missing answer.
	ErrIncompleteAnswers = shared.NewDomainError("assessment", "Classify", shared.ErrIncomplete, "not all required questions are answered")

	// ErrInvalidAnswerCount - terminal assembly was attempted with a wrong
	// total question count. Fatal to the run; no Result may be persisted.
	ErrInvalidAnswerCount = shared.NewDomainError("assessment", "Complete", shared.ErrInvalidState, "answer ledger does not match the configured question count")

	// ErrStoreUnavailable - the result store could not be reached. The
	// eligibility gate fails closed on this error.
	ErrStoreUnavailable = shared.NewDomainError("assessment", "Store", shared.ErrServiceUnavailable, "result store unavailable")

	// ErrResultNotFound - no persisted result exists for the user.
	ErrResultNotFound = shared.NewDomainError("assessment", "GetLatest", shared.ErrNotFound, "no assessment result for user")

	// ErrRetakeNotAllowed - the retake cooldown window has not elapsed.
	ErrRetakeNotAllowed = shared.NewDomainError("assessment", "CheckEligibility", shared.ErrForbidden, "retake window has not elapsed")

	// ErrUnknownQuestion - an answer references a question outside the catalog.
	ErrUnknownQuestion = shared.NewDomainError("assessment", "Record", shared.ErrInvalidInput, "unknown question ID")

	// ErrUnknownOption - an answer references an option the question does not have.
	ErrUnknownOption = shared.NewDomainError("assessment", "Record", shared.ErrInvalidInput, "unknown option for question")

	// ErrStageNotReady - a stage was invoked before the prior stage produced
	// a valid result (e.g. stage 4 before the path choice is recorded).
	ErrStageNotReady = shared.NewDomainError("assessment", "Advance", shared.ErrStateTransition, "prior stage has not produced a result")

	// ErrRunNotComplete - result assembly was requested before StageComplete.
	ErrRunNotComplete = shared.NewDomainError("assessment", "Complete", shared.ErrInvalidState, "pipeline has not reached the terminal stage")

	// ErrInvalidCatalog - the question catalog failed load-time validation.
	// This is a configuration defect; it must never surface mid-pipeline.
	ErrInvalidCatalog = shared.NewDomainError("assessment", "LoadCatalog", shared.ErrInvalidConfiguration, "question catalog is invalid")
)

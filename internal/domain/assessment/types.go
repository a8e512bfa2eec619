// Package assessment содержит ядро движка Entrepreneurial DNA:
// леджер ответов, пять классификаторов, конвейер и гейт повторного прохождения.
// Это чистая бизнес-логика - здесь нет внешних зависимостей.
package assessment

import (
	"time"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// QUESTION & OPTION IDENTIFIERS
// ══════════════════════════════════════════════════════════════════════════════

// QuestionID identifies a question in the active catalog.
type QuestionID int

// IsValid checks that the question ID is positive.
func (q QuestionID) IsValid() bool {
	return q > 0
}

// OptionID identifies one of the fixed options of a question ("A".."D").
type OptionID string

const (
	OptionA OptionID = "A"
	OptionB OptionID = "B"
	OptionC OptionID = "C"
	OptionD OptionID = "D"
)

// IsValid checks that the option ID is one of the fixed set.
func (o OptionID) IsValid() bool {
	switch o {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	default:
		return false
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// STAGES
// ══════════════════════════════════════════════════════════════════════════════

// Stage identifies a pipeline stage. Transitions are strictly linear and
// forward-only; a stage may only be re-entered by overwriting its answers,
// which invalidates every later stage.
type Stage int

const (
	// StageDefaultType is stage 1: the six forced-choice default-type questions.
	StageDefaultType Stage = iota + 1
	// StageAwareness is stage 2: the six opposite-type awareness questions.
	StageAwareness
	// StagePath is stage 3: the single Early/Developed path choice.
	StagePath
	// StageSubtype is stage 4: the six subtype-detection questions.
	StageSubtype
	// StageValidation is stage 5: the four validation questions.
	StageValidation
	// StageComplete is the terminal state; the Result may now be assembled.
	StageComplete
)

// IsValid checks that the stage is known.
func (s Stage) IsValid() bool {
	return s >= StageDefaultType && s <= StageComplete
}

// IsTerminal reports whether the pipeline has finished all stages.
func (s Stage) IsTerminal() bool {
	return s == StageComplete
}

// Next returns the stage that follows s. StageComplete stays put.
func (s Stage) Next() Stage {
	if s >= StageComplete {
		return StageComplete
	}
	return s + 1
}

// String returns the string representation of the stage.
func (s Stage) String() string {
	switch s {
	case StageDefaultType:
		return "default_type"
	case StageAwareness:
		return "awareness"
	case StagePath:
		return "path"
	case StageSubtype:
		return "subtype"
	case StageValidation:
		return "validation"
	case StageComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// STAGE 1 — DEFAULT TYPE
// ══════════════════════════════════════════════════════════════════════════════

// DefaultType is the primary classification produced by stage 1.
type DefaultType string

const (
	// DefaultArchitect - logic-first operating mode (Thought → Emotion → Thought).
	DefaultArchitect DefaultType = "architect"
	// DefaultAlchemist - emotion-first operating mode (Emotion → Thought → Emotion).
	DefaultAlchemist DefaultType = "alchemist"
	// DefaultBlurred - neither mode dominates; identity is blurred.
	DefaultBlurred DefaultType = "blurred"
)

// IsValid checks that the default type is known.
func (d DefaultType) IsValid() bool {
	switch d {
	case DefaultArchitect, DefaultAlchemist, DefaultBlurred:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (d DefaultType) String() string {
	return string(d)
}

// Opposite returns the opposite operating mode. Blurred has no single
// opposite; its awareness bank mixes both, so Opposite returns Blurred.
func (d DefaultType) Opposite() DefaultType {
	switch d {
	case DefaultArchitect:
		return DefaultAlchemist
	case DefaultAlchemist:
		return DefaultArchitect
	default:
		return DefaultBlurred
	}
}

// TypeCategory is the stage-1 category an option maps to. This is a closed
// set: an option that fails to map is a configuration defect caught at load.
type TypeCategory string

const (
	// CategoryArchitect counts toward the Architect default type.
	CategoryArchitect TypeCategory = "architect"
	// CategoryAlchemist counts toward the Alchemist default type.
	CategoryAlchemist TypeCategory = "alchemist"
	// CategoryBlurred marks a mixed-mode answer; it counts toward neither type.
	CategoryBlurred TypeCategory = "blurred"
	// CategoryUndeclared marks an indecisive answer; it counts toward neither type.
	CategoryUndeclared TypeCategory = "undeclared"
)

// IsValid checks that the category is known.
func (c TypeCategory) IsValid() bool {
	switch c {
	case CategoryArchitect, CategoryAlchemist, CategoryBlurred, CategoryUndeclared:
		return true
	default:
		return false
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// STAGE 2 — AWARENESS
// ══════════════════════════════════════════════════════════════════════════════

// AwarenessScore is the raw agreement count with opposite-type statements (0-6).
type AwarenessScore int

const (
	// MinAwarenessScore is the lowest raw score.
	MinAwarenessScore AwarenessScore = 0
	// MaxAwarenessScore is the highest raw score.
	MaxAwarenessScore AwarenessScore = 6
)

// IsValid checks that the score is within range.
func (a AwarenessScore) IsValid() bool {
	return a >= MinAwarenessScore && a <= MaxAwarenessScore
}

// Int returns the underlying int value.
func (a AwarenessScore) Int() int {
	return int(a)
}

// Percentage maps the raw score to the awareness percentage.
// The table is hand-specified and intentionally non-linear: 0 and 1 both
// map to 20. It must not be replaced with score*10 arithmetic.
func (a AwarenessScore) Percentage() shared.Percentage {
	switch a {
	case 6:
		return 70
	case 5:
		return 60
	case 4:
		return 50
	case 3:
		return 40
	case 2:
		return 30
	default:
		return 20
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// STAGE 3 — PATH CHOICE
// ══════════════════════════════════════════════════════════════════════════════

// PathChoice is the stage-3 forced choice. It carries no weight in the final
// classification; it only selects the stage-4 question bank variant.
type PathChoice string

const (
	// PathEarly - early-stage entrepreneur question bank.
	PathEarly PathChoice = "early"
	// PathDeveloped - developed-business question bank.
	PathDeveloped PathChoice = "developed"
)

// IsValid checks that the path choice is known.
func (p PathChoice) IsValid() bool {
	return p == PathEarly || p == PathDeveloped
}

// String returns the string representation.
func (p PathChoice) String() string {
	return string(p)
}

// ══════════════════════════════════════════════════════════════════════════════
// STAGE 4 — SUBTYPES
// ══════════════════════════════════════════════════════════════════════════════

// Subtype is the finer-grained classification within a DefaultType family.
type Subtype string

// The twelve subtypes, four per family. Order within each family below is the
// declared priority order used for the stage-4 tie-break.
const (
	// Architect family
	SubtypeMasterStrategist   Subtype = "master-strategist"
	SubtypeSystemisedBuilder  Subtype = "systemised-builder"
	SubtypeInternalAnalyzer   Subtype = "internal-analyzer"
	SubtypeUltimateStrategist Subtype = "ultimate-strategist"

	// Alchemist family
	SubtypeVisionaryOracle       Subtype = "visionary-oracle"
	SubtypeMagneticPerfectionist Subtype = "magnetic-perfectionist"
	SubtypeEnergeticEmpath       Subtype = "energetic-empath"
	SubtypeUltimateAlchemist     Subtype = "ultimate-alchemist"

	// Blurred family
	SubtypeOverthinker  Subtype = "overthinker"
	SubtypePerformer    Subtype = "performer"
	SubtypeSelfForsaker Subtype = "self-forsaker"
	SubtypeSelfBetrayer Subtype = "self-betrayer"
)

// subtypeFamilies maps each default type to its candidate subtypes in
// declared priority order. The slice order is load-bearing: the stage-4
// tie-break picks the first-declared subtype among those tied for maximum.
var subtypeFamilies = map[DefaultType][]Subtype{
	DefaultArchitect: {
		SubtypeMasterStrategist,
		SubtypeSystemisedBuilder,
		SubtypeInternalAnalyzer,
		SubtypeUltimateStrategist,
	},
	DefaultAlchemist: {
		SubtypeVisionaryOracle,
		SubtypeMagneticPerfectionist,
		SubtypeEnergeticEmpath,
		SubtypeUltimateAlchemist,
	},
	DefaultBlurred: {
		SubtypeOverthinker,
		SubtypePerformer,
		SubtypeSelfForsaker,
		SubtypeSelfBetrayer,
	},
}

// SubtypeFamily returns the candidate subtypes for a default type, in
// declared priority order. The returned slice must not be mutated.
func SubtypeFamily(d DefaultType) []Subtype {
	return subtypeFamilies[d]
}

// IsValid checks that the subtype is one of the twelve known labels.
func (s Subtype) IsValid() bool {
	return s.Family().IsValid()
}

// String returns the string representation.
func (s Subtype) String() string {
	return string(s)
}

// Family returns the default type whose family the subtype belongs to,
// or an empty DefaultType for unknown labels.
func (s Subtype) Family() DefaultType {
	for family, members := range subtypeFamilies {
		for _, member := range members {
			if member == s {
				return family
			}
		}
	}
	return ""
}

// ══════════════════════════════════════════════════════════════════════════════
// STAGE 5 — VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// AlignmentTag annotates how strongly a validation answer aligns with the
// classified subtype. Tags never alter DefaultType or Subtype.
type AlignmentTag string

const (
	// AlignmentStrong - the answer maps to the classified subtype itself.
	AlignmentStrong AlignmentTag = "strong"
	// AlignmentPartial - the answer maps to another subtype of the same family.
	AlignmentPartial AlignmentTag = "partial"
	// AlignmentPoor - the answer maps outside the classified family.
	AlignmentPoor AlignmentTag = "poor"
)

// IsValid checks that the tag is known.
func (a AlignmentTag) IsValid() bool {
	switch a {
	case AlignmentStrong, AlignmentPartial, AlignmentPoor:
		return true
	default:
		return false
	}
}

// Label returns the human-readable label for the tag.
func (a AlignmentTag) Label() string {
	switch a {
	case AlignmentStrong:
		return "Strong alignment"
	case AlignmentPartial:
		return "Partial alignment"
	case AlignmentPoor:
		return "Poor alignment"
	default:
		return "Unknown"
	}
}

// QuestionAlignment pairs a validation question with its alignment tag.
type QuestionAlignment struct {
	QuestionID QuestionID   `json:"question_id"`
	Tag        AlignmentTag `json:"tag"`
}

// ══════════════════════════════════════════════════════════════════════════════
// STAGE RESULTS
// ══════════════════════════════════════════════════════════════════════════════

// Stage1Result is the output of the default-type classifier.
type Stage1Result struct {
	DefaultType    DefaultType
	ArchitectCount int
	AlchemistCount int
}

// Stage2Result is the output of the awareness classifier.
type Stage2Result struct {
	RawScore            AwarenessScore
	AwarenessPercentage shared.Percentage
}

// Stage3Result is the recorded path choice.
type Stage3Result struct {
	PathChoice PathChoice
}

// Stage4Result is the output of the subtype classifier.
type Stage4Result struct {
	Subtype              Subtype
	CompletionPercentage shared.Percentage
	Counts               map[Subtype]int
}

// Stage5Result is the output of the validation classifier.
type Stage5Result struct {
	Alignments []QuestionAlignment
}

// StrongCount returns the number of strongly aligned validation answers.
func (r Stage5Result) StrongCount() int {
	n := 0
	for _, a := range r.Alignments {
		if a.Tag == AlignmentStrong {
			n++
		}
	}
	return n
}

// ══════════════════════════════════════════════════════════════════════════════
// ELIGIBILITY
// ══════════════════════════════════════════════════════════════════════════════

// Eligibility is the outcome of the retake gate.
type Eligibility struct {
	// CanRetake reports whether a new pipeline run may start.
	CanRetake bool

	// NextRetakeDate is set only when CanRetake is false.
	NextRetakeDate *time.Time
}

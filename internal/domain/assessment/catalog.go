package assessment

import (
	"fmt"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// QUESTION CATALOG
// Static configuration: questions, options, and option-to-category mappings
// for all five stages, including the per-DefaultType awareness banks and the
// per-(DefaultType, PathChoice) subtype banks. Loaded once, validated once,
// never mutated at runtime. A mapping gap is a configuration defect and is
// rejected here, not discovered mid-pipeline.
// ══════════════════════════════════════════════════════════════════════════════

// Option is one selectable answer of a question, together with its static
// category mapping. Exactly one mapping field is meaningful per stage:
// Type for stage 1, Opposite for stage 2, Path for stage 3, Subtype for
// stages 4 and 5.
type Option struct {
	ID   OptionID
	Text string

	// Type is the stage-1 category this option counts toward.
	Type TypeCategory

	// Opposite marks a stage-2 option as agreement with an opposite-type
	// statement; such picks increment the raw awareness score.
	Opposite bool

	// Path is the stage-3 path this option selects.
	Path PathChoice

	// Subtype is the subtype this option votes for (stage 4) or is checked
	// against (stage 5).
	Subtype Subtype
}

// Question is a catalog question with its declared options.
type Question struct {
	ID      QuestionID
	Text    string
	Options []Option
}

// Option returns the option with the given ID.
func (q Question) Option(id OptionID) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// BankKey selects a stage-4 question bank variant.
type BankKey struct {
	Type DefaultType
	Path PathChoice
}

// CatalogData is the raw catalog configuration before validation.
type CatalogData struct {
	// DefaultType holds the six stage-1 questions.
	DefaultType []Question

	// Awareness holds one six-question bank per default type. Banks share
	// question IDs; the bank served depends on the stage-1 output.
	Awareness map[DefaultType][]Question

	// Path is the single stage-3 forced-choice question.
	Path Question

	// Subtype holds one six-question bank per (default type, path) pair.
	Subtype map[BankKey][]Question

	// Validation holds one four-question bank per default-type family.
	Validation map[DefaultType][]Question
}

// Catalog is a validated, immutable question catalog.
type Catalog struct {
	data CatalogData

	// stageByQuestion maps every question ID to the stage that owns it.
	stageByQuestion map[QuestionID]Stage

	required int
}

// NewCatalog validates raw catalog data and returns a Catalog.
// Any gap - missing bank, missing option mapping, wrong question count -
// returns ErrInvalidCatalog so startup fails loudly.
func NewCatalog(data CatalogData) (*Catalog, error) {
	c := &Catalog{
		data:            data,
		stageByQuestion: make(map[QuestionID]Stage),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	for _, q := range data.DefaultType {
		c.stageByQuestion[q.ID] = StageDefaultType
	}
	for _, q := range data.Awareness[DefaultArchitect] {
		c.stageByQuestion[q.ID] = StageAwareness
	}
	c.stageByQuestion[data.Path.ID] = StagePath
	for _, q := range data.Subtype[BankKey{DefaultArchitect, PathEarly}] {
		c.stageByQuestion[q.ID] = StageSubtype
	}
	for _, q := range data.Validation[DefaultArchitect] {
		c.stageByQuestion[q.ID] = StageValidation
	}

	c.required = len(data.DefaultType) + len(data.Awareness[DefaultArchitect]) + 1 +
		len(data.Subtype[BankKey{DefaultArchitect, PathEarly}]) + len(data.Validation[DefaultArchitect])

	return c, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Stage1Questions returns the six default-type questions.
func (c *Catalog) Stage1Questions() []Question {
	return c.data.DefaultType
}

// AwarenessQuestions returns the stage-2 bank for a default type.
func (c *Catalog) AwarenessQuestions(d DefaultType) []Question {
	return c.data.Awareness[d]
}

// PathQuestion returns the stage-3 forced-choice question.
func (c *Catalog) PathQuestion() Question {
	return c.data.Path
}

// SubtypeQuestions returns the stage-4 bank for a (default type, path) pair.
func (c *Catalog) SubtypeQuestions(d DefaultType, p PathChoice) []Question {
	return c.data.Subtype[BankKey{Type: d, Path: p}]
}

// ValidationQuestions returns the stage-5 bank for a default-type family.
func (c *Catalog) ValidationQuestions(d DefaultType) []Question {
	return c.data.Validation[d]
}

// RequiredAnswerCount returns the total number of answers a complete run
// must contain. Derived from the configuration, never hard-coded.
func (c *Catalog) RequiredAnswerCount() int {
	return c.required
}

// StageOf returns the stage that owns a question ID.
func (c *Catalog) StageOf(q QuestionID) (Stage, bool) {
	s, ok := c.stageByQuestion[q]
	return s, ok
}

// questionIDs extracts the IDs of a question slice.
func questionIDs(qs []Question) []QuestionID {
	ids := make([]QuestionID, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

func (c *Catalog) validate() error {
	d := c.data

	if err := validateStage1(d.DefaultType); err != nil {
		return invalidCatalog(err)
	}
	if err := validateAwareness(d.Awareness, questionIDs(d.DefaultType)); err != nil {
		return invalidCatalog(err)
	}
	if err := validatePath(d.Path); err != nil {
		return invalidCatalog(err)
	}
	if err := validateSubtypeBanks(d.Subtype); err != nil {
		return invalidCatalog(err)
	}
	if err := validateValidationBanks(d.Validation); err != nil {
		return invalidCatalog(err)
	}
	if err := validateDisjointIDs(d); err != nil {
		return invalidCatalog(err)
	}
	return nil
}

func invalidCatalog(err error) error {
	return shared.WrapError("assessment", "LoadCatalog", shared.ErrInvalidConfiguration, "question catalog is invalid", err)
}

func validateStage1(qs []Question) error {
	if len(qs) != 6 {
		return fmt.Errorf("stage 1: expected 6 questions, got %d", len(qs))
	}
	for _, q := range qs {
		if err := validateOptionSet(q); err != nil {
			return err
		}
		for _, o := range q.Options {
			if !o.Type.IsValid() {
				return fmt.Errorf("stage 1: question %d option %s has no type category", q.ID, o.ID)
			}
		}
	}
	return nil
}

func validateAwareness(banks map[DefaultType][]Question, _ []QuestionID) error {
	for _, dt := range []DefaultType{DefaultArchitect, DefaultAlchemist, DefaultBlurred} {
		qs, ok := banks[dt]
		if !ok {
			return fmt.Errorf("stage 2: missing awareness bank for %s", dt)
		}
		if len(qs) != 6 {
			return fmt.Errorf("stage 2: bank %s: expected 6 questions, got %d", dt, len(qs))
		}
		for i, q := range qs {
			if err := validateOptionSet(q); err != nil {
				return err
			}
			// Banks share question IDs so ledger answers are bank-independent.
			if ref := banks[DefaultArchitect][i].ID; q.ID != ref {
				return fmt.Errorf("stage 2: bank %s question %d: ID mismatch with reference bank (%d)", dt, q.ID, ref)
			}
		}
	}
	return nil
}

func validatePath(q Question) error {
	if err := validateOptionSet(q); err != nil {
		return err
	}
	seen := make(map[PathChoice]bool)
	for _, o := range q.Options {
		if !o.Path.IsValid() {
			return fmt.Errorf("stage 3: option %s has no path mapping", o.ID)
		}
		seen[o.Path] = true
	}
	if !seen[PathEarly] || !seen[PathDeveloped] {
		return fmt.Errorf("stage 3: both path choices must be reachable")
	}
	return nil
}

func validateSubtypeBanks(banks map[BankKey][]Question) error {
	var refIDs []QuestionID
	for _, dt := range []DefaultType{DefaultArchitect, DefaultAlchemist, DefaultBlurred} {
		for _, pc := range []PathChoice{PathEarly, PathDeveloped} {
			key := BankKey{Type: dt, Path: pc}
			qs, ok := banks[key]
			if !ok {
				return fmt.Errorf("stage 4: missing subtype bank for %s/%s", dt, pc)
			}
			if len(qs) != 6 {
				return fmt.Errorf("stage 4: bank %s/%s: expected 6 questions, got %d", dt, pc, len(qs))
			}
			if refIDs == nil {
				refIDs = questionIDs(qs)
			}
			for i, q := range qs {
				if err := validateOptionSet(q); err != nil {
					return err
				}
				if q.ID != refIDs[i] {
					return fmt.Errorf("stage 4: bank %s/%s question %d: ID mismatch with reference bank (%d)", dt, pc, q.ID, refIDs[i])
				}
				seen := make(map[Subtype]bool)
				for _, o := range q.Options {
					if o.Subtype.Family() != dt {
						return fmt.Errorf("stage 4: bank %s/%s question %d option %s maps to %q outside the family", dt, pc, q.ID, o.ID, o.Subtype)
					}
					if seen[o.Subtype] {
						return fmt.Errorf("stage 4: bank %s/%s question %d maps %q twice", dt, pc, q.ID, o.Subtype)
					}
					seen[o.Subtype] = true
				}
			}
		}
	}
	return nil
}

func validateValidationBanks(banks map[DefaultType][]Question) error {
	var refIDs []QuestionID
	for _, dt := range []DefaultType{DefaultArchitect, DefaultAlchemist, DefaultBlurred} {
		qs, ok := banks[dt]
		if !ok {
			return fmt.Errorf("stage 5: missing validation bank for %s", dt)
		}
		if len(qs) != 4 {
			return fmt.Errorf("stage 5: bank %s: expected 4 questions, got %d", dt, len(qs))
		}
		if refIDs == nil {
			refIDs = questionIDs(qs)
		}
		for i, q := range qs {
			if err := validateOptionSet(q); err != nil {
				return err
			}
			if q.ID != refIDs[i] {
				return fmt.Errorf("stage 5: bank %s question %d: ID mismatch with reference bank (%d)", dt, q.ID, refIDs[i])
			}
			inFamily := false
			for _, o := range q.Options {
				if !o.Subtype.IsValid() {
					return fmt.Errorf("stage 5: bank %s question %d option %s has no subtype mapping", dt, q.ID, o.ID)
				}
				if o.Subtype.Family() == dt {
					inFamily = true
				}
			}
			if !inFamily {
				return fmt.Errorf("stage 5: bank %s question %d has no in-family option", dt, q.ID)
			}
		}
	}
	return nil
}

// validateOptionSet checks the fixed A-D option set of a question.
func validateOptionSet(q Question) error {
	if !q.ID.IsValid() {
		return fmt.Errorf("question with invalid ID %d", q.ID)
	}
	if len(q.Options) != 4 {
		return fmt.Errorf("question %d: expected 4 options, got %d", q.ID, len(q.Options))
	}
	seen := make(map[OptionID]bool)
	for _, o := range q.Options {
		if !o.ID.IsValid() {
			return fmt.Errorf("question %d: invalid option ID %q", q.ID, o.ID)
		}
		if seen[o.ID] {
			return fmt.Errorf("question %d: duplicate option %s", q.ID, o.ID)
		}
		seen[o.ID] = true
	}
	return nil
}

func validateDisjointIDs(d CatalogData) error {
	owned := make(map[QuestionID]Stage)
	claim := func(id QuestionID, s Stage) error {
		if prev, ok := owned[id]; ok && prev != s {
			return fmt.Errorf("question %d claimed by both %s and %s", id, prev, s)
		}
		owned[id] = s
		return nil
	}
	for _, q := range d.DefaultType {
		if err := claim(q.ID, StageDefaultType); err != nil {
			return err
		}
	}
	for _, qs := range d.Awareness {
		for _, q := range qs {
			if err := claim(q.ID, StageAwareness); err != nil {
				return err
			}
		}
	}
	if err := claim(d.Path.ID, StagePath); err != nil {
		return err
	}
	for _, qs := range d.Subtype {
		for _, q := range qs {
			if err := claim(q.ID, StageSubtype); err != nil {
				return err
			}
		}
	}
	for _, qs := range d.Validation {
		for _, q := range qs {
			if err := claim(q.ID, StageValidation); err != nil {
				return err
			}
		}
	}
	return nil
}

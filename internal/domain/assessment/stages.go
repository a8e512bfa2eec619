package assessment

import (
	"math"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// STAGE CLASSIFIERS
// Five pure, synchronous functions. Each one reads only the ledger answers of
// its own stage plus the prior stage outputs it is parameterized by, and is
// total over valid inputs: an option that fails to map is a catalog defect,
// caught at load time, never here.
// ══════════════════════════════════════════════════════════════════════════════

// stage1TypeThreshold is the minimum count of same-type answers (out of 6)
// required to declare a clear default type. Anything below falls to Blurred.
const stage1TypeThreshold = 5

// RunStage1 classifies the default type from the six stage-1 answers.
// Decision order is fixed: Architect first, then Alchemist, then Blurred.
// Neither count reaching the threshold is a valid Blurred outcome, not an
// error.
func RunStage1(c *Catalog, l *Ledger) (Stage1Result, error) {
	opts, err := stageOptions(c.Stage1Questions(), l)
	if err != nil {
		return Stage1Result{}, err
	}

	var architect, alchemist int
	for _, o := range opts {
		switch o.Type {
		case CategoryArchitect:
			architect++
		case CategoryAlchemist:
			alchemist++
		}
	}

	res := Stage1Result{
		DefaultType:    DefaultBlurred,
		ArchitectCount: architect,
		AlchemistCount: alchemist,
	}
	switch {
	case architect >= stage1TypeThreshold:
		res.DefaultType = DefaultArchitect
	case alchemist >= stage1TypeThreshold:
		res.DefaultType = DefaultAlchemist
	}
	return res, nil
}

// RunStage2 computes the awareness score from the six stage-2 answers.
// The bank is selected by the stage-1 default type; the raw score is the
// count of opposite-aligned picks, mapped through the fixed lookup table.
func RunStage2(c *Catalog, l *Ledger, defaultType DefaultType) (Stage2Result, error) {
	opts, err := stageOptions(c.AwarenessQuestions(defaultType), l)
	if err != nil {
		return Stage2Result{}, err
	}

	var raw AwarenessScore
	for _, o := range opts {
		if o.Opposite {
			raw++
		}
	}
	return Stage2Result{
		RawScore:            raw,
		AwarenessPercentage: raw.Percentage(),
	}, nil
}

// RunStage3 resolves the path choice from the single stage-3 answer.
// The choice carries no scoring weight; it only parameterizes stage 4.
func RunStage3(c *Catalog, l *Ledger) (Stage3Result, error) {
	opts, err := stageOptions([]Question{c.PathQuestion()}, l)
	if err != nil {
		return Stage3Result{}, err
	}
	return Stage3Result{PathChoice: opts[0].Path}, nil
}

// RunStage4 classifies the subtype by plurality vote across the six stage-4
// answers. The bank is selected by (default type, path choice); every option
// votes for exactly one subtype of the family.
//
// Tie-break policy: when several subtypes tie for the maximum count, the
// winner is the first-declared subtype of the family, in the order returned
// by SubtypeFamily. The iteration below walks that declared order, so the
// outcome is deterministic across runs.
func RunStage4(c *Catalog, l *Ledger, defaultType DefaultType, path PathChoice) (Stage4Result, error) {
	questions := c.SubtypeQuestions(defaultType, path)
	opts, err := stageOptions(questions, l)
	if err != nil {
		return Stage4Result{}, err
	}

	counts := make(map[Subtype]int, 4)
	for _, o := range opts {
		counts[o.Subtype]++
	}

	var winner Subtype
	best := -1
	for _, s := range SubtypeFamily(defaultType) {
		if counts[s] > best {
			winner = s
			best = counts[s]
		}
	}

	return Stage4Result{
		Subtype:              winner,
		CompletionPercentage: completionPercentage(len(opts), len(questions)),
		Counts:               counts,
	}, nil
}

// RunStage5 tags each of the four validation answers with an alignment tag
// relative to the classified subtype. Tags annotate confidence only; they
// never change the default type or the subtype.
func RunStage5(c *Catalog, l *Ledger, defaultType DefaultType, subtype Subtype) (Stage5Result, error) {
	questions := c.ValidationQuestions(defaultType)
	opts, err := stageOptions(questions, l)
	if err != nil {
		return Stage5Result{}, err
	}

	alignments := make([]QuestionAlignment, len(questions))
	for i, o := range opts {
		tag := AlignmentPoor
		switch {
		case o.Subtype == subtype:
			tag = AlignmentStrong
		case o.Subtype.Family() == defaultType:
			tag = AlignmentPartial
		}
		alignments[i] = QuestionAlignment{QuestionID: questions[i].ID, Tag: tag}
	}
	return Stage5Result{Alignments: alignments}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// stageOptions resolves the ledger answer of every question in qs to its
// catalog option, in question order. A missing answer returns
// ErrIncompleteAnswers; an answer whose option is not declared on the
// question returns ErrUnknownOption.
func stageOptions(qs []Question, l *Ledger) ([]Option, error) {
	opts := make([]Option, len(qs))
	for i, q := range qs {
		id, ok := l.Get(q.ID)
		if !ok {
			return nil, ErrIncompleteAnswers
		}
		o, ok := q.Option(id)
		if !ok {
			return nil, ErrUnknownOption
		}
		opts[i] = o
	}
	return opts, nil
}

// completionPercentage rounds answered/total to the nearest whole percent.
func completionPercentage(answered, total int) shared.Percentage {
	if total == 0 {
		return 0
	}
	return shared.Percentage(math.Round(float64(answered) / float64(total) * 100))
}

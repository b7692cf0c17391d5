package rewards

// Baseline is the user's history on an exercise before the new set was inserted.
type Baseline struct {
	PriorMaxWeightKg float64
	// PriorMaxReps is the best rep count done at a weight >= the new set's weight.
	PriorMaxReps int
}

// NewBaseline builds a baseline from the store results, where nil means
// the user has no such sets yet.
func NewBaseline(priorMaxWeightKg *float64, priorMaxReps *int) Baseline {
	var b Baseline
	if priorMaxWeightKg != nil {
		b.PriorMaxWeightKg = *priorMaxWeightKg
	}
	if priorMaxReps != nil {
		b.PriorMaxReps = *priorMaxReps
	}
	return b
}

type RecordResult struct {
	IsNewMaxWeight bool `json:"isNewMaxWeight"`
	IsNewRepPR     bool `json:"isNewRepPr"`
}

// DetectRecords classifies a new set against the baseline. A rep record is
// only reported when the weight is not a new max, so the two flags never
// are both true.
func DetectRecords(weightKg float64, reps int, baseline Baseline, policy Policy) RecordResult {
	isNewMaxWeight := weightKg > baseline.PriorMaxWeightKg
	isNewRepPR := !isNewMaxWeight &&
		reps > baseline.PriorMaxReps &&
		reps > policy.RepPRMinReps

	return RecordResult{
		IsNewMaxWeight: isNewMaxWeight,
		IsNewRepPR:     isNewRepPR,
	}
}

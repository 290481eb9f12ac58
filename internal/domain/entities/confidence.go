package entities

// Confidence is a heuristic rating derived only from the input house. It does
// not reflect the spread of the forest's estimators.
type Confidence string

const (
	ConfidenceAlta  Confidence = "Alta"
	ConfidenceMedia Confidence = "Média"
	ConfidenceBaixa Confidence = "Baixa"
)

const (
	confidenceAltaMin  = 80
	confidenceMediaMin = 60
)

// ConfidenceScore sums the independent input rules. The result is in [15, 100].
func ConfidenceScore(h HouseDescription) int {
	score := areaTerm(h.Area)

	if h.Bathrooms >= 2 {
		score += 30
	} else {
		score += 15
	}
	if h.AirConditioning == 1 {
		score += 15
	}
	if h.Parking >= 1 {
		score += 15
	}
	return score
}

func areaTerm(area int) int {
	switch {
	case area >= 3000 && area <= 8000:
		return 40
	case area > 1650:
		return 20
	default:
		return 0
	}
}

// ConfidenceForScore buckets a score into its label.
func ConfidenceForScore(score int) Confidence {
	switch {
	case score >= confidenceAltaMin:
		return ConfidenceAlta
	case score >= confidenceMediaMin:
		return ConfidenceMedia
	default:
		return ConfidenceBaixa
	}
}

func AssessConfidence(h HouseDescription) (int, Confidence) {
	score := ConfidenceScore(h)
	return score, ConfidenceForScore(score)
}

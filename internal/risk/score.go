package risk

import (
	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

// Severity is the qualitative band derived from a numeric risk score.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ratingScore maps the five ordinal levels onto 1..5.
var ratingScore = map[domain.RiskRating]int{
	domain.RatingVeryLow:  1,
	domain.RatingLow:      2,
	domain.RatingMedium:   3,
	domain.RatingHigh:     4,
	domain.RatingVeryHigh: 5,
}

// fallbackRatingScore is used for empty or unrecognized ratings, the
// same midpoint default the backend applies when computing risk_score.
const fallbackRatingScore = 3

func RatingScore(r domain.RiskRating) int {
	if s, ok := ratingScore[r]; ok {
		return s
	}
	return fallbackRatingScore
}

// Score multiplies the probability and impact ordinals into a 1-25 product.
func Score(probability, impact domain.RiskRating) int {
	return RatingScore(probability) * RatingScore(impact)
}

// SeverityFor buckets a score into its band. One table for every caller:
// 1-6 low, 7-12 medium, 13-20 high, 21-25 critical.
func SeverityFor(score int) Severity {
	switch {
	case score <= 6:
		return SeverityLow
	case score <= 12:
		return SeverityMedium
	case score <= 20:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}

// Assessment pairs a risk record with its derived score and band.
type Assessment struct {
	Record   domain.RiskRecord
	Score    int
	Severity Severity
}

func Assess(record domain.RiskRecord) Assessment {
	score := Score(record.Probability, record.Impact)
	return Assessment{
		Record:   record,
		Score:    score,
		Severity: SeverityFor(score),
	}
}

// AssessAll scores every record, preserving input order.
func AssessAll(records []domain.RiskRecord) []Assessment {
	out := make([]Assessment, 0, len(records))
	for _, r := range records {
		out = append(out, Assess(r))
	}
	return out
}

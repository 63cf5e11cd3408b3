package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vijaykmarupuudi/planhub/internal/domain"
)

func assessed(id, title string, prob, impact domain.RiskRating, status domain.RiskStatus) Assessment {
	return Assess(domain.RiskRecord{
		ID:          id,
		Title:       title,
		Probability: prob,
		Impact:      impact,
		Status:      status,
	})
}

func ids(assessments []Assessment) []string {
	out := make([]string, 0, len(assessments))
	for _, a := range assessments {
		out = append(out, a.Record.ID)
	}
	return out
}

func TestCanonicalSort_SeverityFirst(t *testing.T) {
	list := []Assessment{
		assessed("low", "A", domain.RatingVeryLow, domain.RatingLow, domain.RiskIdentified),       // 2
		assessed("critical", "B", domain.RatingVeryHigh, domain.RatingVeryHigh, domain.RiskIdentified), // 25
		assessed("medium", "C", domain.RatingMedium, domain.RatingMedium, domain.RiskIdentified),   // 9
		assessed("high", "D", domain.RatingHigh, domain.RatingVeryHigh, domain.RiskIdentified),     // 20
	}

	CanonicalSort(list)

	assert.Equal(t, []string{"critical", "high", "medium", "low"}, ids(list))
}

func TestCanonicalSort_ScoreBreaksTieWithinBand(t *testing.T) {
	list := []Assessment{
		assessed("nine", "A", domain.RatingMedium, domain.RatingMedium, domain.RiskIdentified), // 9
		assessed("twelve", "B", domain.RatingMedium, domain.RatingHigh, domain.RiskIdentified), // 12
	}

	CanonicalSort(list)

	assert.Equal(t, []string{"twelve", "nine"}, ids(list))
}

func TestCanonicalSort_OpenBeforeResolved(t *testing.T) {
	list := []Assessment{
		assessed("closed", "Same", domain.RatingHigh, domain.RatingHigh, domain.RiskClosed),
		assessed("open", "Same", domain.RatingHigh, domain.RatingHigh, domain.RiskAssessed),
	}

	CanonicalSort(list)

	assert.Equal(t, []string{"open", "closed"}, ids(list))
}

func TestCanonicalSort_TitleThenIDBreakFinalTies(t *testing.T) {
	list := []Assessment{
		assessed("z", "Beta", domain.RatingLow, domain.RatingLow, domain.RiskIdentified),
		assessed("y", "Alpha", domain.RatingLow, domain.RatingLow, domain.RiskIdentified),
		assessed("x", "Alpha", domain.RatingLow, domain.RatingLow, domain.RiskIdentified),
	}

	CanonicalSort(list)

	assert.Equal(t, []string{"x", "y", "z"}, ids(list))
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vijaykmarupuudi/planhub/internal/api"
	"github.com/vijaykmarupuudi/planhub/internal/domain"
	"github.com/vijaykmarupuudi/planhub/internal/risk"
	"github.com/vijaykmarupuudi/planhub/internal/testutil"
	"github.com/vijaykmarupuudi/planhub/internal/view"
)

func riskFixture() *stubSource {
	src := newStubSource(testutil.NewProject("Portal Redesign", testutil.WithProjectID("p1")))
	src.risks["p1"] = []domain.RiskRecord{
		{ID: "r1", Title: "Scope creep", Probability: domain.RatingMedium, Impact: domain.RatingMedium, Status: domain.RiskIdentified},
		{ID: "r2", Title: "Vendor delay", Probability: domain.RatingVeryHigh, Impact: domain.RatingVeryHigh, Status: domain.RiskAssessed},
		{ID: "r3", Title: "Key person leaves", Probability: domain.RatingLow, Impact: domain.RatingVeryHigh, Status: domain.RiskMitigated},
		{ID: "r4", Title: "Budget overrun", Probability: domain.RatingHigh, Impact: domain.RatingHigh, Status: domain.RiskIdentified},
	}
	return src
}

func TestRiskService_AssessesAndSortsRegister(t *testing.T) {
	svc := NewRiskService(riskFixture())

	resp, err := svc.Risks(context.Background(), view.NewRiskRequest("p1"))

	require.NoError(t, err)
	require.Len(t, resp.Register, 4)

	// 25 critical, 16 high, 10 medium, 9 medium; ties never reorder here.
	assert.Equal(t, "r2", resp.Register[0].Record.ID)
	assert.Equal(t, 25, resp.Register[0].Score)
	assert.Equal(t, risk.SeverityCritical, resp.Register[0].Severity)
	assert.Equal(t, "r4", resp.Register[1].Record.ID)
	assert.Equal(t, "r3", resp.Register[2].Record.ID)
	assert.Equal(t, "r1", resp.Register[3].Record.ID)

	assert.Equal(t, 1, resp.CriticalCount)
	assert.Equal(t, 1, resp.HighCount)
	assert.Equal(t, 2, resp.MediumCount)
	assert.Equal(t, 0, resp.LowCount)
	assert.Equal(t, 3, resp.OpenCount, "mitigated risk is not open")
}

func TestRiskService_UnknownRatingScoresMidpoint(t *testing.T) {
	src := newStubSource(testutil.NewProject("Portal", testutil.WithProjectID("p1")))
	src.risks["p1"] = []domain.RiskRecord{
		{ID: "r1", Title: "Unrated", Probability: "", Impact: domain.RatingHigh, Status: domain.RiskIdentified},
	}
	svc := NewRiskService(src)

	resp, err := svc.Risks(context.Background(), view.NewRiskRequest("p1"))

	require.NoError(t, err)
	require.Len(t, resp.Register, 1)
	assert.Equal(t, 12, resp.Register[0].Score)
	assert.Equal(t, risk.SeverityMedium, resp.Register[0].Severity)
}

func TestRiskService_EmptyRegister(t *testing.T) {
	src := newStubSource(testutil.NewProject("Bare", testutil.WithProjectID("p1")))
	svc := NewRiskService(src)

	resp, err := svc.Risks(context.Background(), view.NewRiskRequest("p1"))

	require.NoError(t, err)
	assert.Empty(t, resp.Register)
	assert.Zero(t, resp.OpenCount)
}

func TestRiskService_UnknownProject(t *testing.T) {
	svc := NewRiskService(riskFixture())

	_, err := svc.Risks(context.Background(), view.NewRiskRequest("ghost"))

	require.ErrorIs(t, err, api.ErrNotFound)
}

func TestRiskService_RegisterErrorPropagates(t *testing.T) {
	src := riskFixture()
	src.risksErr = api.ErrTimeout
	svc := NewRiskService(src)

	_, err := svc.Risks(context.Background(), view.NewRiskRequest("p1"))

	require.ErrorIs(t, err, api.ErrTimeout)
	assert.Contains(t, err.Error(), "loading risk register")
}

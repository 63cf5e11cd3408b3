package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vijaykmarupuudi/planhub/internal/domain"
	"github.com/vijaykmarupuudi/planhub/internal/risk"
	"github.com/vijaykmarupuudi/planhub/internal/view"
)

func riskResp() *view.RiskResponse {
	records := []domain.RiskRecord{
		{ID: "r1", Title: "Vendor lock-in", Category: "Technical",
			Probability: domain.RatingVeryHigh, Impact: domain.RatingVeryHigh,
			Status: domain.RiskAssessed},
		{ID: "r2", Title: "Scope creep", Category: "Schedule",
			Probability: domain.RatingMedium, Impact: domain.RatingMedium,
			Status: domain.RiskIdentified},
		{ID: "r3", Title: "Key hire leaves", Category: "Resource",
			Probability: domain.RatingHigh, Impact: domain.RatingHigh,
			Status: domain.RiskMitigated},
	}
	register := risk.AssessAll(records)
	risk.CanonicalSort(register)

	resp := &view.RiskResponse{
		Project:  domain.Project{ID: "p1", Name: "Portal Redesign"},
		Register: register,
	}
	for _, a := range register {
		switch a.Severity {
		case risk.SeverityCritical:
			resp.CriticalCount++
		case risk.SeverityHigh:
			resp.HighCount++
		case risk.SeverityMedium:
			resp.MediumCount++
		case risk.SeverityLow:
			resp.LowCount++
		}
		if a.Record.IsOpen() {
			resp.OpenCount++
		}
	}
	return resp
}

func TestFormatRisks_RendersRankedTable(t *testing.T) {
	out := stripANSI(FormatRisks(riskResp()))

	assert.Contains(t, out, "RISK REGISTER: PORTAL REDESIGN")
	assert.Contains(t, out, "1 critical")
	assert.Contains(t, out, "1 medium")
	assert.Contains(t, out, "2 open")

	assert.Contains(t, out, "● CRITICAL")
	assert.Contains(t, out, "Vendor lock-in")
	assert.Contains(t, out, "25")
	assert.Contains(t, out, "Technical")
	assert.Contains(t, out, "assessed")
	assert.Contains(t, out, "mitigated")

	// The critical entry sorts above the medium one.
	assert.Less(t,
		strings.Index(out, "Vendor lock-in"),
		strings.Index(out, "Scope creep"))
}

func TestFormatRisks_EmptyRegister(t *testing.T) {
	resp := &view.RiskResponse{Project: domain.Project{Name: "Calm"}}
	out := stripANSI(FormatRisks(resp))
	assert.Contains(t, out, "No risks recorded.")
	assert.NotContains(t, out, "SEVERITY")
}

func TestFormatRisks_MissingTargetRendersPlaceholder(t *testing.T) {
	out := stripANSI(FormatRisks(riskResp()))
	assert.Contains(t, out, "--")
}

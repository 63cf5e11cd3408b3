package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vijaykmarupuudi/planhub/internal/risk"
	"github.com/vijaykmarupuudi/planhub/internal/view"
)

type riskService struct {
	src      Source
	observer UseCaseObserver
}

func NewRiskService(src Source, observers ...UseCaseObserver) view.RiskUseCase {
	return &riskService{
		src:      src,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *riskService) Risks(ctx context.Context, req view.RiskRequest) (resp *view.RiskResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"project": req.ProjectID,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "risks",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	project, err := s.src.Project(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("loading project: %w", err)
	}

	records, err := s.src.Risks(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("loading risk register: %w", err)
	}

	register := risk.AssessAll(records)
	risk.CanonicalSort(register)
	fields["risks"] = len(register)

	out := &view.RiskResponse{
		Project:  project,
		Register: register,
	}
	for _, a := range register {
		switch a.Severity {
		case risk.SeverityCritical:
			out.CriticalCount++
		case risk.SeverityHigh:
			out.HighCount++
		case risk.SeverityMedium:
			out.MediumCount++
		case risk.SeverityLow:
			out.LowCount++
		}
		if a.Record.IsOpen() {
			out.OpenCount++
		}
	}

	return out, nil
}

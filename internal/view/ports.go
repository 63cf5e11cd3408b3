// Package view defines the request/response contracts between the
// command surface and the use-case layer. Responses carry derived
// view-model values; nothing here performs I/O.
package view

import "context"

type OverviewUseCase interface {
	Overview(ctx context.Context, req OverviewRequest) (*OverviewResponse, error)
}

type TimelineUseCase interface {
	Timeline(ctx context.Context, req TimelineRequest) (*TimelineResponse, error)
}

type BreakdownUseCase interface {
	Breakdown(ctx context.Context, req BreakdownRequest) (*BreakdownResponse, error)
}

type RiskUseCase interface {
	Risks(ctx context.Context, req RiskRequest) (*RiskResponse, error)
}

type BudgetUseCase interface {
	Budget(ctx context.Context, req BudgetRequest) (*BudgetResponse, error)
}

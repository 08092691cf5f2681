package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gosaju/ai"
	"gosaju/internal"
	"gosaju/internal/credits"
	"gosaju/internal/errors"
	"gosaju/models"
	"gosaju/ports"
)

// FortuneRequest is one paid (or free) reading request.
type FortuneRequest struct {
	UserID   uuid.UUID
	Service  credits.Service
	Birth    models.BirthInput
	Tarot    *ai.TarotCard
	Question string
	Context  *ai.UserContext
}

// FortuneResult is the generated reading plus billing info.
type FortuneResult struct {
	Reading *ports.Reading    `json:"reading"`
	Cost    int               `json:"cost"`
	Balance int               `json:"balance"`
	Facts   ai.ConfirmedFacts `json:"facts"`
}

// FortuneService gates readings behind the credit ledger, builds the
// service prompt, calls the LLM and persists the result. Credit is
// consumed before the LLM call and refunded if generation fails.
type FortuneService struct {
	analysis *AnalysisService
	ledger   ports.CreditLedger
	readings ports.ReadingRepository
	llm      ports.LLMClient

	model     string
	maxTokens int
}

func NewFortuneService(analysis *AnalysisService, ledger ports.CreditLedger, readings ports.ReadingRepository, llm ports.LLMClient, model string, maxTokens int) *FortuneService {
	return &FortuneService{
		analysis:  analysis,
		ledger:    ledger,
		readings:  readings,
		llm:       llm,
		model:     model,
		maxTokens: maxTokens,
	}
}

// buildPrompt maps a service to its prompt builder. The tarot services
// require a drawn card; everything else requires a cast chart.
func (s *FortuneService) buildPrompt(req FortuneRequest, a *models.Analysis, facts ai.ConfirmedFacts, now time.Time) (system, user string, err error) {
	switch req.Service {
	case credits.ServiceBasic:
		return ai.ServiceSystemPrompt, ai.BasicPrompt(a), nil
	case credits.ServiceDetailed:
		return ai.ConsultSystemPrompt, ai.ConsultPrompt(a, facts, req.Context), nil
	case credits.ServiceDaily:
		return ai.ServiceSystemPrompt, ai.DailyPrompt(a, now), nil
	case credits.ServiceLove:
		return ai.ServiceSystemPrompt, ai.LovePrompt(a), nil
	case credits.ServiceWealth:
		return ai.ServiceSystemPrompt, ai.WealthPrompt(a), nil
	case credits.ServiceTarot:
		if req.Tarot == nil {
			return "", "", errors.InvalidInput("tarot reading requires a drawn card")
		}
		return ai.ServiceSystemPrompt, ai.TarotPrompt(*req.Tarot, req.Question), nil
	case credits.ServiceHybrid:
		if req.Tarot == nil {
			return "", "", errors.InvalidInput("hybrid reading requires a drawn card")
		}
		return ai.ServiceSystemPrompt, ai.HybridPrompt(a, *req.Tarot, req.Question), nil
	}
	return "", "", errors.InvalidInput("unknown service")
}

// Generate runs one reading end to end.
func (s *FortuneService) Generate(ctx context.Context, req FortuneRequest, now time.Time) (*FortuneResult, error) {
	cost, ok := credits.Cost[req.Service]
	if !ok || req.Service == credits.ServicePDF {
		return nil, errors.InvalidInput("unknown service")
	}

	var (
		a     *models.Analysis
		facts ai.ConfirmedFacts
		err   error
	)
	if req.Service != credits.ServiceTarot {
		a, err = s.analysis.Analyze(ctx, req.Birth, now)
		if err != nil {
			return nil, err
		}
		facts = ai.BuildFacts(a)
	}

	system, user, err := s.buildPrompt(req, a, facts, now)
	if err != nil {
		return nil, err
	}

	if cost > 0 {
		if err := s.ledger.Consume(ctx, req.UserID, cost, credits.UsageReason[req.Service]); err != nil {
			return nil, err
		}
	}

	content, err := s.llm.ChatCompletion(ctx, s.model, system, user, s.maxTokens)
	if err != nil {
		if cost > 0 {
			// Refund on generation failure. A refund failure is secondary
			// to the original error and deliberately dropped.
			if rerr := s.ledger.Grant(ctx, req.UserID, cost, "환불: "+credits.UsageReason[req.Service]); rerr != nil {
				internal.DefaultLogger.Warn("refund failed for %s: %v", req.UserID, rerr)
			}
		}
		return nil, errors.ExternalServiceError("llm", err)
	}

	reading := &ports.Reading{
		UserID:    req.UserID,
		Service:   string(req.Service),
		Prompt:    user,
		Content:   content,
		Cost:      cost,
		CreatedAt: now,
	}
	if err := s.readings.Save(ctx, reading); err != nil {
		return nil, errors.Wrap(err, "save reading")
	}

	balance, err := s.ledger.Balance(ctx, req.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "query balance")
	}

	return &FortuneResult{
		Reading: reading,
		Cost:    cost,
		Balance: balance,
		Facts:   facts,
	}, nil
}

// Purchase credits a package onto the user's account.
func (s *FortuneService) Purchase(ctx context.Context, userID uuid.UUID, packageID string) (int, error) {
	pkg, ok := credits.PackageByID(packageID)
	if !ok {
		return 0, errors.NotFound("credit package")
	}
	if err := s.ledger.Grant(ctx, userID, pkg.TotalCredit(), "구매: "+pkg.Name); err != nil {
		return 0, err
	}
	return s.ledger.Balance(ctx, userID)
}

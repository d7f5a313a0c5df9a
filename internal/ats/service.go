package ats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/store"
	"go.uber.org/zap"
)

// HistoryLimit caps the checks returned by History.
const HistoryLimit = 50

// CheckOutcome is a stored check plus the user's remaining allowance.
type CheckOutcome struct {
	domain.AtsCheck
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"resetAt"`
}

// Service runs rate-limited resume checks and keeps their history.
type Service struct {
	Repo        store.AtsRepository
	Scorer      *Scorer
	Limiter     *UsageLimiter
	MaxFileSize int64
	Logger      *zap.Logger
}

// NewService wires a scorer and limiter over repo.
func NewService(repo store.AtsRepository, limiter *UsageLimiter, maxFileSize int64, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if limiter == nil {
		limiter = NewUsageLimiter(repo, 0, 0)
	}
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &Service{Repo: repo, Scorer: NewScorer(), Limiter: limiter, MaxFileSize: maxFileSize, Logger: log}
}

// CheckFile extracts the text of an upload and checks it.
func (s *Service) CheckFile(ctx context.Context, userID string, data []byte) (CheckOutcome, error) {
	release, err := s.Limiter.Hold(ctx, userID)
	if err != nil {
		return CheckOutcome{}, err
	}
	defer release()

	if err := s.ensureAllowed(ctx, userID); err != nil {
		return CheckOutcome{}, err
	}
	text, err := ExtractText(data, s.MaxFileSize)
	if err != nil {
		return CheckOutcome{}, err
	}
	return s.check(ctx, userID, text, int64(len(data)))
}

// CheckText checks resume text supplied directly.
func (s *Service) CheckText(ctx context.Context, userID, text string) (CheckOutcome, error) {
	if int64(len(text)) > s.MaxFileSize {
		return CheckOutcome{}, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, len(text))
	}
	release, err := s.Limiter.Hold(ctx, userID)
	if err != nil {
		return CheckOutcome{}, err
	}
	defer release()

	if err := s.ensureAllowed(ctx, userID); err != nil {
		return CheckOutcome{}, err
	}
	return s.check(ctx, userID, text, int64(len(text)))
}

func (s *Service) ensureAllowed(ctx context.Context, userID string) error {
	status, err := s.Limiter.Status(ctx, userID)
	if err != nil {
		return err
	}
	if !status.Allowed {
		return fmt.Errorf("%w: %d checks used, resets at %s", ErrUsageLimit, s.Limiter.MaxTries,
			status.ResetAt.Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}

func (s *Service) check(ctx context.Context, userID, text string, size int64) (CheckOutcome, error) {
	if strings.TrimSpace(text) == "" {
		return CheckOutcome{}, ErrEmptyResume
	}

	result := s.Scorer.Score(text)
	result.FileSize = size
	check := &domain.AtsCheck{UserID: userID, ResumeText: text, AtsResult: result}
	if err := s.Repo.SaveCheck(ctx, check); err != nil {
		return CheckOutcome{}, fmt.Errorf("failed to save ats check: %w", err)
	}
	if err := s.Limiter.Record(ctx, userID); err != nil {
		return CheckOutcome{}, fmt.Errorf("failed to record ats usage: %w", err)
	}
	status, err := s.Limiter.Status(ctx, userID)
	if err != nil {
		return CheckOutcome{}, err
	}

	s.Logger.Info("resume checked",
		zap.String("op", "ats.Check"),
		zap.String("user", userID),
		zap.Int("score", result.Score),
		zap.Int("words", result.WordCount),
		zap.Int("remaining", status.Remaining),
	)
	return CheckOutcome{AtsCheck: *check, Remaining: status.Remaining, ResetAt: status.ResetAt}, nil
}

// Usage reports userID's remaining allowance.
func (s *Service) Usage(ctx context.Context, userID string) (domain.UsageStatus, error) {
	return s.Limiter.Status(ctx, userID)
}

// History returns userID's most recent checks, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]domain.AtsCheck, error) {
	return s.Repo.ListChecks(ctx, userID, HistoryLimit)
}

// GetCheck returns one of userID's checks or store.ErrNotFound.
func (s *Service) GetCheck(ctx context.Context, userID, id string) (domain.AtsCheck, error) {
	return s.Repo.GetCheck(ctx, id, userID)
}

// EnhanceOutcome is a stored check with premium advice attached.
type EnhanceOutcome struct {
	domain.AtsCheck
	PremiumFeatures domain.PremiumEnhancements `json:"premiumFeatures"`
}

// Enhance produces premium advice for a stored check. resumeText overrides
// the stored text when set.
func (s *Service) Enhance(ctx context.Context, userID, checkID, resumeText string) (EnhanceOutcome, error) {
	check, err := s.Repo.GetCheck(ctx, checkID, userID)
	if err != nil {
		return EnhanceOutcome{}, err
	}
	if resumeText == "" {
		resumeText = check.ResumeText
	}
	if resumeText == "" {
		return EnhanceOutcome{}, fmt.Errorf("%w: resume text is required for premium features", ErrEmptyResume)
	}
	return EnhanceOutcome{AtsCheck: check, PremiumFeatures: s.Scorer.Enhance(resumeText, check.AtsResult)}, nil
}

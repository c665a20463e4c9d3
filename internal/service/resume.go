package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jjenkins/resume/internal/catalog"
	"github.com/jjenkins/resume/internal/model"
	"go.uber.org/zap"
)

var characterIDPattern = regexp.MustCompile(`^[0-9]+$`)

// Fetcher retrieves the raw achievement page for a character
type Fetcher interface {
	FetchAchievementPage(ctx context.Context, characterID string) (string, error)
}

// ResumeService runs the fetch -> extract -> compose pipeline for one character
type ResumeService struct {
	fetcher   Fetcher
	extractor *Extractor
	composer  *Composer
	logger    *zap.Logger
}

// NewResumeService creates a new ResumeService
func NewResumeService(fetcher Fetcher, extractor *Extractor, composer *Composer, logger *zap.Logger) *ResumeService {
	return &ResumeService{
		fetcher:   fetcher,
		extractor: extractor,
		composer:  composer,
		logger:    logger,
	}
}

// GetResume returns the header and body of a character's résumé
func (s *ResumeService) GetResume(ctx context.Context, characterID, resumeType string) (string, string, error) {
	report, err := s.Report(ctx, characterID, resumeType)
	if err != nil {
		return "", "", err
	}
	return report.Header, report.Body, nil
}

// Report is GetResume with the computed entries kept alongside the rendered text
func (s *ResumeService) Report(ctx context.Context, characterID, resumeType string) (*model.Report, error) {
	if !characterIDPattern.MatchString(characterID) {
		return nil, fmt.Errorf("%q: %w", characterID, ErrInvalidCharacterID)
	}

	markup, err := s.fetcher.FetchAchievementPage(ctx, characterID)
	if err != nil {
		return nil, err
	}

	profile, err := s.extractor.Extract(markup)
	if err != nil {
		return nil, fmt.Errorf("character %s: %w", characterID, err)
	}

	report := s.composer.Compose(profile, catalog.ParseSelector(resumeType))

	s.logger.Info("composed résumé",
		zap.String("character_id", characterID),
		zap.String("resume_type", resumeType),
		zap.String("character", profile.CharacterName),
		zap.Int("entries", len(report.Entries)))

	return report, nil
}

// Tracked returns how many achievements a résumé type covers
func (s *ResumeService) Tracked(resumeType string) int {
	return s.composer.Tracked(catalog.ParseSelector(resumeType))
}

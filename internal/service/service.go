package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/nicfin/finhealth-service/internal/models"
)

// InsightGenerator turns a rendered prompt into the three narrative panels.
// It is an external collaborator; its failures are reported, not retried.
type InsightGenerator interface {
	GeneratePanels(ctx context.Context, prompt string) (models.NarrativePanels, error)
}

// Service handles business logic
type Service struct {
	gen InsightGenerator
	log *logrus.Logger
}

// NewService initializes a new service
func NewService(gen InsightGenerator, log *logrus.Logger) *Service {
	return &Service{gen: gen, log: log}
}

// Analyze runs the health analysis for one month of data.
func (s *Service) Analyze(in models.AnalysisInput) (*models.AnalysisResult, error) {
	res, err := Analyze(in)
	if err != nil {
		return nil, err
	}
	s.log.Infof("Analysis completed: score %.2f, DSR %s, survival %s", res.HealthScore, res.DSRStatus, res.SurvivalStatus)
	return res, nil
}

// BuildDashboard runs the analysis, asks the insight generator for the
// narrative panels and merges both into one dashboard payload. The analyzer's
// validation error is propagated unchanged.
func (s *Service) BuildDashboard(ctx context.Context, in models.AnalysisInput) (*models.Dashboard, error) {
	numbers, err := Analyze(in)
	if err != nil {
		return nil, err
	}

	prompt, err := RenderPrompt(numbers)
	if err != nil {
		return nil, fmt.Errorf("failed to render insight prompt: %w", err)
	}

	panels, err := s.gen.GeneratePanels(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("insight generation failed: %w", err)
	}

	s.log.Infof("Dashboard built: score %.2f", numbers.HealthScore)
	return &models.Dashboard{Numbers: numbers, Panels: panels}, nil
}

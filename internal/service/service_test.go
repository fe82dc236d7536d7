package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicfin/finhealth-service/internal/models"
)

type fakeGenerator struct {
	panels    models.NarrativePanels
	err       error
	gotPrompt string
	calls     int
}

func (f *fakeGenerator) GeneratePanels(_ context.Context, prompt string) (models.NarrativePanels, error) {
	f.calls++
	f.gotPrompt = prompt
	return f.panels, f.err
}

func newTestService(gen InsightGenerator) *Service {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewService(gen, log)
}

func TestBuildDashboard_MergesNumbersAndPanels(t *testing.T) {
	gen := &fakeGenerator{panels: models.NarrativePanels{Left: "L", Middle: "M", Right: "R"}}
	svc := newTestService(gen)

	dash, err := svc.BuildDashboard(context.Background(), referenceInput())
	require.NoError(t, err)

	assert.InDelta(t, 97.92, dash.Numbers.HealthScore, 0.001)
	assert.Equal(t, gen.panels, dash.Panels)
	assert.Contains(t, gen.gotPrompt, "97.92", "prompt must carry the analysis numbers")
}

func TestBuildDashboard_PropagatesValidationError(t *testing.T) {
	gen := &fakeGenerator{}
	svc := newTestService(gen)

	_, err := svc.BuildDashboard(context.Background(), models.AnalysisInput{NetIncomeMonthly: -1})
	require.ErrorIs(t, err, ErrInvalidNetIncome)
	assert.Zero(t, gen.calls, "generator must not be called on invalid input")
}

func TestBuildDashboard_GeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream timeout")}
	svc := newTestService(gen)

	_, err := svc.BuildDashboard(context.Background(), referenceInput())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream timeout")
}

func TestServiceAnalyze_DelegatesToAnalyzer(t *testing.T) {
	svc := newTestService(&fakeGenerator{})

	res, err := svc.Analyze(referenceInput())
	require.NoError(t, err)
	assert.InDelta(t, 97.92, res.HealthScore, 0.001)

	_, err = svc.Analyze(models.AnalysisInput{})
	require.ErrorIs(t, err, ErrInvalidNetIncome)
}

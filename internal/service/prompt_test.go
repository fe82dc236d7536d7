package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicfin/finhealth-service/internal/models"
)

func TestRenderPrompt_SubstitutesEveryField(t *testing.T) {
	res, err := Analyze(referenceInput())
	require.NoError(t, err)

	prompt, err := RenderPrompt(res)
	require.NoError(t, err)

	assert.False(t, strings.Contains(prompt, "{"), "unsubstituted placeholder left in prompt")
	assert.Contains(t, prompt, "97.92")
	assert.Contains(t, prompt, "Excellent")
	assert.Contains(t, prompt, "food")
	assert.Contains(t, prompt, positiveInsight)
}

func TestRenderPrompt_InfiniteRatio(t *testing.T) {
	res, err := Analyze(models.AnalysisInput{NetIncomeMonthly: 5000})
	require.NoError(t, err)

	prompt, err := RenderPrompt(res)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Infinity")
	// no culprit exists when there are no needs at all
	assert.Contains(t, prompt, "none")
}

func TestRenderTemplate_UnknownPlaceholderFails(t *testing.T) {
	_, err := renderTemplate("score is {health_score} and {no_such_field}", map[string]string{
		"health_score": "97.92",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_field")
}

func TestRenderTemplate_UnusedFieldFails(t *testing.T) {
	_, err := renderTemplate("score is {health_score}", map[string]string{
		"health_score": "97.92",
		"dsr_pct":      "3.33",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dsr_pct")
}

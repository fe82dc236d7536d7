package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatio_MarshalInfinity(t *testing.T) {
	data, err := json.Marshal(Ratio(math.Inf(1)))
	require.NoError(t, err)
	assert.Equal(t, `"Infinity"`, string(data))
}

func TestRatio_MarshalNumber(t *testing.T) {
	data, err := json.Marshal(Ratio(1.25))
	require.NoError(t, err)
	assert.Equal(t, "1.25", string(data))
}

func TestRatio_UnmarshalRoundTrip(t *testing.T) {
	t.Run("Infinity", func(t *testing.T) {
		var r Ratio
		require.NoError(t, json.Unmarshal([]byte(`"Infinity"`), &r))
		assert.True(t, r.IsInf())
	})

	t.Run("Number", func(t *testing.T) {
		var r Ratio
		require.NoError(t, json.Unmarshal([]byte("2.5"), &r))
		assert.Equal(t, Ratio(2.5), r)
	})

	t.Run("Garbage", func(t *testing.T) {
		var r Ratio
		assert.Error(t, json.Unmarshal([]byte(`"fast"`), &r))
	})
}

func TestAnalysisResult_EncodesWithInfiniteRatio(t *testing.T) {
	res := AnalysisResult{
		HealthScore:    100,
		SurvivalRatio:  Ratio(math.Inf(1)),
		SurvivalStatus: StatusExcellent,
	}

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"survival_ratio":"Infinity"`)

	var decoded AnalysisResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.SurvivalRatio.IsInf())
}

func TestRatio_String(t *testing.T) {
	assert.Equal(t, "Infinity", Ratio(math.Inf(1)).String())
	assert.Equal(t, "1.25", Ratio(1.25).String())
}

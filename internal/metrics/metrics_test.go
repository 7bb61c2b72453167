package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, event string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, UIEventsTotal.WithLabelValues(event).Write(&m))
	return m.GetCounter().GetValue()
}

func TestUIEventsTotal(t *testing.T) {
	before := counterValue(t, "list-button:click")
	UIEventsTotal.WithLabelValues("list-button:click").Inc()
	assert.Equal(t, before+1, counterValue(t, "list-button:click"))
}

func TestSessionsActive(t *testing.T) {
	SessionsActive.Set(3)
	var m dto.Metric
	require.NoError(t, SessionsActive.Write(&m))
	assert.Equal(t, float64(3), m.GetGauge().GetValue())
}

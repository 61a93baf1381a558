package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"ship-registry/core/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveBuild(t *testing.T) {
	m := metrics.New()

	m.ObserveBuild(metrics.OutcomeSuccess, 120*time.Millisecond)
	m.ObserveBuild(metrics.OutcomeSuccess, 80*time.Millisecond)
	m.ObserveBuild(metrics.OutcomeFailure, time.Millisecond)
	m.SetCollection(10, 27, 2)

	count, err := testutil.GatherAndCount(m.Registry(), "ship_registry_builds_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(m.Registry(), "ship_registry_build_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNilMetrics(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveBuild(metrics.OutcomeSuccess, time.Second)
		m.SetCollection(1, 1, 0)
	})
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.SetCollection(3, 7, 0)

	app := fiber.New()
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "ship_registry_ships 3")
	assert.Contains(t, string(body), "ship_registry_mods 7")
}

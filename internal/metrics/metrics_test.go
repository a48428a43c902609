package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/posts", "200"))
	RecordAPIRequest("GET", "/api/v1/posts", "200", 15*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/posts", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordEventPublished(t *testing.T) {
	ok := testutil.ToFloat64(EventsPublished.WithLabelValues("test.subject", "ok"))
	failed := testutil.ToFloat64(EventsPublished.WithLabelValues("test.subject", "error"))

	RecordEventPublished("test.subject", nil)
	RecordEventPublished("test.subject", errors.New("boom"))
	RecordEventPublished("test.subject", errors.New("boom"))

	assert.Equal(t, ok+1, testutil.ToFloat64(EventsPublished.WithLabelValues("test.subject", "ok")))
	assert.Equal(t, failed+2, testutil.ToFloat64(EventsPublished.WithLabelValues("test.subject", "error")))
}

func TestRecordPushDown(t *testing.T) {
	RecordPushDown("posts", "match")
	assert.GreaterOrEqual(t, testutil.ToFloat64(AggregationPushedStages.WithLabelValues("posts", "match")), float64(1))
}

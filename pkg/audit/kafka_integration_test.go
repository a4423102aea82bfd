//go:build integration

package audit_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"assure/pkg/audit"
	"assure/pkg/testutil/containers"
)

type KafkaPublisherSuite struct {
	suite.Suite
	broker    string
	publisher *audit.KafkaPublisher
}

func TestKafkaPublisherSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaPublisherSuite))
}

func (s *KafkaPublisherSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.broker = mgr.GetRedpanda(s.T()).Broker

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	publisher, err := audit.NewKafkaPublisher(ctx, []string{s.broker}, "assure.application.audit", slog.Default())
	s.Require().NoError(err)
	s.publisher = publisher
}

func (s *KafkaPublisherSuite) TearDownSuite() {
	if s.publisher != nil {
		s.publisher.Close()
	}
}

// TestEmitDeliversEvent publishes an event and reads it back off the
// topic with an independent consumer.
func (s *KafkaPublisherSuite) TestEmitDeliversEvent() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	event := audit.Event{
		ApplicationID: 42,
		Action:        string(audit.EventApplicationSubmitted),
		RequestID:     "req-123",
		Detail:        map[string]any{"quote": float64(500)},
	}
	err := s.publisher.Emit(ctx, event)
	s.Require().NoError(err)

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.broker),
		kgo.ConsumeTopics("assure.application.audit"),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	s.Require().NoError(fetches.Err())

	records := fetches.Records()
	s.Require().NotEmpty(records)

	record := records[0]
	s.Equal("42", string(record.Key))

	var got audit.Event
	err = json.Unmarshal(record.Value, &got)
	s.Require().NoError(err)
	s.Equal(int64(42), got.ApplicationID)
	s.Equal(string(audit.EventApplicationSubmitted), got.Action)
	s.Equal("req-123", got.RequestID)
	s.Equal(float64(500), got.Detail["quote"])
	s.False(got.Timestamp.IsZero())
}

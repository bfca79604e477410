package broker

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"greenlake/internal/domain/constants"
	"greenlake/internal/domain/entity"
	"greenlake/internal/errors"
	"greenlake/internal/infra/metrics"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func hotelRecord() *entity.DatasetRecord {
	return &entity.DatasetRecord{
		Dataset: entity.DatasetHotels,
		Key:     "H-001",
		Line:    2,
		Fields:  map[string]string{"code": "H-001", "name": "Lakeside Inn"},
	}
}

func TestEncodeDecodeRecord(t *testing.T) {
	data, err := EncodeRecord(hotelRecord())
	require.NoError(t, err)

	got, err := DecodeRecord(data)
	require.NoError(t, err)
	assert.Equal(t, hotelRecord(), got)

	_, err = EncodeRecord(nil)
	assert.Error(t, err)

	_, err = DecodeRecord([]byte("{not json"))
	assert.Error(t, err)

	_, err = DecodeRecord([]byte(`{"dataset":"planets","key":"x"}`))
	assert.Error(t, err)
}

func TestMessageKeyAndAttributes(t *testing.T) {
	record := hotelRecord()

	assert.Equal(t, "hotels:H-001", MessageKey(record))
	assert.Equal(t, map[string]string{
		constants.AttrDataset: "hotels",
		constants.AttrKey:     "H-001",
	}, Attributes(record))
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.Publish(t.Context(), hotelRecord()))

	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "hotels", received.Message.Attributes[constants.AttrDataset])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	record, err := DecodeRecord(data)
	require.NoError(t, err)
	assert.Equal(t, "H-001", record.Key)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.Publish(t.Context(), hotelRecord())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestKafkaPublisher_Publish(t *testing.T) {
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "datasets" {
			return errors.Errorf("unexpected topic %s", msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "hotels:H-001" {
			return errors.Errorf("unexpected key %s", key)
		}

		return nil
	})
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := newKafkaPublisher(producer, "datasets", discardLogger())

	require.NoError(t, publisher.Publish(t.Context(), hotelRecord()))
	assert.ErrorIs(t, publisher.Publish(t.Context(), hotelRecord()), sarama.ErrOutOfBrokers)
	require.NoError(t, publisher.Close())
}

func TestDLQProducer_Send(t *testing.T) {
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewAsyncProducer(t, cfg)
	producer.ExpectInputWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		headers := map[string]string{}
		for _, h := range msg.Headers {
			headers[string(h.Key)] = string(h.Value)
		}
		if headers[HeaderOriginalTopic] != "datasets" {
			return errors.Errorf("unexpected original topic %q", headers[HeaderOriginalTopic])
		}
		if headers[HeaderError] != "hotel not found" {
			return errors.Errorf("unexpected error header %q", headers[HeaderError])
		}

		return nil
	})

	before := testutil.ToFloat64(metrics.DatasetMessagesDLQ)

	dlq := newDLQProducer(producer, "datasets-dlq", "datasets", discardLogger())
	require.NoError(t, dlq.Send(t.Context(), []byte("hotels:H-001"), []byte(`{}`), errors.New("hotel not found")))
	require.NoError(t, dlq.Close())

	assert.InDelta(t, before+1, testutil.ToFloat64(metrics.DatasetMessagesDLQ), 0.001)
}

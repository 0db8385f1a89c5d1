package services

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/models"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// NotifierConfig configures webhook delivery.
type NotifierConfig struct {
	CallbackURL    string
	CallbackSecret string
	MaxAttempts    int
	InitialDelay   time.Duration // doubled after every failed attempt
	RequestTimeout time.Duration // bounds each webhook POST and the Kafka publish
}

// Notifier delivers terminal outcomes at least once to the callback
// endpoint and publishes them as Kafka events.
type Notifier struct {
	poster      WebhookPoster
	kafkaWriter KafkaWriter
	cfg         NotifierConfig
	log         *zap.SugaredLogger
	now         func() time.Time
	timer       func() backoff.Timer // nil uses real timers

	wg sync.WaitGroup
}

// NewNotifier creates a new notifier. kafkaWriter may be nil.
func NewNotifier(poster WebhookPoster, kafkaWriter KafkaWriter, cfg NotifierConfig, log *zap.SugaredLogger) *Notifier {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Notifier{poster: poster, kafkaWriter: kafkaWriter, cfg: cfg, log: log, now: utcNow}
}

// Dispatch delivers n in a detached goroutine.
func (n *Notifier) Dispatch(note models.Notification) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		_ = n.Deliver(context.Background(), note)
	}()
}

// Wait blocks until every dispatched delivery returns.
func (n *Notifier) Wait() {
	n.wg.Wait()
}

// Deliver publishes the outcome event, then posts the webhook with
// exponential backoff until it succeeds or the attempt ceiling is reached.
func (n *Notifier) Deliver(ctx context.Context, note models.Notification) error {
	n.publishOutcome(ctx, note)

	if n.cfg.CallbackURL == "" || n.poster == nil {
		n.log.Infow("callback URL not configured, skipping notification", "request_id", note.RequestID)
		return nil
	}

	payload := models.WebhookPayload{
		RequestID:      note.RequestID,
		UserID:         note.UserID,
		TransactionID:  note.TransactionRef,
		Status:         note.Status,
		Message:        note.Message,
		Timestamp:      n.now().Format(time.RFC3339),
		CallbackSecret: n.cfg.CallbackSecret,
	}
	if payload.Message == "" {
		payload.Message = defaultNotifyMessage(note.Status)
	}

	attempt := 0
	post := func() error {
		attempt++
		reqCtx, cancel := n.requestContext(ctx)
		defer cancel()
		return n.poster.Post(reqCtx, payload)
	}
	onRetry := func(err error, next time.Duration) {
		n.log.Warnw("webhook delivery failed, retrying",
			"request_id", note.RequestID,
			"attempt", attempt,
			"max_attempts", n.cfg.MaxAttempts,
			"next_delay", next,
			"error", err,
		)
	}

	var timer backoff.Timer
	if n.timer != nil {
		timer = n.timer()
	}

	if err := backoff.RetryNotifyWithTimer(post, n.backOff(ctx), onRetry, timer); err != nil {
		n.log.Errorw("webhook delivery permanently failed",
			"request_id", note.RequestID,
			"attempts", attempt,
			"error", err,
		)
		return err
	}

	n.log.Infow("webhook delivered", "request_id", note.RequestID, "status", note.Status, "attempts", attempt)
	return nil
}

// backOff doubles InitialDelay between attempts with no jitter.
func (n *Notifier) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = n.cfg.InitialDelay
	exp.RandomizationFactor = 0
	exp.Multiplier = 2
	exp.MaxInterval = 24 * time.Hour
	exp.MaxElapsedTime = 0
	exp.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(n.cfg.MaxAttempts-1)), ctx)
}

func (n *Notifier) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if n.cfg.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, n.cfg.RequestTimeout)
}

// publishOutcome publishes the outcome to Kafka when a writer is configured.
func (n *Notifier) publishOutcome(ctx context.Context, note models.Notification) {
	if n.kafkaWriter == nil {
		n.log.Debugw("Kafka writer not configured, skipping publishing", "request_id", note.RequestID)
		return
	}

	event := models.OutcomeEvent{
		EventID:       uuid.NewString(),
		RequestID:     note.RequestID,
		UserID:        note.UserID,
		TransactionID: note.TransactionRef,
		Status:        note.Status,
		Message:       note.Message,
		Timestamp:     n.now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		n.log.Errorw("Failed to marshal outcome event for Kafka", "request_id", note.RequestID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(note.RequestID, 10)),
		Value: data,
	}

	pubCtx, cancel := n.requestContext(ctx)
	defer cancel()

	if err := n.kafkaWriter.WriteMessages(pubCtx, msg); err != nil {
		n.log.Errorw("Failed to publish outcome event to Kafka", "request_id", note.RequestID, "error", err)
	} else {
		n.log.Infow("Outcome event published to Kafka", "request_id", note.RequestID, "event_id", event.EventID, "status", event.Status)
	}
}

func defaultNotifyMessage(status string) string {
	if status == models.NotifyConfirmed {
		return "transaction confirmed"
	}
	return "transaction failed"
}

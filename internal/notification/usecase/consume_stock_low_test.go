package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shelfwise/shelfwise/internal/notification/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/instrument"
	"github.com/shelfwise/shelfwise/internal/pkg/mail"
	"github.com/shelfwise/shelfwise/internal/pkg/validator"
)

type fakeConfig struct {
	ints    map[string]int64
	strings map[string]string
}

func (f *fakeConfig) Close() error                        { return nil }
func (f *fakeConfig) GetSecond(key string) time.Duration  { return time.Duration(f.ints[key]) * time.Second }
func (f *fakeConfig) GetMinute(key string) time.Duration  { return time.Duration(f.ints[key]) * time.Minute }
func (f *fakeConfig) GetHour(key string) time.Duration    { return time.Duration(f.ints[key]) * time.Hour }
func (f *fakeConfig) GetInt(key string) int               { return int(f.ints[key]) }
func (f *fakeConfig) GetInt32(key string) int32           { return int32(f.ints[key]) }
func (f *fakeConfig) GetInt64(key string) int64           { return f.ints[key] }
func (f *fakeConfig) GetFloat64(key string) float64       { return float64(f.ints[key]) }
func (f *fakeConfig) GetBool(key string) bool             { return false }
func (f *fakeConfig) GetString(key string) string         { return f.strings[key] }
func (f *fakeConfig) GetArray(key string) []string        { return nil }
func (f *fakeConfig) GetMap(key string) map[string]string { return nil }

type fakeRepoDB struct {
	created   []entity.CreateDeliveryLog
	updated   []entity.UpdateDeliveryLog
	createErr error
}

func (f *fakeRepoDB) CreateDeliveryLog(_ context.Context, data entity.CreateDeliveryLog) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, data)
	return nil
}

func (f *fakeRepoDB) UpdateDeliveryLogStatus(_ context.Context, data entity.UpdateDeliveryLog) error {
	f.updated = append(f.updated, data)
	return nil
}

type fakeMail struct {
	sent []mail.Message
	errs []error
}

func (f *fakeMail) Send(_ context.Context, msg mail.Message) error {
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return err
		}
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeNumberID struct{ next int64 }

func (f *fakeNumberID) Generate() int64 {
	f.next++
	return f.next
}

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

func newTestUsecase(t *testing.T, db *fakeRepoDB, m *fakeMail) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	return New(Dependency{
		RepoDB:   db,
		RepoMail: m,
		Config: &fakeConfig{
			ints:    map[string]int64{"modules.notification.send_max_retries": 2},
			strings: map[string]string{"modules.notification.admin_email": "admin@inventory.com"},
		},
		UID:        &fakeNumberID{},
		Clock:      &fakeClock{now: time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)},
		Validator:  v,
		Instrument: instrument.NewNoop(),
	})
}

func TestConsumeStockLow(t *testing.T) {
	ctx := context.Background()

	t.Run("InvalidPayloadIsDropped", func(t *testing.T) {
		db := &fakeRepoDB{}
		m := &fakeMail{}
		uc := newTestUsecase(t, db, m)

		if err := uc.ConsumeStockLow(ctx, ConsumeStockLowInput{}); err != nil {
			t.Fatalf("expected invalid payload swallowed, got %v", err)
		}
		if len(db.created) != 0 || len(m.sent) != 0 {
			t.Fatal("expected no delivery attempt for invalid payload")
		}
	})

	t.Run("Success", func(t *testing.T) {
		db := &fakeRepoDB{}
		m := &fakeMail{}
		uc := newTestUsecase(t, db, m)

		err := uc.ConsumeStockLow(ctx, ConsumeStockLowInput{
			ItemID:    3,
			ItemName:  "Espresso Beans",
			Quantity:  2,
			Threshold: 5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(db.created) != 1 {
			t.Fatalf("expected one delivery log, got %d", len(db.created))
		}
		created := db.created[0]
		if created.Status != entity.DeliveryStatusPending {
			t.Fatalf("expected pending log, got %s", created.Status.String())
		}
		if created.Recipient != "admin@inventory.com" {
			t.Fatalf("unexpected recipient %q", created.Recipient)
		}

		if len(m.sent) != 1 {
			t.Fatalf("expected one email, got %d", len(m.sent))
		}
		if !strings.Contains(m.sent[0].HTMLBody, "Espresso Beans") {
			t.Fatalf("expected item name in body, got %q", m.sent[0].HTMLBody)
		}
		if !strings.Contains(m.sent[0].Subject, "Espresso Beans") {
			t.Fatalf("expected item name in subject, got %q", m.sent[0].Subject)
		}

		if len(db.updated) != 1 || db.updated[0].Status != entity.DeliveryStatusSent {
			t.Fatalf("expected log marked sent, got %+v", db.updated)
		}
	})

	t.Run("RetriesTransientFailure", func(t *testing.T) {
		db := &fakeRepoDB{}
		m := &fakeMail{errs: []error{errors.New("temporary smtp failure")}}
		uc := newTestUsecase(t, db, m)

		err := uc.ConsumeStockLow(ctx, ConsumeStockLowInput{
			ItemID:    3,
			ItemName:  "Espresso Beans",
			Quantity:  2,
			Threshold: 5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(m.sent) != 1 {
			t.Fatalf("expected send to succeed on retry, got %d", len(m.sent))
		}
		if len(db.updated) != 1 || db.updated[0].Status != entity.DeliveryStatusSent {
			t.Fatalf("expected log marked sent after retry, got %+v", db.updated)
		}
	})

	t.Run("PermanentFailureMarksFailed", func(t *testing.T) {
		failure := errors.New("mailbox unavailable")
		db := &fakeRepoDB{}
		m := &fakeMail{errs: []error{failure, failure, failure}}
		uc := newTestUsecase(t, db, m)

		err := uc.ConsumeStockLow(ctx, ConsumeStockLowInput{
			ItemID:    3,
			ItemName:  "Espresso Beans",
			Quantity:  2,
			Threshold: 5,
		})
		if err != nil {
			t.Fatalf("expected failure swallowed, got %v", err)
		}

		if len(db.updated) != 1 || db.updated[0].Status != entity.DeliveryStatusFailed {
			t.Fatalf("expected log marked failed, got %+v", db.updated)
		}
		if db.updated[0].Detail == nil || !strings.Contains(*db.updated[0].Detail, "mailbox unavailable") {
			t.Fatalf("expected failure detail recorded, got %+v", db.updated[0].Detail)
		}
	})
}

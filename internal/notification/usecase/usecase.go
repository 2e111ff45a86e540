package usecase

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/shelfwise/shelfwise/internal/notification/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/clock"
	"github.com/shelfwise/shelfwise/internal/pkg/config"
	"github.com/shelfwise/shelfwise/internal/pkg/instrument"
	"github.com/shelfwise/shelfwise/internal/pkg/mail"
	"github.com/shelfwise/shelfwise/internal/pkg/uid"
	"github.com/shelfwise/shelfwise/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	CreateDeliveryLog(ctx context.Context, data entity.CreateDeliveryLog) error
	UpdateDeliveryLogStatus(ctx context.Context, data entity.UpdateDeliveryLog) error
}

type repoMail interface {
	Send(ctx context.Context, msg mail.Message) error
}

type Usecase struct {
	repoDB    repoDB
	repoMail  repoMail
	cfg       config.Config
	uid       uid.NumberID
	clock     clock.Clocker
	validator validator.Validator
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	RepoMail   repoMail
	Config     config.Config
	UID        uid.NumberID
	Clock      clock.Clocker
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		repoMail:  dep.RepoMail,
		cfg:       dep.Config,
		uid:       dep.UID,
		clock:     dep.Clock,
		validator: dep.Validator,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.usecase").Start(ctx, name)
}

func (s *Usecase) renderTemplate(name, tpl string, data map[string]any) (string, error) {
	t, err := template.New(name).Option("missingkey=zero").Parse(tpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *Usecase) baseEmailTemplateData() map[string]any {
	return map[string]any{
		"company_name": "Shelfwise",
		"year":         s.clock.Now().Format("2006"),
	}
}

// sendWithRetry delivers the mail with fibonacci backoff. Transient SMTP
// failures are retried up to modules.notification.send_max_retries times.
func (s *Usecase) sendWithRetry(ctx context.Context, msg mail.Message) error {
	maxRetries := s.cfg.GetInt64("modules.notification.send_max_retries")

	b := retry.NewFibonacci(500 * time.Millisecond)
	b = retry.WithCappedDuration(5*time.Second, b)
	b = retry.WithMaxRetries(uint64(maxRetries), b)

	return retry.Do(ctx, b, func(ctx context.Context) error {
		if err := s.repoMail.Send(ctx, msg); err != nil {
			slog.WarnContext(ctx, "mail send attempt failed", "to", msg.To, "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
}

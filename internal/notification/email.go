package notification

import (
	"context"
	"fmt"

	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/config"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/domain"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/metrics"
	"github.com/wb-go/wbf/logger"
	gomail "gopkg.in/gomail.v2"
)

type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
	logger logger.Logger
}

func NewEmailNotifier(cfg config.SMTPConfig, logger logger.Logger) *EmailNotifier {
	if cfg.Host == "" {
		logger.Warn("smtp host is empty, email notifications disabled")
		return &EmailNotifier{dialer: nil, from: cfg.From, logger: logger}
	}

	return &EmailNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

func (n *EmailNotifier) NotifyOutcome(ctx context.Context, reg *domain.Registration, event *domain.Event) {
	if reg.Status == domain.RegistrationStatusWaitlist {
		subject := fmt.Sprintf("Команда «%s» в листе ожидания", reg.TeamName)
		body := fmt.Sprintf(
			"<h2>Вы в листе ожидания</h2>"+
				"<p>%s, свободных мест на «%s» (%s, %s) пока нет.</p>"+
				"<p>Команда «%s» добавлена в лист ожидания. Если место освободится, мы сразу напишем вам.</p>",
			reg.CaptainFirstName, event.Title, event.Date.Format("02.01.2006"), event.StartTime,
			reg.TeamName,
		)
		n.send(ctx, reg.CaptainEmail, subject, body)
		return
	}

	subject := fmt.Sprintf("Команда «%s» зарегистрирована", reg.TeamName)
	body := fmt.Sprintf(
		"<h2>Регистрация подтверждена!</h2>"+
			"<p>%s, команда «%s» (%d чел.) зарегистрирована на квиз «%s».</p>"+
			"<p>Дата: %s, начало в %s.<br>Место: %s.</p>",
		reg.CaptainFirstName, reg.TeamName, reg.TeamSize, event.Title,
		event.Date.Format("02.01.2006"), event.StartTime, event.Location,
	)
	n.send(ctx, reg.CaptainEmail, subject, body)
}

func (n *EmailNotifier) NotifyPromotion(ctx context.Context, reg *domain.Registration, event *domain.Event) {
	subject := fmt.Sprintf("Место для команды «%s» освободилось", reg.TeamName)
	body := fmt.Sprintf(
		"<h2>Вы участвуете!</h2>"+
			"<p>%s, для команды «%s» освободилось место на квизе «%s».</p>"+
			"<p>Регистрация подтверждена. Дата: %s, начало в %s.<br>Место: %s.</p>",
		reg.CaptainFirstName, reg.TeamName, event.Title,
		event.Date.Format("02.01.2006"), event.StartTime, event.Location,
	)
	n.send(ctx, reg.CaptainEmail, subject, body)
}

func (n *EmailNotifier) NotifyReminder(ctx context.Context, reg *domain.Registration, event *domain.Event) {
	subject := fmt.Sprintf("Напоминание: квиз «%s» уже скоро", event.Title)
	body := fmt.Sprintf(
		"<h2>Ждём вас на игре!</h2>"+
			"<p>%s, напоминаем: команда «%s» зарегистрирована на квиз «%s».</p>"+
			"<p>Дата: %s, начало в %s.<br>Место: %s.</p>"+
			"<p>Приходите за 15 минут до начала.</p>",
		reg.CaptainFirstName, reg.TeamName, event.Title,
		event.Date.Format("02.01.2006"), event.StartTime, event.Location,
	)
	n.send(ctx, reg.CaptainEmail, subject, body)
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, body string) {
	if n.dialer == nil {
		n.logger.Debug("email skipped (smtp disabled)", logger.String("subject", subject))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("email skipped (context cancelled)", logger.String("to", to))
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := n.dialer.DialAndSend(msg); err != nil {
		metrics.RecordNotificationFailure()
		n.logger.Error("failed to send email",
			logger.String("to", to),
			logger.String("error", err.Error()),
		)
	}
}

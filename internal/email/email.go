package email

import (
	"context"
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/agora/internal/agora_errors"
	"gopkg.in/gomail.v2"
)

type EmailPurpose string
type EmailBodyType string

const (
	KeyEmailSender                            = "SENDER_EMAIL"
	KeyEmailSenderPassword                    = "SENDER_EMAIL_PASSWORD"
	KeyEmailSMTPHost                          = "SMTP_HOST"
	KeyEmailSMTPPort                          = "SMTP_PORT"
	DefaultEmailSMTPHost                      = "smtp.gmail.com"
	DefaultEmailSMTPPort                      = 587
	KeyEmailFrom                              = "From"
	KeyEmailTo                                = "To"
	KeyEmailSubject                           = "Subject"
	KeyEmailBodyPlain           EmailBodyType = "text/plain"
	KeyEmailBodyHTML            EmailBodyType = "text/html"
	PurposeQnAAnswered          EmailPurpose  = "qna_answered"
	defaultEmailChannelCapacity               = 100
)

type Config struct {
	Sender   string
	Password string
	SMTPHost string
	SMTPPort int
}

type EmailRequest struct {
	To       []string
	Subject  string
	Body     string
	BodyType EmailBodyType
	Purpose  EmailPurpose
}

type emailJob struct {
	EmailRequest
	from string
}

// sender delivers a single message. The smtp dialer is the only
// implementation outside tests.
type sender interface {
	send(msg *gomail.Message) error
}

type smtpSender struct {
	dialer *gomail.Dialer
}

func (s smtpSender) send(msg *gomail.Message) error {
	return s.dialer.DialAndSend(msg)
}

type EmailService struct {
	config Config
	jobs   chan emailJob
	done   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
	sender sender
	logger *log.Entry
}

func newEmailService(cfg Config, s sender, capacity int) *EmailService {
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = DefaultEmailSMTPHost
	}
	if cfg.SMTPPort == 0 {
		cfg.SMTPPort = DefaultEmailSMTPPort
	}
	if s == nil {
		s = smtpSender{
			dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Sender, cfg.Password),
		}
	}
	return &EmailService{
		config: cfg,
		jobs:   make(chan emailJob, capacity),
		done:   make(chan struct{}),
		sender: s,
		logger: log.WithField("from", "email service"),
	}
}

// StartEmailWorkers starts n workers sending through the configured smtp
// server.
func StartEmailWorkers(n int, cfg Config) *EmailService {
	e := newEmailService(cfg, nil, defaultEmailChannelCapacity)
	e.start(n)
	return e
}

func (e *EmailService) start(n int) {
	if n <= 0 {
		e.logger.Warnf("invalid number of email workers %d. using 1", n)
		n = 1
	}
	if e.config.Sender == "" || e.config.Password == "" {
		e.logger.Warn("sender email is not configured. mails will not be sent")
	}
	for i := range n {
		e.wg.Add(1)
		go e.worker(i)
	}
	e.logger.Infof("started %d email workers", n)
}

func (e *EmailService) worker(id int) {
	defer e.wg.Done()
	logger := e.logger.WithField("worker", id)
	for {
		select {
		case <-e.done:
			return
		case job := <-e.jobs:
			msg := gomail.NewMessage()
			msg.SetHeader(KeyEmailFrom, job.from)
			msg.SetHeader(KeyEmailTo, job.To...)
			msg.SetHeader(KeyEmailSubject, job.Subject)
			msg.SetBody(string(job.BodyType), job.Body)

			if err := e.sender.send(msg); err != nil {
				logger.Errorf("cannot send %v mail to %v, %v", job.Purpose, job.To, err)
				continue
			}
			logger.Debugf("sent %v mail to %v", job.Purpose, job.To)
		}
	}
}

// Stop makes the workers exit. Queued mails are dropped.
func (e *EmailService) Stop() {
	e.once.Do(func() {
		close(e.done)
	})
	e.wg.Wait()
}

// Send queues the mail. It blocks while the queue is full, until ctx is done.
func (e *EmailService) Send(ctx context.Context, req EmailRequest) error {
	if e.config.Sender == "" || e.config.Password == "" {
		return fmt.Errorf("%w, sender email is not configured", agora_errors.ErrEmailServiceStopped)
	}
	if len(req.To) == 0 {
		return fmt.Errorf("%w, mail has no recipients", agora_errors.ErrInvalidRequest)
	}
	if req.BodyType == "" {
		req.BodyType = KeyEmailBodyPlain
	}

	select {
	case <-e.done:
		return agora_errors.ErrEmailServiceStopped
	default:
	}

	job := emailJob{
		from:         e.config.Sender,
		EmailRequest: req,
	}
	// when all the workers are dead, it shouldn't block indefinetely
	select {
	case <-e.done:
		return agora_errors.ErrEmailServiceStopped
	case <-ctx.Done():
		e.logger.Errorf("email job cancelled: %v", ctx.Err())
		return errors.Join(agora_errors.ErrEmailServiceStopped, ctx.Err())
	case e.jobs <- job:
		return nil
	}
}

package notify

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/scholarpay/scholarpay-backend/internal/settlement"
)

// SMTPConfig locates the mail relay used for receipts.
type SMTPConfig struct {
	Addr     string
	Username string
	Password string
	From     string
}

// SMTPSender delivers receipts over a plain SMTP relay.
type SMTPSender struct {
	cfg  SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender constructs an SMTPSender.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Addr == "" {
		return nil, errors.New("smtp addr is required")
	}
	if cfg.From == "" {
		return nil, errors.New("smtp from address is required")
	}
	return &SMTPSender{cfg: cfg, send: smtp.SendMail}, nil
}

// SendReceipt mails the receipt to the student and the verifier.
func (s *SMTPSender) SendReceipt(ctx context.Context, receipt settlement.Receipt) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	to := recipients(receipt)
	if len(to) == 0 {
		return fmt.Errorf("receipt for application %s has no recipients", receipt.ApplicationID)
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		host := s.cfg.Addr
		if i := strings.IndexByte(host, ':'); i >= 0 {
			host = host[:i]
		}
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, host)
	}

	if err := s.send(s.cfg.Addr, auth, s.cfg.From, to, receiptMessage(s.cfg.From, to, receipt)); err != nil {
		return fmt.Errorf("send receipt mail: %w", err)
	}
	return nil
}

func recipients(receipt settlement.Receipt) []string {
	var to []string
	if receipt.StudentEmail != "" {
		to = append(to, receipt.StudentEmail)
	}
	if receipt.VerifierEmail != "" && receipt.VerifierEmail != receipt.StudentEmail {
		to = append(to, receipt.VerifierEmail)
	}
	return to
}

func receiptMessage(from string, to []string, receipt settlement.Receipt) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: Payment received for application %s\r\n", receipt.ApplicationID)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")

	fmt.Fprintf(&b, "Dear %s,\r\n\r\n", receipt.StudentName)
	fmt.Fprintf(&b, "A payment of %.2f %s towards your scholarship application %s was received on %s.\r\n\r\n",
		receipt.AmountRupees, receipt.Currency, receipt.ApplicationID, receipt.PaidAt.Format("02 Jan 2006 15:04 MST"))
	fmt.Fprintf(&b, "Order reference: %s\r\nPayment reference: %s\r\n", receipt.OrderID, receipt.PaymentID)
	b.WriteString("\r\nThis is an automated message.\r\n")
	return []byte(b.String())
}

package services

import (
	"fmt"
	"mesero_server/structs"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

// EmailService mails the shift-close summary to the admin address. Without
// an API key or recipient it degrades to a no-op so local setups work
// without credentials.
type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	es := &EmailService{logger: logger, cfg: cfg}
	if cfg.Email.APIKey != "" {
		es.client = resend.NewClient(cfg.Email.APIKey)
	}
	return es
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Subject: subject,
		Html:    body,
	}

	_, err := es.client.Emails.Send(params)
	return err
}

func (es *EmailService) SendShiftReportEmail(summary *structs.ShiftSummary) error {
	if es.client == nil || es.cfg.Email.AdminEmail == "" {
		es.logger.Debug("Email disabled, skipping shift report")
		return nil
	}

	subject := fmt.Sprintf("Cierre de turno %s", time.Now().Format("2006-01-02"))

	var sb strings.Builder
	sb.WriteString("<h2>Resumen del turno</h2>")
	sb.WriteString(fmt.Sprintf("<p>Ventas totales: <b>S/%s</b></p>", formatCents(summary.TotalSales)))
	sb.WriteString(fmt.Sprintf("<p>Transacciones: <b>%d</b></p>", summary.TotalTransactions))
	sb.WriteString(fmt.Sprintf("<p>Ticket promedio: <b>S/%s</b></p>", formatCents(summary.AverageTicket)))

	if len(summary.ByPaymentMethod) > 0 {
		sb.WriteString("<h3>Por método de pago</h3><ul>")
		for method, total := range summary.ByPaymentMethod {
			sb.WriteString(fmt.Sprintf("<li>%s: S/%s</li>", method, formatCents(total)))
		}
		sb.WriteString("</ul>")
	}

	if len(summary.BestSellers) > 0 {
		sb.WriteString("<h3>Más vendidos</h3><ol>")
		for _, item := range summary.BestSellers {
			sb.WriteString(fmt.Sprintf("<li>%s x%d</li>", item.Name, item.Quantity))
		}
		sb.WriteString("</ol>")
	}

	return es.SendEmail([]string{es.cfg.Email.AdminEmail}, subject, sb.String())
}

func formatCents(cents uint64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

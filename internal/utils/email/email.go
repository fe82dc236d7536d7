package email

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/nicfin/finhealth-service/internal/config"
	"github.com/nicfin/finhealth-service/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendDashboardReport emails the computed dashboard as a plain-text report.
func (s *Sender) SendDashboardReport(to, username string, dash *models.Dashboard) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Your Monthly Financial Health Report"

	n := dash.Numbers
	body := fmt.Sprintf("Dear %s,\n\n", username)
	body += fmt.Sprintf(
		"Your financial health score this month is %.2f / 100.\n"+
			"Needs: %.2f%% of income | Wants: %.2f%% | Savings: %.2f%%\n"+
			"Debt-service ratio: %.2f%% (%s)\n"+
			"Survival ratio: %s (%s)\n\n",
		n.HealthScore, n.ActualNeedsPct, n.ActualWantsPct, n.ActualSavingsPct,
		n.DSRPct, n.DSRStatus, n.SurvivalRatio.String(), n.SurvivalStatus,
	)
	body += fmt.Sprintf("Findings: %s\n\n", n.WeaknessInsightText)
	body += fmt.Sprintf(
		"Overview:\n%s\n\nWeak point:\n%s\n\nNext steps:\n%s\n",
		dash.Panels.Left, dash.Panels.Middle, dash.Panels.Right,
	)
	body += "\nBest regards,\nFinHealth Service"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send report to %s: %v", to, err)
		return fmt.Errorf("failed to send report: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}

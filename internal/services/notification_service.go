// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/campuscell/placement-backend/internal/config"
	"github.com/campuscell/placement-backend/internal/models"
)

// NotificationService delivers status emails. Delivery is best effort; the
// callers fire it off the request path and only log failures.
type NotificationService struct {
	db     *gorm.DB
	config *config.Config
}

type EmailTemplate struct {
	Subject string
	Body    string
}

func NewNotificationService(db *gorm.DB, config *config.Config) *NotificationService {
	return &NotificationService{
		db:     db,
		config: config,
	}
}

// SendApplicationStatusNotification emails the student after a status change.
func (s *NotificationService) SendApplicationStatusNotification(application *models.Application, feedback string) error {
	student := application.Student
	if student.ID == uuid.Nil {
		if err := s.db.First(&student, application.StudentID).Error; err != nil {
			return fmt.Errorf("student not found: %w", err)
		}
	}

	internship := application.Internship
	if internship.ID == uuid.Nil {
		if err := s.db.First(&internship, application.InternshipID).Error; err != nil {
			return fmt.Errorf("internship not found: %w", err)
		}
	}
	title := internship.Title
	company := internship.Company

	data := map[string]interface{}{
		"StudentName":     student.Name,
		"InternshipTitle": title,
		"Company":         company,
		"Message":         BuildStatusMessage(application.Status, title, company),
		"Details":         FormatStatusDetails(application.Status, application.InterviewScheduled, application.OfferDetails),
		"Feedback":        feedback,
		"ApplicationURL":  fmt.Sprintf("%s/applications/%s", s.config.Frontend.BaseURL, application.ID),
	}

	subject := fmt.Sprintf("Application Update - %s", title)
	tmpl := s.getEmailTemplate("application_status")
	body, err := s.renderTemplate(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(student.Email, subject, body)
}

// SendSubmissionReviewNotification emails the recruiter after an admin
// approves or rejects their submission.
func (s *NotificationService) SendSubmissionReviewNotification(internship *models.Internship, approved bool, note string) error {
	if internship.SubmittedBy == nil {
		return nil
	}
	var recruiter models.User
	if err := s.db.First(&recruiter, *internship.SubmittedBy).Error; err != nil {
		return fmt.Errorf("recruiter not found: %w", err)
	}

	verdict := "rejected"
	templateType := "submission_rejected"
	if approved {
		verdict = "approved"
		templateType = "submission_approved"
	}

	data := map[string]interface{}{
		"RecruiterName":   recruiter.Name,
		"InternshipTitle": internship.Title,
		"Note":            note,
		"InternshipURL":   fmt.Sprintf("%s/internships/%s", s.config.Frontend.BaseURL, internship.ID),
	}

	subject := fmt.Sprintf("Internship Submission %s - %s", verdict, internship.Title)
	tmpl := s.getEmailTemplate(templateType)
	body, err := s.renderTemplate(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(recruiter.Email, subject, body)
}

// BuildStatusMessage phrases an application status for the student.
func BuildStatusMessage(status models.ApplicationStatus, title, company string) string {
	posting := fmt.Sprintf("%s at %s", title, company)
	switch status {
	case models.ApplicationStatusPendingMentorApproval:
		return fmt.Sprintf("Your application for %s is awaiting mentor approval.", posting)
	case models.ApplicationStatusApproved:
		return fmt.Sprintf("Your application for %s has been approved by your mentor.", posting)
	case models.ApplicationStatusRejected:
		return fmt.Sprintf("Your application for %s has been rejected.", posting)
	case models.ApplicationStatusInterviewScheduled:
		return fmt.Sprintf("An interview has been scheduled for your application to %s.", posting)
	case models.ApplicationStatusInterviewCompleted:
		return fmt.Sprintf("Your interview for %s has been marked as completed.", posting)
	case models.ApplicationStatusOffered:
		return fmt.Sprintf("Congratulations! You have received an offer for %s.", posting)
	case models.ApplicationStatusAccepted:
		return fmt.Sprintf("Your offer for %s has been recorded as accepted. Congratulations on your placement!", posting)
	default:
		return fmt.Sprintf("Your application for %s has been updated to %s.", posting, status)
	}
}

// FormatStatusDetails renders the interview or offer payload as one line for
// the status email. Empty when the status carries no payload.
func FormatStatusDetails(status models.ApplicationStatus, interview, offer models.JSONB) string {
	switch status {
	case models.ApplicationStatusInterviewScheduled:
		parts := jsonbFields(interview, [][2]string{
			{"date", "Date"},
			{"mode", "Mode"},
			{"location", "Location"},
			{"meeting_link", "Meeting link"},
		})
		if len(parts) == 0 {
			return ""
		}
		return "Interview details: " + strings.Join(parts, ", ")
	case models.ApplicationStatusOffered, models.ApplicationStatusAccepted:
		parts := jsonbFields(offer, [][2]string{
			{"stipend", "Stipend"},
			{"duration", "Duration"},
			{"start_date", "Start date"},
		})
		if len(parts) == 0 {
			return ""
		}
		return "Offer details: " + strings.Join(parts, ", ")
	}
	return ""
}

func jsonbFields(data models.JSONB, keys [][2]string) []string {
	var parts []string
	for _, kv := range keys {
		if v, ok := data[kv[0]].(string); ok && v != "" {
			parts = append(parts, kv[1]+": "+v)
		}
	}
	return parts
}

func (s *NotificationService) sendEmail(to, subject, body string) error {
	if s.config.Email.SMTPHost == "" {
		// Email not configured, just log
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("Email delivery skipped, SMTP not configured")
		return nil
	}

	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s", to, subject, body))

	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, msg)
}

func (s *NotificationService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *NotificationService) getEmailTemplate(templateType string) EmailTemplate {
	templates := map[string]EmailTemplate{
		"application_status": {
			Subject: "Application Update",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Application Update</h2>
	<p>Hello {{.StudentName}},</p>
	<p>{{.Message}}</p>
	{{if .Details}}<p>{{.Details}}</p>{{end}}
	{{if .Feedback}}<p>Feedback: {{.Feedback}}</p>{{end}}
	<a href="{{.ApplicationURL}}">View Application</a>
	<p>Best regards,<br>Campus Placement Cell</p>
</body>
</html>`,
		},
		"submission_approved": {
			Subject: "Internship Submission Approved",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Submission Approved</h2>
	<p>Hello {{.RecruiterName}},</p>
	<p>Your internship posting "{{.InternshipTitle}}" has been approved and is now live on the portal.</p>
	{{if .Note}}<p>Note from the placement cell: {{.Note}}</p>{{end}}
	<a href="{{.InternshipURL}}">View Posting</a>
	<p>Best regards,<br>Campus Placement Cell</p>
</body>
</html>`,
		},
		"submission_rejected": {
			Subject: "Internship Submission Rejected",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Submission Rejected</h2>
	<p>Hello {{.RecruiterName}},</p>
	<p>Your internship posting "{{.InternshipTitle}}" was not approved.</p>
	{{if .Note}}<p>Reason: {{.Note}}</p>{{end}}
	<p>You may revise and submit a new posting at any time.</p>
	<p>Best regards,<br>Campus Placement Cell</p>
</body>
</html>`,
		},
	}

	if tmpl, exists := templates[templateType]; exists {
		return tmpl
	}

	return EmailTemplate{
		Subject: "Notification",
		Body:    "<p>{{.Message}}</p>",
	}
}

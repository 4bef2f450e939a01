package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"unichip/internal/domain"
	"unichip/internal/metrics"

	"gorm.io/gorm"
)

const (
	inquiryAcceptedMessage = "submission received"
	inquiryMaskedMessage   = "submission received, we will process it"
)

// Notifier delivers an inquiry notification
type Notifier interface {
	Send(ctx context.Context, to string, cc []string, subject, body string) error
}

// RecipientSource resolves who is notified about a new inquiry
type RecipientSource interface {
	Recipients(ctx context.Context) (string, []string, error)
}

// IntakePolicy controls how the inquiry path reports downstream failures
type IntakePolicy struct {
	// MaskFailuresForUX reports a store failure as accepted so a visitor
	// never sees a failed submission.
	MaskFailuresForUX bool
	NotifyTimeout     time.Duration
}

// SubmitResult is returned for every accepted submission
type SubmitResult struct {
	ID      uint   `json:"id,omitempty"`
	Message string `json:"message"`
	Masked  bool   `json:"-"`
}

// InquiryService implements contact form intake
type InquiryService struct {
	db         *gorm.DB
	notifier   Notifier
	recipients RecipientSource
	policy     IntakePolicy
	now        func() time.Time
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(db *gorm.DB, notifier Notifier, recipients RecipientSource, policy IntakePolicy) *InquiryService {
	return &InquiryService{
		db:         db,
		notifier:   notifier,
		recipients: recipients,
		policy:     policy,
		now:        time.Now,
	}
}

// Policy returns the intake policy in force
func (s *InquiryService) Policy() IntakePolicy {
	return s.policy
}

// Submit stores an inquiry and notifies staff. Notification failures never
// change the result; store failures and panics are masked when the policy
// says so.
func (s *InquiryService) Submit(ctx context.Context, f Fields) (result *SubmitResult, err error) {
	if s.policy.MaskFailuresForUX {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[CONTACT] Submit panicked, reporting success: %v", rec)
				metrics.RecordInquiry("masked")
				result, err = &SubmitResult{Message: inquiryMaskedMessage, Masked: true}, nil
			}
		}()
	}

	if errs := ValidateInquiry(f); len(errs) > 0 {
		log.Printf("[CONTACT] Submit rejected: %s", strings.Join(errs, "; "))
		metrics.RecordInquiry("rejected")
		return nil, validationFailed("name and email required", errs)
	}

	inquiry := &domain.Inquiry{
		Company:   f.Trimmed("company"),
		Name:      f.Trimmed("name"),
		Email:     f.Trimmed("email"),
		Phone:     f.Trimmed("phone"),
		Message:   f.Trimmed("message"),
		CreatedAt: s.now().UTC(),
	}

	log.Printf("[CONTACT] Submit request: name=%s, email=%s", inquiry.Name, inquiry.Email)

	// Request cancellation must not drop a lead. notify keeps its own bound.
	ctx = context.WithoutCancel(ctx)

	storeErr := s.db.WithContext(ctx).Create(inquiry).Error
	if storeErr != nil {
		log.Printf("[CONTACT] Submit failed: database error: %v", storeErr)
	} else {
		log.Printf("[CONTACT] Submit successful: id=%d, name=%s, email=%s", inquiry.ID, inquiry.Name, inquiry.Email)
	}

	// The notification also goes out when the insert failed; the email is
	// then the only copy of the lead.
	s.notify(ctx, inquiry)

	if storeErr != nil {
		if !s.policy.MaskFailuresForUX {
			return nil, storeUnavailable(storeErr)
		}
		metrics.RecordInquiry("masked")
		return &SubmitResult{Message: inquiryMaskedMessage, Masked: true}, nil
	}

	metrics.RecordInquiry("accepted")
	return &SubmitResult{ID: inquiry.ID, Message: inquiryAcceptedMessage}, nil
}

func (s *InquiryService) notify(ctx context.Context, inquiry *domain.Inquiry) {
	if s.notifier == nil {
		return
	}

	if s.policy.NotifyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.policy.NotifyTimeout)
		defer cancel()
	}

	to, cc, err := s.recipients.Recipients(ctx)
	if err != nil {
		log.Printf("[CONTACT] Warning: failed to resolve notification recipients: %v", err)
		metrics.RecordNotification(false)
		return
	}

	subject, body := buildInquiryEmail(inquiry)
	if err := s.notifier.Send(ctx, to, cc, subject, body); err != nil {
		log.Printf("[CONTACT] Warning: failed to send notification email: %v", err)
		metrics.RecordNotification(false)
		return
	}

	log.Printf("[CONTACT] Notification email sent to %s (cc %d) for inquiry from %s", to, len(cc), inquiry.Email)
	metrics.RecordNotification(true)
}

// buildInquiryEmail renders the staff notification for an inquiry
func buildInquiryEmail(inquiry *domain.Inquiry) (string, string) {
	subject := fmt.Sprintf("Chip inquiry - %s from %s", inquiry.Name, inquiry.Company)

	body := fmt.Sprintf(`New chip inquiry

Company: %s
Name: %s
Email: %s
Phone: %s
Submitted: %s UTC

Message:
%s
`, inquiry.Company, inquiry.Name, inquiry.Email, inquiry.Phone,
		inquiry.CreatedAt.UTC().Format("2006-01-02 15:04:05"), inquiry.Message)

	return subject, body
}

package service

import (
	"fmt"
	"log/slog"

	"github.com/Luka12345937/MULUMBA-Beleive/internal/core/domain"
	"github.com/google/uuid"
)

// PaymentService exposes the dashboard's payment actions. None of them
// reach a real gateway yet.
type PaymentService struct {
	log *slog.Logger
}

func NewPaymentService(log *slog.Logger) *PaymentService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &PaymentService{log: log}
}

func (s *PaymentService) Options() []domain.MobileMoneyOperator {
	ops := make([]domain.MobileMoneyOperator, len(domain.MobileMoneyOperators))
	copy(ops, domain.MobileMoneyOperators)
	return ops
}

func (s *PaymentService) PhysicalInstructions() string {
	return domain.PhysicalPaymentInstructions
}

func (s *PaymentService) SocialLinks() []domain.SocialLink {
	return domain.SocialLinks()
}

// RequestMobileMoney records the student's intent to pay through operator
// and returns the placeholder request shown to the user.
func (s *PaymentService) RequestMobileMoney(student *domain.Student, operator string) (*domain.PaymentRequest, error) {
	var op domain.MobileMoneyOperator
	for _, known := range domain.MobileMoneyOperators {
		if string(known) == operator {
			op = known
			break
		}
	}
	if op == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperator, operator)
	}

	req := &domain.PaymentRequest{
		Reference:    uuid.New().String(),
		Operator:     op,
		StudentEmail: student.Email(),
		Message:      fmt.Sprintf("Redirecting to %s...", op),
	}

	s.log.Info("mobile money payment requested",
		"reference", req.Reference,
		"operator", string(op),
		"email", student.Email(),
	)
	return req, nil
}

func (s *PaymentService) VerifyPayments(student *domain.Student) error {
	s.log.Info("payment verification requested", "email", student.Email())
	return ErrFeatureUnavailable
}

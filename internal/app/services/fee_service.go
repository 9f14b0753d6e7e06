package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/repositories"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
	"github.com/kaanb/campuscore/internal/pkg/helpers"
)

// FeeService defines the interface for fee operations. Marking a fee paid
// resolves the student's outstanding fee reminders.
type FeeService interface {
	CreateFee(ctx context.Context, fee *models.Fee) error
	GetFeeByID(ctx context.Context, id int64) (*models.Fee, error)
	ListFees(ctx context.Context, filter repositories.FeeFilter, page, size int) ([]*models.Fee, int64, error)
	UpdateFee(ctx context.Context, fee *models.Fee) error
	MarkFeePaid(ctx context.Context, id int64) (*models.Fee, error)
	DeleteFee(ctx context.Context, id int64) error
}

type feeServiceImpl struct {
	feeRepo     repositories.IFeeRepository
	studentRepo repositories.IStudentRepository
	notifier    Notifier
	now         func() time.Time
}

// NewFeeService creates a new fee service instance.
func NewFeeService(feeRepo repositories.IFeeRepository, studentRepo repositories.IStudentRepository, notifier Notifier) FeeService {
	return &feeServiceImpl{
		feeRepo:     feeRepo,
		studentRepo: studentRepo,
		notifier:    notifier,
		now:         time.Now,
	}
}

func (s *feeServiceImpl) CreateFee(ctx context.Context, fee *models.Fee) error {
	if fee.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidationFailed)
	}
	if _, err := s.studentRepo.GetByID(ctx, fee.StudentID); err != nil {
		return err
	}
	if err := s.feeRepo.Create(ctx, fee); err != nil {
		return err
	}
	s.notifier.FeeCreated(ctx, fee)
	return nil
}

func (s *feeServiceImpl) GetFeeByID(ctx context.Context, id int64) (*models.Fee, error) {
	return s.feeRepo.GetByID(ctx, id)
}

func (s *feeServiceImpl) ListFees(ctx context.Context, filter repositories.FeeFilter, page, size int) ([]*models.Fee, int64, error) {
	return s.feeRepo.List(ctx, filter, page, size)
}

func (s *feeServiceImpl) UpdateFee(ctx context.Context, fee *models.Fee) error {
	if fee.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidationFailed)
	}

	current, err := s.feeRepo.GetByID(ctx, fee.ID)
	if err != nil {
		return err
	}
	fee.StudentID = current.StudentID

	// A payment arriving through a plain update still settles reminders.
	becamePaid := fee.IsPaid && !current.IsPaid
	if becamePaid && fee.PaymentDate == nil {
		now := s.now()
		fee.PaymentDate = &now
	}

	if err := s.feeRepo.Update(ctx, fee); err != nil {
		return err
	}
	switch {
	case becamePaid:
		s.notifier.FeePaid(ctx, fee)
	case fee.IsOverdue(helpers.Today(s.now())):
		s.notifier.FeeOverdue(ctx, fee)
	}
	return nil
}

// MarkFeePaid settles a fee, stamps the payment date and writes the receipt
// notification.
func (s *feeServiceImpl) MarkFeePaid(ctx context.Context, id int64) (*models.Fee, error) {
	current, err := s.feeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.IsPaid {
		return nil, apperrors.NewConflictError("fee is already paid")
	}

	fee, err := s.feeRepo.MarkPaid(ctx, id, s.now())
	if err != nil {
		return nil, err
	}
	s.notifier.FeePaid(ctx, fee)
	return fee, nil
}

func (s *feeServiceImpl) DeleteFee(ctx context.Context, id int64) error {
	return s.feeRepo.Delete(ctx, id)
}

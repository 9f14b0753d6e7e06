package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
)

func TestMarkFeePaid(t *testing.T) {
	fixed := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)

	t.Run("settles the fee and fires the receipt hook", func(t *testing.T) {
		repo := newFakeFeeRepo(&models.Fee{ID: 1, StudentID: 7, Amount: 500, IsPaid: false})
		notifier := &recordingNotifier{}
		svc := &feeServiceImpl{
			feeRepo:     repo,
			studentRepo: newFakeStudentRepo(),
			notifier:    notifier,
			now:         func() time.Time { return fixed },
		}

		fee, err := svc.MarkFeePaid(context.Background(), 1)
		if err != nil {
			t.Fatalf("MarkFeePaid() error: %v", err)
		}
		if !fee.IsPaid {
			t.Error("fee not marked paid")
		}
		if fee.PaymentDate == nil || !fee.PaymentDate.Equal(fixed) {
			t.Errorf("PaymentDate = %v, want %v", fee.PaymentDate, fixed)
		}
		if !notifier.called("FeePaid") {
			t.Error("expected FeePaid notification")
		}
	})

	t.Run("already paid is a conflict", func(t *testing.T) {
		paid := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
		repo := newFakeFeeRepo(&models.Fee{ID: 1, StudentID: 7, Amount: 500, IsPaid: true, PaymentDate: &paid})
		svc := NewFeeService(repo, newFakeStudentRepo(), &recordingNotifier{})

		_, err := svc.MarkFeePaid(context.Background(), 1)
		if !errors.Is(err, apperrors.ErrConflict) {
			t.Errorf("error = %v, want conflict", err)
		}
	})

	t.Run("unknown fee", func(t *testing.T) {
		svc := NewFeeService(newFakeFeeRepo(), newFakeStudentRepo(), &recordingNotifier{})
		_, err := svc.MarkFeePaid(context.Background(), 99)
		if !errors.Is(err, apperrors.ErrFeeNotFound) {
			t.Errorf("error = %v, want ErrFeeNotFound", err)
		}
	})
}

func TestUpdateFeePaymentTransition(t *testing.T) {
	fixed := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)

	t.Run("update flipping is_paid stamps the date and notifies", func(t *testing.T) {
		due := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
		repo := newFakeFeeRepo(&models.Fee{ID: 1, StudentID: 7, Amount: 500, DueDate: due})
		notifier := &recordingNotifier{}
		svc := &feeServiceImpl{
			feeRepo:     repo,
			studentRepo: newFakeStudentRepo(),
			notifier:    notifier,
			now:         func() time.Time { return fixed },
		}

		update := &models.Fee{ID: 1, StudentID: 99, Amount: 500, DueDate: due, IsPaid: true}
		if err := svc.UpdateFee(context.Background(), update); err != nil {
			t.Fatalf("UpdateFee() error: %v", err)
		}
		if update.StudentID != 7 {
			t.Errorf("StudentID changed to %d, want 7", update.StudentID)
		}
		if update.PaymentDate == nil || !update.PaymentDate.Equal(fixed) {
			t.Errorf("PaymentDate = %v, want %v", update.PaymentDate, fixed)
		}
		if !notifier.called("FeePaid") {
			t.Error("expected FeePaid notification on payment transition")
		}
	})

	t.Run("update of an already paid fee does not re-notify", func(t *testing.T) {
		paid := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
		repo := newFakeFeeRepo(&models.Fee{ID: 1, StudentID: 7, Amount: 500, IsPaid: true, PaymentDate: &paid})
		notifier := &recordingNotifier{}
		svc := NewFeeService(repo, newFakeStudentRepo(), notifier)

		update := &models.Fee{ID: 1, Amount: 600, IsPaid: true, PaymentDate: &paid}
		if err := svc.UpdateFee(context.Background(), update); err != nil {
			t.Fatalf("UpdateFee() error: %v", err)
		}
		if notifier.called("FeePaid") {
			t.Error("FeePaid must only fire on the unpaid-to-paid transition")
		}
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		svc := NewFeeService(newFakeFeeRepo(), newFakeStudentRepo(), &recordingNotifier{})
		err := svc.UpdateFee(context.Background(), &models.Fee{ID: 1, Amount: 0})
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("error = %v, want validation failure", err)
		}
	})
}

func TestUpdateFeeOverdueReminder(t *testing.T) {
	fixed := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)

	newService := func(fee *models.Fee) (*feeServiceImpl, *recordingNotifier) {
		notifier := &recordingNotifier{}
		return &feeServiceImpl{
			feeRepo:     newFakeFeeRepo(fee),
			studentRepo: newFakeStudentRepo(),
			notifier:    notifier,
			now:         func() time.Time { return fixed },
		}, notifier
	}

	t.Run("unpaid fee past its due date fires the overdue hook", func(t *testing.T) {
		due := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
		svc, notifier := newService(&models.Fee{ID: 1, StudentID: 7, Amount: 500, DueDate: due})

		update := &models.Fee{ID: 1, Amount: 500, DueDate: due}
		if err := svc.UpdateFee(context.Background(), update); err != nil {
			t.Fatalf("UpdateFee() error: %v", err)
		}
		if !notifier.called("FeeOverdue") {
			t.Error("expected FeeOverdue notification for an unpaid fee past its due date")
		}
		if notifier.called("FeePaid") {
			t.Error("FeePaid must not fire while the fee is unpaid")
		}
	})

	t.Run("unpaid fee not yet due stays quiet", func(t *testing.T) {
		due := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
		svc, notifier := newService(&models.Fee{ID: 1, StudentID: 7, Amount: 500, DueDate: due})

		if err := svc.UpdateFee(context.Background(), &models.Fee{ID: 1, Amount: 500, DueDate: due}); err != nil {
			t.Fatalf("UpdateFee() error: %v", err)
		}
		if notifier.called("FeeOverdue") {
			t.Error("FeeOverdue must not fire before the due date")
		}
	})

	t.Run("fee due today is not overdue", func(t *testing.T) {
		due := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
		svc, notifier := newService(&models.Fee{ID: 1, StudentID: 7, Amount: 500, DueDate: due})

		if err := svc.UpdateFee(context.Background(), &models.Fee{ID: 1, Amount: 500, DueDate: due}); err != nil {
			t.Fatalf("UpdateFee() error: %v", err)
		}
		if notifier.called("FeeOverdue") {
			t.Error("a fee due today must not be reported overdue")
		}
	})
}

func TestCreateFee(t *testing.T) {
	student := &models.Student{ID: 7, IsActive: true}

	t.Run("notifies the student of the new due", func(t *testing.T) {
		notifier := &recordingNotifier{}
		svc := NewFeeService(newFakeFeeRepo(), newFakeStudentRepo(student), notifier)

		fee := &models.Fee{StudentID: 7, Amount: 1200, DueDate: time.Now().AddDate(0, 1, 0)}
		if err := svc.CreateFee(context.Background(), fee); err != nil {
			t.Fatalf("CreateFee() error: %v", err)
		}
		if !notifier.called("FeeCreated") {
			t.Error("expected FeeCreated notification")
		}
	})

	t.Run("rejects unknown student", func(t *testing.T) {
		svc := NewFeeService(newFakeFeeRepo(), newFakeStudentRepo(), &recordingNotifier{})
		err := svc.CreateFee(context.Background(), &models.Fee{StudentID: 99, Amount: 100})
		if !errors.Is(err, apperrors.ErrStudentNotFound) {
			t.Errorf("error = %v, want ErrStudentNotFound", err)
		}
	})
}

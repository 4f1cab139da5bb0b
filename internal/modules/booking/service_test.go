package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leprive/internal/domain"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) SlotTaken(ctx context.Context, companionID int64, date, timeOfDay string) (bool, error) {
	args := m.Called(ctx, companionID, date, timeOfDay)
	return args.Bool(0), args.Error(1)
}

type MockCompanionRepository struct {
	mock.Mock
}

func (m *MockCompanionRepository) GetByID(ctx context.Context, id int64) (*domain.Companion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Companion), args.Error(1)
}

func isabellaCompanion() *domain.Companion {
	return &domain.Companion{
		ID:       1,
		Name:     "Isabella",
		Price:    "R$ 800/h",
		Location: "São Paulo",
	}
}

func validDraft() Draft {
	d := NewDraft()
	d.Name = "Ana"
	d.Email = "ana@x.com"
	d.Phone = "+551199999999"
	d.Date = "2025-06-10"
	d.Time = "19:00"
	d.Location = "Hotel X"
	return d
}

func newTestService(bookings *MockBookingRepository, companions *MockCompanionRepository) *Service {
	s := NewService(bookings, companions, NewStore(time.Hour))
	s.now = func() time.Time { return testNow }
	return s
}

func TestService_Submit_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCompanions := new(MockCompanionRepository)
	svc := newTestService(mockBookings, mockCompanions)

	mockCompanions.On("GetByID", mock.Anything, int64(1)).Return(isabellaCompanion(), nil)
	mockBookings.On("SlotTaken", mock.Anything, int64(1), "2025-06-10", "19:00").Return(false, nil)
	mockBookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.CompanionID == 1 &&
			b.ClientName == "Ana" &&
			b.TotalPrice == "R$ 800/h" &&
			b.Status == domain.BookingPending
	})).Return(nil)

	conf, err := svc.Submit(context.Background(), 1, validDraft())

	require.NoError(t, err)
	assert.Equal(t, int64(999), conf.BookingID)
	assert.Equal(t, "Isabella", conf.CompanionName)
	assert.Equal(t, "2025-06-10", conf.Date)
	assert.Equal(t, "19:00", conf.Time)
	assert.Equal(t, "2 hours", conf.Duration)
	assert.Equal(t, "dinner", conf.Service)
	assert.Equal(t, "R$ 800/h", conf.Total, "total is the listing price, unconditionally")
	assert.Equal(t, domain.BookingPending, conf.Status)
	mockBookings.AssertExpectations(t)
}

func TestService_Submit_IncompleteDraft(t *testing.T) {
	svc := newTestService(new(MockBookingRepository), new(MockCompanionRepository))

	_, err := svc.Submit(context.Background(), 1, NewDraft())

	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestService_Submit_SlotTaken(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCompanions := new(MockCompanionRepository)
	svc := newTestService(mockBookings, mockCompanions)

	mockCompanions.On("GetByID", mock.Anything, int64(1)).Return(isabellaCompanion(), nil)
	mockBookings.On("SlotTaken", mock.Anything, int64(1), "2025-06-10", "19:00").Return(true, nil)

	_, err := svc.Submit(context.Background(), 1, validDraft())

	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestService_Submit_UniqueViolationMapsToSlotUnavailable(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCompanions := new(MockCompanionRepository)
	svc := newTestService(mockBookings, mockCompanions)

	mockCompanions.On("GetByID", mock.Anything, int64(1)).Return(isabellaCompanion(), nil)
	mockBookings.On("SlotTaken", mock.Anything, int64(1), "2025-06-10", "19:00").Return(false, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_no_double_booking"})

	_, err := svc.Submit(context.Background(), 1, validDraft())

	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestService_Submit_RepositoryFailureIsNetworkError(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCompanions := new(MockCompanionRepository)
	svc := newTestService(mockBookings, mockCompanions)

	mockCompanions.On("GetByID", mock.Anything, int64(1)).Return(isabellaCompanion(), nil)
	mockBookings.On("SlotTaken", mock.Anything, int64(1), "2025-06-10", "19:00").Return(false, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := svc.Submit(context.Background(), 1, validDraft())

	assert.ErrorIs(t, err, ErrNetwork)
}

func TestService_Submit_UnknownListing(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCompanions := new(MockCompanionRepository)
	svc := newTestService(mockBookings, mockCompanions)

	mockCompanions.On("GetByID", mock.Anything, int64(42)).Return(nil, domain.ErrNotFound)

	_, err := svc.Submit(context.Background(), 42, validDraft())

	assert.ErrorIs(t, err, ErrListingNotFound)
}

// Full walk through the wizard for listing 1, per the gallery flow.
func TestService_WizardScenario(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCompanions := new(MockCompanionRepository)
	svc := newTestService(mockBookings, mockCompanions)

	mockCompanions.On("GetByID", mock.Anything, int64(1)).Return(isabellaCompanion(), nil)

	sess, err := svc.OpenWizard(context.Background(), "client-1", 1)
	require.NoError(t, err)
	assert.Equal(t, StepPersonalInfo, sess.Wizard.Step)
	assert.Equal(t, "R$ 800/h", sess.Wizard.Listing.Price)

	_, fieldErrs, err := svc.SetFields("client-1", map[string]string{
		"name":  "Ana",
		"email": "ana@x.com",
		"phone": "+551199999999",
	})
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)

	sess, fieldErrs, err = svc.Next("client-1")
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.Equal(t, StepDetails, sess.Wizard.Step)

	_, _, err = svc.SetFields("client-1", map[string]string{
		"date":     "2025-06-10",
		"time":     "19:00",
		"duration": "2",
		"service":  "dinner",
		"location": "Hotel X",
	})
	require.NoError(t, err)

	sess, fieldErrs, err = svc.Next("client-1")
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.Equal(t, StepConfirmation, sess.Wizard.Step)

	summary := sess.Wizard.Summary()
	assert.Equal(t, "Isabella", summary.CompanionName)
	assert.Equal(t, "2025-06-10 at 19:00", summary.DateTime)
	assert.Equal(t, "2 hours", summary.Duration)
	assert.Equal(t, "dinner", summary.Service)
	assert.Equal(t, "R$ 800/h", summary.Total)

	mockBookings.On("SlotTaken", mock.Anything, int64(1), "2025-06-10", "19:00").Return(false, nil)
	mockBookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.CompanionID == 1
	})).Return(nil)

	conf, fieldErrs, err := svc.Confirm(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, int64(1), conf.CompanionID, "listing id must be handed to the submission collaborator")

	// The wizard closed and the draft is gone.
	_, err = svc.GetWizard("client-1")
	assert.ErrorIs(t, err, ErrNoSession)

	// A new instance for another listing starts from scratch.
	mockCompanions.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.Companion{ID: 2, Name: "Valentina", Price: "R$ 650/h"}, nil)
	sess, err = svc.OpenWizard(context.Background(), "client-1", 2)
	require.NoError(t, err)
	assert.Equal(t, NewDraft(), sess.Wizard.Draft)
	mockBookings.AssertExpectations(t)
}

func TestService_Confirm_RequiresConfirmationStep(t *testing.T) {
	mockCompanions := new(MockCompanionRepository)
	svc := newTestService(new(MockBookingRepository), mockCompanions)

	mockCompanions.On("GetByID", mock.Anything, int64(1)).Return(isabellaCompanion(), nil)
	_, err := svc.OpenWizard(context.Background(), "client-1", 1)
	require.NoError(t, err)

	_, _, err = svc.Confirm(context.Background(), "client-1")

	assert.ErrorIs(t, err, ErrNotOnConfirmStep)
}

func TestService_Confirm_FailureKeepsDraft(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCompanions := new(MockCompanionRepository)
	svc := newTestService(mockBookings, mockCompanions)

	mockCompanions.On("GetByID", mock.Anything, int64(1)).Return(isabellaCompanion(), nil)
	_, err := svc.OpenWizard(context.Background(), "client-1", 1)
	require.NoError(t, err)

	_, _, err = svc.SetFields("client-1", map[string]string{
		"name": "Ana", "email": "ana@x.com", "phone": "+551199999999",
	})
	require.NoError(t, err)
	_, _, err = svc.Next("client-1")
	require.NoError(t, err)
	_, _, err = svc.SetFields("client-1", map[string]string{
		"date": "2025-06-10", "time": "19:00", "location": "Hotel X",
	})
	require.NoError(t, err)
	_, _, err = svc.Next("client-1")
	require.NoError(t, err)

	mockBookings.On("SlotTaken", mock.Anything, int64(1), "2025-06-10", "19:00").Return(true, nil)

	_, _, err = svc.Confirm(context.Background(), "client-1")
	require.ErrorIs(t, err, ErrSlotUnavailable)

	// The entered draft survives so the client can pick another slot.
	sess, err := svc.GetWizard("client-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", sess.Wizard.Draft.Name)
	assert.Equal(t, StepConfirmation, sess.Wizard.Step)
}

func TestService_CloseWizardClearsDraft(t *testing.T) {
	mockCompanions := new(MockCompanionRepository)
	svc := newTestService(new(MockBookingRepository), mockCompanions)

	mockCompanions.On("GetByID", mock.Anything, int64(1)).Return(isabellaCompanion(), nil)
	_, err := svc.OpenWizard(context.Background(), "client-1", 1)
	require.NoError(t, err)

	_, _, err = svc.SetFields("client-1", map[string]string{"name": "Ana"})
	require.NoError(t, err)

	svc.CloseWizard("client-1")

	_, err = svc.GetWizard("client-1")
	assert.ErrorIs(t, err, ErrNoSession)
}

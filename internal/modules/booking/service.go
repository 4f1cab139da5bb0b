package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"leprive/internal/domain"
	"leprive/internal/pkg/logger"
)

// Confirmation is what a successful submission returns to the client.
type Confirmation struct {
	BookingID     int64                `json:"booking_id"`
	CompanionID   int64                `json:"companion_id"`
	CompanionName string               `json:"companion_name"`
	Date          string               `json:"date"`
	Time          string               `json:"time"`
	Duration      string               `json:"duration"`
	Service       string               `json:"service"`
	Total         string               `json:"total"`
	Status        domain.BookingStatus `json:"status"`
}

// Service drives wizard sessions and implements the submission collaborator.
type Service struct {
	bookings   BookingRepository
	companions CompanionRepository
	store      *Store
	log        *zap.Logger
	now        func() time.Time
}

func NewService(bookings BookingRepository, companions CompanionRepository, store *Store) *Service {
	return &Service{
		bookings:   bookings,
		companions: companions,
		store:      store,
		log:        logger.Get().Named("booking"),
		now:        time.Now,
	}
}

// OpenWizard starts (or restarts) the client's wizard against one listing.
// The draft always starts empty; nothing leaks from a previous instance.
func (s *Service) OpenWizard(ctx context.Context, clientID string, companionID int64) (*Session, error) {
	c, err := s.companions.GetByID(ctx, companionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	listing := Listing{
		ID:       c.ID,
		Name:     c.Name,
		Price:    c.Price,
		Location: c.Location,
	}
	return s.store.Open(clientID, listing), nil
}

func (s *Service) GetWizard(clientID string) (*Session, error) {
	sess, ok := s.store.Get(clientID)
	if !ok {
		return nil, ErrNoSession
	}
	return sess, nil
}

// SetFields applies field updates to the open draft. Unknown field names are
// reported, known ones are applied regardless; per-step validation happens on
// the transition, not on input.
func (s *Service) SetFields(clientID string, fields map[string]string) (*Session, []FieldError, error) {
	sess, ok := s.store.Get(clientID)
	if !ok {
		return nil, nil, ErrNoSession
	}

	var errs []FieldError
	for name, value := range fields {
		if fe := sess.Wizard.SetField(name, value); fe != nil {
			errs = append(errs, *fe)
		}
	}
	return sess, errs, nil
}

func (s *Service) Next(clientID string) (*Session, []FieldError, error) {
	sess, ok := s.store.Get(clientID)
	if !ok {
		return nil, nil, ErrNoSession
	}

	errs := sess.Wizard.Next(s.now())
	return sess, errs, nil
}

func (s *Service) Previous(clientID string) (*Session, error) {
	sess, ok := s.store.Get(clientID)
	if !ok {
		return nil, ErrNoSession
	}

	sess.Wizard.Previous()
	return sess, nil
}

// CloseWizard discards the draft, whether cancelled or already confirmed.
func (s *Service) CloseWizard(clientID string) {
	s.store.Close(clientID)
}

// Confirm runs the terminal transition: the full draft is revalidated, handed
// to the submitter, and on success the wizard closes and the draft is gone.
// On any submission failure the session survives untouched so the client can
// correct and resubmit without re-entering fields.
func (s *Service) Confirm(ctx context.Context, clientID string) (*Confirmation, []FieldError, error) {
	sess, ok := s.store.Get(clientID)
	if !ok {
		return nil, nil, ErrNoSession
	}
	if sess.Wizard.Step != StepConfirmation {
		return nil, nil, ErrNotOnConfirmStep
	}

	if errs := ValidateDraft(sess.Wizard.Draft, s.now()); len(errs) > 0 {
		return nil, errs, ErrValidationFailed
	}

	conf, err := s.Submit(ctx, sess.Wizard.Listing.ID, sess.Wizard.Draft)
	if err != nil {
		return nil, nil, err
	}

	s.store.Close(clientID)
	return conf, nil, nil
}

// Submit persists the draft as a pending booking against the listing. The
// total is the listing price carried verbatim; see Summary.
func (s *Service) Submit(ctx context.Context, listingID int64, draft Draft) (*Confirmation, error) {
	if errs := ValidateDraft(draft, s.now()); len(errs) > 0 {
		return nil, ErrValidationFailed
	}

	c, err := s.companions.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	taken, err := s.bookings.SlotTaken(ctx, listingID, draft.Date, draft.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if taken {
		return nil, ErrSlotUnavailable
	}

	b := &domain.Booking{
		CompanionID: listingID,
		ClientName:  draft.Name,
		ClientEmail: draft.Email,
		ClientPhone: draft.Phone,
		Date:        draft.Date,
		Time:        draft.Time,
		Duration:    draft.Duration,
		Service:     draft.Service,
		Location:    draft.Location,
		Requests:    draft.Requests,
		TotalPrice:  c.Price,
		Status:      domain.BookingPending,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Lost the race for the slot to a concurrent submission.
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	s.log.Info("booking submitted",
		zap.Int64("booking_id", b.ID),
		zap.Int64("companion_id", listingID),
		zap.String("date", draft.Date),
		zap.String("time", draft.Time),
	)

	return &Confirmation{
		BookingID:     b.ID,
		CompanionID:   c.ID,
		CompanionName: c.Name,
		Date:          draft.Date,
		Time:          draft.Time,
		Duration:      fmt.Sprintf("%s hours", draft.Duration),
		Service:       string(draft.Service),
		Total:         c.Price,
		Status:        b.Status,
	}, nil
}

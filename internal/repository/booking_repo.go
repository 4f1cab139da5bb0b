package repository

import (
	"context"
	"errors"

	"leprive/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var booking domain.Booking

	err := r.db.WithContext(ctx).
		Preload("Companion").
		First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// SlotTaken reports whether a pending or confirmed booking already holds the
// (companion, date, time) slot. The unique index idx_no_double_booking backs
// the same rule at the database level for concurrent submissions.
func (r *BookingRepository) SlotTaken(ctx context.Context, companionID int64, date, timeOfDay string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("companion_id = ? AND date = ? AND time = ? AND status IN ?",
			companionID, date, timeOfDay,
			[]string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Count(&count).Error

	return count > 0, err
}

func (r *BookingRepository) GetByCompanionID(ctx context.Context, companionID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking

	err := r.db.WithContext(ctx).
		Where("companion_id = ?", companionID).
		Order("date ASC, time ASC").
		Find(&bookings).Error

	return bookings, err
}

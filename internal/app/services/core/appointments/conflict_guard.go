package appointments

import (
	"clinic-staff-service/internal/app/contracts"
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/exceptions"
	"clinic-staff-service/internal/pkg/timezone"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConflictGuard answers whether a (doctor, day, time) slot is held by an
// appointment. Cancelled appointments free their slot; done ones do not.
type ConflictGuard struct {
	Repository contracts.AppointmentRepository
	Normalizer *timezone.Normalizer
}

func NewConflictGuard(repository contracts.AppointmentRepository, normalizer *timezone.Normalizer) *ConflictGuard {
	return &ConflictGuard{
		Repository: repository,
		Normalizer: normalizer,
	}
}

// IsBooked returns the occupying appointment, if any. excludeID may be
// primitive.NilObjectID.
func (g *ConflictGuard) IsBooked(ctx context.Context, slot models.SlotKey, excludeID primitive.ObjectID) (*models.Appointment, error) {
	dayStart, dayEnd := g.Normalizer.DayBounds(slot.Date)
	return g.Repository.FindOccupying(ctx, models.OccupancyQuery{
		DoctorUserID: slot.DoctorUserID,
		DayStart:     dayStart,
		DayEnd:       dayEnd,
		Time:         slot.Time,
		ExcludeID:    excludeID,
	})
}

func (g *ConflictGuard) AssertAvailable(ctx context.Context, slot models.SlotKey, excludeID primitive.ObjectID) error {
	existing, err := g.IsBooked(ctx, slot, excludeID)
	if err != nil {
		return err
	}
	if existing != nil {
		return exceptions.ErrSlotAlreadyBooked(existing.ID.Hex())
	}
	return nil
}

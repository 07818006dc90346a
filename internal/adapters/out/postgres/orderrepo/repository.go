package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database at version zero.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order under the optimistic version guard: the row
// is written only if its stored version still equals the version the
// aggregate was loaded at, and the stored version advances by one. A write
// that matches no row is diagnosed as either a missing order or a lost
// version race.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	loadedVersion := aggregate.Version()
	dto := fromDomain(aggregate)
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.diagnoseFailedUpdate(ctx, aggregate.ID(), loadedVersion)
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) diagnoseFailedUpdate(ctx context.Context, id kernel.UUID, loadedVersion int) error {
	var current OrderDTO
	err := r.db.WithContext(ctx).Select("version").First(&current, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	if err != nil {
		return err
	}

	return errs.NewVersionConflictError("order", loadedVersion, current.Version)
}

// Get retrieves an order by ID together with its nested request records.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindIDsWithDueDeadlines returns the identifiers of orders with at least one
// expired deadline: an elapsed client response window without an active
// revision, an unanswered cancellation request, or an unanswered open
// dispute. Candidates are re-checked under the per-order lock before any
// transition is applied, so a stale match here is harmless.
func (r *GormOrderRepository) FindIDsWithDueDeadlines(ctx context.Context, now time.Time) ([]kernel.UUID, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT id
		FROM orders
		WHERE (
			status = ?
			AND auto_complete_at IS NOT NULL AND auto_complete_at <= ?
			AND revision_status NOT IN (?, ?)
		) OR (
			status = ?
			AND cancellation_status = ?
			AND cancellation_response_deadline IS NOT NULL AND cancellation_response_deadline <= ?
		) OR (
			dispute_status = ?
			AND dispute_response_deadline IS NOT NULL AND dispute_response_deadline <= ?
		)
		ORDER BY id
	`,
		int(order.StatusDelivered), now,
		int(order.RevisionPendingResponse), int(order.RevisionInProgress),
		int(order.StatusCancellationPending), int(order.CancellationPendingResponse), now,
		int(order.DisputeOpen), now,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]kernel.UUID, 0)
	for rows.Next() {
		var raw uuid.UUID
		if err = rows.Scan(&raw); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

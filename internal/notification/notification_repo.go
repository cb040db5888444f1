package notification

import (
	"context"
	"database/sql"

	"go-ems/internal/shared/connection"
	"go-ems/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, row *Notification) error
	Update(ctx context.Context, row *Notification) error
	FindByIDAndUser(ctx context.Context, companyID, userID, id string) (*Notification, error)
	FindAllByUser(ctx context.Context, companyID, userID string, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, companyID, userID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.GormWithTx(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, row *Notification) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) Update(ctx context.Context, row *Notification) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *repository) FindByIDAndUser(ctx context.Context, companyID, userID, id string) (*Notification, error) {
	var row Notification
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("user_id = ?", userID).
		First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindAllByUser(ctx context.Context, companyID, userID string, limit int) ([]Notification, error) {
	var rows []Notification
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) CountUnread(ctx context.Context, companyID, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Notification{}).
		Scopes(tenant.Scope(companyID)).
		Where("user_id = ?", userID).
		Where("read = FALSE").
		Count(&count).Error
	return count, err
}

package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go-ems/internal/employee"
	notificationerrors "go-ems/internal/notification/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	unreadCountTTL      = 30 * time.Second
	relayForwardTimeout = 5 * time.Second
)

// NotifyInput adalah kontrak dispatch untuk modul lain. Target boleh
// berupa user_id langsung atau employee_id yang diresolusi ke user-nya.
type NotifyInput struct {
	CompanyID   string
	EmployeeID  string
	UserID      string
	Audience    string
	Type        string
	Title       string
	Message     string
	ActionURL   string
	ActionLabel string
	Meta        map[string]any
}

// Dispatcher is the write side other modules depend on. Persistence is
// mandatory; relay forwarding is best-effort and never fails the call.
type Dispatcher interface {
	Notify(ctx context.Context, in NotifyInput) error
}

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	Dispatcher
	GetAll(ctx context.Context, companyID, userID string) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, companyID, userID, id string) (NotificationResponse, error)
	UnreadCount(ctx context.Context, companyID, userID string) (UnreadCountResponse, error)
}

type service struct {
	repo      Repository
	employees employee.Repository
	relay     RelayClient
	cache     *redis.Client
	logger    *zap.Logger
}

func NewService(repo Repository, employees employee.Repository, relay RelayClient, cache *redis.Client) Service {
	return &service{
		repo:      repo,
		employees: employees,
		relay:     relay,
		cache:     cache,
		logger:    zap.L().Named("notification_service"),
	}
}

func (s *service) Notify(ctx context.Context, in NotifyInput) error {
	if in.Audience != AudienceEmployee && in.Audience != AudienceAdmin {
		return notificationerrors.ErrInvalidAudience
	}

	companyUUID, err := uuid.Parse(in.CompanyID)
	if err != nil {
		return notificationerrors.ErrInvalidUserID
	}

	targetUserID := in.UserID
	if targetUserID == "" {
		if in.EmployeeID == "" {
			return notificationerrors.ErrMissingTarget
		}
		targetUserID, err = s.employees.ResolveUserID(ctx, in.CompanyID, in.EmployeeID)
		if err != nil {
			return err
		}
	}

	userUUID, err := uuid.Parse(targetUserID)
	if err != nil {
		return notificationerrors.ErrInvalidUserID
	}

	var meta []byte
	if in.Meta != nil {
		meta, err = json.Marshal(in.Meta)
		if err != nil {
			return err
		}
	}

	row := &Notification{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		UserID:      userUUID,
		Audience:    in.Audience,
		Type:        in.Type,
		Title:       in.Title,
		Message:     in.Message,
		ActionURL:   in.ActionURL,
		ActionLabel: in.ActionLabel,
		Meta:        meta,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return err
	}

	s.invalidateUnreadCount(ctx, in.CompanyID, targetUserID)
	s.forwardToRelay(*row, in.Meta)

	return nil
}

// forwardToRelay berjalan di goroutine sendiri: kegagalan relay hanya
// dicatat, baris notifikasi sudah aman di database.
func (s *service) forwardToRelay(row Notification, meta map[string]any) {
	if s.relay == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), relayForwardTimeout)
		defer cancel()

		msg := BroadcastMessage{
			NotificationID: row.ID.String(),
			CompanyID:      row.CompanyID.String(),
			UserID:         row.UserID.String(),
			Audience:       row.Audience,
			Type:           row.Type,
			Title:          row.Title,
			Message:        row.Message,
			ActionURL:      row.ActionURL,
			ActionLabel:    row.ActionLabel,
			Meta:           meta,
			CreatedAt:      row.CreatedAt.Format(time.RFC3339),
		}
		if err := s.relay.Broadcast(ctx, msg); err != nil {
			s.logger.Warn("relay broadcast failed",
				zap.String("notification_id", row.ID.String()),
				zap.String("user_id", row.UserID.String()),
				zap.Error(err),
			)
		}
	}()
}

func (s *service) GetAll(ctx context.Context, companyID, userID string) ([]NotificationResponse, error) {
	rows, err := s.repo.FindAllByUser(ctx, companyID, userID, 100)
	if err != nil {
		return nil, err
	}

	resp := make([]NotificationResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

// MarkRead is idempotent: marking an already-read notification returns
// the row unchanged.
func (s *service) MarkRead(ctx context.Context, companyID, userID, id string) (NotificationResponse, error) {
	row, err := s.repo.FindByIDAndUser(ctx, companyID, userID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return NotificationResponse{}, notificationerrors.ErrNotificationNotFound
		}
		return NotificationResponse{}, err
	}

	if !row.Read {
		now := time.Now()
		row.Read = true
		row.ReadAt = &now
		if err := s.repo.Update(ctx, row); err != nil {
			return NotificationResponse{}, err
		}
		s.invalidateUnreadCount(ctx, companyID, userID)
	}

	return mapToResponse(*row), nil
}

func (s *service) UnreadCount(ctx context.Context, companyID, userID string) (UnreadCountResponse, error) {
	key := UnreadCountKey(companyID, userID)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Result()
		if err == nil {
			if count, perr := strconv.ParseInt(cached, 10, 64); perr == nil {
				return UnreadCountResponse{UserID: userID, Count: count}, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("unread count cache read failed", zap.Error(err))
		}
	}

	count, err := s.repo.CountUnread(ctx, companyID, userID)
	if err != nil {
		return UnreadCountResponse{}, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, strconv.FormatInt(count, 10), unreadCountTTL).Err(); err != nil {
			s.logger.Warn("unread count cache write failed", zap.Error(err))
		}
	}

	return UnreadCountResponse{UserID: userID, Count: count}, nil
}

func (s *service) invalidateUnreadCount(ctx context.Context, companyID, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, UnreadCountKey(companyID, userID)).Err(); err != nil {
		s.logger.Warn("unread count cache invalidation failed", zap.Error(err))
	}
}

func UnreadCountKey(companyID, userID string) string {
	return fmt.Sprintf("notification:unread:%s:%s", companyID, userID)
}

func mapToResponse(row Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:          row.ID.String(),
		UserID:      row.UserID.String(),
		Audience:    row.Audience,
		Type:        row.Type,
		Title:       row.Title,
		Message:     row.Message,
		ActionURL:   row.ActionURL,
		ActionLabel: row.ActionLabel,
		Read:        row.Read,
		CreatedAt:   row.CreatedAt.Format(time.RFC3339),
	}
	if len(row.Meta) > 0 {
		var meta map[string]any
		if err := json.Unmarshal(row.Meta, &meta); err == nil {
			resp.Meta = meta
		}
	}
	if row.ReadAt != nil {
		v := row.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &v
	}
	return resp
}

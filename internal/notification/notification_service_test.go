package notification_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-ems/internal/employee"
	"go-ems/internal/notification"
	notificationerrors "go-ems/internal/notification/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeNotificationRepository struct {
	rows     []*notification.Notification
	createFn func(ctx context.Context, row *notification.Notification) error
}

func (f *fakeNotificationRepository) WithTx(tx *sql.Tx) notification.Repository { return f }

func (f *fakeNotificationRepository) Create(ctx context.Context, row *notification.Notification) error {
	if f.createFn != nil {
		if err := f.createFn(ctx, row); err != nil {
			return err
		}
	}
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeNotificationRepository) Update(ctx context.Context, row *notification.Notification) error {
	for i, existing := range f.rows {
		if existing.ID == row.ID {
			f.rows[i] = row
		}
	}
	return nil
}

func (f *fakeNotificationRepository) FindByIDAndUser(ctx context.Context, companyID, userID, id string) (*notification.Notification, error) {
	for _, row := range f.rows {
		if row.ID.String() == id && row.UserID.String() == userID {
			clone := *row
			return &clone, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeNotificationRepository) FindAllByUser(ctx context.Context, companyID, userID string, limit int) ([]notification.Notification, error) {
	var out []notification.Notification
	for _, row := range f.rows {
		if row.UserID.String() == userID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepository) CountUnread(ctx context.Context, companyID, userID string) (int64, error) {
	var count int64
	for _, row := range f.rows {
		if row.UserID.String() == userID && !row.Read {
			count++
		}
	}
	return count, nil
}

type fakeEmployeeResolver struct {
	userID string
}

func (f *fakeEmployeeResolver) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	return nil, errors.New("not configured")
}

func (f *fakeEmployeeResolver) BelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	return true, nil
}

func (f *fakeEmployeeResolver) ResolveUserID(ctx context.Context, companyID, employeeID string) (string, error) {
	if f.userID == "" {
		return "", errors.New("employee not found")
	}
	return f.userID, nil
}

type fakeRelayClient struct {
	calls chan notification.BroadcastMessage
	err   error
}

func newFakeRelayClient() *fakeRelayClient {
	return &fakeRelayClient{calls: make(chan notification.BroadcastMessage, 4)}
}

func (f *fakeRelayClient) Broadcast(ctx context.Context, msg notification.BroadcastMessage) error {
	f.calls <- msg
	return f.err
}

func waitForBroadcast(t *testing.T, relay *fakeRelayClient) notification.BroadcastMessage {
	t.Helper()
	select {
	case msg := <-relay.calls:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("relay broadcast was never attempted")
		return notification.BroadcastMessage{}
	}
}

func TestNotify_PersistsAndForwards(t *testing.T) {
	repo := &fakeNotificationRepository{}
	relay := newFakeRelayClient()
	userID := uuid.NewString()
	employees := &fakeEmployeeResolver{userID: userID}

	svc := notification.NewService(repo, employees, relay, nil)

	err := svc.Notify(context.Background(), notification.NotifyInput{
		CompanyID:  uuid.NewString(),
		EmployeeID: uuid.NewString(),
		Audience:   notification.AudienceEmployee,
		Type:       notification.TypeSalaryCorrected,
		Title:      "Salary corrected",
		Message:    "Your salary has been corrected.",
		Meta:       map[string]any{"new_total": 2900},
	})

	assert.NoError(t, err)
	if assert.Len(t, repo.rows, 1) {
		assert.Equal(t, userID, repo.rows[0].UserID.String())
		assert.False(t, repo.rows[0].Read)
	}

	msg := waitForBroadcast(t, relay)
	assert.Equal(t, userID, msg.UserID)
	assert.Equal(t, notification.TypeSalaryCorrected, msg.Type)
}

func TestNotify_RelayFailureStillPersists(t *testing.T) {
	repo := &fakeNotificationRepository{}
	relay := newFakeRelayClient()
	relay.err = errors.New("relay unreachable")
	userID := uuid.NewString()

	svc := notification.NewService(repo, &fakeEmployeeResolver{userID: userID}, relay, nil)

	err := svc.Notify(context.Background(), notification.NotifyInput{
		CompanyID: uuid.NewString(),
		UserID:    userID,
		Audience:  notification.AudienceAdmin,
		Type:      notification.TypeSalaryDeleted,
		Title:     "Salary record removed",
		Message:   "A salary record was removed.",
	})

	assert.NoError(t, err)
	assert.Len(t, repo.rows, 1)
	waitForBroadcast(t, relay)
}

func TestNotify_PersistFailurePropagates(t *testing.T) {
	repo := &fakeNotificationRepository{
		createFn: func(ctx context.Context, row *notification.Notification) error {
			return errors.New("insert failed")
		},
	}
	relay := newFakeRelayClient()
	userID := uuid.NewString()

	svc := notification.NewService(repo, &fakeEmployeeResolver{userID: userID}, relay, nil)

	err := svc.Notify(context.Background(), notification.NotifyInput{
		CompanyID: uuid.NewString(),
		UserID:    userID,
		Audience:  notification.AudienceEmployee,
		Type:      notification.TypeSalaryCorrected,
		Title:     "t",
		Message:   "m",
	})

	assert.Error(t, err)
	// tidak ada forward kalau baris gagal disimpan
	select {
	case <-relay.calls:
		t.Fatal("relay should not receive anything")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNotify_RejectsMissingTarget(t *testing.T) {
	svc := notification.NewService(&fakeNotificationRepository{}, &fakeEmployeeResolver{}, nil, nil)

	err := svc.Notify(context.Background(), notification.NotifyInput{
		CompanyID: uuid.NewString(),
		Audience:  notification.AudienceEmployee,
		Type:      notification.TypeSalaryCorrected,
		Title:     "t",
		Message:   "m",
	})

	assert.ErrorIs(t, err, notificationerrors.ErrMissingTarget)
}

func TestNotify_RejectsUnknownAudience(t *testing.T) {
	svc := notification.NewService(&fakeNotificationRepository{}, &fakeEmployeeResolver{}, nil, nil)

	err := svc.Notify(context.Background(), notification.NotifyInput{
		CompanyID: uuid.NewString(),
		UserID:    uuid.NewString(),
		Audience:  "everyone",
		Type:      notification.TypeSalaryCorrected,
		Title:     "t",
		Message:   "m",
	})

	assert.ErrorIs(t, err, notificationerrors.ErrInvalidAudience)
}

func TestMarkRead_Idempotent(t *testing.T) {
	repo := &fakeNotificationRepository{}
	userID := uuid.New()
	companyID := uuid.New()
	row := &notification.Notification{
		ID:        uuid.New(),
		CompanyID: companyID,
		UserID:    userID,
		Audience:  notification.AudienceEmployee,
		Type:      notification.TypeSalaryCorrected,
		Title:     "t",
		Message:   "m",
	}
	repo.rows = append(repo.rows, row)

	svc := notification.NewService(repo, &fakeEmployeeResolver{}, nil, nil)

	first, err := svc.MarkRead(context.Background(), companyID.String(), userID.String(), row.ID.String())
	assert.NoError(t, err)
	assert.True(t, first.Read)

	second, err := svc.MarkRead(context.Background(), companyID.String(), userID.String(), row.ID.String())
	assert.NoError(t, err)
	assert.True(t, second.Read)
	assert.Equal(t, first.ReadAt, second.ReadAt)
}

func TestUnreadCount_CacheMissFillsCache(t *testing.T) {
	repo := &fakeNotificationRepository{}
	userID := uuid.New()
	companyID := uuid.New()
	repo.rows = append(repo.rows, &notification.Notification{
		ID:        uuid.New(),
		CompanyID: companyID,
		UserID:    userID,
	})

	dbRedis, redisMock := redismock.NewClientMock()
	cacheKey := notification.UnreadCountKey(companyID.String(), userID.String())
	redisMock.ExpectGet(cacheKey).RedisNil()
	redisMock.ExpectSet(cacheKey, "1", 30*time.Second).SetVal("OK")

	svc := notification.NewService(repo, &fakeEmployeeResolver{}, nil, dbRedis)

	resp, err := svc.UnreadCount(context.Background(), companyID.String(), userID.String())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), resp.Count)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestUnreadCount_CacheHitSkipsDatabase(t *testing.T) {
	repo := &fakeNotificationRepository{}
	userID := uuid.New()
	companyID := uuid.New()

	dbRedis, redisMock := redismock.NewClientMock()
	cacheKey := notification.UnreadCountKey(companyID.String(), userID.String())
	redisMock.ExpectGet(cacheKey).SetVal("7")

	svc := notification.NewService(repo, &fakeEmployeeResolver{}, nil, dbRedis)

	resp, err := svc.UnreadCount(context.Background(), companyID.String(), userID.String())
	assert.NoError(t, err)
	assert.Equal(t, int64(7), resp.Count)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestUnreadCount_CountsOnlyUnread(t *testing.T) {
	repo := &fakeNotificationRepository{}
	userID := uuid.New()
	companyID := uuid.New()

	for i := 0; i < 3; i++ {
		repo.rows = append(repo.rows, &notification.Notification{
			ID:        uuid.New(),
			CompanyID: companyID,
			UserID:    userID,
			Read:      i == 0,
		})
	}

	svc := notification.NewService(repo, &fakeEmployeeResolver{}, nil, nil)

	resp, err := svc.UnreadCount(context.Background(), companyID.String(), userID.String())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), resp.Count)
}

package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/corpeats/lunchbot/internal/db/mocks"
	"github.com/corpeats/lunchbot/internal/repository"
	"github.com/corpeats/lunchbot/internal/repository/postgresql"
)

func testOrder(userID int64) *repository.Order {
	order := &repository.Order{
		ID:           uuid.New(),
		UserID:       userID,
		VenueID:      10,
		CreatedAt:    time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
		DeliveryMode: "office",
		Comment:      "без лука",
	}
	_ = order.SetItems([]repository.MenuItem{{Title: "Борщ", Price: 150}})
	return order
}

func TestOrderRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		order := testOrder(1)
		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(order.ID),
			gomock.Eq(order.UserID),
			gomock.Eq(order.VenueID),
			gomock.Eq(order.ItemsJSON),
			gomock.Eq(order.CreatedAt),
			gomock.Eq(order.DeliveryMode),
			gomock.Eq(order.Comment),
		).Return(nil, nil)

		err := repo.Create(ctx, order)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.Create(ctx, testOrder(1))
		assert.Equal(t, expectedErr, err)
	})
}

func TestOrderRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("order found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		expected := testOrder(1)
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(expected.ID)).
			DoAndReturn(func(_ context.Context, dest *repository.Order, _ string, _ uuid.UUID) error {
				*dest = *expected
				return nil
			})

		order, err := repo.GetByID(ctx, expected.ID)
		require.NoError(t, err)
		assert.Equal(t, expected, order)
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		order, err := repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, order)
	})
}

func TestOrderRepo_ListByVenue(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		expected := []*repository.Order{testOrder(1), testOrder(2)}
		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(10))).
			DoAndReturn(func(_ context.Context, dest *[]*repository.Order, _ string, _ int64) error {
				*dest = expected
				return nil
			})

		orders, err := repo.ListByVenue(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, expected, orders)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		_, err := repo.ListByVenue(ctx, 10)
		assert.Equal(t, expectedErr, err)
	})
}

func TestOrderRepo_ListByVenueTx(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewOrderRepo(mockDB)

	expected := []*repository.Order{testOrder(1)}
	mockTx.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(10))).
		DoAndReturn(func(_ context.Context, dest *[]*repository.Order, query string, _ int64) error {
			assert.Contains(t, query, "FOR UPDATE")
			*dest = expected
			return nil
		})

	orders, err := repo.ListByVenueTx(ctx, mockTx, 10)
	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestOrderRepo_DeleteOwned(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq(orderID), gomock.Eq(int64(1))).
			Return(pgconn.CommandTag("DELETE 1"), nil)

		err := repo.DeleteOwned(ctx, orderID, 1)
		assert.NoError(t, err)
	})

	t.Run("no matching row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewOrderRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq(orderID), gomock.Eq(int64(2))).
			Return(pgconn.CommandTag("DELETE 0"), nil)

		err := repo.DeleteOwned(ctx, orderID, 2)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestOrderRepo_DeleteByVenueTx(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewOrderRepo(mockDB)

	mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq(int64(10))).
		Return(nil, nil)

	err := repo.DeleteByVenueTx(ctx, mockTx, 10)
	assert.NoError(t, err)
}

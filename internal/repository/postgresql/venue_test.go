package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/corpeats/lunchbot/internal/db/mocks"
	"github.com/corpeats/lunchbot/internal/repository"
	"github.com/corpeats/lunchbot/internal/repository/postgresql"
)

type fakeRow struct {
	id  int64
	err error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.id
	return nil
}

func testVenue() *repository.Venue {
	venue := &repository.Venue{
		Name:           "Столовая №1",
		Address:        "ул. Ленина, 1",
		TimeText:       "с 9 до 11",
		DayText:        "будни",
		ReportDeadline: "11:00",
		Active:         true,
	}
	_ = venue.SetMenu([]repository.MenuItem{{Title: "Борщ", Price: 150}})
	return venue
}

func TestVenueRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewVenueRepo(mockDB)

		venue := testVenue()
		mockDB.EXPECT().ExecQueryRow(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(venue.Name),
			gomock.Eq(venue.Address),
			gomock.Eq(venue.MenuJSON),
			gomock.Eq(venue.TimeText),
			gomock.Eq(venue.DayText),
			gomock.Eq(venue.ReportDeadline),
			gomock.Eq(venue.Active),
		).Return(fakeRow{id: 10})

		id, err := repo.Create(ctx, venue)
		require.NoError(t, err)
		assert.Equal(t, int64(10), id)
		assert.Equal(t, int64(10), venue.ID)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewVenueRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(fakeRow{err: expectedErr})

		_, err := repo.Create(ctx, testVenue())
		assert.Equal(t, expectedErr, err)
	})
}

func TestVenueRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("venue found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewVenueRepo(mockDB)

		expected := testVenue()
		expected.ID = 10
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(10))).
			DoAndReturn(func(_ context.Context, dest *repository.Venue, _ string, _ int64) error {
				*dest = *expected
				return nil
			})

		venue, err := repo.GetByID(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, expected, venue)
	})

	t.Run("venue not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewVenueRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		venue, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, venue)
	})
}

func TestVenueRepo_List(t *testing.T) {
	ctx := context.Background()

	t.Run("active only filters in the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewVenueRepo(mockDB)

		expected := []*repository.Venue{testVenue()}
		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dest *[]*repository.Venue, query string, _ ...interface{}) error {
				assert.Contains(t, query, "WHERE active")
				*dest = expected
				return nil
			})

		venues, err := repo.List(ctx, true)
		require.NoError(t, err)
		assert.Equal(t, expected, venues)
	})

	t.Run("all venues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewVenueRepo(mockDB)

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *[]*repository.Venue, query string, _ ...interface{}) error {
				assert.NotContains(t, query, "WHERE")
				return nil
			})

		_, err := repo.List(ctx, false)
		assert.NoError(t, err)
	})
}

func TestVenueRepo_SetActive(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewVenueRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq(false), gomock.Eq(int64(10))).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		err := repo.SetActive(ctx, 10, false)
		assert.NoError(t, err)
	})

	t.Run("venue not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewVenueRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq(true), gomock.Eq(int64(99))).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.SetActive(ctx, 99, true)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestVenueRepo_UpdateMenuTx(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewVenueRepo(mockDB)

	menuJSON := []byte(`[{"title":"Борщ","price":150}]`)
	mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq(menuJSON), gomock.Eq(int64(10))).
		Return(pgconn.CommandTag("UPDATE 1"), nil)

	err := repo.UpdateMenuTx(ctx, mockTx, 10, menuJSON)
	assert.NoError(t, err)
}

func TestVenueRepo_DeleteTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewVenueRepo(mockDB)

		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq(int64(10))).
			Return(pgconn.CommandTag("DELETE 1"), nil)

		err := repo.DeleteTx(ctx, mockTx, 10)
		assert.NoError(t, err)
	})

	t.Run("venue not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewVenueRepo(mockDB)

		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq(int64(99))).
			Return(pgconn.CommandTag("DELETE 0"), nil)

		err := repo.DeleteTx(ctx, mockTx, 99)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

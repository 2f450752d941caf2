package shop

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func shopRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "address", "description", "image_url", "phones", "created_at", "updated_at"})
}

func TestRepository_List(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM shops s ORDER BY s.created_at ASC, s.name ASC").
		WillReturnRows(shopRows().
			AddRow(uuid.New().String(), "Vintage Barber", "Rua A, 1", "", "", "{\"(11) 99999-0000\",\"(11) 3333-0000\"}", now, now).
			AddRow(uuid.New().String(), "Corte Fino", "Rua B, 2", "", "", "{}", now, now))

	shops, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, shops, 2)
	assert.Equal(t, "Vintage Barber", shops[0].Name)
	assert.Equal(t, []string{"(11) 99999-0000", "(11) 3333-0000"}, shops[0].Phones)
	assert.Empty(t, shops[1].Phones)
}

func TestRepository_ListPopular(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM shops s ORDER BY s.name DESC LIMIT 5").
		WillReturnRows(shopRows())

	shops, err := repo.ListPopular(context.Background(), 5)

	require.NoError(t, err)
	assert.Empty(t, shops)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SearchByServiceName(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM shops s WHERE EXISTS \\(SELECT 1 FROM services sv WHERE sv.shop_id = s.id AND sv.name ILIKE \\$1\\) ORDER BY s.name ASC").
		WithArgs("%barba%").
		WillReturnRows(shopRows().AddRow(uuid.New().String(), "Vintage Barber", "Rua A, 1", "", "", "{}", now, now))

	shops, err := repo.SearchByServiceName(context.Background(), "barba")

	require.NoError(t, err)
	assert.Len(t, shops, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SearchByServiceName_EscapesPattern(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM shops s").
		WithArgs("%50\\%%").
		WillReturnRows(shopRows())

	_, err := repo.SearchByServiceName(context.Background(), "50%")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM shops s WHERE s.id = \\$1").WillReturnRows(shopRows())

	_, err := repo.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrShopNotFound)
}

func TestRepository_GetService(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()
	shopID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM services WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(serviceColumns).
			AddRow(id.String(), shopID.String(), "Corte", "Corte clássico", "", int64(5000), now, now))

	service, err := repo.GetService(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, shopID, service.ShopID)
	assert.Equal(t, int64(5000), service.PriceInCents)
}

func TestRepository_GetService_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM services").WillReturnRows(sqlmock.NewRows(serviceColumns))

	_, err := repo.GetService(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestRepository_ListServices(t *testing.T) {
	repo, mock := newRepo(t)
	shopID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM services WHERE shop_id = \\$1 ORDER BY name ASC").
		WithArgs(shopID).
		WillReturnRows(sqlmock.NewRows(serviceColumns).
			AddRow(uuid.New().String(), shopID.String(), "Barba", "", "", int64(3000), now, now).
			AddRow(uuid.New().String(), shopID.String(), "Corte", "", "", int64(5000), now, now))

	services, err := repo.ListServices(context.Background(), shopID)

	require.NoError(t, err)
	assert.Len(t, services, 2)
}

//go:build integration

package externee_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"tadipaar/pkg/platform/sentinel"
	"tadipaar/pkg/testutil/containers"

	id "tadipaar/pkg/domain"

	"tadipaar/internal/externee"
	"tadipaar/internal/platform/postgres"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *externee.PostgresStore
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	require.NoError(s.T(), postgres.Migrate(context.Background(), s.pg.DB))
	s.store = externee.NewPostgresStore(s.pg.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.pg.Exec(s.T(), `TRUNCATE externment_records`)
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) record(identity string) *externee.ExternmentRecord {
	record, err := externee.New("Ravi Pawar", identity, "Wakad PS", id.NewAreaID(),
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(s.T(), err)
	record.CreatedBy = "CP"
	record.CreatedAt = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return record
}

func (s *PostgresStoreSuite) TestCreateAndFindRoundTrip() {
	ctx := context.Background()
	record := s.record("MH-EXT-1")
	require.NoError(s.T(), s.store.Create(ctx, record))

	got, err := s.store.FindByID(ctx, record.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), record.IdentityNumber, got.IdentityNumber)
	assert.True(s.T(), record.PeriodEnd.Equal(got.PeriodEnd))

	byIdentity, err := s.store.FindByIdentityNumber(ctx, "mh-ext-1")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), record.ID, byIdentity.ID)
}

func (s *PostgresStoreSuite) TestDuplicateIdentityConflicts() {
	ctx := context.Background()
	require.NoError(s.T(), s.store.Create(ctx, s.record("MH-EXT-1")))
	assert.ErrorIs(s.T(), s.store.Create(ctx, s.record("MH-EXT-1")), sentinel.ErrConflict)
}

func (s *PostgresStoreSuite) TestDeleteRemovesRecord() {
	ctx := context.Background()
	record := s.record("MH-EXT-1")
	require.NoError(s.T(), s.store.Create(ctx, record))
	require.NoError(s.T(), s.store.Delete(ctx, record.ID))

	_, err := s.store.FindByID(ctx, record.ID)
	assert.ErrorIs(s.T(), err, sentinel.ErrNotFound)
	assert.ErrorIs(s.T(), s.store.Delete(ctx, record.ID), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestExistsByAreaID() {
	ctx := context.Background()
	record := s.record("MH-EXT-1")
	require.NoError(s.T(), s.store.Create(ctx, record))

	exists, err := s.store.ExistsByAreaID(ctx, record.RestrictedAreaID)
	require.NoError(s.T(), err)
	assert.True(s.T(), exists)

	exists, err = s.store.ExistsByAreaID(ctx, id.NewAreaID())
	require.NoError(s.T(), err)
	assert.False(s.T(), exists)
}

func (s *PostgresStoreSuite) TestListNewestFirst() {
	ctx := context.Background()
	first := s.record("MH-EXT-1")
	second := s.record("MH-EXT-2")
	second.CreatedAt = first.CreatedAt.Add(time.Hour)
	require.NoError(s.T(), s.store.Create(ctx, first))
	require.NoError(s.T(), s.store.Create(ctx, second))

	records, err := s.store.List(ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), records, 2)
	assert.Equal(s.T(), "MH-EXT-2", records[0].IdentityNumber)
}

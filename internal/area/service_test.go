package area

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	dErrors "tadipaar/pkg/domain-errors"
	"tadipaar/pkg/requestcontext"

	id "tadipaar/pkg/domain"

	"tadipaar/internal/audit"
	"tadipaar/internal/geofence"
	"tadipaar/internal/jurisdiction"
	"tadipaar/internal/scope"
)

type recordingEmitter struct {
	events []audit.Event
}

func (e *recordingEmitter) Emit(_ context.Context, event audit.Event) {
	e.events = append(e.events, event)
}

type stubRecordChecker struct {
	referenced bool
}

func (c *stubRecordChecker) ExistsByAreaID(context.Context, id.AreaID) (bool, error) {
	return c.referenced, nil
}

type AreaServiceSuite struct {
	suite.Suite
	service *Service
	store   *InMemoryStore
	records *stubRecordChecker
	auditor *recordingEmitter
	now     time.Time
}

func (s *AreaServiceSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.records = &stubRecordChecker{}
	s.auditor = &recordingEmitter{}
	s.now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	directory := jurisdiction.NewDirectory()
	directory.Register("Wakad PS", "Wakad Division", "Zone-2")
	directory.Register("Pimpri PS", "Pimpri Division", "Zone-3")

	s.service = NewService(s.store, s.records, directory, s.auditor, slog.New(slog.DiscardHandler))
}

func TestAreaServiceSuite(t *testing.T) {
	suite.Run(t, new(AreaServiceSuite))
}

func (s *AreaServiceSuite) ctx(actor *scope.Actor) context.Context {
	ctx := requestcontext.WithTime(context.Background(), s.now)
	if actor != nil {
		ctx = requestcontext.WithActor(ctx, actor)
	}
	return ctx
}

func (s *AreaServiceSuite) input(station string, radius float64) CreateInput {
	return CreateInput{
		Name:          "Wakad Market",
		PoliceStation: station,
		Center:        geofence.Point{Lat: 18.5993, Lon: 73.7625},
		RadiusMeters:  radius,
	}
}

func (s *AreaServiceSuite) TestCreateRejectsNonPositiveRadius() {
	ctx := s.ctx(&scope.Actor{Role: scope.RoleCP})

	for _, radius := range []float64{0, -1, -500} {
		_, err := s.service.Create(ctx, s.input("Wakad PS", radius))
		require.Error(s.T(), err)
		assert.Equal(s.T(), dErrors.CodeInvalidInput, dErrors.CodeOf(err))
	}
	assert.Empty(s.T(), s.auditor.events)
}

func (s *AreaServiceSuite) TestCreateRequiresCapability() {
	_, err := s.service.Create(s.ctx(&scope.Actor{Role: scope.RolePSI, Station: "Wakad PS"}), s.input("Wakad PS", 500))
	require.Error(s.T(), err)
	assert.Equal(s.T(), dErrors.CodeForbidden, dErrors.CodeOf(err))
}

func (s *AreaServiceSuite) TestCreatePersistsAndAudits() {
	area, err := s.service.Create(s.ctx(&scope.Actor{Role: scope.RoleACP, Station: "Wakad PS"}), s.input("Wakad PS", 500))
	require.NoError(s.T(), err)
	assert.Equal(s.T(), s.now, area.CreatedAt)

	exists, err := s.service.Exists(context.Background(), area.ID)
	require.NoError(s.T(), err)
	assert.True(s.T(), exists)

	require.Len(s.T(), s.auditor.events, 1)
	assert.Equal(s.T(), audit.KindAreaCreated, s.auditor.events[0].Kind)
}

func (s *AreaServiceSuite) TestListScopedByJurisdiction() {
	cp := s.ctx(&scope.Actor{Role: scope.RoleCP})
	_, err := s.service.Create(cp, s.input("Wakad PS", 500))
	require.NoError(s.T(), err)
	_, err = s.service.Create(cp, s.input("Pimpri PS", 800))
	require.NoError(s.T(), err)

	zone, err := s.service.List(s.ctx(&scope.Actor{Role: scope.RoleDCP, Zone: "Zone-2"}))
	require.NoError(s.T(), err)
	require.Len(s.T(), zone, 1)
	assert.Equal(s.T(), "Wakad PS", zone[0].PoliceStation)
}

func (s *AreaServiceSuite) TestDeleteGatedBySeniorRole() {
	cp := s.ctx(&scope.Actor{Role: scope.RoleCP})
	area, err := s.service.Create(cp, s.input("Wakad PS", 500))
	require.NoError(s.T(), err)

	err = s.service.Delete(s.ctx(&scope.Actor{Role: scope.RoleACP, Station: "Wakad PS"}), area.ID)
	require.Error(s.T(), err)
	assert.Equal(s.T(), dErrors.CodeForbidden, dErrors.CodeOf(err))

	err = s.service.Delete(cp, area.ID)
	require.NoError(s.T(), err)

	exists, err := s.service.Exists(context.Background(), area.ID)
	require.NoError(s.T(), err)
	assert.False(s.T(), exists)
}

func (s *AreaServiceSuite) TestDeleteRefusedWhileRecordsReferenceArea() {
	cp := s.ctx(&scope.Actor{Role: scope.RoleCP})
	area, err := s.service.Create(cp, s.input("Wakad PS", 500))
	require.NoError(s.T(), err)

	s.records.referenced = true
	err = s.service.Delete(cp, area.ID)
	require.Error(s.T(), err)
	assert.Equal(s.T(), dErrors.CodeConflict, dErrors.CodeOf(err))

	exists, err := s.service.Exists(context.Background(), area.ID)
	require.NoError(s.T(), err)
	assert.True(s.T(), exists)

	s.records.referenced = false
	require.NoError(s.T(), s.service.Delete(cp, area.ID))
}

func (s *AreaServiceSuite) TestExistsFalseForUnknownID() {
	exists, err := s.service.Exists(context.Background(), id.NewAreaID())
	require.NoError(s.T(), err)
	assert.False(s.T(), exists)
}

func (s *AreaServiceSuite) TestCircleMatchesStoredGeometry() {
	area, err := New("Wakad Market", "Wakad PS", geofence.Point{Lat: 18.5993, Lon: 73.7625}, 500)
	require.NoError(s.T(), err)

	circle := area.Circle()
	assert.True(s.T(), circle.Violates(area.Center))
	assert.False(s.T(), circle.Violates(geofence.Point{Lat: 18.52, Lon: 73.85}))
}

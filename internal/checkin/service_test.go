package checkin

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	dErrors "tadipaar/pkg/domain-errors"
	"tadipaar/pkg/requestcontext"

	"tadipaar/internal/area"
	"tadipaar/internal/audit"
	"tadipaar/internal/externee"
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

type CheckinServiceSuite struct {
	suite.Suite
	service   *Service
	logs      *InMemoryStore
	alerts    *InMemoryAlertStore
	areas     *area.Service
	externees *externee.InMemoryStore
	finder    *externee.Service
	throttle  *InMemoryThrottle
	directory *jurisdiction.Directory
	auditor   *recordingEmitter
	areaStore *area.InMemoryStore
	record    *externee.ExternmentRecord
	restrict  *area.RestrictedArea
	now       time.Time
}

// Wakad Market sits ~0 m from the area center; Pimpri Court is well outside
// the 500 m radius.
var (
	areaCenter   = geofence.Point{Lat: 18.5993, Lon: 73.7625}
	outsidePoint = geofence.Point{Lat: 18.6298, Lon: 73.7997}
)

func (s *CheckinServiceSuite) SetupTest() {
	logger := slog.New(slog.DiscardHandler)
	s.logs = NewInMemoryStore()
	s.alerts = NewInMemoryAlertStore()
	s.externees = externee.NewInMemoryStore()
	s.areaStore = area.NewInMemoryStore()
	s.auditor = &recordingEmitter{}
	s.now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	s.directory = jurisdiction.NewDirectory()
	s.directory.Register("Wakad PS", "Wakad Division", "Zone-2")
	s.directory.Register("Pimpri PS", "Pimpri Division", "Zone-3")

	s.areas = area.NewService(s.areaStore, s.externees, s.directory, s.auditor, logger)

	var err error
	s.restrict, err = area.New("Wakad Market", "Wakad PS", areaCenter, 500)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.areaStore.Create(context.Background(), s.restrict))

	s.record, err = externee.New("Ravi Pawar", "MH-EXT-2025-0042", "Wakad PS", s.restrict.ID,
		s.now.AddDate(0, -1, 0), s.now.AddDate(0, 5, 0))
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.externees.Create(context.Background(), s.record))

	s.finder = externee.NewService(s.externees, s.areas, s.directory, s.auditor, logger)
	s.throttle = NewInMemoryThrottle()
	s.service = NewService(s.logs, s.alerts, s.finder, s.areas, s.throttle, s.directory, s.auditor, logger)
}

func TestCheckinServiceSuite(t *testing.T) {
	suite.Run(t, new(CheckinServiceSuite))
}

func (s *CheckinServiceSuite) subjectCtx() context.Context {
	return s.ctxAt(s.now)
}

func (s *CheckinServiceSuite) ctxAt(now time.Time) context.Context {
	ctx := requestcontext.WithTime(context.Background(), now)
	return requestcontext.WithActor(ctx, &scope.Actor{
		Role:           scope.RoleCriminal,
		IdentityNumber: "MH-EXT-2025-0042",
	})
}

func (s *CheckinServiceSuite) officerCtx(actor *scope.Actor) context.Context {
	ctx := requestcontext.WithTime(context.Background(), s.now)
	return requestcontext.WithActor(ctx, actor)
}

func (s *CheckinServiceSuite) TestSubmitOutsideAreaIsClear() {
	log, err := s.service.Submit(s.subjectCtx(), SubmitInput{Location: outsidePoint})
	require.NoError(s.T(), err)

	assert.False(s.T(), log.IsViolation)
	assert.Equal(s.T(), "Wakad PS", log.PoliceStation)
	assert.Equal(s.T(), s.now, log.CapturedAt)

	require.NotEmpty(s.T(), s.auditor.events)
	assert.Equal(s.T(), audit.KindCheckIn, s.auditor.events[len(s.auditor.events)-1].Kind)
}

func (s *CheckinServiceSuite) TestSubmitInsideAreaIsViolation() {
	log, err := s.service.Submit(s.subjectCtx(), SubmitInput{Location: areaCenter})
	require.NoError(s.T(), err)

	assert.True(s.T(), log.IsViolation)
	assert.Equal(s.T(), audit.KindViolation, s.auditor.events[len(s.auditor.events)-1].Kind)
}

func (s *CheckinServiceSuite) TestSubmitOnBoundaryIsViolation() {
	boundary := geofence.Point{Lat: 18.6038, Lon: 73.7625}
	distance := geofence.Distance(areaCenter, boundary)

	tight, err := area.New("Boundary Area", "Wakad PS", areaCenter, distance)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.areaStore.Create(context.Background(), tight))

	record, err := externee.New("Boundary Subject", "MH-EXT-2025-0099", "Wakad PS", tight.ID,
		s.now.AddDate(0, -1, 0), s.now.AddDate(0, 5, 0))
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.externees.Create(context.Background(), record))

	ctx := requestcontext.WithTime(context.Background(), s.now)
	ctx = requestcontext.WithActor(ctx, &scope.Actor{Role: scope.RoleCriminal, IdentityNumber: "MH-EXT-2025-0099"})

	log, err := s.service.Submit(ctx, SubmitInput{Location: boundary})
	require.NoError(s.T(), err)
	assert.True(s.T(), log.IsViolation)
}

func (s *CheckinServiceSuite) TestSecondSubmissionSameDayThrottled() {
	_, err := s.service.Submit(s.subjectCtx(), SubmitInput{Location: outsidePoint})
	require.NoError(s.T(), err)

	_, err = s.service.Submit(s.subjectCtx(), SubmitInput{Location: outsidePoint})
	require.Error(s.T(), err)
	assert.Equal(s.T(), dErrors.CodeThrottled, dErrors.CodeOf(err))

	_, err = s.service.Submit(s.ctxAt(s.now.AddDate(0, 0, 1)), SubmitInput{Location: outsidePoint})
	require.NoError(s.T(), err)
}

var errStoreDown = errors.New("store unavailable")

type failingLogStore struct {
	*InMemoryStore
}

func (failingLogStore) Create(context.Context, *CheckInLog) error {
	return errStoreDown
}

func (s *CheckinServiceSuite) TestFailedSubmitKeepsDailySlot() {
	// Point the record at geometry that no longer exists.
	require.NoError(s.T(), s.areaStore.Delete(context.Background(), s.restrict.ID))

	_, err := s.service.Submit(s.subjectCtx(), SubmitInput{Location: outsidePoint})
	require.Error(s.T(), err)
	assert.Equal(s.T(), dErrors.CodeNotFound, dErrors.CodeOf(err))

	// Once the area is back the subject can still check in the same day;
	// the failed attempt consumed nothing.
	require.NoError(s.T(), s.areaStore.Create(context.Background(), s.restrict))
	_, err = s.service.Submit(s.subjectCtx(), SubmitInput{Location: outsidePoint})
	require.NoError(s.T(), err)
}

func (s *CheckinServiceSuite) TestPersistenceFailureReleasesDailySlot() {
	broken := NewService(failingLogStore{s.logs}, s.alerts, s.finder, s.areas,
		s.throttle, s.directory, s.auditor, slog.New(slog.DiscardHandler))

	_, err := broken.Submit(s.subjectCtx(), SubmitInput{Location: outsidePoint})
	require.Error(s.T(), err)
	assert.Equal(s.T(), dErrors.CodeInternal, dErrors.CodeOf(err))

	_, err = s.service.Submit(s.subjectCtx(), SubmitInput{Location: outsidePoint})
	require.NoError(s.T(), err)
}

func (s *CheckinServiceSuite) TestSubmitAfterPeriodEndRejected() {
	lapsed := s.record.PeriodEnd.Add(time.Millisecond)

	_, err := s.service.Submit(s.ctxAt(lapsed), SubmitInput{Location: outsidePoint})
	require.Error(s.T(), err)
	assert.Equal(s.T(), dErrors.CodeConflict, dErrors.CodeOf(err))
}

func (s *CheckinServiceSuite) TestSubmitAtExactPeriodEndAccepted() {
	_, err := s.service.Submit(s.ctxAt(s.record.PeriodEnd), SubmitInput{Location: outsidePoint})
	require.NoError(s.T(), err)
}

func (s *CheckinServiceSuite) TestVerdictSurvivesAreaChanges() {
	log, err := s.service.Submit(s.subjectCtx(), SubmitInput{Location: outsidePoint})
	require.NoError(s.T(), err)
	require.False(s.T(), log.IsViolation)

	// Replace the area with one that would now cover the point.
	require.NoError(s.T(), s.areaStore.Delete(context.Background(), s.restrict.ID))
	wide, err := area.New("Wakad Market", "Wakad PS", outsidePoint, 10_000)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.areaStore.Create(context.Background(), wide))

	history, err := s.logs.ListByIdentityNumber(context.Background(), "MH-EXT-2025-0042")
	require.NoError(s.T(), err)
	require.Len(s.T(), history, 1)
	assert.False(s.T(), history[0].IsViolation)
}

func (s *CheckinServiceSuite) TestSubmitByOfficerForbidden() {
	_, err := s.service.Submit(s.officerCtx(&scope.Actor{Role: scope.RoleACP, Station: "Wakad PS"}), SubmitInput{Location: outsidePoint})
	require.Error(s.T(), err)
	assert.Equal(s.T(), dErrors.CodeForbidden, dErrors.CodeOf(err))
}

func (s *CheckinServiceSuite) TestListScopedExcludesOtherStations() {
	_, err := s.service.Submit(s.subjectCtx(), SubmitInput{Location: outsidePoint})
	require.NoError(s.T(), err)

	logs, err := s.service.ListScoped(s.officerCtx(&scope.Actor{Role: scope.RoleStationAdmin, Station: "Wakad PS"}))
	require.NoError(s.T(), err)
	assert.Len(s.T(), logs, 1)

	logs, err = s.service.ListScoped(s.officerCtx(&scope.Actor{Role: scope.RoleStationAdmin, Station: "Pimpri PS"}))
	require.NoError(s.T(), err)
	assert.Empty(s.T(), logs)

	_, err = s.service.ListScoped(s.subjectCtx())
	assert.Equal(s.T(), dErrors.CodeForbidden, dErrors.CodeOf(err))
}

func (s *CheckinServiceSuite) TestOrderCountdown() {
	view, err := s.service.Order(s.subjectCtx())
	require.NoError(s.T(), err)

	assert.True(s.T(), view.Active)
	assert.False(s.T(), view.Remaining.Completed)
	assert.Equal(s.T(), s.restrict.ID, view.Area.ID)

	lapsed, err := s.service.Order(s.ctxAt(s.record.PeriodEnd.Add(time.Second)))
	require.NoError(s.T(), err)
	assert.False(s.T(), lapsed.Active)
	assert.True(s.T(), lapsed.Remaining.Completed)
	assert.Zero(s.T(), lapsed.Remaining.Days)
}

func (s *CheckinServiceSuite) TestRaiseSOSValidatesReason() {
	_, err := s.service.RaiseSOS(s.subjectCtx(), SOSInput{Reason: "vacation"})
	require.Error(s.T(), err)
	assert.Equal(s.T(), dErrors.CodeInvalidInput, dErrors.CodeOf(err))

	alert, err := s.service.RaiseSOS(s.subjectCtx(), SOSInput{Reason: "Medical", Detail: "hospitalized", Location: outsidePoint})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), ReasonMedical, alert.Reason)
	assert.Equal(s.T(), "Wakad PS", alert.PoliceStation)

	assert.Equal(s.T(), audit.KindSOS, s.auditor.events[len(s.auditor.events)-1].Kind)
}

func (s *CheckinServiceSuite) TestListAlertsScoped() {
	_, err := s.service.RaiseSOS(s.subjectCtx(), SOSInput{Reason: "court_summons", Location: outsidePoint})
	require.NoError(s.T(), err)

	alerts, err := s.service.ListAlerts(s.officerCtx(&scope.Actor{Role: scope.RoleDCP, Zone: "Zone-2"}))
	require.NoError(s.T(), err)
	assert.Len(s.T(), alerts, 1)

	alerts, err = s.service.ListAlerts(s.officerCtx(&scope.Actor{Role: scope.RoleDCP, Zone: "Zone-3"}))
	require.NoError(s.T(), err)
	assert.Empty(s.T(), alerts)
}

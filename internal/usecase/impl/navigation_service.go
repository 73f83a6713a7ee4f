package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"sync"
	"time"

	"wildnav/config"
	deliverycontext "wildnav/internal/delivery/context"
	"wildnav/internal/domain/entity"
	domainerrors "wildnav/internal/domain/errors"
	"wildnav/internal/domain/service"
	"wildnav/internal/errors"
	"wildnav/internal/geo"
	"wildnav/internal/navigation"
	"wildnav/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultBreadcrumbIntervalMeters = 10.0
	minBreadcrumbIntervalMeters     = 1.0
	defaultSessionIdleTimeout       = 30 * time.Minute
	defaultEventHistorySize         = 50
	maxReapInterval                 = time.Minute
	publishTimeout                  = 5 * time.Second
)

// NavigationServiceParams holds dependencies for NavigationService, injected by Fx.
type NavigationServiceParams struct {
	fx.In

	Lc         fx.Lifecycle
	Config     *config.Config
	Directions service.DirectionsProvider
	Locations  service.LocationSourceFactory
	Publisher  service.EventPublisher
	Exporter   service.RouteExporter
	Metrics    service.MetricsRecorder `optional:"true"`
	Logger     *slog.Logger
}

// navSession is one user's navigation. All fields below mu are guarded by it.
type navSession struct {
	id        string
	userID    string
	source    service.LocationSource
	startedAt time.Time

	mu           sync.Mutex
	tracker      *navigation.Tracker
	sub          service.Subscription
	alive        bool
	buildGen     uint64
	loading      bool
	lastErr      string
	cancelBuild  context.CancelFunc
	events       []usecase.SessionEvent
	lastActivity time.Time
}

// current reports whether results of build gen may still be applied.
func (sess *navSession) current(gen uint64) bool {
	return sess.alive && sess.buildGen == gen
}

type navigationService struct {
	builder   *navigation.RouteBuilder
	locations service.LocationSourceFactory
	publisher service.EventPublisher
	exporter  service.RouteExporter
	metrics   service.MetricsRecorder
	logger    *slog.Logger

	arrivalThreshold     float64
	confirmBeforeAdvance bool
	breadcrumbInterval   float64
	idleTimeout          time.Duration
	historySize          int
	now                  func() time.Time

	baseCtx   context.Context
	cancelAll context.CancelFunc

	mu       sync.RWMutex
	sessions map[string]*navSession
	byUser   map[string]string
}

// NewNavigationService creates the navigation session manager and registers its
// idle reaper with the application lifecycle
func NewNavigationService(params NavigationServiceParams) usecase.NavigationUsecase {
	cfg := params.Config.Navigation
	if cfg == nil {
		cfg = &config.NavigationConfig{}
	}

	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopMetrics{}
	}

	threshold := cfg.ArrivalThresholdMeters
	if threshold <= 0 {
		threshold = navigation.DefaultArrivalThresholdMeters
	}
	interval := cfg.BreadcrumbIntervalMeters
	if interval <= 0 {
		interval = defaultBreadcrumbIntervalMeters
	}
	idleTimeout := cfg.SessionIdleTimeout
	if idleTimeout <= 0 {
		idleTimeout = defaultSessionIdleTimeout
	}
	historySize := cfg.EventHistorySize
	if historySize <= 0 {
		historySize = defaultEventHistorySize
	}

	baseCtx, cancelAll := context.WithCancel(context.Background())

	s := &navigationService{
		builder: navigation.NewRouteBuilder(params.Directions,
			navigation.WithMaxConcurrentLegs(cfg.MaxConcurrentLegRequests),
			navigation.WithLogger(params.Logger),
		),
		locations:            params.Locations,
		publisher:            params.Publisher,
		exporter:             params.Exporter,
		metrics:              metrics,
		logger:               params.Logger,
		arrivalThreshold:     threshold,
		confirmBeforeAdvance: cfg.ConfirmBeforeAdvance,
		breadcrumbInterval:   interval,
		idleTimeout:          idleTimeout,
		historySize:          historySize,
		now:                  time.Now,
		baseCtx:              baseCtx,
		cancelAll:            cancelAll,
		sessions:             make(map[string]*navSession),
		byUser:               make(map[string]string),
	}

	stopReaper := make(chan struct{})
	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go s.runReaper(stopReaper)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stopReaper)
			s.endAll(ctx)
			s.cancelAll()

			return nil
		},
	})

	return s
}

// StartSession validates the input, replaces any session of the same user and starts
// navigating while the route legs resolve in the background
func (s *navigationService) StartSession(ctx context.Context, input *usecase.StartSessionInput) (*usecase.SessionSnapshot, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if input == nil || len(input.Waypoints) == 0 {
		return nil, domainerrors.ErrNoWaypoints
	}
	if input.UserID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user id is required")
	}
	if !input.Position.Valid() {
		return nil, domainerrors.ErrInvalidCoordinate.WithDetails("position " + input.Position.String())
	}
	heading, err := normalizeHeading(input.Heading)
	if err != nil {
		return nil, err
	}

	waypoints := entity.NewWaypointSet(input.Waypoints...)
	queue := waypoints.Items()
	if len(queue) == 0 {
		return nil, domainerrors.ErrNoWaypoints
	}
	for _, w := range queue {
		if !w.Location().Valid() {
			return nil, domainerrors.ErrInvalidCoordinate.WithDetails("waypoint " + w.Key())
		}
	}

	mode := navigation.AdvanceImmediately
	confirm := s.confirmBeforeAdvance
	if input.ConfirmBeforeAdvance != nil {
		confirm = *input.ConfirmBeforeAdvance
	}
	if confirm {
		mode = navigation.AdvanceOnConfirm
	}

	now := s.now()
	sess := &navSession{
		id:        uuid.NewString(),
		userID:    input.UserID,
		source:    s.locations.NewSource(),
		startedAt: now,
		tracker: navigation.NewTracker(
			navigation.WithArrivalThreshold(s.arrivalThreshold),
			navigation.WithAdvanceMode(mode),
		),
		alive:        true,
		lastActivity: now,
	}

	sess.mu.Lock()
	route := s.builder.Plan(input.Position, queue)
	if err := sess.tracker.Start(route, queue); err != nil {
		sess.mu.Unlock()

		return nil, errors.Wrap(err, "start tracker")
	}
	started := s.record(sess, navigation.Event{
		Kind:     navigation.EventStarted,
		Waypoint: queue[0],
		Position: input.Position,
	})
	s.startBuild(sess, route)

	if err := sess.source.Push(service.LocationFix{Coordinate: input.Position, Heading: heading, Timestamp: now}); err != nil {
		sess.mu.Unlock()

		return nil, errors.Wrap(err, "push initial position")
	}
	sess.sub = sess.source.Subscribe(func(fix service.LocationFix) {
		s.onFix(sess, fix)
	})
	sess.source.Start()
	snapshot := s.snapshot(sess)
	sess.mu.Unlock()

	s.mu.Lock()
	previous := s.sessions[s.byUser[sess.userID]]
	s.sessions[sess.id] = sess
	s.byUser[sess.userID] = sess.id
	active := len(s.sessions)
	s.mu.Unlock()

	if previous != nil {
		logger.Info("Replacing navigation session",
			slog.String("session_id", previous.id),
			slog.String("user_id", previous.userID),
		)
		s.terminate(ctx, previous)
	} else {
		s.metrics.SetActiveSessions(active)
	}

	logger.Info("Navigation session started",
		slog.String("session_id", sess.id),
		slog.String("user_id", sess.userID),
		slog.Int("waypoints", len(queue)),
	)
	s.publish(ctx, sess, started...)

	return snapshot, nil
}

// PushLocation hands a fix to the session's location feed
func (s *navigationService) PushLocation(ctx context.Context, sessionID string, fix service.LocationFix) error {
	if !fix.Coordinate.Valid() {
		return domainerrors.ErrInvalidCoordinate.WithDetails("position " + fix.Coordinate.String())
	}
	heading, err := normalizeHeading(fix.Heading)
	if err != nil {
		return err
	}
	fix.Heading = heading
	if fix.Timestamp.IsZero() {
		fix.Timestamp = s.now()
	}

	sess, err := s.get(sessionID)
	if err != nil {
		return err
	}

	// A stopped feed means the session ended after the lookup.
	if err := sess.source.Push(fix); err != nil {
		return domainerrors.ErrSessionNotFound.WithDetails(sessionID)
	}

	return nil
}

// Session returns a snapshot of the session
func (s *navigationService) Session(ctx context.Context, sessionID string) (*usecase.SessionSnapshot, error) {
	return s.mutate(ctx, sessionID, func(sess *navSession) ([]navigation.Event, error) {
		return nil, nil
	})
}

// Skip drops the current waypoint
func (s *navigationService) Skip(ctx context.Context, sessionID string) (*usecase.SessionSnapshot, error) {
	return s.mutate(ctx, sessionID, func(sess *navSession) ([]navigation.Event, error) {
		sess.lastActivity = s.now()
		events, err := sess.tracker.Skip()
		if err != nil {
			return nil, domainerrors.ErrNavigationNotActive
		}

		return events, nil
	})
}

// Confirm advances past a reached waypoint
func (s *navigationService) Confirm(ctx context.Context, sessionID string) (*usecase.SessionSnapshot, error) {
	return s.mutate(ctx, sessionID, func(sess *navSession) ([]navigation.Event, error) {
		sess.lastActivity = s.now()
		events, err := sess.tracker.Confirm()
		switch {
		case errors.Is(err, navigation.ErrNoPendingArrival):
			return nil, domainerrors.ErrNoPendingArrival
		case err != nil:
			return nil, domainerrors.ErrNavigationNotActive
		}

		return events, nil
	})
}

// DismissError clears the latest error message
func (s *navigationService) DismissError(ctx context.Context, sessionID string) (*usecase.SessionSnapshot, error) {
	return s.mutate(ctx, sessionID, func(sess *navSession) ([]navigation.Event, error) {
		sess.lastErr = ""

		return nil, nil
	})
}

// Rebuild plans the remaining waypoints from the latest position and resolves them again
func (s *navigationService) Rebuild(ctx context.Context, sessionID string) (*usecase.SessionSnapshot, error) {
	return s.mutate(ctx, sessionID, func(sess *navSession) ([]navigation.Event, error) {
		sess.lastActivity = s.now()
		if sess.tracker.State() != navigation.StateNavigating {
			return nil, domainerrors.ErrNavigationNotActive
		}

		origin, ok := sess.tracker.Position()
		if fix, latest := sess.source.Latest(); latest {
			origin, ok = fix.Coordinate, true
		}
		if !ok {
			sess.lastErr = domainerrors.ErrNoPosition.Message()

			return nil, domainerrors.ErrNoPosition
		}

		route := s.builder.Plan(origin, sess.tracker.Queue())
		sess.tracker.SetRoute(route)
		s.startBuild(sess, route)

		return nil, nil
	})
}

// End stops the session and removes it
func (s *navigationService) End(ctx context.Context, sessionID string) error {
	sess, err := s.get(sessionID)
	if err != nil {
		return err
	}
	s.terminate(ctx, sess)

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Navigation session ended",
		slog.String("session_id", sess.id),
		slog.String("user_id", sess.userID),
	)

	return nil
}

// Breadcrumbs samples the current leg polyline every intervalMeters. Zero selects the
// configured interval.
func (s *navigationService) Breadcrumbs(ctx context.Context, sessionID string, intervalMeters float64) ([]entity.Coordinate, error) {
	if intervalMeters == 0 {
		intervalMeters = s.breadcrumbInterval
	}
	if math.IsNaN(intervalMeters) || math.IsInf(intervalMeters, 0) || intervalMeters < minBreadcrumbIntervalMeters {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("interval must be a finite number of at least %g meters", minBreadcrumbIntervalMeters))
	}

	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	var path []entity.Coordinate
	if leg, ok := sess.tracker.CurrentLeg(); ok && leg.Resolved() {
		path = append(path, leg.Polyline...)
	}
	sess.mu.Unlock()

	points := geo.EvenlySpacedPoints(path, intervalMeters)
	if points == nil {
		points = []entity.Coordinate{}
	}

	return points, nil
}

// ExportRoute writes the remaining route through the configured exporter
func (s *navigationService) ExportRoute(ctx context.Context, sessionID string, w io.Writer) (string, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return "", err
	}

	sess.mu.Lock()
	route := sess.tracker.Route().Clone()
	waypoints := sess.tracker.Queue()
	sess.mu.Unlock()

	if err := s.exporter.ExportRoute(w, "Wildnav route "+sess.id, route, waypoints); err != nil {
		return "", errors.Wrap(err, "export route")
	}

	return s.exporter.ContentType(), nil
}

// ActiveSessions returns the number of sessions held in memory
func (s *navigationService) ActiveSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

func (s *navigationService) get(sessionID string) (*navSession, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, domainerrors.ErrSessionNotFound.WithDetails(sessionID)
	}

	return sess, nil
}

// mutate runs fn under the session lock, records and publishes the events it returns
// and returns the resulting snapshot.
func (s *navigationService) mutate(
	ctx context.Context,
	sessionID string,
	fn func(sess *navSession) ([]navigation.Event, error),
) (*usecase.SessionSnapshot, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if !sess.alive {
		sess.mu.Unlock()

		return nil, domainerrors.ErrSessionNotFound.WithDetails(sessionID)
	}
	events, err := fn(sess)
	if err != nil {
		sess.mu.Unlock()

		return nil, err
	}
	recorded := s.record(sess, events...)
	snapshot := s.snapshot(sess)
	sess.mu.Unlock()

	s.publish(ctx, sess, recorded...)

	return snapshot, nil
}

// startBuild cancels the build in flight and resolves route in the background. Only
// results of the latest build of a live session are applied. Callers hold sess.mu.
func (s *navigationService) startBuild(sess *navSession, route *entity.Route) {
	if sess.cancelBuild != nil {
		sess.cancelBuild()
	}
	sess.buildGen++
	gen := sess.buildGen
	sess.loading = true
	sess.lastErr = ""

	ctx, cancel := context.WithCancel(s.baseCtx)
	sess.cancelBuild = cancel

	// The tracker drops legs from route.Legs as waypoints are passed.
	var routeID string
	var legs []*entity.RouteLeg
	if route != nil {
		routeID = route.ID
		legs = slices.Clone(route.Legs)
	}

	go func() {
		defer cancel()

		_ = s.builder.Resolve(ctx, routeID, legs, func(o navigation.LegOutcome) {
			sess.mu.Lock()
			defer sess.mu.Unlock()

			if !sess.current(gen) {
				return
			}
			if o.Err != nil {
				sess.lastErr = fmt.Sprintf("Directions for leg %d are unavailable: %v", o.Index+1, o.Err)

				return
			}
			o.Apply()
		})

		sess.mu.Lock()
		if sess.current(gen) {
			sess.loading = false
		}
		sess.mu.Unlock()
	}()
}

func (s *navigationService) onFix(sess *navSession, fix service.LocationFix) {
	sess.mu.Lock()
	if !sess.alive {
		sess.mu.Unlock()

		return
	}
	sess.lastActivity = s.now()
	recorded := s.record(sess, sess.tracker.Update(fix)...)
	sess.mu.Unlock()

	s.publish(s.baseCtx, sess, recorded...)
}

// terminate ends a session exactly once: in-flight directions are cancelled, location
// delivery stops and the session leaves the registry.
func (s *navigationService) terminate(ctx context.Context, sess *navSession) {
	sess.mu.Lock()
	if !sess.alive {
		sess.mu.Unlock()

		return
	}
	sess.alive = false
	sess.loading = false
	if sess.cancelBuild != nil {
		sess.cancelBuild()
	}
	if sess.sub != nil {
		sess.sub.Cancel()
	}
	sess.source.Stop()
	recorded := s.record(sess, sess.tracker.End()...)
	sess.mu.Unlock()

	s.mu.Lock()
	if s.sessions[sess.id] == sess {
		delete(s.sessions, sess.id)
	}
	if s.byUser[sess.userID] == sess.id {
		delete(s.byUser, sess.userID)
	}
	active := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(active)
	s.publish(ctx, sess, recorded...)
}

func (s *navigationService) endAll(ctx context.Context) {
	s.mu.RLock()
	sessions := make([]*navSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.RUnlock()

	for _, sess := range sessions {
		s.terminate(ctx, sess)
	}
}

// reapIdle ends sessions without activity for the idle timeout and returns how many.
func (s *navigationService) reapIdle(now time.Time) int {
	s.mu.RLock()
	sessions := make([]*navSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.RUnlock()

	reaped := 0
	for _, sess := range sessions {
		sess.mu.Lock()
		idle := now.Sub(sess.lastActivity) >= s.idleTimeout
		sess.mu.Unlock()
		if !idle {
			continue
		}

		s.logger.Info("Ending idle navigation session",
			slog.String("session_id", sess.id),
			slog.String("user_id", sess.userID),
		)
		s.terminate(s.baseCtx, sess)
		reaped++
	}

	return reaped
}

func (s *navigationService) runReaper(stop <-chan struct{}) {
	ticker := time.NewTicker(max(min(s.idleTimeout/2, maxReapInterval), time.Second))
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.reapIdle(s.now())
		}
	}
}

// record converts tracker events into session events and appends them to the bounded
// history. Callers hold sess.mu.
func (s *navigationService) record(sess *navSession, events ...navigation.Event) []usecase.SessionEvent {
	if len(events) == 0 {
		return nil
	}

	recorded := make([]usecase.SessionEvent, len(events))
	for i, ev := range events {
		recorded[i] = usecase.SessionEvent{
			ID:         uuid.NewString(),
			Type:       service.NavigationEventType(ev.Kind),
			LegIndex:   ev.LegIndex,
			Position:   ev.Position,
			OccurredAt: s.now(),
		}
		if ev.Waypoint != nil {
			recorded[i].WaypointKey = ev.Waypoint.Key()
			recorded[i].Title = ev.Waypoint.Title()
		}
	}

	sess.events = append(sess.events, recorded...)
	if overflow := len(sess.events) - s.historySize; overflow > 0 {
		sess.events = append([]usecase.SessionEvent(nil), sess.events[overflow:]...)
	}

	return recorded
}

// publish sends events to the event publisher. Failures are logged only.
func (s *navigationService) publish(ctx context.Context, sess *navSession, events ...usecase.SessionEvent) {
	if len(events) == 0 {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	for _, ev := range events {
		s.metrics.ObserveNavigationEvent(ev.Type)

		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		err := s.publisher.PublishNavigationEvent(pubCtx, &service.NavigationEvent{
			RequestID:   requestID,
			EventID:     ev.ID,
			SessionID:   sess.id,
			UserID:      sess.userID,
			Type:        ev.Type,
			WaypointKey: ev.WaypointKey,
			Title:       ev.Title,
			LegIndex:    ev.LegIndex,
			Latitude:    ev.Position.Latitude,
			Longitude:   ev.Position.Longitude,
			OccurredAt:  ev.OccurredAt,
		})
		cancel()

		if err != nil {
			logger.Warn("Failed to publish navigation event",
				slog.String("session_id", sess.id),
				slog.String("type", string(ev.Type)),
				slog.Any("error", err),
			)
		}
	}
}

// snapshot copies the session state. Callers hold sess.mu.
func (s *navigationService) snapshot(sess *navSession) *usecase.SessionSnapshot {
	t := sess.tracker

	snapshot := &usecase.SessionSnapshot{
		ID:                   sess.id,
		UserID:               sess.userID,
		State:                t.State().String(),
		AwaitingConfirmation: t.AwaitingConfirmation(),
		LegIndex:             t.LegIndex(),
		Loading:              sess.loading,
		LastError:            sess.lastErr,
		Remaining:            make([]entity.WaypointView, 0),
		Events:               append([]usecase.SessionEvent{}, sess.events...),
		StartedAt:            sess.startedAt,
		LastActivityAt:       sess.lastActivity,
	}

	for _, w := range t.Queue() {
		snapshot.Remaining = append(snapshot.Remaining, entity.ViewOf(w))
	}
	if w, ok := t.CurrentWaypoint(); ok {
		view := entity.ViewOf(w)
		snapshot.CurrentWaypoint = &view
	}
	if route := t.Route(); route != nil {
		snapshot.Route = &usecase.RouteView{
			Route:                    route.Clone(),
			TotalDistanceMeters:      route.TotalDistance(),
			TotalExpectedTimeSeconds: route.TotalExpectedTime(),
			ResolvedLegs:             route.ResolvedCount(),
		}
	}
	if pos, ok := t.Position(); ok {
		snapshot.Position = &pos
	}
	if g, ok := t.Guidance(); ok {
		snapshot.Guidance = &g
	}

	return snapshot
}

func normalizeHeading(heading *float64) (*float64, error) {
	if heading == nil {
		return nil, nil
	}
	if math.IsNaN(*heading) || math.IsInf(*heading, 0) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("heading must be a finite number of degrees")
	}

	normalized := geo.NormalizeDegrees(*heading)

	return &normalized, nil
}

// Package downloadsession drives per-item, per-platform download initiation
// as an explicit finite state machine. Each (item, platform) key owns an
// independent session that moves Idle → Initiating → (Downloading → Complete
// | Error | Failed) → Idle; the paced transitions exist purely to give the
// user a responsive progress indicator, since the dispatch call's true
// success ("file offered to the OS") is not observable from here.
//
// Scheduled transitions use replaceable timer handles guarded by a per-
// session generation counter, so rapid re-triggering can never leave two
// timers racing to reset the same session.
package downloadsession

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/voidbay/paygate/internal/pkg/logger"
	"github.com/voidbay/paygate/internal/pkg/validator"
)

const (
	// defaultDownloadDwell paces Downloading → Complete, letting the native
	// download start before success is declared.
	defaultDownloadDwell = 1 * time.Second

	// defaultResetDwell keeps a terminal status on screen before the session
	// clears back to Idle.
	defaultResetDwell = 2 * time.Second

	// watchChannelBufferSize bounds each observer channel. Observers that
	// fall behind miss transitions rather than stalling the controller.
	watchChannelBufferSize = 8
)

var (
	// ErrSessionBusy is returned when a trigger arrives while the key's
	// session is mid-lifecycle. The session is untouched; the user retries
	// once it has settled back to Idle.
	ErrSessionBusy = errors.New("download already in progress for this item")

	// ErrPlatformUnavailable is returned for platforms the release policy
	// has not published yet. The session never leaves Idle; interfaces are
	// expected to disable the trigger via Available instead of hitting this.
	ErrPlatformUnavailable = errors.New("downloads are not available for this platform yet")
)

// CancelFunc detaches an observer registered with Watch.
type CancelFunc func()

// Service is the download session controller.
type Service interface {
	// Trigger starts a download lifecycle for the given item and platform.
	// The session enters Initiating before Trigger returns; the dispatch
	// call and all subsequent transitions happen asynchronously.
	Trigger(ctx context.Context, itemID, title string, platform Platform) error

	// Available reports whether the release policy allows dispatching for
	// the given platform.
	Available(platform Platform) bool

	// Status returns the current view of the key's session. Keys that were
	// never triggered report an Idle snapshot.
	Status(key Key) Snapshot

	// Watch streams every transition of the key's session until cancelled.
	// Delivery is best-effort: observers that stop draining miss
	// transitions instead of blocking the state machine.
	Watch(key Key) (<-chan Snapshot, CancelFunc)
}

type service struct {
	dispatcher Dispatcher
	saver      ArtifactSaver

	downloadDwell  time.Duration
	resetDwell     time.Duration
	availability   map[Platform]bool
	transitionHook func(Snapshot)

	mu         sync.Mutex
	sessions   map[Key]*session
	watchers   map[Key]map[uint64]chan Snapshot
	watcherSeq uint64
}

var _ Service = (*service)(nil)

type config struct {
	downloadDwell  time.Duration
	resetDwell     time.Duration
	availability   map[Platform]bool
	transitionHook func(Snapshot)
}

// Option customizes the controller.
type Option func(*config)

// WithDownloadDwell overrides the Downloading → Complete delay. Default: 1 second.
func WithDownloadDwell(d time.Duration) Option {
	return func(c *config) {
		c.downloadDwell = d
	}
}

// WithResetDwell overrides the terminal → Idle delay. Default: 2 seconds.
func WithResetDwell(d time.Duration) Option {
	return func(c *config) {
		c.resetDwell = d
	}
}

// WithPlatformAvailability replaces the release policy's platform table.
// Platforms missing from the table are unavailable.
func WithPlatformAvailability(availability map[Platform]bool) Option {
	return func(c *config) {
		c.availability = availability
	}
}

// WithTransitionHook registers a function called synchronously on every
// session transition. The hook runs with the controller's lock held and must
// not call back into the controller.
func WithTransitionHook(hook func(Snapshot)) Option {
	return func(c *config) {
		c.transitionHook = hook
	}
}

// New creates the download session controller.
func New(dispatcher Dispatcher, saver ArtifactSaver, opts ...Option) *service {
	cfg := config{
		downloadDwell: defaultDownloadDwell,
		resetDwell:    defaultResetDwell,
		availability:  defaultAvailability(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		dispatcher:     dispatcher,
		saver:          saver,
		downloadDwell:  cfg.downloadDwell,
		resetDwell:     cfg.resetDwell,
		availability:   cfg.availability,
		transitionHook: cfg.transitionHook,
		sessions:       make(map[Key]*session),
		watchers:       make(map[Key]map[uint64]chan Snapshot),
	}
}

func (s *service) Available(platform Platform) bool {
	return s.availability[platform]
}

func (s *service) Trigger(ctx context.Context, itemID, title string, platform Platform) error {
	req := DispatchRequest{
		ItemID:   itemID,
		Title:    title,
		Platform: platform,
	}
	if err := validator.Validate(req); err != nil {
		return err
	}

	if !s.Available(platform) {
		return ErrPlatformUnavailable
	}

	key := Key{ItemID: itemID, Platform: platform}

	s.mu.Lock()
	sess, ok := s.sessions[key]
	if !ok {
		sess = &session{}
		s.sessions[key] = sess
	}

	if sess.status != StatusIdle {
		s.mu.Unlock()
		return ErrSessionBusy
	}

	gen := sess.begin(time.Now())
	s.applyLocked(ctx, key, sess, StatusInitiating)
	s.mu.Unlock()

	go s.runDispatch(ctx, key, gen, req)
	return nil
}

func (s *service) Status(key Key) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[key]
	if !ok {
		return Snapshot{Key: key, Status: StatusIdle}
	}
	return sess.snapshot(key)
}

func (s *service) Watch(key Key) (<-chan Snapshot, CancelFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.watcherSeq++
	id := s.watcherSeq
	ch := make(chan Snapshot, watchChannelBufferSize)

	if s.watchers[key] == nil {
		s.watchers[key] = make(map[uint64]chan Snapshot)
	}
	s.watchers[key][id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if watcher, ok := s.watchers[key][id]; ok {
			delete(s.watchers[key], id)
			close(watcher)
		}
	}

	return ch, cancel
}

// runDispatch performs the dispatch call for one lifecycle and applies its
// outcome, unless the lifecycle was superseded while the call was in flight.
func (s *service) runDispatch(ctx context.Context, key Key, gen uint64, req DispatchRequest) {
	result, err := s.dispatcher.InitiateDownload(ctx, req)

	switch {
	case errors.Is(err, ErrMalformedDispatchResponse):
		s.finish(ctx, key, gen, StatusError)
	case err != nil:
		logger.Warn(ctx, "download dispatch failed",
			"item_id", key.ItemID,
			"platform", key.Platform.String(),
			"error", err,
		)
		s.finish(ctx, key, gen, StatusFailed)
	case !result.Accepted:
		s.finish(ctx, key, gen, StatusError)
	default:
		s.startDownload(ctx, key, gen, result)
	}
}

// startDownload transitions the session to Downloading, hands the artifact
// URL off to the saver exactly once, and schedules the paced Complete.
func (s *service) startDownload(ctx context.Context, key Key, gen uint64, result DispatchResult) {
	url := s.dispatcher.ArtifactURL(key.ItemID, key.Platform)

	s.mu.Lock()
	sess, ok := s.sessions[key]
	if !ok || sess.gen != gen {
		s.mu.Unlock()
		return
	}

	sess.fileName = result.FileName
	s.applyLocked(ctx, key, sess, StatusDownloading)
	s.scheduleLocked(ctx, key, sess, gen, s.downloadDwell, StatusComplete)
	s.mu.Unlock()

	// Fire-and-forget hand-off: the saver's outcome never feeds back into
	// session state.
	go func() {
		if err := s.saver.SaveArtifact(ctx, url, result.FileName); err != nil {
			logger.Warn(ctx, "artifact hand-off failed",
				"item_id", key.ItemID,
				"platform", key.Platform.String(),
				"file_name", result.FileName,
				"error", err,
			)
		}
	}()
}

// finish lands the session in a terminal status and schedules its reset.
func (s *service) finish(ctx context.Context, key Key, gen uint64, status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[key]
	if !ok || sess.gen != gen {
		return
	}

	s.applyLocked(ctx, key, sess, status)
	s.scheduleLocked(ctx, key, sess, gen, s.resetDwell, StatusIdle)
}

// applyLocked records a transition and fans it out to observers. Callers
// hold s.mu.
func (s *service) applyLocked(ctx context.Context, key Key, sess *session, status Status) {
	sess.status = status
	if status == StatusIdle {
		sess.fileName = ""
	}

	logger.Debug(ctx, "download session transition",
		"session_id", sess.id,
		"item_id", key.ItemID,
		"platform", key.Platform.String(),
		"status", status.String(),
	)

	snap := sess.snapshot(key)
	if s.transitionHook != nil {
		s.transitionHook(snap)
	}
	for _, watcher := range s.watchers[key] {
		select {
		case watcher <- snap:
		default:
		}
	}
}

// scheduleLocked replaces the session's pending timer with a transition to
// next after the given delay. The timer captures the lifecycle generation
// and backs off silently if the session has moved on by the time it fires.
// A terminal next schedules its own reset when it lands. Callers hold s.mu.
func (s *service) scheduleLocked(ctx context.Context, key Key, sess *session, gen uint64, delay time.Duration, next Status) {
	if sess.timer != nil {
		sess.timer.Stop()
	}

	sess.timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		current, ok := s.sessions[key]
		if !ok || current.gen != gen {
			return
		}

		current.timer = nil
		s.applyLocked(ctx, key, current, next)

		if next.terminal() {
			s.scheduleLocked(ctx, key, current, gen, s.resetDwell, StatusIdle)
		}
	})
}

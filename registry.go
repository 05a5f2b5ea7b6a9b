package tween

import (
	"fmt"

	"github.com/rs/zerolog"
)

// environment is the shared context handed to every repository.
type environment struct {
	log     zerolog.Logger
	metrics *Metrics
	events  EventSink
	debug   bool
}

// Registry owns every repository and builder pool of one tweening context.
// There is no global tween manager: create a Registry where your game or
// tool initializes, route all tweens through it, and Close it on teardown.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	env         environment
	sched       Scheduler
	defaultEase Ease
	capacity    int
	timeScale   float64

	// cache maps cacheKey[T, O, A]{scheduler} to its *Repository[T, O, A].
	cache map[any]repository
	// repos is indexed by repository id.
	repos []repository
	// pools maps poolKey[T, O]{} to its *builderPool[T, O].
	pools map[any]any

	closed bool
}

// cacheKey identifies one repository. The type parameters make every
// (value, options, adapter) combination a distinct key type.
type cacheKey[T, O any, A Adapter[T, O]] struct {
	sched Scheduler
}

// Option configures a Registry.
type Option func(*Registry)

// WithScheduler sets the scheduler used by builders that do not name one.
func WithScheduler(s Scheduler) Option {
	return func(r *Registry) { r.sched = s }
}

// WithLogger sets the parent logger. Each repository logs through a child
// logger tagged with its id and value type.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) { r.env.log = log }
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(r *Registry) { r.env.metrics = m }
}

// WithEventSink receives lifecycle events of every tween.
func WithEventSink(s EventSink) Option {
	return func(r *Registry) { r.env.events = s }
}

// WithDebug enables per-tick logging at debug level and invariant checks
// that panic on corruption.
func WithDebug(enabled bool) Option {
	return func(r *Registry) { r.env.debug = enabled }
}

// WithDefaultEase sets the ease used by builders that do not set one.
func WithDefaultEase(e Ease) Option {
	return func(r *Registry) { r.defaultEase = e }
}

// WithInitialCapacity reserves room for n tweens in every new repository.
func WithInitialCapacity(n int) Option {
	return func(r *Registry) { r.capacity = max(n, 0) }
}

// WithConfig applies a validated Config. The time scale is applied to the
// registry scheduler when it is a ManualScheduler or FrameScheduler.
func WithConfig(cfg Config) Option {
	return func(r *Registry) {
		r.capacity = max(cfg.InitialCapacity, 0)
		r.env.debug = cfg.Debug
		r.timeScale = cfg.TimeScale
		if e, err := EaseByName(cfg.DefaultEase); err == nil {
			r.defaultEase = e
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		env:         environment{log: zerolog.Nop()},
		defaultEase: Linear,
		cache:       make(map[any]repository),
		pools:       make(map[any]any),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.timeScale > 0 {
		switch s := r.sched.(type) {
		case *ManualScheduler:
			s.TimeScale = r.timeScale
		case *FrameScheduler:
			s.TimeScale = r.timeScale
		}
	}
	return r
}

// Scheduler returns the default scheduler, which may be nil.
func (r *Registry) Scheduler() Scheduler { return r.sched }

// Logger returns the registry logger.
func (r *Registry) Logger() zerolog.Logger { return r.env.log }

func (r *Registry) checkOpen() {
	if r.closed {
		panic(ErrRegistryClosed)
	}
}

func (r *Registry) repo(h Handle) repository {
	if h.RepositoryID < 0 || int(h.RepositoryID) >= len(r.repos) {
		return nil
	}
	return r.repos[h.RepositoryID]
}

// IsActive reports whether h names a tween that has not finished.
func (r *Registry) IsActive(h Handle) bool {
	repo := r.repo(h)
	return repo != nil && repo.IsActive(h)
}

// Pause pauses a running tween. Stale handles are ignored.
func (r *Registry) Pause(h Handle) bool {
	repo := r.repo(h)
	return repo != nil && repo.Pause(h)
}

// Resume resumes a paused tween. Stale handles are ignored.
func (r *Registry) Resume(h Handle) bool {
	repo := r.repo(h)
	return repo != nil && repo.Resume(h)
}

// Cancel stops a tween without emitting a value. Stale handles are ignored.
func (r *Registry) Cancel(h Handle) bool {
	repo := r.repo(h)
	return repo != nil && repo.Cancel(h)
}

// Complete jumps a tween to its final value. Stale handles are ignored.
func (r *Registry) Complete(h Handle) bool {
	repo := r.repo(h)
	return repo != nil && repo.Complete(h)
}

// CoreRef returns the core state of h, or an error wrapping
// ErrInvalidHandle.
func (r *Registry) CoreRef(h Handle) (*Core, error) {
	repo := r.repo(h)
	if repo == nil {
		return nil, fmt.Errorf("core of %v: %w", h, ErrInvalidHandle)
	}
	return repo.CoreRef(h)
}

// CancelAll cancels every tween of every repository.
func (r *Registry) CancelAll() {
	for _, repo := range r.repos {
		repo.CancelAll()
	}
}

// CompleteAll completes every tween of every repository.
func (r *Registry) CompleteAll() {
	for _, repo := range r.repos {
		repo.CompleteAll()
	}
}

// Len returns the number of stored tweens across all repositories.
func (r *Registry) Len() int {
	n := 0
	for _, repo := range r.repos {
		n += repo.Len()
	}
	return n
}

// Close cancels every tween and drops all repositories. Update tasks still
// registered with a scheduler finish on their next tick. Using the registry
// to create tweens afterwards panics with ErrRegistryClosed.
func (r *Registry) Close() {
	if r.closed {
		return
	}
	r.CancelAll()
	for _, repo := range r.repos {
		repo.detach()
	}
	r.env.log.Debug().Int("repositories", len(r.repos)).Msg("registry closed")
	clear(r.cache)
	clear(r.pools)
	r.repos = nil
	r.closed = true
}

// RepositoryFor returns the repository of the (T, O, A) combination driven
// by s, creating it on first use.
func RepositoryFor[T, O any, A Adapter[T, O]](r *Registry, s Scheduler) *Repository[T, O, A] {
	r.checkOpen()
	key := cacheKey[T, O, A]{sched: s}
	if repo, ok := r.cache[key]; ok {
		return repo.(*Repository[T, O, A])
	}
	repo := newRepository[T, O, A](int32(len(r.repos)), s, &r.env)
	if r.capacity > 0 {
		repo.EnsureCapacity(r.capacity)
	}
	r.cache[key] = repo
	r.repos = append(r.repos, repo)
	r.env.log.Debug().
		Int32("repository", repo.id).
		Str("type", repo.typeName).
		Msg("repository created")
	return repo
}

// repositoriesOf returns every existing repository of (T, O, A).
func repositoriesOf[T, O any, A Adapter[T, O]](r *Registry) []*Repository[T, O, A] {
	var out []*Repository[T, O, A]
	for _, repo := range r.repos {
		if typed, ok := repo.(*Repository[T, O, A]); ok {
			out = append(out, typed)
		}
	}
	return out
}

func lookupRepository[T, O any, A Adapter[T, O]](r *Registry, s Scheduler) *Repository[T, O, A] {
	if repo, ok := r.cache[cacheKey[T, O, A]{sched: s}]; ok {
		return repo.(*Repository[T, O, A])
	}
	return nil
}

// CancelAllOf cancels every (T, O, A) tween on every scheduler.
func CancelAllOf[T, O any, A Adapter[T, O]](r *Registry) {
	for _, repo := range repositoriesOf[T, O, A](r) {
		repo.CancelAll()
	}
}

// CancelAllIn cancels every (T, O, A) tween driven by s.
func CancelAllIn[T, O any, A Adapter[T, O]](r *Registry, s Scheduler) {
	if repo := lookupRepository[T, O, A](r, s); repo != nil {
		repo.CancelAll()
	}
}

// CompleteAllOf completes every (T, O, A) tween on every scheduler.
func CompleteAllOf[T, O any, A Adapter[T, O]](r *Registry) {
	for _, repo := range repositoriesOf[T, O, A](r) {
		repo.CompleteAll()
	}
}

// CompleteAllIn completes every (T, O, A) tween driven by s.
func CompleteAllIn[T, O any, A Adapter[T, O]](r *Registry, s Scheduler) {
	if repo := lookupRepository[T, O, A](r, s); repo != nil {
		repo.CompleteAll()
	}
}

// EnsureCapacity reserves room for n (T, O, A) tweens driven by s.
func EnsureCapacity[T, O any, A Adapter[T, O]](r *Registry, s Scheduler, n int) {
	RepositoryFor[T, O, A](r, s).EnsureCapacity(n)
}

// EnsureCapacityAll reserves room for n tweens in every existing (T, O, A)
// repository.
func EnsureCapacityAll[T, O any, A Adapter[T, O]](r *Registry, n int) {
	for _, repo := range repositoriesOf[T, O, A](r) {
		repo.EnsureCapacity(n)
	}
}

// DataRef returns the data record of h. It fails with ErrInvalidHandle when
// h is stale or belongs to a repository of another type.
func DataRef[T, O any, A Adapter[T, O]](r *Registry, h Handle) (*Data[T, O], error) {
	typed, ok := r.repo(h).(*Repository[T, O, A])
	if !ok {
		return nil, fmt.Errorf("data of %v: %w", h, ErrInvalidHandle)
	}
	return typed.DataRef(h)
}

// ManagedRef returns the managed record of h. It fails with
// ErrInvalidHandle when h is stale or belongs to a repository of another
// type.
func ManagedRef[T, O any, A Adapter[T, O]](r *Registry, h Handle) (*Managed[T], error) {
	typed, ok := r.repo(h).(*Repository[T, O, A])
	if !ok {
		return nil, fmt.Errorf("managed data of %v: %w", h, ErrInvalidHandle)
	}
	return typed.ManagedRef(h)
}

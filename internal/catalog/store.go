package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"bakery/internal/domain"
)

const loadKey = "catalog"

// ErrLoadFailed оборачивает причину неудачной загрузки каталога
var ErrLoadFailed = errors.New("catalog load failed")

// SnapshotCache хранит последний удачно загруженный снимок
type SnapshotCache interface {
	Get(ctx context.Context) (*domain.Snapshot, error)
	Set(ctx context.Context, snap domain.Snapshot) error
}

// State то, что видят читатели. Срезы не изменяются после загрузки,
// при обновлении заменяются целиком.
type State struct {
	Categories []domain.Category `json:"categories"`
	Products   []domain.Product  `json:"products"`
	Seasonal   []domain.Product  `json:"seasonal"`
	Loading    bool              `json:"loading"`
	Err        string            `json:"error,omitempty"`
}

func (s State) Snapshot() domain.Snapshot {
	return domain.Snapshot{Categories: s.Categories, Products: s.Products, Seasonal: s.Seasonal}
}

// Store загружает каталог один раз за время жизни процесса
type Store struct {
	source Source
	cache  SnapshotCache
	log    *zap.Logger
	sfg    singleflight.Group

	// fetchMu serializes fetches so a later Refresh never returns an older result
	fetchMu sync.Mutex

	mu        sync.RWMutex
	snap      domain.Snapshot
	loaded    bool
	loading   bool
	errMsg    string
	observers map[int]func(State)
	nextObs   int
}

type Option func(*Store)

func WithCache(c SnapshotCache) Option {
	return func(s *Store) { s.cache = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

func NewStore(source Source, opts ...Option) *Store {
	s := &Store{
		source:    source,
		log:       zap.NewNop(),
		loading:   true,
		observers: make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize делает единственную загрузку. Параллельные вызовы ждут один запрос,
// повторные после загрузки ничего не делают. Ошибка не возвращается: при сбое
// выставляется Err и подставляется запасной каталог.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return
	}
	_, _, _ = s.sfg.Do(loadKey, func() (interface{}, error) {
		s.mu.RLock()
		loaded := s.loaded
		s.mu.RUnlock()
		if loaded {
			return nil, nil
		}
		s.fetchMu.Lock()
		defer s.fetchMu.Unlock()
		// a Refresh may have finished while we waited
		s.mu.RLock()
		loaded = s.loaded
		s.mu.RUnlock()
		if loaded {
			return nil, nil
		}
		return nil, s.load(ctx, false)
	})
}

// Refresh принудительно перечитывает каталог, например после правок в админке.
// Запрос всегда новый: уже идущая загрузка могла начаться до правки.
// При ошибке уже загруженные данные остаются.
func (s *Store) Refresh(ctx context.Context) error {
	s.fetchMu.Lock()
	defer s.fetchMu.Unlock()
	return s.load(ctx, true)
}

func (s *Store) load(ctx context.Context, refresh bool) error {
	// readers going away must not abort the shared fetch
	ctx = context.WithoutCancel(ctx)

	start := time.Now()
	snap, err := s.source.Fetch(ctx)
	if err == nil {
		s.mu.Lock()
		s.snap = snap
		s.loaded = true
		s.loading = false
		s.errMsg = ""
		s.mu.Unlock()

		s.log.Info("catalog loaded",
			zap.Int("categories", len(snap.Categories)),
			zap.Int("products", len(snap.Products)),
			zap.Int("seasonal", len(snap.Seasonal)),
			zap.Duration("took", time.Since(start)),
			zap.Bool("refresh", refresh))

		if s.cache != nil {
			if errSet := s.cache.Set(ctx, snap); errSet != nil {
				s.log.Warn("catalog cache set failed", zap.Error(errSet))
			}
		}
		s.notify()
		return nil
	}

	s.log.Error("catalog load failed", zap.Error(err), zap.Bool("refresh", refresh))

	s.mu.RLock()
	keep := refresh && s.loaded && !s.snap.Empty()
	s.mu.RUnlock()

	var replacement domain.Snapshot
	if !keep {
		replacement = s.fallback(ctx)
	}

	s.mu.Lock()
	if !keep {
		s.snap = replacement
	}
	s.loaded = true
	s.loading = false
	s.errMsg = LoadFailedMessage
	s.mu.Unlock()

	s.notify()
	return errors.Join(ErrLoadFailed, err)
}

func (s *Store) fallback(ctx context.Context) domain.Snapshot {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err == nil && cached != nil && !cached.Empty() {
			s.log.Warn("serving cached catalog snapshot")
			return *cached
		}
		if err != nil {
			s.log.Debug("catalog cache unavailable", zap.Error(err))
		}
	}
	s.log.Warn("serving placeholder catalog")
	return Placeholder()
}

// State возвращает текущее состояние синхронно, не дожидаясь загрузки
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Categories: s.snap.Categories,
		Products:   s.snap.Products,
		Seasonal:   s.snap.Seasonal,
		Loading:    s.loading,
		Err:        s.errMsg,
	}
}

// Subscribe регистрирует наблюдателя; возвращает функцию отписки
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	st := s.State()
	s.mu.RLock()
	fns := make([]func(State), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()
	for _, fn := range fns {
		fn(st)
	}
}

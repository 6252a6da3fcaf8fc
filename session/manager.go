// Package session keeps the state of every running client between
// requests. A state is stored encoded in a scholar.StateStore and only
// changed under the lock of its id.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
	"gopkg.in/robfig/cron.v2"

	"github.com/sirius-scholar/scholar"
	"github.com/sirius-scholar/scholar/app"
	"github.com/sirius-scholar/scholar/errors"
	"github.com/sirius-scholar/scholar/i18n"
	"github.com/sirius-scholar/scholar/log"
)

type lock struct {
	sync.Mutex
	refs int
}

type Manager struct {
	store  scholar.StateStore
	locks  *xsync.MapOf[string, *lock]
	logger log.Logger
}

func NewManager(store scholar.StateStore, logger log.Logger) *Manager {
	return &Manager{
		store:  store,
		locks:  xsync.NewMapOf[string, *lock](),
		logger: logger,
	}
}

// NewID returns a fresh client state id.
func (m *Manager) NewID() string {
	return uuid.NewString()
}

// Open returns the handle of the state id. The state does not need to
// exist: it is created, in language lang, on first use.
func (m *Manager) Open(id string, lang i18n.Language) *Handle {
	return &Handle{
		manager: m,
		id:      id,
		lang:    lang,
	}
}

// acquire locks id and returns the function releasing it. Lock entries are
// counted so that the map only holds ids in use.
func (m *Manager) acquire(id string) func() {
	l, _ := m.locks.Compute(id, func(l *lock, loaded bool) (*lock, bool) {
		if !loaded {
			l = &lock{}
		}
		l.refs++
		return l, false
	})

	l.Lock()
	return func() {
		l.Unlock()
		m.locks.Compute(id, func(l *lock, loaded bool) (*lock, bool) {
			l.refs--
			return l, l.refs == 0
		})
	}
}

// Sweep drops the states idle for longer than idle.
func (m *Manager) Sweep(ctx context.Context, idle time.Duration) (int, error) {
	n, err := m.store.Sweep(ctx, idle)
	if err != nil {
		return 0, errors.New("could not sweep client states", errors.WithCause(err))
	}
	return n, nil
}

// StartSweeper runs Sweep on the cron schedule spec until ctx is done.
func (m *Manager) StartSweeper(ctx context.Context, spec string, idle time.Duration) error {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		n, err := m.Sweep(ctx, idle)
		if err != nil {
			m.logger.Errorf("%v", err)
			return
		}
		if n > 0 {
			m.logger.Printf("swept %d idle client states", n)
		}
	})
	if err != nil {
		return errors.New("invalid sweep schedule "+spec, errors.WithCause(err))
	}

	c.Start()
	go func() {
		<-ctx.Done()
		c.Stop()
	}()
	return nil
}

// Handle is the state of one client. It implements app.Session.
type Handle struct {
	manager *Manager
	id      string
	lang    i18n.Language
}

var _ app.Session = (*Handle)(nil)

func (h *Handle) ID() string {
	return h.id
}

// Update loads the state, applies fn and saves the result. Nothing is saved
// when fn fails.
func (h *Handle) Update(ctx context.Context, fn func(*app.State) error) error {
	release := h.manager.acquire(h.id)
	defer release()

	st, err := h.load(ctx)
	if err != nil {
		return err
	}

	if err := fn(st); err != nil {
		return err
	}

	data, err := json.Marshal(st)
	if err != nil {
		return errors.New("could not encode client state", errors.WithCause(err))
	}

	if err := h.manager.store.Put(ctx, h.id, data); err != nil {
		return errors.New("could not save client state", errors.WithCause(err))
	}
	return nil
}

// State returns a snapshot of the state, for rendering.
func (h *Handle) State(ctx context.Context) (*app.State, error) {
	release := h.manager.acquire(h.id)
	defer release()

	return h.load(ctx)
}

// Delete forgets the state.
func (h *Handle) Delete(ctx context.Context) error {
	release := h.manager.acquire(h.id)
	defer release()

	return h.manager.store.Delete(ctx, h.id)
}

func (h *Handle) load(ctx context.Context) (*app.State, error) {
	data, err := h.manager.store.Get(ctx, h.id)
	if err != nil {
		return nil, errors.New("could not load client state", errors.WithCause(err))
	}

	if data == nil {
		return app.NewState(h.lang), nil
	}

	var st app.State
	if err := json.Unmarshal(data, &st); err != nil {
		// A corrupted snapshot opens as a new state.
		h.manager.logger.Errorf("corrupted client state %s: %v", h.id, err)
		return app.NewState(h.lang), nil
	}
	return &st, nil
}

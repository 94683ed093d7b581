package equipment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"armory/core/logger"
	"armory/feature/bones"
	"armory/feature/equipment/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidOverride is returned for override values that cannot be applied.
var ErrInvalidOverride = errors.New("invalid override")

// Session is one viewer's equipment state.
type Session struct {
	ID    string
	State *State

	saveMu sync.Mutex
}

// SessionView is the JSON form of a session.
type SessionView struct {
	ID string `json:"id"`
	Snapshot
}

// View returns the session's current snapshot with its id.
func (s *Session) View() SessionView {
	return SessionView{ID: s.ID, Snapshot: s.State.Snapshot()}
}

// Service manages equipment sessions.
type Service struct {
	catalog  CatalogSource
	resolver *bones.Resolver
	store    Store
	logger   *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewService creates a new equipment service. A nil store keeps sessions in
// memory only.
func NewService(catalog CatalogSource, resolver *bones.Resolver, store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if resolver == nil {
		resolver = bones.NewResolver(nil, logger)
	}
	return &Service{
		catalog:  catalog,
		resolver: resolver,
		store:    store,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Catalog returns the active item catalog.
func (s *Service) Catalog(ctx context.Context) (*Catalog, error) {
	return s.catalog.Catalog(ctx)
}

// CreateSession registers a new session with every slot empty.
func (s *Service) CreateSession(ctx context.Context) (*Session, error) {
	sess := &Session{ID: uuid.NewString(), State: NewState()}
	s.track(sess)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.persist(ctx, sess)
	s.logger.Info("Session created", logger.Session(sess.ID))
	return sess, nil
}

// Session returns a session by id. Sessions not in memory are loaded from
// the store when one is configured.
func (s *Service) Session(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return sess, nil
	}

	if s.store == nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	rec, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	st, dropped, err := stateFromRecord(rec, catalog)
	if err != nil {
		return nil, err
	}
	if len(dropped) > 0 {
		s.logger.Warn("Dropped stored items missing from catalog",
			logger.Session(id),
			zap.Strings("paths", dropped))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.sessions[id]; ok {
		return existing, nil
	}
	sess = &Session{ID: id, State: st}
	s.track(sess)
	s.sessions[id] = sess
	s.logger.Info("Session restored", logger.Session(id))
	return sess, nil
}

// Equip puts the catalog item at path on a session.
func (s *Service) Equip(ctx context.Context, id, path string) (*Session, error) {
	sess, err := s.Session(ctx, id)
	if err != nil {
		return nil, err
	}
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	item, err := catalog.Lookup(path)
	if err != nil {
		return nil, err
	}
	if err := sess.State.Equip(item); err != nil {
		return nil, err
	}
	return sess, nil
}

// Unequip empties the named slot of a session.
func (s *Service) Unequip(ctx context.Context, id, slotName string) (*Session, error) {
	slot, err := models.ParseSlot(slotName)
	if err != nil {
		return nil, err
	}
	sess, err := s.Session(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := sess.State.Unequip(slot); err != nil {
		return nil, err
	}
	return sess, nil
}

// ClearAll empties every slot of a session.
func (s *Service) ClearAll(ctx context.Context, id string) (*Session, error) {
	sess, err := s.Session(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.State.ClearAll()
	return sess, nil
}

// SetOverrides replaces all three overrides of a session.
func (s *Service) SetOverrides(ctx context.Context, id string, o Overrides) (*Session, error) {
	if err := validateOverrides(o); err != nil {
		return nil, err
	}
	sess, err := s.Session(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.State.SetOverrides(o)
	return sess, nil
}

// EquippedItems lists the equipped items of a session in slot order.
func (s *Service) EquippedItems(ctx context.Context, id string) ([]models.EquippedItem, error) {
	sess, err := s.Session(ctx, id)
	if err != nil {
		return nil, err
	}
	return sess.State.EquippedItems(), nil
}

// Attachments builds the attachment plan of a session for a skeleton.
func (s *Service) Attachments(ctx context.Context, id string, boneNames []string) ([]Attachment, error) {
	sess, err := s.Session(ctx, id)
	if err != nil {
		return nil, err
	}
	plan := Plan(sess.State.Snapshot(), s.resolver, bones.NewSkeleton(boneNames))
	for _, a := range plan {
		if !a.Found {
			s.logger.Warn("Skipping item with unresolved bone",
				logger.Session(id),
				zap.String("item", a.Item.Name),
				zap.String("bone", a.RequestedBone))
		}
	}
	return plan, nil
}

// track saves every mutation of the session when a store is configured.
func (s *Service) track(sess *Session) {
	if s.store == nil {
		return
	}
	sess.State.Subscribe(func(Snapshot) {
		s.persist(context.Background(), sess)
	})
}

// persist saves the latest state of sess. Failures are logged; the
// in-memory state stays authoritative.
func (s *Service) persist(ctx context.Context, sess *Session) {
	if s.store == nil {
		return
	}
	sess.saveMu.Lock()
	defer sess.saveMu.Unlock()

	rec, err := recordFromSnapshot(sess.ID, sess.State.Snapshot())
	if err == nil {
		err = s.store.Save(ctx, rec)
	}
	if err != nil {
		s.logger.Error("Failed to persist session", logger.Session(sess.ID), zap.Error(err))
	}
}

func validateOverrides(o Overrides) error {
	if o.Rotation != nil && !o.Rotation.IsFinite() {
		return fmt.Errorf("%w: rotation is not finite", ErrInvalidOverride)
	}
	if o.Position != nil && !o.Position.IsFinite() {
		return fmt.Errorf("%w: position is not finite", ErrInvalidOverride)
	}
	if o.Scale != nil && (*o.Scale <= 0 || math.IsNaN(*o.Scale) || math.IsInf(*o.Scale, 0)) {
		return fmt.Errorf("%w: scale must be positive, got %v", ErrInvalidOverride, *o.Scale)
	}
	return nil
}

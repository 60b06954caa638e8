package session

import (
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/schemaforge/schemaforge"
	"github.com/schemaforge/schemaforge/internal/log"
	"github.com/schemaforge/schemaforge/workspace"
)

// DefaultKey is the fixed store key the workspace is serialized under.
const DefaultKey = "schemaforge.workspace"

// persistedSchema is the wire form of a schema: timestamps become ISO-8601
// strings so the stored value stays a plain JSON document.
type persistedSchema struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Fields    []schemaforge.Field `json:"fields"`
	CreatedAt string              `json:"createdAt"`
	UpdatedAt string              `json:"updatedAt"`
}

// Persistence serializes the workspace into a Store and rehydrates it on
// session start. It implements workspace.Persister, so wiring it via
// workspace.WithPersister gives save-on-mutation for free.
type Persistence struct {
	store  Store
	key    string
	logger *zap.SugaredLogger
}

// PersistenceOption configures a Persistence.
type PersistenceOption func(*Persistence)

// WithKey overrides the store key.
func WithKey(key string) PersistenceOption {
	return func(p *Persistence) { p.key = key }
}

// WithLogger overrides the logger used for load failures.
func WithLogger(logger *zap.SugaredLogger) PersistenceOption {
	return func(p *Persistence) { p.logger = logger }
}

// NewPersistence returns a Persistence over the given store.
func NewPersistence(store Store, opts ...PersistenceOption) *Persistence {
	p := &Persistence{
		store:  store,
		key:    DefaultKey,
		logger: log.Logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load reads the persisted workspace. A missing key, a deserialize failure,
// or an unreadable timestamp all mean "no saved data": the failure is logged
// and an empty workspace is returned, never an error.
func (p *Persistence) Load() []workspace.Schema {
	raw, ok := p.store.Get(p.key)
	if !ok {
		return nil
	}
	var stored []persistedSchema
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		p.logger.Warnw("discarding unreadable session data", "key", p.key, "error", err)
		return nil
	}
	out := make([]workspace.Schema, 0, len(stored))
	for _, ps := range stored {
		createdAt, err := time.Parse(time.RFC3339Nano, ps.CreatedAt)
		if err != nil {
			p.logger.Warnw("discarding session data with unreadable timestamp", "key", p.key, "schema", ps.ID, "error", err)
			return nil
		}
		updatedAt, err := time.Parse(time.RFC3339Nano, ps.UpdatedAt)
		if err != nil {
			p.logger.Warnw("discarding session data with unreadable timestamp", "key", p.key, "schema", ps.ID, "error", err)
			return nil
		}
		out = append(out, workspace.Schema{
			ID:        ps.ID,
			Name:      ps.Name,
			Fields:    ps.Fields,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		})
	}
	return out
}

// SaveWorkspace serializes the full schema list under the fixed key,
// replacing whatever was there. Serialization failures are logged and
// swallowed; persistence never fails a mutation.
func (p *Persistence) SaveWorkspace(schemas []workspace.Schema) {
	stored := make([]persistedSchema, 0, len(schemas))
	for _, sc := range schemas {
		stored = append(stored, persistedSchema{
			ID:        sc.ID,
			Name:      sc.Name,
			Fields:    sc.Fields,
			CreatedAt: sc.CreatedAt.Format(time.RFC3339Nano),
			UpdatedAt: sc.UpdatedAt.Format(time.RFC3339Nano),
		})
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		p.logger.Warnw("failed to serialize workspace", "key", p.key, "error", err)
		return
	}
	p.store.Set(p.key, string(raw))
}

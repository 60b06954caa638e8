// Package editor wires the schema tree engine, the workspace, session
// persistence, and the clipboard into one editing session: the explicit
// workspace context a hosting UI dispatches intents through.
package editor

import (
	"go.uber.org/zap/zapcore"

	"github.com/schemaforge/schemaforge"
	"github.com/schemaforge/schemaforge/clipboard"
	"github.com/schemaforge/schemaforge/internal/log"
	"github.com/schemaforge/schemaforge/session"
	"github.com/schemaforge/schemaforge/workspace"
)

// Editor is one editing session over a persisted workspace. Construction
// loads whatever the session store holds; every mutation afterwards is saved
// back before the call returns.
type Editor struct {
	cfg  Config
	ws   *workspace.Workspace
	clip *clipboard.Service
}

// Option configures an Editor.
type Option func(*editorDeps)

type editorDeps struct {
	engine *schemaforge.Engine
	clip   *clipboard.Service
}

// WithEngine overrides the engine (and rule catalog) the session uses.
func WithEngine(e *schemaforge.Engine) Option {
	return func(d *editorDeps) { d.engine = e }
}

// WithClipboard overrides the clipboard service.
func WithClipboard(c *clipboard.Service) Option {
	return func(d *editorDeps) { d.clip = c }
}

// New starts an editing session over the given session store. A nil store
// gets a fresh in-memory one, which makes the session effectively ephemeral.
func New(cfg Config, store session.Store, opts ...Option) (*Editor, error) {
	if cfg.SessionKey == "" {
		cfg.SessionKey = session.DefaultKey
	}
	if cfg.Verbose {
		log.SetLevel(zapcore.DebugLevel)
	}
	if store == nil {
		store = session.NewMemoryStore()
	}
	deps := editorDeps{
		engine: schemaforge.NewEngine(nil),
		clip:   clipboard.New(nil),
	}
	for _, opt := range opts {
		opt(&deps)
	}

	persistence := session.NewPersistence(store, session.WithKey(cfg.SessionKey))
	ws, err := workspace.New(
		workspace.WithEngine(deps.engine),
		workspace.WithPersister(persistence),
	)
	if err != nil {
		return nil, err
	}
	if saved := persistence.Load(); len(saved) > 0 {
		if err := ws.Load(saved); err != nil {
			return nil, err
		}
		log.Logger.Debugw("restored workspace from session", "schemas", len(saved))
	}
	return &Editor{cfg: cfg, ws: ws, clip: deps.clip}, nil
}

// Workspace exposes the schema collection for CRUD and command dispatch.
func (ed *Editor) Workspace() *workspace.Workspace { return ed.ws }

// Apply dispatches one engine command against a schema's tree.
func (ed *Editor) Apply(schemaID string, cmd schemaforge.Command) (workspace.Schema, error) {
	return ed.ws.Apply(schemaID, cmd)
}

// PreviewJSON renders the live export preview for one schema.
func (ed *Editor) PreviewJSON(schemaID string) (string, error) {
	sc, err := ed.ws.GetSchema(schemaID)
	if err != nil {
		return "", err
	}
	var raw []byte
	if ed.cfg.PrettyPreview {
		raw, err = schemaforge.ExportJSONIndent(sc.Fields, "", "  ")
	} else {
		raw, err = schemaforge.ExportJSON(sc.Fields)
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// CopySchemaJSON exports one schema and places the JSON on the clipboard.
// The returned acknowledgment is for a transient notification; a failed copy
// changes nothing in the workspace.
func (ed *Editor) CopySchemaJSON(schemaID string) (clipboard.Ack, error) {
	raw, err := ed.ws.ExportSchema(schemaID)
	if err != nil {
		return clipboard.Ack{}, err
	}
	return ed.clip.Copy(string(raw)), nil
}

package crud

// Workspace tracks which entity type is on screen and the search query
// applied to it. Switching types clears the query; collection data is kept.
type Workspace struct {
	engine *Engine
	active string
	query  string
}

func NewWorkspace(engine *Engine, initial string) (*Workspace, error) {
	w := &Workspace{engine: engine}
	if err := w.Select(initial); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Workspace) Engine() *Engine {
	return w.engine
}

func (w *Workspace) Select(entityType string) error {
	if _, err := w.engine.Schema(entityType); err != nil {
		return err
	}
	w.active = entityType
	w.query = ""
	return nil
}

func (w *Workspace) SetQuery(query string) {
	w.query = query
}

func (w *Workspace) Active() string {
	return w.active
}

func (w *Workspace) Query() string {
	return w.query
}

func (w *Workspace) Visible() []Entity {
	out, _ := w.engine.Search(w.active, w.query)
	return out
}

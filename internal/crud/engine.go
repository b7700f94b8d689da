// Package crud is a schema-driven record store for entity collections keyed
// by entity type name.
package crud

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"healthlock/pkg/types"
)

type Notice string

const (
	NoticeAdded   Notice = "Record added"
	NoticeUpdated Notice = "Record updated"
	NoticeDeleted Notice = "Record deleted"
)

// Engine is not safe for concurrent use.
type Engine struct {
	order       []string
	schemas     map[string]types.EntityConfig
	collections map[string][]Entity

	// counters hold the last sequence number handed out per type. They only
	// move forward, so ids are never reused after a delete.
	counters map[string]int
}

func NewEngine(configs ...types.EntityConfig) *Engine {
	e := &Engine{
		schemas:     make(map[string]types.EntityConfig, len(configs)),
		collections: make(map[string][]Entity, len(configs)),
		counters:    make(map[string]int, len(configs)),
	}
	for _, c := range configs {
		e.order = append(e.order, c.Type)
		e.schemas[c.Type] = c
		e.collections[c.Type] = nil
	}
	return e
}

func (e *Engine) Schemas() []types.EntityConfig {
	out := make([]types.EntityConfig, 0, len(e.order))
	for _, t := range e.order {
		out = append(out, e.schemas[t])
	}
	return out
}

func (e *Engine) Schema(entityType string) (types.EntityConfig, error) {
	c, ok := e.schemas[entityType]
	if !ok {
		return types.EntityConfig{}, fmt.Errorf("%w: %q", ErrUnknownEntityType, entityType)
	}
	return c, nil
}

// Load appends existing records as-is, in order, and advances the id
// counter past them.
func (e *Engine) Load(entityType string, records ...Entity) error {
	if _, err := e.Schema(entityType); err != nil {
		return err
	}

	prefix := idPrefix(entityType)
	for _, r := range records {
		e.collections[entityType] = append(e.collections[entityType], r.clone())
		if n, err := strconv.Atoi(strings.TrimPrefix(r.ID, prefix)); err == nil && strings.HasPrefix(r.ID, prefix) && n > e.counters[entityType] {
			e.counters[entityType] = n
		}
	}
	if size := len(e.collections[entityType]); size > e.counters[entityType] {
		e.counters[entityType] = size
	}

	return nil
}

// List returns the collection newest first.
func (e *Engine) List(entityType string) ([]Entity, error) {
	return e.Search(entityType, "")
}

// Search keeps records whose serialised form contains query,
// case-insensitively. It is a whole-record match, not per field.
func (e *Engine) Search(entityType, query string) ([]Entity, error) {
	if _, err := e.Schema(entityType); err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	out := make([]Entity, 0, len(e.collections[entityType]))
	for _, r := range e.collections[entityType] {
		if r.matches(q) {
			out = append(out, r.clone())
		}
	}
	return out, nil
}

// Len is the number of records of entityType, zero for unknown types.
func (e *Engine) Len(entityType string) int {
	return len(e.collections[entityType])
}

// Save validates form against the schema and then either replaces the
// record with editingID in place or prepends a new record with a generated
// id. On error the collection is untouched.
func (e *Engine) Save(entityType string, form map[string]string, editingID string) (Entity, Notice, error) {
	schema, err := e.Schema(entityType)
	if err != nil {
		return Entity{}, "", err
	}

	pos := -1
	if editingID != "" {
		pos = e.indexOf(entityType, editingID)
		if pos < 0 {
			return Entity{}, "", fmt.Errorf("%w: %s %q", ErrEntityNotFound, entityType, editingID)
		}
	}

	values, err := parseForm(schema, form)
	if err != nil {
		return Entity{}, "", err
	}

	if pos >= 0 {
		existing := e.collections[entityType][pos]
		for _, f := range schema.Fields {
			if v, ok := existing.Get(f.Key); ok && f.Readonly {
				values[f.Key] = v
			}
		}
		updated := Entity{ID: editingID, Values: values}
		e.collections[entityType][pos] = updated
		return updated.clone(), NoticeUpdated, nil
	}

	created := Entity{ID: e.nextID(entityType), Values: values}
	e.collections[entityType] = append([]Entity{created}, e.collections[entityType]...)
	return created.clone(), NoticeAdded, nil
}

// Delete removes the record with id. A missing id is not an error and
// dependent records in other collections are left alone.
func (e *Engine) Delete(entityType, id string) (Notice, error) {
	if _, err := e.Schema(entityType); err != nil {
		return "", err
	}

	records := e.collections[entityType]
	kept := records[:0]
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	e.collections[entityType] = kept

	return NoticeDeleted, nil
}

func (e *Engine) Stats() types.HospitalStats {
	s := types.HospitalStats{
		Patients:     e.Len("patients"),
		Doctors:      e.Len("doctors"),
		Appointments: e.Len("appointments"),
	}
	for _, records := range e.collections {
		s.Total += len(records)
	}
	return s
}

func (e *Engine) indexOf(entityType, id string) int {
	for i, r := range e.collections[entityType] {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) nextID(entityType string) string {
	prefix := idPrefix(entityType)
	for {
		e.counters[entityType]++
		id := fmt.Sprintf("%s%03d", prefix, e.counters[entityType])
		if e.indexOf(entityType, id) < 0 {
			return id
		}
	}
}

func idPrefix(entityType string) string {
	r, _ := utf8.DecodeRuneInString(entityType)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}

func parseForm(schema types.EntityConfig, form map[string]string) (map[string]Value, error) {
	values := make(map[string]Value, len(schema.Fields))
	for _, f := range schema.Fields {
		if f.Readonly {
			continue
		}

		v, err := ParseValue(f, form[f.Key])
		if err != nil {
			return nil, &ValidationError{Field: f.Key, Label: f.Label, Reason: err.Error()}
		}
		if v == nil {
			if f.Required {
				return nil, &ValidationError{Field: f.Key, Label: f.Label}
			}
			continue
		}
		values[f.Key] = v
	}
	return values, nil
}

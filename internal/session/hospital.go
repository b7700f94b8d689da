package session

import (
	"context"

	"healthlock/internal/crud"
	"healthlock/pkg/types"

	"github.com/sirupsen/logrus"
)

type HospitalView struct {
	EntityType string        `json:"entityType"`
	Query      string        `json:"query"`
	Records    []crud.Entity `json:"records"`
}

func (s *State) Schemas() []types.EntityConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workspace.Engine().Schemas()
}

// SelectEntityType switches the active collection, which clears the search
// query, then applies query.
func (s *State) SelectEntityType(entityType, query string) (HospitalView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entityType != s.workspace.Active() {
		if err := s.workspace.Select(entityType); err != nil {
			return HospitalView{}, err
		}
	}
	s.workspace.SetQuery(query)

	return s.view(), nil
}

func (s *State) HospitalView() HospitalView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

func (s *State) view() HospitalView {
	return HospitalView{
		EntityType: s.workspace.Active(),
		Query:      s.workspace.Query(),
		Records:    s.workspace.Visible(),
	}
}

func (s *State) SaveEntity(ctx context.Context, entityType string, form map[string]string, editingID string) (crud.Entity, crud.Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, notice, err := s.workspace.Engine().Save(entityType, form, editingID)
	if err != nil {
		return crud.Entity{}, "", err
	}

	s.logger.WithFields(logrus.Fields{
		"entity_type": entityType,
		"entity_id":   e.ID,
	}).Debug(string(notice))

	return e, notice, nil
}

func (s *State) DeleteEntity(ctx context.Context, entityType, id string) (crud.Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notice, err := s.workspace.Engine().Delete(entityType, id)
	if err != nil {
		return "", err
	}

	s.logger.WithFields(logrus.Fields{
		"entity_type": entityType,
		"entity_id":   id,
	}).Debug(string(notice))

	return notice, nil
}

func (s *State) HospitalStats() types.HospitalStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workspace.Engine().Stats()
}

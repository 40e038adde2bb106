// Package overrides persists the set of compiled-in painting ids an
// administrator has deleted. Seed records cannot be removed at the source,
// so deletion is modeled as local suppression.
package overrides

import (
	"encoding/json"
	"fmt"
	"slices"

	"gallery-storefront/internal/localstore"
	"gallery-storefront/internal/logger"

	mapset "github.com/deckarep/golang-set/v2"
)

const StorageKey = "hiddenPaintingIds"

type Store struct {
	kv  localstore.KV
	log *logger.Logger
}

func New(kv localstore.KV, log *logger.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Load returns the persisted set. A missing, unreadable or corrupt value
// yields an empty set.
func (s *Store) Load() mapset.Set[string] {
	ids := mapset.NewSet[string]()

	raw, ok, err := s.kv.GetItem(StorageKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read hidden painting ids")
		return ids
	}
	if !ok || raw == "" {
		return ids
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		s.log.Warn().Err(err).Msg("hidden painting ids are corrupt, treating as empty")
		return ids
	}
	ids.Append(list...)
	return ids
}

// Save overwrites the persisted value with ids as a sorted JSON array.
func (s *Store) Save(ids mapset.Set[string]) error {
	list := ids.ToSlice()
	slices.Sort(list)

	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode hidden ids: %w", err)
	}
	if err := s.kv.SetItem(StorageKey, string(b)); err != nil {
		return fmt.Errorf("persist hidden ids: %w", err)
	}
	return nil
}

// Hide adds id to the persisted set. Hiding an id twice leaves the set
// unchanged.
func (s *Store) Hide(id string) error {
	ids := s.Load()
	ids.Add(id)
	return s.Save(ids)
}

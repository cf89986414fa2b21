package main

//go:generate mockgen -source=store.go -destination=store_mock_test.go -package=main

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"
)

// RankingStore is what the request handlers need from the rankings state.
type RankingStore interface {
	Group(code string) map[string]int
	RecordResult(code, player string, won bool) error
	DeleteGroup(code string) (bool, error)
	Stats() Stats
}

// Rankings maps group code -> player name -> win count.
type Rankings map[string]map[string]int

// Stats summarises what the store currently tracks.
type Stats struct {
	Groups  int
	Players int
}

// Store keeps the rankings in memory and mirrors them to a JSON file.
type Store struct {
	mu     sync.Mutex
	file   string
	atomic bool
	data   Rankings
}

// NewStore loads file into a new store. A missing file starts empty.
// When synchronized is false, increments are not atomic and overlapping
// updates for the same player may be lost.
func NewStore(file string, synchronized bool) (*Store, error) {
	s := &Store{file: file, atomic: synchronized, data: Rankings{}}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the in-memory state with the content of the backing file.
func (s *Store) Load() error {
	b, err := os.ReadFile(s.file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	data := Rankings{}
	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}
	if data == nil {
		data = Rankings{}
	}
	for code, players := range data {
		if players == nil {
			data[code] = map[string]int{}
		}
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// Save rewrites the backing file with the full current state.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

func (s *Store) save() error {
	b, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.file, b, 0644)
}

// Group returns a copy of the player map for code, empty when unknown.
func (s *Store) Group(code string) map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int, len(s.data[code]))
	for name, wins := range s.data[code] {
		out[name] = wins
	}
	return out
}

// RecordResult registers player in group code, adding a win when won is
// set, and persists the result.
func (s *Store) RecordResult(code, player string, won bool) error {
	if !s.atomic {
		return s.recordUnsynchronized(code, player, won)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensure(code, player)
	if won {
		s.data[code][player]++
	}
	return s.save()
}

// recordUnsynchronized reads and writes the count in separate critical
// sections, leaving a window where concurrent updates overwrite each other.
func (s *Store) recordUnsynchronized(code, player string, won bool) error {
	s.mu.Lock()
	s.ensure(code, player)
	wins := s.data[code][player]
	s.mu.Unlock()

	if won {
		wins++
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(code, player)
	s.data[code][player] = wins
	return s.save()
}

func (s *Store) ensure(code, player string) {
	if s.data == nil {
		s.data = Rankings{}
	}
	if s.data[code] == nil {
		s.data[code] = map[string]int{}
	}
	if _, ok := s.data[code][player]; !ok {
		s.data[code][player] = 0
	}
}

// DeleteGroup removes group code. It reports whether the group existed;
// the file is only rewritten when something was removed.
func (s *Store) DeleteGroup(code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[code]; !ok {
		return false, nil
	}
	delete(s.data, code)
	return true, s.save()
}

// Stats counts the groups and the players summed over every group.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{Groups: len(s.data)}
	for _, players := range s.data {
		st.Players += len(players)
	}
	return st
}

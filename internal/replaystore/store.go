// Package replaystore persists canonical replays, one JSON document per
// match id, under a data directory. The core never touches file paths
// outside this package.
package replaystore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/riftscope/go-lol-replay/internal/model"
)

// ErrNotFound is returned when no record exists for a match id.
var ErrNotFound = errors.New("replay not found")

// DecodeError marks a stored document that exists but cannot be decoded,
// distinguishable from a missing record.
type DecodeError struct {
	MatchID string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode replay %s: %v", e.MatchID, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Store is a file-backed replay store. Records are immutable once written;
// concurrent saves of the same match id resolve as last-write-wins.
type Store struct {
	dir string
}

// New opens (or creates) a store rooted at dir.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create replay dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(matchID string) string {
	return filepath.Join(s.dir, matchID+".json")
}

func validID(matchID string) error {
	if matchID == "" || strings.ContainsAny(matchID, `/\`) {
		return fmt.Errorf("invalid match id %q", matchID)
	}
	return nil
}

// Save writes the replay document, replacing any previous record wholesale.
func (s *Store) Save(replay *model.ProcessedReplay) error {
	if replay == nil {
		return errors.New("nil replay")
	}
	if err := validID(replay.MatchID); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(replay, "", "  ")
	if err != nil {
		return fmt.Errorf("encode replay %s: %w", replay.MatchID, err)
	}
	if err := os.WriteFile(s.path(replay.MatchID), raw, 0o644); err != nil {
		return fmt.Errorf("write replay %s: %w", replay.MatchID, err)
	}
	return nil
}

// Load reads one replay. A missing record returns ErrNotFound; a document
// that exists but will not decode returns a *DecodeError.
func (s *Store) Load(matchID string) (*model.ProcessedReplay, error) {
	if err := validID(matchID); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path(matchID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, matchID)
		}
		return nil, fmt.Errorf("read replay %s: %w", matchID, err)
	}
	var replay model.ProcessedReplay
	if err := json.Unmarshal(raw, &replay); err != nil {
		return nil, &DecodeError{MatchID: matchID, Err: err}
	}
	return &replay, nil
}

// List returns stored replays newest first. Undecodable files are skipped
// with a log line rather than failing the listing.
func (s *Store) List() ([]model.ReplayInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list replays: %w", err)
	}

	var out []model.ReplayInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		matchID := strings.TrimSuffix(name, ".json")
		replay, err := s.Load(matchID)
		if err != nil {
			log.Printf("replaystore: skipping %s: %v", name, err)
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		out = append(out, model.ReplayInfo{
			MatchID:      replay.MatchID,
			GameDuration: replay.GameDuration,
			Participants: len(replay.Participants),
			StoredAt:     info.ModTime(),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StoredAt.After(out[j].StoredAt)
	})
	return out, nil
}

// Delete removes one stored replay.
func (s *Store) Delete(matchID string) error {
	if err := validID(matchID); err != nil {
		return err
	}
	if err := os.Remove(s.path(matchID)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, matchID)
		}
		return fmt.Errorf("delete replay %s: %w", matchID, err)
	}
	return nil
}

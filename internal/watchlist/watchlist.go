// Package watchlist keeps the JSON-file-persisted list of symbols the
// scheduler scans.
package watchlist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// state is the on-disk representation.
type state struct {
	Symbols   []string  `json:"symbols"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Manager handles watchlist operations with concurrency safety.
type Manager struct {
	mu       sync.Mutex
	symbols  []string
	filePath string
}

// NewManager loads the watchlist from disk, seeding it with defaults when no
// state file exists yet.
func NewManager(filePath string, defaults []string) (*Manager, error) {
	m := &Manager{filePath: filePath}

	data, err := os.ReadFile(filePath)
	switch {
	case err == nil:
		var st state
		if err := json.Unmarshal(data, &st); err != nil {
			return nil, fmt.Errorf("parse watchlist state: %w", err)
		}
		m.symbols = st.Symbols
	case os.IsNotExist(err):
		for _, s := range defaults {
			m.symbols = append(m.symbols, normalize(s))
		}
		if err := m.save(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("read watchlist state: %w", err)
	}

	sort.Strings(m.symbols)
	return m, nil
}

// Symbols returns a copy of the monitored symbols.
func (m *Manager) Symbols() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.symbols))
	copy(out, m.symbols)
	return out
}

// Add inserts a symbol; returns false if it was already present.
func (m *Manager) Add(symbol string) (bool, error) {
	symbol = normalize(symbol)
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.symbols {
		if s == symbol {
			return false, nil
		}
	}
	m.symbols = append(m.symbols, symbol)
	sort.Strings(m.symbols)
	return true, m.save()
}

// Remove deletes a symbol; returns false if it was not present.
func (m *Manager) Remove(symbol string) (bool, error) {
	symbol = normalize(symbol)
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.symbols {
		if s == symbol {
			m.symbols = append(m.symbols[:i], m.symbols[i+1:]...)
			return true, m.save()
		}
	}
	return false, nil
}

// save writes the state atomically via a temp file rename. Caller holds mu.
func (m *Manager) save() error {
	st := state{Symbols: m.symbols, UpdatedAt: time.Now().UTC()}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal watchlist state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(m.filePath), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp := m.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write watchlist state: %w", err)
	}
	if err := os.Rename(tmp, m.filePath); err != nil {
		return fmt.Errorf("replace watchlist state: %w", err)
	}
	return nil
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

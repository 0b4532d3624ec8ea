// SPDX-License-Identifier: MIT

// Package registry keeps named matrices for interactive sessions.
//
// A Registry maps user-chosen names to *matrix.Dense values. It is safe for
// concurrent use: a sync.RWMutex guards the catalog, and every value crosses
// the boundary as a deep copy (Put stores a copy, Get returns a copy), so no
// two holders ever share row storage.
//
// Errors:
//
//	ErrEmptyName   - name is the empty string.
//	ErrInvalidName - name contains whitespace.
//	ErrNotFound    - no matrix is stored under the name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/katalvlaran/linalg/matrix"
)

// Sentinel errors for registry operations.
var (
	// ErrEmptyName indicates an empty matrix name.
	ErrEmptyName = errors.New("registry: matrix name is empty")

	// ErrInvalidName indicates a name that contains whitespace.
	ErrInvalidName = errors.New("registry: matrix name must not contain spaces")

	// ErrNotFound indicates that no matrix is stored under the requested name.
	ErrNotFound = errors.New("registry: matrix not found")
)

// Registry is a concurrency-safe catalog of named matrices.
// The zero value is not usable; call New.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*matrix.Dense
}

// Entry is a name plus the shape of the matrix stored under it.
type Entry struct {
	Name       string
	Rows, Cols int
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{byName: make(map[string]*matrix.Dense)}
}

// ValidateName reports whether name can be used as a registry key.
// Names are case-sensitive; "A" and "a" are distinct.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}

	return nil
}

// Put stores a deep copy of m under name, replacing any previous value.
// It reports whether a previous value was replaced.
//
// Errors: ErrEmptyName, ErrInvalidName, matrix.ErrNilMatrix.
func (r *Registry) Put(name string, m matrix.Matrix) (replaced bool, err error) {
	if err = ValidateName(name); err != nil {
		return false, err
	}
	cp, err := snapshot(m)
	if err != nil {
		return false, fmt.Errorf("registry: Put(%q): %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	_, replaced = r.byName[name]
	r.byName[name] = cp

	return replaced, nil
}

// Get returns a deep copy of the matrix stored under name.
// Errors: ErrEmptyName, ErrInvalidName, ErrNotFound.
func (r *Registry) Get(name string) (*matrix.Dense, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}

	return m.Copy(), nil
}

// Has reports whether a matrix is stored under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byName[name]

	return ok
}

// Delete removes the matrix stored under name.
// Errors: ErrEmptyName, ErrInvalidName, ErrNotFound.
func (r *Registry) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[name]; !ok {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	delete(r.byName, name)

	return nil
}

// Len returns the number of stored matrices.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byName)
}

// Names returns all stored names sorted lexicographically ascending.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)

	return names
}

// Entries returns name and shape of every stored matrix, sorted by name.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	out := make([]Entry, 0, len(r.byName))
	for name, m := range r.byName {
		out = append(out, Entry{Name: name, Rows: m.Rows(), Cols: m.Cols()})
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// snapshot deep-copies any Matrix into a fresh *matrix.Dense.
// Clone already yields a *Dense for the package's own type; other
// implementations are read row by row into NewFromRows.
func snapshot(m matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.Clone().(*matrix.Dense); ok {
		return d, nil
	}

	rows := make([][]float64, m.Rows())
	var i, j int
	var err error
	for i = range rows {
		rows[i] = make([]float64, m.Cols())
		for j = range rows[i] {
			if rows[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return matrix.NewFromRows(rows)
}

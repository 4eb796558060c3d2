package main

// Notes:
// - Shared mocks and fixtures for the command tests. The mocks stand in for
//   coursepdf.Converter so no browser is started.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	coursepdf "github.com/alnah/go-coursepdf"
	"github.com/alnah/go-coursepdf/internal/config"
)

// Config is aliased for shorter test literals.
type Config = config.Config

// ---------------------------------------------------------------------------
// Mock Implementations - For unit testing
// ---------------------------------------------------------------------------

// mockConverter records every input and fails for the configured base names.
type mockConverter struct {
	mu     sync.Mutex
	inputs []coursepdf.Input
	fail   map[string]error
	calls  chan string // optional; receives each converted path
}

func (m *mockConverter) Convert(_ context.Context, input coursepdf.Input) (*coursepdf.ConvertResult, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()

	if m.calls != nil {
		m.calls <- input.Path
	}
	if err, ok := m.fail[filepath.Base(input.Path)]; ok {
		return nil, err
	}
	return &coursepdf.ConvertResult{
		HTML: []byte("<html>" + filepath.Base(input.Path) + "</html>"),
		PDF:  []byte("%PDF-mock " + filepath.Base(input.Path)),
	}, nil
}

func (m *mockConverter) paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	paths := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		paths[i] = in.Path
	}
	return paths
}

// mockPool hands out one shared mock converter.
type mockPool struct {
	conv       CLIConverter
	size       int
	acquireErr error

	mu       sync.Mutex
	acquired int
	released int
	closed   bool
}

func (p *mockPool) Acquire() (CLIConverter, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	p.acquired++
	return p.conv, nil
}

func (p *mockPool) Release(CLIConverter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.released++
}

func (p *mockPool) Size() int {
	if p.size < 1 {
		return 1
	}
	return p.size
}

func (p *mockPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

var errMockRender = errors.New("render exploded")

// testEnv returns an environment writing to buffers, whose pools are the
// given mock. The requested pool size is recorded in gotSize.
func testEnv(pool *mockPool, gotSize *int) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
		NewPool: func(size int, _ ...coursepdf.Option) Pool {
			if gotSize != nil {
				*gotSize = size
			}
			return pool
		},
	}
	return env, &stdout, &stderr
}

// writeFiles creates files (relative to dir) with placeholder content.
func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("// "+name+"\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

// isolateConfig keeps the default config lookup away from the developer's
// own files. Callers cannot use t.Parallel().
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

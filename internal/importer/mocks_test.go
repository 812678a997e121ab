package importer

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ltlops/ltlimport/internal/source"
)

type execCall struct {
	sql  string
	args []any
}

// mockUnitOfWork records every Exec and can be scripted to fail or report
// zero rows affected at specific call indices.
type mockUnitOfWork struct {
	calls       []execCall
	failOn      map[int]error
	zeroRowsOn  map[int]bool
	commitErr   error
	rollbackErr error
	committed   bool
	rolledBack  bool
}

func (m *mockUnitOfWork) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	idx := len(m.calls)
	m.calls = append(m.calls, execCall{sql: sql, args: args})
	if err, ok := m.failOn[idx]; ok {
		return pgconn.CommandTag{}, err
	}
	if m.zeroRowsOn[idx] {
		return pgconn.NewCommandTag("INSERT 0 0"), nil
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (m *mockUnitOfWork) Commit(_ context.Context) error {
	m.committed = true
	return m.commitErr
}

func (m *mockUnitOfWork) Rollback(_ context.Context) error {
	m.rolledBack = true
	return m.rollbackErr
}

type mockLogger struct {
	mu       sync.Mutex
	verbose  []string
	infos    []string
	errorLog []string
}

func (m *mockLogger) Verbose(format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verbose = append(m.verbose, fmt.Sprintf(format, args...))
}

func (m *mockLogger) Info(format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos = append(m.infos, fmt.Sprintf(format, args...))
}

func (m *mockLogger) Error(format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorLog = append(m.errorLog, fmt.Sprintf(format, args...))
}

// makeTable builds an in-memory sheet with the given header and rows,
// assigning line numbers the way the workbook reader does.
func makeTable(columns []string, rows ...[]string) *source.Table {
	t := &source.Table{Columns: columns}
	for i, cells := range rows {
		padded := make([]string, len(columns))
		copy(padded, cells)
		t.Rows = append(t.Rows, source.Row{Line: i + 2, Cells: padded})
	}
	return t
}

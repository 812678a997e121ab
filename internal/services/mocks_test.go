package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type mockConnector struct {
	pool *pgxpool.Pool
	err  error
}

func (m *mockConnector) Connect(_ context.Context) (*pgxpool.Pool, error) {
	return m.pool, m.err
}

type mockApprover struct {
	approved bool
	err      error
	calls    int
}

func (m *mockApprover) RequestApproval(_ context.Context, _ string) (bool, error) {
	m.calls++
	return m.approved, m.err
}

type mockUnitOfWork struct {
	execErr     error
	commitErr   error
	rollbackErr error
	committed   bool
	rolledBack  bool
}

func (m *mockUnitOfWork) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	if m.execErr != nil {
		return pgconn.CommandTag{}, m.execErr
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

type nullLogger struct{}

func (nullLogger) Verbose(string, ...interface{}) {}
func (nullLogger) Info(string, ...interface{})    {}
func (nullLogger) Error(string, ...interface{})   {}

type recordLogger struct {
	errorLog []string
}

func (l *recordLogger) Verbose(string, ...interface{}) {}
func (l *recordLogger) Info(string, ...interface{})    {}
func (l *recordLogger) Error(format string, args ...interface{}) {
	l.errorLog = append(l.errorLog, fmt.Sprintf(format, args...))
}

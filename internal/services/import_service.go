// Package services orchestrates import runs: connection, the run-scoped
// unit of work, pipeline execution, and the commit or rollback decision.
package services

import (
	"context"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ltlops/ltlimport/internal/db"
	"github.com/ltlops/ltlimport/pkg/ltlimport"
)

// PipelineFunc runs one pipeline against the run's unit of work and
// reports per-row outcomes.
type PipelineFunc func(ctx context.Context, uow ltlimport.UnitOfWork) (*ltlimport.RunReport, error)

type connectorFactory func(*ltlimport.ConnectionConfig) (ltlimport.Connector, error)

type uowFactory func(ctx context.Context, pool *pgxpool.Pool) (ltlimport.UnitOfWork, error)

// ImportService owns the run lifecycle shared by all pipelines: connect,
// open one transaction, run the pipeline, then commit on success or roll
// back on a fatal error.
//
// Thread-Safety: NOT safe for concurrent Run() calls on the same
// instance.
type ImportService struct {
	connectorFactory connectorFactory
	uowFactory       uowFactory
	logger           ltlimport.Logger
}

// NewImportService creates an ImportService.
//
// Panics on nil dependencies: those are programmer errors that should
// fail loudly at startup, not surface as nil dereferences mid-run.
func NewImportService(
	connFactory func(*ltlimport.ConnectionConfig) (ltlimport.Connector, error),
	logger ltlimport.Logger,
) *ImportService {
	if connFactory == nil {
		panic("connFactory cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &ImportService{
		connectorFactory: connFactory,
		uowFactory: func(ctx context.Context, pool *pgxpool.Pool) (ltlimport.UnitOfWork, error) {
			return db.BeginUnitOfWork(ctx, pool)
		},
		logger: logger,
	}
}

// Run connects, executes pipeline inside a single transaction, and
// commits. A pipeline error rolls the whole run back; per-row failures
// recorded in the report do not.
func (s *ImportService) Run(ctx context.Context, connConfig *ltlimport.ConnectionConfig, pipeline PipelineFunc) (*ltlimport.RunReport, error) {
	connector, err := s.connectorFactory(connConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connector: %w: %w", err, ltlimport.ErrConnectionFailed)
	}
	if closer, ok := connector.(io.Closer); ok {
		defer closer.Close()
	}

	s.logger.Verbose("Connecting to %s:%d/%s (auth: %s)",
		connConfig.Host, connConfig.Port, connConfig.Database, connConfig.AuthMethod)

	pool, err := connector.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ltlimport.ErrConnectionFailed, err)
	}
	defer func() {
		if pool != nil {
			pool.Close()
		}
	}()

	uow, err := s.uowFactory(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ltlimport.ErrConnectionFailed, err)
	}

	report, err := pipeline(ctx, uow)
	if err != nil {
		if rbErr := uow.Rollback(ctx); rbErr != nil {
			s.logger.Error("Rollback failed: %v", rbErr)
		}
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		// The report still tells the operator what the failed commit
		// invalidated; return it alongside the error.
		s.logger.Error("Run invalidated by failed commit: %s", report.Summary())
		return report, err
	}

	s.logger.Verbose("Run %s committed", report.RunID)
	return report, nil
}

// RunWithApproval asks the approver before running. A denied approval
// aborts before any connection to keep the run free of side effects.
func (s *ImportService) RunWithApproval(
	ctx context.Context,
	connConfig *ltlimport.ConnectionConfig,
	approver ltlimport.Approver,
	pipeline PipelineFunc,
) (*ltlimport.RunReport, error) {
	if approver == nil {
		panic("approver cannot be nil")
	}

	approved, err := approver.RequestApproval(ctx, connConfig.Database)
	if err != nil {
		return nil, fmt.Errorf("approval failed: %w", err)
	}
	if !approved {
		return nil, ltlimport.ErrApprovalDenied
	}

	return s.Run(ctx, connConfig, pipeline)
}

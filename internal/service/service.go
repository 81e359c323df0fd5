// Package service keeps order totals, menu stock, receipt totals and waiter sales reports
// consistent. Every mutating operation runs in one transaction and calls the recompute
// steps explicitly, in order, at the call site.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"hoteldesk/m/domain"
	"hoteldesk/m/internal/logger"
)

type Service struct {
	db  *sqlx.DB
	log *logger.Logger
	now func() time.Time
	loc *time.Location
}

type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the location whose calendar decides a waiter-day.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func New(db *sqlx.DB, log *logger.Logger, opts ...Option) *Service {
	s := &Service{db: db, log: log, now: time.Now, loc: time.UTC}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *Service) today() string {
	return s.now().In(s.loc).Format(domain.DateLayout)
}

func (s *Service) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("unable to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("unable to commit transaction: %w", err)
	}
	return nil
}

package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/riskibarqy/cricket-stats/internal/domain/persistence"
)

func TestClassify(t *testing.T) {
	t.Run("bad connection is unavailable", func(t *testing.T) {
		err := classify(fmt.Errorf("upsert gold_team_stats team=Mumbai Indians: %w", driver.ErrBadConn))
		if !persistence.IsUnavailable(err) {
			t.Fatalf("expected unavailable mark, got %v", err)
		}
		if !errors.Is(err, driver.ErrBadConn) {
			t.Fatalf("original cause must survive marking")
		}
	})

	t.Run("connection exception class is unavailable", func(t *testing.T) {
		err := classify(&pq.Error{Code: "08006", Message: "connection failure"})
		if !persistence.IsUnavailable(err) {
			t.Fatalf("expected unavailable mark for class 08")
		}
	})

	t.Run("admin shutdown is unavailable", func(t *testing.T) {
		if !persistence.IsUnavailable(classify(&pq.Error{Code: "57P01"})) {
			t.Fatalf("expected unavailable mark for admin shutdown")
		}
	})

	t.Run("constraint violation is a row error", func(t *testing.T) {
		err := classify(fmt.Errorf("insert silver_batting: %w", &pq.Error{Code: "23505", Message: "duplicate key"}))
		if persistence.IsUnavailable(err) {
			t.Fatalf("unique violation must not abort a run")
		}
	})

	t.Run("nil stays nil", func(t *testing.T) {
		if classify(nil) != nil {
			t.Fatalf("expected nil")
		}
	})
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get latest match: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(errors.New("pq: relation raw_scorecard does not exist")) {
		t.Fatalf("unexpected not found")
	}
}

func TestOrderByMatchID(t *testing.T) {
	if got := orderByMatchID(true); got != "length(match_id) DESC, match_id DESC" {
		t.Fatalf("unexpected desc ordering %q", got)
	}
	if got := orderByMatchID(false); got != "length(match_id), match_id" {
		t.Fatalf("unexpected asc ordering %q", got)
	}
}

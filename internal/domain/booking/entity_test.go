//go:build unit

package booking_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(now time.Time) *booking.Booking {
	return booking.NewBooking(
		"AB12CD34",
		"tenant-1",
		uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		600, 60, 5000, "USD",
		nil, now,
	)
}

func TestNewBooking(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	b := newTestBooking(now)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, booking.StatusPending, b.Status())
	assert.Equal(t, booking.PaymentUnpaid, b.PaymentStatus())
	assert.Equal(t, 600, b.StartMin())
	assert.Equal(t, 660, b.EndMin())
	assert.Equal(t, 60, b.DurationMin())

	history := b.History()
	require.Len(t, history, 1)
	assert.Equal(t, booking.StatusPending, history[0].Status)
	require.NotNil(t, history[0].ChangedBy)
	assert.Equal(t, b.CustomerID(), *history[0].ChangedBy)
	assert.Equal(t, now, history[0].ChangedAt)
}

func TestTransition(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	actorID := uuid.New()

	t.Run("appends history on each hop", func(t *testing.T) {
		b := newTestBooking(now)

		for i, target := range []booking.Status{
			booking.StatusConfirmed,
			booking.StatusInProgress,
			booking.StatusCompleted,
		} {
			step := now.Add(time.Duration(i+1) * time.Hour)
			require.NoError(t, b.Transition(target, actorID, nil, step))
			assert.Equal(t, target, b.Status())
			assert.Equal(t, step, b.UpdatedAt())
		}

		history := b.History()
		require.Len(t, history, 4)
		assert.Equal(t, booking.StatusPending, history[0].Status)
		assert.Equal(t, booking.StatusCompleted, history[3].Status)
		assert.Equal(t, b.LastChange().Status, b.Status())
	})

	t.Run("carries the note and actor", func(t *testing.T) {
		b := newTestBooking(now)
		note := "customer asked to move up"

		require.NoError(t, b.Transition(booking.StatusConfirmed, actorID, &note, now))

		last := b.LastChange()
		require.NotNil(t, last.Note)
		assert.Equal(t, note, *last.Note)
		require.NotNil(t, last.ChangedBy)
		assert.Equal(t, actorID, *last.ChangedBy)
	})

	t.Run("pending is never a target", func(t *testing.T) {
		b := newTestBooking(now)
		err := b.Transition(booking.StatusPending, actorID, nil, now)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		b := newTestBooking(now)
		err := b.Transition(booking.Status("archived"), actorID, nil, now)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("terminal statuses have no outbound transitions", func(t *testing.T) {
		for _, terminal := range []booking.Status{
			booking.StatusCompleted,
			booking.StatusCancelled,
			booking.StatusNoShow,
		} {
			b := newTestBooking(now)
			require.NoError(t, b.Transition(terminal, actorID, nil, now))

			err := b.Transition(booking.StatusConfirmed, actorID, nil, now)
			assert.ErrorIs(t, err, booking.ErrTerminalStatus, string(terminal))

			// History unchanged by the rejected transition.
			assert.Len(t, b.History(), 2)
			assert.Equal(t, terminal, b.Status())
		}
	})

	t.Run("cancellable from any non-terminal status", func(t *testing.T) {
		b := newTestBooking(now)
		require.NoError(t, b.Transition(booking.StatusConfirmed, actorID, nil, now))
		require.NoError(t, b.Transition(booking.StatusCancelled, actorID, nil, now))
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("history copy cannot mutate the entity", func(t *testing.T) {
		b := newTestBooking(now)
		history := b.History()
		history[0].Status = booking.StatusCompleted
		assert.Equal(t, booking.StatusPending, b.History()[0].Status)
	})
}

func TestReconstruct(t *testing.T) {
	now := time.Now().UTC()

	t.Run("rejects empty history", func(t *testing.T) {
		_, err := booking.Reconstruct(
			uuid.New(), "AB12CD34", "tenant-1",
			uuid.New(), uuid.New(), uuid.New(), uuid.New(),
			now, 600, 660, 60, 5000, "USD",
			booking.StatusConfirmed, booking.PaymentUnpaid,
			nil, nil, now, now,
		)
		assert.ErrorIs(t, err, booking.ErrEmptyHistory)
	})

	t.Run("round trips persisted state", func(t *testing.T) {
		history := []booking.StatusChange{
			{Status: booking.StatusPending, ChangedAt: now},
			{Status: booking.StatusConfirmed, ChangedAt: now.Add(time.Hour)},
		}
		b, err := booking.Reconstruct(
			uuid.New(), "AB12CD34", "tenant-1",
			uuid.New(), uuid.New(), uuid.New(), uuid.New(),
			now, 600, 660, 60, 5000, "USD",
			booking.StatusConfirmed, booking.PaymentPaid,
			nil, history, now, now.Add(time.Hour),
		)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
		assert.Equal(t, booking.StatusConfirmed, b.LastChange().Status)
	})
}

func TestStatus(t *testing.T) {
	t.Run("occupies", func(t *testing.T) {
		assert.True(t, booking.StatusPending.Occupies())
		assert.True(t, booking.StatusConfirmed.Occupies())
		assert.True(t, booking.StatusInProgress.Occupies())
		assert.True(t, booking.StatusCompleted.Occupies())
		assert.False(t, booking.StatusCancelled.Occupies())
		assert.False(t, booking.StatusNoShow.Occupies())
	})

	t.Run("terminal", func(t *testing.T) {
		assert.False(t, booking.StatusPending.IsTerminal())
		assert.False(t, booking.StatusConfirmed.IsTerminal())
		assert.False(t, booking.StatusInProgress.IsTerminal())
		assert.True(t, booking.StatusCompleted.IsTerminal())
		assert.True(t, booking.StatusCancelled.IsTerminal())
		assert.True(t, booking.StatusNoShow.IsTerminal())
	})

	t.Run("validity", func(t *testing.T) {
		assert.True(t, booking.StatusPending.IsValid())
		assert.False(t, booking.Status("archived").IsValid())
		assert.False(t, booking.Status("").IsValid())
	})
}

func TestNewRef(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		ref, err := booking.NewRef()
		require.NoError(t, err)
		require.Len(t, ref, 8)
		for _, r := range ref {
			assert.True(t, (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'), string(r))
		}
		seen[ref] = struct{}{}
	}
	// 100 draws from a 36^8 space colliding would mean broken randomness.
	assert.Len(t, seen, 100)
}

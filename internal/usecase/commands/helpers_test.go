//go:build unit

package commands_test

import (
	"slotbook/internal/domain/identity"
	"slotbook/internal/domain/schedule"

	"github.com/google/uuid"
)

func adminActor() identity.Actor {
	return identity.Actor{ID: uuid.New(), Role: identity.RoleAdmin}
}

func busyTenToEleven() []schedule.Interval {
	return []schedule.Interval{{Start: 600, End: 660}}
}

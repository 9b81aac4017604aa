package service

import (
	"context"
	"testing"

	"idea-forge-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowByActionPlanMapsArchitecture(t *testing.T) {
	userId := uuid.New()
	uow := fullProject(userId)
	uow.arch.Status = entity.ArchitectureStatusReady
	uow.arch.Completed = true

	svc := NewArchitectureService(uow, nil, nil, nopLogger{})

	res, err := svc.ShowByActionPlan(context.Background(), userId, uow.plan.Id)
	require.NoError(t, err)

	assert.Equal(t, uow.arch.Id, res.Id)
	assert.Equal(t, uow.arch.ActionPlanId, res.ActionPlanId)
	assert.Equal(t, string(entity.ArchitectureStatusReady), res.Status)
	assert.Equal(t, uow.arch.UserStories, res.UserStories)
	assert.Equal(t, uow.arch.TechStack, res.TechStack)
	assert.True(t, res.Completed)
	assert.Equal(t, uow.arch.CreatedAt, res.CreatedAt)
}

func TestShowByActionPlanMissingArchitecture(t *testing.T) {
	userId := uuid.New()
	uow := fullProject(userId)
	uow.arch = nil

	svc := NewArchitectureService(uow, nil, nil, nopLogger{})

	_, err := svc.ShowByActionPlan(context.Background(), userId, uow.plan.Id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPriorityFromRankBuckets(t *testing.T) {
	cases := []struct {
		rank int
		want entity.ModulePriority
	}{
		{1, entity.ModulePriorityHigh},
		{3, entity.ModulePriorityHigh},
		{4, entity.ModulePriorityMedium},
		{6, entity.ModulePriorityMedium},
		{7, entity.ModulePriorityLow},
		{12, entity.ModulePriorityLow},
	}
	for _, c := range cases {
		if got := priorityFromRank(c.rank); got != c.want {
			t.Errorf("priorityFromRank(%d) = %s, want %s", c.rank, got, c.want)
		}
	}
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepartmentFor(t *testing.T) {
	tests := []struct {
		category IssueCategory
		want     string
	}{
		{CategoryPothole, "Public Works"},
		{CategorySignage, "Public Works"},
		{CategoryWater, "Public Works"},
		{CategorySidewalk, "Public Works"},
		{CategoryStreetlight, "Electrical Services"},
		{CategoryTrash, "Sanitation"},
		{CategoryGraffiti, "Parks & Recreation"},
		{CategoryOther, "General Services"},
		{IssueCategory("drone-noise"), "General Services"},
		{IssueCategory(""), "General Services"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DepartmentFor(tt.category), "category %q", tt.category)
	}
}

func TestPriorityRank(t *testing.T) {
	assert.Equal(t, 0, PriorityUrgent.Rank())
	assert.Equal(t, 1, PriorityHigh.Rank())
	assert.Equal(t, 2, PriorityMedium.Rank())
	assert.Equal(t, 3, PriorityLow.Rank())
	assert.Equal(t, 4, IssuePriority("bogus").Rank())
}

func TestStatusValid(t *testing.T) {
	for _, status := range []IssueStatus{
		StatusSubmitted, StatusAcknowledged, StatusInProgress, StatusResolved, StatusClosed,
	} {
		assert.True(t, status.Valid(), "status %q", status)
	}

	assert.False(t, IssueStatus("reopened").Valid())
	assert.False(t, IssueStatus("").Valid())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleCitizen.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleCentralAdmin.Valid())
	assert.False(t, Role("superuser").Valid())
}

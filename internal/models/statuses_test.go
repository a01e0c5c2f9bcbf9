package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnquiryStatusTransitions(t *testing.T) {
	cases := []struct {
		from    EnquiryStatus
		to      EnquiryStatus
		allowed bool
	}{
		{EnquiryStatusNew, EnquiryStatusContacted, true},
		{EnquiryStatusNew, EnquiryStatusDead, true},
		{EnquiryStatusNew, EnquiryStatusEnrolled, false},
		{EnquiryStatusContacted, EnquiryStatusEnrolled, true},
		{EnquiryStatusContacted, EnquiryStatusDead, true},
		{EnquiryStatusContacted, EnquiryStatusNew, false},
		{EnquiryStatusEnrolled, EnquiryStatusContacted, false},
		{EnquiryStatusDead, EnquiryStatusNew, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestEnquiryStatusSelfTransitionIsAllowed(t *testing.T) {
	for _, s := range []EnquiryStatus{
		EnquiryStatusNew, EnquiryStatusContacted, EnquiryStatusEnrolled,
		EnquiryStatusDead, EnquiryStatusArchived,
	} {
		assert.True(t, s.CanTransitionTo(s), "%s -> %s", s, s)
	}
}

func TestArchivedIsReachableFromEverywhereAndTerminal(t *testing.T) {
	for _, s := range []EnquiryStatus{
		EnquiryStatusNew, EnquiryStatusContacted, EnquiryStatusEnrolled, EnquiryStatusDead,
	} {
		assert.True(t, s.CanTransitionTo(EnquiryStatusArchived), "%s -> ARCHIVED", s)
		assert.False(t, EnquiryStatusArchived.CanTransitionTo(s), "ARCHIVED -> %s", s)
	}
}

func TestUnknownStatusIsRejected(t *testing.T) {
	assert.False(t, EnquiryStatus("BOGUS").Valid())
	assert.False(t, EnquiryStatusNew.CanTransitionTo(EnquiryStatus("BOGUS")))
	assert.False(t, EnquiryStatus("BOGUS").CanTransitionTo(EnquiryStatusNew))
}

func TestEnterpriseStatusTransitions(t *testing.T) {
	assert.True(t, EnterpriseStatusNew.CanTransitionTo(EnterpriseStatusContacted))
	assert.True(t, EnterpriseStatusNew.CanTransitionTo(EnterpriseStatusClosed))
	assert.False(t, EnterpriseStatusNew.CanTransitionTo(EnterpriseStatusCompleted))
	assert.True(t, EnterpriseStatusContacted.CanTransitionTo(EnterpriseStatusCompleted))
	assert.False(t, EnterpriseStatusCompleted.CanTransitionTo(EnterpriseStatusContacted))
	assert.True(t, EnterpriseStatusCompleted.CanTransitionTo(EnterpriseStatusArchived))
}

func TestFacultyStatusTransitions(t *testing.T) {
	assert.True(t, FacultyStatusNew.CanTransitionTo(FacultyStatusContacted))
	assert.True(t, FacultyStatusNew.CanTransitionTo(FacultyStatusClosed))
	assert.False(t, FacultyStatusNew.CanTransitionTo(FacultyStatusHired))
	assert.True(t, FacultyStatusContacted.CanTransitionTo(FacultyStatusHired))
	assert.False(t, FacultyStatusHired.CanTransitionTo(FacultyStatusContacted))
	assert.True(t, FacultyStatusClosed.CanTransitionTo(FacultyStatusArchived))
}

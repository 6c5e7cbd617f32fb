package docket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/court-docket-api/models"
)

func TestService_CreateHearing(t *testing.T) {
	s := newTestService()
	judge := mustUser(t, s, "judy", models.RoleJudge)
	c := mustCase(t, s, CreateCaseInput{})

	h, err := s.CreateHearing(context.Background(), CreateHearingInput{
		CaseID:      c.ID,
		JudgeID:     judge.ID,
		Date:        "2024-06-03T09:30:00-04:00",
		Location:    "Courtroom 4B",
		Description: "motion to dismiss",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 3, 13, 30, 0, 0, time.UTC), h.Date)
	assert.Equal(t, testNow, h.CreatedAt)

	stored, err := s.Hearings.Get(context.Background(), h.ID)
	require.NoError(t, err)
	assert.Equal(t, h, stored)
}

func TestService_CreateHearingRejections(t *testing.T) {
	s := newTestService()
	judge := mustUser(t, s, "judy", models.RoleJudge)
	clerk := mustUser(t, s, "clara", models.RoleCourtStaff)
	c := mustCase(t, s, CreateCaseInput{})
	valid := CreateHearingInput{CaseID: c.ID, JudgeID: judge.ID, Date: "2024-06-03T09:30:00Z", Location: "4B"}

	with := func(f func(*CreateHearingInput)) CreateHearingInput {
		in := valid
		f(&in)
		return in
	}
	tests := []struct {
		name string
		in   CreateHearingInput
		want models.ErrorCategory
	}{
		{"missing location", with(func(in *CreateHearingInput) { in.Location = "" }), models.CategoryMissingField},
		{"missing case", with(func(in *CreateHearingInput) { in.CaseID = "" }), models.CategoryMissingField},
		{"bad date", with(func(in *CreateHearingInput) { in.Date = "next tuesday" }), models.CategoryInvalidFormat},
		{"unknown case", with(func(in *CreateHearingInput) { in.CaseID = "nope" }), models.CategoryNotFound},
		{"unknown judge", with(func(in *CreateHearingInput) { in.JudgeID = "ghost" }), models.CategoryNotFound},
		{"not a judge", with(func(in *CreateHearingInput) { in.JudgeID = clerk.ID }), models.CategoryRoleMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateHearing(context.Background(), tt.in)
			assert.Equal(t, tt.want, category(t, err))
		})
	}

	hearings, err := s.Hearings.Scan(context.Background())
	require.NoError(t, err)
	assert.Empty(t, hearings)
}

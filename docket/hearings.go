package docket

import (
	"context"
	"time"

	"github.com/linesmerrill/court-docket-api/models"
	v "github.com/linesmerrill/court-docket-api/validation"
)

// CreateHearingInput holds the fields accepted when scheduling a hearing.
// Date is RFC 3339.
type CreateHearingInput struct {
	CaseID      string `json:"caseId"`
	JudgeID     string `json:"judgeId"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// CreateHearing schedules a hearing for an existing case before a judge.
// The judge must be an existing user holding the Judge role, the same check
// applied when a judge is assigned to a case, so a hearing can never be
// booked before a lawyer or an unknown user.
func (s *Service) CreateHearing(ctx context.Context, in CreateHearingInput) (*models.Hearing, error) {
	hearing, err := s.createHearing(ctx, in)
	if err = finish("createHearing", err); err != nil {
		return nil, err
	}
	return hearing, nil
}

func (s *Service) createHearing(ctx context.Context, in CreateHearingInput) (*models.Hearing, error) {
	err := v.Require(
		v.Text("caseId", in.CaseID),
		v.Text("judgeId", in.JudgeID),
		v.Text("date", in.Date),
		v.Text("location", in.Location),
	)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse(time.RFC3339, in.Date)
	if err != nil {
		return nil, models.InvalidFormat("date", "expected RFC 3339, e.g. 2024-05-01T09:30:00Z")
	}

	g := s.guard()
	if _, err := g.CaseExists(ctx, in.CaseID); err != nil {
		return nil, err
	}
	if _, err := g.UserHasRole(ctx, in.JudgeID, models.RoleJudge); err != nil {
		return nil, err
	}

	hearing := &models.Hearing{
		ID:          s.IDs.NewID(),
		CaseID:      in.CaseID,
		JudgeID:     in.JudgeID,
		Date:        date.UTC().Truncate(time.Millisecond),
		Location:    in.Location,
		Description: in.Description,
		CreatedAt:   s.now(),
	}
	if err := s.Hearings.Put(ctx, hearing); err != nil {
		return nil, err
	}
	return hearing, nil
}

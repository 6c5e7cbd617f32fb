package docket

import (
	"context"
	"sort"
	"time"

	"github.com/linesmerrill/court-docket-api/models"
)

// ListUsers returns every user
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Users.Scan(ctx)
	if err != nil {
		return nil, fault("listUsers", err)
	}
	return users, nil
}

// GetUser returns the user with the given id
func (s *Service) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.guard().UserExists(ctx, "user", id)
	return user, fault("getUser", err)
}

// ListCases returns every case
func (s *Service) ListCases(ctx context.Context) ([]models.CourtCase, error) {
	cases, err := s.Cases.Scan(ctx)
	if err != nil {
		return nil, fault("listCases", err)
	}
	for i := range cases {
		normalizeCase(&cases[i])
	}
	return cases, nil
}

// GetCase returns the case with the given id
func (s *Service) GetCase(ctx context.Context, id string) (*models.CourtCase, error) {
	courtCase, err := s.guard().CaseExists(ctx, id)
	if err != nil {
		return nil, fault("getCase", err)
	}
	normalizeCase(courtCase)
	return courtCase, nil
}

// ListHearings returns every hearing
func (s *Service) ListHearings(ctx context.Context) ([]models.Hearing, error) {
	hearings, err := s.Hearings.Scan(ctx)
	if err != nil {
		return nil, fault("listHearings", err)
	}
	return hearings, nil
}

// GetHearing returns the hearing with the given id
func (s *Service) GetHearing(ctx context.Context, id string) (*models.Hearing, error) {
	hearing, err := s.Hearings.Get(ctx, id)
	if isNotFound(err) {
		return nil, models.NotFound("hearing", id)
	}
	if err != nil {
		return nil, fault("getHearing", err)
	}
	return hearing, nil
}

// JudgeCases returns the cases assigned to a judge, each with its hearings,
// plus total, open and closed counts. A judge with no cases gets an empty
// caseload.
func (s *Service) JudgeCases(ctx context.Context, judgeID string) (*models.JudgeCaseload, error) {
	judge, err := s.guard().UserHasRole(ctx, judgeID, models.RoleJudge)
	if err != nil {
		return nil, fault("judgeCases", err)
	}
	cases, err := s.Cases.Scan(ctx)
	if err != nil {
		return nil, fault("judgeCases", err)
	}
	hearings, err := s.Hearings.Scan(ctx)
	if err != nil {
		return nil, fault("judgeCases", err)
	}

	byCase := make(map[string][]models.Hearing)
	for _, h := range hearings {
		byCase[h.CaseID] = append(byCase[h.CaseID], h)
	}

	caseload := &models.JudgeCaseload{Judge: judge, Cases: []models.CaseWithHearings{}}
	for _, c := range cases {
		if c.JudgeID != judgeID {
			continue
		}
		normalizeCase(&c)
		nested := byCase[c.ID]
		if nested == nil {
			nested = []models.Hearing{}
		}
		caseload.Cases = append(caseload.Cases, models.CaseWithHearings{CourtCase: c, Hearings: nested})

		caseload.Stats.Total++
		switch c.Status.Kind() {
		case models.StatusOpen:
			caseload.Stats.Open++
		case models.StatusClosed:
			caseload.Stats.Closed++
		}
	}
	return caseload, nil
}

// LawyerCases returns the cases a lawyer is assigned to
func (s *Service) LawyerCases(ctx context.Context, lawyerID string) (*models.LawyerCaseload, error) {
	lawyer, err := s.guard().UserHasRole(ctx, lawyerID, models.RoleLawyer)
	if err != nil {
		return nil, fault("lawyerCases", err)
	}
	cases, err := s.Cases.Scan(ctx)
	if err != nil {
		return nil, fault("lawyerCases", err)
	}

	caseload := &models.LawyerCaseload{Lawyer: lawyer, Cases: []models.CourtCase{}}
	for _, c := range cases {
		if c.HasLawyer(lawyerID) {
			caseload.Cases = append(caseload.Cases, c)
		}
	}
	caseload.TotalCases = len(caseload.Cases)
	return caseload, nil
}

// JudgeHearings returns every hearing presided over by a judge
func (s *Service) JudgeHearings(ctx context.Context, judgeID string) ([]models.Hearing, error) {
	if _, err := s.guard().UserHasRole(ctx, judgeID, models.RoleJudge); err != nil {
		return nil, fault("judgeHearings", err)
	}
	hearings, err := s.judgeHearings(ctx, judgeID)
	return hearings, fault("judgeHearings", err)
}

func (s *Service) judgeHearings(ctx context.Context, judgeID string) ([]models.Hearing, error) {
	all, err := s.Hearings.Scan(ctx)
	if err != nil {
		return nil, err
	}
	hearings := []models.Hearing{}
	for _, h := range all {
		if h.JudgeID == judgeID {
			hearings = append(hearings, h)
		}
	}
	return hearings, nil
}

// JudgeUpcomingHearings returns a judge's hearings scheduled strictly after
// the service clock's current time, earliest first. Hearings at the same
// time keep their store order.
func (s *Service) JudgeUpcomingHearings(ctx context.Context, judgeID string) ([]models.Hearing, error) {
	if _, err := s.guard().UserHasRole(ctx, judgeID, models.RoleJudge); err != nil {
		return nil, fault("judgeUpcomingHearings", err)
	}
	all, err := s.judgeHearings(ctx, judgeID)
	if err != nil {
		return nil, fault("judgeUpcomingHearings", err)
	}
	return upcoming(all, s.now()), nil
}

func upcoming(hearings []models.Hearing, now time.Time) []models.Hearing {
	out := []models.Hearing{}
	for _, h := range hearings {
		if h.Date.After(now) {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

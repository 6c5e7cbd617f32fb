package docket

import (
	"context"

	"github.com/linesmerrill/court-docket-api/models"
	v "github.com/linesmerrill/court-docket-api/validation"
)

// CreateCaseInput holds the fields accepted when opening a case. LawyerIDs
// is kept loosely typed so malformed entries can be reported.
type CreateCaseInput struct {
	CaseNumber  string            `json:"caseNumber"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.CaseStatus `json:"status"`
	JudgeID     string            `json:"judgeId"`
	LawyerIDs   []interface{}     `json:"lawyerIds"`
}

// CreateCase stores a new case. A supplied judge must exist and hold the
// Judge role. Lawyer references that fail validation are dropped from the
// case and returned in the result instead of rejecting the request.
func (s *Service) CreateCase(ctx context.Context, in CreateCaseInput) (*models.CreateCaseResult, error) {
	res, err := s.createCase(ctx, in)
	if err = finish("createCase", err); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Service) createCase(ctx context.Context, in CreateCaseInput) (*models.CreateCaseResult, error) {
	err := v.Require(
		v.Text("caseNumber", in.CaseNumber),
		v.Text("title", in.Title),
		v.Text("description", in.Description),
	)
	if err != nil {
		return nil, err
	}

	g := s.guard()
	if in.JudgeID != "" {
		if _, err := g.UserHasRole(ctx, in.JudgeID, models.RoleJudge); err != nil {
			return nil, err
		}
	}
	lawyers, err := g.DedupeAndValidateIDList(ctx, in.LawyerIDs, models.RoleLawyer)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = models.CaseStatusOpen
	}
	courtCase := &models.CourtCase{
		ID:          s.IDs.NewID(),
		CaseNumber:  in.CaseNumber,
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		JudgeID:     in.JudgeID,
		LawyerIDs:   lawyers.Valid,
		CreatedAt:   s.now(),
	}
	if err := s.Cases.Put(ctx, courtCase); err != nil {
		return nil, err
	}
	return &models.CreateCaseResult{Case: courtCase, InvalidLawyers: lawyers.Invalid}, nil
}

// UpdateCaseStatus overwrites the status of a case. Any non-empty status is
// accepted; there is no transition table.
func (s *Service) UpdateCaseStatus(ctx context.Context, id string, status models.CaseStatus) (*models.CourtCase, error) {
	courtCase, err := s.updateCaseStatus(ctx, id, status)
	if err = finish("updateCaseStatus", err); err != nil {
		return nil, err
	}
	return courtCase, nil
}

func (s *Service) updateCaseStatus(ctx context.Context, id string, status models.CaseStatus) (*models.CourtCase, error) {
	if err := v.Require(v.Text("status", string(status))); err != nil {
		return nil, err
	}
	courtCase, err := s.guard().CaseExists(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	courtCase.Status = status
	courtCase.UpdatedAt = &now
	normalizeCase(courtCase)
	if err := s.Cases.Put(ctx, courtCase); err != nil {
		return nil, err
	}
	return courtCase, nil
}

// AssignJudge sets the judge of an open case
func (s *Service) AssignJudge(ctx context.Context, caseID, judgeID string) (*models.AssignJudgeResult, error) {
	res, err := s.assignJudge(ctx, caseID, judgeID)
	if err = finish("assignJudge", err); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Service) assignJudge(ctx context.Context, caseID, judgeID string) (*models.AssignJudgeResult, error) {
	if err := v.Require(v.Text("judgeId", judgeID)); err != nil {
		return nil, err
	}
	g := s.guard()
	courtCase, err := g.CaseIsOpenForModification(ctx, caseID)
	if err != nil {
		return nil, err
	}
	judge, err := g.UserHasRole(ctx, judgeID, models.RoleJudge)
	if err != nil {
		return nil, err
	}

	now := s.now()
	courtCase.JudgeID = judge.ID
	courtCase.UpdatedAt = &now
	normalizeCase(courtCase)
	if err := s.Cases.Put(ctx, courtCase); err != nil {
		return nil, err
	}
	return &models.AssignJudgeResult{Case: courtCase, Judge: judge}, nil
}

// AssignLawyers replaces the lawyers of an open case. If any entry of
// lawyerIDs is malformed, unknown or not a Lawyer the case is left as it
// was and every invalid entry is reported.
func (s *Service) AssignLawyers(ctx context.Context, caseID string, lawyerIDs []interface{}) (*models.AssignLawyersResult, error) {
	res, err := s.assignLawyers(ctx, caseID, lawyerIDs)
	if err = finish("assignLawyers", err); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Service) assignLawyers(ctx context.Context, caseID string, lawyerIDs []interface{}) (*models.AssignLawyersResult, error) {
	if err := v.Require(v.Given("lawyerIds", lawyerIDs != nil)); err != nil {
		return nil, err
	}
	g := s.guard()
	courtCase, err := g.CaseIsOpenForModification(ctx, caseID)
	if err != nil {
		return nil, err
	}
	lawyers, err := g.DedupeAndValidateIDList(ctx, lawyerIDs, models.RoleLawyer)
	if err != nil {
		return nil, err
	}
	if !lawyers.OK() {
		return nil, models.InvalidReferences("lawyerIds", lawyers.Invalid)
	}

	now := s.now()
	courtCase.LawyerIDs = lawyers.Valid
	courtCase.UpdatedAt = &now
	if err := s.Cases.Put(ctx, courtCase); err != nil {
		return nil, err
	}
	return &models.AssignLawyersResult{
		Case:        courtCase,
		Lawyers:     lawyers.Users,
		LawyerCount: len(lawyers.Valid),
	}, nil
}

package models

import "time"

// CaseStatus is the free-form status of a case. Open and Closed are the
// values the docket acts on; anything else is carried through untouched.
type CaseStatus string

// Recognized case statuses
const (
	CaseStatusOpen   CaseStatus = "Open"
	CaseStatusClosed CaseStatus = "Closed"
)

// StatusKind classifies a CaseStatus
type StatusKind int

// Status kinds
const (
	StatusOther StatusKind = iota
	StatusOpen
	StatusClosed
)

// Kind returns which control value the status matches, if any
func (s CaseStatus) Kind() StatusKind {
	switch s {
	case CaseStatusOpen:
		return StatusOpen
	case CaseStatusClosed:
		return StatusClosed
	}
	return StatusOther
}

// IsClosed reports whether the status blocks judge and lawyer reassignment
func (s CaseStatus) IsClosed() bool {
	return s.Kind() == StatusClosed
}

// CourtCase holds the structure for the cases collection
type CourtCase struct {
	ID          string     `json:"id" bson:"_id"`
	CaseNumber  string     `json:"caseNumber" bson:"caseNumber"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description"`
	Status      CaseStatus `json:"status" bson:"status"`
	JudgeID     string     `json:"judgeId,omitempty" bson:"judgeId,omitempty"`
	LawyerIDs   []string   `json:"lawyerIds" bson:"lawyerIds"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt" bson:"updatedAt"`
}

// HasLawyer reports whether lawyerID is one of the case's lawyers
func (c *CourtCase) HasLawyer(lawyerID string) bool {
	for _, id := range c.LawyerIDs {
		if id == lawyerID {
			return true
		}
	}
	return false
}

// CaseStats holds the counts returned alongside a caseload
type CaseStats struct {
	Total  int `json:"total"`
	Open   int `json:"open"`
	Closed int `json:"closed"`
}

// CaseWithHearings is a case with the hearings that reference it
type CaseWithHearings struct {
	CourtCase
	Hearings []Hearing `json:"hearings"`
}

// JudgeCaseload is the response for a judge's cases
type JudgeCaseload struct {
	Judge *User              `json:"judge"`
	Cases []CaseWithHearings `json:"cases"`
	Stats CaseStats          `json:"stats"`
}

// LawyerCaseload is the response for a lawyer's cases
type LawyerCaseload struct {
	Lawyer     *User       `json:"lawyer"`
	Cases      []CourtCase `json:"cases"`
	TotalCases int         `json:"totalCases"`
}

// CreateCaseResult is the response for a created case. InvalidLawyers lists
// the lawyer references that were dropped during creation.
type CreateCaseResult struct {
	Case           *CourtCase         `json:"case"`
	InvalidLawyers []InvalidReference `json:"invalidLawyers,omitempty"`
}

// AssignJudgeResult is the response for a judge assignment
type AssignJudgeResult struct {
	Case  *CourtCase `json:"case"`
	Judge *User      `json:"judge"`
}

// AssignLawyersResult is the response for a lawyer assignment
type AssignLawyersResult struct {
	Case        *CourtCase `json:"case"`
	Lawyers     []User     `json:"lawyers"`
	LawyerCount int        `json:"lawyerCount"`
}

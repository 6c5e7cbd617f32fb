package models

import "time"

// Hearing holds the structure for the hearings collection
type Hearing struct {
	ID          string     `json:"id" bson:"_id"`
	CaseID      string     `json:"caseId" bson:"caseId"`
	JudgeID     string     `json:"judgeId" bson:"judgeId"`
	Date        time.Time  `json:"date" bson:"date"`
	Location    string     `json:"location" bson:"location"`
	Description string     `json:"description" bson:"description"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt" bson:"updatedAt"`
}

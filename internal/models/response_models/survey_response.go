package response_models

import dm "travelsurvey/internal/models/domain_models"

type BudgetRange struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Step    int `json:"step"`
	Default int `json:"default"`
}

// SurveyFormResponse is the empty form, pre-filled from the identity.
type SurveyFormResponse struct {
	Header      Header          `json:"header"`
	Name        string          `json:"name"`
	TravelTypes []dm.TravelType `json:"travelTypes"`
	Countries   []dm.Country    `json:"countries"`
	Budget      BudgetRange     `json:"budget"`
}

type SurveySubmissionResponse struct {
	Title   string          `json:"title"`
	Message string          `json:"message"`
	Result  dm.SurveyResult `json:"result"`
	Actions []Action        `json:"actions"`
}

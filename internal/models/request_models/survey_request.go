package request_models

import (
	dm "travelsurvey/internal/models/domain_models"
	"travelsurvey/pkg/utils"
)

// SurveyRequest mirrors the survey form. Age arrives as typed text; Budget
// and Comments may be left out.
type SurveyRequest struct {
	Name       string `json:"name" validate:"notblank"`
	Age        string `json:"age" validate:"notblank,posint"`
	TravelType string `json:"travelType" validate:"required,oneof=Adventure Relaxation Cultural Food"`
	Country    string `json:"country" validate:"required,oneof=USA Japan Italy France Australia Thailand Spain Brazil"`
	Budget     *int   `json:"budget" validate:"omitempty,min=500,max=5000,step=50"`
	Comments   string `json:"comments"`
}

const budgetMessage = "Budget must be between $500 and $5000 in steps of $50"

var SurveyMessages = utils.FieldMessages{
	"name": {"notblank": "Name is required"},
	"age":  {"*": "Valid age is required"},
	"travelType": {
		"required": "Travel type is required",
		"oneof":    "Travel type must be one of Adventure, Relaxation, Cultural, Food",
	},
	"country": {
		"required": "Country is required",
		"oneof":    "Country must be one of USA, Japan, Italy, France, Australia, Thailand, Spain, Brazil",
	},
	"budget": {"*": budgetMessage},
}

// BudgetOrDefault returns the submitted budget, or the slider default when
// none was sent.
func (r SurveyRequest) BudgetOrDefault() int {
	if r.Budget == nil {
		return dm.BudgetDefault
	}
	return *r.Budget
}

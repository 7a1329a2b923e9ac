package domain_models

import "time"

type TravelType string

const (
	TravelAdventure  TravelType = "Adventure"
	TravelRelaxation TravelType = "Relaxation"
	TravelCultural   TravelType = "Cultural"
	TravelFood       TravelType = "Food"
)

// TravelTypes returns the survey options in display order.
func TravelTypes() []TravelType {
	return []TravelType{TravelAdventure, TravelRelaxation, TravelCultural, TravelFood}
}

func (t TravelType) Valid() bool {
	for _, known := range TravelTypes() {
		if t == known {
			return true
		}
	}
	return false
}

type Country string

const (
	CountryUSA       Country = "USA"
	CountryJapan     Country = "Japan"
	CountryItaly     Country = "Italy"
	CountryFrance    Country = "France"
	CountryAustralia Country = "Australia"
	CountryThailand  Country = "Thailand"
	CountrySpain     Country = "Spain"
	CountryBrazil    Country = "Brazil"
)

// Countries returns the dream destination options in display order.
func Countries() []Country {
	return []Country{
		CountryUSA, CountryJapan, CountryItaly, CountryFrance,
		CountryAustralia, CountryThailand, CountrySpain, CountryBrazil,
	}
}

func (c Country) Valid() bool {
	for _, known := range Countries() {
		if c == known {
			return true
		}
	}
	return false
}

// Budget slider bounds, in USD.
const (
	BudgetMin     = 500
	BudgetMax     = 5000
	BudgetStep    = 50
	BudgetDefault = 2750
)

type SurveyResponse struct {
	Name       string     `json:"name"`
	Age        int        `json:"age"`
	TravelType TravelType `json:"travelType"`
	Country    Country    `json:"country"`
	Budget     int        `json:"budget"`
	Comments   string     `json:"comments"`
}

// SurveyResult is what a submission produces. It is handed back to the client
// and forwarded by value to the Results screen; the server keeps no copy.
type SurveyResult struct {
	Response       SurveyResponse `json:"formData"`
	Recommendation string         `json:"recommendation"`
	SubmittedAt    time.Time      `json:"submittedAt"`
}

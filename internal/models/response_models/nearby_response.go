package response_models

import dm "travelsurvey/internal/models/domain_models"

const (
	NearbyStatusReady = "ready"
	NearbyStatusError = "error"
)

type RankedDestination struct {
	dm.RankedDestination
	DistanceLabel string `json:"distanceLabel"`
}

type NearbyScreenResponse struct {
	Header        Header              `json:"header"`
	Status        string              `json:"status"`
	Location      *dm.Coordinates     `json:"location,omitempty"`
	LocationLabel string              `json:"locationLabel,omitempty"`
	Banner        string              `json:"banner,omitempty"`
	Title         string              `json:"title"`
	Destinations  []RankedDestination `json:"destinations"`
	EmptyMessage  string              `json:"emptyMessage,omitempty"`
}

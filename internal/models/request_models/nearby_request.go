package request_models

import dm "travelsurvey/internal/models/domain_models"

const (
	PermissionGranted = "granted"
	PermissionDenied  = "denied"
)

// NearbyRequest is the outcome of the device's location prompt plus the
// params the nearby screen was opened with. PositionError holds the device's
// message when the permission was granted but the lookup itself failed.
type NearbyRequest struct {
	Permission    string          `json:"permission" binding:"required,oneof=granted denied"`
	Position      *dm.Coordinates `json:"position"`
	PositionError string          `json:"positionError"`
	TravelType    dm.TravelType   `json:"travelType"`
}

// ResultsRequest carries the params the results screen was opened with.
type ResultsRequest struct {
	Result *dm.SurveyResult `json:"result"`
}

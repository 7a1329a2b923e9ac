package domain_models

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Destination struct {
	Name        string      `json:"name"`
	Country     Country     `json:"country"`
	TravelType  TravelType  `json:"travelType"`
	Coordinates Coordinates `json:"coordinates"`
}

// RankedDestination is a Destination with its distance from the caller.
// Rankings are computed per request and never cached.
type RankedDestination struct {
	Destination
	DistanceKm float64 `json:"distanceKm"`
}

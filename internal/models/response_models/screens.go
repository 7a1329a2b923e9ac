package response_models

import (
	dm "travelsurvey/internal/models/domain_models"
	"travelsurvey/internal/navigation"
)

// Header is the banner every signed-in screen renders.
type Header struct {
	Title   string `json:"title"`
	Welcome string `json:"welcome,omitempty"`
	Email   string `json:"email,omitempty"`
}

// Action is a button that navigates; Route holds the params to open it with.
type Action struct {
	Label string                  `json:"label"`
	Route navigation.MountedRoute `json:"route"`
}

type HomeScreenResponse struct {
	Header  Header   `json:"header"`
	Intro   string   `json:"intro"`
	Actions []Action `json:"actions"`
}

type ProfileScreenResponse struct {
	Header        Header `json:"header"`
	AvatarInitial string `json:"avatarInitial"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	MemberSince   string `json:"memberSince"`
}

type Toggle struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

type SettingsScreenResponse struct {
	Header      Header   `json:"header"`
	Preferences []Toggle `json:"preferences"`
	Account     []string `json:"account"`
	About       []string `json:"about"`
	Version     string   `json:"version"`
}

type ResultsScreenResponse struct {
	Header  Header           `json:"header"`
	Result  *dm.SurveyResult `json:"result,omitempty"`
	Budget  string           `json:"budget,omitempty"`
	Date    string           `json:"date,omitempty"`
	Empty   bool             `json:"empty"`
	Message string           `json:"message"`
	Hint    string           `json:"hint,omitempty"`
}

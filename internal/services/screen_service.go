package services

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	dm "travelsurvey/internal/models/domain_models"
	"travelsurvey/internal/models/response_models"
	"travelsurvey/internal/navigation"
	"travelsurvey/pkg/utils"
)

// AppVersion is shown on the settings screen.
const AppVersion = "1.0.0"

const (
	emptyResultsMessage = "You haven't completed any travel surveys yet."
	emptyResultsHint    = "Complete a survey to see your personalized travel recommendations!"
	resultsIntro        = "Here is your latest travel survey result:"
)

type ScreenServiceInterface interface {
	Home(identity dm.IdentityContext) (*response_models.HomeScreenResponse, error)
	Profile(identity dm.IdentityContext) *response_models.ProfileScreenResponse
	Settings(identity dm.IdentityContext) *response_models.SettingsScreenResponse
	Results(identity dm.IdentityContext, result *dm.SurveyResult) *response_models.ResultsScreenResponse
}

type ScreenService struct {
	clock utils.Clock
}

func NewScreenService(clock utils.Clock) ScreenServiceInterface {
	return &ScreenService{clock: clock}
}

func (s *ScreenService) Home(identity dm.IdentityContext) (*response_models.HomeScreenResponse, error) {
	surveyRoute, err := navigation.Navigate(identity, navigation.PathSurvey)
	if err != nil {
		return nil, err
	}
	nearbyRoute, err := navigation.Navigate(identity, navigation.PathNearby)
	if err != nil {
		return nil, err
	}

	return &response_models.HomeScreenResponse{
		Header: welcomeHeader("Welcome to Travel Survey", identity.OrGuest()),
		Intro:  "Explore our travel survey and discover your perfect destination!",
		Actions: []response_models.Action{
			{Label: "Go to Surveys", Route: surveyRoute},
			{Label: findNearbyLabel, Route: nearbyRoute},
		},
	}, nil
}

// Profile renders the account card. Member Since is the date the screen was
// built; no account record exists to read it from.
func (s *ScreenService) Profile(identity dm.IdentityContext) *response_models.ProfileScreenResponse {
	shown := identity.OrGuest()
	return &response_models.ProfileScreenResponse{
		Header:        response_models.Header{Title: "Profile"},
		AvatarInitial: avatarInitial(shown.Name),
		Name:          shown.Name,
		Email:         shown.Email,
		MemberSince:   utils.FormatDisplayDate(s.clock()),
	}
}

func (s *ScreenService) Settings(identity dm.IdentityContext) *response_models.SettingsScreenResponse {
	return &response_models.SettingsScreenResponse{
		Header: welcomeHeader("Settings", identity.OrGuest()),
		Preferences: []response_models.Toggle{
			{Key: "notifications", Label: "Push Notifications", Enabled: true},
			{Key: "darkMode", Label: "Dark Mode", Enabled: false},
			{Key: "location", Label: "Location Services", Enabled: true},
		},
		Account: []string{"Edit Profile", "Change Password", "Logout"},
		About:   []string{"Privacy Policy", "Terms of Service"},
		Version: "Version " + AppVersion,
	}
}

// Results shows the submission the screen was opened with, or the empty state
// when it was opened without one.
func (s *ScreenService) Results(identity dm.IdentityContext, result *dm.SurveyResult) *response_models.ResultsScreenResponse {
	view := &response_models.ResultsScreenResponse{
		Header: welcomeHeader("Your Survey Results", identity.OrGuest()),
	}
	if result == nil {
		view.Empty = true
		view.Message = emptyResultsMessage
		view.Hint = emptyResultsHint
		return view
	}

	r := *result
	view.Result = &r
	view.Message = resultsIntro
	view.Budget = fmt.Sprintf("$%d", r.Response.Budget)
	view.Date = utils.FormatDisplayDate(r.SubmittedAt)
	return view
}

func welcomeHeader(title string, identity dm.IdentityContext) response_models.Header {
	return response_models.Header{
		Title:   title,
		Welcome: "Welcome, " + identity.Name,
		Email:   identity.Email,
	}
}

func avatarInitial(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return strings.ToUpper(dm.GuestName[:1])
	}
	return string(unicode.ToUpper(r))
}

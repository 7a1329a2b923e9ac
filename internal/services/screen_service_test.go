package services

import (
	dm "travelsurvey/internal/models/domain_models"
	"travelsurvey/internal/navigation"
)

func (s *ServiceSuite) TestHome() {
	view, err := s.screens.Home(ana)
	s.Require().NoError(err)

	s.Equal("Welcome to Travel Survey", view.Header.Title)
	s.Equal("Welcome, Ana", view.Header.Welcome)
	s.Equal("ana@example.com", view.Header.Email)
	s.Require().Len(view.Actions, 2)
	s.Equal("Go to Surveys", view.Actions[0].Label)
	s.Equal(navigation.RouteSurveyForm, view.Actions[0].Route.Name)
	s.Equal(ana, view.Actions[0].Route.Params.Identity)
	s.Equal("Find Nearby Destinations", view.Actions[1].Label)
	s.Equal(navigation.RouteNearby, view.Actions[1].Route.Name)
	s.Empty(view.Actions[1].Route.Params.TravelType)
}

func (s *ServiceSuite) TestProfile() {
	s.Run("Given identity When profile Then details and avatar", func() {
		view := s.screens.Profile(ana)
		s.Equal("A", view.AvatarInitial)
		s.Equal("Ana", view.Name)
		s.Equal("ana@example.com", view.Email)
		s.Equal("May 10, 2025", view.MemberSince)
	})

	s.Run("Given lowercase name When profile Then initial is upper case", func() {
		s.Equal("É", s.screens.Profile(dm.IdentityContext{Name: "élodie"}).AvatarInitial)
	})

	s.Run("Given no identity When profile Then guest", func() {
		view := s.screens.Profile(dm.IdentityContext{})
		s.Equal("G", view.AvatarInitial)
		s.Equal("Guest", view.Name)
		s.Equal("", view.Email)
	})
}

func (s *ServiceSuite) TestSettings() {
	s.Run("Given identity When settings Then name and email in header", func() {
		view := s.screens.Settings(ana)
		s.Equal("Settings", view.Header.Title)
		s.Equal("Welcome, Ana", view.Header.Welcome)
		s.Equal("ana@example.com", view.Header.Email)
		s.Require().Len(view.Preferences, 3)
		s.True(view.Preferences[0].Enabled)
		s.False(view.Preferences[1].Enabled)
		s.True(view.Preferences[2].Enabled)
		s.Equal([]string{"Edit Profile", "Change Password", "Logout"}, view.Account)
		s.Equal([]string{"Privacy Policy", "Terms of Service"}, view.About)
		s.Equal("Version 1.0.0", view.Version)
	})

	s.Run("Given no identity When settings Then guest header", func() {
		view := s.screens.Settings(dm.IdentityContext{})
		s.Equal("Welcome, Guest", view.Header.Welcome)
		s.Empty(view.Header.Email)
	})
}

func (s *ServiceSuite) TestResults() {
	s.Run("Given no result When results Then empty state", func() {
		view := s.screens.Results(ana, nil)
		s.True(view.Empty)
		s.Nil(view.Result)
		s.Equal("You haven't completed any travel surveys yet.", view.Message)
		s.Equal("Complete a survey to see your personalized travel recommendations!", view.Hint)
		s.Equal("Your Survey Results", view.Header.Title)
		s.Equal("Welcome, Ana", view.Header.Welcome)
	})

	s.Run("Given a forwarded result When results Then it is shown", func() {
		result := dm.SurveyResult{
			Response:       dm.SurveyResponse{Name: "Ana", Age: 28, TravelType: dm.TravelFood, Country: dm.CountryJapan, Budget: 2750},
			Recommendation: "sushi making in Tokyo",
			SubmittedAt:    fixedTime,
		}
		view := s.screens.Results(dm.IdentityContext{}, &result)
		s.False(view.Empty)
		s.Equal(&result, view.Result)
		s.Equal("$2750", view.Budget)
		s.Equal("May 10, 2025", view.Date)
		s.Equal("Welcome, Guest", view.Header.Welcome)
	})
}

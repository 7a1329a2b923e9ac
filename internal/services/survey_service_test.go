package services

import (
	"context"

	dm "travelsurvey/internal/models/domain_models"
	"travelsurvey/internal/models/request_models"
	"travelsurvey/internal/navigation"
	"travelsurvey/pkg/utils"
)

func budget(n int) *int { return &n }

func (s *ServiceSuite) TestSurveyForm() {
	s.Run("Given identity When form Then name is prefilled", func() {
		form := s.survey.Form(ana)
		s.Equal("Ana", form.Name)
		s.Equal("Welcome, Ana", form.Header.Welcome)
		s.Equal(dm.TravelTypes(), form.TravelTypes)
		s.Len(form.Countries, 8)
		s.Equal(2750, form.Budget.Default)
		s.Equal(500, form.Budget.Min)
		s.Equal(5000, form.Budget.Max)
		s.Equal(50, form.Budget.Step)
	})

	s.Run("Given no identity When form Then name is prefilled with Guest", func() {
		form := s.survey.Form(dm.IdentityContext{})
		s.Equal("Guest", form.Name)
		s.Equal("Welcome, Guest", form.Header.Welcome)
		s.Equal("", form.Header.Email)
	})
}

func (s *ServiceSuite) TestSurveySubmit() {
	ctx := context.Background()

	s.Run("Given Ana Food Japan When submit Then sushi making in Tokyo", func() {
		resp, err := s.survey.Submit(ctx, ana, request_models.SurveyRequest{
			Name:       "Ana",
			Age:        "28",
			TravelType: "Food",
			Country:    "Japan",
		})
		s.Require().NoError(err)

		s.Equal("Thanks for Submitting!", resp.Title)
		s.Equal("sushi making in Tokyo", resp.Result.Recommendation)
		s.Equal("Thanks, Ana! Based on your preferences:\n\n"+
			"28-year-old fan of Food\n"+
			"Dreaming of Japan\n"+
			"Budget: $2750\n\n"+
			"We recommend trying sushi making in Tokyo!", resp.Message)
		s.Equal(dm.SurveyResponse{
			Name:       "Ana",
			Age:        28,
			TravelType: dm.TravelFood,
			Country:    dm.CountryJapan,
			Budget:     2750,
		}, resp.Result.Response)
		s.Equal(fixedTime, resp.Result.SubmittedAt)

		s.Require().Len(resp.Actions, 2)
		results := resp.Actions[0]
		s.Equal("View Survey Results", results.Label)
		s.Equal(navigation.RouteSurveyResults, results.Route.Name)
		s.Equal(ana, results.Route.Params.Identity)
		s.Require().NotNil(results.Route.Params.Result)
		s.Equal(resp.Result, *results.Route.Params.Result)

		nearby := resp.Actions[1]
		s.Equal("Find Nearby Destinations", nearby.Label)
		s.Equal(navigation.RouteNearby, nearby.Route.Name)
		s.Equal(ana, nearby.Route.Params.Identity)
		s.Equal(dm.TravelFood, nearby.Route.Params.TravelType)

		s.Equal(1.0, s.counter(s.metrics.SurveySubmissions.WithLabelValues("Food")))
	})

	s.Run("Given budget and comments When submit Then they are kept", func() {
		resp, err := s.survey.Submit(ctx, ana, request_models.SurveyRequest{
			Name:       " Ana ",
			Age:        " 41 ",
			TravelType: "Adventure",
			Country:    "Brazil",
			Budget:     budget(5000),
			Comments:   "window seat",
		})
		s.Require().NoError(err)
		s.Equal("Ana", resp.Result.Response.Name)
		s.Equal(41, resp.Result.Response.Age)
		s.Equal(5000, resp.Result.Response.Budget)
		s.Equal("window seat", resp.Result.Response.Comments)
		s.Equal("exploring the Amazon rainforest", resp.Result.Recommendation)
	})

	s.Run("Given empty form When submit Then every required field fails", func() {
		resp, err := s.survey.Submit(ctx, ana, request_models.SurveyRequest{})
		s.Nil(resp)

		var verr *utils.ValidationError
		s.Require().ErrorAs(err, &verr)
		s.Equal(map[string]string{
			"name":       "Name is required",
			"age":        "Valid age is required",
			"travelType": "Travel type is required",
			"country":    "Country is required",
		}, verr.Fields)
	})

	s.Run("Given bad age When submit Then age message", func() {
		for _, age := range []string{"0", "-1", "abc", "2.5"} {
			_, err := s.survey.Submit(ctx, ana, request_models.SurveyRequest{
				Name: "Ana", Age: age, TravelType: "Food", Country: "Japan",
			})

			var verr *utils.ValidationError
			s.Require().ErrorAs(err, &verr, age)
			s.Equal(map[string]string{"age": "Valid age is required"}, verr.Fields, age)
		}
	})

	s.Run("Given out of range budget When submit Then budget message", func() {
		for _, b := range []int{450, 5050, 2725} {
			_, err := s.survey.Submit(ctx, ana, request_models.SurveyRequest{
				Name: "Ana", Age: "30", TravelType: "Food", Country: "Japan", Budget: budget(b),
			})

			var verr *utils.ValidationError
			s.Require().ErrorAs(err, &verr, b)
			s.Equal("Budget must be between $500 and $5000 in steps of $50", verr.Fields["budget"])
		}
	})

	s.Run("Given unknown travel type When submit Then rejected", func() {
		_, err := s.survey.Submit(ctx, ana, request_models.SurveyRequest{
			Name: "Ana", Age: "30", TravelType: "Business", Country: "Canada",
		})

		var verr *utils.ValidationError
		s.Require().ErrorAs(err, &verr)
		s.Contains(verr.Fields, "travelType")
		s.Contains(verr.Fields, "country")
	})
}

func (s *ServiceSuite) TestConfirmationMessage() {
	msg := ConfirmationMessage(dm.SurveyResult{
		Response: dm.SurveyResponse{
			Name: "Bo", Age: 33, TravelType: dm.TravelCultural, Country: dm.CountryItaly, Budget: 1200,
		},
		Recommendation: "historical sites in Rome",
	})
	s.Equal("Thanks, Bo! Based on your preferences:\n\n33-year-old fan of Cultural\nDreaming of Italy\nBudget: $1200\n\nWe recommend trying historical sites in Rome!", msg)
}

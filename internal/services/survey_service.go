package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"travelsurvey/internal/catalog"
	"travelsurvey/internal/metrics"
	dm "travelsurvey/internal/models/domain_models"
	"travelsurvey/internal/models/request_models"
	"travelsurvey/internal/models/response_models"
	"travelsurvey/internal/navigation"
	"travelsurvey/pkg/utils"
)

const (
	surveyTitle        = "Travel Preferences Survey"
	submittedTitle     = "Thanks for Submitting!"
	viewResultsLabel   = "View Survey Results"
	findNearbyLabel    = "Find Nearby Destinations"
	confirmationFormat = "Thanks, %s! Based on your preferences:\n\n" +
		"%d-year-old fan of %s\n" +
		"Dreaming of %s\n" +
		"Budget: $%d\n\n" +
		"We recommend trying %s!"
)

type SurveyServiceInterface interface {
	Form(identity dm.IdentityContext) response_models.SurveyFormResponse
	Submit(ctx context.Context, identity dm.IdentityContext, req request_models.SurveyRequest) (*response_models.SurveySubmissionResponse, error)
}

type SurveyService struct {
	clock   utils.Clock
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewSurveyService(clock utils.Clock, m *metrics.Metrics, logger *zap.Logger) SurveyServiceInterface {
	return &SurveyService{
		clock:   clock,
		metrics: m,
		logger:  logger,
	}
}

// Form returns the blank survey with the name prefilled from the identity.
func (s *SurveyService) Form(identity dm.IdentityContext) response_models.SurveyFormResponse {
	shown := identity.OrGuest()
	return response_models.SurveyFormResponse{
		Header:      welcomeHeader(surveyTitle, shown),
		Name:        shown.Name,
		TravelTypes: dm.TravelTypes(),
		Countries:   dm.Countries(),
		Budget: response_models.BudgetRange{
			Min:     dm.BudgetMin,
			Max:     dm.BudgetMax,
			Step:    dm.BudgetStep,
			Default: dm.BudgetDefault,
		},
	}
}

// Submit validates the form and looks up the recommendation. Nothing is
// stored: the result goes back to the caller together with the params for
// the two screens it can be opened on.
func (s *SurveyService) Submit(ctx context.Context, identity dm.IdentityContext, req request_models.SurveyRequest) (*response_models.SurveySubmissionResponse, error) {
	if err := utils.Validate(req, request_models.SurveyMessages); err != nil {
		return nil, err
	}
	age, _ := utils.ParsePositiveInt(req.Age)

	response := dm.SurveyResponse{
		Name:       strings.TrimSpace(req.Name),
		Age:        age,
		TravelType: dm.TravelType(req.TravelType),
		Country:    dm.Country(req.Country),
		Budget:     req.BudgetOrDefault(),
		Comments:   req.Comments,
	}
	result := dm.SurveyResult{
		Response:       response,
		Recommendation: catalog.Recommend(req.TravelType, req.Country),
		SubmittedAt:    s.clock(),
	}

	resultsRoute, err := navigation.Navigate(identity, navigation.PathResults, navigation.WithResult(result))
	if err != nil {
		return nil, err
	}
	nearbyRoute, err := navigation.Navigate(identity, navigation.PathNearby, navigation.WithTravelType(response.TravelType))
	if err != nil {
		return nil, err
	}

	s.metrics.SurveySubmissions.WithLabelValues(string(response.TravelType)).Inc()
	s.logger.Debug("survey submitted",
		zap.String("travel_type", string(response.TravelType)),
		zap.String("country", string(response.Country)),
		zap.String("trace_id", utils.TraceIDFromContext(ctx)),
	)

	return &response_models.SurveySubmissionResponse{
		Title:   submittedTitle,
		Message: ConfirmationMessage(result),
		Result:  result,
		Actions: []response_models.Action{
			{Label: viewResultsLabel, Route: resultsRoute},
			{Label: findNearbyLabel, Route: nearbyRoute},
		},
	}, nil
}

// ConfirmationMessage renders the text shown after a successful submission.
func ConfirmationMessage(result dm.SurveyResult) string {
	r := result.Response
	return fmt.Sprintf(confirmationFormat,
		r.Name, r.Age, r.TravelType, r.Country, r.Budget, result.Recommendation)
}

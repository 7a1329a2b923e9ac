package services

import (
	"strings"

	"go.uber.org/zap"

	"travelsurvey/internal/metrics"
	dm "travelsurvey/internal/models/domain_models"
	"travelsurvey/internal/models/request_models"
	"travelsurvey/internal/models/response_models"
	"travelsurvey/internal/navigation"
	mem "travelsurvey/pkg/memcache"
	"travelsurvey/pkg/utils"
)

type GateState string

const (
	GateUnauthenticated GateState = "unauthenticated"
	GateAuthenticated   GateState = "authenticated"
)

// LoginGate is the login screen's state machine. It only moves forward: once
// authenticated, later submissions return the identity it already holds.
type LoginGate struct {
	state    GateState
	identity dm.IdentityContext
}

func NewLoginGate() *LoginGate {
	return &LoginGate{state: GateUnauthenticated}
}

func (g *LoginGate) State() GateState {
	return g.state
}

// Submit validates the form. On failure the gate stays where it was and the
// error is a *utils.ValidationError with one message per field.
func (g *LoginGate) Submit(req request_models.LoginRequest) (dm.IdentityContext, error) {
	if g.state == GateAuthenticated {
		return g.identity, nil
	}

	req.UserName = strings.TrimSpace(req.UserName)
	req.Email = strings.TrimSpace(req.Email)
	if err := utils.Validate(req, request_models.LoginMessages); err != nil {
		return dm.IdentityContext{}, err
	}

	g.identity = dm.IdentityContext{Name: req.UserName, Email: req.Email}
	g.state = GateAuthenticated
	return g.identity, nil
}

type LoginServiceInterface interface {
	Login(req request_models.LoginRequest) (*response_models.LoginResponse, error)
	Logout(claims *utils.Claims) error
	Resolve(token string) (dm.IdentityContext, *utils.Claims, error)
}

type LoginService struct {
	tokens  *utils.TokenIssuer
	revoked mem.RevokedTokenStore
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewLoginService(tokens *utils.TokenIssuer, revoked mem.RevokedTokenStore, m *metrics.Metrics, logger *zap.Logger) LoginServiceInterface {
	return &LoginService{
		tokens:  tokens,
		revoked: revoked,
		metrics: m,
		logger:  logger,
	}
}

func (s *LoginService) Login(req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	gate := NewLoginGate()
	identity, err := gate.Submit(req)
	if err != nil {
		s.metrics.LoginAttempts.WithLabelValues("invalid").Inc()
		return nil, err
	}

	token, claims, err := s.tokens.CreateToken(identity.Name, identity.Email)
	if err != nil {
		s.metrics.LoginAttempts.WithLabelValues("error").Inc()
		return nil, err
	}

	next, err := navigation.Navigate(identity, navigation.PathDrawer)
	if err != nil {
		return nil, err
	}

	s.metrics.LoginAttempts.WithLabelValues("success").Inc()
	s.logger.Info("user signed in", zap.String("token_id", claims.ID))

	return &response_models.LoginResponse{
		State:     string(gate.State()),
		Identity:  identity,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		Next:      next,
	}, nil
}

func (s *LoginService) Logout(claims *utils.Claims) error {
	if claims == nil || claims.ID == "" {
		return utils.ErrInvalidToken
	}

	s.revoked.Revoke(claims.ID, claims.ExpiresAt.Time)
	s.metrics.Logouts.Inc()
	s.logger.Info("session revoked", zap.String("token_id", claims.ID))
	return nil
}

// Resolve decodes a session token back into the identity it carries.
func (s *LoginService) Resolve(token string) (dm.IdentityContext, *utils.Claims, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return dm.IdentityContext{}, nil, err
	}
	if s.revoked.IsRevoked(claims.ID) {
		return dm.IdentityContext{}, nil, utils.ErrTokenRevoked
	}
	return dm.IdentityContext{Name: claims.Name, Email: claims.Email}, claims, nil
}

package services

import (
	"errors"
	"time"

	"travelsurvey/internal/models/request_models"
	"travelsurvey/internal/navigation"
	"travelsurvey/pkg/utils"
)

func (s *ServiceSuite) TestLoginGate() {
	s.Run("Given blank fields When submit Then one message per field and no transition", func() {
		gate := NewLoginGate()
		_, err := gate.Submit(request_models.LoginRequest{UserName: "   ", Email: ""})

		var verr *utils.ValidationError
		s.Require().ErrorAs(err, &verr)
		s.Equal(map[string]string{
			"userName": "Name is required",
			"email":    "Email is required",
		}, verr.Fields)
		s.Equal(GateUnauthenticated, gate.State())
	})

	s.Run("Given malformed email When submit Then email message only", func() {
		gate := NewLoginGate()
		_, err := gate.Submit(request_models.LoginRequest{UserName: "Ana", Email: "ana@example"})

		var verr *utils.ValidationError
		s.Require().ErrorAs(err, &verr)
		s.Equal(map[string]string{"email": "Email address is invalid"}, verr.Fields)
		s.Equal(GateUnauthenticated, gate.State())
	})

	s.Run("Given padded fields When submit Then identity is trimmed", func() {
		gate := NewLoginGate()
		identity, err := gate.Submit(request_models.LoginRequest{UserName: "  Ana ", Email: " ana@example.com  "})

		s.Require().NoError(err)
		s.Equal(ana, identity)
		s.Equal(GateAuthenticated, gate.State())
	})

	s.Run("Given authenticated gate When submit again Then identity is kept", func() {
		gate := NewLoginGate()
		_, err := gate.Submit(request_models.LoginRequest{UserName: "Ana", Email: "ana@example.com"})
		s.Require().NoError(err)

		identity, err := gate.Submit(request_models.LoginRequest{UserName: "", Email: ""})
		s.Require().NoError(err)
		s.Equal(ana, identity)
		s.Equal(GateAuthenticated, gate.State())
	})
}

func (s *ServiceSuite) TestLogin() {
	s.Run("Given valid form When login Then token carries identity and next route is the drawer", func() {
		resp, err := s.login.Login(request_models.LoginRequest{UserName: " Ana", Email: "ana@example.com "})
		s.Require().NoError(err)

		s.Equal(string(GateAuthenticated), resp.State)
		s.Equal(ana, resp.Identity)
		s.Equal(navigation.RouteDrawer, resp.Next.Name)
		resp.Next.Walk(func(path string, r navigation.MountedRoute) {
			s.Equal(ana, r.Params.Identity, path)
		})

		identity, claims, err := s.login.Resolve(resp.Token)
		s.Require().NoError(err)
		s.Equal(ana, identity)
		s.WithinDuration(resp.ExpiresAt, claims.ExpiresAt.Time, time.Second)
		s.Equal(1.0, s.counter(s.metrics.LoginAttempts.WithLabelValues("success")))
	})

	s.Run("Given invalid form When login Then validation error and no token", func() {
		resp, err := s.login.Login(request_models.LoginRequest{UserName: "Ana", Email: "nope"})

		var verr *utils.ValidationError
		s.Require().ErrorAs(err, &verr)
		s.Nil(resp)
		s.Equal(1.0, s.counter(s.metrics.LoginAttempts.WithLabelValues("invalid")))
	})
}

func (s *ServiceSuite) TestLogout() {
	s.Run("Given signed in user When logout Then token no longer resolves", func() {
		resp, err := s.login.Login(request_models.LoginRequest{UserName: "Ana", Email: "ana@example.com"})
		s.Require().NoError(err)
		_, claims, err := s.login.Resolve(resp.Token)
		s.Require().NoError(err)

		s.Require().NoError(s.login.Logout(claims))

		_, _, err = s.login.Resolve(resp.Token)
		s.ErrorIs(err, utils.ErrTokenRevoked)
		s.True(s.revoked.IsRevoked(claims.ID))
		s.Equal(1.0, s.counter(s.metrics.Logouts))
	})

	s.Run("Given no claims When logout Then invalid token", func() {
		s.ErrorIs(s.login.Logout(nil), utils.ErrInvalidToken)
	})

	s.Run("Given foreign token When resolve Then invalid token", func() {
		token, _, err := utils.NewTokenIssuer("someone-else", time.Hour).CreateToken("Eve", "eve@example.com")
		s.Require().NoError(err)

		_, _, err = s.login.Resolve(token)
		s.True(errors.Is(err, utils.ErrInvalidToken))
	})
}

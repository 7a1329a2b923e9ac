package response_models

import (
	"time"

	dm "travelsurvey/internal/models/domain_models"
	"travelsurvey/internal/navigation"
)

type LoginResponse struct {
	State     string                  `json:"state"`
	Identity  dm.IdentityContext      `json:"identity"`
	Token     string                  `json:"token"`
	ExpiresAt time.Time               `json:"expiresAt"`
	Next      navigation.MountedRoute `json:"next"`
}

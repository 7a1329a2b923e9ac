package request_models

import "travelsurvey/pkg/utils"

type LoginRequest struct {
	UserName string `json:"userName" validate:"notblank"`
	Email    string `json:"email" validate:"notblank,looseemail"`
}

var LoginMessages = utils.FieldMessages{
	"userName": {"notblank": "Name is required"},
	"email": {
		"notblank":   "Email is required",
		"looseemail": "Email address is invalid",
	},
}

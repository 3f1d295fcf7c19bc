package v1

import (
	"fmt"

	"github.com/budgetbook/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// UserEditable represents all user configurable parameters
type UserEditable struct {
	Name  string `json:"name" example:"Jane Doe" default:""`   // Name of the user
	Email string `json:"email" example:"jane.doe@example.com"` // Email address. Must be unique over all users
}

func (editable UserEditable) model() models.User {
	return models.User{
		Name:  editable.Name,
		Email: editable.Email,
	}
}

type UserLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/users/me"` // The user itself
}

type User struct {
	models.DefaultModel
	UserEditable
	Links UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		UserEditable: UserEditable{
			Name:  model.Name,
			Email: model.Email,
		},
		Links: UserLinks{
			Self: fmt.Sprintf("%s/v1/users/me", url),
		},
	}
}

type UserResponse struct {
	Data  *User   `json:"data"`                                         // Data for the user
	Error *string `json:"error" example:"an email address is required"` // The error, if any occurred
}

// UserCreateResponse contains the API token exactly once. It cannot be
// read again, so clients have to store it.
type UserCreateResponse struct {
	Data  *User   `json:"data"`                                                 // Data for the user
	Token *string `json:"token" example:"b5cfc8aa-f020-48c6-a336-a8c97445a77e"` // The API token for the user
	Error *string `json:"error" example:"an email address is required"`         // The error, if any occurred
}

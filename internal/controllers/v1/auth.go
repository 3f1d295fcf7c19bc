package v1

import (
	"github.com/budgetbook/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUser returns the ID of the authenticated user.
//
// The authentication middleware guarantees that the ID is set and valid
// for every route this package registers handlers for.
func currentUser(c *gin.Context) uuid.UUID {
	id, _ := uuid.Parse(c.GetString(string(models.DBContextUserID)))
	return id
}

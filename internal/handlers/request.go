package handlers

import (
	"net/http"
	"strconv"

	"inventory-backend/internal/utils"
	"inventory-backend/pkg/validator"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the body into req and validates it. On failure the
// response has already been written.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.ErrorWithData(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return false
	}

	if err := validator.ValidateStruct(req); err != nil {
		utils.ValidationError(c, validator.Messages(err))
		return false
	}

	return true
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(val), true
}

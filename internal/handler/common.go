package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"growthpro/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

// bindStrict decodes the JSON body rejecting unknown fields, then runs the
// struct's binding validation. Missing required fields and unrecognized
// keys both reject at the boundary before any store access.
func bindStrict(c *gin.Context, out any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}
	if binding.Validator != nil {
		if err := binding.Validator.ValidateStruct(out); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
	}
	return nil
}

// respondError maps the error taxonomy to HTTP statuses. Unexpected errors
// return a generic detail; the cause is logged server-side only.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
	default:
		log.Printf("[http] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}

// queryUserID reads the owner-scope user_id query parameter.
func queryUserID(c *gin.Context) (uint, error) {
	return parseUintField(c.Query("user_id"), "user_id")
}

// pathID reads a numeric path parameter.
func pathID(c *gin.Context, name string) (uint, error) {
	return parseUintField(c.Param(name), name)
}

func parseUintField(raw, name string) (uint, error) {
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: %s is required and must be a positive integer", domain.ErrInvalidRequest, name)
	}
	return uint(n), nil
}

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/codeready-toolchain/recap/pkg/services"
)

func TestAbortWithServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", errors.Join(errors.New("ctx"), services.ErrNotFound), http.StatusNotFound},
		{"invalid state", services.ErrInvalidState, http.StatusConflict},
		{"answer immutable", services.ErrAnswerImmutable, http.StatusConflict},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"invalid input", services.ErrInvalidInput, http.StatusBadRequest},
		{"validation error", services.NewValidationError("title", "required"), http.StatusBadRequest},
		{"unexpected error", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			abortWithServiceError(c, tt.err)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}

	t.Run("unexpected errors do not leak details", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		abortWithServiceError(c, errors.New("password=hunter2"))
		assert.NotContains(t, rec.Body.String(), "hunter2")
		assert.Contains(t, rec.Body.String(), "internal server error")
	})
}

package utils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string            `json:"name" validate:"required,max=10"`
	Slug  string            `json:"slug" validate:"required,slug"`
	Email string            `json:"email" validate:"omitempty,email"`
	Tags  map[string]string `json:"tags" validate:"omitempty,min=1"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name   string
		req    sampleRequest
		fields map[string]string
	}{
		{
			name: "valid",
			req:  sampleRequest{Name: "Phones", Slug: "smart-phones"},
		},
		{
			name: "missing fields use json names",
			req:  sampleRequest{},
			fields: map[string]string{
				"name": "name is required",
				"slug": "slug is required",
			},
		},
		{
			name: "bad slug and email",
			req:  sampleRequest{Name: "x", Slug: "Smart Phones", Email: "nope"},
			fields: map[string]string{
				"slug":  "slug must be lowercase letters, digits and single hyphens",
				"email": "email must be a valid email address",
			},
		},
		{
			name:   "too long",
			req:    sampleRequest{Name: "abcdefghijk", Slug: "a"},
			fields: map[string]string{"name": "name must be at most 10 characters long"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.req)
			if tt.fields == nil {
				require.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.fields, verr.Errors)
		})
	}
}

func TestSlugValidation(t *testing.T) {
	for slug, ok := range map[string]bool{
		"galaxy-s24": true,
		"a":          true,
		"a--b":       false,
		"-a":         false,
		"a-":         false,
		"Galaxy":     false,
		"a_b":        false,
	} {
		err := ValidateStruct(sampleRequest{Name: "n", Slug: slug})
		assert.Equal(t, ok, err == nil, slug)
	}
}

func TestValidationError_MessageIsSorted(t *testing.T) {
	err := &ValidationError{Errors: map[string]string{
		"slug": "slug is required",
		"name": "name is required",
	}}

	assert.Equal(t, "name is required; slug is required", err.Error())
}

func TestBindAndValidate(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		var req sampleRequest
		if err := BindAndValidate(c, &req); err != nil {
			return BadRequestResponse(c, err)
		}
		return SuccessResponse(c, fiber.StatusOK, "ok", req)
	})

	send := func(body string) (int, map[string]interface{}) {
		req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var out map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &out))
		return resp.StatusCode, out
	}

	status, out := send(`{"name":"Phones","slug":"phones"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", out["message"])

	status, out = send(`{"name":"Phones"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Validation failed", out["message"])
	assert.Equal(t, map[string]interface{}{"slug": "slug is required"}, out["data"])

	status, out = send(`{not json`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", out["message"])
}

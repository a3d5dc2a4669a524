package utils

import "github.com/gofiber/fiber/v2"

// StandardResponse is the envelope of every API response. Language is only
// present on localized responses and names the language the content is in.
type StandardResponse struct {
	Status   string      `json:"status"`
	Code     int         `json:"code"`
	Message  string      `json:"message"`
	Language string      `json:"language,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Meta     interface{} `json:"meta,omitempty"`
}

// PaginationMeta represents pagination metadata
type PaginationMeta struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

func statusFor(code int) string {
	switch {
	case code >= fiber.StatusInternalServerError:
		return "fail"
	case code >= fiber.StatusBadRequest:
		return "error"
	default:
		return "success"
	}
}

func send(c *fiber.Ctx, code int, message string, data, meta interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:   statusFor(code),
		Code:     code,
		Message:  message,
		Language: c.GetRespHeader(fiber.HeaderContentLanguage),
		Data:     data,
		Meta:     meta,
	})
}

func SuccessResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return send(c, code, message, data, nil)
}

// SuccessWithMetaResponse sends a success response with pagination meta
func SuccessWithMetaResponse(c *fiber.Ctx, code int, message string, data interface{}, meta interface{}) error {
	return send(c, code, message, data, meta)
}

func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return send(c, code, message, nil, nil)
}

// ErrorWithDataResponse sends an error response with details, such as the
// offending fields of a rejected request.
func ErrorWithDataResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return send(c, code, message, data, nil)
}

// CreatePaginationMeta creates pagination metadata. An empty result still
// reports one page.
func CreatePaginationMeta(page, limit int, total int64) PaginationMeta {
	if limit < 1 {
		limit = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages == 0 {
		totalPages = 1
	}

	return PaginationMeta{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/uNik020/EWS-monitor-Backend/pkg/errors"
	"github.com/uNik020/EWS-monitor-Backend/pkg/response"
	appValidator "github.com/uNik020/EWS-monitor-Backend/pkg/validator"
)

// bindAndValidate binds the JSON payload into dest and runs struct validation rules.
// When validation fails, an error response is automatically written and false is returned.
func bindAndValidate[T any](c *gin.Context, dest *T) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.NewBadRequest("invalid JSON payload"))
		return false
	}

	if err := appValidator.ValidateStruct(dest); err != nil {
		response.Error(c, appErrors.NewBadRequest(formatValidationError(err)))
		return false
	}

	return true
}

// bindSingleOrBulk decodes a request body that is either one T or an array
// of T, matching the flexible create endpoints. The returned bulk flag tells
// the caller which shape arrived.
func bindSingleOrBulk[T any](c *gin.Context) (items []T, bulk bool, ok bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, appErrors.NewBadRequest("invalid JSON payload"))
		return nil, false, false
	}

	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		response.Error(c, appErrors.NewBadRequest("empty request body"))
		return nil, false, false
	}

	if trimmed[0] == '[' {
		if err := json.Unmarshal(body, &items); err != nil {
			response.Error(c, appErrors.NewBadRequest("invalid JSON payload"))
			return nil, false, false
		}
		return items, true, true
	}

	var single T
	if err := json.Unmarshal(body, &single); err != nil {
		response.Error(c, appErrors.NewBadRequest("invalid JSON payload"))
		return nil, false, false
	}
	return []T{single}, false, true
}

func formatValidationError(err error) string {
	if err == nil {
		return "invalid request payload"
	}

	if ve, ok := err.(appValidator.ValidationErrors); ok {
		if len(ve) == 0 {
			return "invalid request payload"
		}

		messages := make([]string, 0, len(ve))
		for _, failure := range ve {
			field := prettifyFieldName(failure.Field)
			switch failure.Tag {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", field))
			case "email":
				messages = append(messages, fmt.Sprintf("%s must be a valid email address", field))
			default:
				if failure.Param != "" {
					messages = append(messages, fmt.Sprintf("%s failed validation: %s=%s", field, failure.Tag, failure.Param))
				} else {
					messages = append(messages, fmt.Sprintf("%s failed validation: %s", field, failure.Tag))
				}
			}
		}
		return strings.Join(messages, "; ")
	}

	return "invalid request payload"
}

func prettifyFieldName(name string) string {
	if name == "" {
		return "field"
	}
	name = strings.ReplaceAll(name, "_", " ")
	return strings.ToLower(name)
}

// parseIntQuery reads an integer query parameter, falling back on absent or
// non-numeric values so mangled paging input can never go negative upstream.
func parseIntQuery(c *gin.Context, key string, fallback int) int {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

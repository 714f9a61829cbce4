// Package handlers wires the HTTP surface: one handler type per domain,
// each registering its own routes on the shared API router. Responses use a
// {success, data|message} JSON envelope.
package handlers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldErrors flattens validator errors into a field -> message map for 400
// responses.
func fieldErrors(err error) map[string]string {
	messages := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		messages["body"] = err.Error()
		return messages
	}
	for _, e := range validationErrors {
		messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return messages
}

// isNotFound reports whether a repository error is a not-found condition.
// Repositories encode this in the error message rather than a sentinel.
func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "not found")
}

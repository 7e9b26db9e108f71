package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go_lingua_path/internal/model"
)

// maxBodyBytes bounds request bodies read by DecodeJSONBody.
const maxBodyBytes = 1 << 20

// DecodeJSONBody decodes the request body into dst and runs struct validation on it.
// Unknown fields are rejected.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return model.NewAppError("INVALID_REQUEST", "Request body is required.", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &syntaxErr):
			return model.NewAppError("INVALID_JSON", fmt.Sprintf("Malformed JSON at offset %d.", syntaxErr.Offset), "", model.ErrInvalidInput)
		case errors.As(err, &typeErr):
			return model.NewAppError("INVALID_JSON", fmt.Sprintf("Field has the wrong type: %s.", typeErr.Field), typeErr.Field, model.ErrInvalidInput)
		case errors.Is(err, io.EOF):
			return model.NewAppError("INVALID_REQUEST", "Request body is required.", "", model.ErrInvalidInput)
		default:
			return model.NewAppError("INVALID_JSON", err.Error(), "", model.ErrInvalidInput)
		}
	}

	return ValidateStruct(dst)
}

package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/mail"
	"net/url"
	"strconv"

	"github.com/rpupo63/portfolio-backend/errs"
)

// decodeInput reads the request body and unmarshals it into dst.
func decodeInput(r *http.Request, dst any) error {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return errs.NewBadRequestError("failed to read request body")
	}
	if len(bytes.TrimSpace(bodyBytes)) == 0 {
		return errs.NewMalformedPayloadError("request", io.EOF)
	}
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(dst); err != nil {
		return errs.NewInvalidJSONError(err)
	}
	return nil
}

// decodeIDInput reads an {id} input from the JSON body, falling back to the
// ?id= query parameter so read operations work over plain GET requests.
func decodeIDInput(r *http.Request) (uint, error) {
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return 0, errs.NewInvalidFieldError("id", "must be a positive integer")
		}
		return uint(id), nil
	}

	var input IDInput
	if err := decodeInput(r, &input); err != nil {
		return 0, err
	}
	if input.ID == 0 {
		return 0, errs.NewMissingRequiredFieldError("id")
	}
	return input.ID, nil
}

// validHTTPURL reports whether raw parses as an absolute http(s) URL.
func validHTTPURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// validEmailAddress reports whether raw parses as an RFC 5322 address.
func validEmailAddress(raw string) bool {
	_, err := mail.ParseAddress(raw)
	return err == nil
}

// requireNonEmpty validates a required string field on a create payload.
func requireNonEmpty(field, value string) error {
	if value == "" {
		return errs.NewMissingRequiredFieldError(field)
	}
	return nil
}

// requirePresentNonEmpty validates an optional-but-not-nullable string field
// on an update payload: when supplied it must hold a non-empty string.
func requirePresentNonEmpty(field string, opt Optional[string]) error {
	if !opt.Present {
		return nil
	}
	if opt.Value == nil || *opt.Value == "" {
		return errs.NewInvalidFieldError(field, "must be a non-empty string")
	}
	return nil
}

// requireNullableURL validates a nullable URL field: null is fine, a value
// must be an absolute http(s) URL.
func requireNullableURL(field string, opt Optional[string]) error {
	if !opt.Present || opt.Value == nil {
		return nil
	}
	if !validHTTPURL(*opt.Value) {
		return errs.NewInvalidFieldError(field, "must be a valid URL")
	}
	return nil
}

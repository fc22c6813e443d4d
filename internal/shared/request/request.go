package request

import (
	"bytes"
	stderrors "errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"starwars-api/internal/shared/errors"

	"github.com/tidwall/gjson"
)

// MaxBodyBytes caps the size of JSON request bodies
const MaxBodyBytes = 1 << 20

// PathInt parses an integer path wildcard such as {id}
func PathInt(r *http.Request, name, label string) (int, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, errors.Validationf("%s ID is required", label)
	}

	id, err := parseInt32(raw)
	if err != nil {
		return 0, intError(label+" ID", "invalid "+label+" ID format", err)
	}
	return id, nil
}

// QueryInt parses a required integer query parameter
func QueryInt(r *http.Request, name string) (int, error) {
	if !r.URL.Query().Has(name) {
		return 0, errors.MissingField(name)
	}

	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, errors.MissingField(name)
	}

	value, err := parseInt32(raw)
	if err != nil {
		return 0, intError(name, "invalid "+name+" format", err)
	}
	return value, nil
}

// ReadBody reads at most MaxBodyBytes of the request body
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.WrapValidation("failed to read request body", err)
	}
	return body, nil
}

// BodyInt extracts a required integer field from a JSON object body.
// Numbers and numeric strings are accepted; an absent or null field is missing.
func BodyInt(body []byte, field string) (int, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return 0, errors.MissingField(field)
	}

	if !gjson.ValidBytes(body) {
		return 0, errors.Validation("invalid JSON in request body")
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return 0, errors.Validation("request body must be a JSON object")
	}

	value := parsed.Get(field)
	if !value.Exists() || value.Type == gjson.Null {
		return 0, errors.MissingField(field)
	}

	switch value.Type {
	case gjson.Number:
		if value.Num != math.Trunc(value.Num) {
			return 0, errors.Validationf("%s must be an integer", field)
		}
		if value.Num > math.MaxInt32 || value.Num < math.MinInt32 {
			return 0, errors.Validationf("%s out of range", field)
		}
		return int(value.Num), nil
	case gjson.String:
		n, err := parseInt32(strings.TrimSpace(value.Str))
		if err != nil {
			return 0, intError(field, field+" must be an integer", err)
		}
		return n, nil
	default:
		return 0, errors.Validationf("%s must be an integer", field)
	}
}

// parseInt32 accepts an optional leading minus followed by decimal digits only.
// Ids are 32-bit in every supported store.
func parseInt32(raw string) (int, error) {
	digits := strings.TrimPrefix(raw, "-")
	if digits == "" || strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, &strconv.NumError{Func: "parseInt32", Num: raw, Err: strconv.ErrSyntax}
	}

	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// intError maps a parseInt32 failure to a validation error
func intError(subject, formatMessage string, err error) error {
	if stderrors.Is(err, strconv.ErrRange) {
		return errors.WrapValidation(subject+" out of range", err)
	}
	return errors.WrapValidation(formatMessage, err)
}

package form

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	gerr "github.com/Sebastian1234123/sistema-farmacia/internal/errors"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateStruct works like validation.ValidateStruct but keeps the
// service's sentinel errors visible to errors.Is. Field errors that carry
// none are reported as gerr.ErrInvalidRequest.
func ValidateStruct(structPtr interface{}, rules ...*validation.FieldRules) error {
	var rawErrors []error

	for _, rule := range rules {
		err := validation.ValidateStruct(structPtr, rule)
		if err == nil {
			continue
		}
		ve, ok := err.(validation.Errors)
		if !ok {
			return err
		}
		rawErrors = append(rawErrors, convertFieldErrors(ve)...)
	}
	return errors.Join(rawErrors...)
}

func convertFieldErrors(ve validation.Errors) []error {
	fields := make([]string, 0, len(ve))
	for field := range ve {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make([]error, 0, len(ve))
	for _, field := range fields {
		err := ve[field]
		if gerr.IsClientError(err) {
			out = append(out, fmt.Errorf("%s: %w", field, err))
			continue
		}
		out = append(out, fmt.Errorf("%w: %s: %s", gerr.ErrInvalidRequest, field, formatErrMsg(err.Error())))
	}
	return out
}

func formatErrMsg(s string) string {
	return ucfirst(strings.Trim(s, " .")) + "."
}

func ucfirst(str string) string {
	r, size := utf8.DecodeRuneInString(str)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + str[size:]
}

// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

// Package query validates request option structs and encodes them as URL
// query parameters.
//
// Option structs use pointer fields tagged `url:"name,omitempty"` so that an
// absent parameter is omitted from the request entirely.
package query

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

// ErrInvalid is returned when an option struct fails validation.
var ErrInvalid = errors.New("invalid request parameters")

var (
	validate = validator.New(validator.WithRequiredStructEnabled())
	encoder  = schema.NewEncoder()
)

func init() {
	encoder.SetAliasTag("url")
}

// Validate checks opts against its `validate` struct tags. A nil opts is
// valid.
func Validate(opts any) error {
	if isNil(opts) {
		return nil
	}
	if err := validate.Struct(opts); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %w", ErrInvalid, verrs)
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Encode converts opts to query parameters. A nil opts yields empty values.
func Encode(opts any) (url.Values, error) {
	values := url.Values{}
	if isNil(opts) {
		return values, nil
	}
	if err := encoder.Encode(opts, values); err != nil {
		return nil, fmt.Errorf("encoding query parameters: %w", err)
	}
	return values, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

package query

import (
	"errors"
	"testing"
)

type listOptions struct {
	Visibility *string `url:"visibility,omitempty" validate:"omitempty,oneof=all public private"`
	PerPage    *int    `url:"per_page,omitempty" validate:"omitempty,min=1,max=100"`
	Page       *int    `url:"page,omitempty" validate:"omitempty,min=1"`
}

type searchOptions struct {
	Q string `url:"q" validate:"required"`
}

func ptr[T any](v T) *T { return &v }

func TestEncode_OmitsAbsent(t *testing.T) {
	values, err := Encode(&listOptions{PerPage: ptr(50)})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if got := values.Encode(); got != "per_page=50" {
		t.Errorf("Encode = %q, want %q", got, "per_page=50")
	}
}

func TestEncode_ZeroPointerValueIsSent(t *testing.T) {
	values, err := Encode(&listOptions{Visibility: ptr("")})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if _, ok := values["visibility"]; !ok {
		t.Errorf("expected explicitly set visibility to be encoded, got %v", values)
	}
}

func TestEncode_Nil(t *testing.T) {
	var opts *listOptions
	values, err := Encode(opts)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("Encode(nil) = %v, want empty", values)
	}

	values, err = Encode(nil)
	if err != nil || len(values) != 0 {
		t.Errorf("Encode(untyped nil) = %v, %v; want empty, nil", values, err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    any
		wantErr bool
	}{
		{name: "nil", opts: (*listOptions)(nil)},
		{name: "empty", opts: &listOptions{}},
		{name: "valid", opts: &listOptions{Visibility: ptr("public"), PerPage: ptr(100)}},
		{name: "bad visibility", opts: &listOptions{Visibility: ptr("secret")}, wantErr: true},
		{name: "per_page too large", opts: &listOptions{PerPage: ptr(101)}, wantErr: true},
		{name: "page zero", opts: &listOptions{Page: ptr(0)}, wantErr: true},
		{name: "missing q", opts: &searchOptions{}, wantErr: true},
		{name: "with q", opts: &searchOptions{Q: "tetris language:assembly"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.opts)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got: %v", err)
			}
		})
	}
}

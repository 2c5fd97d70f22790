package lib

import (
	"errors"
	"mesero_server/structs"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestExtractAndValidateBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid login",
			body: `{"name":"María García","pin":"5678"}`,
		},
		{
			name:    "missing pin",
			body:    `{"name":"María García"}`,
			wantErr: true,
		},
		{
			name:    "pin too short",
			body:    `{"name":"María García","pin":"12"}`,
			wantErr: true,
		},
		{
			name:    "non-numeric pin",
			body:    `{"name":"María García","pin":"abcd"}`,
			wantErr: true,
		},
		{
			name:    "unknown field rejected",
			body:    `{"name":"María García","pin":"5678","admin":true}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"name":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/auth/login", strings.NewReader(tt.body))

			got, err := ExtractAndValidateBody[structs.LoginRequest](r)
			if tt.wantErr {
				if err == nil {
					t.Error("ExtractAndValidateBody() accepted an invalid body")
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractAndValidateBody() error: %v", err)
			}
			if got.Name != "María García" || got.Pin != "5678" {
				t.Errorf("body = %+v", got)
			}
		})
	}
}

func TestValidationErrorsAreStructured(t *testing.T) {
	r := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"name":"x","pin":""}`))

	_, err := ExtractAndValidateBody[structs.LoginRequest](r)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if len(ve.Errors) == 0 {
		t.Fatal("ValidationError carries no field errors")
	}
	for _, fe := range ve.Errors {
		if fe.Field == "" || fe.Message == "" {
			t.Errorf("field error missing detail: %+v", fe)
		}
	}
}

package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Ipannazim/Calorie-Tracker/services"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: amount must be a positive number", services.ErrValidation), http.StatusBadRequest},
		{"entry not found", fmt.Errorf("%w: id 42", services.ErrNotFound), http.StatusNotFound},
		{"user not found", fmt.Errorf("%w: user A12345", services.ErrNotFound), http.StatusNotFound},
		{"persistence", fmt.Errorf("%w: create entry: timeout", services.ErrPersistence), http.StatusBadGateway},
		{"load", fmt.Errorf("%w: get goal: timeout", services.ErrLoad), http.StatusBadGateway},
		{"unclassified store outage", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFor(tt.err); got != tt.want {
				t.Fatalf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

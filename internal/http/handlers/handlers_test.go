package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/hotel-listing-api/internal/models"
)

func TestQueryParameters(t *testing.T) {
	tcs := []struct {
		name   string
		target string
		want   models.QueryParameters
		ok     bool
	}{
		{"empty", "/countries", models.QueryParameters{}, true},
		{"exact_case", "/countries?StartIndex=5&PageSize=25&PageNumber=1", models.QueryParameters{StartIndex: 5, PageSize: 25, PageNumber: 1}, true},
		{"lower_case", "/countries?startindex=2&pagesize=3", models.QueryParameters{StartIndex: 2, PageSize: 3}, true},
		{"unknown_ignored", "/countries?$filter=x&PageSize=4", models.QueryParameters{PageSize: 4}, true},
		{"blank_value", "/countries?PageSize=", models.QueryParameters{}, true},
		{"not_a_number", "/countries?PageSize=ten", models.QueryParameters{}, false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := queryParameters(httptest.NewRequest(http.MethodGet, tc.target, nil))
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestValidLogin(t *testing.T) {
	require.True(t, validLogin(LoginRequest{Email: "a@b.com", Password: "123456"}))
	require.True(t, validLogin(LoginRequest{Email: "a@b.com", Password: "123456789012345"}))
	require.False(t, validLogin(LoginRequest{Email: "a@b.com", Password: "12345"}))
	require.False(t, validLogin(LoginRequest{Email: "a@b.com", Password: "1234567890123456"}))
	require.False(t, validLogin(LoginRequest{Email: "Alice <a@b.com>", Password: "123456"}))
	require.False(t, validLogin(LoginRequest{Email: "", Password: "123456"}))
}

func TestPathID(t *testing.T) {
	for target, want := range map[string]bool{"/hotels/1": true, "/hotels/0": false, "/hotels/-3": false, "/hotels/x": false} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rctx := chiContext(req, target[len("/hotels/"):])
		_, ok := pathID(rctx)
		require.Equal(t, want, ok, target)
	}
}

func chiContext(r *http.Request, id string) *http.Request {
	rc := chi.NewRouteContext()
	rc.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rc))
}

package dto_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"worldclock/internal/domains/dst/model"
	"worldclock/internal/domains/dst/model/dto"
	"worldclock/shared/failure"
	"worldclock/shared/validator"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusRequest_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		want     dto.StatusRequest
		wantCode int
	}{
		{
			name: "all parameters",
			url:  "/v1/dst/status?timezone=AEST&date=2025-01-15&offset=10",
			want: dto.StatusRequest{Timezone: "AEST", Date: "2025-01-15", Offset: 10},
		},
		{
			name: "fractional offset",
			url:  "/v1/dst/status?timezone=IST&offset=5.5",
			want: dto.StatusRequest{Timezone: "IST", Offset: 5.5},
		},
		{
			name:     "offset is not a number",
			url:      "/v1/dst/status?timezone=IST&offset=five",
			want:     dto.StatusRequest{Timezone: "IST"},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.StatusRequest{}

			err := req.FromRequest(httptest.NewRequest(http.MethodGet, tt.url, nil))
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.want, req)
		})
	}
}

func TestStatusRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.StatusRequest
		wantMsg string
	}{
		{name: "valid", req: dto.StatusRequest{Timezone: "EST", Date: "2025-07-01", Offset: -5}},
		{name: "missing timezone", req: dto.StatusRequest{Offset: 1}, wantMsg: "timezone is required"},
		{name: "bad date", req: dto.StatusRequest{Timezone: "EST", Date: "01/07/2025"}, wantMsg: "date must be a valid date in YYYY-MM-DD format"},
		{name: "offset too large", req: dto.StatusRequest{Timezone: "EST", Offset: 15}, wantMsg: "offset must be less than or equal to 14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestRulesResponse_FromModel(t *testing.T) {
	table := &model.RuleTable{
		TimezoneToRegion: map[string]string{"AEST": "australia", "AWST": "australia"},
		Regions: map[string]model.Rule{
			"australia": {Start: model.MonthSpec{Month: 10}, End: model.MonthSpec{Month: 4}, Exceptions: []string{"AWST"}},
			"europe":    {Start: model.MonthSpec{Month: 3}, End: model.MonthSpec{Month: 10}},
		},
	}

	res := dto.RulesResponse{}
	res.FromModel(table)

	want := dto.RulesResponse{
		TimezoneToRegion: map[string]string{"AEST": "australia", "AWST": "australia"},
		Regions: map[string]dto.RuleResponse{
			"australia": {StartMonth: 10, EndMonth: 4, Exceptions: []string{"AWST"}, Wraps: true},
			"europe":    {StartMonth: 3, EndMonth: 10, Exceptions: []string{}},
		},
	}

	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("rules response mismatch (-want +got):\n%s", diff)
	}
}

package dto_test

import (
	"strings"
	"testing"
	"time"
	catalogModel "worldclock/internal/domains/catalog/model"
	"worldclock/internal/domains/colleague/model"
	"worldclock/internal/domains/colleague/model/dto"
	"worldclock/shared/validator"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddColleagueRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.AddColleagueRequest
		wantMsg string
	}{
		{name: "valid", req: dto.AddColleagueRequest{Name: "Alice", Location: "AEST"}},
		{name: "missing name", req: dto.AddColleagueRequest{Location: "AEST"}, wantMsg: "name is required"},
		{name: "blank name", req: dto.AddColleagueRequest{Name: "   ", Location: "AEST"}, wantMsg: "name must not be blank"},
		{name: "name too long", req: dto.AddColleagueRequest{Name: strings.Repeat("a", 256), Location: "AEST"}, wantMsg: "name must be less than or equal to 255"},
		{name: "missing location", req: dto.AddColleagueRequest{Name: "Alice"}, wantMsg: "location is required"},
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

func TestAddColleagueRequest_ToModel(t *testing.T) {
	now := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	req := dto.AddColleagueRequest{Name: "  Alice  ", Location: "AEST"}

	got := req.ToModel(catalogModel.Location{
		Text: "(UTC+10:00) Canberra, Melbourne, Sydney", Abbr: "AEST", Offset: 10,
		Emoji: "🇦🇺", City: "Sydney", Country: "Australia",
	}, now)

	_, err := uuid.Parse(got.ID)
	require.NoError(t, err)

	want := model.Colleague{
		Name: "Alice", Timezone: "AEST", Offset: 10,
		City: "Sydney", Country: "Australia", Emoji: "🇦🇺", CreatedAt: now,
	}

	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(model.Colleague{}, "ID")); diff != "" {
		t.Errorf("colleague mismatch (-want +got):\n%s", diff)
	}
}

func TestGetColleaguesResponse_FromModels(t *testing.T) {
	res := dto.GetColleaguesResponse{}
	res.FromModels([]model.Colleague{
		{ID: "a", Name: "Alice", Timezone: "AEST", City: "Sydney", Country: "Australia", Emoji: "🇦🇺"},
		{ID: "b", Name: "Bob", Timezone: "EST", City: "New York"},
	})

	require.Len(t, res.Colleagues, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 0, res.Colleagues[0].Index)
	assert.Equal(t, "🇦🇺 Sydney, Australia", res.Colleagues[0].Location)
	assert.Equal(t, 1, res.Colleagues[1].Index)
	assert.Equal(t, "New York", res.Colleagues[1].Location)
}

package service_test

import (
	"errors"
	"testing"
	"time"
	otelMocks "worldclock/infras/otel/mocks"
	"worldclock/internal/domains/clock/model/dto"
	"worldclock/internal/domains/clock/service"
	colleagueMocks "worldclock/internal/domains/colleague/mocks"
	colleagueDto "worldclock/internal/domains/colleague/model/dto"
	dstMocks "worldclock/internal/domains/dst/mocks"
	"worldclock/internal/domains/dst/model"
	"worldclock/shared/timezone"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var rules = &model.RuleTable{
	TimezoneToRegion: map[string]string{"AEST": "australia", "EST": "north_america"},
	Regions: map[string]model.Rule{
		"australia":     {Start: model.MonthSpec{Month: 10}, End: model.MonthSpec{Month: 4}},
		"north_america": {Start: model.MonthSpec{Month: 3}, End: model.MonthSpec{Month: 11}},
	},
}

func roster() colleagueDto.GetColleaguesResponse {
	res := colleagueDto.GetColleaguesResponse{}
	res.Colleagues = []colleagueDto.ColleagueResponse{
		{Index: 0, Name: "Alice", Timezone: "AEST", Offset: 10, Location: "🇦🇺 Sydney, Australia"},
		{Index: 1, Name: "Bob", Timezone: "EST", Offset: -5, Location: "🇺🇸 New York, United States"},
	}
	res.TotalData = 2

	return res
}

func TestClockService_Render(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	colleagues := colleagueMocks.NewMockColleague(ctrl)
	dst := dstMocks.NewMockDST(ctrl)

	now := time.Date(2025, time.January, 15, 23, 5, 9, 0, time.UTC)
	svc := service.New(colleagues, dst, timezone.Fixed(now), otelMocks.NewOtel())

	colleagues.EXPECT().List(gomock.Any()).Return(roster(), nil).Times(2)
	dst.EXPECT().Table().Return(rules).Times(2)

	board, err := svc.Render(t.Context(), svc.Now())
	require.NoError(t, err)

	want := []dto.CardResponse{
		{Index: 0, Name: "Alice", Time: "10:05:09 AM", Location: "🇦🇺 Sydney, Australia", Timezone: "AEST", DSTActive: true, Offset: 11},
		{Index: 1, Name: "Bob", Time: "6:05:09 PM", Location: "🇺🇸 New York, United States", Timezone: "EST", Offset: -5},
	}

	if diff := cmp.Diff(want, board.Colleagues); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, timezone.ToAppTime(now).Format("3:04:05 PM"), board.LocalTime)
	assert.True(t, board.RenderedAt.Equal(now))

	again, err := svc.Render(t.Context(), now)
	require.NoError(t, err)
	assert.Equal(t, board, again)
}

func TestClockService_RenderWithoutRules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	colleagues := colleagueMocks.NewMockColleague(ctrl)
	dst := dstMocks.NewMockDST(ctrl)

	now := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	svc := service.New(colleagues, dst, timezone.Fixed(now), otelMocks.NewOtel())

	colleagues.EXPECT().List(gomock.Any()).Return(roster(), nil)
	dst.EXPECT().Table().Return(nil)

	board, err := svc.Render(t.Context(), now)
	require.NoError(t, err)
	require.Len(t, board.Colleagues, 2)
	assert.False(t, board.Colleagues[0].DSTActive)
	assert.Equal(t, "10:00:00 AM", board.Colleagues[0].Time)
}

func TestClockService_RenderEmptyRoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	colleagues := colleagueMocks.NewMockColleague(ctrl)
	dst := dstMocks.NewMockDST(ctrl)
	svc := service.New(colleagues, dst, timezone.System(), otelMocks.NewOtel())

	colleagues.EXPECT().List(gomock.Any()).Return(colleagueDto.GetColleaguesResponse{}, nil)
	dst.EXPECT().Table().Return(rules)

	board, err := svc.Render(t.Context(), svc.Now())
	require.NoError(t, err)
	assert.Empty(t, board.Colleagues)
	assert.NotNil(t, board.Colleagues)

	colleagues.EXPECT().List(gomock.Any()).Return(colleagueDto.GetColleaguesResponse{}, errors.New("connection refused"))

	_, err = svc.Render(t.Context(), svc.Now())
	assert.Error(t, err)
}

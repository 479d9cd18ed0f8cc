package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/shesafe/internal/pkg/circuitbreaker"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/services/safety"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clip = base64.StdEncoding.EncodeToString([]byte("RIFF-audio"))

func TestAnalyzeDistressContext_Validation(t *testing.T) {
	tests := []struct {
		name      string
		req       *models.DistressRequest
		wantField string
	}{
		{name: "nil body", req: nil, wantField: "body"},
		{name: "text too short", req: &models.DistressRequest{SituationText: " help "}, wantField: "situation_text"},
		{name: "text too long", req: &models.DistressRequest{SituationText: strings.Repeat("x", 1001)}, wantField: "situation_text"},
		{name: "text and audio", req: &models.DistressRequest{SituationText: "someone follows me", AudioDataURI: "data:audio/webm;base64," + clip, PlaceName: "Mall", MovementData: "walking"}, wantField: "situation_text"},
		{name: "not a data uri", req: &models.DistressRequest{AudioDataURI: "https://x/a.mp3", PlaceName: "Mall", MovementData: "walking"}, wantField: "audio_data_uri"},
		{name: "not base64 encoded", req: &models.DistressRequest{AudioDataURI: "data:audio/webm,abc", PlaceName: "Mall", MovementData: "walking"}, wantField: "audio_data_uri"},
		{name: "not audio", req: &models.DistressRequest{AudioDataURI: "data:image/png;base64," + clip, PlaceName: "Mall", MovementData: "walking"}, wantField: "audio_data_uri"},
		{name: "bad payload", req: &models.DistressRequest{AudioDataURI: "data:audio/webm;base64,!!!", PlaceName: "Mall", MovementData: "walking"}, wantField: "audio_data_uri"},
		{name: "empty payload", req: &models.DistressRequest{AudioDataURI: "data:audio/webm;base64,", PlaceName: "Mall", MovementData: "walking"}, wantField: "audio_data_uri"},
		{name: "missing place", req: &models.DistressRequest{AudioDataURI: "data:audio/webm;base64," + clip, MovementData: "walking"}, wantField: "place_name"},
		{name: "movement too long", req: &models.DistressRequest{AudioDataURI: "data:audio/webm;base64," + clip, PlaceName: "Mall", MovementData: strings.Repeat("m", 101)}, wantField: "movement_data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			uc, _ := setupSafetyUC(t)

			// Act
			resp, err := uc.AnalyzeDistressContext(context.Background(), tt.req)

			// Assert
			assert.Nil(t, resp)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestAnalyzeDistressContext_Text(t *testing.T) {
	tests := []struct {
		name  string
		model *models.DistressResponse
		want  *models.DistressResponse
	}{
		{
			name:  "tips kept",
			model: &models.DistressResponse{IsDistressed: true, Reason: " Being followed ", SafetyTips: []string{"Go to a crowded place", " ", "Call a friend"}},
			want:  &models.DistressResponse{IsDistressed: true, Reason: "Being followed", SafetyTips: []string{"Go to a crowded place", "Call a friend"}},
		},
		{
			name:  "empty tips get defaults",
			model: &models.DistressResponse{Reason: "Sounds safe"},
			want:  &models.DistressResponse{Reason: "Sounds safe", SafetyTips: defaultTips},
		},
		{
			name:  "blank reason is no output",
			model: &models.DistressResponse{IsDistressed: true, Reason: "  ", SafetyTips: []string{"tip"}},
			want:  &models.DistressResponse{Reason: noOutputReason, SafetyTips: noOutputTips},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			uc, deps := setupSafetyUC(t)
			deps.gw.EXPECT().AnalyzeText(gomock.Any(), "A man keeps following me").Return(tt.model, nil)

			// Act
			resp, err := uc.AnalyzeDistressContext(context.Background(), &models.DistressRequest{SituationText: "  A man keeps following me "})

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp)
		})
	}
}

func TestAnalyzeDistressContext_Audio(t *testing.T) {
	// Arrange
	uc, deps := setupSafetyUC(t)
	req := &models.DistressRequest{
		AudioDataURI: "data:audio/webm;codecs=opus;base64," + clip,
		PlaceName:    " Parking lot ",
		MovementData: "running",
	}
	deps.gw.EXPECT().AnalyzeAudio(gomock.Any(), &safety.AudioSample{
		MIMEType:     "audio/webm",
		Data:         []byte("RIFF-audio"),
		PlaceName:    "Parking lot",
		MovementData: "running",
	}).Return(&models.DistressResponse{IsDistressed: true, Reason: "Screaming", SafetyTips: []string{"Call 112"}}, nil)

	// Act
	resp, err := uc.AnalyzeDistressContext(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.True(t, resp.IsDistressed)
	assert.Equal(t, []string{"Call 112"}, resp.SafetyTips)
}

func TestAnalyzeDistressContext_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantReason string
		wantTips   []string
	}{
		{
			name:       "no output",
			err:        safety.ErrNoOutput,
			wantReason: noOutputReason,
			wantTips:   noOutputTips,
		},
		{
			name:       "remote failure",
			err:        errors.New("model overloaded"),
			wantReason: "AI analysis failed. model overloaded",
			wantTips:   failureTips,
		},
		{
			name:       "timeout",
			err:        fmt.Errorf("analyze_situation_text request failed: %w", context.DeadlineExceeded),
			wantReason: "AI analysis failed. analyze_situation_text request failed: context deadline exceeded",
			wantTips:   failureTips,
		},
		{
			name:       "breaker open",
			err:        circuitbreaker.ErrCircuitBreakerOpen,
			wantReason: "AI analysis failed. " + circuitbreaker.ErrCircuitBreakerOpen.Error(),
			wantTips:   failureTips,
		},
		{
			name:       "empty message",
			err:        errors.New("  "),
			wantReason: "AI analysis failed. An unexpected issue occurred.",
			wantTips:   failureTips,
		},
		{
			name:       "invalid argument",
			err:        errors.New("Error 400, Message: Request contains an invalid argument."),
			wantReason: invalidInput,
			wantTips:   failureTips,
		},
		{
			name:       "malformed output",
			err:        errors.New("malformed distress output: unexpected end of JSON input"),
			wantReason: "AI analysis failed. malformed distress output: unexpected end of JSON input",
			wantTips:   failureTips,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			uc, deps := setupSafetyUC(t)
			deps.gw.EXPECT().AnalyzeText(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			// Act
			resp, err := uc.AnalyzeDistressContext(context.Background(), &models.DistressRequest{SituationText: "I feel uneasy"})

			// Assert
			require.NoError(t, err)
			assert.False(t, resp.IsDistressed)
			assert.Equal(t, tt.wantReason, resp.Reason)
			assert.Equal(t, tt.wantTips, resp.SafetyTips)
		})
	}
}

func TestAnalyzeDistressContext_LocalTimeout(t *testing.T) {
	// Arrange
	uc, deps := setupSafetyUC(t)
	uc.timeout = 10 * time.Millisecond
	deps.gw.EXPECT().AnalyzeText(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (*models.DistressResponse, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	// Act
	resp, err := uc.AnalyzeDistressContext(context.Background(), &models.DistressRequest{SituationText: "I feel unsafe here"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "AI analysis failed. context deadline exceeded", resp.Reason)
	assert.Equal(t, failureTips, resp.SafetyTips)
}

func TestAnalyzeDistressContext_FallbackTipsAreCopies(t *testing.T) {
	// Arrange
	uc, deps := setupSafetyUC(t)
	deps.gw.EXPECT().AnalyzeText(gomock.Any(), gomock.Any()).Return(nil, safety.ErrNoOutput)

	// Act
	resp, err := uc.AnalyzeDistressContext(context.Background(), &models.DistressRequest{SituationText: "I feel unsafe here"})
	require.NoError(t, err)
	resp.SafetyTips[0] = "changed"

	// Assert
	assert.Equal(t, "Ensure you are in a safe location.", noOutputTips[0])
}

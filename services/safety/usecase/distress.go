package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/services/safety"
)

const (
	noOutputReason = "AI analysis could not be completed or returned an unexpected result. Please try rephrasing your concern."
	failedPrefix   = "AI analysis failed. "
	invalidInput   = "AI analysis failed: The provided text was considered invalid by the analysis service. " +
		"This might be due to formatting or content issues. Please try rephrasing."
)

var (
	failureTips  = []string{"If you're concerned, reach out to a trusted person.", "If you are in immediate danger, contact emergency services."}
	noOutputTips = []string{"Ensure you are in a safe location.", "If you feel in danger, contact emergency services or a trusted person immediately."}
	defaultTips  = []string{"Be aware of your surroundings.", "Trust your instincts."}
)

// AnalyzeDistressContext assesses a text description or an audio sample
func (uc *SafetyUC) AnalyzeDistressContext(ctx context.Context, req *models.DistressRequest) (*models.DistressResponse, error) {
	text, sample, err := validateDistressRequest(req)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	var resp *models.DistressResponse
	if sample != nil {
		resp, err = uc.analysisGW.AnalyzeAudio(callCtx, sample)
	} else {
		resp, err = uc.analysisGW.AnalyzeText(callCtx, text)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	switch {
	case errors.Is(err, safety.ErrNoOutput):
		logger.WarnCtx(ctx, "Distress analysis returned no output", logger.Bool("audio", sample != nil))
		return fallback(noOutputReason, noOutputTips), nil
	case err != nil:
		logger.WarnCtx(ctx, "Distress analysis failed",
			logger.Bool("audio", sample != nil),
			logger.Err(err))
		return fallback(failureReason(err), failureTips), nil
	}

	result := normalizeDistress(resp)
	logger.InfoCtx(ctx, "Distress analysis completed",
		logger.Bool("audio", sample != nil),
		logger.Bool("is_distressed", result.IsDistressed))
	return result, nil
}

func normalizeDistress(resp *models.DistressResponse) *models.DistressResponse {
	if resp == nil || strings.TrimSpace(resp.Reason) == "" {
		return fallback(noOutputReason, noOutputTips)
	}

	tips := make([]string, 0, len(resp.SafetyTips))
	for _, tip := range resp.SafetyTips {
		if tip = strings.TrimSpace(tip); tip != "" {
			tips = append(tips, tip)
		}
	}
	if len(tips) == 0 {
		tips = append(tips, defaultTips...)
	}

	return &models.DistressResponse{
		IsDistressed: resp.IsDistressed,
		Reason:       strings.TrimSpace(resp.Reason),
		SafetyTips:   tips,
	}
}

// failureReason carries the remote error message after the failure prefix
func failureReason(err error) string {
	msg := strings.TrimSpace(err.Error())
	switch {
	case strings.Contains(msg, "Request contains an invalid argument"):
		return invalidInput
	case msg == "":
		return failedPrefix + "An unexpected issue occurred."
	default:
		return failedPrefix + msg
	}
}

func fallback(reason string, tips []string) *models.DistressResponse {
	return &models.DistressResponse{
		IsDistressed: false,
		Reason:       reason,
		SafetyTips:   append([]string(nil), tips...),
	}
}

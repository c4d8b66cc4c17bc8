package services

import (
	"context"

	"audio-transcriber/internal/api/v1/dto"
)

// stubInsightsService is a placeholder until real insight generation exists.
// It returns a fixed payload that is never derived from any input.
type stubInsightsService struct{}

// NewStubInsightsService creates the placeholder insights service.
func NewStubInsightsService() InsightsService {
	return &stubInsightsService{}
}

func (s *stubInsightsService) Insights(_ context.Context) (*dto.InsightsResponse, error) {
	return &dto.InsightsResponse{
		Response: dto.InsightsBody{
			Insights: []string{
				"Insight generation is not implemented yet; this is placeholder output.",
			},
			Themes: []string{
				"Placeholder themes until transcript analysis ships.",
			},
			SuggestedQuestions: []string{
				"What should the first real insight category cover?",
			},
			GapsAndAmbiguities: []string{
				"No transcript analysis is performed; every category is static.",
			},
			RisksAndDependencies: []string{
				"Real insights depend on a language-model integration that does not exist here.",
			},
		},
	}, nil
}

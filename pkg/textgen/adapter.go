package textgen

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"hri-companion-be/internal/pkg/apperror"
	"hri-companion-be/pkg/llm"
)

// KeywordRequest is one keyword-extraction job: a field label ("triggers",
// "interests", "target_skills") and the caregiver's raw note text.
type KeywordRequest struct {
	Label   string
	RawText string
}

// Adapter wraps a text-generation backend for the two uses this system
// has: keyword extraction and session prompt generation. No retries; the
// caller decides retry policy.
type Adapter struct {
	provider     llm.LLMProvider
	keywordModel string
	promptModel  string
}

func NewAdapter(provider llm.LLMProvider, keywordModel, promptModel string) *Adapter {
	return &Adapter{
		provider:     provider,
		keywordModel: keywordModel,
		promptModel:  promptModel,
	}
}

// GenerateKeywords runs every request concurrently (each is an
// independent backend call) and returns normalized keyword strings keyed
// by label. Empty raw text is rejected before any backend call.
func (a *Adapter) GenerateKeywords(ctx context.Context, requests []KeywordRequest) (map[string]string, error) {
	for _, request := range requests {
		if strings.TrimSpace(request.RawText) == "" {
			return nil, apperror.Validation(
				fmt.Sprintf("%s_raw cannot be empty", request.Label)).
				WithDetails(map[string]interface{}{"label": request.Label})
		}
	}

	results := make([]string, len(requests))
	g, gctx := errgroup.WithContext(ctx)
	for i, request := range requests {
		i, request := i, request
		g.Go(func() error {
			keywords, err := a.generateKeywordsFor(gctx, request)
			if err != nil {
				return err
			}
			results[i] = keywords
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	keywords := make(map[string]string, len(requests))
	for i, request := range requests {
		keywords[request.Label] = results[i]
	}
	return keywords, nil
}

func (a *Adapter) generateKeywordsFor(ctx context.Context, request KeywordRequest) (string, error) {
	prompt := buildKeywordPrompt(request)

	response, err := a.provider.Generate(ctx, prompt,
		llm.WithModel(a.keywordModel),
		llm.WithTemperature(0.2),
		llm.WithMaxTokens(120),
	)
	if err != nil {
		return "", apperror.ExternalService(
			fmt.Sprintf("failed to generate keywords for %s", request.Label)).WithCause(err)
	}
	if strings.TrimSpace(response) == "" {
		return "", apperror.ExternalService(
			fmt.Sprintf("keyword response for %s contained no text", request.Label))
	}

	return FormatKeywords(SplitKeywords(response))
}

func buildKeywordPrompt(request KeywordRequest) string {
	return fmt.Sprintf(
		"You are an assistant that extracts concise, lowercase keywords from parental notes.\n"+
			"Return between %d and %d keywords separated by commas. Replace spaces with underscores.\n"+
			"Label: %s\n"+
			"Input text:\n%s",
		KeywordMin, KeywordMax, request.Label, strings.TrimSpace(request.RawText))
}

// GeneratePrompt sends the fixed system instruction plus role-tagged
// context messages to the backend and returns the trimmed response text.
func (a *Adapter) GeneratePrompt(ctx context.Context, systemInstructions string, messages []llm.Message) (string, error) {
	history := make([]llm.Message, 0, len(messages)+1)
	history = append(history, llm.Message{Role: "system", Content: systemInstructions})
	history = append(history, messages...)

	text, err := a.provider.Chat(ctx, history,
		llm.WithModel(a.promptModel),
		llm.WithTemperature(0.3),
		llm.WithMaxTokens(800),
	)
	if err != nil {
		return "", apperror.ExternalService("failed to generate session prompt").WithCause(err)
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", apperror.ExternalService("session prompt response was blank")
	}
	return trimmed, nil
}

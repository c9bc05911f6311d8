package suggest

import (
	"context"
	"errors"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/jsonx"
	"github.com/zeromicro/go-zero/core/logx"
)

var ErrDisabled = errors.New("product suggestions are not configured")

const systemPrompt = `You are a shopping assistant. Based on the user's input, suggest relevant products.
Reply with a JSON array only, no prose. Each element has the keys:
"name" (string), "description" (a short description), "imageUrl" (string), "productUrl" (string), "price" (number, INR).
Suggest at most 6 products.`

type ModelConf struct {
	BaseUrl string `json:",optional"`
	APIKey  string `json:",optional"`
	Model   string `json:",optional"`
}

type Suggestion struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	ProductURL  string  `json:"productUrl"`
	Price       float64 `json:"price"`
}

// Generator is the slice of an eino chat model the suggester calls.
type Generator interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

type Suggester struct {
	model Generator
}

func NewSuggester(m Generator) *Suggester {
	return &Suggester{model: m}
}

// NewArkSuggester builds a suggester on an ark chat model. It returns a disabled suggester
// when no model is configured.
func NewArkSuggester(ctx context.Context, c ModelConf) *Suggester {
	if c.Model == "" || c.APIKey == "" {
		return &Suggester{}
	}
	cm, err := ark.NewChatModel(ctx, &ark.ChatModelConfig{
		BaseURL: c.BaseUrl,
		APIKey:  c.APIKey,
		Model:   c.Model,
	})
	if err != nil {
		logx.Errorw("init ark chat model failed", logx.Field("err", err.Error()))
		return &Suggester{}
	}
	logx.Infow("ark chat model initialized", logx.Field("model", c.Model))
	return &Suggester{model: cm}
}

func (s *Suggester) Enabled() bool {
	return s != nil && s.model != nil
}

// Suggest asks the model for products matching query. Output that is not a JSON array
// yields an empty list rather than an error.
func (s *Suggester) Suggest(ctx context.Context, query string) ([]Suggestion, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return []Suggestion{}, nil
	}

	out, err := s.model.Generate(ctx, []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage("Text: " + query),
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return []Suggestion{}, nil
	}
	return parseSuggestions(out.Content), nil
}

func parseSuggestions(content string) []Suggestion {
	// also unwraps {"productSuggestions": [...]} and fenced code blocks
	var list []Suggestion
	if err := jsonx.UnmarshalFromString(trimJSONArray(content), &list); err != nil {
		logx.Infow("unparsable suggestion output", logx.Field("content", content))
		return []Suggestion{}
	}

	out := make([]Suggestion, 0, len(list))
	for _, item := range list {
		if strings.TrimSpace(item.Name) == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func trimJSONArray(content string) string {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || start > end {
		return content
	}
	return content[start : end+1]
}

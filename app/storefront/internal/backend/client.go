package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"WalMate/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/jsonx"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpc"
	"github.com/zeromicro/x/errors"
)

const (
	serviceName  = "walmate-backend"
	maxErrorBody = 64 << 10
)

type Conf struct {
	BaseUrl string        `json:",default=http://localhost:8000"`
	Timeout time.Duration `json:",default=60s"`
}

// Client talks to the shopping assistant backend over its JSON API.
type Client struct {
	baseURL string
	service httpc.Service
}

func NewClient(c Conf) *Client {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(c.BaseUrl, "/"),
		service: httpc.NewServiceWithClient(serviceName, &http.Client{Timeout: timeout}),
	}
}

func (c *Client) Register(ctx context.Context, req RegisterReq) (*RegisterResp, error) {
	var resp RegisterResp
	if err := c.do(ctx, http.MethodPost, "/api/register", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, req LoginReq) (*LoginResp, error) {
	var resp LoginResp
	if err := c.do(ctx, http.MethodPost, "/api/login", "", req, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, errors.New(int(errno.BackendError), "login reply carries no access token")
	}
	return &resp, nil
}

func (c *Client) Chat(ctx context.Context, token string, req ChatReq) (*ChatResp, error) {
	var resp ChatResp
	if err := c.do(ctx, http.MethodPost, "/api/chat", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Product(ctx context.Context, id string) (*Product, error) {
	var resp Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var resp []Product
	if err := c.do(ctx, http.MethodGet, "/api/products", "", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) SavePreferences(ctx context.Context, token string, prefs Preferences) (*MessageResp, error) {
	var resp MessageResp
	if err := c.do(ctx, http.MethodPost, "/api/preferences", token, prefs, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Preferences(ctx context.Context, token string) (Preferences, error) {
	resp := Preferences{}
	if err := c.do(ctx, http.MethodGet, "/api/preferences", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) ChatSessions(ctx context.Context, token string) ([]string, error) {
	var resp []string
	if err := c.do(ctx, http.MethodGet, "/api/chat-sessions", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) ChatHistory(ctx context.Context, token, chatID string) ([]HistoryItem, error) {
	var resp []HistoryItem
	if err := c.do(ctx, http.MethodGet, "/api/chat-history/"+url.PathEscape(chatID), token, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) DeleteChat(ctx context.Context, token, chatID string) (*MessageResp, error) {
	var resp MessageResp
	if err := c.do(ctx, http.MethodDelete, "/api/chat/"+url.PathEscape(chatID), token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UserInfo(ctx context.Context, token string) (*UserInfo, error) {
	var resp UserInfo
	if err := c.do(ctx, http.MethodGet, "/api/user-info", token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := jsonx.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s body failed: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.service.DoRequest(req)
	if err != nil {
		logx.WithContext(ctx).Errorw("backend request failed",
			logx.Field("method", method), logx.Field("path", path), logx.Field("err", err.Error()))
		return errors.New(int(errno.BackendError), err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := errorMessage(resp)
		logx.WithContext(ctx).Errorw("backend replied with error",
			logx.Field("method", method), logx.Field("path", path),
			logx.Field("status", resp.StatusCode), logx.Field("msg", msg))
		code := errno.BackendError
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			code = errno.Unauthorized
		case http.StatusNotFound:
			code = errno.NotFound
		}
		return errors.New(int(code), msg)
	}

	if out == nil {
		return nil
	}
	if err := jsonx.UnmarshalFromReader(resp.Body, out); err != nil {
		return errors.New(int(errno.BackendError), fmt.Sprintf("decode %s %s reply: %v", method, path, err))
	}
	return nil
}

// errorMessage extracts the most useful text out of an error reply: the JSON `detail` or
// `message` field when present, the raw body otherwise, the status text as a last resort.
func errorMessage(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	text := strings.TrimSpace(string(raw))

	var payload map[string]any
	if text != "" && jsonx.Unmarshal(raw, &payload) == nil {
		for _, key := range []string{"detail", "message", "msg", "error"} {
			switch v := payload[key].(type) {
			case string:
				if v != "" {
					return v
				}
			case nil:
			default:
				if b, err := jsonx.Marshal(v); err == nil {
					return string(b)
				}
			}
		}
	}

	if text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}

package backend

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/zeromicro/go-zero/core/jsonx"
)

type RegisterReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResp covers both reply shapes seen in the wild: a plain message, or a token pair.
type RegisterResp struct {
	Message     string `json:"message"`
	Success     bool   `json:"success"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type ChatReq struct {
	Message string `json:"message"`
	ChatID  string `json:"chat_id,omitempty"`
}

type ChatResp struct {
	Answer     string       `json:"answer"`
	ProductIDs []FlexString `json:"product_ids"`
	ChatID     string       `json:"chat_id"`
}

type Product struct {
	ID          FlexString `json:"id"`
	ProductCode string     `json:"product_code"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       FlexPrice  `json:"price"`
	ImageURL    string     `json:"imageUrl"`
	ImageURLAlt string     `json:"image_url"`
	Material    string     `json:"material"`
	Features    []string   `json:"features"`
	Category    string     `json:"category"`
}

// Image returns the product image, whichever key the backend used.
func (p *Product) Image() string {
	if p.ImageURL != "" {
		return p.ImageURL
	}
	return p.ImageURLAlt
}

type HistoryItem struct {
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
}

type MessageResp struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

type UserInfo struct {
	Username    string         `json:"username"`
	Email       string         `json:"email"`
	CreatedAt   string         `json:"created_at"`
	LastLogin   string         `json:"last_login"`
	Preferences map[string]any `json:"preferences"`
}

// Preferences is an arbitrary preference object; the backend owns its schema.
type Preferences map[string]any

// FlexString accepts both JSON strings and numbers, ids come back in either form.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := jsonx.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(data)
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// FlexPrice decodes a price given as a number or numeric string, rounded to whole currency units.
type FlexPrice int64

func (p *FlexPrice) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if raw == "" || raw == "null" {
		*p = 0
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return err
	}
	*p = FlexPrice(math.Round(v))
	return nil
}

func StringsOf(ids []FlexString) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if s := strings.TrimSpace(id.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

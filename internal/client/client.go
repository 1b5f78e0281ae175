package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// サーバがmessageを返さなかった場合の既定文言
const defaultErrorMessage = "request failed"

// APIError は{success:false}のレスポンス。メッセージはサーバ由来。
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// envelope は/api系レスポンスの共通形。
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Client はバックエンドへの薄いHTTPラッパ。
// リトライもキャッシュもしない。毎回素のリクエストを投げる。
type Client struct {
	base   string
	http   *http.Client
	tokens KV
}

func New(base string, tokens KV) *Client {
	return &Client{
		base:   strings.TrimRight(base, "/"),
		http:   &http.Client{Timeout: 15 * time.Second},
		tokens: tokens,
	}
}

// doはリクエストを投げて本文を返す。トランスポート層のエラーはそのまま返す。
func (c *Client) do(ctx context.Context, method, path string, body interface{}, header http.Header) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := BearerToken(c.tokens); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, nil, err
	}
	return res.StatusCode, raw, nil
}

// doEnvelope は{success,data,message}形式のエンドポイント用。
// success=falseはここで*APIErrorに変換するので、呼び出し側が
// フラグの確認を忘れることはできない。
func (c *Client) doEnvelope(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	status, raw, err := c.do(ctx, method, path, body, nil)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return err
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = defaultErrorMessage
		}
		return &APIError{Status: status, Message: msg}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

// doPlain は素のJSONを返すエンドポイント用（/cart, /auth系）。
// エラー時は{"error": "..."}が返る。
func (c *Client) doPlain(ctx context.Context, method, path string, body interface{}, header http.Header, out interface{}) error {
	status, raw, err := c.do(ctx, method, path, body, header)
	if err != nil {
		return err
	}

	if status >= http.StatusBadRequest {
		var e struct {
			Error string `json:"error"`
		}
		msg := defaultErrorMessage
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			msg = e.Error
		}
		return &APIError{Status: status, Message: msg}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

package middleware

import (
	"github.com/labstack/echo/v4"
)

// SSEHeaders はイベントストリーム用のヘッダを設定して即フラッシュする。
// プロキシのバッファリングと圧縮を無効にしないとイベントが届かない。
func SSEHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()

			//リクエスト元Originをそのまま返す（credentialsと併用するため*は使えない）
			if origin := c.Request().Header.Get("Origin"); origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
			}
			h.Set("Access-Control-Allow-Credentials", "true")

			h.Set("Content-Type", "text/event-stream; charset=utf-8")
			h.Set("Cache-Control", "no-cache, no-transform")
			h.Set("Connection", "keep-alive")

			//圧縮ミドルウェアへの合図
			h.Set("x-no-compression", "1")

			//ヘッダを先に送ってしまう
			c.Response().Flush()

			return next(c)
		}
	}
}

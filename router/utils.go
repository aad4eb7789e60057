package router

import (
	"errors"
	"net/http"

	"github.com/blendle/zapdriver"
	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/miles/straymaps/repository"
)

const (
	loggerKey = "logger"

	mimeImagePNG  = "image/png"
	mimeImageJPEG = "image/jpeg"

	// photoFileMaxSize 受け付ける写真ファイルの最大サイズ
	photoFileMaxSize = 10 << 20

	unexpectedError = "unexpected error"
)

func bindAndValidate(c echo.Context, i interface{}) error {
	if err := c.Bind(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if v, ok := i.(vd.Validatable); ok {
		if err := v.Validate(); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	return nil
}

func getRequestParamAsUUID(c echo.Context, name string) uuid.UUID {
	return uuid.FromStringOrNil(c.Param(name))
}

// convertRepoError リポジトリのエラーをHTTPエラーに変換します
func (h *Handlers) convertRepoError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrNilID):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	default:
		return h.internalServerError(c, err)
	}
}

func (h *Handlers) internalServerError(c echo.Context, err error) error {
	h.requestContextLogger(c).Error(unexpectedError, zap.Error(err), zapHTTP(c))
	return echo.NewHTTPError(http.StatusInternalServerError)
}

func (h *Handlers) requestContextLogger(c echo.Context) *zap.Logger {
	l, ok := c.Get(loggerKey).(*zap.Logger)
	if ok {
		return l
	}
	l = h.Logger.With(zap.String("requestId", c.Response().Header().Get(echo.HeaderXRequestID)))
	c.Set(loggerKey, l)
	return l
}

func zapHTTP(c echo.Context) zap.Field {
	req := c.Request()
	return zapdriver.HTTP(&zapdriver.HTTPPayload{
		RequestMethod: req.Method,
		UserAgent:     req.UserAgent(),
		RemoteIP:      c.RealIP(),
		Referer:       req.Referer(),
		Protocol:      req.Proto,
		RequestURL:    req.URL.String(),
		RequestSize:   req.Header.Get(echo.HeaderContentLength),
	})
}

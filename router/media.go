package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/miles/straymaps/storage"
)

// GetMedia GET /media/*
//
// ローカルblobキャッシュ上の写真を配信する。
func (h *Handlers) GetMedia(c echo.Context) error {
	key := c.Param("*")
	f, err := h.Cache.OpenFileByKey(key)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "not found")
		}
		return h.internalServerError(c, err)
	}
	defer f.Close()

	c.Response().Header().Set("Cache-Control", "private, max-age=3600")
	return c.Stream(http.StatusOK, mimeImagePNG, f)
}

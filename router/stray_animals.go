package router

import (
	"errors"
	"io"
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/miles/straymaps/model"
	"github.com/miles/straymaps/repository"
	"github.com/miles/straymaps/service/imaging"
)

// reportsQuery GET /stray-animals, GET /lost-pets クエリパラメータ
type reportsQuery struct {
	OrderBy string `query:"orderBy"`
	Type    string `query:"type"`
	Name    string `query:"name"`
}

func (q reportsQuery) Validate() error {
	return vd.ValidateStruct(&q,
		vd.Field(&q.OrderBy, vd.In("",
			string(repository.OrderByType),
			string(repository.OrderByName),
			string(repository.OrderByColour),
			string(repository.OrderBySex),
			string(repository.OrderByDate))),
	)
}

// GetStrayAnimalReports GET /v1/stray-animals
func (h *Handlers) GetStrayAnimalReports(c echo.Context) error {
	var q reportsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	var (
		reports []*model.StrayAnimalReport
		err     error
	)
	if q.Type != "" {
		reports, err = h.Repo.GetStrayAnimalReportsByType(q.Type)
	} else {
		reports, err = h.Repo.GetStrayAnimalReports(repository.ReportOrder(q.OrderBy))
	}
	if err != nil {
		return h.internalServerError(c, err)
	}
	return c.JSON(http.StatusOK, formatStrayAnimalReports(reports))
}

// PostStrayAnimalReportRequest POST /v1/stray-animals リクエストボディ
type PostStrayAnimalReportRequest struct {
	Type        string `json:"type" form:"type"`
	Colour      string `json:"colour" form:"colour"`
	Sex         string `json:"sex" form:"sex"`
	Appearance  string `json:"appearance" form:"appearance"`
	Location    string `json:"location" form:"location"`
	MicrochipID string `json:"microchipId" form:"microchipId"`
	Contact     string `json:"contact" form:"contact"`
	Additional  string `json:"additional" form:"additional"`
}

func (r PostStrayAnimalReportRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Type, vd.Required, vd.RuneLength(1, 64)),
		vd.Field(&r.Colour, vd.RuneLength(0, 64)),
		vd.Field(&r.Sex, vd.RuneLength(0, 32)),
		vd.Field(&r.MicrochipID, vd.RuneLength(0, 64)),
	)
}

// PostStrayAnimalReport POST /v1/stray-animals
func (h *Handlers) PostStrayAnimalReport(c echo.Context) error {
	var req PostStrayAnimalReportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	r := &model.StrayAnimalReport{
		Type:        req.Type,
		Colour:      req.Colour,
		Sex:         req.Sex,
		Appearance:  req.Appearance,
		Location:    req.Location,
		MicrochipID: req.MicrochipID,
		Contact:     req.Contact,
		Additional:  req.Additional,
		ReportedBy:  getRequestUserID(c),
	}

	if err := h.processPhotoUpload(c, func(src io.Reader) error {
		return h.StrayAnimals.AttachPhoto(r, src)
	}); err != nil {
		return err
	}

	if err := h.StrayAnimals.Save(c.Request().Context(), r); err != nil {
		return h.convertRepoError(c, err)
	}
	// スイープはストアから読み直した行に対して状態を進めるため、
	// レスポンスも保存後の行を読み直して返す
	saved, err := h.Repo.GetStrayAnimalReportByUniqueID(r.UniqueID)
	if err != nil {
		return h.convertRepoError(c, err)
	}
	return c.JSON(http.StatusCreated, formatStrayAnimalReport(saved))
}

// GetStrayAnimalReport GET /v1/stray-animals/:uniqueID
func (h *Handlers) GetStrayAnimalReport(c echo.Context) error {
	r, err := h.Repo.GetStrayAnimalReportByUniqueID(getRequestParamAsUUID(c, "uniqueID"))
	if err != nil {
		return h.convertRepoError(c, err)
	}
	return c.JSON(http.StatusOK, formatStrayAnimalReport(r))
}

// GetStrayAnimalReportByMicrochipID GET /v1/stray-animals/microchip/:microchipID
func (h *Handlers) GetStrayAnimalReportByMicrochipID(c echo.Context) error {
	r, err := h.StrayAnimals.FindByMicrochipID(c.Param("microchipID"))
	if err != nil {
		return h.convertRepoError(c, err)
	}
	return c.JSON(http.StatusOK, formatStrayAnimalReport(r))
}

// DeleteStrayAnimalReport DELETE /v1/stray-animals/:uniqueID
//
// ローカルキャッシュからのみ削除する。リモートには伝播しない。
func (h *Handlers) DeleteStrayAnimalReport(c echo.Context) error {
	if err := h.StrayAnimals.Delete(getRequestParamAsUUID(c, "uniqueID")); err != nil {
		return h.convertRepoError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RefreshStrayAnimalReports POST /v1/stray-animals/refresh
//
// 未同期行のプッシュとリモートコレクションの取り込みを行う。
func (h *Handlers) RefreshStrayAnimalReports(c echo.Context) error {
	if err := h.StrayAnimals.Refresh(c.Request().Context()); err != nil {
		return h.internalServerError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// processPhotoUpload multipartの写真を検証・変換してattachに渡します。写真がない場合は何もしない
func (h *Handlers) processPhotoUpload(c echo.Context, attach func(io.Reader) error) error {
	file, err := c.FormFile("photo")
	if err != nil {
		// 写真なし
		return nil
	}
	if file.Size > photoFileMaxSize {
		return echo.NewHTTPError(http.StatusBadRequest, "too large image file (limit exceeded)")
	}
	switch file.Header.Get(echo.HeaderContentType) {
	case mimeImagePNG, mimeImageJPEG:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image file")
	}

	src, err := file.Open()
	if err != nil {
		return h.internalServerError(c, err)
	}
	defer src.Close()

	img, err := h.Imaging.Photo(src)
	if err != nil {
		switch {
		case errors.Is(err, imaging.ErrInvalidImageSrc), errors.Is(err, imaging.ErrPixelLimitExceeded):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return h.internalServerError(c, err)
		}
	}
	b, err := imaging.EncodePNG(img)
	if err != nil {
		return h.internalServerError(c, err)
	}
	if err := attach(b); err != nil {
		return h.internalServerError(c, err)
	}
	return nil
}

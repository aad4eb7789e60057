package router

import (
	"io"
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/miles/straymaps/model"
	"github.com/miles/straymaps/repository"
)

// GetLostPetReports GET /v1/lost-pets
func (h *Handlers) GetLostPetReports(c echo.Context) error {
	var q reportsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	var (
		reports []*model.LostPetReport
		err     error
	)
	switch {
	case q.Name != "":
		reports, err = h.Repo.GetLostPetReportsByName(q.Name)
	case q.Type != "":
		reports, err = h.Repo.GetLostPetReportsByType(q.Type)
	default:
		reports, err = h.Repo.GetLostPetReports(repository.ReportOrder(q.OrderBy))
	}
	if err != nil {
		return h.internalServerError(c, err)
	}
	return c.JSON(http.StatusOK, formatLostPetReports(reports))
}

// PostLostPetReportRequest POST /v1/lost-pets リクエストボディ
type PostLostPetReportRequest struct {
	Type        string `json:"type" form:"type"`
	Name        string `json:"name" form:"name"`
	Colour      string `json:"colour" form:"colour"`
	Sex         string `json:"sex" form:"sex"`
	Appearance  string `json:"appearance" form:"appearance"`
	Location    string `json:"location" form:"location"`
	MicrochipID string `json:"microchipId" form:"microchipId"`
	Contact     string `json:"contact" form:"contact"`
	Additional  string `json:"additional" form:"additional"`
}

func (r PostLostPetReportRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Type, vd.Required, vd.RuneLength(1, 64)),
		vd.Field(&r.Name, vd.RuneLength(0, 64)),
		vd.Field(&r.Colour, vd.RuneLength(0, 64)),
		vd.Field(&r.Sex, vd.RuneLength(0, 32)),
		vd.Field(&r.MicrochipID, vd.RuneLength(0, 64)),
	)
}

// PostLostPetReport POST /v1/lost-pets
func (h *Handlers) PostLostPetReport(c echo.Context) error {
	var req PostLostPetReportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	r := &model.LostPetReport{
		Type:        req.Type,
		Name:        req.Name,
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
		return h.LostPets.AttachPhoto(r, src)
	}); err != nil {
		return err
	}

	if err := h.LostPets.Save(c.Request().Context(), r); err != nil {
		return h.convertRepoError(c, err)
	}
	// スイープはストアから読み直した行に対して状態を進めるため、
	// レスポンスも保存後の行を読み直して返す
	saved, err := h.Repo.GetLostPetReportByUniqueID(r.UniqueID)
	if err != nil {
		return h.convertRepoError(c, err)
	}
	return c.JSON(http.StatusCreated, formatLostPetReport(saved))
}

// GetLostPetReport GET /v1/lost-pets/:uniqueID
func (h *Handlers) GetLostPetReport(c echo.Context) error {
	r, err := h.Repo.GetLostPetReportByUniqueID(getRequestParamAsUUID(c, "uniqueID"))
	if err != nil {
		return h.convertRepoError(c, err)
	}
	return c.JSON(http.StatusOK, formatLostPetReport(r))
}

// GetLostPetReportByMicrochipID GET /v1/lost-pets/microchip/:microchipID
func (h *Handlers) GetLostPetReportByMicrochipID(c echo.Context) error {
	r, err := h.LostPets.FindByMicrochipID(c.Param("microchipID"))
	if err != nil {
		return h.convertRepoError(c, err)
	}
	return c.JSON(http.StatusOK, formatLostPetReport(r))
}

// DeleteLostPetReport DELETE /v1/lost-pets/:uniqueID
//
// ローカルキャッシュからのみ削除する。リモートには伝播しない。
func (h *Handlers) DeleteLostPetReport(c echo.Context) error {
	if err := h.LostPets.Delete(getRequestParamAsUUID(c, "uniqueID")); err != nil {
		return h.convertRepoError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RefreshLostPetReports POST /v1/lost-pets/refresh
func (h *Handlers) RefreshLostPetReports(c echo.Context) error {
	if err := h.LostPets.Refresh(c.Request().Context()); err != nil {
		return h.internalServerError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

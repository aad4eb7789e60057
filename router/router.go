// Package router HTTP APIのルーティング
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/miles/straymaps/repository"
	"github.com/miles/straymaps/service/imaging"
	"github.com/miles/straymaps/service/sync"
	"github.com/miles/straymaps/storage"
)

// Handlers ハンドラ
type Handlers struct {
	Repo         repository.Repository
	StrayAnimals *sync.StrayAnimalSyncer
	LostPets     *sync.LostPetSyncer
	Cache        storage.FileStorage
	Imaging      imaging.Processor
	Verifier     TokenVerifier
	Hub          *hub.Hub
	Logger       *zap.Logger

	Version  string
	Revision string
}

// Setup ルーティングを行います。メディア配信とバージョンのみAPIプレフィックスの外に置く
func (h *Handlers) Setup(e *echo.Echo) {
	api := e.Group("/api/v1", UserAuthenticate(h.Verifier))
	{
		apiStrayAnimals := api.Group("/stray-animals")
		{
			apiStrayAnimals.GET("", h.GetStrayAnimalReports)
			apiStrayAnimals.POST("", h.PostStrayAnimalReport)
			apiStrayAnimals.POST("/refresh", h.RefreshStrayAnimalReports)
			apiStrayAnimals.GET("/microchip/:microchipID", h.GetStrayAnimalReportByMicrochipID)
			apiStrayAnimalsUID := apiStrayAnimals.Group("/:uniqueID")
			{
				apiStrayAnimalsUID.GET("", h.GetStrayAnimalReport)
				apiStrayAnimalsUID.DELETE("", h.DeleteStrayAnimalReport)
			}
		}
		apiLostPets := api.Group("/lost-pets")
		{
			apiLostPets.GET("", h.GetLostPetReports)
			apiLostPets.POST("", h.PostLostPetReport)
			apiLostPets.POST("/refresh", h.RefreshLostPetReports)
			apiLostPets.GET("/microchip/:microchipID", h.GetLostPetReportByMicrochipID)
			apiLostPetsUID := apiLostPets.Group("/:uniqueID")
			{
				apiLostPetsUID.GET("", h.GetLostPetReport)
				apiLostPetsUID.DELETE("", h.DeleteLostPetReport)
			}
		}
		api.GET("/events", h.NotifyEvents)
	}
	e.GET("/media/*", h.GetMedia)
	e.GET("/version", h.GetVersion)
}

// GetVersion GET /version
func (h *Handlers) GetVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"version":  h.Version,
		"revision": h.Revision,
	})
}

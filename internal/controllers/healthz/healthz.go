package healthz

import (
	"net/http"

	"github.com/basketwise/backend/internal/httputil"
	"github.com/basketwise/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type HealthResponse struct {
	Error string `json:"error" example:"The database cannot be accessed"`
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// Get returns the health of the application
//
//	@Summary		Get health
//	@Description	Returns the application health and, if not healthy, an error
//	@Tags			General
//	@Success		204
//	@Failure		500	{object}	HealthResponse
//	@Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c)
	}

	if err != nil {
		log.Error().Msgf("Error checking database connection: %#v", err)
		c.JSON(http.StatusInternalServerError, HealthResponse{
			Error: "The database cannot be accessed",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

package sandbox

import (
	"fmt"
	"net/http"
	"reflect"

	"bitbucket.org/crgw/reservations-e2e/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	TwinKey   string = "twin"
	ParamsKey string = "params"
)

// twin answers the steps of one protocol.
type twin interface {
	Shop(c *gin.Context, params any)
	Price(c *gin.Context, params any)
	CreateOrder(c *gin.Context, params any)
}

func PrepareTwin(twins map[string]twin) gin.HandlerFunc {
	return func(c *gin.Context) {
		platformFromPath := c.Params.ByName("platform")

		selected, ok := twins[platformFromPath]
		if !ok {
			web.HandleError(c, http.StatusNotFound, "Failed to find platform service", fmt.Errorf("unknown platform %s", platformFromPath))
			return
		}

		c.Set(TwinKey, selected)
	}
}

func TapLogger(c *gin.Context) {
	requestLogger := web.Logger(c).
		With().
		Str("platform", c.Params.ByName("platform")).
		Str("operationId", uuid.New().String()).
		Logger()

	c.Set(web.LoggerKey, &requestLogger)
}

// PrepareParams binds the request body into a new value of the type registered
// for the platform of the path. Bodies are bound by content type.
func PrepareParams(byPlatform map[string]any) gin.HandlerFunc {
	types := make(map[string]reflect.Type, len(byPlatform))

	for platform, val := range byPlatform {
		value := reflect.ValueOf(val)
		if value.Kind() == reflect.Ptr {
			panic(`Bind struct can not be a pointer.`)
		}

		types[platform] = value.Type()
	}

	return func(c *gin.Context) {
		typ, ok := types[c.Params.ByName("platform")]
		if !ok {
			web.HandleError(c, http.StatusNotFound, "Unsupported platform", nil)
			return
		}

		params := reflect.New(typ).Interface()

		err := c.ShouldBind(params)
		if err != nil {
			web.HandleError(c, http.StatusBadRequest, "Failed to bind request params", err)
			return
		}

		c.Set(ParamsKey, params)
	}
}

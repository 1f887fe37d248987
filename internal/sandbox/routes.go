package sandbox

import (
	"bitbucket.org/crgw/reservations-e2e/internal/platform/implementations/jsonapi/json"
	"github.com/gin-gonic/gin"
)

func (s *Sandbox) RegisterRoutes(router *gin.Engine) {
	router.POST("/oauth2/token", s.IssueToken)

	group := router.Group(
		"/:platform",
		PrepareTwin(map[string]twin{
			"json": &jsonTwin{sandbox: s},
			"xml":  &ndcTwin{sandbox: s},
		}),
		TapLogger,
		s.RequireToken,
	)

	group.POST("/shop",
		PrepareParams(map[string]any{"json": json.ShopRQ{}, "xml": ndcShopRQ{}}),
		func(c *gin.Context) {
			c.MustGet(TwinKey).(twin).Shop(c, c.MustGet(ParamsKey))
		},
	)

	group.POST("/price",
		PrepareParams(map[string]any{"json": json.PriceRQ{}, "xml": ndcPriceRQ{}}),
		func(c *gin.Context) {
			c.MustGet(TwinKey).(twin).Price(c, c.MustGet(ParamsKey))
		},
	)

	group.POST("/create",
		PrepareParams(map[string]any{"json": json.OrderCreateRQ{}, "xml": ndcOrderCreateRQ{}}),
		func(c *gin.Context) {
			c.MustGet(TwinKey).(twin).CreateOrder(c, c.MustGet(ParamsKey))
		},
	)
}

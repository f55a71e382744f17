package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cert-form/web"
)

func SetupWebRoutes(router fiber.Router) {
	router.Get("/", func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.Send(web.IndexHTML)
	})
}

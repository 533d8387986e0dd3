package httpserver

import (
	"html/template"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires the storefront routes.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	tmpl, err := template.New("shopfront").Parse(pageTemplates)
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	router.GET("/healthz", healthHandler)

	h := &handlers{sessions: newSessionManager(deps.KV, logger)}
	router.GET("/", h.home)
	router.GET("/checkout", h.checkoutPage)
	router.GET("/contact", h.contactPage)
	router.GET("/wishlist", h.wishlistPage)

	router.POST("/cart/add", h.addToCart)
	router.POST("/cart/buy-now", h.buyNow)
	router.POST("/cart/remove", h.removeItem)
	router.POST("/checkout", h.submitCheckout)
	router.POST("/checkout/billing-toggle", h.billingToggle)
	router.POST("/newsletter", h.newsletter)
	router.POST("/contact", h.contact)

	return router, nil
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
	"github.com/yourusername/hardware-storefront/internal/usecase"
)

const (
	sessionKey     = "session"
	maxUploadBytes = 32 << 20
)

// Services HTTP qatlami ishlatadigan use caselar. Suggestions nil bo'lishi mumkin.
type Services struct {
	Admins             usecase.AdminUseCase
	Customers          usecase.CustomerUseCase
	Products           usecase.ProductUseCase
	Hardware           usecase.HardwareUseCase
	Categories         usecase.CategoryUseCase
	HardwareCategories usecase.HardwareCategoryUseCase
	Orders             usecase.OrderUseCase
	Store              usecase.StoreUseCase
	Builder            usecase.BuilderUseCase
	Chat               usecase.ChatUseCase
	Media              usecase.MediaUseCase
	Suggestions        repository.SuggestionService
	MediaDir           string
}

// Server gin engine va use caselar
type Server struct {
	engine *gin.Engine
	svc    Services
}

// NewServer yangi HTTP server yaratish
func NewServer(svc Services) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.MaxMultipartMemory = maxUploadBytes
	r.Use(requestLogger(), gin.Recovery())
	s := &Server{engine: r, svc: svc}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		ok(c, http.StatusOK, gin.H{"status": "ok"})
	})
	if s.svc.MediaDir != "" {
		s.engine.Static("/media", s.svc.MediaDir)
	}

	api := s.engine.Group("/api")
	api.Use(s.loadSession)
	admin := s.requireRole(entity.RoleAdmin)

	{
		admins := api.Group("/admins")
		admins.POST("/login", s.adminLogin)
		admins.POST("/logout", s.requireSession, s.logout)
		admins.GET("", admin, s.listAdmins)
		admins.POST("", admin, s.createAdmin)
		admins.DELETE("/:id", admin, s.deleteAdmin)
		admins.GET("/actions", admin, s.adminActions)

		customers := api.Group("/customers")
		customers.POST("/register", s.registerCustomer)
		customers.POST("/login", s.customerLogin)
		customers.POST("/logout", s.requireSession, s.logout)
		customers.GET("/me", s.requireRole(entity.RoleCustomer), s.customerProfile)
		customers.GET("", admin, s.listCustomers)
	}

	{
		products := api.Group("/products")
		products.GET("", s.listProducts)
		products.GET("/:id", s.getProduct)
		products.POST("", admin, s.createProduct)
		products.PUT("/:id", admin, s.updateProduct)
		products.DELETE("/:id", admin, s.deleteProduct)
		products.POST("/bulk-edit", admin, s.bulkEditProducts)
		products.POST("/bulk-delete", admin, s.bulkDeleteProducts)
		products.POST("/classify", admin, s.classifyProducts)

		hardware := api.Group("/hardware")
		hardware.GET("", s.listHardware)
		hardware.GET("/catalog", s.hardwareCatalog)
		hardware.GET("/:id", s.getHardware)
		hardware.POST("", admin, s.createHardware)
		hardware.PUT("/:id", admin, s.updateHardware)
		hardware.DELETE("/:id", admin, s.deleteHardware)
		hardware.POST("/bulk-edit", admin, s.bulkEditHardware)

		categories := api.Group("/categories")
		categories.GET("", s.listCategories)
		categories.GET("/:key", s.getCategory)
		categories.POST("", admin, s.createCategory)
		categories.PUT("/:key", admin, s.updateCategory)
		categories.DELETE("/:key", admin, s.deleteCategory)

		hwCategories := api.Group("/hardware-categories")
		hwCategories.GET("", s.listHardwareCategories)
		hwCategories.GET("/:key", s.getHardwareCategory)
		hwCategories.POST("", admin, s.createHardwareCategory)
		hwCategories.PUT("/:key", admin, s.updateHardwareCategory)
		hwCategories.DELETE("/:key", admin, s.deleteHardwareCategory)
	}

	{
		api.GET("/company", s.getCompany)
		api.PUT("/company", admin, s.updateCompany)

		carousel := api.Group("/carousel")
		carousel.GET("", s.listSlides)
		carousel.GET("/:id", s.getSlide)
		carousel.POST("", admin, s.createSlide)
		carousel.PUT("/order", admin, s.reorderSlides)
		carousel.PUT("/:id", admin, s.updateSlide)
		carousel.DELETE("/:id", admin, s.deleteSlide)

		api.GET("/settings", s.getSettings)
		api.PUT("/settings", admin, s.updateSettings)

		orders := api.Group("/orders")
		orders.POST("", s.createOrder)
		orders.GET("", admin, s.listOrders)
		orders.GET("/:id", s.requireSession, s.getOrder)
		orders.PATCH("/:id/status", admin, s.updateOrderStatus)
	}

	{
		builder := api.Group("/builder")
		builder.POST("/compatible", s.compatible)
		builder.POST("/generate", s.generate)
		builder.POST("/wizards", s.startWizard)
		builder.GET("/wizards/:id", s.getWizard)
		builder.DELETE("/wizards/:id", s.closeWizard)
		builder.POST("/wizards/:id/select", s.selectInWizard)
		builder.POST("/wizards/:id/goto", s.gotoStep)
		builder.POST("/wizards/:id/deselect", s.deselect)
		builder.POST("/wizards/:id/extras", s.extras)
		builder.POST("/wizards/:id/save", admin, s.saveWizard)
	}

	{
		ai := api.Group("/ai")
		ai.POST("/chat", s.chat)
		ai.POST("/generate", admin, s.generateText)
		ai.POST("/search-images", admin, s.searchImages)
		ai.POST("/text-to-speech", s.textToSpeech)
		ai.POST("/music", admin, s.generateMusic)

		api.POST("/import/:kind", admin, s.importCatalog)
		api.GET("/export/:kind", admin, s.exportCatalog)
		api.POST("/media", admin, s.uploadMedia)
	}
}

// envelope javob formati
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

func ok(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{Success: true, Data: data})
}

func fail(c *gin.Context, err error) {
	status := mapErrorToStatus(err)
	if status >= http.StatusInternalServerError {
		zap.S().Errorw("request failed", "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(status, envelope{Error: err.Error(), Code: errorCode(status)})
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, envelope{Error: msg, Code: errorCode(http.StatusBadRequest)})
}

func mapErrorToStatus(err error) int {
	var business *repository.BusinessError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, repository.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, repository.ErrUnsupported):
		return http.StatusNotImplemented
	case errors.As(err, &business):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusNotImplemented:
		return "unsupported"
	case http.StatusBadGateway:
		return "upstream"
	default:
		return "internal"
	}
}

// requestLogger gin so'rovlarini zap orqali loglash
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"ip", c.ClientIP(),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			zap.S().Warnw("http request", fields...)
			return
		}
		zap.S().Debugw("http request", fields...)
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if token, found := strings.CutPrefix(header, "Bearer "); found {
		return strings.TrimSpace(token)
	}
	return ""
}

// loadSession tokenni tekshiradi; token bo'lmasa so'rov anonim davom etadi
func (s *Server) loadSession(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.Next()
		return
	}
	session, err := s.svc.Admins.Authenticate(c, token)
	if err != nil {
		fail(c, err)
		return
	}
	c.Set(sessionKey, session)
	c.Next()
}

func (s *Server) requireSession(c *gin.Context) {
	if currentSession(c) == nil {
		fail(c, repository.ErrUnauthorized)
		return
	}
	c.Next()
}

func (s *Server) requireRole(role entity.SessionRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := currentSession(c)
		if session == nil {
			fail(c, repository.ErrUnauthorized)
			return
		}
		if session.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, envelope{
				Error: "forbidden",
				Code:  errorCode(http.StatusForbidden),
			})
			return
		}
		c.Next()
	}
}

func currentSession(c *gin.Context) *entity.Session {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil
	}
	session, _ := v.(*entity.Session)
	return session
}

func subject(c *gin.Context) string {
	if session := currentSession(c); session != nil {
		return session.Subject
	}
	return ""
}

// audit admin harakatini loglash
func (s *Server) audit(c *gin.Context, action, details string) {
	s.svc.Admins.LogAction(c, subject(c), action, details)
}

package handler

import (
	"net/http"

	_ "github.com/skhanzad/libralite/libralite/docs"
	"github.com/skhanzad/libralite/pkg/auth"
	"github.com/skhanzad/libralite/pkg/metrics"
	md "github.com/skhanzad/libralite/pkg/middleware"
	"github.com/skhanzad/libralite/pkg/validate"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	svc      Service
	log      *zap.Logger
	adminKey string
	tokens   md.TokenParser

	gatherer    prometheus.Gatherer
	httpMetrics *metrics.HTTP
}

type Option func(h *Handler)

// WithAdminKey sets the X-Admin-Key value admin routes accept. Without it
// admin routes reject every request.
func WithAdminKey(key string) Option {
	return func(h *Handler) {
		h.adminKey = key
	}
}

func WithTokenParser(tokens md.TokenParser) Option {
	return func(h *Handler) {
		h.tokens = tokens
	}
}

// WithMetrics registers HTTP metrics on reg and serves reg on /metrics.
func WithMetrics(reg *prometheus.Registry) Option {
	return func(h *Handler) {
		h.gatherer = reg
		h.httpMetrics = metrics.NewHTTP(reg)
	}
}

func New(svc Service, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		svc:    svc,
		log:    log.Named("handler"),
		tokens: noTokens{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type noTokens struct{}

func (noTokens) Parse(string) (*auth.Claims, error) { return nil, auth.ErrInvalidToken }

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, md.AdminKeyHeader},
		AllowCredentials: true,
	}))
	if h.httpMetrics != nil {
		e.Use(md.Metrics(h.httpMetrics))
	}

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)
	if h.gatherer != nil {
		base.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
	}

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	admin := md.AdminKey(h.adminKey)

	api.POST("/members/apply", h.SubmitApplication)
	api.GET("/members/applications/:id", h.GetApplication)
	api.POST("/members/login", h.Login)
	api.GET("/members/me", h.Me, md.JwtAuthentication(h.tokens))
	api.GET("/members/:id/loans", h.GetMemberLoans)
	api.GET("/members/:id/fines", h.GetMemberFines)
	api.GET("/members/:id/account", h.GetMemberAccount)

	adm := api.Group("/admin", admin)
	adm.GET("/applications", h.ListApplications)
	adm.POST("/applications/:id/approve", h.ApproveApplication)
	adm.POST("/applications/:id/reject", h.RejectApplication)
	adm.GET("/members", h.ListMembers)
	adm.GET("/stats", h.GetStats)

	api.POST("/items", h.CreateItem, admin)
	api.GET("/items", h.ListItems)
	api.GET("/items/:id", h.GetItem)
	api.PATCH("/items/:id", h.UpdateItem, admin)
	api.POST("/items/:id/return", h.ReturnItem)
	api.POST("/items/:id/holds/recalculate", h.RecalculateQueuePositions)
	api.GET("/items/:id/holds/:holdId/position", h.GetQueuePosition)

	api.POST("/loans/checkout", h.Checkout)
	api.POST("/loans/checkin", h.Checkin)

	api.POST("/holds", h.PlaceHold)
	api.GET("/holds", h.ListHolds)
	api.GET("/holds/:id", h.GetHold)
	api.PATCH("/holds/:id", h.UpdateHoldStatus)
	api.DELETE("/holds/:id", h.CancelHold)

	api.POST("/hold-shelf", h.PromoteNextHold)
	api.GET("/hold-shelf", h.ListHoldShelf)
	api.POST("/hold-shelf/expire", h.ExpireHoldShelf)

	return e
}

// Health godoc
// @Summary liveness probe
// @Success 200 {string} string "OK"
// @Router /manage/health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

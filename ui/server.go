// Package ui exposes the engine over HTTP. Server is the full gin JSON
// API; App (app.go) is the slimmer chi surface used by the api binary.
package ui

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gosaju/adapters/excel"
	"gosaju/ai"
	"gosaju/app"
	"gosaju/internal/credits"
	"gosaju/internal/errors"
	"gosaju/models"
	"gosaju/ports"
)

// Server represents the web server for the fortune API
type Server struct {
	router   *gin.Engine
	analysis *app.AnalysisService
	fortune  *app.FortuneService
	ledger   ports.CreditLedger
	readings ports.ReadingRepository
	reports  *excel.ReportWriter

	// now is injectable so handler tests stay deterministic.
	now func() time.Time
}

// NewServer creates a new web server instance
func NewServer(analysis *app.AnalysisService, fortune *app.FortuneService, ledger ports.CreditLedger, readings ports.ReadingRepository) *Server {
	s := &Server{
		router:   gin.Default(),
		analysis: analysis,
		fortune:  fortune,
		ledger:   ledger,
		readings: readings,
		reports:  excel.NewReportWriter(),
		now:      time.Now,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.POST("/analyze", s.handleAnalyze)
		api.POST("/report", s.handleReport)
		api.POST("/fortune/:service", s.handleFortune)

		api.GET("/packages", s.handlePackages)
		api.GET("/credits/:user", s.handleBalance)
		api.POST("/credits/:user/purchase", s.handlePurchase)

		api.GET("/readings/:user", s.handleReadings)
		api.GET("/reading/:id/html", s.handleReadingHTML)
	}
}

// Run starts the HTTP server
func (s *Server) Run(addr string) error {
	log.Printf("[ui] listening on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the underlying handler for tests.
func (s *Server) Router() http.Handler { return s.router }

// statusFor maps application error codes onto HTTP statuses.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput, errors.CodeValidationError:
		return http.StatusBadRequest
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeUnauthorized:
		return http.StatusUnauthorized
	case errors.CodeInsufficientCredit:
		return http.StatusPaymentRequired
	case errors.CodeExternalService:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func abortWith(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var input models.BirthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWith(c, errors.InvalidInput("invalid request body"))
		return
	}

	analysis, err := s.analysis.Analyze(c.Request.Context(), input, s.now())
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// handleReport casts the chart and streams the 만세력 workbook.
func (s *Server) handleReport(c *gin.Context) {
	var input models.BirthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWith(c, errors.InvalidInput("invalid request body"))
		return
	}

	analysis, err := s.analysis.Analyze(c.Request.Context(), input, s.now())
	if err != nil {
		abortWith(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="manse.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := s.reports.Write(c.Writer, analysis); err != nil {
		abortWith(c, errors.Wrap(err, "render report"))
	}
}

type fortuneBody struct {
	UserID   uuid.UUID         `json:"userId"`
	Birth    models.BirthInput `json:"birth"`
	Tarot    *tarotBody        `json:"tarot,omitempty"`
	Question string            `json:"question,omitempty"`
	Name     string            `json:"name,omitempty"`
	Concern  string            `json:"concern,omitempty"`
}

type tarotBody struct {
	NameKr     string   `json:"nameKr"`
	Name       string   `json:"name"`
	IsReversed bool     `json:"isReversed"`
	Keywords   []string `json:"keywords"`
}

func (s *Server) handleFortune(c *gin.Context) {
	service := credits.Service(c.Param("service"))
	if !credits.Known(service) {
		abortWith(c, errors.InvalidInput("unknown service"))
		return
	}

	var body fortuneBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWith(c, errors.InvalidInput("invalid request body"))
		return
	}
	if body.UserID == uuid.Nil {
		abortWith(c, errors.InvalidInput("userId is required"))
		return
	}

	req := app.FortuneRequest{
		UserID:   body.UserID,
		Service:  service,
		Birth:    body.Birth,
		Question: body.Question,
	}
	if body.Tarot != nil {
		req.Tarot = &ai.TarotCard{
			NameKr:     body.Tarot.NameKr,
			Name:       body.Tarot.Name,
			IsReversed: body.Tarot.IsReversed,
			Keywords:   body.Tarot.Keywords,
		}
	}
	if body.Name != "" || body.Concern != "" || body.Question != "" {
		req.Context = &ai.UserContext{Name: body.Name, Concern: body.Concern, Question: body.Question}
	}

	result, err := s.fortune.Generate(c.Request.Context(), req, s.now())
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handlePackages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"packages": credits.Packages})
}

func (s *Server) handleBalance(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user"))
	if err != nil {
		abortWith(c, errors.InvalidInput("invalid user id"))
		return
	}
	balance, err := s.ledger.Balance(c.Request.Context(), userID)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": userID, "balance": balance})
}

func (s *Server) handlePurchase(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user"))
	if err != nil {
		abortWith(c, errors.InvalidInput("invalid user id"))
		return
	}

	var body struct {
		PackageID string `json:"packageId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWith(c, errors.InvalidInput("invalid request body"))
		return
	}

	balance, err := s.fortune.Purchase(c.Request.Context(), userID, body.PackageID)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": userID, "balance": balance})
}

func (s *Server) handleReadings(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user"))
	if err != nil {
		abortWith(c, errors.InvalidInput("invalid user id"))
		return
	}
	readings, err := s.readings.ByUser(c.Request.Context(), userID, 20)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"readings": readings})
}

// handleReadingHTML re-renders a stored reading's markdown as HTML for
// embedding.
func (s *Server) handleReadingHTML(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWith(c, errors.InvalidInput("invalid reading id"))
		return
	}
	reading, err := s.readings.ByID(c.Request.Context(), id)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", RenderMarkdown(reading.Content))
}

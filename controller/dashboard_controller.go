package controller

import (
	"net/http"
	"strings"

	"github.com/adexaja/trade-analysis-ai/config"
	"github.com/adexaja/trade-analysis-ai/customerrors"
	"github.com/adexaja/trade-analysis-ai/model"
	"github.com/adexaja/trade-analysis-ai/service"
	"github.com/adexaja/trade-analysis-ai/view"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DashboardController serves the HTML form and the rendered analyses.
type DashboardController struct {
	analysisSvc service.AnalysisService
	cfg         *config.ConfigManager
}

func NewDashboardController(analysisSvc service.AnalysisService, cfg *config.ConfigManager) *DashboardController {
	return &DashboardController{analysisSvc: analysisSvc, cfg: cfg}
}

func (ctrl *DashboardController) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", ctrl.index)
	router.POST("/analyze", ctrl.analyze)
	router.GET("/demo", ctrl.demo)
}

func (ctrl *DashboardController) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", view.PageData{
		Title:    "AI Trade Analysis",
		Currency: ctrl.cfg.GetConfig().Currency,
	})
}

func (ctrl *DashboardController) analyze(c *gin.Context) {
	cfg := ctrl.cfg.GetConfig()
	asset := strings.TrimSpace(c.PostForm("asset"))
	investmentText := strings.TrimSpace(c.PostForm("investment"))

	page := view.PageData{
		Title:      asset + " Analysis",
		Currency:   cfg.Currency,
		Asset:      asset,
		Investment: investmentText,
	}

	formatter := view.NewFormatter(cfg.Locale, cfg.Currency)
	// unparsable amounts count as missing
	investment, _ := formatter.ParseAmount(investmentText)

	outcome := ctrl.analysisSvc.Analyze(c.Request.Context(), model.AnalyzeTradeRequest{Asset: asset, Investment: investment})
	if outcome.Status() == http.StatusBadRequest {
		page.Title = "AI Trade Analysis"
		page.Error = customerrors.ErrMissingInput.Error()
		c.HTML(http.StatusBadRequest, "index.html", page)
		return
	}
	if outcome.Kind == model.OutcomeFailure {
		log.Warn().Str("asset", asset).Str("error", outcome.Failure.Error).Msg("analysis failed, rendering diagnostics")
	}

	dashboard := view.BuildDashboard(outcome, formatter)
	page.Dashboard = &dashboard
	c.HTML(outcome.Status(), "dashboard.html", page)
}

func (ctrl *DashboardController) demo(c *gin.Context) {
	cfg := ctrl.cfg.GetConfig()
	demo := view.DemoAnalysis()
	dashboard := view.BuildDashboard(
		model.AnalysisOutcome{Kind: model.OutcomeConformant, Analysis: &demo},
		view.NewFormatter(cfg.Locale, demo.TradeAnalysis.SimpleConclusion.Currency),
	)

	c.HTML(http.StatusOK, "dashboard.html", view.PageData{
		Title:     "Demo Analysis",
		Currency:  cfg.Currency,
		Demo:      true,
		Dashboard: &dashboard,
	})
}

package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/noah-isme/abitur-api/internal/handler"
	"github.com/noah-isme/abitur-api/internal/middleware"
	"github.com/noah-isme/abitur-api/pkg/config"
)

type routeDeps struct {
	metrics     *handler.MetricsHandler
	catalog     *handler.CatalogHandler
	evaluations *handler.EvaluationHandler
	worksheets  *handler.WorksheetHandler
	tokens      middleware.TokenValidator
}

func registerRoutes(r *gin.Engine, cfg *config.Config, deps routeDeps) {
	r.GET("/health", deps.metrics.Health)
	r.GET("/ready", deps.metrics.Ready)
	r.GET("/metrics", deps.metrics.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.GET("/subjects/catalog", deps.catalog.List)
	api.POST("/evaluations", deps.evaluations.Evaluate)
	api.POST("/evaluations/export", deps.evaluations.Export)

	if deps.worksheets == nil {
		return
	}
	api.POST("/worksheets", deps.worksheets.Create)

	worksheet := api.Group("/worksheets/:id", middleware.WorksheetAuth(deps.tokens))
	worksheet.GET("", deps.worksheets.Get)
	worksheet.DELETE("", deps.worksheets.Delete)
	worksheet.GET("/evaluation", deps.worksheets.Evaluation)
	worksheet.GET("/export", deps.worksheets.Export)
	worksheet.POST("/reset", deps.worksheets.Reset)
	worksheet.POST("/subjects", deps.worksheets.AddSubject)
	worksheet.PUT("/subjects", deps.worksheets.Import)
	worksheet.DELETE("/subjects/:subjectId", deps.worksheets.RemoveSubject)
	worksheet.PUT("/subjects/:subjectId/level", deps.worksheets.UpdateCourseLevel)
	worksheet.PUT("/subjects/:subjectId/exam", deps.worksheets.UpdateExamKind)
	worksheet.PUT("/subjects/:subjectId/grades/:period", deps.worksheets.UpdatePeriodGrade)
	worksheet.PUT("/subjects/:subjectId/exam-grade", deps.worksheets.UpdateExamGrade)
	worksheet.POST("/subjects/:subjectId/toggle", deps.worksheets.ToggleSelection)
}

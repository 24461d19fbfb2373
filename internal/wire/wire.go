package wire

import (
	"Instalens/internal/api"
	"Instalens/internal/api/config"
	"Instalens/internal/api/handler"
	"Instalens/internal/job"
	"Instalens/internal/pkg/cron"
	"Instalens/internal/pkg/instagram"
	"Instalens/internal/pkg/llm"
	"Instalens/internal/repository"
	"Instalens/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/tmc/langchaingo/llms"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, model llms.Model, cfg *config.Config) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepository(db)

	igClient := instagram.NewClient(&cfg.Instagram)

	ingestService := service.NewIngestService(igClient, postRepo, cfg.Ingest.WeightedEngagement)
	queryService := service.NewPostQueryService(postRepo, cfg.Query.RecentLimit)

	toolHandler := llm.NewToolHandler(queryService)
	agent := llm.NewAgent(model, toolHandler)

	handlers := &api.HandlersGroup{
		ChatHandler: handler.NewChatHandler(agent),
		PostHandler: handler.NewPostHandler(queryService),
	}

	router := api.SetupRouter(handlers)

	ingestJob := job.NewIngestJob(ingestService)
	cronMgr := cron.NewCronManager(ingestJob, cfg.Ingest.Cron)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"finbook/internal/middleware"
	"finbook/pkg/gemini"
	"finbook/pkg/openai"
	"finbook/pkg/qwen"

	ainoteHTTP "finbook/internal/ainote/delivery/http"
	ainoteUC "finbook/internal/ainote/usecase"
	budgetHTTP "finbook/internal/budget/delivery/http"
	budgetSqlite "finbook/internal/budget/repository/sqlite"
	budgetUC "finbook/internal/budget/usecase"
	ledgerHTTP "finbook/internal/ledger/delivery/http"
	ledgerSqlite "finbook/internal/ledger/repository/sqlite"
	ledgerUC "finbook/internal/ledger/usecase"
	parsingHTTP "finbook/internal/parsing/delivery/http"
	"finbook/internal/parsing/provider"
	parsingSqlite "finbook/internal/parsing/repository/sqlite"
	parsingUC "finbook/internal/parsing/usecase"
	"finbook/internal/region"
	regionSqlite "finbook/internal/region/repository/sqlite"
	taskHTTP "finbook/internal/scheduledtask/delivery/http"
	taskSqlite "finbook/internal/scheduledtask/repository/sqlite"
	taskUC "finbook/internal/scheduledtask/usecase"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes builds every domain bottom-up (repository, use
// case, handler) and mounts its routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")
	mw := middleware.New(srv.l)

	// Ledger
	ledgerRepo := ledgerSqlite.New(srv.db, srv.l)
	ledgerUseCase := ledgerUC.New(ledgerRepo, srv.l)
	ledgerHTTP.RegisterRoutes(api, ledgerHTTP.New(srv.l, ledgerUseCase), mw)

	// Budgets
	budgetRepo := budgetSqlite.New(srv.db, srv.l)
	budgetUseCase := budgetUC.New(srv.l, budgetRepo)
	budgetHTTP.RegisterRoutes(api, budgetHTTP.New(srv.l, budgetUseCase), mw)

	// Scheduled tasks
	taskRepo := taskSqlite.New(srv.db, srv.l)
	taskUseCase := taskUC.New(taskRepo, srv.l)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, taskUseCase), mw)

	// AI parsing
	geminiClient := srv.buildGeminiClient(ctx)
	providers, names := srv.buildProviderChain(ctx, geminiClient)

	detector, err := region.New(srv.l, regionSqlite.New(srv.db, srv.l), srv.regionCacheSize)
	if err != nil {
		return err
	}

	auditRepo := parsingSqlite.New(srv.db, srv.l)
	parsingUseCase := parsingUC.New(srv.l, provider.NewRouter(providers...), detector, auditRepo, srv.ai.AttemptTimeout)
	parsingHTTP.RegisterRoutes(api, parsingHTTP.New(srv.l, parsingUseCase, names), mw, srv.parsePerMinute)

	// Voice notes
	ainoteUseCase := ainoteUC.New(srv.l, geminiClient, accountNameSource{uc: ledgerUseCase})
	ainoteHTTP.RegisterRoutes(api, ainoteHTTP.New(srv.l, ainoteUseCase), mw)

	return nil
}

func (srv *HTTPServer) buildGeminiClient(ctx context.Context) gemini.IGemini {
	if srv.ai.Gemini.APIKey == "" {
		srv.l.Infof(ctx, "gemini API key not configured, provider disabled")
		return nil
	}
	client, err := gemini.New(gemini.Config{
		APIKey: srv.ai.Gemini.APIKey,
		Model:  srv.ai.Gemini.Model,
		APIURL: srv.ai.Gemini.BaseURL,
	})
	if err != nil {
		srv.l.Errorf(ctx, "gemini client: %v", err)
		return nil
	}
	return client
}

// buildProviderChain constructs the parsing providers in failover order.
// Unconfigured providers are omitted.
func (srv *HTTPServer) buildProviderChain(ctx context.Context, geminiClient gemini.IGemini) ([]provider.Provider, []string) {
	var providers []provider.Provider

	if srv.ai.Qwen.APIKey != "" {
		client, err := qwen.New(qwen.Config{
			APIKey:  srv.ai.Qwen.APIKey,
			Model:   srv.ai.Qwen.Model,
			BaseURL: srv.ai.Qwen.BaseURL,
		})
		if err != nil {
			srv.l.Errorf(ctx, "qwen client: %v", err)
		} else {
			providers = append(providers, provider.NewQwen(client))
		}
	} else {
		srv.l.Infof(ctx, "qwen API key not configured, provider disabled")
	}

	if geminiClient != nil {
		providers = append(providers, provider.NewGemini(geminiClient))
	}

	if srv.ai.OpenAI.APIKey != "" {
		client, err := openai.New(openai.Config{
			APIKey:  srv.ai.OpenAI.APIKey,
			Model:   srv.ai.OpenAI.Model,
			BaseURL: srv.ai.OpenAI.BaseURL,
		})
		if err != nil {
			srv.l.Errorf(ctx, "openai client: %v", err)
		} else {
			providers = append(providers, provider.NewOpenAI(client))
		}
	} else {
		srv.l.Infof(ctx, "openai API key not configured, provider disabled")
	}

	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Name())
	}
	srv.l.Infof(ctx, "AI provider chain: %v", names)

	return providers, names
}

package cmd

import (
	"log/slog"
	"os"

	httpin "bytebowl/internal/adapters/in/http"
	"bytebowl/internal/adapters/out/inmemory"
	"bytebowl/internal/adapters/out/postgres"
	"bytebowl/internal/core/application/router"
	"bytebowl/internal/core/application/usecases/commands"
	"bytebowl/internal/core/application/usecases/queries"
	"bytebowl/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs      Config
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	sessionStore *inmemory.SessionStore
	logger       *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		configs:      configs,
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		sessionStore: inmemory.NewSessionStore(),
		logger:       slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreateAddItemsCommandHandler() commands.AddItemsCommandHandler {
	return commands.NewAddItemsCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateRemoveItemsCommandHandler() commands.RemoveItemsCommandHandler {
	return commands.NewRemoveItemsCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.FinalizeUoWFactory = FuncFinalizeUoWFactory(func() commands.FinalizeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(c.sessionStore, f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateIntentRouter() *router.Router {
	addHandler := c.CreateAddItemsCommandHandler()
	removeHandler := c.CreateRemoveItemsCommandHandler()
	completeHandler := c.CreateCompleteOrderCommandHandler()
	return router.NewRouter(
		c.sessionStore,
		&addHandler,
		&removeHandler,
		&completeHandler,
		c.CreateTrackOrderQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateIntentRouter(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateGetMenuQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.sessionStore, c.configs.SessionTTL, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFinalizeUoWFactory func() commands.FinalizeUoW

func (f FuncFinalizeUoWFactory) Create() commands.FinalizeUoW {
	return f()
}

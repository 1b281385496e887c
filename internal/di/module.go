package di

import (
	"github.com/bookline/bookline/internal/adapter/metadata"
	"github.com/bookline/bookline/internal/app"
	"github.com/bookline/bookline/internal/config"
	"github.com/bookline/bookline/internal/logger"
	"github.com/bookline/bookline/internal/pkg/auth"
	"github.com/bookline/bookline/internal/server/http/handlers"
	"github.com/bookline/bookline/internal/server/http/router"
	"github.com/bookline/bookline/internal/storage/postgres"
	"github.com/bookline/bookline/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		metadata.Module,
		usecase.Module,
		fx.Provide(func(client metadata.Client) usecase.MetadataProvider { return client }),
		fx.Provide(func(facade *app.LibraryFacade) handlers.LibraryFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

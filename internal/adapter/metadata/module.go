package metadata

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/bookline/bookline/internal/config"
)

// Module exposes metadata client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.MetadataAddress == "" {
		return NopClient{}, nil
	}
	return NewHTTPClient(p.Config.MetadataAddress, p.Logger)
}

package analytics_fx

import (
	"go.uber.org/fx"

	"credimatch/internal/services"
)

var Module = fx.Provide(provideAnalyticsSink)

func provideAnalyticsSink() services.AnalyticsSink {
	return services.NewHTTPAnalyticsSink()
}

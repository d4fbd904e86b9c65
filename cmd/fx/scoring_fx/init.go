package scoring_fx

import (
	"go.uber.org/fx"

	"credimatch/internal/services"
)

var Module = fx.Provide(provideScoringClient)

func provideScoringClient() services.ScoringClient {
	return services.NewHTTPScoringClient()
}

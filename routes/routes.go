package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Dosada05/league-system/handlers"
	"github.com/Dosada05/league-system/middleware"
	"github.com/Dosada05/league-system/models"
)

// SetupRoutes собирает все маршруты приложения. Чтение открыто всем,
// генерация расписания, назначения и запись результатов требуют роли
// организатора или админа.
func SetupRoutes(
	router *chi.Mux,
	auth *middleware.Authenticator,
	corsOrigins []string,
	tournamentHandler *handlers.TournamentHandler,
	scheduleHandler *handlers.ScheduleHandler,
	standingsHandler *handlers.StandingsHandler,
	resultHandler *handlers.ResultHandler,
	catalogHandler *handlers.CatalogHandler,
	teamHandler *handlers.TeamHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Get("/catalog", catalogHandler.GetCatalog)

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", teamHandler.List)
		r.Get("/{teamID}", teamHandler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(middleware.RequireRole(models.RoleOrganizer, models.RoleAdmin))
			r.Post("/{teamID}/crest", teamHandler.UploadCrest)
		})
	})

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", tournamentHandler.List)
		r.Get("/{tournamentID}", tournamentHandler.GetByID)
		r.Get("/{tournamentID}/schedule", scheduleHandler.Get)
		r.Get("/{tournamentID}/standings", standingsHandler.GetStandings)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(middleware.RequireRole(models.RoleOrganizer, models.RoleAdmin))

			r.Post("/", tournamentHandler.Create)
			r.Post("/{tournamentID}/schedule", scheduleHandler.Generate)
			r.Post("/{tournamentID}/schedule/assign-venues", scheduleHandler.AssignVenues)
			r.Post("/{tournamentID}/schedule/assign-referees", scheduleHandler.AssignReferees)
		})
	})

	router.Group(func(r chi.Router) {
		r.Use(auth.Authenticate)
		r.Use(middleware.RequireRole(models.RoleOrganizer, models.RoleAdmin))

		r.Put("/fixtures/{fixtureID}/result", resultHandler.RecordGroupResult)
		r.Put("/playoff-fixtures/{fixtureID}/result", resultHandler.RecordPlayoffResult)
	})

	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)
}

package routes

import (
	"github.com/galacticos-fc/clubsite/handlers"
	"github.com/galacticos-fc/clubsite/middleware"
	"github.com/galacticos-fc/clubsite/services"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	User     *handlers.UserHandler
	Player   *handlers.PlayerHandler
	Team     *handlers.TeamHandler
	Match    *handlers.MatchHandler
	Rating   *handlers.RatingHandler
	News     *handlers.NewsHandler
	Gallery  *handlers.GalleryHandler
	Settings *handlers.SettingsHandler
	Stats    *handlers.StatsHandler
	Overview *handlers.OverviewHandler
	Contact  *handlers.ContactHandler
	Docs     *handlers.DocsHandler
}

// SetupRoutes mounts three surfaces: the public site, the rating feature for
// authenticated users, and the admin console. Admin routes sit behind a
// store-backed role check, not just the token.
func SetupRoutes(router *chi.Mux, h Handlers, accessService services.AccessService, jwtSecret string, allowedOrigins []string) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/swagger/doc.json", h.Docs.OpenAPISpec)
	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Public site
	router.Post("/auth/register", h.Auth.Register)
	router.Post("/auth/login", h.Auth.Login)

	router.Get("/overview", h.Overview.GetOverview)
	router.Get("/players", h.Player.ListPlayers)
	router.Get("/players/{playerID}", h.Player.GetPlayer)
	router.Get("/matches", h.Match.ListMatches)
	router.Get("/matches/{matchID}", h.Match.GetMatch)
	router.Get("/matches/{matchID}/lineup", h.Match.GetLineup)
	router.Get("/news", h.News.ListPublished)
	router.Get("/news/{articleID}", h.News.GetPublished)
	router.Get("/gallery", h.Gallery.ListItems)
	router.Get("/stats", h.Stats.ListStats)
	router.Get("/settings", h.Settings.GetSettings)
	router.Post("/contact", h.Contact.SubmitMessage)

	// The gate endpoint works for anonymous callers too; it answers with a
	// verdict instead of rejecting.
	router.With(middleware.AuthenticateOptional(jwtSecret)).
		Get("/ratings/access", h.Rating.CheckAccess)

	// Authenticated users
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))

		r.Get("/auth/me", h.Auth.Me)

		r.Route("/ratings", func(r chi.Router) {
			r.Get("/matches", h.Rating.ListRatableMatches)
			r.Get("/matches/{matchID}", h.Rating.GetMatchRatingContext)
			r.Post("/matches/{matchID}", h.Rating.SubmitRatings)
		})
	})

	// Admin console
	router.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))
		r.Use(middleware.RequireAdmin(accessService))

		r.Get("/dashboard", h.Overview.GetDashboardStats)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.User.ListUsers)
			r.Put("/{userID}/role", h.User.SetRole)
			r.Put("/{userID}/rating-authorization", h.User.SetRatingAuthorization)
			r.Delete("/{userID}", h.User.DeleteUser)
		})

		r.Route("/players", func(r chi.Router) {
			r.Post("/", h.Player.CreatePlayer)
			r.Put("/{playerID}", h.Player.UpdatePlayer)
			r.Delete("/{playerID}", h.Player.DeletePlayer)
			r.Post("/{playerID}/photo", h.Player.UploadPhoto)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", h.Team.ListTeams)
			r.Post("/", h.Team.CreateTeam)
			r.Put("/{teamID}", h.Team.UpdateTeam)
			r.Delete("/{teamID}", h.Team.DeleteTeam)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Post("/", h.Match.CreateMatch)
			r.Put("/{matchID}", h.Match.UpdateMatch)
			r.Delete("/{matchID}", h.Match.DeleteMatch)
			r.Post("/{matchID}/lineup", h.Match.AddLineupPlayer)
			r.Delete("/{matchID}/lineup/{playerID}", h.Match.RemoveLineupPlayer)
		})

		r.Route("/news", func(r chi.Router) {
			r.Get("/", h.News.ListAll)
			r.Get("/{articleID}", h.News.GetArticle)
			r.Post("/", h.News.CreateArticle)
			r.Put("/{articleID}", h.News.UpdateArticle)
			r.Delete("/{articleID}", h.News.DeleteArticle)
			r.Post("/{articleID}/image", h.News.UploadFeaturedImage)
		})

		r.Route("/gallery", func(r chi.Router) {
			r.Post("/", h.Gallery.CreateItem)
			r.Put("/{itemID}", h.Gallery.UpdateItem)
			r.Delete("/{itemID}", h.Gallery.DeleteItem)
		})

		r.Route("/stats", func(r chi.Router) {
			r.Put("/", h.Stats.SaveCounters)
			r.Post("/recompute", h.Stats.Recompute)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Put("/", h.Settings.SaveSettings)
			r.Post("/logo", h.Settings.UploadLogo)
		})
	})
}

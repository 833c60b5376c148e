package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/cyberclub/staffhub-backend-go/internal/handler/http/middleware"
	"github.com/cyberclub/staffhub-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	shiftHandler ShiftHandler,
	disciplineHandler DisciplineHandler,
	reportHandler ReportHandler,
	chatHandler ChatHandler,
	allowedOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffhub"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// SSE stream authenticates with its own short-lived token
		r.Get("/chat/stream", chatHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Manager only
			r.Group(func(r chi.Router) {
				r.Use(middleware.ManagerOnly)

				r.Post("/auth/register", authHandler.Register)

				r.Route("/employees", func(r chi.Router) {
					r.Post("/", employeeHandler.Create)
					r.Patch("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Deactivate)
				})

				r.Route("/shifts", func(r chi.Router) {
					r.Post("/", shiftHandler.Create)
					r.Patch("/{date}", shiftHandler.UpdateFigures)
					r.Post("/{date}/status", shiftHandler.Transition)
				})

				r.Route("/discipline", func(r chi.Router) {
					r.Post("/", disciplineHandler.Create)
					r.Patch("/{id}", disciplineHandler.Update)
					r.Post("/{id}/close", disciplineHandler.Close)
					r.Post("/{id}/reopen", disciplineHandler.Reopen)
					r.Delete("/{id}", disciplineHandler.Delete)
				})
			})

			r.Get("/employees", employeeHandler.List)
			r.Get("/employees/{id}", employeeHandler.Get)

			r.Get("/shifts", shiftHandler.ListByMonth)
			r.Get("/shifts/planned", shiftHandler.Planned)
			r.Get("/shifts/{date}", shiftHandler.GetByDate)
			r.Get("/shifts/{date}/earnings", shiftHandler.Earnings)

			r.Get("/discipline/{id}", disciplineHandler.Get)
			r.Get("/discipline", disciplineHandler.ListByEmployee)

			r.Get("/reports/monthly", reportHandler.Monthly)
			r.Get("/reports/monthly/pdf", reportHandler.MonthlyPDF)

			r.Route("/chat", func(r chi.Router) {
				r.Post("/messages", chatHandler.Send)
				r.Get("/messages", chatHandler.Conversation)
				r.Post("/messages/{id}/read", chatHandler.MarkRead)
				r.Get("/stream-token", chatHandler.StreamToken)
			})
		})
	})
	return r
}

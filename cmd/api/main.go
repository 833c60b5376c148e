package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cyberclub/staffhub-backend-go/internal/config"
	appHTTP "github.com/cyberclub/staffhub-backend-go/internal/handler/http"
	"github.com/cyberclub/staffhub-backend-go/internal/pkg/database"
	"github.com/cyberclub/staffhub-backend-go/internal/pkg/jwt"
	"github.com/cyberclub/staffhub-backend-go/internal/pkg/roster"
	"github.com/cyberclub/staffhub-backend-go/internal/pkg/sse"
	"github.com/cyberclub/staffhub-backend-go/internal/repository/postgresql"
	authService "github.com/cyberclub/staffhub-backend-go/internal/service/auth"
	chatService "github.com/cyberclub/staffhub-backend-go/internal/service/chat"
	disciplineService "github.com/cyberclub/staffhub-backend-go/internal/service/discipline"
	earningsService "github.com/cyberclub/staffhub-backend-go/internal/service/earnings"
	employeeService "github.com/cyberclub/staffhub-backend-go/internal/service/employee"
	reportService "github.com/cyberclub/staffhub-backend-go/internal/service/report"
	shiftService "github.com/cyberclub/staffhub-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	caseRepo := postgresql.NewCaseRepository(db)
	messageRepo := postgresql.NewMessageRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()

	cacheTTL, err := time.ParseDuration(cfg.Roster.CacheTTL)
	if err != nil {
		fmt.Println("Invalid ROSTER_CACHE_TTL:", err)
		return
	}
	rosterSource := roster.NewCachedSource(roster.NewCSVSource(cfg.Roster.CSVURL), cacheTTL)

	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, caseRepo, employeeRepo)
	disciplineSvc := disciplineService.NewCaseService(db, caseRepo, employeeRepo, shiftSvc)
	earningsSvc := earningsService.NewEarningsService(shiftRepo, employeeRepo, cfg.PayPlan)
	reportSvc := reportService.NewReportService(shiftRepo, employeeRepo, cfg.PayPlan)
	chatSvc := chatService.NewChatService(messageRepo, userRepo, hub)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc, earningsSvc, rosterSource)
	disciplineHandler := appHTTP.NewDisciplineHandler(disciplineSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	chatHandler := appHTTP.NewChatHandler(chatSvc, jwtSvc, hub)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		employeeHandler,
		shiftHandler,
		disciplineHandler,
		reportHandler,
		chatHandler,
		cfg.App.AllowedOrigins,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

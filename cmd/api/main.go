package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/drivedesk-api/internal/application/service"
	"github.com/sangkips/drivedesk-api/internal/config"
	"github.com/sangkips/drivedesk-api/internal/infrastructure/database"
	"github.com/sangkips/drivedesk-api/internal/infrastructure/delivery"
	"github.com/sangkips/drivedesk-api/internal/infrastructure/repository"
	"github.com/sangkips/drivedesk-api/internal/presentation/http/handler"
	"github.com/sangkips/drivedesk-api/internal/presentation/http/routes"
	"github.com/sangkips/drivedesk-api/pkg/email"
	"github.com/sangkips/drivedesk-api/pkg/oauth"
	"github.com/sangkips/drivedesk-api/pkg/printer"
	"github.com/sangkips/drivedesk-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	invoiceRecordRepo := repository.NewInvoiceRecordRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, jwtManager)
	userService := service.NewUserService(userRepo, roleRepo)
	studentService := service.NewStudentService(studentRepo)
	paymentService := service.NewPaymentService(paymentRepo, studentRepo)
	reportService := service.NewReportService(paymentRepo, studentRepo)
	receiptService := service.NewReceiptService(invoiceRecordRepo, nil)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize invoice delivery collaborators
	escposPrinter := delivery.NewEscposPrinter(receiptService, thermalPrinter, cfg.Printer.Type, cfg.School.Name)
	htmlExporter := delivery.NewHTMLExporter(receiptService, cfg.Export.Dir, cfg.School.Name)
	browserLauncher := delivery.NewBrowserLauncher(htmlExporter)
	invoiceEmailer := delivery.NewSMTPEmailer(emailService, studentRepo, cfg.School.Name)
	deliveryService := service.NewDeliveryService(
		escposPrinter,
		browserLauncher,
		htmlExporter,
		invoiceEmailer,
		delivery.NewLogNotifier(),
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService, googleOAuthService),
		Student: handler.NewStudentHandler(studentService),
		Payment: handler.NewPaymentHandler(paymentService),
		Invoice: handler.NewInvoiceHandler(receiptService, deliveryService),
		Report:  handler.NewReportHandler(reportService),
		User:    handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

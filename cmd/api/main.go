package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "dealer-finance-api/internal/adapter/http"
	"dealer-finance-api/internal/adapter/middleware"
	"dealer-finance-api/internal/adapter/repository/mysql"
	"dealer-finance-api/internal/config"
	rrdomain "dealer-finance-api/internal/domain/raterequest"
	setdomain "dealer-finance-api/internal/domain/settings"
	"dealer-finance-api/internal/infrastructure/cache"
	"dealer-finance-api/internal/infrastructure/db"
	"dealer-finance-api/internal/infrastructure/mail"
	"dealer-finance-api/internal/usecase/quote"
	"dealer-finance-api/internal/usecase/raterequest"
	"dealer-finance-api/internal/usecase/settings"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&rrdomain.RateRequest{}, &setdomain.Setting{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	mailer := mail.New(mail.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.MailFrom,
		StaffTo:  cfg.StaffEmail,
	})

	rateRequests := raterequest.NewUsecase(mysql.NewRateRequestRepository(gdb), mailer)
	siteSettings := settings.NewUsecase(
		mysql.NewSettingRepository(gdb),
		cache.NewStore(rdb),
		settings.StalePolicy{TTL: time.Duration(cfg.SettingsTTLSecs) * time.Second},
	)

	h := httpadp.NewHandler()
	rrh := httpadp.NewRateRequestHandler(rateRequests)
	qh := httpadp.NewQuoteHandler(quote.NewUsecase())
	sh := httpadp.NewSettingsHandler(siteSettings)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// routes
	e.GET("/health", h.Health)

	api := e.Group("/api")
	replayTTL := time.Duration(cfg.ReplayTTLSecs) * time.Second
	api.POST("/save-rate-request", rrh.SaveRateRequest, middleware.RequestReplay(rdb, replayTTL))
	api.GET("/rate-requests", rrh.ListRateRequests)
	api.PUT("/rate-requests", rrh.ReplyRateRequest)
	api.DELETE("/rate-requests", rrh.DeleteRateRequest)
	api.POST("/finance/quote", qh.Quote)
	api.GET("/settings/:key", sh.GetSetting)
	api.PUT("/settings", sh.PutSetting)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

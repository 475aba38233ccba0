package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "bank-loan-management/internal/adapter/http"
	mw "bank-loan-management/internal/adapter/middleware"
	"bank-loan-management/internal/adapter/repository/mysql"
	"bank-loan-management/internal/config"
	userDomain "bank-loan-management/internal/domain/user"
	"bank-loan-management/internal/infrastructure/cache"
	"bank-loan-management/internal/infrastructure/db"
	"bank-loan-management/internal/usecase/approval"
	"bank-loan-management/internal/usecase/auth"
	"bank-loan-management/internal/usecase/funding"
	"bank-loan-management/internal/usecase/loanrequest"
	"bank-loan-management/internal/usecase/payment"
	useruc "bank-loan-management/internal/usecase/user"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		logrus.WithError(err).Fatal("open mysql")
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.WithError(err).Fatal("migrate")
	}

	users := mysql.NewUserRepository(gdb)
	apps := mysql.NewApplicationRepository(gdb)
	agreements := mysql.NewAgreementRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	funds := mysql.NewFundingRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	authUC := auth.NewUsecase(users, cfg.JWTSecret, time.Duration(cfg.TokenTTLMins)*time.Minute)
	fundingUC := funding.NewUsecase(funds, agreements, uow)
	userUC := useruc.NewUsecase(users)
	requestUC := loanrequest.NewUsecase(apps, agreements, cfg.ScopeLoanListing)
	approvalUC := approval.NewUsecase(apps, uow)
	paymentUC := payment.NewUsecase(payments, uow)

	h := httpadp.NewHandler()
	tokenH := httpadp.NewTokenHandler(authUC)
	fundsH := httpadp.NewFundsHandler(fundingUC)
	usersH := httpadp.NewUsersHandler(userUC)
	requestH := httpadp.NewLoanRequestHandler(requestUC)
	approvalH := httpadp.NewApprovalHandler(approvalUC)
	paymentH := httpadp.NewPaymentHandler(paymentUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)
	e.POST("/token/", tokenH.Token)
	e.POST("/register/", tokenH.Register)

	authn := mw.JWTAuth([]byte(cfg.JWTSecret))
	perRoute := []echo.MiddlewareFunc{authn}
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			logrus.WithError(err).Fatal("open redis")
		}
		perRoute = append(perRoute, mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	// mutating returns the auth (+ optional idempotency) chain with the
	// route's role gate appended; the routing table below is the whole
	// authorization policy.
	mutating := func(extra ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
		out := append([]echo.MiddlewareFunc{}, perRoute...)
		return append(out, extra...)
	}

	provider := mw.RequireRoles(userDomain.RoleProvider)
	employee := mw.RequireRoles(userDomain.RoleEmployee)
	customer := mw.RequireRoles(userDomain.RoleCustomer)
	staffOrProvider := mw.RequireRoles(userDomain.RoleProvider, userDomain.RoleEmployee)

	e.POST("/funds/", fundsH.Deposit, mutating(provider)...)
	e.GET("/funds/", fundsH.Overview, authn, staffOrProvider)

	e.GET("/users/", usersH.List, authn, employee)
	e.DELETE("/users/", usersH.Delete, mutating(employee)...)

	e.GET("/loan-requests/", requestH.List, authn)
	e.POST("/loan-requests/", requestH.Create, mutating(customer)...)
	e.DELETE("/loan-requests/", requestH.Delete, mutating()...)

	e.GET("/loan-approves/", approvalH.ListPending, authn, employee)
	e.POST("/loan-approves/", approvalH.Approve, mutating(employee)...)

	e.GET("/loan-payments/", paymentH.List, authn)
	e.POST("/loan-payments/", paymentH.Pay, mutating()...)

	addr := ":" + cfg.AppPort
	logrus.WithField("addr", addr).Info("listening")
	if err := e.Start(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

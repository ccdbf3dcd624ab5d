package router

import (
	"github.com/cinebook/cinebook-api/internal/application"
	"github.com/cinebook/cinebook-api/internal/container"
	"github.com/cinebook/cinebook-api/internal/infrastructure/mongodb"
	handlers "github.com/cinebook/cinebook-api/internal/interface/http"
	"github.com/cinebook/cinebook-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons
// and registers it with the router registry. Called once at startup.
func InitModules(r *Registry) {
	db := container.GetMongo()
	logger := container.GetLogger()

	userRepo := mongodb.NewUserRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)
	movieRepo := mongodb.NewMovieRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)

	userSvc := application.NewUserService(userRepo, bookingRepo, logger)
	adminSvc := application.NewAdminService(adminRepo, container.GetJWT(), logger)
	movieSvc := application.NewMovieService(movieRepo, logger)
	bookingSvc := application.NewBookingService(bookingRepo, movieRepo, userRepo, logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(adminSvc, logger)))
	r.Add(modules.NewMovieModule(handlers.NewMovieHandler(movieSvc, logger), container.GetJWT()))
	r.Add(modules.NewBookingModule(handlers.NewBookingHandler(bookingSvc, logger)))
	r.Add(modules.NewSystemModule())
}

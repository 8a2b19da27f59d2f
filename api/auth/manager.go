package auth

import (
	"watchmarket_server/api/middleware"
	"watchmarket_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger       *gecho.Logger
	authService  *services.AuthService
	emailService *services.EmailService
	mw           *middleware.Middleware
}

func NewAuthRoutesManager(
	logger *gecho.Logger,
	authService *services.AuthService,
	emailService *services.EmailService,
	mw *middleware.Middleware,
) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:       logger,
		authService:  authService,
		emailService: emailService,
		mw:           mw,
	}
}

func (arm *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", arm.HandleLogin)
		r.Post("/signup", arm.HandleSignup)
		r.Post("/logout", arm.HandleLogout)
		r.Post("/forgot-password", arm.HandleForgotPassword)
		r.Get("/status", arm.HandleStatus)

		r.Group(func(r chi.Router) {
			r.Use(arm.mw.UserAuthMiddleware)
			r.Get("/me", arm.HandleMe)
			r.Put("/profile", arm.HandleUpdateProfile)
		})
	})
}

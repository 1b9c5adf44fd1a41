package api

import (
	"net/http"
	"time"
	"trip_map_system/configs"
	"trip_map_system/internal/db/repositories"
	"trip_map_system/internal/mapdata"
	"trip_map_system/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Server wires the domain services to the HTTP surface. The voting,
// group and auth services are nil in static-document mode; their routes
// then answer 503.
type Server struct {
	registry          *mapdata.Registry
	config            configs.MapAPIServerConfig
	authService       services.AuthService
	voteService       services.VoteService
	pollService       services.PollService
	groupService      services.GroupService
	routingService    services.RoutingService
	trackService      services.TrackService
	profileRepository repositories.ProfileRepository
	eventsHandler     http.Handler
	logger            *zap.SugaredLogger
}

type ServerOption func(*Server)

func WithAccountServices(
	authService services.AuthService,
	voteService services.VoteService,
	pollService services.PollService,
	groupService services.GroupService,
	profileRepository repositories.ProfileRepository,
) ServerOption {
	return func(s *Server) {
		s.authService = authService
		s.voteService = voteService
		s.pollService = pollService
		s.groupService = groupService
		s.profileRepository = profileRepository
	}
}

func WithEventsHandler(handler http.Handler) ServerOption {
	return func(s *Server) {
		s.eventsHandler = handler
	}
}

func NewServer(
	registry *mapdata.Registry,
	config configs.MapAPIServerConfig,
	routingService services.RoutingService,
	trackService services.TrackService,
	logger *zap.SugaredLogger,
	options ...ServerOption,
) *Server {
	server := &Server{
		registry:       registry,
		config:         config,
		routingService: routingService,
		trackService:   trackService,
		logger:         logger,
	}

	for _, option := range options {
		option(server)
	}

	return server
}

func (s *Server) accountsEnabled() bool {
	return s.authService != nil
}

func (s *Server) Router() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(s.logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(time.Duration(s.config.Server.RequestTimeout) * time.Second))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api", func(r chi.Router) {
		r.With(s.maybeOptionalAuth()).Get("/map/bootstrap", s.handleBootstrap)
		r.Post("/map/visible", s.handleVisible)
		r.Get("/pins", s.handlePins)
		r.Get("/pins/search", s.handleSearch)
		r.Get("/pins/{id}/track", s.handleTrack)
		r.Post("/routes/plan", s.handlePlanRoute)

		if s.eventsHandler != nil {
			r.Handle("/events", s.eventsHandler)
		}

		if !s.accountsEnabled() {
			r.Group(func(r chi.Router) {
				disabled := func(w http.ResponseWriter, _ *http.Request) {
					writeError(w, http.StatusServiceUnavailable, "accounts are not available in static mode")
				}
				r.HandleFunc("/auth/*", disabled)
				r.HandleFunc("/profile", disabled)
				r.HandleFunc("/votes", disabled)
				r.HandleFunc("/votes/*", disabled)
				r.HandleFunc("/outcomes", disabled)
				r.HandleFunc("/polls", disabled)
				r.HandleFunc("/polls/*", disabled)
				r.HandleFunc("/groups", disabled)
				r.HandleFunc("/groups/*", disabled)
			})
			return
		}

		r.Post("/auth/signup", s.handleSignUp)
		r.Post("/auth/signin", s.handleSignIn)
		r.Post("/auth/refresh", s.handleRefresh)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth(s.authService))

			r.Get("/profile", s.handleGetProfile)
			r.Put("/profile", s.handleUpdateProfile)

			r.Get("/votes", s.handleGetVotes)
			r.Put("/votes", s.handleSubmitVote)
			r.Delete("/votes", s.handleRetractVote)
			r.Get("/votes/tallies", s.handleGetVotes)
			r.Get("/outcomes", s.handleOutcomes)

			r.Get("/polls", s.handleGetPolls)
			r.Post("/polls", s.handleCreatePoll)
			r.Delete("/polls/{id}", s.handleDeletePoll)
			r.Put("/polls/reorder", s.handleReorderPolls)
			r.Put("/polls/{id}/vote", s.handlePollVote)

			r.Post("/groups", s.handleCreateGroup)
			r.Get("/groups/mine", s.handleMyGroups)
			r.Get("/groups/{id}/members", s.handleGroupMembers)
			r.Post("/groups/{id}/join", s.handleJoinGroup)
			r.Post("/groups/{id}/approve", s.handleApproveMember)
			r.Post("/groups/{id}/deny", s.handleDenyMember)
			r.Delete("/groups/{id}/members/{userID}", s.handleRemoveMember)
			r.Delete("/groups/{id}", s.handleDeleteGroup)
			r.Put("/groups/select", s.handleSelectGroup)
		})
	})

	return router
}

func (s *Server) maybeOptionalAuth() func(http.Handler) http.Handler {
	if !s.accountsEnabled() {
		return func(next http.Handler) http.Handler { return next }
	}
	return optionalAuth(s.authService)
}

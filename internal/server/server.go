package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mavesys/foodcourt-api/internal/config"
	"github.com/mavesys/foodcourt-api/internal/graph"
	"github.com/mavesys/foodcourt-api/internal/handler"
	"github.com/mavesys/foodcourt-api/internal/repository"
	"github.com/mavesys/foodcourt-api/internal/usecase"
	"github.com/mavesys/foodcourt-api/shared/auth"
	"github.com/mavesys/foodcourt-api/shared/middleware"
	"github.com/mavesys/foodcourt-api/shared/validation"
)

// Server owns the HTTP surface: the REST API under /api, the GraphQL mirror
// at /graphql and the static upload directory at /uploads.
type Server struct {
	cfg    *config.Config
	logger zerolog.Logger
	http   *http.Server
}

// Dependencies carries everything the route tree needs.
type Dependencies struct {
	DB        *mongo.Database
	Mail      usecase.MailSender
	Validator *validation.Validator
}

func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger, deps Dependencies) (*Server, error) {
	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Secret, cfg.Token.Issuer, cfg.Token.Issuer)

	userRepo := repository.NewUserMongoRepository(ctx, &logger, deps.DB)
	addressRepo := repository.NewAddressMongoRepository(deps.DB)
	orderRepo := repository.NewOrderMongoRepository(deps.DB)
	subscriptionRepo := repository.NewSubscriptionMongoRepository(deps.DB)
	foodRepo := repository.NewFoodMongoRepository(deps.DB)
	itemCategoryRepo := repository.NewCategoryMongoRepository(ctx, &logger, deps.DB, repository.ItemCategoryCollection)
	foodCategoryRepo := repository.NewCategoryMongoRepository(ctx, &logger, deps.DB, repository.FoodCategoryCollection)
	itemRepo := repository.NewItemMongoRepository(deps.DB)
	moodContentRepo := repository.NewMoodContentMongoRepository(ctx, &logger, deps.DB)
	moodActivityRepo := repository.NewMoodActivityMongoRepository(ctx, &logger, deps.DB)

	authUsecase := usecase.NewAuthUsecase(userRepo, jwtAuth, deps.Mail, cfg)
	userUsecase := usecase.NewUserUsecase(userRepo)
	addressUsecase := usecase.NewAddressUsecase(addressRepo)
	orderUsecase := usecase.NewOrderUsecase(orderRepo)
	subscriptionUsecase := usecase.NewSubscriptionUsecase(subscriptionRepo)
	moodActivityUsecase := usecase.NewMoodActivityUsecase(moodActivityRepo)

	uploader, err := handler.NewUploader(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		return nil, err
	}

	authHandler := handler.NewAuthHandler(authUsecase, deps.Validator, logger)
	userHandler := handler.NewUserHandler(userUsecase, deps.Validator, logger)
	addressHandler := handler.NewAddressHandler(addressUsecase, deps.Validator, logger)
	orderHandler := handler.NewOrderHandler(orderUsecase, deps.Validator, logger)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionUsecase, deps.Validator, logger)
	foodHandler := handler.NewFoodHandler(foodRepo, foodCategoryRepo, deps.Validator, logger)
	itemCategoryHandler := handler.NewCategoryHandler(itemCategoryRepo, uploader, logger)
	foodCategoryHandler := handler.NewCategoryHandler(foodCategoryRepo, uploader, logger)
	itemHandler := handler.NewItemHandler(itemRepo, itemCategoryRepo, deps.Validator, logger)
	uploadHandler := handler.NewUploadHandler(uploader, logger)
	moodContentHandler := handler.NewMoodContentHandler(moodContentRepo, deps.Validator, logger)
	moodActivityHandler := handler.NewMoodActivityHandler(moodActivityUsecase, moodActivityRepo, deps.Validator, logger)

	graphHandler, err := graph.NewHandler(userUsecase)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	requireAuth := middleware.RequireAuth(jwtAuth)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints.
		r.Post("/users", userHandler.CreateUser)
		r.Post("/login", authHandler.Login)
		r.Post("/forgot-password", authHandler.ForgotPassword)
		r.Post("/reset-password/{token}", authHandler.ResetPassword)
		r.Post("/upload", uploadHandler.UploadImage)
		r.Get("/item/{id}", itemHandler.GetItem)

		r.Post("/subscription", subscriptionHandler.CreateTemplate)
		r.Get("/subscription", subscriptionHandler.ListSubscriptions)
		r.Get("/subscription/no-user", subscriptionHandler.ListTemplates)
		r.Post("/subscribe", subscriptionHandler.Subscribe)
		r.Get("/subscribe/{userId}", subscriptionHandler.ListUserSubscriptions)

		// Mood content and activity endpoints.
		r.Post("/XMCategory", moodContentHandler.CreateCategory)
		r.Get("/XMCategory", moodContentHandler.ListCategories)
		r.Get("/XMCategory/{id}", moodContentHandler.GetCategory)
		r.Put("/XMCategory/{id}", moodContentHandler.UpdateCategory)
		r.Delete("/XMCategory/{id}", moodContentHandler.DeleteCategory)

		r.Post("/XMItem", moodContentHandler.CreatePhoto)
		r.Get("/XMItem", moodContentHandler.ListPhotos)
		r.Get("/XMItem/{id}", moodContentHandler.GetPhoto)
		r.Put("/XMItem/{id}", moodContentHandler.UpdatePhoto)
		r.Delete("/XMItem/{id}", moodContentHandler.DeletePhoto)

		r.Post("/XMStory", moodContentHandler.CreateStory)
		r.Get("/XMStory", moodContentHandler.ListStories)
		r.Get("/XMStory/{id}", moodContentHandler.GetStory)
		r.Put("/XMStory/{id}", moodContentHandler.UpdateStory)
		r.Delete("/XMStory/{id}", moodContentHandler.DeleteStory)

		r.Post("/XMOnboard", moodContentHandler.CreateOnboard)
		r.Get("/XMOnboard", moodContentHandler.ListOnboards)
		r.Get("/XMReel", moodContentHandler.ListReels)

		r.Post("/XMUser", moodActivityHandler.RegisterUser)
		r.Get("/XMAppOpen", moodActivityHandler.RecordAppOpen)
		r.Post("/XMSwitchService", moodActivityHandler.SetServiceStatus)
		r.Get("/XMSwitchService", moodActivityHandler.GetServiceStatus)
		r.Put("/XMSwitchService", moodActivityHandler.UpdateServiceStatus)

		// Token-protected endpoints.
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/users", userHandler.ListUsers)
			r.Get("/users/{id}", userHandler.GetUser)
			r.Put("/users/{id}", userHandler.UpdateUser)
			r.Delete("/users/{id}", userHandler.DeleteUser)

			r.Post("/addresses", addressHandler.CreateAddress)
			r.Get("/addresses", addressHandler.ListAddresses)
			r.Get("/addresses/user/{userId}", addressHandler.ListAddressesByUser)
			r.Get("/addresses/{id}", addressHandler.GetAddress)
			r.Put("/addresses/{id}", addressHandler.UpdateAddress)
			r.Delete("/addresses/{id}", addressHandler.DeleteAddress)

			r.Post("/order", orderHandler.CreateOrder)
			r.Get("/order/user/{userId}", orderHandler.ListUserOrders)
			r.Put("/order/user/{userId}/{orderId}", orderHandler.UpdateOrder)

			r.Post("/food", foodHandler.CreateFood)
			r.Get("/food", foodHandler.ListFood)
			r.Get("/food/{foodId}", foodHandler.GetFood)
			r.Put("/food/{id}", foodHandler.UpdateFood)

			r.Post("/category", itemCategoryHandler.CreateCategory)
			r.Get("/category", itemCategoryHandler.ListCategories)
			r.Get("/categoryXmlResponse", itemCategoryHandler.ListCategoriesXML)

			r.Post("/foodCategory", foodCategoryHandler.CreateCategory)
			r.Get("/foodCategory", foodCategoryHandler.ListCategories)

			r.Post("/item", itemHandler.CreateItem)
			r.Get("/items", itemHandler.ListItems)
			r.Get("/items/category/{categoryId}", itemHandler.ListItemsByCategory)
			r.Put("/item/{id}", itemHandler.UpdateItem)
			r.Delete("/item/{id}", itemHandler.DeleteItem)
		})
	})

	r.Handle("/graphql", graphHandler)

	fileServer := http.FileServer(http.Dir(cfg.UploadDir))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", fileServer))

	return &Server{
		cfg:    cfg,
		logger: logger,
		http: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
			Handler:      r,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}, nil
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info().Int("port", s.cfg.HTTPPort).Msg("http server listening")
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.http.Shutdown(shutdownCtx)
}

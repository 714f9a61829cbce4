package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"nexx/internal/cache"
	"nexx/internal/handlers"
	"nexx/internal/models"
	"nexx/internal/repositories"
	"nexx/internal/services"
	"nexx/internal/store"
	"nexx/pkg/apiclient"
	"nexx/pkg/rabbitmq"
)

// backends bundles the repository set selected by STORE_BACKEND.
type backends struct {
	products  repositories.ProductRepository
	users     repositories.UserRepository
	carts     repositories.CartRepository
	orders    repositories.OrderRepository
	suppliers repositories.SupplierRepository
	settings  repositories.SettingsRepository
}

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("STORE_BACKEND", "local")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("STORE_PREFIX", "nexx")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "nexx.db")
	viper.SetDefault("JWT_SECRET", "change-me-in-production")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("ORDER_PREFIX", "NEXX")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("API_BASE_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Repositories ---
	repos, err := buildBackends()
	if err != nil {
		log.Fatalf("Failed to initialize %s backend: %v", viper.GetString("STORE_BACKEND"), err)
	}

	// --- Redis Cache (optional) ---
	productCache := cache.New(viper.GetString("REDIS_ADDR"), viper.GetInt("REDIS_DB"))
	if productCache != nil {
		if err := productCache.Ping(context.Background()); err != nil {
			log.Printf("Redis unreachable, continuing without catalog cache: %v", err)
			productCache = nil
		} else {
			defer productCache.Close()
		}
	}

	// --- RabbitMQ Client (optional) ---
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	}

	// --- Services ---
	productService := services.NewProductService(repos.products, productCache)
	authService := services.NewAuthService(repos.users, viper.GetString("JWT_SECRET"))
	cartService := services.NewCartService(repos.carts, repos.products)
	var publisher services.OrderEventPublisher
	if mqClient != nil {
		publisher = mqClient
	}
	orderService := services.NewOrderService(repos.orders, repos.carts, publisher, viper.GetString("ORDER_PREFIX"))
	supplierService := services.NewSupplierService(repos.suppliers, repos.products, 300*time.Millisecond)
	settingsService := services.NewSettingsService(repos.settings)
	analyticsService := services.NewAnalyticsService(repos.orders, repos.products, repos.users)

	seed(productService, repos.users)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, supplierService, authService)
	cartHandler := handlers.NewCartHandler(cartService, authService)
	orderHandler := handlers.NewOrderHandler(orderService, authService)
	supplierHandler := handlers.NewSupplierHandler(supplierService, authService)
	settingsHandler := handlers.NewSettingsHandler(settingsService, authService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, authService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")
	authHandler.RegisterRoutes(apiV1)
	productHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1)
	orderHandler.RegisterRoutes(apiV1)
	supplierHandler.RegisterRoutes(apiV1)
	settingsHandler.RegisterRoutes(apiV1)
	analyticsHandler.RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"time":    time.Now().Format(time.RFC3339),
			"backend": viper.GetString("STORE_BACKEND"),
		})
	})

	// --- RabbitMQ Consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for order events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received order event %s (Tag: %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeOrderEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// buildBackends assembles the repository set for the configured backend.
// "local" keeps every collection in the JSON document store, "database"
// moves the domain collections to GORM, and "remote" serves the catalog
// from an upstream HTTP API. Settings stay in the local store in every
// mode: they are operator-edited singletons, not row data.
func buildBackends() (*backends, error) {
	dataStore, err := store.New(viper.GetString("DATA_DIR"), viper.GetString("STORE_PREFIX"))
	if err != nil {
		return nil, err
	}

	repos := &backends{
		products:  repositories.NewStoreProductRepository(dataStore),
		users:     repositories.NewStoreUserRepository(dataStore),
		carts:     repositories.NewStoreCartRepository(dataStore),
		orders:    repositories.NewStoreOrderRepository(dataStore),
		suppliers: repositories.NewStoreSupplierRepository(dataStore),
		settings:  repositories.NewStoreSettingsRepository(dataStore),
	}

	switch backend := viper.GetString("STORE_BACKEND"); backend {
	case "local":
		log.Println("Using local document store backend")
	case "database":
		db, err := openDatabase()
		if err != nil {
			return nil, err
		}
		repos.products = repositories.NewGORMProductRepository(db)
		repos.users = repositories.NewGORMUserRepository(db)
		repos.carts = repositories.NewGORMCartRepository(db)
		repos.orders = repositories.NewGORMOrderRepository(db)
		repos.suppliers = repositories.NewGORMSupplierRepository(db)
		log.Printf("Using %s database backend", viper.GetString("DATABASE_DRIVER"))
	case "remote":
		client := apiclient.New(viper.GetString("API_BASE_URL"))
		repos.products = repositories.NewRemoteProductRepository(client)
		log.Printf("Using remote catalog backend at %s", viper.GetString("API_BASE_URL"))
	default:
		log.Printf("Unknown STORE_BACKEND %q, falling back to local", backend)
	}

	return repos, nil
}

// openDatabase connects via GORM and migrates the schema.
func openDatabase() (*gorm.DB, error) {
	dsn := viper.GetString("DATABASE_DSN")

	var dialector gorm.Dialector
	switch driver := viper.GetString("DATABASE_DRIVER"); driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Product{},
		&models.User{},
		&models.CartItem{},
		&models.Order{},
		&models.Supplier{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// seed creates the default admin account and a starter catalog on first
// boot so a fresh install is immediately usable. Products go through the
// service so they get slugs and stock flags like admin-created ones.
func seed(productService *services.ProductService, userRepo repositories.UserRepository) {
	if existing, err := userRepo.GetByUsername("bluxs"); err != nil || existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(viper.GetString("ADMIN_PASSWORD")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Error hashing admin password: %v", err)
			return
		}
		admin := models.User{
			Username: "bluxs",
			Email:    "admin@nexx.local",
			Password: string(hash),
			Name:     "Administrator",
			Role:     models.RoleAdmin,
			UserType: models.UserTypeRetail,
			Active:   true,
		}
		if err := userRepo.Create(&admin); err != nil {
			log.Printf("Error seeding admin user: %v", err)
		} else {
			log.Printf("Seeded admin user: %s", admin.Username)
		}
	}

	existing, err := productService.GetAllProducts(models.ProductFilter{})
	if err != nil || len(existing) > 0 {
		return
	}

	products := []models.Product{
		{
			Name:          "JCB 3CX Hydraulic Pump",
			Description:   "Main hydraulic pump for JCB 3CX backhoe loaders",
			PartNumber:    "20/925592",
			Brand:         "JCB",
			Category:      "Hydraulics",
			BasePrice:     1200.00,
			StockQuantity: 4,
		},
		{
			Name:          "JCB Engine Oil Filter",
			Description:   "Spin-on oil filter for DieselMax engines",
			PartNumber:    "320/04133A",
			Brand:         "JCB",
			Category:      "Filters",
			BasePrice:     18.50,
			StockQuantity: 120,
		},
		{
			Name:          "JCB Bucket Tooth",
			Description:   "Replacement digging tooth for excavator buckets",
			PartNumber:    "531/03205",
			Brand:         "JCB",
			Category:      "Ground Engaging",
			BasePrice:     42.00,
			StockQuantity: 60,
		},
	}

	for i := range products {
		if err := productService.CreateProduct(&products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].Name, err)
		} else {
			log.Printf("Seeded product: %s (ID: %s)", products[i].Name, products[i].ID)
		}
	}
}

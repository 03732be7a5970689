package main

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/wichananm65/printvogue-backend/internal/cart"
	"github.com/wichananm65/printvogue-backend/internal/category"
	"github.com/wichananm65/printvogue-backend/internal/checkout"
	"github.com/wichananm65/printvogue-backend/internal/config"
	"github.com/wichananm65/printvogue-backend/internal/function"
	"github.com/wichananm65/printvogue-backend/internal/logging"
	"github.com/wichananm65/printvogue-backend/internal/notification"
	"github.com/wichananm65/printvogue-backend/internal/order"
	"github.com/wichananm65/printvogue-backend/internal/product"
	"github.com/wichananm65/printvogue-backend/internal/search"
	"github.com/wichananm65/printvogue-backend/internal/session"
	"github.com/wichananm65/printvogue-backend/internal/user"
	"github.com/wichananm65/printvogue-backend/internal/wishlist"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	catalog, err := loadCatalog(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to load catalog")
	}
	productService := product.NewService(product.NewInMemoryRepository(catalog))

	db := openDB(cfg, log)
	if db != nil {
		defer db.Close()
	}
	stores := newStores(db, productService, log)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(requestid.New())
	setupCORS(app)
	app.Use(logging.Middleware(log))
	app.Use(session.Middleware())

	// catalog: category routes first so /product/category is not read as a product id
	category.NewHandler(category.NewService(productService)).RegisterPublicRoutes(app)
	product.NewHandler(productService).RegisterPublicRoutes(app)

	searchStats := search.NewStats()
	searchHandler := search.NewHandler(
		search.NewEngine(productService),
		searchStats,
		search.NewRecorder(searchStats, search.DebounceDelay),
		search.NewOverlays(),
	)
	searchHandler.RegisterPublicRoutes(app)

	cartService := cart.NewService(stores.carts, productService)
	cart.NewHandler(cartService).RegisterSessionRoutes(app)
	wishlist.NewHandler(wishlist.NewService(stores.wishlists, productService, cartService)).RegisterSessionRoutes(app)

	emailService := notification.NewService(
		notification.NewResendClient(cfg.ResendBaseURL, cfg.ResendAPIKey, cfg.HTTPClientTimeout),
		cfg.EmailFrom, cfg.StoreOwnerEmail, log,
	)
	orderService := order.NewService(stores.orders, emailService, cfg.StoreOwnerEmail, log)
	var creator checkout.OrderCreator = orderService

	// order creation and email sending run in-process unless FUNCTIONS_BASE_URL
	// points at a deployed function host
	if cfg.FunctionsBaseURL != "" {
		fn := function.NewClient(cfg.FunctionsBaseURL, cfg.ServiceRoleKey, cfg.HTTPClientTimeout)
		orderService = order.NewService(stores.orders, notification.NewFunctionNotifier(fn), cfg.StoreOwnerEmail, log)
		creator = order.NewRemoteCreator(fn)
		log.WithField("functions_base_url", cfg.FunctionsBaseURL).Info("using remote functions")
	}

	checkoutOrchestrator := checkout.NewOrchestrator(creator, cartService, cfg.CartClearDelay, log)
	checkout.NewHandler(checkoutOrchestrator).RegisterSessionRoutes(app)

	functions := app.Group("/functions/v1", function.RequireServiceKey(cfg.ServiceRoleKey))
	orderHandler := order.NewHandler(orderService)
	orderHandler.RegisterFunctionRoutes(functions)
	notification.NewHandler(emailService).RegisterFunctionRoutes(functions)

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is not set")
	}
	userService := user.NewService(stores.users, cfg.JWTSecret)
	if err := userService.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.WithError(err).Fatal("failed to seed admin account")
	}
	userHandler := user.NewHandler(userService)
	userHandler.RegisterPublicRoutes(app)

	// everything registered below requires a token
	app.Use(jwtware.New(jwtware.Config{SigningKey: []byte(cfg.JWTSecret)}))
	userHandler.RegisterProtectedRoutes(app)

	admin := app.Group("/api/v1/admin", user.RequireAdmin())
	orderHandler.RegisterAdminRoutes(admin)
	searchHandler.RegisterAdminRoutes(admin)
	userHandler.RegisterAdminRoutes(admin)

	log.WithField("addr", cfg.Addr).Info("starting server")
	if err := app.Listen(cfg.Addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func loadCatalog(cfg config.Config) ([]product.Product, error) {
	if cfg.CatalogFile != "" {
		return product.LoadCatalogFile(cfg.CatalogFile)
	}
	return product.DefaultCatalog()
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, " + session.HeaderName,
		ExposeHeaders: session.HeaderName,
	}))
}

// openDB returns nil when DATABASE_URL is unset; every store then runs in
// memory.
func openDB(cfg config.Config, log logrus.FieldLogger) *sql.DB {
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL is not set, using in-memory stores")
		return nil
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}
	if err := db.Ping(); err != nil {
		log.WithError(err).Fatal("failed to reach database")
	}
	return db
}

type stores struct {
	carts     cart.Repository
	wishlists wishlist.Repository
	orders    order.Repository
	users     user.Repository
}

func newStores(db *sql.DB, products product.ServiceInterface, log logrus.FieldLogger) stores {
	if db == nil {
		return stores{
			carts:     cart.NewInMemoryRepository(),
			wishlists: wishlist.NewInMemoryRepository(),
			orders:    order.NewInMemoryRepository(),
			users:     user.NewInMemoryRepository(nil),
		}
	}

	carts := cart.NewPostgresRepository(db)
	wishlists := wishlist.NewPostgresRepository(db, products)
	orders := order.NewPostgresRepository(db)
	users := user.NewPostgresRepository(db)
	for _, s := range []struct {
		name   string
		ensure func() error
	}{
		{"carts", carts.EnsureSchema},
		{"wishlists", wishlists.EnsureSchema},
		{"orders", orders.EnsureSchema},
		{"users", users.EnsureSchema},
	} {
		if err := s.ensure(); err != nil {
			log.WithError(err).WithField("store", s.name).Fatal("failed to ensure schema")
		}
	}
	return stores{carts: carts, wishlists: wishlists, orders: orders, users: users}
}

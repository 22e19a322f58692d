package di

import (
	"gorm.io/gorm"

	"shop_backend/internal/app/router"
	authadapters "shop_backend/internal/feature/auth/adapters"
	authhandler "shop_backend/internal/feature/auth/transport/handler"
	authusecase "shop_backend/internal/feature/auth/usecase"
	cartadapters "shop_backend/internal/feature/cart/adapters"
	carthandler "shop_backend/internal/feature/cart/transport/handler"
	cartusecase "shop_backend/internal/feature/cart/usecase"
	producthandler "shop_backend/internal/feature/catalog/transport/handler"
	catalogusecase "shop_backend/internal/feature/catalog/usecase"
	checkouthandler "shop_backend/internal/feature/checkout/transport/handler"
	checkoutusecase "shop_backend/internal/feature/checkout/usecase"
	"shop_backend/internal/platform/config"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/platform/password"
)

// Deps are the long-lived resources the handlers are built from.
type Deps struct {
	Config   config.Config
	DB       *gorm.DB
	Products catalogusecase.ProductRepository
	Payments checkoutusecase.PaymentGateway
	// Hasher defaults to bcrypt at its default cost.
	Hasher *password.Hasher
}

// NewHandlers wires repositories, usecases and handlers for every feature.
func NewHandlers(d Deps) router.Handlers {
	hasher := d.Hasher
	if hasher == nil {
		hasher = password.NewHasher(0)
	}
	issuer := jwtmw.NewIssuer(d.Config.JWT.Secret, d.Config.JWT.TTL)

	// Repository
	userRepo := authadapters.NewUserRepository(d.DB)
	cartRepo := cartadapters.NewCartRepository(d.DB)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, issuer)
	productUC := catalogusecase.NewProductUsecase(d.Products)
	cartUC := cartusecase.NewCartUsecase(cartRepo, d.Products, cartusecase.Options{
		StrictUpdate: d.Config.StrictCartUpdate,
	})
	checkoutUC := checkoutusecase.NewCheckoutUsecase(cartUC, d.Payments, checkoutusecase.Options{
		FrontendURL:    d.Config.FrontendURL,
		AllowedOrigins: d.Config.CORSOrigins,
	})

	// Handler
	return router.Handlers{
		Auth:     authhandler.NewAuthHandler(authUC),
		Products: producthandler.NewProductHandler(productUC),
		Cart:     carthandler.NewCartHandler(cartUC),
		Checkout: checkouthandler.NewCheckoutHandler(checkoutUC),
		Gate:     jwtmw.NewGate(issuer),
	}
}

package router

import (
	"github.com/llOrtegall/backend-app-full-stack/internal/application"
	"github.com/llOrtegall/backend-app-full-stack/internal/container"
	pginfra "github.com/llOrtegall/backend-app-full-stack/internal/infrastructure/postgres"
	"github.com/llOrtegall/backend-app-full-stack/internal/infrastructure/security"
	storageinfra "github.com/llOrtegall/backend-app-full-stack/internal/infrastructure/storage"
	handlers "github.com/llOrtegall/backend-app-full-stack/internal/interface/http"
	"github.com/llOrtegall/backend-app-full-stack/internal/router/modules"
)

func buildUserModule() *modules.UserModule {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewUserService(
		repo,
		security.NewBcryptEncryptor(),
		container.GetRabbitPub(),
		container.GetLogger(),
	)
	return modules.NewUserModule(handlers.NewUserHandler(svc, container.GetLogger()))
}

func buildProductModule() *modules.ProductModule {
	repo := pginfra.NewProductRepository(container.GetPGPool())
	store := storageinfra.NewGCSFileStorage(container.GetGCS(), container.GetConfig().GCSBucket)
	svc := application.NewProductService(
		repo,
		store,
		container.GetRedis(),
		container.GetES(),
		container.GetConfig().ESProductsIndex,
		container.GetLogger(),
	)
	return modules.NewProductModule(handlers.NewProductHandler(svc, container.GetLogger()))
}

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup.
func InitModules(r *Registry) {
	r.Add(buildUserModule())
	r.Add(buildProductModule())
	if cfg := container.GetConfig(); cfg != nil && cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}

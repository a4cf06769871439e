package infra

import (
	"database/sql"

	"logistics/infra/database"
	"logistics/infra/database/db_postgresql"
	"logistics/infra/logger"
	"logistics/infra/token"
	"logistics/internal/cost"
	"logistics/internal/route"
	"logistics/internal/tariff"
	"logistics/internal/truck"
	"logistics/internal/warehouse"
	"logistics/pkg/requests"
	bucket "logistics/pkg/s3"
	"logistics/pkg/routing"

	"go.uber.org/zap"
)

type ContainerDI struct {
	Config              Config
	ConnDB              *sql.DB
	Logger              *zap.Logger
	PasetoMaker         *token.Maker
	RoutingProvider     routing.Provider
	RequestsClient      *requests.Client
	ReportUploader      *bucket.Uploader
	HandlerTariff       *tariff.Handler
	ServiceTariff       *tariff.Service
	RepositoryTariff    *tariff.Repository
	HandlerTruck        *truck.Handler
	ServiceTruck        *truck.Service
	RepositoryTruck     *truck.Repository
	HandlerWarehouse    *warehouse.Handler
	ServiceWarehouse    *warehouse.Service
	RepositoryWarehouse *warehouse.Repository
	HandlerRoute        *route.Handler
	ServiceRoute        *route.Service
	RepositoryRoute     *route.Repository
	HandlerCost         *cost.Handler
	ServiceCost         *cost.Service
	RepositoryCost      *cost.Repository
}

func NewContainerDI(config Config) *ContainerDI {
	container := &ContainerDI{Config: config}
	container.db()
	container.buildPkg()
	container.buildRepository()
	container.buildService()
	container.buildHandler()
	return container
}

func (c *ContainerDI) db() {
	dbConfig := database.Config{
		Host:        c.Config.DBHost,
		Port:        c.Config.DBPort,
		User:        c.Config.DBUser,
		Password:    c.Config.DBPassword,
		Database:    c.Config.DBDatabase,
		SSLMode:     c.Config.DBSSLMode,
		Driver:      c.Config.DBDriver,
		Environment: c.Config.Environment,
	}
	c.ConnDB = db_postgresql.NewConnection(&dbConfig)
}

func (c *ContainerDI) buildPkg() {
	c.Logger = logger.NewLogger(c.Config.Environment)

	maker, err := token.NewPasetoMaker(c.Config.SignatureToken)
	if err != nil {
		panic(err)
	}
	c.PasetoMaker = &maker

	c.RoutingProvider = c.routingProvider()
	c.RequestsClient = requests.NewClient(c.Config.RequestsUrl)
	c.ReportUploader = bucket.NewUploader(
		c.Config.AwsAccessKeyID,
		c.Config.AwsSecretAccessKey,
		c.Config.AwsRegion,
		c.Config.AwsBucketName,
	)
}

// routingProvider picks the routing engine from configuration. OSRM is
// the default; Google Directions is opt-in. When a Redis address is set
// every engine gets the distance cache in front of it.
func (c *ContainerDI) routingProvider() routing.Provider {
	var provider routing.Provider
	if c.Config.RoutingProvider == "google" {
		googleClient, err := routing.NewGoogleClient(c.Config.GoogleMapsKey)
		if err != nil {
			panic(err)
		}
		provider = googleClient
	} else {
		provider = routing.NewOsrmClient(c.Config.OsrmUrl)
	}

	if c.Config.RedisUrl != "" {
		provider = routing.NewCachedProvider(provider, c.Config.RedisUrl)
	}
	return provider
}

func (c *ContainerDI) buildRepository() {
	c.RepositoryTariff = tariff.NewTariffsRepository(c.ConnDB)
	c.RepositoryTruck = truck.NewTrucksRepository(c.ConnDB)
	c.RepositoryWarehouse = warehouse.NewWarehousesRepository(c.ConnDB)
	c.RepositoryRoute = route.NewRoutesRepository(c.ConnDB)
	c.RepositoryCost = cost.NewCostsRepository(c.ConnDB)
}

func (c *ContainerDI) buildService() {
	c.ServiceTariff = tariff.NewTariffsService(c.RepositoryTariff)
	c.ServiceTruck = truck.NewTrucksService(c.RepositoryTruck)
	c.ServiceWarehouse = warehouse.NewWarehousesService(c.RepositoryWarehouse)
	c.ServiceRoute = route.NewRoutesService(
		c.RepositoryRoute,
		c.ServiceTariff,
		c.ServiceWarehouse,
		c.ServiceTruck,
		c.RoutingProvider,
		c.RequestsClient,
		c.Logger,
	)
	c.ServiceCost = cost.NewCostsService(
		c.RepositoryCost,
		c.ServiceTruck,
		c.RequestsClient,
		c.ReportUploader,
		c.Logger,
	)
}

func (c *ContainerDI) buildHandler() {
	c.HandlerTariff = tariff.NewTariffsHandler(c.ServiceTariff)
	c.HandlerTruck = truck.NewTrucksHandler(c.ServiceTruck)
	c.HandlerWarehouse = warehouse.NewWarehousesHandler(c.ServiceWarehouse)
	c.HandlerRoute = route.NewRoutesHandler(c.ServiceRoute)
	c.HandlerCost = cost.NewCostsHandler(c.ServiceCost)
}

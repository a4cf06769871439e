package cmd

import (
	"context"
	"time"

	"logistics/infra"
	"logistics/infra/apperr"
	_midlleware "logistics/infra/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func StartAPI(ctx context.Context, container *infra.ContainerDI) {
	e := echo.New()
	e.HTTPErrorHandler = apperr.EchoErrorHandler

	go func() {
		for {
			select {
			case <-ctx.Done():
				if err := e.Shutdown(ctx); err != nil {
					panic(err)
				}
				return
			default:
				time.Sleep(1 * time.Second)
			}
		}
	}()

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: middleware.DefaultCORSConfig.AllowMethods,
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	checkAuthorization := _midlleware.CheckAuthorization(*container.PasetoMaker)

	e.POST("/routes", container.HandlerRoute.CreateRouteHandler, checkAuthorization)
	e.GET("/routes/:id", container.HandlerRoute.GetRouteHandler, checkAuthorization)
	e.GET("/routes/:id/estimate", container.HandlerCost.GetEstimateHandler, checkAuthorization)
	e.POST("/routes/:id/finalize", container.HandlerCost.FinalizeHandler, checkAuthorization)
	e.POST("/routes/:id/report", container.HandlerCost.ExportReportHandler, checkAuthorization)

	e.POST("/segments/:id/assign", container.HandlerRoute.AssignTruckHandler, checkAuthorization)
	e.POST("/segments/:id/start", container.HandlerRoute.StartSegmentHandler, checkAuthorization)
	e.POST("/segments/:id/finish", container.HandlerRoute.FinishSegmentHandler, checkAuthorization)

	e.POST("/trucks", container.HandlerTruck.CreateTruckHandler)
	e.PUT("/trucks", container.HandlerTruck.UpdateTruckHandler)
	e.DELETE("/trucks/:id", container.HandlerTruck.DeleteTruckHandler)
	e.GET("/trucks", container.HandlerTruck.GetTrucksHandler)
	e.GET("/trucks/eligible", container.HandlerTruck.GetEligibleTrucksHandler)

	e.POST("/tariffs", container.HandlerTariff.CreateTariffHandler)
	e.GET("/tariffs", container.HandlerTariff.GetTariffsHandler)
	e.DELETE("/tariffs/:id", container.HandlerTariff.DeleteTariffHandler)
	e.GET("/tariffs/band", container.HandlerTariff.GetBandHandler)

	e.POST("/warehouses", container.HandlerWarehouse.CreateWarehouseHandler)
	e.PUT("/warehouses", container.HandlerWarehouse.UpdateWarehouseHandler)
	e.DELETE("/warehouses/:id", container.HandlerWarehouse.DeleteWarehouseHandler)
	e.GET("/warehouses", container.HandlerWarehouse.GetWarehousesHandler)

	e.Logger.Fatal(e.Start(container.Config.ServerPort))
}

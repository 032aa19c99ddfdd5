package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"hours-dashboard/config"
	"hours-dashboard/initializers"

	log "github.com/sirupsen/logrus"
)

//go:generate swag init --parseDependency --outputTypes go,json -g main.go -o docs

// The mock REST API the dashboard talks to when Api.UseMockData is off.
func main() {
	conf, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("unable to load config")
	}
	loggerConfig := initializers.InitLogger(conf.Log.Level)

	app, err := initializers.InitServerApp(conf, loggerConfig)
	if err != nil {
		log.WithError(err).Fatal("unable to start mock api")
	}

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-c
		log.Info("Gracefully shutting down...")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", conf.App.ListenAddr, conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}

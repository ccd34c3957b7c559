package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/errgroup"

	"storefront/internal/catalog"
	controllers "storefront/internal/controllers/http"
	"storefront/internal/events"
	"storefront/internal/referral"
	"storefront/internal/services"
)

const (
	defaultOrderTagURL      = "https://tag-demo.mention-me.com/api/v2/order/mm1c6ad7e0"
	defaultReferrerOfferURL = "https://tag-staging2.mention-me.com/api/v2/referreroffer/mm1c6ad7e0?situation=referrer_product_page&implementation=link"
	defaultRefereeFindURL   = "https://tag-staging2.mention-me.com/api/v2/refereefind/mm1c6ad7e0?situation=referee_product_page&implementation=link"
)

func main() {
	// The static catalog is the default; a remote catalog (with a redis
	// read-through cache when available) replaces it only when configured.
	var repo catalog.Repository = catalog.NewStaticCatalog()
	if baseURL := os.Getenv("CATALOG_SERVICE_URL"); baseURL != "" {
		repo = catalog.NewRemoteCatalog(baseURL, 2*time.Second)
		if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
			rdb := redis.NewClient(&redis.Options{
				Addr:         redisHost + ":6379",
				DB:           0,
				DialTimeout:  2 * time.Second,
				ReadTimeout:  500 * time.Millisecond,
				WriteTimeout: 500 * time.Millisecond,
			})
			repo = catalog.NewCachedCatalog(repo, rdb)
		}
	}

	var publisher events.PublisherInterface
	if amqpURL := os.Getenv("RABBITMQ_URL"); amqpURL != "" {
		pub, err := events.NewPublisher(amqpURL, "storefront.exchange")
		if err != nil {
			log.Fatalf("failed to init publisher: %v", err)
		}
		defer pub.Close()
		publisher = pub
	}

	service := services.NewCheckoutService(repo, services.NewRandomOrderNumberGenerator(), publisher)

	tagURL := os.Getenv("ORDER_TAG_URL")
	if tagURL == "" {
		tagURL = defaultOrderTagURL
	}
	dispatcher := referral.NewTagDispatcher(tagURL, 5*time.Second)
	defer dispatcher.Close()

	handler := controllers.NewHandler(service, dispatcher, controllers.ScriptURLs{
		ReferrerOffer: defaultReferrerOfferURL,
		RefereeFind:   defaultRefereeFindURL,
	})

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.LoadHTMLGlob("templates/*.html")

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{Addr: ":" + port, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Starting storefront on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server run: %v", err)
	}
}

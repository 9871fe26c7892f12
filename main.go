package main

import (
	"context"
	"os"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/uicmedicare/medicare-BE/api"
	db "github.com/uicmedicare/medicare-BE/internal/db/sqlc"
	"github.com/uicmedicare/medicare-BE/internal/event"
	"github.com/uicmedicare/medicare-BE/internal/feed"
	"github.com/uicmedicare/medicare-BE/internal/mailer"
	"github.com/uicmedicare/medicare-BE/internal/stockmonitor"
	"github.com/uicmedicare/medicare-BE/internal/util"
	"github.com/uicmedicare/medicare-BE/internal/worker"

	"github.com/rs/zerolog/log"

	_ "github.com/uicmedicare/medicare-BE/docs"
)

//	@title			UIC MediCare API
//	@version		1.0.0
//	@description	API documentation for the university clinic and medicine inventory backend

//	@host		localhost:8080
//	@BasePath	/v1
//	@schemes	http https

//	@securityDefinitions.apikey	accessToken
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}

	log.Info().Msg("configurations loaded successfully ✅")

	// Create connection pool
	connPool, err := pgxpool.New(context.Background(), config.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to validate db connection string 😣")
	}

	pingErr := connPool.Ping(context.Background())
	if pingErr != nil {
		log.Fatal().Err(pingErr).Msg("failed to connect to db 😣")
	}
	log.Info().Msg("connected to db ✅")

	store := db.NewStore(connPool)

	redisDb := redis.NewClient(&redis.Options{
		Addr:     config.RedisServerAddress,
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	mailService, err := mailer.NewGmailSender(config.GmailSMTPUsername, config.GmailSMTPPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create mailer service 😣")
	}

	redisOpt := asynq.RedisClientOpt{
		Addr: config.RedisServerAddress,
	}
	taskDistributor := worker.NewTaskDistributor(redisOpt)

	eventSender := event.NewSSEServer()
	go eventSender.Run()

	go runTaskProcessor(redisOpt, store, mailService, eventSender)

	feedHub := buildFeedHub(config, redisDb, eventSender)

	monitor, err := stockmonitor.NewMonitor(store, taskDistributor, feedHub, feed.NewRedisSeenStore(redisDb),
		config.LowStockAlertEmail, config.FeedPollInterval, config.LowStockScanInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create stock monitor 😣")
	}
	if err = monitor.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start stock monitor 😣")
	}
	log.Info().Msg("stock monitor started successfully ✅")

	runHTTPServer(&config, store, taskDistributor, mailService, feedHub, eventSender)
}

// buildFeedHub wires the per-branch feed aggregators: an HTTP client looping
// back to this API's own branch endpoints, a redis-backed seen store, and an
// alert hook pushing low stock toasts over SSE.
func buildFeedHub(config util.Config, redisDb *redis.Client, eventSender event.EventSender) *feed.Hub {
	remote := feed.NewClient(config.FeedAPIBaseURL)
	seen := feed.NewRedisSeenStore(redisDb)

	alert := func(branchID int64, candidate feed.Candidate) {
		eventSender.Broadcast(event.Event{
			Topic: event.BranchTopic(branchID),
			Type:  event.EventTypeLowStockAlert,
			Data: map[string]any{
				"key":     candidate.ID,
				"message": candidate.Message,
			},
		})
	}

	return feed.NewHub(remote, seen, alert)
}

func runTaskProcessor(redisOpt asynq.RedisClientOpt, store db.Store, mailService mailer.AlertSender, eventSender event.EventSender) {
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, store, mailService, eventSender)
	log.Info().Msg("task processor created successfully ✅")

	if err := taskProcessor.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start task processor 😣")
	}
}

func runHTTPServer(config *util.Config, store db.Store, taskDistributor worker.TaskDistributor, mailService mailer.AlertSender, feedHub *feed.Hub, eventSender event.EventSender) {
	server, err := api.NewServer(store, taskDistributor, config, mailService, feedHub, eventSender)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server 😣")
	}

	err = server.Start(config.HTTPServerAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
	}
}

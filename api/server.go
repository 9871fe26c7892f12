package api

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	db "github.com/uicmedicare/medicare-BE/internal/db/sqlc"
	"github.com/uicmedicare/medicare-BE/internal/event"
	"github.com/uicmedicare/medicare-BE/internal/feed"
	"github.com/uicmedicare/medicare-BE/internal/mailer"
	"github.com/uicmedicare/medicare-BE/internal/token"
	"github.com/uicmedicare/medicare-BE/internal/util"
	"github.com/uicmedicare/medicare-BE/internal/worker"
	"google.golang.org/api/idtoken"
)

type Server struct {
	router                 *gin.Engine
	dbStore                db.Store
	tokenMaker             token.Maker
	config                 *util.Config
	googleIDTokenValidator *idtoken.Validator
	mailService            mailer.AlertSender
	taskDistributor        worker.TaskDistributor
	feedHub                *feed.Hub
	eventSender            event.EventSender
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(store db.Store, taskDistributor worker.TaskDistributor, config *util.Config, mailService mailer.AlertSender, feedHub *feed.Hub, eventSender event.EventSender) (*Server, error) {
	tokenMaker, err := token.NewJWTMaker(config.TokenSecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token maker: %w", err)
	}
	log.Info().Msg("Token maker created successfully ✅")

	googleIDTokenValidator, err := idtoken.NewValidator(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to create google id token validator: %w", err)
	}

	server := &Server{
		dbStore:                store,
		tokenMaker:             tokenMaker,
		config:                 config,
		googleIDTokenValidator: googleIDTokenValidator,
		mailService:            mailService,
		taskDistributor:        taskDistributor,
		feedHub:                feedHub,
		eventSender:            eventSender,
	}

	server.setupRouter()
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	gin.ForceConsoleColor()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/v1")

	v1.POST("/tokens/verify", server.verifyAccessToken)

	v1.POST("/auth/login", server.loginUser)
	v1.POST("/auth/google-login", server.loginUserWithGoogle)

	userGroup := v1.Group("/users", authMiddleware(server.tokenMaker))
	{
		userGroup.GET("me", server.getCurrentUser)

		userGroup.Use(requiredAdminRole())
		userGroup.POST("", server.createUser)
		userGroup.GET("", server.listUsers)
	}

	patientGroup := v1.Group("/patients", authMiddleware(server.tokenMaker))
	{
		patientGroup.POST("", server.createPatient)
		patientGroup.GET("", server.listPatients)
		patientGroup.GET(":patientID", server.getPatient)
		patientGroup.PUT(":patientID", server.updatePatient)
		patientGroup.DELETE(":patientID", requiredAdminRole(), server.deletePatient)
	}

	consultationGroup := v1.Group("/consultations", authMiddleware(server.tokenMaker))
	{
		consultationGroup.POST("", server.createConsultation)
		consultationGroup.GET("", server.listConsultations)
		consultationGroup.GET(":consultationID", server.getConsultation)
		consultationGroup.PATCH(":consultationID/vitals", server.updateConsultationVitals)
		consultationGroup.PATCH(":consultationID/refer", server.referConsultation)
		consultationGroup.PATCH(":consultationID/diagnose", server.diagnoseConsultation)
		consultationGroup.PATCH(":consultationID/dispense", server.dispenseMedicine)
		consultationGroup.PATCH(":consultationID/complete", server.completeConsultation)
	}

	medicineGroup := v1.Group("/medicines", authMiddleware(server.tokenMaker))
	{
		medicineGroup.GET("", server.listMedicines)
		medicineGroup.GET(":medicineID", server.getMedicine)

		medicineGroup.Use(requiredAdminRole())
		medicineGroup.POST("", server.createMedicine)
		medicineGroup.PATCH(":medicineID", server.updateMedicine)
	}

	branchGroup := v1.Group("/branches")
	{
		branchGroup.GET("", server.listBranches)
		branchGroup.GET(":branchID", server.getBranch)

		// Feed source endpoints consumed by the aggregation client.
		branchGroup.GET(":branchID/notifications", server.listBranchNotifications)
		branchGroup.GET(":branchID/notifications/low-stock", server.listLowStockNotifications)
		branchGroup.GET(":branchID/requests/pending", server.listPendingBranchRequests)
		branchGroup.GET(":branchID/requests/history", server.listBranchRequestHistory)
		branchGroup.POST(":branchID/notifications/mark-read", server.markBranchNotificationsRead)

		branchGroup.GET(":branchID/events", server.streamBranchEvents)

		authedBranchGroup := branchGroup.Group("", authMiddleware(server.tokenMaker))
		{
			authedBranchGroup.GET(":branchID/inventory", server.listBranchInventory)
			authedBranchGroup.GET(":branchID/inventory/low-stock", server.listLowStockInventory)
			authedBranchGroup.POST(":branchID/stock-in", server.stockIn)
			authedBranchGroup.POST(":branchID/stock-out", server.stockOut)
			authedBranchGroup.GET(":branchID/stock-batches", server.listStockBatches)

			authedBranchGroup.POST(":branchID/requests", server.createBranchRequest)

			authedBranchGroup.GET(":branchID/feed", server.getBranchFeed)
			authedBranchGroup.POST(":branchID/feed/open", server.openBranchFeed)
			authedBranchGroup.POST(":branchID/feed/requests/:requestID/approve", server.resolveFeedRequest)
			authedBranchGroup.POST(":branchID/feed/requests/:requestID/reject", server.resolveFeedRequest)

			authedBranchGroup.GET(":branchID/reports/consultations", server.reportConsultations)
			authedBranchGroup.GET(":branchID/reports/stock-movement", server.reportStockMovement)
		}

		adminBranchGroup := branchGroup.Group("", authMiddleware(server.tokenMaker), requiredAdminRole())
		{
			adminBranchGroup.POST("", server.createBranch)
			adminBranchGroup.PUT(":branchID", server.updateBranch)
		}
	}

	branchRequestGroup := v1.Group("/branch-requests")
	{
		branchRequestGroup.GET(":requestID", authMiddleware(server.tokenMaker), server.getBranchRequest)

		// Resolution is also called by the feed aggregation client, which
		// carries the acting user in the request body instead of a token.
		branchRequestGroup.PATCH(":requestID/approve", server.approveBranchRequest)
		branchRequestGroup.PATCH(":requestID/reject", server.rejectBranchRequest)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server.router = router
	return router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

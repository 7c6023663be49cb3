package routes

import (
	"hotelflow/constants"
	"hotelflow/controllers"
	middlewares "hotelflow/middleware"
	"hotelflow/services"
	"hotelflow/services/logger"
	"hotelflow/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires every HTTP endpoint. The guest group is public by
// design: it sits behind the printed QR code, not behind a login.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) *services.Registry {
	log := logger.NewDefaultLogger(logger.InfoLevel)
	notifier := notification.NewMelodyService(m)

	transitionService := services.NewTransitionService(services.TransitionServiceOptions{
		DB:       db,
		Logger:   log,
		Notifier: notifier,
		Redis:    redisCli,
	})
	boardService := services.NewBoardService(services.BoardServiceOptions{
		DB:     db,
		Redis:  redisCli,
		Logger: log,
	})
	guestService := services.NewGuestService(services.GuestServiceOptions{
		DB:          db,
		Transitions: transitionService,
		Logger:      log,
	})
	staffService := services.NewStaffService(services.StaffServiceOptions{
		DB:     db,
		Redis:  redisCli,
		Logger: log,
	})
	maintenanceService := services.NewMaintenanceService(services.MaintenanceServiceOptions{
		DB:       db,
		Cld:      cld,
		Notifier: notifier,
		Logger:   log,
	})
	requestService := services.NewRequestService(services.RequestServiceOptions{
		DB:       db,
		Notifier: notifier,
		Logger:   log,
	})
	hotelService := services.NewHotelService(services.HotelServiceOptions{
		DB:     db,
		Logger: log,
	})

	authController := controllers.NewAuthController(db, staffService, log)
	hotelController := controllers.NewHotelController(hotelService)
	roomController := controllers.NewRoomController(db, boardService, transitionService)
	staffController := controllers.NewStaffController(db, staffService, transitionService)
	maintenanceController := controllers.NewMaintenanceController(maintenanceService)
	requestController := controllers.NewRequestController(db, requestService)
	guestController := controllers.NewGuestController(db, guestService, staffService)

	admin := constants.RoleHotelAdmin
	staff := constants.RoleStaff
	super := constants.RoleSuperAdmin

	v1 := router.Group("/api/v1")

	// Auth
	v1.POST("/auth/login", authController.Login)
	v1.POST("/auth/google", authController.GoogleLogin)
	v1.POST("/auth/verify", authController.VerifyEmail)
	v1.POST("/auth/resend", authController.ResendVerification)
	v1.POST("/auth/forgot", authController.ForgetPassword)
	v1.POST("/auth/reset", authController.ResetPassword)
	v1.POST("/auth/logout", authController.Logout)
	v1.PUT("/auth/password", middlewares.AuthMiddleware(), authController.ChangePassword)

	// Hotels
	v1.POST("/hotels", hotelController.Onboard)
	v1.GET("/hotel/settings", middlewares.AuthMiddleware(admin), hotelController.GetSettings)
	v1.PUT("/hotel/settings", middlewares.AuthMiddleware(admin), hotelController.UpdateSettings)
	v1.PUT("/hotels/:id/activate", middlewares.AuthMiddleware(super), hotelController.ActivateHotel)

	// Rooms and the live board
	v1.GET("/rooms/board", middlewares.AuthMiddleware(admin, staff), roomController.GetBoard)
	v1.GET("/rooms/suggest", middlewares.AuthMiddleware(admin, staff), roomController.SuggestRooms)
	v1.POST("/rooms", middlewares.AuthMiddleware(admin), roomController.CreateRoom)
	v1.PUT("/rooms/:id", middlewares.AuthMiddleware(admin), roomController.UpdateRoom)
	v1.DELETE("/rooms/:id", middlewares.AuthMiddleware(admin), roomController.DeleteRoom)
	v1.PUT("/rooms/:id/status", middlewares.AuthMiddleware(admin, staff), roomController.ChangeRoomStatus)
	v1.POST("/rooms/:id/checkin", middlewares.AuthMiddleware(admin, staff), roomController.CheckIn)
	v1.GET("/rooms/:id/history", middlewares.AuthMiddleware(admin, staff), roomController.GetRoomHistory)

	// Staff
	v1.GET("/staff", middlewares.AuthMiddleware(admin), staffController.GetStaff)
	v1.POST("/staff", middlewares.AuthMiddleware(admin), staffController.CreateStaff)
	v1.PUT("/staff/:id", middlewares.AuthMiddleware(admin), staffController.UpdateStaff)
	v1.PUT("/staff/:id/status", middlewares.AuthMiddleware(admin), staffController.ChangeStaffStatus)
	v1.PUT("/staff/:id/pin", middlewares.AuthMiddleware(admin), staffController.UpdatePin)
	v1.DELETE("/staff/:id", middlewares.AuthMiddleware(admin), staffController.DeleteStaff)

	// Maintenance
	v1.GET("/maintenance", middlewares.AuthMiddleware(admin, staff), maintenanceController.GetTickets)
	v1.POST("/maintenance", middlewares.AuthMiddleware(admin, staff), maintenanceController.CreateTicket)
	v1.PUT("/maintenance/:id/assign", middlewares.AuthMiddleware(admin), maintenanceController.AssignTicket)
	v1.POST("/maintenance/:id/complete", middlewares.AuthMiddleware(admin, staff), maintenanceController.CompleteTicket)

	// Guest requests (staff triage)
	v1.GET("/requests", middlewares.AuthMiddleware(admin, staff), requestController.GetRequests)
	v1.GET("/requests/pending-count", middlewares.AuthMiddleware(admin, staff), requestController.GetPendingCount)
	v1.POST("/requests", middlewares.AuthMiddleware(admin, staff), requestController.CreateRequest)
	v1.PUT("/requests/:id/resolve", middlewares.AuthMiddleware(admin, staff), requestController.ResolveRequest)
	v1.DELETE("/requests/:id", middlewares.AuthMiddleware(admin), requestController.DeleteRequest)

	// Public guest endpoints, reachable from the printed QR code.
	guest := v1.Group("/guest")
	guest.Use(middlewares.SessionMiddleware())
	guest.GET("/hotels/:hotelId/rooms/:roomId", guestController.GetRoom)
	guest.POST("/hotels/:hotelId/rooms/:roomId/actions", guestController.SubmitAction)
	guest.GET("/hotels/:hotelId/rooms/:roomId/qr", guestController.GetQRPayload)
	guest.POST("/hotels/:hotelId/pin-login", guestController.PinLogin)

	return &services.Registry{
		Transitions: transitionService,
		Board:       boardService,
		Guests:      guestService,
		Staff:       staffService,
		Maintenance: maintenanceService,
		Requests:    requestService,
		Hotels:      hotelService,
	}
}

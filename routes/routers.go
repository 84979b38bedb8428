package routes

import (
	"context"
	"net/http"

	"hoithanh/controllers"
	middlewares "hoithanh/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	router.Use(middlewares.SessionMiddleware())

	attendanceController := controllers.NewAttendanceController(db, redisCli)
	reportController := controllers.NewReportController(db, redisCli)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.GET("/verify-email", controllers.VerifyEmail)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/profile", controllers.GetProfile)

	v1.GET("/members", controllers.GetMembers)
	v1.GET("/members/search", controllers.SearchMembers)
	v1.POST("/members", middlewares.AuthMiddleware(1, 2), controllers.CreateMember)
	v1.GET("/members/:id", controllers.GetMemberDetail)
	v1.PUT("/members/:id", middlewares.AuthMiddleware(1, 2), controllers.UpdateMember)
	v1.DELETE("/members", middlewares.AuthMiddleware(1), controllers.DeleteMembers)

	v1.GET("/families", controllers.GetFamilies)
	v1.POST("/families", middlewares.AuthMiddleware(1, 2), controllers.CreateFamily)
	v1.GET("/families/:id", controllers.GetFamilyDetail)
	v1.PUT("/families/:id", middlewares.AuthMiddleware(1, 2), controllers.UpdateFamily)
	v1.DELETE("/families", middlewares.AuthMiddleware(1), controllers.DeleteFamilies)

	v1.GET("/ministries", controllers.GetMinistries)
	v1.POST("/ministries", middlewares.AuthMiddleware(1, 2), controllers.CreateMinistry)
	v1.GET("/ministries/:id", controllers.GetMinistryDetail)
	v1.PUT("/ministries/:id", middlewares.AuthMiddleware(1, 2), controllers.UpdateMinistry)
	v1.DELETE("/ministries", middlewares.AuthMiddleware(1), controllers.DeleteMinistries)

	v1.GET("/cell-groups", controllers.GetCellGroups)
	v1.POST("/cell-groups", middlewares.AuthMiddleware(1, 2), controllers.CreateCellGroup)
	v1.GET("/cell-groups/:id", controllers.GetCellGroupDetail)
	v1.PUT("/cell-groups/:id", middlewares.AuthMiddleware(1, 2), controllers.UpdateCellGroup)
	v1.DELETE("/cell-groups", middlewares.AuthMiddleware(1), controllers.DeleteCellGroups)

	v1.GET("/events", controllers.GetEvents)
	v1.POST("/events", middlewares.AuthMiddleware(1, 2), controllers.CreateEvent)
	v1.GET("/events/:id", controllers.GetEventDetail)
	v1.PUT("/events/:id", middlewares.AuthMiddleware(1, 2), controllers.UpdateEvent)
	v1.DELETE("/events/:id", middlewares.AuthMiddleware(1), controllers.DeleteEvent)
	v1.GET("/events/:id/default-date", controllers.GetEventDefaultDate)
	v1.GET("/events/:id/check-date", controllers.CheckEventDate)
	v1.POST("/events/:id/registrations", controllers.RegisterForEvent)
	v1.PUT("/events/:id/registrations/:registrationId", middlewares.AuthMiddleware(1, 2), controllers.UpdateRegistration)
	v1.DELETE("/events/:id/registrations/:registrationId", middlewares.AuthMiddleware(1, 2), controllers.DeleteRegistration)
	v1.GET("/events/:id/attendance-dates", attendanceController.GetAttendanceDates)

	v1.POST("/attendance/check-in", middlewares.AuthMiddleware(1, 2), attendanceController.CheckIn)
	v1.POST("/attendance/undo", middlewares.AuthMiddleware(1, 2), attendanceController.UndoCheckIn)
	v1.GET("/attendance", attendanceController.GetAttendance)
	v1.GET("/attendance/summary", middlewares.AuthMiddleware(1, 2), attendanceController.GetAttendanceSummary)

	v1.GET("/reports/attendance", middlewares.AuthMiddleware(1, 2), reportController.GetAttendanceMetrics)
	v1.GET("/reports/overview", middlewares.AuthMiddleware(1, 2), reportController.GetOverview)

	v1.POST("/img/upload", middlewares.AuthMiddleware(1, 2), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "members"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"url":     resp.SecureURL,
		})
	})

	//ws
	v1.GET("/test-broadcast", func(c *gin.Context) {
		message := []byte("Thông báo từ backend: Tin nhắn mới!")
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})

}

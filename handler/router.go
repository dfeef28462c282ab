package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter configures the Gin engine with all routes and middleware.
func SetupRouter(
	billH *BillHandler,
	feedbackH *FeedbackHandler,
	demoH *DemoHandler,
	metricsHandler http.Handler,
	allowedOrigins []string,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = 32 << 20

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(Logger(logger))
	r.Use(CORS(allowedOrigins))

	r.GET("/", demoH.Index)
	r.GET("/health", demoH.Health)
	r.GET("/metrics", gin.WrapH(metricsHandler))

	api := r.Group("/api")
	{
		api.GET("/decoded_bill", demoH.DecodedBill)
		api.GET("/action_plan", demoH.ActionPlan)
		api.POST("/wtp", feedbackH.PostWTP)
		api.POST("/session_event", feedbackH.PostSessionEvent)
		api.POST("/upload_bill", billH.UploadBill)
	}

	return r
}

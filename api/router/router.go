package router

import (
	"contract-review/api/handler"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, reviewH *handler.ReviewHandler) {
	api := r.Group("/api/v1")
	{
		review := api.Group("/review")
		{
			review.POST("/run", reviewH.Review)
			review.GET("/depths", reviewH.DepthOptions)
			review.GET("/history", reviewH.History)
			review.GET("/:id", reviewH.GetReview)
			review.POST("/feedback", reviewH.Feedback)
		}
		catalog := api.Group("/catalog")
		{
			catalog.GET("/types", reviewH.ListTypes)
			catalog.GET("/guide", reviewH.TypeGuide)
		}
	}
}

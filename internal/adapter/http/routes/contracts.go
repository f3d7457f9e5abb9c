package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	PathContracts  = "/contracts"
	PathClients    = "/clients"
	PathTeimosinha = "/teimosinha"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addContractRoutes(rg *gin.RouterGroup, h Handlers) {
	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", h.Contracts.CreateContract)
		contracts.POST("/batch", h.Contracts.CreateBatch)
		contracts.GET("/:token", h.Contracts.GetContract)
		contracts.GET("/:token/details", h.Contracts.ListDetails)
		contracts.GET("/:token/history", h.Contracts.ListStatusHistory)

		contracts.POST("/:token/formalization", h.Contracts.BeginFormalization)
		contracts.POST("/:token/formalization/send", h.Contracts.SendFormalizationLink)
		contracts.POST("/:token/submission", h.Contracts.SubmitProposal)
		contracts.POST("/:token/bureau-returns", h.Contracts.RecordBureauReturn)
		contracts.POST("/:token/recalculation", h.Contracts.RequestRecalculation)
		contracts.POST("/:token/endorsement", h.Contracts.CompleteEndorsement)
		contracts.POST("/:token/cancel", h.Contracts.Cancel)
		contracts.POST("/:token/reject", h.Contracts.Reject)

		contracts.POST("/:token/teimosinha", h.Teimosinha.ScheduleRetry)
		contracts.GET("/:token/teimosinha", h.Teimosinha.ListAttempts)

		contracts.POST("/:token/documents", h.Documents.AttachDocument)
		contracts.GET("/:token/documents", h.Documents.ListDocuments)
	}

	rg.GET(PathClients+"/:client_id/contracts", h.Contracts.ListByClient)
	rg.POST(PathTeimosinha+"/process", h.Teimosinha.ProcessDue)
}

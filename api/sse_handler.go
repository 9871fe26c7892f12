package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/uicmedicare/medicare-BE/internal/event"
)

// streamBranchEvents establishes an SSE connection delivering feed updates,
// low stock alerts and request resolutions for a branch.
//
//	@Summary		Stream branch events
//	@Description	Establishes a Server-Sent Events connection for live branch updates
//	@Tags			events
//	@Produce		text/event-stream
//	@Param			branchID	path	integer	true	"Branch ID"
//	@Success		200			"Event stream established"
//	@Router			/branches/{branchID}/events [get]
func (server *Server) streamBranchEvents(c *gin.Context) {
	branchID, err := parseIDParam(c, "branchID")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	topic := event.BranchTopic(branchID)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Status(http.StatusOK)

	clientChan := make(chan event.Event)
	server.eventSender.Register(topic, clientChan)
	defer server.eventSender.Unregister(topic, clientChan)

	for {
		select {
		case ev := <-clientChan:
			data, _ := json.Marshal(ev.Data)
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", ev.Type, data)
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}

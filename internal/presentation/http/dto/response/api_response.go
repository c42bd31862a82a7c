package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recibos/ticketero-api/pkg/apperror"
)

// TicketResponse is the wire contract for the callback: status is either
// "success" or "error"; fileName and fileUrl are present on success only.
type TicketResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	FileName string `json:"fileName,omitempty"`
	FileURL  string `json:"fileUrl,omitempty"`
}

// Success sends a success response with the stored file name and URL.
func Success(c *gin.Context, message, fileName, fileURL string) {
	c.JSON(http.StatusOK, TicketResponse{
		Status:   "success",
		Message:  message,
		FileName: fileName,
		FileURL:  fileURL,
	})
}

// Error converts any error into a well-formed error response. The entry
// point never lets an error escape as anything but this shape.
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	c.JSON(appErr.Code, TicketResponse{
		Status:  "error",
		Message: appErr.Message,
	})
}

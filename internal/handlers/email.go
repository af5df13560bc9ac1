package handlers

import (
	"errors"
	"net/http"

	"github.com/celiarozalenm/fn-quest-live/internal/email"

	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	client *email.Client
}

func NewEmailHandler(client *email.Client) *EmailHandler {
	return &EmailHandler{client: client}
}

type SendEmailRequest struct {
	To       string             `json:"to" example:"player@example.com"`
	Subject  string             `json:"subject" example:"You're in!"`
	Template string             `json:"template" example:"registration-confirmation"`
	Data     email.TemplateData `json:"data"`
}

type SendEmailResponse struct {
	Success bool `json:"success" example:"true"`
}

// SendEmail godoc
// @Summary      Send a transactional email
// @Description  Render a registration-confirmation or session-reminder email and forward it to SendGrid
// @Tags         email
// @Accept       json
// @Produce      json
// @Param        request body SendEmailRequest true "Email request"
// @Success      200 {object} SendEmailResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/send-email [post]
func (h *EmailHandler) SendEmail(c *gin.Context) {
	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
		return
	}

	// Validate everything before touching the upstream provider.
	if req.To == "" || req.Subject == "" || req.Template == "" ||
		req.Data.Name == "" || req.Data.SessionDate == "" || req.Data.SessionTime == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
		return
	}
	if !email.KnownTemplate(req.Template) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown email template"})
		return
	}

	htmlBody := email.RenderHTML(req.Template, req.Data)
	textBody := email.RenderText(req.Template, req.Data)

	if err := h.client.Send(req.To, req.Subject, textBody, htmlBody); err != nil {
		var upstream *email.UpstreamError
		if errors.As(err, &upstream) {
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "Failed to send email",
				Details: upstream.Body,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, SendEmailResponse{Success: true})
}

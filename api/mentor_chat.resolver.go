package api

import (
	"strings"
	"time"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/domain"

	"github.com/gin-gonic/gin"
)

type chatMessageResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func chatMessageResponseFromModel(msg *model.ChatMessage) chatMessageResponse {
	return chatMessageResponse{
		Role:      msg.Role,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

func (m ApiHandler) getMentorMessages(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	messages, err := m.MentorService.ListMessages(userAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []chatMessageResponse{}
	for i := range messages {
		out = append(out, chatMessageResponseFromModel(&messages[i]))
	}

	c.JSON(200, out)
}

type sendMentorMessageRequest struct {
	Message string `json:"message"`
}

func (m ApiHandler) sendMentorMessage(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody sendMentorMessageRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if strings.TrimSpace(requestBody.Message) == "" {
		returnErrorJson(domain.ErrInvalidInput, c)
		return
	}

	reply, err := m.MentorService.SendMessage(c.Request.Context(), userAccountID, requestBody.Message)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, chatMessageResponseFromModel(reply))
}

package api

import (
	"strings"
	"time"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/domain"

	"github.com/gin-gonic/gin"
)

type postResponse struct {
	PostID        string    `json:"postID"`
	UserAccountID string    `json:"userAccountID"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"createdAt"`
}

func postResponseFromModel(p *model.Post) postResponse {
	return postResponse{
		PostID:        p.PostID.String(),
		UserAccountID: p.UserAccountID.String(),
		Title:         p.Title,
		Body:          p.Body,
		CreatedAt:     p.CreatedAt,
	}
}

func (m ApiHandler) getPosts(c *gin.Context) {
	posts, err := m.PostRepository.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []postResponse{}
	for i := range posts {
		out = append(out, postResponseFromModel(&posts[i]))
	}

	c.JSON(200, out)
}

type createPostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (m ApiHandler) createPost(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody createPostRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if strings.TrimSpace(requestBody.Title) == "" || strings.TrimSpace(requestBody.Body) == "" {
		returnErrorJson(domain.ErrInvalidInput, c)
		return
	}

	post, err := m.PostRepository.Add(model.Post{
		UserAccountID: userAccountID,
		Title:         requestBody.Title,
		Body:          requestBody.Body,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, postResponseFromModel(post))
}

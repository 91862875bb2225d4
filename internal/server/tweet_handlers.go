package server

import (
	"time"

	"chirp/internal/middleware"
	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// unknownAuthor is the username shown for tweets whose author record no
// longer resolves. Listing degrades instead of failing.
const unknownAuthor = "unknown"

// CreateTweet handles POST /tweets
// @Summary Post a tweet
// @Description Create a new tweet for the authenticated user
// @Tags tweets
// @Accept json
// @Produce json
// @Param request body object{content=string} true "Tweet content"
// @Success 201 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /tweets [post]
func (s *Server) CreateTweet(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Content *string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Content == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing data. Required field: content"))
	}

	tweet := &models.Tweet{
		Content:    *req.Content,
		DatePosted: time.Now(),
		UserID:     userID,
	}

	if err := s.tweetRepo.Create(c.Context(), tweet); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	middleware.TweetsCreated.Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Tweet posted successfully",
	})
}

// GetTweets handles GET /tweets
// @Summary List tweets
// @Description List all tweets with their authors' usernames, oldest first
// @Tags tweets
// @Produce json
// @Success 200 {array} models.TweetWithAuthor
// @Router /tweets [get]
func (s *Server) GetTweets(c *fiber.Ctx) error {
	ctx := c.Context()

	tweets, err := s.tweetRepo.List(ctx)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	usernames := make(map[uint]string, len(users))
	for _, u := range users {
		usernames[u.ID] = u.Username
	}

	result := make([]models.TweetWithAuthor, 0, len(tweets))
	for _, t := range tweets {
		username, ok := usernames[t.UserID]
		if !ok {
			username = unknownAuthor
		}
		result = append(result, models.TweetWithAuthor{
			ID:         t.ID,
			Content:    t.Content,
			DatePosted: t.DatePosted,
			Username:   username,
		})
	}

	return c.JSON(result)
}

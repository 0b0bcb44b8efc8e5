package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"foodiegram/internal/auth"
	"foodiegram/internal/domain"
	"foodiegram/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users        service.UserService
	follows      service.FollowService
	posts        service.PostService
	feed         service.FeedService
	issuer       *auth.TokenIssuer
	logger       *logrus.Logger
	maxImageSize int64
}

func NewHandler(
	users service.UserService,
	follows service.FollowService,
	posts service.PostService,
	feed service.FeedService,
	issuer *auth.TokenIssuer,
	logger *logrus.Logger,
	maxImageSize int64,
) *Handler {
	return &Handler{
		users:        users,
		follows:      follows,
		posts:        posts,
		feed:         feed,
		issuer:       issuer,
		logger:       logger,
		maxImageSize: maxImageSize,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.GET("/feed", h.getFeed)
		api.POST("/posts", h.createPost)
		api.POST("/users/signup", h.signup)
		api.GET("/users/:id/profile", h.getProfile)
		api.PUT("/users/:id/profile", h.updateProfile)
		api.POST("/users/:id/follow", h.follow)
		api.POST("/users/:id/unfollow", h.unfollow)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// every response shares the {success, message, data} envelope
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, apiResponse{Success: true, Message: message, Data: data})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, apiResponse{Success: false, Message: message})
}

// respondError maps the domain error taxonomy to HTTP statuses. Anything
// outside the taxonomy is logged and reported as a generic 500 so internal
// detail never reaches the client.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, apiResponse{Success: false, Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, apiResponse{Success: false, Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, apiResponse{Success: false, Message: err.Error()})
	default:
		h.logger.WithError(err).Errorf("%s %s failed", c.Request.Method, c.FullPath())
		c.JSON(http.StatusInternalServerError, apiResponse{Success: false, Message: "Internal server error"})
	}
}

func userIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "Invalid user ID")
		return 0, false
	}
	return id, true
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type signupResponse struct {
	Token string           `json:"token"`
	User  *ProfileResponse `json:"user"`
}

func (h *Handler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Email and password are required")
		return
	}

	user, err := h.users.Signup(c.Request.Context(), req.Email, req.Password, req.FullName, domain.Role(req.Role))
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.issuer.Issue(user, time.Now())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "User created successfully", signupResponse{
		Token: token,
		User:  profileToResponse(user.PublicProfile()),
	})
}

func (h *Handler) getProfile(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	profile, err := h.users.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "User profile fetched successfully", profileToResponse(profile))
}

type updateProfileRequest struct {
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profilePicture"`
}

func (h *Handler) updateProfile(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.users.UpdateProfile(c.Request.Context(), id, req.Bio, req.ProfilePicture)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "User profile updated successfully", profileToResponse(profile))
}

type followRequest struct {
	FollowingID int64 `json:"followingId"`
}

func (h *Handler) follow(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FollowingID <= 0 {
		respondBadRequest(c, "Invalid following user ID")
		return
	}

	follow, err := h.follows.Follow(c.Request.Context(), id, req.FollowingID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Follow relationship created successfully", followToResponse(follow))
}

type unfollowRequest struct {
	UnfollowUserID int64 `json:"unfollowUserId"`
}

func (h *Handler) unfollow(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	var req unfollowRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UnfollowUserID <= 0 {
		respondBadRequest(c, "Invalid unfollow user ID")
		return
	}

	if err := h.follows.Unfollow(c.Request.Context(), id, req.UnfollowUserID); err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Unfollowed successfully", gin.H{})
}

func (h *Handler) createPost(c *gin.Context) {
	description := c.PostForm("description")
	userIDStr := c.PostForm("userId")
	tags := c.PostForm("tags")

	fileHeader, err := c.FormFile("image")
	if description == "" || userIDStr == "" || err != nil {
		respondBadRequest(c, "Missing required fields")
		return
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		respondBadRequest(c, "Invalid user ID")
		return
	}

	if h.maxImageSize > 0 && fileHeader.Size > h.maxImageSize {
		respondBadRequest(c, "Image too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer file.Close()

	post, err := h.posts.CreatePost(c.Request.Context(), userID, description, tags, &service.ImageUpload{
		Filename: fileHeader.Filename,
		Body:     file,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Post created successfully", postToResponse(post))
}

func (h *Handler) getFeed(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil || userID <= 0 {
		respondBadRequest(c, "Invalid user ID")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		respondBadRequest(c, "Invalid limit")
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		respondBadRequest(c, "Invalid offset")
		return
	}

	items, err := h.feed.GetFeed(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}

	message := "Feed fetched successfully"
	if len(items) == 0 {
		message = "No posts found"
	}

	resp := make([]FeedItemResponse, len(items))
	for i := range items {
		resp[i] = feedItemToResponse(items[i])
	}
	respond(c, http.StatusOK, message, resp)
}

type ProfileResponse struct {
	UserID         int64  `json:"userId"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profilePicture"`
	FollowerCount  int    `json:"followerCount"`
	FollowingCount int    `json:"followingCount"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

type FollowResponse struct {
	ID          int64  `json:"id"`
	FollowerID  int64  `json:"followerId"`
	FollowingID int64  `json:"followingId"`
	CreatedAt   string `json:"createdAt"`
}

type PostResponse struct {
	PostID      int64    `json:"postId"`
	UserID      int64    `json:"userId"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"`
}

type FeedItemResponse struct {
	PostID      int64            `json:"postId"`
	Description string           `json:"description"`
	ImageURL    string           `json:"imageUrl"`
	Tags        []string         `json:"tags"`
	CreatedAt   string           `json:"createdAt"`
	User        FeedUserResponse `json:"user"`
}

type FeedUserResponse struct {
	UserID         int64  `json:"userId"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

func profileToResponse(profile *domain.Profile) *ProfileResponse {
	if profile == nil {
		return nil
	}
	return &ProfileResponse{
		UserID:         profile.ID,
		Email:          profile.Email,
		Username:       profile.Username,
		Name:           profile.Name,
		Role:           string(profile.Role),
		Bio:            profile.Bio,
		ProfilePicture: profile.ProfilePicture,
		FollowerCount:  profile.FollowerCount,
		FollowingCount: profile.FollowingCount,
		CreatedAt:      profile.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      profile.UpdatedAt.Format(time.RFC3339),
	}
}

func followToResponse(follow *domain.Follow) FollowResponse {
	return FollowResponse{
		ID:          follow.ID,
		FollowerID:  follow.FollowerID,
		FollowingID: follow.FollowingID,
		CreatedAt:   follow.CreatedAt.Format(time.RFC3339),
	}
}

func postToResponse(post *domain.Post) PostResponse {
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}
	return PostResponse{
		PostID:      post.ID,
		UserID:      post.UserID,
		Description: post.Description,
		ImageURL:    post.ImageURL,
		Tags:        tags,
		CreatedAt:   post.CreatedAt.Format(time.RFC3339),
	}
}

func feedItemToResponse(item domain.FeedItem) FeedItemResponse {
	tags := item.Post.Tags
	if tags == nil {
		tags = []string{}
	}
	return FeedItemResponse{
		PostID:      item.Post.ID,
		Description: item.Post.Description,
		ImageURL:    item.Post.ImageURL,
		Tags:        tags,
		CreatedAt:   item.Post.CreatedAt.Format(time.RFC3339),
		User: FeedUserResponse{
			UserID:         item.Author.ID,
			Username:       item.Author.Username,
			ProfilePicture: item.Author.ProfilePicture,
		},
	}
}

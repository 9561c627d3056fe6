package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daily-hold/plank-api/models"
	"github.com/daily-hold/plank-api/utils"
)

// ReactionEmojis are the reactions the wall accepts.
var ReactionEmojis = []string{"❤️", "👍", "🔥"}

// QuickEmojis are the one-tap post emojis.
var QuickEmojis = []string{"💪", "🎉", "❤️", "🔥", "👏", "⭐"}

type CommunityController struct {
	DB *gorm.DB
}

func NewCommunityController(db *gorm.DB) *CommunityController {
	return &CommunityController{DB: db}
}

func isAllowedEmoji(emoji string, allowed []string) bool {
	for _, e := range allowed {
		if e == emoji {
			return true
		}
	}
	return false
}

// GetPosts returns the company wall with per-post reaction counts and which
// reactions the caller has placed.
func (cc *CommunityController) GetPosts(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var dbUser models.User
	if err := cc.DB.First(&dbUser, user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var posts []models.CommunityPost
	if err := cc.DB.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, full_name")
	}).
		Where("company_id = ?", dbUser.CompanyID).
		Order("created_at DESC").
		Limit(50).
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	postIDs := make([]uint, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}

	var reactions []models.PostReaction
	if len(postIDs) > 0 {
		if err := cc.DB.Where("post_id IN ?", postIDs).Find(&reactions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reactions"})
			return
		}
	}

	payload := make([]gin.H, 0, len(posts))
	for _, post := range posts {
		counts := map[string]int{}
		mine := map[string]bool{}
		for _, emoji := range ReactionEmojis {
			counts[emoji] = 0
			mine[emoji] = false
		}
		for _, r := range reactions {
			if r.PostID != post.ID {
				continue
			}
			counts[r.Emoji]++
			if r.UserID == user.UserID {
				mine[r.Emoji] = true
			}
		}
		payload = append(payload, gin.H{
			"id":              post.ID,
			"user":            gin.H{"id": post.UserID, "full_name": post.User.FullName},
			"content":         post.Content,
			"emoji_type":      post.EmojiType,
			"created_at":      post.CreatedAt,
			"reaction_counts": counts,
			"my_reactions":    mine,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "posts": payload})
}

func (cc *CommunityController) CreatePost(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		Content   string `json:"content"`
		EmojiType string `json:"emojiType"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	content := strings.TrimSpace(input.Content)
	if (content == "") == (input.EmojiType == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide either content or an emoji, not both", "success": false})
		return
	}
	if input.EmojiType != "" && !isAllowedEmoji(input.EmojiType, QuickEmojis) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported emoji", "success": false})
		return
	}
	if len(content) > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post is too long", "success": false})
		return
	}

	var dbUser models.User
	if err := cc.DB.First(&dbUser, user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	post := models.CommunityPost{
		UserID:    dbUser.ID,
		CompanyID: dbUser.CompanyID,
	}
	if content != "" {
		post.Content = &content
	} else {
		post.EmojiType = &input.EmojiType
	}

	if err := cc.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "post_id": post.ID})
}

// ToggleReaction adds the caller's reaction to a post, or removes it when
// already present.
func (cc *CommunityController) ToggleReaction(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	postID := c.Param("id")

	var input struct {
		Emoji string `json:"emoji" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if !isAllowedEmoji(input.Emoji, ReactionEmojis) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported reaction", "success": false})
		return
	}

	var post models.CommunityPost
	if err := cc.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found", "success": false})
		return
	}

	var existing models.PostReaction
	result := cc.DB.Where("post_id = ? AND user_id = ? AND emoji = ?", post.ID, user.UserID, input.Emoji).First(&existing)

	if result.Error == gorm.ErrRecordNotFound {
		reaction := models.PostReaction{
			PostID: post.ID,
			UserID: user.UserID,
			Emoji:  input.Emoji,
		}
		if err := cc.DB.Create(&reaction).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add reaction", "success": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "reacted": true})
		return
	}

	if err := cc.DB.Delete(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove reaction", "success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reacted": false})
}

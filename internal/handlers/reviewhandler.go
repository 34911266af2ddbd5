package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobjournal/internal/auth"
	"github.com/justsurfingit/jobjournal/internal/dtos"
	"github.com/justsurfingit/jobjournal/internal/services"
)

type ReviewHandler struct {
	ReviewService *services.ReviewService
	Mailer        services.Mailer
}

func NewReviewHandler(r *services.ReviewService, m services.Mailer) *ReviewHandler {
	return &ReviewHandler{
		ReviewService: r,
		Mailer:        m,
	}
}

// ListAll is GET /reviews — public, no auth.
func (h *ReviewHandler) ListAll(c *gin.Context) {
	reviews, err := h.ReviewService.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// ListMine is GET /reviews/user (auth) — the caller's own reviews.
func (h *ReviewHandler) ListMine(c *gin.Context) {
	reviews, err := h.ReviewService.ListByUser(auth.CallerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// ListByUser is GET /reviews/:id (auth) — any user's reviews by user id.
func (h *ReviewHandler) ListByUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}
	reviews, err := h.ReviewService.ListByUser(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// Create is POST /reviews (auth).
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dtos.ReviewCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	review, err := h.ReviewService.Create(auth.CallerID(c), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create review: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review created successfully", "review": review})

	services.Dispatch(h.Mailer, auth.CallerEmail(c), "New Review Added",
		fmt.Sprintf("You added a review for %s \n\n The further details of the review you added are: \n\n Role: %s \n\n Salary: %s \n\n Rating: %d \n\n Review: %s \n\n Rounds: %s",
			req.Company, req.Role, req.Salary, req.Rating, req.Review, strings.Join(req.Rounds, ", ")))
}

// Delete is DELETE /reviews/:id (auth, owner-scoped).
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid review id"})
		return
	}

	if err := h.ReviewService.Delete(uint(id), auth.CallerID(c)); err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Review not found or you don't have permission to delete it."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

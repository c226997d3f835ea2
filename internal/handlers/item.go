package handlers

import (
	"errors"
	"net/http"
	"strconv"

	dom "inventory/internal/domain"
	"inventory/internal/dto"
	"inventory/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ItemHandler translates HTTP requests into item service calls and domain
// outcomes into status codes. Unexpected store errors go to the logger in
// full; the client only ever sees a generic message.
type ItemHandler struct {
	svc *service.ItemService
	log *zap.Logger
}

func NewItemHandler(svc *service.ItemService, log *zap.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, log: log}
}

// Create godoc
// @Summary      Create an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateItemRequest  true  "Item body"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  map[string]interface{}
// @Failure      409   {object}  map[string]string
// @Router       /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "validation failed",
			"errors":  dto.ItemValidationMessages(err),
		})
		return
	}
	it, err := h.svc.Create(c.Request.Context(), req.Name, *req.Quantity, *req.Price, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			c.JSON(http.StatusConflict, gin.H{"message": "item with this name already exists"})
			return
		}
		h.log.Error("create item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}
	c.JSON(http.StatusCreated, itemToResponse(it))
}

// List godoc
// @Summary      List all items
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.ItemResponse
// @Failure      500  {object}  map[string]string
// @Router       /items [get]
func (h *ItemHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.log.Error("list items", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}
	c.JSON(http.StatusOK, itemsToResponses(list))
}

// GetByID godoc
// @Summary      Get an item by ID
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /items/{id} [get]
func (h *ItemHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	it, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "item not found"})
			return
		}
		h.log.Error("get item", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}
	c.JSON(http.StatusOK, itemToResponse(it))
}

// Update godoc
// @Summary      Update an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "Item ID"
// @Param        body  body      dto.UpdateItemRequest  true  "Partial update"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /items/{id} [put]
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "validation failed",
			"errors":  dto.ItemValidationMessages(err),
		})
		return
	}
	it, err := h.svc.Update(c.Request.Context(), id, req.Patch())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "item not found"})
		case errors.Is(err, service.ErrDuplicateName):
			c.JSON(http.StatusConflict, gin.H{"message": "item with this name already exists"})
		default:
			h.log.Error("update item", zap.Int64("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		}
		return
	}
	c.JSON(http.StatusOK, itemToResponse(it))
}

// Delete godoc
// @Summary      Delete an item
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "item not found"})
			return
		}
		h.log.Error("delete item", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "item not found"})
		return 0, false
	}
	return id, true
}

func itemToResponse(it dom.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Quantity:    it.Quantity,
		Price:       it.Price,
		Description: it.Description,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func itemsToResponses(list []dom.Item) []dto.ItemResponse {
	out := make([]dto.ItemResponse, len(list))
	for i := range list {
		out[i] = itemToResponse(list[i])
	}
	return out
}

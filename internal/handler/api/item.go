package api

import (
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	cmds        commands.ItemCommands
	commentCmds commands.CommentCommands
	q           queries.ItemQueries
	commentQ    queries.CommentQueries
}

func NewItemHandler(
	cmds commands.ItemCommands,
	commentCmds commands.CommentCommands,
	q queries.ItemQueries,
	commentQ queries.CommentQueries,
) *ItemHandler {
	return &ItemHandler{cmds: cmds, commentCmds: commentCmds, q: q, commentQ: commentQ}
}

// @Summary Create item
// @Description The caller becomes the owner
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param request body reqdto.CreateItemRequest true "Create item request"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand(), ownerID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), ownerID, result.ItemID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.Header("Location", "/items/"+view.ID.String())
	render(c, http.StatusCreated, view, resdto.FromItemView)
}

// @Summary Update item
// @Description Partial update by the owner; other callers get 404
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param id path string true "Item ID"
// @Param request body reqdto.PatchItemRequest true "Patch item request"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [patch]
func (h *ItemHandler) Patch(c *gin.Context) {
	actorID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.PatchItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}
	if err := h.cmds.Patch(c.Request.Context(), id, req.ToCommand(), actorID); err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actorID, id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	render(c, http.StatusOK, view, resdto.FromItemView)
}

// @Summary Get item
// @Description Booking neighbours are shown to the owner only
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	viewerID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), viewerID, id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	render(c, http.StatusOK, view, resdto.FromItemView)
}

// @Summary List own items
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param from query int false "Offset of the first element (default 0)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Router /items [get]
func (h *ItemHandler) ListOwn(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		abortBind(c, err)
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), ownerID, page.From, page.Size)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	render(c, http.StatusOK, views, resdto.FromItemViews)
}

// @Summary Search items
// @Description Case-insensitive match on name or description among available items
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param text query string false "Search text; blank returns an empty list"
// @Param from query int false "Offset of the first element (default 0)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	var query reqdto.SearchItemsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBind(c, err)
		return
	}
	views, err := h.q.Search(c.Request.Context(), query.Text, query.From, query.Size)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	render(c, http.StatusOK, views, resdto.FromItemViews)
}

// @Summary Comment on item
// @Description Allowed once an approved booking of the caller has ended
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param id path string true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment"
// @Success 201 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id}/comment [post]
func (h *ItemHandler) Comment(c *gin.Context) {
	authorID, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}
	result, err := h.commentCmds.Create(c.Request.Context(), itemID, authorID, req.Text)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	view, err := h.commentQ.GetByID(c.Request.Context(), result.CommentID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	render(c, http.StatusCreated, view, resdto.FromCommentView)
}

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

type ItemRequestHandler struct {
	cmds commands.ItemRequestCommands
	q    queries.ItemRequestQueries
}

func NewItemRequestHandler(cmds commands.ItemRequestCommands, q queries.ItemRequestQueries) *ItemRequestHandler {
	return &ItemRequestHandler{cmds: cmds, q: q}
}

// @Summary Create item request
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param request body reqdto.CreateItemRequestRequest true "Create item request"
// @Success 201 {object} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests [post]
func (h *ItemRequestHandler) Create(c *gin.Context) {
	requestorID, ok := callerID(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.Description, requestorID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), requestorID, result.RequestID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.Header("Location", "/requests/"+view.ID.String())
	render(c, http.StatusCreated, view, resdto.FromItemRequestView)
}

// @Summary List own item requests
// @Description Newest first, each with the items offered in reply
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests [get]
func (h *ItemRequestHandler) ListOwn(c *gin.Context) {
	requestorID, ok := callerID(c)
	if !ok {
		return
	}
	views, err := h.q.ListOwn(c.Request.Context(), requestorID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	render(c, http.StatusOK, views, resdto.FromItemRequestViews)
}

// @Summary List other users' item requests
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param from query int false "Offset of the first element (default 0)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests/all [get]
func (h *ItemRequestHandler) ListOthers(c *gin.Context) {
	callerUserID, ok := callerID(c)
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		abortBind(c, err)
		return
	}
	views, err := h.q.ListOthers(c.Request.Context(), callerUserID, page.From, page.Size)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	render(c, http.StatusOK, views, resdto.FromItemRequestViews)
}

// @Summary Get item request
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests/{id} [get]
func (h *ItemRequestHandler) Get(c *gin.Context) {
	callerUserID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), callerUserID, id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	render(c, http.StatusOK, view, resdto.FromItemRequestView)
}

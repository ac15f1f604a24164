package http

import (
	"github.com/gin-gonic/gin"

	"library-loans/pkg/response"
)

// Create godoc
// @Summary     Register an account
// @Description New accounts are always active.
// @Tags        Accounts
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Account data"
// @Success     201 {object} singleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - email already exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/accounts [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, singleResp{Account: newAccountResp(output.Account)})
}

// List godoc
// @Summary     List accounts
// @Tags        Accounts
// @Accept      json
// @Produce     json
// @Param       active_only query bool false "Only active accounts"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/accounts [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get account detail
// @Tags        Accounts
// @Accept      json
// @Produce     json
// @Param       id path int true "Account ID"
// @Success     200 {object} singleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/accounts/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, singleResp{Account: newAccountResp(output.Account)})
}

// Deactivate godoc
// @Summary     Deactivate an account
// @Tags        Accounts
// @Accept      json
// @Produce     json
// @Param       id path int true "Account ID"
// @Success     200 {object} singleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/accounts/{id}/deactivate [PATCH]
func (h *handler) Deactivate(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.Deactivate(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Deactivate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, singleResp{Account: newAccountResp(output.Account)})
}

// Delete godoc
// @Summary     Delete an account
// @Tags        Accounts
// @Accept      json
// @Produce     json
// @Param       id path int true "Account ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/accounts/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

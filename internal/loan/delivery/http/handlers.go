package http

import (
	"github.com/gin-gonic/gin"

	"library-loans/pkg/response"
)

// Issue godoc
// @Summary     Issue a loan
// @Description Validates the account and item stock, records the loan and decrements the item stock.
// @Description A 503 means the stock update failed after the loan was recorded.
// @Tags        Loans
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key header string   false "Replays the first outcome for repeated keys"
// @Param       body            body   issueReq true  "Loan data"
// @Success     201 {object} issueResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Account or item not found"
// @Failure     409 {object} response.Resp "Account inactive or no stock"
// @Failure     503 {object} response.Resp "Catalog service unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/loans [POST]
func (h *handler) Issue(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIssueReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.Issue(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Issue: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newIssueResp(output))
}

// List godoc
// @Summary     List loans
// @Description Returns every loan, optionally filtered, each with best-effort account and item snapshots.
// @Tags        Loans
// @Accept      json
// @Produce     json
// @Param       account_id query int false "Filter by account"
// @Param       item_id    query int false "Filter by item"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/loans [GET]
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
// @Summary     Get loan detail
// @Tags        Loans
// @Accept      json
// @Produce     json
// @Param       id path int true "Loan ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/loans/{id} [GET]
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

	response.OK(c, h.newDetailResp(output))
}

// Return godoc
// @Summary     Return a loan
// @Description Sets the return date and increments the item stock. A loan can be returned once.
// @Tags        Loans
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key header string false "Replays the first outcome for repeated keys"
// @Param       id              path   int    true  "Loan ID"
// @Success     200 {object} returnResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already returned"
// @Failure     503 {object} response.Resp "Catalog service unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/loans/{id}/return [POST]
func (h *handler) Return(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.Return(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Return: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newReturnResp(output))
}

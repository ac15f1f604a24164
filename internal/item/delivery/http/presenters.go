package http

import (
	"library-loans/internal/item"
	"library-loans/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Title          string `json:"title"           binding:"required,min=1,max=80"`
	Author         string `json:"author"          binding:"required,min=2,max=80"`
	ISBN           string `json:"isbn"            binding:"required,len=13,numeric"`
	AvailableCount int    `json:"available_count" binding:"gte=0"`
}

func (r createReq) toInput() item.CreateInput {
	return item.CreateInput{
		Title:          r.Title,
		Author:         r.Author,
		ISBN:           r.ISBN,
		AvailableCount: r.AvailableCount,
	}
}

// ---

type listReq struct {
	InStock bool `form:"in_stock"`
}

func (r listReq) toInput() item.ListInput {
	return item.ListInput{InStock: r.InStock}
}

// ---

type updateReq struct {
	ID             int64   `json:"-"` // populated from URI param
	Title          *string `json:"title"           binding:"omitempty,min=1,max=80"`
	Author         *string `json:"author"          binding:"omitempty,min=2,max=80"`
	ISBN           *string `json:"isbn"            binding:"omitempty,len=13,numeric"`
	AvailableCount *int    `json:"available_count" binding:"omitempty,gte=0"`
}

func (r updateReq) toInput() item.UpdateInput {
	return item.UpdateInput{
		ID:             r.ID,
		Title:          r.Title,
		Author:         r.Author,
		ISBN:           r.ISBN,
		AvailableCount: r.AvailableCount,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Author         string `json:"author"`
	ISBN           string `json:"isbn"`
	AvailableCount int    `json:"available_count"`
}

func newItemResp(i model.Item) itemResp {
	return itemResp{
		ID:             i.ID,
		Title:          i.Title,
		Author:         i.Author,
		ISBN:           i.ISBN,
		AvailableCount: i.AvailableCount,
	}
}

type singleResp struct {
	Item itemResp `json:"item"`
}

type listResp struct {
	Items []itemResp `json:"items"`
}

func (h *handler) newListResp(out item.ListOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return listResp{Items: items}
}

package availability

import "roombook/internal/domain"

type CreateBlockRequest struct {
	RoomID    int64  `json:"room_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type BlockResponse struct {
	ID        int64  `json:"id"`
	RoomID    int64  `json:"room_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason"`
	CreatedBy int64  `json:"created_by"`
}

func toResponse(bl *domain.RoomBlock) BlockResponse {
	return BlockResponse{
		ID:        bl.ID,
		RoomID:    bl.RoomID,
		Date:      bl.Date,
		StartTime: domain.FormatClock(bl.StartMinute),
		EndTime:   domain.FormatClock(bl.EndMinute),
		Reason:    bl.Reason,
		CreatedBy: bl.CreatedBy,
	}
}

package domain

type CreateComplaintRequest struct {
	UserID      string   `json:"user_id" validate:"required,uuid"`
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Category    Category `json:"category" validate:"required,category"`
	Location    Location `json:"location" validate:"required"`
	Priority    Priority `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}

type UpdateComplaintStatusRequest struct {
	Status          ComplaintStatus `json:"status" validate:"required,oneof=in_progress resolved rejected"`
	ResolutionNotes string          `json:"resolution_notes" validate:"omitempty,max=2000"`
}

type ListComplaintsRequest struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

type ListComplaintsResponse struct {
	Complaints []Complaint `json:"complaints"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
}

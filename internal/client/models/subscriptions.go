package models

type SubscriptionPlan struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	DurationDays     int     `json:"duration_days"`
	MaxChatsPerMonth int     `json:"max_chats_per_month"`
	MaxDocuments     int     `json:"max_documents"`
	MaxHRDocuments   int     `json:"max_hr_documents"`
	MaxVideoUploads  int     `json:"max_video_uploads"`
	Features         string  `json:"features"`
	IsActive         bool    `json:"is_active"`
}

type UserSubscription struct {
	ID            string `json:"id"`
	PlanName      string `json:"plan_name"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	Features      string `json:"features"`
}

type SubscribeRequest struct {
	PlanID string `json:"plan_id" validate:"required"`
}

type SubscribeResponse struct {
	Message  string `json:"message"`
	PlanName string `json:"plan_name"`
	EndDate  string `json:"end_date"`
	Features string `json:"features"`
}

// UsageInfo holds this month's per-feature counters against plan maximums.
type UsageInfo struct {
	MonthYear                      string `json:"month_year"`
	ChatsUsed                      int    `json:"chats_used"`
	DocumentsUploaded              int    `json:"documents_uploaded"`
	HRDocumentsUploaded            int    `json:"hr_documents_uploaded"`
	VideoUploads                   int    `json:"video_uploads"`
	DynamicPromptDocumentsUploaded int    `json:"dynamic_prompt_documents_uploaded"`
	MaxChats                       int    `json:"max_chats"`
	MaxDocuments                   int    `json:"max_documents"`
	MaxHRDocuments                 int    `json:"max_hr_documents"`
	MaxVideoUploads                int    `json:"max_video_uploads"`
	MaxDynamicPromptDocuments      int    `json:"max_dynamic_prompt_documents"`
}

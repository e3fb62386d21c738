package models

type CrmUserMetrics struct {
	Total        int `json:"total"`
	Admins       int `json:"admins"`
	FreeUsers    int `json:"free_users"`
	PaidUsers    int `json:"paid_users"`
	NewLast7Days int `json:"new_last_7_days"`
}

type CrmSubscriptionMetrics struct {
	Active        int            `json:"active"`
	Expiring7Days int            `json:"expiring_7_days"`
	Churned30Days int            `json:"churned_30_days"`
	Plans         map[string]int `json:"plans,omitempty"`
}

type CrmUsageTotals struct {
	ChatsUsed                      int `json:"chats_used"`
	DocumentsUploaded              int `json:"documents_uploaded"`
	HRDocumentsUploaded            int `json:"hr_documents_uploaded"`
	VideoUploads                   int `json:"video_uploads"`
	DynamicPromptDocumentsUploaded int `json:"dynamic_prompt_documents_uploaded"`
}

type CrmTopUser struct {
	UserID            string `json:"user_id"`
	Username          string `json:"username"`
	ChatsUsed         int    `json:"chats_used"`
	DocumentsUploaded int    `json:"documents_uploaded"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type ContentTotals struct {
	Documents              int `json:"documents"`
	HRDocuments            int `json:"hr_documents"`
	DynamicPromptDocuments int `json:"dynamic_prompt_documents"`
}

// CrmMetrics is the admin dashboard aggregate.
type CrmMetrics struct {
	Users         CrmUserMetrics         `json:"users"`
	Subscriptions CrmSubscriptionMetrics `json:"subscriptions"`
	UsageMonth    string                 `json:"usage_month"`
	Usage         CrmUsageTotals         `json:"usage"`
	TopUsers      []CrmTopUser           `json:"top_users"`
	DailySignups  []DailyCount           `json:"daily_signups,omitempty"`
	ContentTotals *ContentTotals         `json:"content_totals,omitempty"`
}

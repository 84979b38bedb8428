package dto

// OverviewResponse là số liệu tổng quan cho dashboard
type OverviewResponse struct {
	TotalMembers    int64 `json:"totalMembers"`
	ActiveMembers   int64 `json:"activeMembers"`
	InactiveMembers int64 `json:"inactiveMembers"`
	Visitors        int64 `json:"visitors"`
	TotalFamilies   int64 `json:"totalFamilies"`
	TotalEvents     int64 `json:"totalEvents"`
}

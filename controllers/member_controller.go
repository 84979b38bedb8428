package controllers

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"hoithanh/config"
	"hoithanh/dto"
	"hoithanh/models"
	"hoithanh/response"
	"hoithanh/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// GetMembers lấy danh sách thành viên có phân trang và lọc
func GetMembers(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	statusFilter := c.Query("status")
	page := 0
	limit := 10

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}

	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	tx := config.DB.Model(&models.Member{})
	if nameFilter != "" {
		decodedNameFilter, err := url.QueryUnescape(nameFilter)
		if err != nil {
			response.ServerError(c)
			return
		}
		tx = tx.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?",
			"%"+decodedNameFilter+"%", "%"+decodedNameFilter+"%", "%"+decodedNameFilter+"%")
	}
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var members []models.Member
	if err := tx.Preload("Family").Order("updated_at desc").Offset(page * limit).Limit(limit).Find(&members).Error; err != nil {
		response.ServerError(c)
		return
	}

	memberResponses := make([]dto.MemberResponse, 0, len(members))
	for _, member := range members {
		memberResponses = append(memberResponses, toMemberResponse(member))
	}

	response.SuccessWithPagination(c, memberResponses, page, limit, int(total))
}

// SearchMembers tìm thành viên theo tên gần đúng, bỏ dấu tiếng Việt
func SearchMembers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Thiếu từ khóa tìm kiếm")
		return
	}

	var members []models.Member
	if err := config.DB.Find(&members).Error; err != nil {
		response.ServerError(c)
		return
	}

	normalizedQuery := normalizeInput(query)
	cm := createMatcher(memberNameList(members))
	closest := cm.Closest(normalizedQuery)

	type scoredMember struct {
		member models.Member
		score  float64
	}

	var matched []scoredMember
	for _, member := range members {
		name := normalizeInput(member.FirstName + " " + member.LastName)
		score := calculateSimilarity(normalizedQuery, name)
		if closest != "" && name == closest {
			score += 0.5
		}
		if strings.Contains(name, normalizedQuery) {
			score += 0.5
		}
		if score >= 0.5 {
			matched = append(matched, scoredMember{member: member, score: score})
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].score > matched[j].score })
	if len(matched) > 20 {
		matched = matched[:20]
	}

	results := make([]dto.MemberResponse, 0, len(matched))
	for _, m := range matched {
		results = append(results, toMemberResponse(m.member))
	}

	response.SuccessWithTotal(c, results, len(results))
}

// CreateMember tạo một thành viên mới
func CreateMember(c *gin.Context) {
	var request dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	member := models.Member{
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		Email:       strings.ToLower(request.Email),
		Phone:       request.Phone,
		Address:     request.Address,
		Status:      request.Status,
		Photo:       request.Photo,
		FamilyID:    request.FamilyID,
		CellGroupID: request.CellGroupID,
		MinistryIDs: request.MinistryIDs,
	}

	if request.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", request.DateOfBirth)
		if err != nil {
			response.BadRequest(c, "Định dạng ngày sinh không hợp lệ")
			return
		}
		member.DateOfBirth = &dob
	}

	if err := validator.ValidateMember(&member); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&member).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, toMemberResponse(member))
}

func GetMemberDetail(c *gin.Context) {
	var member models.Member
	if err := config.DB.Preload("Family").Preload("CellGroup").Where("id = ?", c.Param("id")).First(&member).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, member)
}

// UpdateMember cập nhật hồ sơ thành viên
func UpdateMember(c *gin.Context) {
	var member models.Member
	var request dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := config.DB.First(&member, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.FirstName != "" {
		member.FirstName = request.FirstName
	}
	if request.LastName != "" {
		member.LastName = request.LastName
	}
	if request.Email != "" {
		member.Email = strings.ToLower(request.Email)
	}
	if request.Phone != "" {
		member.Phone = request.Phone
	}
	if request.Address != "" {
		member.Address = request.Address
	}
	if request.Status != "" {
		member.Status = request.Status
	}
	if request.Photo != "" {
		member.Photo = request.Photo
	}
	if request.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", request.DateOfBirth)
		if err != nil {
			response.BadRequest(c, "Định dạng ngày sinh không hợp lệ")
			return
		}
		member.DateOfBirth = &dob
	}
	if request.FamilyID != nil {
		member.FamilyID = request.FamilyID
	}
	if request.CellGroupID != nil {
		member.CellGroupID = request.CellGroupID
	}
	if request.MinistryIDs != nil {
		member.MinistryIDs = request.MinistryIDs
	}

	if err := validator.ValidateMember(&member); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&member).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toMemberResponse(member))
}

// DeleteMembers xóa nhiều thành viên cùng lúc
func DeleteMembers(c *gin.Context) {
	var request dto.DeleteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if len(request.IDs) == 0 {
		response.BadRequest(c, "Không có ID nào được cung cấp")
		return
	}

	if err := config.DB.Delete(&models.Member{}, request.IDs).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func toMemberResponse(member models.Member) dto.MemberResponse {
	resp := dto.MemberResponse{
		ID:          member.ID,
		FirstName:   member.FirstName,
		LastName:    member.LastName,
		Email:       member.Email,
		Phone:       member.Phone,
		Address:     member.Address,
		DateOfBirth: member.DateOfBirth,
		Status:      member.Status,
		Photo:       member.Photo,
		FamilyID:    member.FamilyID,
		CellGroupID: member.CellGroupID,
		MinistryIDs: member.MinistryIDs,
		CreatedAt:   member.CreatedAt,
		UpdatedAt:   member.UpdatedAt,
	}
	if member.Family != nil {
		resp.FamilyName = member.Family.Name
	}
	return resp
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách tên
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Tạo danh sách tên đã chuẩn hóa cho closestmatch
func memberNameList(members []models.Member) []string {
	uniqueNames := make(map[string]bool)
	for _, member := range members {
		name := normalizeInput(member.FirstName + " " + member.LastName)
		if name != "" {
			uniqueNames[name] = true
		}
	}

	names := make([]string, 0, len(uniqueNames))
	for name := range uniqueNames {
		names = append(names, name)
	}
	return names
}

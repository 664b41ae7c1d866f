package structs

type SignUpRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	ReferralCode string `json:"referralCode,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type EquipBadgeRequest struct {
	BadgeID string `json:"badgeId"`
}

type CreateTopicRequest struct {
	Title string   `json:"title" binding:"required"`
	Body  string   `json:"body" binding:"required"`
	Tags  []string `json:"tags,omitempty"`
}

type CreateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

type SubmitQuizRequest struct {
	Answers []int `json:"answers" binding:"required"`
}

package course_service

import (
	"github.com/google/uuid"
	"github.com/tcp_snm/agora/internal/database"
)

var (
	errMsgs = make(map[string]map[string]string)
)

type CourseService struct {
	DB database.Querier
}

type Course struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	CourseNum string `json:"course_num"`
	ClassNum  *int32 `json:"class_num"`
	Professor string `json:"professor"`
	Semester  string `json:"semester"`
	Week      int32  `json:"week"`
}

// Membership is the relation of a user to a course. Staff implies member.
type Membership struct {
	IsMember bool `json:"is_member"`
	IsStaff  bool `json:"is_staff"`
}

type Member struct {
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

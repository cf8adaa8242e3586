package qna_service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tcp_snm/agora/internal/agora_errors"
	"github.com/tcp_snm/agora/internal/database"
	"github.com/tcp_snm/agora/internal/email"
	"github.com/tcp_snm/agora/internal/service/course_service"
	"github.com/tcp_snm/agora/internal/service/problem_service"
	"github.com/tcp_snm/agora/internal/service/user_service"
)

type Category string

const (
	CategoryGeneral Category = Category(database.CourseQnaCategoryGeneral)
	CategoryProblem Category = Category(database.CourseQnaCategoryProblem)
)

var (
	errMsgs = map[string]map[string]string{
		agora_errors.CodeUniqueConstraint: {
			"uq_course_qnas_group_id_order":       "another question took this order, please try again",
			"uq_course_qna_comments_qna_id_order": "another comment took this order, please try again",
		},
		agora_errors.CodeForeignKeyConstraint: {
			"fk_course_qnas_problem_id": "problem does not exist",
		},
	}
)

// Mailer queues outgoing mail.
type Mailer interface {
	Send(ctx context.Context, req email.EmailRequest) error
}

type QnAService struct {
	DB                   database.Store
	CourseServiceConfig  *course_service.CourseService
	ProblemServiceConfig *problem_service.ProblemService
	UserServiceConfig    *user_service.UserService

	// optional, answers are not notified when nil
	Mailer Mailer
}

type QnA struct {
	CourseID   int32       `json:"course_id"`
	Order      int32       `json:"order"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	CreatedBy  uuid.UUID   `json:"created_by"`
	IsPrivate  bool        `json:"is_private"`
	IsResolved bool        `json:"is_resolved"`
	Category   Category    `json:"category"`
	ProblemID  *int32      `json:"problem_id"`
	ReadBy     []uuid.UUID `json:"read_by"`
	CreateTime time.Time   `json:"create_time"`
	UpdateTime time.Time   `json:"update_time"`
}

type QnASummary struct {
	CourseID     int32     `json:"course_id"`
	Order        int32     `json:"order"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	CreatedBy    uuid.UUID `json:"created_by"`
	AuthorName   string    `json:"author_name"`
	IsPrivate    bool      `json:"is_private"`
	IsResolved   bool      `json:"is_resolved"`
	Category     Category  `json:"category"`
	ProblemID    *int32    `json:"problem_id"`
	IsRead       bool      `json:"is_read"`
	CommentCount int32     `json:"comment_count"`
	CreateTime   time.Time `json:"create_time"`
}

type QnADetail struct {
	QnA
	AuthorName string    `json:"author_name"`
	IsRead     bool      `json:"is_read"`
	Comments   []Comment `json:"comments"`
}

type Comment struct {
	QnAOrder      int32     `json:"qna_order"`
	Order         int32     `json:"order"`
	Content       string    `json:"content"`
	CreatedBy     uuid.UUID `json:"created_by"`
	AuthorName    string    `json:"author_name,omitempty"`
	IsCourseStaff bool      `json:"is_course_staff"`
	CreateTime    time.Time `json:"create_time"`
}

type CreateQnARequest struct {
	Title     string `json:"title" validate:"required,notblank,max=200"`
	Content   string `json:"content" validate:"required,notblank,max=10000"`
	IsPrivate *bool  `json:"is_private"`
}

type UpdateQnARequest struct {
	Title     *string `json:"title" validate:"omitempty,notblank,max=200"`
	Content   *string `json:"content" validate:"omitempty,notblank,max=10000"`
	IsPrivate *bool   `json:"is_private"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,notblank,max=5000"`
}

// QnAFilter narrows a listing. Every set field must match. Week is accepted
// for compatibility and does not narrow the result.
type QnAFilter struct {
	Week       *int32     `json:"week" validate:"omitempty,gte=1"`
	Categories []Category `json:"categories" validate:"omitempty,dive,oneof=General Problem"`
	ProblemIDs []int32    `json:"problem_ids" validate:"omitempty,dive,gt=0"`
	IsAnswered *bool      `json:"is_answered"`
	Search     *string    `json:"search" validate:"omitempty,max=200"`
	Cursor     *int32     `json:"cursor" validate:"omitempty,gte=0"`
	Take       *int32     `json:"take" validate:"omitempty,gte=1,lte=100"`
}

package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/tcp_snm/agora/internal/service/course_service"
	"github.com/tcp_snm/agora/internal/service/qna_service"
)

type QnAService interface {
	CreateQnA(ctx context.Context, userID uuid.UUID, courseID int32, req qna_service.CreateQnARequest, problemID *int32) (qna_service.QnA, error)
	GetQnAs(ctx context.Context, userID *uuid.UUID, courseID int32, filter qna_service.QnAFilter) ([]qna_service.QnASummary, error)
	GetQnA(ctx context.Context, userID *uuid.UUID, courseID int32, order int32) (qna_service.QnADetail, error)
	UpdateQnA(ctx context.Context, userID uuid.UUID, courseID int32, order int32, req qna_service.UpdateQnARequest) (qna_service.QnA, error)
	DeleteQnA(ctx context.Context, userID uuid.UUID, courseID int32, order int32) (qna_service.QnA, error)
	CreateComment(ctx context.Context, userID uuid.UUID, courseID int32, qnaOrder int32, req qna_service.CreateCommentRequest) (qna_service.Comment, error)
	DeleteComment(ctx context.Context, userID uuid.UUID, courseID int32, qnaOrder int32, commentOrder int32) (qna_service.Comment, error)
}

type CourseService interface {
	GetCourseLeaders(ctx context.Context, courseID int32) ([]course_service.Member, error)
}

type Api struct {
	QnAServiceConfig    QnAService
	CourseServiceConfig CourseService
}

var (
	_ QnAService    = (*qna_service.QnAService)(nil)
	_ CourseService = (*course_service.CourseService)(nil)
)
